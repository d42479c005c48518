package manager

import "blocksnake/game/types"

// StateManager drives the session state machine:
//
//	Gaming --pause--> Timeout --resume or pause--> Gaming
//	Gaming --fatal collision--> GameOver
//	any --restart--> Restart --begin--> Gaming
type StateManager struct {
	state types.GameState
}

func NewStateManager() *StateManager {
	return &StateManager{
		state: types.Gaming,
	}
}

func (sm *StateManager) State() types.GameState {
	return sm.state
}

// Ticking reports whether the tick driver may run.
func (sm *StateManager) Ticking() bool {
	return sm.state == types.Gaming
}

// TogglePause switches between Gaming and Timeout. Other states are left
// alone. Returns whether a transition happened.
func (sm *StateManager) TogglePause() bool {
	switch sm.state {
	case types.Gaming:
		sm.state = types.Timeout
	case types.Timeout:
		sm.state = types.Gaming
	default:
		return false
	}
	return true
}

// Resume leaves Timeout for Gaming. Other states are left alone.
func (sm *StateManager) Resume() bool {
	if sm.state != types.Timeout {
		return false
	}
	sm.state = types.Gaming
	return true
}

// GameOver ends a running game.
func (sm *StateManager) GameOver() bool {
	if sm.state != types.Gaming {
		return false
	}
	sm.state = types.GameOver
	return true
}

// Restart is accepted from every state. The caller rebuilds the session and
// then calls Begin.
func (sm *StateManager) Restart() {
	sm.state = types.Restart
}

// Begin leaves Restart for Gaming.
func (sm *StateManager) Begin() bool {
	if sm.state != types.Restart {
		return false
	}
	sm.state = types.Gaming
	return true
}
