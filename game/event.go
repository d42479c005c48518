package game

import "blocksnake/game/types"

type EventKind int

const (
	KindTurn EventKind = iota
	KindTogglePause
	KindResume
	KindRestart
)

// Event is one discrete input notification.
type Event struct {
	Kind      EventKind
	Direction types.Direction // KindTurn only
}

func Turn(dir types.Direction) Event {
	return Event{Kind: KindTurn, Direction: dir}
}

func TogglePause() Event {
	return Event{Kind: KindTogglePause}
}

// Resume only leaves a pause; it never pauses.
func Resume() Event {
	return Event{Kind: KindResume}
}

func Restart() Event {
	return Event{Kind: KindRestart}
}
