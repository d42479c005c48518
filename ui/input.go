package ui

import (
	"blocksnake/game"
	"blocksnake/game/types"

	rl "github.com/gen2brain/raylib-go/raylib"
)

var turnKeys = []struct {
	key int32
	dir types.Direction
}{
	{rl.KeyUp, types.Up},
	{rl.KeyDown, types.Down},
	{rl.KeyLeft, types.Left},
	{rl.KeyRight, types.Right},
}

// PollEvents collects the keys pressed since the last frame, in a fixed
// order: turns, then pause keys, then restart keys.
//
// Space pauses a running game and restarts from any other state. Enter
// resumes from a pause. P toggles the pause and R always restarts.
func PollEvents(state types.GameState) []game.Event {
	var events []game.Event

	for _, k := range turnKeys {
		if rl.IsKeyPressed(k.key) {
			events = append(events, game.Turn(k.dir))
		}
	}

	if rl.IsKeyPressed(rl.KeySpace) {
		if state == types.Gaming {
			events = append(events, game.TogglePause())
		} else {
			events = append(events, game.Restart())
		}
	}
	if rl.IsKeyPressed(rl.KeyEnter) {
		events = append(events, game.Resume())
	}
	if rl.IsKeyPressed(rl.KeyP) {
		events = append(events, game.TogglePause())
	}

	if rl.IsKeyPressed(rl.KeyR) {
		events = append(events, game.Restart())
	}

	return events
}
