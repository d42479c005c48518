package game

import (
	"errors"
	"fmt"
	"math"

	"blocksnake/game/types"
)

// Smallest grid that fits the starting snake inside the border: the head
// sits at Width/2 with four segments to its right.
const (
	MinWidth  = 10
	MinHeight = 3
)

var (
	ErrGridTooSmall    = errors.New("grid too small")
	ErrInvalidVelocity = errors.New("invalid velocity")
)

// Config holds the construction parameters of a game.
type Config struct {
	Width             int
	Height            int
	InitialVelocity   float64 // Steps per second
	VelocityIncrement float64 // Added per fruit
	AvoidOverlap      bool    // Re-draw fruit and wall anchors that land on occupied cells
	Seed              uint64  // 0 seeds from the clock
}

func DefaultConfig() Config {
	return Config{
		Width:             80,
		Height:            60,
		InitialVelocity:   types.InitialVelocity,
		VelocityIncrement: types.VelocityIncrement,
	}
}

func (c Config) Grid() types.Grid {
	return types.Grid{Width: c.Width, Height: c.Height}
}

// Validate rejects configurations no session can be built from.
func (c Config) Validate() error {
	if c.Width < MinWidth || c.Height < MinHeight {
		return fmt.Errorf("%w: %dx%d, need at least %dx%d", ErrGridTooSmall, c.Width, c.Height, MinWidth, MinHeight)
	}
	if !(c.InitialVelocity > 0) || math.IsInf(c.InitialVelocity, 0) {
		return fmt.Errorf("%w: initial velocity %v must be positive and finite", ErrInvalidVelocity, c.InitialVelocity)
	}
	if !(c.VelocityIncrement >= 0) || math.IsInf(c.VelocityIncrement, 0) {
		return fmt.Errorf("%w: increment %v must be finite and not negative", ErrInvalidVelocity, c.VelocityIncrement)
	}
	return nil
}
