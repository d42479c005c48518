package game

import (
	"blocksnake/game/entity"
	"blocksnake/game/types"
)

// Snapshot is a read-only copy of everything a renderer needs.
type Snapshot struct {
	ID              string
	Grid            types.Grid
	Border          []entity.Block
	Walls           [][]entity.Block
	Fruit           entity.Block
	Head            entity.Block
	Body            []entity.Block
	Direction       types.Direction
	Velocity        float64
	Score           int
	HighScore       int
	GamesPlayed     int
	AverageScore    float64
	MedianScore     float64
	AverageDuration float64 // Seconds
	State           types.GameState
}

func copyBlocks(blocks []entity.Block) []entity.Block {
	out := make([]entity.Block, len(blocks))
	copy(out, blocks)
	return out
}

// Snapshot copies the current session state.
func (g *Game) Snapshot() Snapshot {
	walls := make([][]entity.Block, 0, len(g.walls))
	for _, w := range g.walls {
		walls = append(walls, copyBlocks(w.Blocks()))
	}

	return Snapshot{
		ID:              g.id,
		Grid:            g.grid,
		Border:          copyBlocks(g.border.Blocks()),
		Walls:           walls,
		Fruit:           g.fruit.Block(),
		Head:            g.snake.Head(),
		Body:            g.snake.Body(),
		Direction:       g.snake.Direction(),
		Velocity:        g.snake.Velocity(),
		Score:           g.score,
		HighScore:       max(g.stats.HighScore(), g.score),
		GamesPlayed:     g.stats.GamesPlayed(),
		AverageScore:    g.stats.AverageScore(),
		MedianScore:     g.stats.MedianScore(),
		AverageDuration: g.stats.AverageDuration(),
		State:           g.states.State(),
	}
}
