package entity

import "blocksnake/game/types"

// Block is the atomic positioned entity everything else is built from.
type Block struct {
	Pos   types.Point
	Kind  types.EntityKind
	Color types.Color
}

func NewBlock(x, y int, kind types.EntityKind, color types.Color) Block {
	return Block{
		Pos:   types.Point{X: x, Y: y},
		Kind:  kind,
		Color: color,
	}
}

// Collision is what this block signals when struck.
func (b Block) Collision() types.CollisionKind {
	return b.Kind.Collision()
}

// SamePlace reports coordinate equality. Kind and colour are ignored.
func (b Block) SamePlace(o Block) bool {
	return b.Pos == o.Pos
}

func (b Block) Blocks() []Block {
	return []Block{b}
}

// Chain is an ordered run of blocks, such as a snake body.
type Chain []Block

func (c Chain) Blocks() []Block {
	return c
}

// RandomInterior draws a cell with x in [1, Width-1) and y in [1, Height-1).
func RandomInterior(grid types.Grid, rng types.Random) types.Point {
	return types.Point{
		X: 1 + rng.Intn(grid.Width-2),
		Y: 1 + rng.Intn(grid.Height-2),
	}
}
