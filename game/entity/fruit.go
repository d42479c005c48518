package entity

import "blocksnake/game/types"

// Fruit is a single consumable block. It is replaced, never moved.
type Fruit struct {
	block Block
}

func NewFruit(p types.Point) Fruit {
	return Fruit{block: NewBlock(p.X, p.Y, types.FruitBlock, types.Green)}
}

// RandomFruit places a fruit on a random interior cell without checking
// what is already there.
func RandomFruit(grid types.Grid, rng types.Random) Fruit {
	return NewFruit(RandomInterior(grid, rng))
}

func (f Fruit) Block() Block {
	return f.block
}

func (f Fruit) Position() types.Point {
	return f.block.Pos
}

func (f Fruit) Blocks() []Block {
	return []Block{f.block}
}
