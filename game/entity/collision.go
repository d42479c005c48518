package entity

import "blocksnake/game/types"

// Collidable is any entity made of blocks.
type Collidable interface {
	Blocks() []Block
}

// Classify compares every block of a against every block of b and returns
// the collision kind of the first block of b found sharing a cell with a
// block of a. The cost is len(a)*len(b).
func Classify(a, b Collidable) types.CollisionKind {
	struck := b.Blocks()
	for _, x := range a.Blocks() {
		for _, y := range struck {
			if x.SamePlace(y) {
				return y.Collision()
			}
		}
	}
	return types.NoCollision
}
