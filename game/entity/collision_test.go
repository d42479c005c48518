package entity

import (
	"testing"

	"blocksnake/game/types"
)

func TestClassifyBlockPairs(t *testing.T) {
	head := NewBlock(3, 4, types.Head, types.Red)

	tests := []struct {
		name  string
		other Block
		want  types.CollisionKind
	}{
		{"body same cell", NewBlock(3, 4, types.BodySegment, types.White), types.SnakeCollision},
		{"body other cell", NewBlock(4, 4, types.BodySegment, types.White), types.NoCollision},
		{"wall same cell", NewBlock(3, 4, types.WallBrick, types.LightBlue), types.WallCollision},
		{"fruit same cell", NewBlock(3, 4, types.FruitBlock, types.Green), types.FruitCollision},
		{"fruit other cell", NewBlock(3, 5, types.FruitBlock, types.Green), types.NoCollision},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Classify(head, tt.other); got != tt.want {
				t.Fatalf("Classify = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestClassifyIgnoresColorAndKindForEquality(t *testing.T) {
	a := NewBlock(1, 1, types.FruitBlock, types.Green)
	b := NewBlock(1, 1, types.BodySegment, types.Red)
	if !a.SamePlace(b) {
		t.Fatalf("blocks on the same cell should be equal")
	}
}

func TestClassifyComposites(t *testing.T) {
	wall := NewWall(types.Point{X: 1, Y: 1}, types.Point{X: 2, Y: 1}, types.Point{X: 3, Y: 1})
	snake := NewSnakeFrom(types.Point{X: 5, Y: 5}, []types.Point{{X: 4, Y: 5}, {X: 3, Y: 5}}, types.Right, 6, 0.01)

	if got := Classify(snake, wall); got != types.NoCollision {
		t.Fatalf("Classify(snake, wall) = %v, want none", got)
	}

	crossing := NewWall(types.Point{X: 9, Y: 9}, types.Point{X: 3, Y: 5})
	if got := Classify(snake, crossing); got != types.WallCollision {
		t.Fatalf("Classify(snake, crossing) = %v, want wall", got)
	}
	if got := Classify(crossing, snake); got != types.SnakeCollision {
		t.Fatalf("Classify(crossing, snake) = %v, want snake", got)
	}
}

func TestClassifyEmpty(t *testing.T) {
	if got := Classify(Chain{}, NewWall(types.Point{X: 1, Y: 1})); got != types.NoCollision {
		t.Fatalf("Classify(empty) = %v, want none", got)
	}
}
