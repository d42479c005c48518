package entity

import "blocksnake/game/types"

// Wall is an ordered collection of bricks.
type Wall struct {
	bricks []Block
}

func NewWall(points ...types.Point) Wall {
	bricks := make([]Block, 0, len(points))
	for _, p := range points {
		bricks = append(bricks, NewBlock(p.X, p.Y, types.WallBrick, types.LightBlue))
	}
	return Wall{bricks: bricks}
}

// BoardWall builds the perimeter at x in {0, Width} and y in {0, Height}.
// Corners appear once.
func BoardWall(grid types.Grid) Wall {
	points := make([]types.Point, 0, 2*(grid.Width+1)+2*(grid.Height-1))

	// Top and bottom rows
	for x := 0; x <= grid.Width; x++ {
		points = append(points, types.Point{X: x, Y: 0}, types.Point{X: x, Y: grid.Height})
	}

	// Left and right columns, corners already placed
	for y := 1; y < grid.Height; y++ {
		points = append(points, types.Point{X: 0, Y: y}, types.Point{X: grid.Width, Y: y})
	}

	return NewWall(points...)
}

// RandomWall grows a wall of length bricks from a random interior anchor.
func RandomWall(length int, grid types.Grid, rng types.Random) Wall {
	return RandomWallFrom(RandomInterior(grid, rng), length, rng)
}

// RandomWallFrom walks length-1 steps from anchor. Every step picks a sign
// and then an axis, each with even odds, and offsets the new brick from the
// previous one. The walk may cross itself or leave the interior.
func RandomWallFrom(anchor types.Point, length int, rng types.Random) Wall {
	if length <= 0 {
		return Wall{}
	}

	points := make([]types.Point, 0, length)
	points = append(points, anchor)
	for i := 1; i < length; i++ {
		d := 1
		if rng.Intn(2) == 1 {
			d = -1
		}

		step := types.Point{X: d}
		if rng.Intn(2) == 1 {
			step = types.Point{Y: d}
		}

		points = append(points, points[i-1].Add(step))
	}

	return NewWall(points...)
}

func (w Wall) Blocks() []Block {
	return w.bricks
}

func (w Wall) Len() int {
	return len(w.bricks)
}

// Contains reports whether any brick sits on p.
func (w Wall) Contains(p types.Point) bool {
	for _, b := range w.bricks {
		if b.Pos == p {
			return true
		}
	}
	return false
}
