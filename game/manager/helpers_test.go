package manager

import (
	"blocksnake/game/entity"
	"blocksnake/game/types"
)

// fixedRandom returns the same draw every time, reduced modulo n.
type fixedRandom int

func (r fixedRandom) Intn(n int) int {
	return int(r) % n
}

// scriptedRandom replays fixed values, reduced modulo n.
type scriptedRandom struct {
	values []int
	next   int
}

func (r *scriptedRandom) Intn(n int) int {
	v := r.values[r.next%len(r.values)]
	r.next++
	return v % n
}

func testSnake() *entity.Snake {
	return entity.NewSnake(types.Grid{Width: 10, Height: 10}, types.InitialVelocity, types.VelocityIncrement)
}
