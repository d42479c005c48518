package entity

import "blocksnake/game/types"

type Snake struct {
	head          Block
	body          []Block // body[0] is the segment right behind the head
	direction     types.Direction
	velocity      float64 // Steps per second
	increment     float64 // Added to velocity on every growth
	growthFlag    bool
	directionLock bool
}

// NewSnake places a snake in the middle of the grid with its body trailing
// to the right, heading left.
func NewSnake(grid types.Grid, velocity, increment float64) *Snake {
	center := types.Point{
		X: int(float64(grid.Width) * 0.5),
		Y: int(float64(grid.Height) * 0.5),
	}

	body := make([]types.Point, types.InitialBodyLength)
	for i := range body {
		body[i] = types.Point{X: center.X + i + 1, Y: center.Y}
	}

	return NewSnakeFrom(center, body, types.Left, velocity, increment)
}

// NewSnakeFrom builds a snake from explicit positions.
func NewSnakeFrom(head types.Point, body []types.Point, dir types.Direction, velocity, increment float64) *Snake {
	s := &Snake{
		head:      NewBlock(head.X, head.Y, types.Head, types.Red),
		body:      make([]Block, 0, len(body)),
		direction: dir,
		velocity:  velocity,
		increment: increment,
	}
	for _, p := range body {
		s.body = append(s.body, NewBlock(p.X, p.Y, types.BodySegment, types.White))
	}
	return s
}

func (s *Snake) Head() Block {
	return s.head
}

// Body returns a copy of the body blocks.
func (s *Snake) Body() Chain {
	body := make(Chain, len(s.body))
	copy(body, s.body)
	return body
}

// Len counts the body segments, not the head.
func (s *Snake) Len() int {
	return len(s.body)
}

func (s *Snake) Direction() types.Direction {
	return s.direction
}

func (s *Snake) Velocity() float64 {
	return s.velocity
}

// Interval is the simulated time between two steps, in seconds.
func (s *Snake) Interval() float64 {
	return 1.0 / s.velocity
}

func (s *Snake) growthPending() bool {
	return s.growthFlag
}

func (s *Snake) directionLocked() bool {
	return s.directionLock
}

// UnlockDirection allows the next turn. Called once per tick.
func (s *Snake) UnlockDirection() {
	s.directionLock = false
}

// TryTurn changes heading unless a turn was already taken this tick or dir
// is the reverse of the current heading. Returns whether it was accepted.
func (s *Snake) TryTurn(dir types.Direction) bool {
	if s.directionLock || dir == s.direction.Opposite() {
		return false
	}
	s.direction = dir
	s.directionLock = true
	return true
}

// GrowthAction arms a one-shot growth for the next move and speeds the
// snake up.
func (s *Snake) GrowthAction() {
	s.growthFlag = true
	s.velocity += s.increment
}

// MoveOneStep shifts the head by one cell and lets every segment take the
// place of the one before it. When growth is armed, the tail cell that would
// be dropped is kept as a new last segment.
func (s *Snake) MoveOneStep() {
	prev := s.head
	prev.Kind = types.BodySegment
	prev.Color = types.White

	s.head.Pos = s.head.Pos.Add(s.direction.ToPoint())

	blocks := make([]Block, 0, len(s.body)+1)
	for _, b := range s.body {
		blocks = append(blocks, prev)
		prev = b
	}

	if s.growthFlag {
		blocks = append(blocks, prev)
		s.growthFlag = false
	}

	s.body = blocks
}

// IsSelfColliding reports whether the head shares a cell with the body.
func (s *Snake) IsSelfColliding() bool {
	return Classify(s.head, Chain(s.body)) == types.SnakeCollision
}

// Occupies reports whether the head or any segment sits on p.
func (s *Snake) Occupies(p types.Point) bool {
	if s.head.Pos == p {
		return true
	}
	for _, b := range s.body {
		if b.Pos == p {
			return true
		}
	}
	return false
}

// Blocks returns head followed by body.
func (s *Snake) Blocks() []Block {
	blocks := make([]Block, 0, len(s.body)+1)
	blocks = append(blocks, s.head)
	return append(blocks, s.body...)
}
