package types

// Point is a cell on the grid.
type Point struct {
	X, Y int
}

// Add returns p translated by q.
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Grid represents the play area. The border sits on x=0, x=Width, y=0 and
// y=Height.
type Grid struct {
	Width  int
	Height int
}

// Direction is the heading of the snake.
type Direction int

const (
	Up Direction = iota
	Down
	Left
	Right
)

// ToPoint converts a Direction into its unit displacement. Y grows downwards.
func (d Direction) ToPoint() Point {
	switch d {
	case Up:
		return Point{X: 0, Y: -1}
	case Down:
		return Point{X: 0, Y: 1}
	case Left:
		return Point{X: -1, Y: 0}
	case Right:
		return Point{X: 1, Y: 0}
	default:
		return Point{}
	}
}

// Opposite returns the 180° reverse of d.
func (d Direction) Opposite() Direction {
	switch d {
	case Up:
		return Down
	case Down:
		return Up
	case Left:
		return Right
	default:
		return Left
	}
}

func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		return "unknown"
	}
}

// CollisionKind is what a block signals when something runs into it.
type CollisionKind int

const (
	NoCollision CollisionKind = iota
	FruitCollision
	SnakeCollision
	WallCollision
)

func (k CollisionKind) String() string {
	switch k {
	case FruitCollision:
		return "fruit"
	case SnakeCollision:
		return "snake"
	case WallCollision:
		return "wall"
	default:
		return "none"
	}
}

// EntityKind tags the role a block plays.
type EntityKind int

const (
	Head EntityKind = iota
	BodySegment
	WallBrick
	FruitBlock
)

// Collision maps an entity kind to the collision it signals when struck.
func (k EntityKind) Collision() CollisionKind {
	switch k {
	case Head, BodySegment:
		return SnakeCollision
	case WallBrick:
		return WallCollision
	case FruitBlock:
		return FruitCollision
	default:
		return NoCollision
	}
}

// GameState is the state of the session state machine.
type GameState int

const (
	Gaming GameState = iota
	Timeout
	GameOver
	Restart
)

func (s GameState) String() string {
	switch s {
	case Gaming:
		return "gaming"
	case Timeout:
		return "paused"
	case GameOver:
		return "game over"
	case Restart:
		return "restart"
	default:
		return "unknown"
	}
}

// Color is the display attribute of a block. The simulation never reads it.
type Color struct {
	R, G, B, A uint8
}

// Palette used by the entity constructors.
var (
	White     = Color{R: 255, G: 255, B: 255, A: 255}
	Red       = Color{R: 255, G: 0, B: 0, A: 255}
	Green     = Color{R: 0, G: 128, B: 0, A: 255}
	LightBlue = Color{R: 0, G: 255, B: 255, A: 255}
)

// Random is the source of uniform integers used for placement.
// *rand.Rand from golang.org/x/exp/rand satisfies it.
type Random interface {
	// Intn returns a value in [0, n). n must be positive.
	Intn(n int) int
}

// Game constants
const (
	InitialBodyLength = 4    // Body blocks behind the head at session start
	InitialVelocity   = 6.0  // Steps per second
	VelocityIncrement = 0.01 // Added per fruit
	MinWalls          = 1
	MaxWalls          = 10 // Exclusive
	MinBricks         = 5
	MaxBricks         = 10 // Exclusive
)
