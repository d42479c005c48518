package game

import (
	"time"

	"blocksnake/game/entity"
	"blocksnake/game/manager"
	"blocksnake/game/types"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
)

// MetricsRecorder receives simulation events.
type MetricsRecorder interface {
	RecordTick()
	RecordFruit()
	RecordGameOver(cause string)
	RecordRestart()
	SetSessionGauges(score int, velocity float64)
}

type noopMetrics struct{}

func (noopMetrics) RecordTick() {}
func (noopMetrics) RecordFruit() {}
func (noopMetrics) RecordGameOver(string) {}
func (noopMetrics) RecordRestart() {}
func (noopMetrics) SetSessionGauges(int, float64) {}

// Game is the simulation session together with the tick driver. Everything
// below the manager fields is rebuilt on restart.
type Game struct {
	cfg     Config
	grid    types.Grid
	rng     types.Random
	logger  zerolog.Logger // Process logger
	metrics MetricsRecorder

	collisionMgr *manager.CollisionManager
	foodMgr      *manager.FoodManager
	wallMgr      *manager.WallManager
	states       *manager.StateManager
	stats        *manager.StatsManager

	id         string
	sessionLog zerolog.Logger // Tagged with the session id
	startTime  time.Time
	border     entity.Wall
	walls      []entity.Wall
	fruit      entity.Fruit
	snake      *entity.Snake
	score      int
	updateTime float64 // Seconds accumulated since the last step
	recorded   bool    // Session already added to stats
}

// Option customises Game construction.
type Option func(*Game)

// WithLogger replaces the global zerolog logger.
func WithLogger(l zerolog.Logger) Option {
	return func(g *Game) {
		g.logger = l
	}
}

// WithMetricsRecorder attaches a recorder for simulation events.
func WithMetricsRecorder(m MetricsRecorder) Option {
	return func(g *Game) {
		if m != nil {
			g.metrics = m
		}
	}
}

// WithRandom replaces the seeded source used for placement.
func WithRandom(r types.Random) Option {
	return func(g *Game) {
		if r != nil {
			g.rng = r
		}
	}
}

// New validates cfg and builds the first session.
func New(cfg Config, opts ...Option) (*Game, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}

	grid := cfg.Grid()
	g := &Game{
		cfg:     cfg,
		grid:    grid,
		rng:     rand.New(rand.NewSource(seed)),
		logger:  log.Logger,
		metrics: noopMetrics{},
		states:  manager.NewStateManager(),
		stats:   manager.NewStatsManager(),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(g)
		}
	}

	g.collisionMgr = manager.NewCollisionManager(grid)
	g.foodMgr = manager.NewFoodManager(grid, g.rng, g.collisionMgr, cfg.AvoidOverlap)
	g.wallMgr = manager.NewWallManager(grid, g.rng, g.collisionMgr, cfg.AvoidOverlap)

	g.build()
	return g, nil
}

// build replaces every session entity with a fresh one.
func (g *Game) build() {
	g.id = uuid.New().String()
	g.sessionLog = g.logger.With().Str("session", g.id).Logger()
	g.startTime = time.Now()
	g.border = entity.BoardWall(g.grid)
	g.snake = entity.NewSnake(g.grid, g.cfg.InitialVelocity, g.cfg.VelocityIncrement)
	g.walls = g.wallMgr.GenerateWalls(g.snake)
	g.fruit = g.foodMgr.GenerateFruit(g.snake, g.walls)
	g.score = 0
	g.updateTime = 0
	g.recorded = false

	bricks := 0
	for _, w := range g.walls {
		bricks += w.Len()
	}
	g.log().Info().
		Int("width", g.grid.Width).
		Int("height", g.grid.Height).
		Int("walls", len(g.walls)).
		Int("bricks", bricks).
		Msg("session built")

	g.metrics.SetSessionGauges(g.score, g.snake.Velocity())
}

func (g *Game) log() *zerolog.Logger {
	return &g.sessionLog
}

func (g *Game) ID() string {
	return g.id
}

func (g *Game) Grid() types.Grid {
	return g.grid
}

func (g *Game) State() types.GameState {
	return g.states.State()
}

func (g *Game) Score() int {
	return g.score
}

// Stats exposes the history of finished sessions.
func (g *Game) Stats() *manager.StatsManager {
	return g.stats
}

// HandleInput applies one input event.
func (g *Game) HandleInput(ev Event) {
	switch ev.Kind {
	case KindTurn:
		if g.states.Ticking() {
			g.snake.TryTurn(ev.Direction)
		}
	case KindTogglePause:
		if g.states.TogglePause() {
			g.log().Debug().Stringer("state", g.states.State()).Msg("pause toggled")
		}
	case KindResume:
		if g.states.Resume() {
			g.log().Debug().Msg("resumed")
		}
	case KindRestart:
		g.restart()
	}
}

// Update feeds dt seconds of real time into the tick driver. At most one
// step runs per call; time beyond the threshold is dropped.
func (g *Game) Update(dt float64) {
	if !g.states.Ticking() {
		return
	}

	g.updateTime += dt
	if g.updateTime >= g.snake.Interval() {
		g.step()
		g.updateTime = 0
	}
}

// step runs one simulation step.
func (g *Game) step() {
	g.snake.UnlockDirection()
	g.metrics.RecordTick()

	switch kind := g.collisionMgr.CheckCollision(g.snake, g.border, g.walls, g.fruit); kind {
	case types.FruitCollision:
		g.score++
		g.fruit = g.foodMgr.GenerateFruit(g.snake, g.walls)
		g.snake.MoveOneStep()
		// Armed after the move so the tail is kept on the next one.
		g.snake.GrowthAction()

		g.metrics.RecordFruit()
		g.metrics.SetSessionGauges(g.score, g.snake.Velocity())
		g.log().Debug().
			Int("score", g.score).
			Float64("velocity", g.snake.Velocity()).
			Msg("fruit eaten")
	case types.WallCollision, types.SnakeCollision:
		g.gameOver(kind)
	default:
		g.snake.MoveOneStep()
	}
}

func (g *Game) gameOver(cause types.CollisionKind) {
	if !g.states.GameOver() {
		return
	}
	g.recordSession()

	head := g.snake.Head().Pos
	g.metrics.RecordGameOver(cause.String())
	g.log().Info().
		Stringer("cause", cause).
		Int("score", g.score).
		Int("x", head.X).
		Int("y", head.Y).
		Msg("game over")
}

// restart moves through Restart back to Gaming with a new session.
func (g *Game) restart() {
	g.recordSession()
	g.states.Restart()
	g.log().Info().Int("score", g.score).Msg("restarting")

	g.build()
	g.states.Begin()
	g.metrics.RecordRestart()
}

func (g *Game) recordSession() {
	if g.recorded {
		return
	}
	g.stats.AddGame(g.id, g.startTime, time.Now(), g.score)
	g.recorded = true
}
