package game

import (
	"bytes"
	"errors"
	"math"
	"strings"
	"testing"
	"time"

	"blocksnake/game/entity"
	"blocksnake/game/types"

	"github.com/rs/zerolog"
)

// tickDt is longer than the step interval at the initial velocity.
const tickDt = 0.2

// fixedRandom returns the same draw every time, reduced modulo n. With 1,
// fruit always respawns at (2,2).
type fixedRandom int

func (r fixedRandom) Intn(n int) int {
	return int(r) % n
}

type recordingMetrics struct {
	ticks     int
	fruits    int
	gameOvers []string
	restarts  int
	score     int
	velocity  float64
}

func (m *recordingMetrics) RecordTick() { m.ticks++ }
func (m *recordingMetrics) RecordFruit() { m.fruits++ }
func (m *recordingMetrics) RecordGameOver(cause string) { m.gameOvers = append(m.gameOvers, cause) }
func (m *recordingMetrics) RecordRestart() { m.restarts++ }
func (m *recordingMetrics) SetSessionGauges(score int, velocity float64) {
	m.score = score
	m.velocity = velocity
}

// newTestGame builds a 10x10 game without obstacles and with the fruit
// parked in a corner.
func newTestGame(t *testing.T, opts ...Option) *Game {
	t.Helper()
	cfg := DefaultConfig()
	cfg.Width, cfg.Height = 10, 10

	opts = append([]Option{WithLogger(zerolog.Nop()), WithRandom(fixedRandom(1))}, opts...)
	g, err := New(cfg, opts...)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	g.walls = nil
	g.fruit = entity.NewFruit(types.Point{X: 1, Y: 8})
	return g
}

func bodyPositions(blocks []entity.Block) []types.Point {
	out := make([]types.Point, len(blocks))
	for i, b := range blocks {
		out[i] = b.Pos
	}
	return out
}

func equalPoints(a, b []types.Point) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestNewRejectsBadConfig(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config
		want error
	}{
		{"narrow", Config{Width: 9, Height: 10, InitialVelocity: 6}, ErrGridTooSmall},
		{"flat", Config{Width: 10, Height: 2, InitialVelocity: 6}, ErrGridTooSmall},
		{"negative", Config{Width: -10, Height: -10, InitialVelocity: 6}, ErrGridTooSmall},
		{"stopped", Config{Width: 10, Height: 10}, ErrInvalidVelocity},
		{"slowing", Config{Width: 10, Height: 10, InitialVelocity: 6, VelocityIncrement: -1}, ErrInvalidVelocity},
		{"nan velocity", Config{Width: 10, Height: 10, InitialVelocity: math.NaN()}, ErrInvalidVelocity},
		{"infinite velocity", Config{Width: 10, Height: 10, InitialVelocity: math.Inf(1)}, ErrInvalidVelocity},
		{"nan increment", Config{Width: 10, Height: 10, InitialVelocity: 6, VelocityIncrement: math.NaN()}, ErrInvalidVelocity},
		{"infinite increment", Config{Width: 10, Height: 10, InitialVelocity: 6, VelocityIncrement: math.Inf(1)}, ErrInvalidVelocity},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, err := New(tt.cfg, WithLogger(zerolog.Nop()))
			if !errors.Is(err, tt.want) {
				t.Fatalf("New error = %v, want %v", err, tt.want)
			}
			if g != nil {
				t.Fatalf("New returned a game for an invalid config")
			}
		})
	}
}

func TestNewBuildsSession(t *testing.T) {
	cfg := DefaultConfig()
	g, err := New(cfg, WithLogger(zerolog.Nop()))
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	snap := g.Snapshot()
	if snap.State != types.Gaming || snap.Score != 0 {
		t.Fatalf("state = %v score = %d, want gaming 0", snap.State, snap.Score)
	}
	if snap.ID == "" {
		t.Fatalf("session has no id")
	}
	if len(snap.Walls) < types.MinWalls || len(snap.Walls) >= types.MaxWalls {
		t.Fatalf("walls = %d, want [%d,%d)", len(snap.Walls), types.MinWalls, types.MaxWalls)
	}
	if got, want := len(snap.Border), 2*(cfg.Width+1)+2*(cfg.Height-1); got != want {
		t.Fatalf("border bricks = %d, want %d", got, want)
	}
	f := snap.Fruit.Pos
	if f.X < 1 || f.X >= cfg.Width-1 || f.Y < 1 || f.Y >= cfg.Height-1 {
		t.Fatalf("fruit %v outside interior", f)
	}
}

func TestUpdateSingleStep(t *testing.T) {
	g := newTestGame(t)
	before := g.Snapshot()

	g.Update(0.1)
	if got := g.Snapshot().Head.Pos; got != before.Head.Pos {
		t.Fatalf("head moved before threshold: %v", got)
	}

	g.Update(0.1)
	snap := g.Snapshot()
	if snap.Head.Pos != (types.Point{X: 4, Y: 5}) {
		t.Fatalf("head = %v, want (4,5)", snap.Head.Pos)
	}
	if snap.Score != 0 || snap.State != types.Gaming {
		t.Fatalf("score = %d state = %v, want 0 gaming", snap.Score, snap.State)
	}
	if g.updateTime != 0 {
		t.Fatalf("accumulator = %v, want 0", g.updateTime)
	}

	want := append([]types.Point{before.Head.Pos}, bodyPositions(before.Body)[:len(before.Body)-1]...)
	if got := bodyPositions(snap.Body); !equalPoints(got, want) {
		t.Fatalf("body = %v, want %v", got, want)
	}
}

func TestUpdateDropsExcessTime(t *testing.T) {
	g := newTestGame(t)

	g.Update(10)
	if got := g.Snapshot().Head.Pos; got != (types.Point{X: 4, Y: 5}) {
		t.Fatalf("head = %v, want exactly one step to (4,5)", got)
	}
	g.Update(0.01)
	if got := g.Snapshot().Head.Pos; got != (types.Point{X: 4, Y: 5}) {
		t.Fatalf("head = %v, excess time was carried over", got)
	}
}

func TestEatingFruitOnHead(t *testing.T) {
	m := &recordingMetrics{}
	g := newTestGame(t, WithMetricsRecorder(m))
	g.fruit = entity.NewFruit(types.Point{X: 5, Y: 5})

	g.Update(tickDt)
	snap := g.Snapshot()
	if snap.Score != 1 {
		t.Fatalf("score = %d, want 1", snap.Score)
	}
	if snap.Fruit.Pos == (types.Point{X: 5, Y: 5}) {
		t.Fatalf("fruit did not move")
	}
	if len(snap.Body) != types.InitialBodyLength {
		t.Fatalf("body len = %d, want %d on the eating tick", len(snap.Body), types.InitialBodyLength)
	}
	if snap.Head.Pos != (types.Point{X: 4, Y: 5}) {
		t.Fatalf("head = %v, want (4,5)", snap.Head.Pos)
	}
	if d := snap.Velocity - types.InitialVelocity; d < 0.0099 || d > 0.0101 {
		t.Fatalf("velocity = %v, want +0.01", snap.Velocity)
	}
	if m.fruits != 1 || m.score != 1 {
		t.Fatalf("metrics fruits = %d score = %d, want 1 1", m.fruits, m.score)
	}

	g.Update(tickDt)
	snap = g.Snapshot()
	if len(snap.Body) != types.InitialBodyLength+1 {
		t.Fatalf("body len = %d, want %d on the following tick", len(snap.Body), types.InitialBodyLength+1)
	}
	if snap.Score != 1 {
		t.Fatalf("score = %d, want 1", snap.Score)
	}
}

func TestSteppingOntoFruit(t *testing.T) {
	g := newTestGame(t)
	g.fruit = entity.NewFruit(types.Point{X: 4, Y: 5})

	g.Update(tickDt)
	if got := g.Snapshot().Score; got != 0 {
		t.Fatalf("score = %d, want 0 while arriving", got)
	}

	g.Update(tickDt)
	snap := g.Snapshot()
	if snap.Score != 1 || len(snap.Body) != types.InitialBodyLength {
		t.Fatalf("score = %d len = %d, want 1 %d", snap.Score, len(snap.Body), types.InitialBodyLength)
	}
	if snap.Fruit.Pos != (types.Point{X: 2, Y: 2}) {
		t.Fatalf("fruit = %v, want respawn at (2,2)", snap.Fruit.Pos)
	}

	g.Update(tickDt)
	if got := len(g.Snapshot().Body); got != types.InitialBodyLength+1 {
		t.Fatalf("body len = %d, want %d", got, types.InitialBodyLength+1)
	}
}

func TestSpeedUpShrinksInterval(t *testing.T) {
	g := newTestGame(t)
	g.fruit = entity.NewFruit(types.Point{X: 5, Y: 5})
	g.Update(tickDt)

	// Between 1/6.01 and 1/6 seconds.
	const dt = 0.1665
	g.Update(dt)
	if got := g.Snapshot().Head.Pos; got != (types.Point{X: 3, Y: 5}) {
		t.Fatalf("head = %v, want (3,5)", got)
	}

	slow := newTestGame(t)
	slow.Update(dt)
	if got := slow.Snapshot().Head.Pos; got != (types.Point{X: 5, Y: 5}) {
		t.Fatalf("head = %v, stepped before the initial interval", got)
	}
}

func TestSelfCollisionEndsGame(t *testing.T) {
	m := &recordingMetrics{}
	g := newTestGame(t, WithMetricsRecorder(m))
	g.snake = entity.NewSnakeFrom(types.Point{X: 5, Y: 5},
		[]types.Point{{X: 6, Y: 5}, {X: 6, Y: 6}, {X: 5, Y: 6}, {X: 4, Y: 6}},
		types.Down, types.InitialVelocity, types.VelocityIncrement)

	g.Update(tickDt)
	if g.State() != types.Gaming {
		t.Fatalf("state = %v, want gaming while the head lands on the body", g.State())
	}

	g.Update(tickDt)
	if g.State() != types.GameOver {
		t.Fatalf("state = %v, want game over", g.State())
	}
	frozen := g.Snapshot()

	for i := 0; i < 5; i++ {
		g.Update(tickDt)
	}
	g.HandleInput(Turn(types.Left))
	after := g.Snapshot()
	if after.Head.Pos != frozen.Head.Pos || !equalPoints(bodyPositions(after.Body), bodyPositions(frozen.Body)) {
		t.Fatalf("snake moved after game over")
	}
	if after.Direction != types.Down {
		t.Fatalf("direction = %v, turn accepted after game over", after.Direction)
	}
	if len(m.gameOvers) != 1 || m.gameOvers[0] != "snake" {
		t.Fatalf("game overs = %v, want [snake]", m.gameOvers)
	}
	if g.Stats().GamesPlayed() != 1 {
		t.Fatalf("GamesPlayed = %d, want 1", g.Stats().GamesPlayed())
	}
}

func TestWallCollisionEndsGame(t *testing.T) {
	g := newTestGame(t)
	g.snake = entity.NewSnakeFrom(types.Point{X: 1, Y: 5},
		[]types.Point{{X: 2, Y: 5}, {X: 3, Y: 5}},
		types.Left, types.InitialVelocity, types.VelocityIncrement)

	g.Update(tickDt)
	if got := g.Snapshot().Head.Pos; got != (types.Point{X: 0, Y: 5}) {
		t.Fatalf("head = %v, want (0,5)", got)
	}
	g.Update(tickDt)
	if g.State() != types.GameOver {
		t.Fatalf("state = %v, want game over", g.State())
	}
	if got := g.Snapshot().Head.Pos; got != (types.Point{X: 0, Y: 5}) {
		t.Fatalf("head = %v, moved on the fatal tick", got)
	}
}

func TestObstacleBeatsFruit(t *testing.T) {
	g := newTestGame(t)
	g.walls = []entity.Wall{entity.NewWall(types.Point{X: 5, Y: 5})}
	g.fruit = entity.NewFruit(types.Point{X: 5, Y: 5})

	g.Update(tickDt)
	if g.State() != types.GameOver || g.Score() != 0 {
		t.Fatalf("state = %v score = %d, want game over 0", g.State(), g.Score())
	}
}

func TestTurnOncePerTick(t *testing.T) {
	g := newTestGame(t)

	g.HandleInput(Turn(types.Right))
	if g.snake.Direction() != types.Left {
		t.Fatalf("reverse turn accepted")
	}

	g.HandleInput(Turn(types.Up))
	g.HandleInput(Turn(types.Left))
	g.HandleInput(Turn(types.Down))
	if g.snake.Direction() != types.Up {
		t.Fatalf("direction = %v, want up", g.snake.Direction())
	}

	g.Update(tickDt)
	if got := g.Snapshot().Head.Pos; got != (types.Point{X: 5, Y: 4}) {
		t.Fatalf("head = %v, want (5,4)", got)
	}

	g.HandleInput(Turn(types.Right))
	if g.snake.Direction() != types.Right {
		t.Fatalf("direction = %v, want right after the tick", g.snake.Direction())
	}
}

func TestPauseSuspendsTicks(t *testing.T) {
	g := newTestGame(t)

	g.HandleInput(TogglePause())
	if g.State() != types.Timeout {
		t.Fatalf("state = %v, want paused", g.State())
	}

	g.Update(5)
	g.HandleInput(Turn(types.Up))
	snap := g.Snapshot()
	if snap.Head.Pos != (types.Point{X: 5, Y: 5}) || snap.Direction != types.Left {
		t.Fatalf("paused game changed: head %v direction %v", snap.Head.Pos, snap.Direction)
	}
	if g.updateTime != 0 {
		t.Fatalf("accumulator = %v while paused", g.updateTime)
	}

	g.HandleInput(TogglePause())
	if g.State() != types.Gaming {
		t.Fatalf("state = %v, want gaming", g.State())
	}
	g.Update(tickDt)
	if got := g.Snapshot().Head.Pos; got != (types.Point{X: 4, Y: 5}) {
		t.Fatalf("head = %v, want (4,5)", got)
	}
}

func TestResumeOnlyLeavesPause(t *testing.T) {
	g := newTestGame(t)

	g.HandleInput(Resume())
	if g.State() != types.Gaming {
		t.Fatalf("resume while gaming: state = %v, want gaming", g.State())
	}

	g.HandleInput(TogglePause())
	g.HandleInput(Resume())
	if g.State() != types.Gaming {
		t.Fatalf("resume while paused: state = %v, want gaming", g.State())
	}
	g.Update(tickDt)
	if got := g.Snapshot().Head.Pos; got != (types.Point{X: 4, Y: 5}) {
		t.Fatalf("head = %v, want (4,5)", got)
	}
}

func TestPauseIgnoredAfterGameOver(t *testing.T) {
	g := newTestGame(t)
	g.walls = []entity.Wall{entity.NewWall(types.Point{X: 5, Y: 5})}
	g.Update(tickDt)

	g.HandleInput(TogglePause())
	if g.State() != types.GameOver {
		t.Fatalf("state = %v, want game over", g.State())
	}
}

func TestRestartFromEveryState(t *testing.T) {
	setups := map[string]func(*Game){
		"gaming": func(g *Game) {
			g.fruit = entity.NewFruit(types.Point{X: 5, Y: 5})
			g.Update(tickDt)
			g.Update(tickDt)
		},
		"paused": func(g *Game) {
			g.HandleInput(TogglePause())
		},
		"game over": func(g *Game) {
			g.walls = []entity.Wall{entity.NewWall(types.Point{X: 5, Y: 5})}
			g.Update(tickDt)
		},
	}

	for name, setup := range setups {
		t.Run(name, func(t *testing.T) {
			m := &recordingMetrics{}
			g := newTestGame(t, WithMetricsRecorder(m))
			setup(g)
			oldID := g.ID()

			g.HandleInput(Restart())

			snap := g.Snapshot()
			if snap.State != types.Gaming || snap.Score != 0 {
				t.Fatalf("state = %v score = %d, want gaming 0", snap.State, snap.Score)
			}
			if snap.ID == oldID {
				t.Fatalf("session id was not renewed")
			}
			if snap.Head.Pos != (types.Point{X: 5, Y: 5}) || snap.Direction != types.Left {
				t.Fatalf("head = %v direction = %v, want (5,5) left", snap.Head.Pos, snap.Direction)
			}
			want := []types.Point{{X: 6, Y: 5}, {X: 7, Y: 5}, {X: 8, Y: 5}, {X: 9, Y: 5}}
			if got := bodyPositions(snap.Body); !equalPoints(got, want) {
				t.Fatalf("body = %v, want %v", got, want)
			}
			if snap.Velocity != types.InitialVelocity {
				t.Fatalf("velocity = %v, want %v", snap.Velocity, types.InitialVelocity)
			}
			if len(snap.Walls) == 0 {
				t.Fatalf("restart did not generate walls")
			}
			if g.updateTime != 0 {
				t.Fatalf("accumulator = %v, want 0", g.updateTime)
			}
			if snap.GamesPlayed != 1 {
				t.Fatalf("GamesPlayed = %d, want 1", snap.GamesPlayed)
			}
			if m.restarts != 1 {
				t.Fatalf("restarts = %d, want 1", m.restarts)
			}
		})
	}
}

func TestSnapshotIsACopy(t *testing.T) {
	g := newTestGame(t)
	snap := g.Snapshot()
	snap.Body[0].Pos = types.Point{X: 99, Y: 99}
	snap.Border[0].Pos = types.Point{X: 99, Y: 99}

	fresh := g.Snapshot()
	if fresh.Body[0].Pos == (types.Point{X: 99, Y: 99}) || fresh.Border[0].Pos == (types.Point{X: 99, Y: 99}) {
		t.Fatalf("snapshot shares memory with the game")
	}
}

func TestHighScoreCarriesAcrossRestart(t *testing.T) {
	g := newTestGame(t)
	g.fruit = entity.NewFruit(types.Point{X: 5, Y: 5})
	g.Update(tickDt)

	if got := g.Snapshot().HighScore; got != 1 {
		t.Fatalf("HighScore = %d, want 1 during the session", got)
	}

	g.HandleInput(Restart())
	if got := g.Snapshot().HighScore; got != 1 {
		t.Fatalf("HighScore = %d, want 1 after restart", got)
	}
}

func TestSnapshotCarriesSessionStats(t *testing.T) {
	g := newTestGame(t)
	start := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	g.stats.AddGame("a", start, start.Add(10*time.Second), 2)
	g.stats.AddGame("b", start.Add(time.Minute), start.Add(time.Minute+30*time.Second), 6)

	snap := g.Snapshot()
	if snap.MedianScore != 4 {
		t.Fatalf("MedianScore = %v, want 4", snap.MedianScore)
	}
	if snap.AverageDuration != 20 {
		t.Fatalf("AverageDuration = %v, want 20", snap.AverageDuration)
	}
}

func TestLogLinesCarrySessionID(t *testing.T) {
	var buf bytes.Buffer
	cfg := DefaultConfig()
	cfg.Width, cfg.Height = 10, 10

	g, err := New(cfg, WithLogger(zerolog.New(&buf)), WithRandom(fixedRandom(1)))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	first := g.ID()

	g.HandleInput(Restart())
	second := g.ID()
	if first == second {
		t.Fatalf("restart kept session id %s", first)
	}

	// session built, restarting, session built
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	want := []string{first, first, second}
	if len(lines) != len(want) {
		t.Fatalf("got %d log lines, want %d:\n%s", len(lines), len(want), buf.String())
	}
	for i, line := range lines {
		if !strings.Contains(line, `"session":"`+want[i]+`"`) {
			t.Fatalf("line %d = %s, want session %s", i, line, want[i])
		}
	}
}
