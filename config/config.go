package config

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"blocksnake/game"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
)

// Config is everything the executable needs to start.
type Config struct {
	Game         game.Config
	LogLevel     string
	LogFormat    string // json or console
	MetricsAddr  string // Empty disables the metrics server
	FPS          int
	WindowWidth  int
	WindowHeight int
}

// Load reads an optional .env file, takes defaults from the environment and
// lets command line flags override them.
func Load(args []string) (Config, error) {
	_ = godotenv.Load()
	return Parse(args)
}

// Parse builds a Config from the current environment and args.
func Parse(args []string) (Config, error) {
	defaults := game.DefaultConfig()

	width, err := envInt("SNAKE_WIDTH", defaults.Width)
	if err != nil {
		return Config{}, err
	}
	height, err := envInt("SNAKE_HEIGHT", defaults.Height)
	if err != nil {
		return Config{}, err
	}
	seed, err := envUint("SNAKE_SEED", 0)
	if err != nil {
		return Config{}, err
	}
	avoid, err := envBool("SNAKE_AVOID_OVERLAP", false)
	if err != nil {
		return Config{}, err
	}

	cfg := Config{Game: defaults}
	fs := flag.NewFlagSet("blocksnake", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.IntVar(&cfg.Game.Width, "width", width, "Grid width in cells")
	fs.IntVar(&cfg.Game.Height, "height", height, "Grid height in cells")
	fs.Float64Var(&cfg.Game.InitialVelocity, "velocity", defaults.InitialVelocity, "Initial speed in steps per second")
	fs.BoolVar(&cfg.Game.AvoidOverlap, "avoid-overlap", avoid, "Keep fruit and wall anchors off occupied cells")
	fs.Uint64Var(&cfg.Game.Seed, "seed", seed, "Random seed (0 seeds from the clock)")
	fs.StringVar(&cfg.LogLevel, "log-level", getEnv("LOG_LEVEL", "info"), "Log level")
	fs.StringVar(&cfg.LogFormat, "log-format", getEnv("LOG_FORMAT", "console"), "Log format: json or console")
	fs.StringVar(&cfg.MetricsAddr, "metrics-addr", getEnv("METRICS_ADDR", ""), "Address for /metrics, empty to disable")
	fs.IntVar(&cfg.FPS, "fps", 60, "Frames per second")
	fs.IntVar(&cfg.WindowWidth, "window-width", 1280, "Window width in pixels")
	fs.IntVar(&cfg.WindowHeight, "window-height", 800, "Window height in pixels")

	if err := fs.Parse(args); err != nil {
		return Config{}, fmt.Errorf("parse flags: %w", err)
	}
	if err := cfg.Game.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Logger builds the process logger and sets the global level.
func (c Config) Logger(w io.Writer) zerolog.Logger {
	if lvl, err := zerolog.ParseLevel(c.LogLevel); err == nil {
		zerolog.SetGlobalLevel(lvl)
	}
	if strings.EqualFold(c.LogFormat, "console") {
		w = zerolog.ConsoleWriter{Out: w}
	}
	return zerolog.New(w).With().Timestamp().Logger()
}

func getEnv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func envInt(k string, def int) (int, error) {
	v := os.Getenv(k)
	if v == "" {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", k, err)
	}
	return n, nil
}

func envUint(k string, def uint64) (uint64, error) {
	v := os.Getenv(k)
	if v == "" {
		return def, nil
	}
	n, err := strconv.ParseUint(v, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", k, err)
	}
	return n, nil
}

func envBool(k string, def bool) (bool, error) {
	v := os.Getenv(k)
	if v == "" {
		return def, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, fmt.Errorf("%s: %w", k, err)
	}
	return b, nil
}
