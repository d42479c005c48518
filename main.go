package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"time"

	"blocksnake/config"
	"blocksnake/game"
	"blocksnake/metrics"
	"blocksnake/ui"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog/log"
)

func main() {
	cfg, err := config.Load(os.Args[1:])
	if err != nil {
		log.Fatal().Err(err).Msg("invalid configuration")
	}
	log.Logger = cfg.Logger(os.Stderr)

	collector, err := metrics.NewCollector(prometheus.NewRegistry())
	if err != nil {
		log.Fatal().Err(err).Msg("register metrics")
	}

	g, err := game.New(cfg.Game,
		game.WithLogger(log.Logger),
		game.WithMetricsRecorder(collector),
	)
	if err != nil {
		log.Fatal().Err(err).Msg("create game")
	}

	var srv *http.Server
	if cfg.MetricsAddr != "" {
		srv = &http.Server{
			Addr:              cfg.MetricsAddr,
			Handler:           collector.Router(),
			ReadHeaderTimeout: 5 * time.Second,
		}
		go func() {
			log.Info().Str("addr", cfg.MetricsAddr).Msg("metrics listening")
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				log.Error().Err(err).Msg("metrics server")
			}
		}()
	}

	rl.InitWindow(int32(cfg.WindowWidth), int32(cfg.WindowHeight), "Block Snake")
	rl.SetWindowState(rl.FlagWindowResizable)
	defer rl.CloseWindow()

	rl.SetTargetFPS(int32(cfg.FPS))

	renderer := ui.NewRenderer()

	for !rl.WindowShouldClose() {
		if rl.IsWindowResized() {
			renderer.UpdateDimensions()
		}

		for _, ev := range ui.PollEvents(g.State()) {
			g.HandleInput(ev)
		}
		g.Update(float64(rl.GetFrameTime()))

		renderer.Draw(g.Snapshot(), g.Stats().Records())
	}

	if srv != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		_ = srv.Shutdown(ctx)
	}

	log.Info().
		Int("games", g.Stats().GamesPlayed()).
		Int("high_score", g.Stats().HighScore()).
		Msg("bye")
}
