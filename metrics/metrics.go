package metrics

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Collector bundles the Prometheus metrics of the simulation. It satisfies
// game.MetricsRecorder.
type Collector struct {
	gatherer prometheus.Gatherer

	Ticks     prometheus.Counter
	Fruits    prometheus.Counter
	GameOvers *prometheus.CounterVec
	Restarts  prometheus.Counter
	Score     prometheus.Gauge
	Velocity  prometheus.Gauge
}

// NewCollector registers the metrics against reg, defaulting to the global
// registry when nil.
func NewCollector(reg prometheus.Registerer) (*Collector, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	gatherer := prometheus.DefaultGatherer
	if g, ok := reg.(prometheus.Gatherer); ok {
		gatherer = g
	}

	ticks, err := registerCounter(reg, prometheus.NewCounter(prometheus.CounterOpts{
		Name: "snake_ticks_total",
		Help: "Simulation steps executed.",
	}), "snake_ticks_total")
	if err != nil {
		return nil, err
	}

	fruits, err := registerCounter(reg, prometheus.NewCounter(prometheus.CounterOpts{
		Name: "snake_fruit_eaten_total",
		Help: "Fruit consumed across all sessions.",
	}), "snake_fruit_eaten_total")
	if err != nil {
		return nil, err
	}

	gameOvers, err := registerCounterVec(reg, prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "snake_game_overs_total",
		Help: "Sessions ended by a fatal collision, labeled by what was hit.",
	}, []string{"cause"}), "snake_game_overs_total")
	if err != nil {
		return nil, err
	}

	restarts, err := registerCounter(reg, prometheus.NewCounter(prometheus.CounterOpts{
		Name: "snake_restarts_total",
		Help: "Sessions rebuilt on player request.",
	}), "snake_restarts_total")
	if err != nil {
		return nil, err
	}

	score, err := registerGauge(reg, prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "snake_score",
		Help: "Score of the current session.",
	}), "snake_score")
	if err != nil {
		return nil, err
	}

	velocity, err := registerGauge(reg, prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "snake_velocity_steps_per_second",
		Help: "Current snake velocity.",
	}), "snake_velocity_steps_per_second")
	if err != nil {
		return nil, err
	}

	return &Collector{
		gatherer:  gatherer,
		Ticks:     ticks,
		Fruits:    fruits,
		GameOvers: gameOvers,
		Restarts:  restarts,
		Score:     score,
		Velocity:  velocity,
	}, nil
}

func (c *Collector) RecordTick() {
	if c == nil {
		return
	}
	c.Ticks.Inc()
}

func (c *Collector) RecordFruit() {
	if c == nil {
		return
	}
	c.Fruits.Inc()
}

func (c *Collector) RecordGameOver(cause string) {
	if c == nil {
		return
	}
	c.GameOvers.WithLabelValues(cause).Inc()
}

func (c *Collector) RecordRestart() {
	if c == nil {
		return
	}
	c.Restarts.Inc()
}

func (c *Collector) SetSessionGauges(score int, velocity float64) {
	if c == nil {
		return
	}
	c.Score.Set(float64(score))
	c.Velocity.Set(velocity)
}

// Handler exposes a ready-to-use /metrics handler.
func (c *Collector) Handler() http.Handler {
	gatherer := c.gatherer
	if gatherer == nil {
		gatherer = prometheus.DefaultGatherer
	}
	return promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})
}

// Router serves /metrics and /healthz.
func (c *Collector) Router() http.Handler {
	r := chi.NewRouter()
	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	r.Handle("/metrics", c.Handler())
	return r
}

func registerCounter(reg prometheus.Registerer, counter prometheus.Counter, name string) (prometheus.Counter, error) {
	if err := reg.Register(counter); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			if existing, ok := are.ExistingCollector.(prometheus.Counter); ok {
				return existing, nil
			}
			return nil, fmt.Errorf("collector %s already registered with incompatible type", name)
		}
		return nil, err
	}
	return counter, nil
}

func registerCounterVec(reg prometheus.Registerer, vec *prometheus.CounterVec, name string) (*prometheus.CounterVec, error) {
	if err := reg.Register(vec); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			if existing, ok := are.ExistingCollector.(*prometheus.CounterVec); ok {
				return existing, nil
			}
			return nil, fmt.Errorf("collector %s already registered with incompatible type", name)
		}
		return nil, err
	}
	return vec, nil
}

func registerGauge(reg prometheus.Registerer, gauge prometheus.Gauge, name string) (prometheus.Gauge, error) {
	if err := reg.Register(gauge); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			if existing, ok := are.ExistingCollector.(prometheus.Gauge); ok {
				return existing, nil
			}
			return nil, fmt.Errorf("collector %s already registered with incompatible type", name)
		}
		return nil, err
	}
	return gauge, nil
}
