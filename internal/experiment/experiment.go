package experiment

import (
	"context"
	"fmt"
	"time"

	"github.com/san-kum/wordrain/internal/config"
	"github.com/san-kum/wordrain/internal/rain"
	"github.com/san-kum/wordrain/internal/sim"
)

// DefaultViewport is the pixel size headless runs simulate.
var DefaultViewport = rain.Viewport{Width: 1280, Height: 720}

type Config struct {
	Name     string
	Field    *config.Config
	Step     time.Duration
	Duration time.Duration
	Viewport rain.Viewport
}

type Experiment struct {
	cfg       Config
	params    rain.Params
	simulator *sim.Simulator
}

func New(cfg Config) *Experiment {
	if cfg.Viewport == (rain.Viewport{}) {
		cfg.Viewport = DefaultViewport
	}
	return &Experiment{cfg: cfg}
}

// Setup validates the field configuration and attaches metrics.
func (e *Experiment) Setup(metrics []sim.Metric) error {
	if e.cfg.Field == nil {
		return fmt.Errorf("experiment %q has no field configuration", e.cfg.Name)
	}
	params, err := e.cfg.Field.Params()
	if err != nil {
		return fmt.Errorf("experiment %q: %w", e.cfg.Name, err)
	}
	e.params = params
	e.simulator = sim.New(params, e.cfg.Viewport)
	for _, m := range metrics {
		e.simulator.AddMetric(m)
	}
	return nil
}

func (e *Experiment) Run(ctx context.Context) (*sim.Result, error) {
	if e.simulator == nil {
		return nil, fmt.Errorf("experiment not setup")
	}

	simCfg := sim.Config{
		Step:     e.cfg.Step,
		Duration: e.cfg.Duration,
		Seed:     e.cfg.Field.Seed,
	}

	return e.simulator.Run(ctx, simCfg)
}

// GetSimulator returns the underlying simulator for adding observers
func (e *Experiment) GetSimulator() *sim.Simulator {
	return e.simulator
}

func (e *Experiment) Params() rain.Params { return e.params }
func (e *Experiment) Config() Config      { return e.cfg }
