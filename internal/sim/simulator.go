package sim

import (
	"context"
	"fmt"
	"time"

	"github.com/san-kum/wordrain/internal/rain"
)

// Simulator drives a Field headlessly with a fixed-step clock.
type Simulator struct {
	params    rain.Params
	viewport  rain.Viewport
	metrics   []Metric
	observers []Observer
}

func New(p rain.Params, vp rain.Viewport) *Simulator {
	return &Simulator{
		params:    p,
		viewport:  vp,
		metrics:   make([]Metric, 0),
		observers: make([]Observer, 0),
	}
}

func (s *Simulator) AddMetric(m Metric)     { s.metrics = append(s.metrics, m) }
func (s *Simulator) AddObserver(o Observer) { s.observers = append(s.observers, o) }

// Run simulates cfg.Duration in cfg.Step ticks. On cancellation the partial
// result is returned together with ctx.Err().
func (s *Simulator) Run(ctx context.Context, cfg Config) (*Result, error) {
	if err := s.validateConfig(cfg); err != nil {
		return nil, err
	}

	steps := int(cfg.Duration / cfg.Step)
	result := &Result{
		Seed:     cfg.Seed,
		Times:    make([]time.Duration, 0, steps),
		Drops:    make([]int, 0, steps),
		Trails:   make([]int, 0, steps),
		Metrics:  make(map[string]float64),
		Viewport: s.viewport,
	}

	for _, m := range s.metrics {
		m.Reset()
	}

	clock := &FixedClock{Step: cfg.Step}
	field := rain.New(s.params, s.viewport, rain.NewSource(cfg.Seed), clock.Now())

	var runErr error
	for i := 0; i < steps; i++ {
		select {
		case <-ctx.Done():
			runErr = ctx.Err()
		default:
		}
		if runErr != nil {
			break
		}

		now := clock.Advance()
		field.Update(now)

		for _, m := range s.metrics {
			m.Observe(field, now)
		}
		for _, obs := range s.observers {
			obs.OnFrame(field, now)
		}

		result.Frames++
		result.Times = append(result.Times, now)
		result.Drops = append(result.Drops, field.DropCount())
		result.Trails = append(result.Trails, field.TrailCount())
	}

	for _, m := range s.metrics {
		result.Metrics[m.Name()] = m.Value()
	}
	result.Final = field.Glyphs()

	return result, runErr
}

func (s *Simulator) validateConfig(cfg Config) error {
	if cfg.Step <= 0 {
		return fmt.Errorf("step must be positive, got %v", cfg.Step)
	}
	if cfg.Duration <= 0 {
		return fmt.Errorf("duration must be positive, got %v", cfg.Duration)
	}
	if cfg.Step > rain.MaxFrameStep {
		return fmt.Errorf("step %v exceeds the %v frame clamp", cfg.Step, rain.MaxFrameStep)
	}
	return nil
}

// RunWithCallback drives a fresh field until the duration elapses or the
// callback returns false.
func (s *Simulator) RunWithCallback(ctx context.Context, cfg Config, callback func(*rain.Field, time.Duration) bool) error {
	if err := s.validateConfig(cfg); err != nil {
		return err
	}

	clock := &FixedClock{Step: cfg.Step}
	field := rain.New(s.params, s.viewport, rain.NewSource(cfg.Seed), clock.Now())

	for clock.Now() < cfg.Duration {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		now := clock.Advance()
		field.Update(now)
		if !callback(field, now) {
			return nil
		}
	}

	return nil
}
