package sim

import (
	"context"
	"sync"

	"github.com/san-kum/wordrain/internal/rain"
)

// Ensemble runs the same parameters under consecutive seeds concurrently.
// Metrics are built per run by the factory since they hold state.
type Ensemble struct {
	params    rain.Params
	viewport  rain.Viewport
	metrics   func() []Metric
	numRuns   int
	seedStart int64
}

func NewEnsemble(p rain.Params, vp rain.Viewport, metrics func() []Metric, numRuns int, seedStart int64) *Ensemble {
	return &Ensemble{params: p, viewport: vp, metrics: metrics, numRuns: numRuns, seedStart: seedStart}
}

func (e *Ensemble) Run(ctx context.Context, cfg Config) ([]*Result, error) {
	results := make([]*Result, e.numRuns)
	errs := make([]error, e.numRuns)

	var wg sync.WaitGroup
	for i := 0; i < e.numRuns; i++ {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()

			cfgCopy := cfg
			cfgCopy.Seed = e.seedStart + int64(idx)

			s := New(e.params, e.viewport)
			if e.metrics != nil {
				for _, m := range e.metrics() {
					s.AddMetric(m)
				}
			}

			results[idx], errs[idx] = s.Run(ctx, cfgCopy)
		}(i)
	}

	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}

	return results, nil
}
