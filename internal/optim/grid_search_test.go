package optim

import (
	"context"
	"testing"
	"time"

	"github.com/san-kum/wordrain/internal/config"
	"github.com/san-kum/wordrain/internal/experiment"
	"github.com/san-kum/wordrain/internal/metrics"
)

func builder(t *testing.T) func(map[string]float64) (*experiment.Experiment, error) {
	return func(params map[string]float64) (*experiment.Experiment, error) {
		cfg := config.DefaultConfig()
		cfg.Columns = 6
		cfg.Seed = 4
		for k, v := range params {
			if err := cfg.SetNumeric(k, v); err != nil {
				return nil, err
			}
		}
		exp := experiment.New(experiment.Config{
			Name:     "grid",
			Field:    cfg,
			Step:     16 * time.Millisecond,
			Duration: 3 * time.Second,
		})
		if err := exp.Setup(metrics.Defaults()); err != nil {
			return nil, err
		}
		return exp, nil
	}
}

func TestGridSearch_Maximize(t *testing.T) {
	g := NewGridSearch([]string{"trails"}, [][]float64{{1, 3}}).Maximize()

	best, val, trials, err := g.Search(context.Background(), builder(t), "live_drops")
	if err != nil {
		t.Fatalf("search failed: %v", err)
	}
	if len(trials) != 2 {
		t.Errorf("expected 2 trials, got %d", len(trials))
	}
	if best["trails"] != 3 {
		t.Errorf("more trails should show more drops, best = %v", best)
	}
	if val <= 0 {
		t.Errorf("best value = %f", val)
	}
}

func TestGridSearch_SkipsInvalidPoints(t *testing.T) {
	g := NewGridSearch([]string{"trails", "gap"}, [][]float64{{0, 1}, {2}})

	best, _, trials, err := g.Search(context.Background(), builder(t), "empty_columns")
	if err != nil {
		t.Fatalf("search failed: %v", err)
	}
	if len(trials) != 2 || trials[0].Err == nil {
		t.Fatalf("expected the zero-trail point to fail, trials = %+v", trials)
	}
	if best["trails"] != 1 {
		t.Errorf("best = %v", best)
	}
}

func TestGridSearch_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	g := NewGridSearch([]string{"trails"}, [][]float64{{1, 2}})
	if _, _, _, err := g.Search(ctx, builder(t), "live_drops"); err != context.Canceled {
		t.Errorf("expected context.Canceled, got %v", err)
	}
}

func TestParseAxis(t *testing.T) {
	tests := []struct {
		in      string
		name    string
		values  []float64
		wantErr bool
	}{
		{"trails=1,2,3", "trails", []float64{1, 2, 3}, false},
		{" gap = 0, 4 ", "gap", []float64{0, 4}, false},
		{"trails", "", nil, true},
		{"=1,2", "", nil, true},
		{"gap=a", "", nil, true},
	}

	for _, tt := range tests {
		name, values, err := ParseAxis(tt.in)
		if tt.wantErr {
			if err == nil {
				t.Errorf("ParseAxis(%q): expected error", tt.in)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseAxis(%q): %v", tt.in, err)
			continue
		}
		if name != tt.name || len(values) != len(tt.values) {
			t.Errorf("ParseAxis(%q) = %s %v", tt.in, name, values)
			continue
		}
		for i := range values {
			if values[i] != tt.values[i] {
				t.Errorf("ParseAxis(%q) = %v, want %v", tt.in, values, tt.values)
			}
		}
	}
}
