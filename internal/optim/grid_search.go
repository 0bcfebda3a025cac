package optim

import (
	"context"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/san-kum/wordrain/internal/experiment"
)

type GridSearch struct {
	paramNames []string
	ranges     [][]float64
	maximize   bool
}

func NewGridSearch(params []string, ranges [][]float64) *GridSearch {
	return &GridSearch{paramNames: params, ranges: ranges}
}

// Maximize flips the search to keep the largest metric value.
func (g *GridSearch) Maximize() *GridSearch {
	g.maximize = true
	return g
}

// Trial is one evaluated grid point.
type Trial struct {
	Params map[string]float64
	Value  float64
	Err    error
}

// Search evaluates every grid point and returns the best one. Points whose
// experiment fails to build or run are recorded in trials and skipped.
func (g *GridSearch) Search(
	ctx context.Context,
	buildExperiment func(params map[string]float64) (*experiment.Experiment, error),
	metricName string,
) (map[string]float64, float64, []Trial, error) {

	best := math.Inf(1)
	if g.maximize {
		best = math.Inf(-1)
	}
	var bestParams map[string]float64
	var trials []Trial

	err := g.searchRecursive(ctx, 0, make(map[string]float64), buildExperiment, metricName, &best, &bestParams, &trials)
	if err != nil {
		return nil, 0, trials, err
	}
	if bestParams == nil {
		return nil, 0, trials, fmt.Errorf("no grid point produced metric %q", metricName)
	}

	return bestParams, best, trials, nil
}

func (g *GridSearch) better(v, best float64) bool {
	if g.maximize {
		return v > best
	}
	return v < best
}

func (g *GridSearch) searchRecursive(
	ctx context.Context,
	depth int,
	current map[string]float64,
	buildExperiment func(map[string]float64) (*experiment.Experiment, error),
	metricName string,
	best *float64,
	bestParams *map[string]float64,
	trials *[]Trial,
) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if depth == len(g.paramNames) {
		trial := Trial{Params: current}
		defer func() { *trials = append(*trials, trial) }()

		exp, err := buildExperiment(current)
		if err != nil {
			trial.Err = err
			return nil
		}

		result, err := exp.Run(ctx)
		if err != nil {
			trial.Err = err
			return ctx.Err()
		}

		val, ok := result.Metrics[metricName]
		if !ok {
			trial.Err = fmt.Errorf("metric %q not recorded", metricName)
			return nil
		}
		trial.Value = val

		if *bestParams == nil || g.better(val, *best) {
			*best = val
			*bestParams = make(map[string]float64)
			for k, v := range current {
				(*bestParams)[k] = v
			}
		}
		return nil
	}

	paramName := g.paramNames[depth]
	for _, val := range g.ranges[depth] {
		newParams := make(map[string]float64)
		for k, v := range current {
			newParams[k] = v
		}
		newParams[paramName] = val

		if err := g.searchRecursive(ctx, depth+1, newParams, buildExperiment, metricName, best, bestParams, trials); err != nil {
			return err
		}
	}
	return nil
}

// ParseAxis parses "name=v1,v2,..." into a grid axis.
func ParseAxis(s string) (string, []float64, error) {
	name, list, ok := strings.Cut(s, "=")
	name = strings.TrimSpace(name)
	if !ok || name == "" || strings.TrimSpace(list) == "" {
		return "", nil, fmt.Errorf("grid axis %q: want name=v1,v2", s)
	}

	var values []float64
	for _, part := range strings.Split(list, ",") {
		v, err := strconv.ParseFloat(strings.TrimSpace(part), 64)
		if err != nil {
			return "", nil, fmt.Errorf("grid axis %q: %w", s, err)
		}
		values = append(values, v)
	}
	return name, values, nil
}
