package automation

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/san-kum/wordrain/internal/config"
	"github.com/san-kum/wordrain/internal/experiment"
	"github.com/san-kum/wordrain/internal/sim"
	"gopkg.in/yaml.v3"
)

const (
	defaultStepMS   = 16
	defaultDuration = 10
)

// Scenario defines a scripted sequence of headless runs
type Scenario struct {
	Name        string         `yaml:"name"`
	Description string         `yaml:"description"`
	Steps       []ScenarioStep `yaml:"steps"`
}

// ScenarioStep is one run: a preset, optional config overrides applied on
// top of it, and the run length.
type ScenarioStep struct {
	Name     string    `yaml:"name"`
	Preset   string    `yaml:"preset"`
	Config   yaml.Node `yaml:"config"`
	Duration float64   `yaml:"duration"`
	StepMS   float64   `yaml:"step_ms"`
	Seed     int64     `yaml:"seed"`
	SaveAs   string    `yaml:"save_as"`
}

// StepResult pairs a finished step with its result.
type StepResult struct {
	Step   ScenarioStep
	Result *sim.Result
}

// LoadScenario loads a scenario from a YAML file
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var scenario Scenario
	if err := yaml.Unmarshal(data, &scenario); err != nil {
		return nil, err
	}
	if len(scenario.Steps) == 0 {
		return nil, fmt.Errorf("scenario %q has no steps", scenario.Name)
	}

	return &scenario, nil
}

// FieldConfig resolves the step's preset and overrides.
func (s ScenarioStep) FieldConfig() (*config.Config, error) {
	cfg := config.DefaultConfig()
	if s.Preset != "" {
		p, err := config.LookupPreset(s.Preset)
		if err != nil {
			return nil, err
		}
		cfg = p
	}
	if s.Config.Kind != 0 {
		if err := s.Config.Decode(cfg); err != nil {
			return nil, err
		}
		cfg.Words = config.NormalizeWords(cfg.Words)
	}
	if s.Seed != 0 {
		cfg.Seed = s.Seed
	}
	return cfg, cfg.Validate()
}

func (s ScenarioStep) label() string {
	switch {
	case s.Name != "":
		return s.Name
	case s.Preset != "":
		return s.Preset
	}
	return "custom"
}

func (s ScenarioStep) experiment() (*experiment.Experiment, error) {
	cfg, err := s.FieldConfig()
	if err != nil {
		return nil, err
	}
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	stepMS, dur := s.StepMS, s.Duration
	if stepMS <= 0 {
		stepMS = defaultStepMS
	}
	if dur <= 0 {
		dur = defaultDuration
	}

	return experiment.New(experiment.Config{
		Name:     s.label(),
		Field:    cfg,
		Step:     time.Duration(stepMS * float64(time.Millisecond)),
		Duration: time.Duration(dur * float64(time.Second)),
	}), nil
}

// RunScenario executes all steps in a scenario, reporting progress to out.
// Metrics are built fresh for every step.
func RunScenario(ctx context.Context, scenario *Scenario, newMetrics func() []sim.Metric, out io.Writer) ([]StepResult, error) {
	results := make([]StepResult, 0, len(scenario.Steps))

	for i, step := range scenario.Steps {
		fmt.Fprintf(out, "Running step %d/%d: %s\n", i+1, len(scenario.Steps), step.label())

		exp, err := step.experiment()
		if err != nil {
			return results, fmt.Errorf("step %d: %w", i+1, err)
		}

		var metrics []sim.Metric
		if newMetrics != nil {
			metrics = newMetrics()
		}
		if err := exp.Setup(metrics); err != nil {
			return results, fmt.Errorf("step %d setup: %w", i+1, err)
		}

		result, err := exp.Run(ctx)
		if err != nil {
			return results, fmt.Errorf("step %d run: %w", i+1, err)
		}

		results = append(results, StepResult{Step: step, Result: result})
	}

	return results, nil
}

// ParameterSweep runs one configuration across a range of a numeric field
type ParameterSweep struct {
	Base      *config.Config
	ParamName string
	ParamMin  float64
	ParamMax  float64
	NumSteps  int
	Duration  time.Duration
	Step      time.Duration
}

// SweepResult holds the metrics of one sweep point
type SweepResult struct {
	ParamValue float64
	Frames     int
	Metrics    map[string]float64
}

// RunSweep executes a parameter sweep
func RunSweep(ctx context.Context, sweep *ParameterSweep, newMetrics func() []sim.Metric, out io.Writer) ([]SweepResult, error) {
	if sweep.NumSteps < 1 {
		return nil, fmt.Errorf("sweep needs at least one step, got %d", sweep.NumSteps)
	}
	results := make([]SweepResult, 0, sweep.NumSteps)

	paramStep := 0.0
	if sweep.NumSteps > 1 {
		paramStep = (sweep.ParamMax - sweep.ParamMin) / float64(sweep.NumSteps-1)
	}

	for i := 0; i < sweep.NumSteps; i++ {
		paramVal := sweep.ParamMin + float64(i)*paramStep

		cfg := sweep.Base.Clone()
		if err := cfg.SetNumeric(sweep.ParamName, paramVal); err != nil {
			return nil, err
		}

		exp := experiment.New(experiment.Config{
			Name:     fmt.Sprintf("%s=%.4g", sweep.ParamName, paramVal),
			Field:    cfg,
			Step:     sweep.Step,
			Duration: sweep.Duration,
		})
		var metrics []sim.Metric
		if newMetrics != nil {
			metrics = newMetrics()
		}
		if err := exp.Setup(metrics); err != nil {
			return nil, err
		}

		result, err := exp.Run(ctx)
		if err != nil {
			return nil, err
		}

		results = append(results, SweepResult{
			ParamValue: paramVal,
			Frames:     result.Frames,
			Metrics:    result.Metrics,
		})

		fmt.Fprintf(out, "Sweep %d/%d: %s=%.4f\n", i+1, sweep.NumSteps, sweep.ParamName, paramVal)
	}

	return results, nil
}
