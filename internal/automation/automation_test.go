package automation

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/san-kum/wordrain/internal/config"
	"github.com/san-kum/wordrain/internal/metrics"
)

const scenarioYAML = `
name: demo
description: two short runs
steps:
  - preset: amber
    duration: 0.5
    seed: 3
    save_as: amber_run
  - name: narrow
    config:
      columns: 4
      words: [red, pill]
    duration: 0.5
    step_ms: 20
    seed: 5
`

func writeScenario(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "scenario.yaml")
	if err := os.WriteFile(path, []byte(body), 0644); err != nil {
		t.Fatalf("write failed: %v", err)
	}
	return path
}

func TestLoadScenario(t *testing.T) {
	sc, err := LoadScenario(writeScenario(t, scenarioYAML))
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if sc.Name != "demo" || len(sc.Steps) != 2 {
		t.Fatalf("unexpected scenario: %+v", sc)
	}

	cfg, err := sc.Steps[1].FieldConfig()
	if err != nil {
		t.Fatalf("field config: %v", err)
	}
	if cfg.Columns != 4 || len(cfg.Words) != 2 || cfg.Seed != 5 {
		t.Errorf("overrides not applied: %+v", cfg)
	}
	if cfg.TrailLength != config.DefaultTrailLength {
		t.Errorf("defaults lost: trail length %d", cfg.TrailLength)
	}

	amber, err := sc.Steps[0].FieldConfig()
	if err != nil {
		t.Fatalf("field config: %v", err)
	}
	if amber.Color.Mode != "solid" {
		t.Errorf("preset not applied: %+v", amber.Color)
	}
}

func TestLoadScenario_Empty(t *testing.T) {
	if _, err := LoadScenario(writeScenario(t, "name: nothing\n")); err == nil {
		t.Error("expected error for a scenario without steps")
	}
}

func TestRunScenario(t *testing.T) {
	sc, err := LoadScenario(writeScenario(t, scenarioYAML))
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}

	results, err := RunScenario(context.Background(), sc, metrics.Defaults, io.Discard)
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}
	if len(results) != 2 {
		t.Fatalf("expected 2 results, got %d", len(results))
	}
	if results[0].Result.Frames != 31 {
		t.Errorf("step 1 frames = %d, want 31", results[0].Result.Frames)
	}
	if results[1].Result.Frames != 25 {
		t.Errorf("step 2 frames = %d, want 25", results[1].Result.Frames)
	}
	if results[0].Step.SaveAs != "amber_run" {
		t.Errorf("save_as = %q", results[0].Step.SaveAs)
	}
	if results[1].Result.Metrics["empty_columns"] != 0 {
		t.Error("columns should never be empty")
	}
}

func TestRunScenario_BadPreset(t *testing.T) {
	sc := &Scenario{Name: "bad", Steps: []ScenarioStep{{Preset: "plaid"}}}
	if _, err := RunScenario(context.Background(), sc, nil, io.Discard); err == nil {
		t.Error("expected error for unknown preset")
	}
}

func TestRunSweep(t *testing.T) {
	sweep := &ParameterSweep{
		Base:      config.DefaultConfig(),
		ParamName: "gap",
		ParamMin:  0,
		ParamMax:  4,
		NumSteps:  3,
		Duration:  time.Second,
		Step:      20 * time.Millisecond,
	}
	sweep.Base.Seed = 1

	results, err := RunSweep(context.Background(), sweep, metrics.Defaults, io.Discard)
	if err != nil {
		t.Fatalf("sweep failed: %v", err)
	}
	if len(results) != 3 {
		t.Fatalf("expected 3 results, got %d", len(results))
	}
	for i, want := range []float64{0, 2, 4} {
		if results[i].ParamValue != want {
			t.Errorf("point %d = %v, want %v", i, results[i].ParamValue, want)
		}
		if results[i].Frames != 50 {
			t.Errorf("point %d frames = %d", i, results[i].Frames)
		}
	}
	if sweep.Base.GapWords != config.DefaultGapWords {
		t.Error("sweep must not modify the base config")
	}
}

func TestRunSweep_UnknownParam(t *testing.T) {
	sweep := &ParameterSweep{Base: config.DefaultConfig(), ParamName: "hue", NumSteps: 2, Duration: time.Second, Step: 20 * time.Millisecond}
	if _, err := RunSweep(context.Background(), sweep, nil, io.Discard); err == nil {
		t.Error("expected error for an unknown parameter")
	}
}
