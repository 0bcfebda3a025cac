package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/san-kum/wordrain/internal/rain"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
	if cfg.Columns != DefaultColumns {
		t.Errorf("expected %d columns, got %d", DefaultColumns, cfg.Columns)
	}
	if len(cfg.Words) == 0 {
		t.Error("default config should carry words")
	}
}

func TestDefaultConfig_Params(t *testing.T) {
	p, err := DefaultConfig().Params()
	if err != nil {
		t.Fatalf("params failed: %v", err)
	}

	if p.LineHeight != DefaultFontSize*LineHeightRatio {
		t.Errorf("line height = %f, want %f", p.LineHeight, DefaultFontSize*LineHeightRatio)
	}
	if p.SpawnInterval != 350*time.Millisecond {
		t.Errorf("spawn interval = %v, want 350ms", p.SpawnInterval)
	}
	if p.FallDuration != 2*time.Second {
		t.Errorf("fall duration = %v, want 2s", p.FallDuration)
	}
	if p.Palette.Mode != rain.ModeClassic || p.Policy != rain.PolicyGap {
		t.Errorf("unexpected mode/policy: %v/%v", p.Palette.Mode, p.Policy)
	}
	if p.Palette.Solid != (rain.RGB{R: 0, G: 255, B: 65}) {
		t.Errorf("solid = %v", p.Palette.Solid)
	}
}

func TestNormalizeWords(t *testing.T) {
	tests := []struct {
		name string
		in   []string
		want []string
	}{
		{"trimmed", []string{" a ", "b"}, []string{"a", "b"}},
		{"blanks dropped", []string{"", " ", "c"}, []string{"c"}},
		{"empty falls back", []string{" ", ""}, []string{rain.DefaultWord}},
		{"nil falls back", nil, []string{rain.DefaultWord}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NormalizeWords(tt.in)
			if len(got) != len(tt.want) {
				t.Fatalf("got %v, want %v", got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("got %v, want %v", got, tt.want)
				}
			}
		})
	}
}

func TestParseWords(t *testing.T) {
	got := ParseWords("one\ntwo  three\t")
	if len(got) != 3 || got[0] != "one" || got[2] != "three" {
		t.Errorf("ParseWords = %v", got)
	}
	if got := ParseWords("   "); len(got) != 1 || got[0] != rain.DefaultWord {
		t.Errorf("blank input should fall back, got %v", got)
	}
}

func TestParseHex(t *testing.T) {
	tests := []struct {
		in      string
		want    rain.RGB
		wantErr bool
	}{
		{"#00ff41", rain.RGB{R: 0, G: 255, B: 65}, false},
		{"FFBF00", rain.RGB{R: 255, G: 191, B: 0}, false},
		{"#f00", rain.RGB{R: 255}, false},
		{"#zzzzzz", rain.RGB{}, true},
		{"", rain.RGB{}, true},
	}

	for _, tt := range tests {
		got, err := ParseHex(tt.in)
		if tt.wantErr {
			if !errors.Is(err, ErrInvalidColor) {
				t.Errorf("ParseHex(%q): expected ErrInvalidColor, got %v", tt.in, err)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseHex(%q): %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseHex(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		want   error
	}{
		{"zero columns", func(c *Config) { c.Columns = 0 }, ErrOutOfRange},
		{"zero trails", func(c *Config) { c.TrailsPerColumn = 0 }, ErrOutOfRange},
		{"negative gap", func(c *Config) { c.GapWords = -1 }, ErrOutOfRange},
		{"brightness above one", func(c *Config) { c.Brightness = 1.5 }, ErrOutOfRange},
		{"travel inverted", func(c *Config) { c.TravelMin, c.TravelMax = 1.4, 0.3 }, ErrOutOfRange},
		{"unknown mode", func(c *Config) { c.Color.Mode = "plaid" }, ErrUnknownColorMode},
		{"bad solid", func(c *Config) { c.Color.Mode, c.Color.Solid = "solid", "nope" }, ErrInvalidColor},
		{"rainbow without period", func(c *Config) { c.Color.Mode, c.Color.RainbowPeriod = "rainbow", 0 }, ErrOutOfRange},
		{"unknown policy", func(c *Config) { c.Policy = "random" }, ErrUnknownPolicy},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			if err := cfg.Validate(); !errors.Is(err, tt.want) {
				t.Errorf("Validate() = %v, want %v", err, tt.want)
			}
			if _, err := cfg.Params(); err == nil {
				t.Error("Params() should reject an invalid config")
			}
		})
	}
}

func TestSaveLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rain.yaml")

	cfg := DefaultConfig()
	cfg.Words = []string{"red", "pill"}
	cfg.Color.Mode = "rainbow"
	cfg.Policy = "cooldown"
	cfg.Seed = 42

	if err := Save(path, cfg); err != nil {
		t.Fatalf("save failed: %v", err)
	}
	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}

	if len(loaded.Words) != 2 || loaded.Words[1] != "pill" {
		t.Errorf("words = %v", loaded.Words)
	}
	if loaded.Color.Mode != "rainbow" || loaded.Policy != "cooldown" || loaded.Seed != 42 {
		t.Errorf("round trip lost fields: %+v", loaded)
	}
}

func TestLoad_PartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rain.yaml")
	if err := os.WriteFile(path, []byte("columns: 5\nwords: []\n"), 0644); err != nil {
		t.Fatalf("write failed: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if cfg.Columns != 5 {
		t.Errorf("columns = %d, want 5", cfg.Columns)
	}
	if cfg.FontSize != DefaultFontSize {
		t.Errorf("font size = %f, want default %f", cfg.FontSize, DefaultFontSize)
	}
	if len(cfg.Words) != 1 || cfg.Words[0] != rain.DefaultWord {
		t.Errorf("empty word list should fall back, got %v", cfg.Words)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestLoadOver_Preset(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rain.yaml")
	if err := os.WriteFile(path, []byte("columns: 9\n"), 0644); err != nil {
		t.Fatalf("write failed: %v", err)
	}

	base := GetPreset("amber")
	cfg, err := LoadOver(path, base)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if cfg.Columns != 9 {
		t.Errorf("columns = %d, want 9", cfg.Columns)
	}
	if cfg.Color.Mode != "solid" || cfg.Color.Solid != "#ffbf00" {
		t.Errorf("preset color lost: %+v", cfg.Color)
	}
	if base.Columns == 9 {
		t.Error("base config must not be modified")
	}
}

func TestSetNumeric(t *testing.T) {
	cfg := DefaultConfig()

	tests := []struct {
		key   string
		value float64
		check func() bool
	}{
		{"trails", 2.6, func() bool { return cfg.TrailsPerColumn == 3 }},
		{"gap_words", 1, func() bool { return cfg.GapWords == 1 }},
		{"spawn", 0.5, func() bool { return cfg.SpawnSeconds == 0.5 }},
		{"travel_max", 1.2, func() bool { return cfg.TravelMax == 1.2 }},
	}
	for _, tt := range tests {
		if err := cfg.SetNumeric(tt.key, tt.value); err != nil {
			t.Errorf("SetNumeric(%q): %v", tt.key, err)
			continue
		}
		if !tt.check() {
			t.Errorf("SetNumeric(%q, %v) not applied", tt.key, tt.value)
		}
	}

	if err := cfg.SetNumeric("color", 1); !errors.Is(err, ErrUnknownField) {
		t.Errorf("expected ErrUnknownField, got %v", err)
	}
}
