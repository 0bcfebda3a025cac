package config

import (
	"errors"
	"fmt"
	"math"
	"os"
	"strings"
	"time"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/san-kum/wordrain/internal/rain"
	"gopkg.in/yaml.v3"
)

const (
	DefaultColumns       = 28
	DefaultFontSize      = 13.0
	DefaultTrails        = 2
	DefaultGapWords      = 4
	DefaultFallSeconds   = 2.0
	DefaultVariance      = 1.0
	DefaultSpawnSeconds  = 0.35
	DefaultBrightness    = 0.8
	DefaultTrailLength   = 12
	DefaultSolid         = "#00ff41"
	DefaultRainbowPeriod = 3.0
	DefaultRespawnDelay  = 1.5

	// LineHeightRatio converts a font size to the vertical word slot.
	LineHeightRatio = 1.6
)

var DefaultWords = []string{
	"Inessentialist", "essentialism", "of", "essentials", "with",
	"the", "essential", "essentialing", "inessentially", "essential",
}

var (
	ErrUnknownColorMode = errors.New("config: unknown color mode")
	ErrUnknownPolicy    = errors.New("config: unknown spawn policy")
	ErrInvalidColor     = errors.New("config: invalid hex color")
	ErrOutOfRange       = errors.New("config: value out of range")
	ErrUnknownPreset    = errors.New("config: unknown preset")
	ErrUnknownField     = errors.New("config: unknown numeric field")
)

type Config struct {
	Words           []string    `yaml:"words"`
	Columns         int         `yaml:"columns"`
	FontSize        float64     `yaml:"font_size"`
	TrailsPerColumn int         `yaml:"trails_per_column"`
	GapWords        int         `yaml:"gap_words"`
	FallSeconds     float64     `yaml:"fall_seconds"`
	SpeedVariance   float64     `yaml:"speed_variance"`
	SpawnSeconds    float64     `yaml:"spawn_seconds"`
	Brightness      float64     `yaml:"brightness"`
	TrailLength     int         `yaml:"trail_length"`
	Color           ColorConfig `yaml:"color"`
	Policy          string      `yaml:"policy"`
	RespawnDelay    float64     `yaml:"respawn_delay"`
	TravelMin       float64     `yaml:"travel_min"`
	TravelMax       float64     `yaml:"travel_max"`
	Seed            int64       `yaml:"seed"`
}

type ColorConfig struct {
	Mode          string  `yaml:"mode"`
	Solid         string  `yaml:"solid"`
	RainbowPeriod float64 `yaml:"rainbow_period"`
}

func DefaultConfig() *Config {
	return &Config{
		Words:           append([]string(nil), DefaultWords...),
		Columns:         DefaultColumns,
		FontSize:        DefaultFontSize,
		TrailsPerColumn: DefaultTrails,
		GapWords:        DefaultGapWords,
		FallSeconds:     DefaultFallSeconds,
		SpeedVariance:   DefaultVariance,
		SpawnSeconds:    DefaultSpawnSeconds,
		Brightness:      DefaultBrightness,
		TrailLength:     DefaultTrailLength,
		Color: ColorConfig{
			Mode:          "classic",
			Solid:         DefaultSolid,
			RainbowPeriod: DefaultRainbowPeriod,
		},
		Policy:       "gap",
		RespawnDelay: DefaultRespawnDelay,
		TravelMin:    1,
		TravelMax:    1,
	}
}

func Load(path string) (*Config, error) {
	return LoadOver(path, DefaultConfig())
}

// LoadOver reads path on top of a copy of base, so keys missing from the
// file keep base's values.
func LoadOver(path string, base *Config) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := base.Clone()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	cfg.Words = NormalizeWords(cfg.Words)
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// ParseWords splits free text on whitespace, one word per token.
func ParseWords(text string) []string {
	return NormalizeWords(strings.Fields(text))
}

// NormalizeWords trims every entry and drops blanks. An empty result falls
// back to the single default word.
func NormalizeWords(words []string) []string {
	out := make([]string, 0, len(words))
	for _, w := range words {
		if w = strings.TrimSpace(w); w != "" {
			out = append(out, w)
		}
	}
	if len(out) == 0 {
		return []string{rain.DefaultWord}
	}
	return out
}

func ParseHex(s string) (rain.RGB, error) {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "#") {
		s = "#" + s
	}
	c, err := colorful.Hex(strings.ToLower(s))
	if err != nil {
		return rain.RGB{}, fmt.Errorf("%w: %q", ErrInvalidColor, s)
	}
	r, g, b := c.RGB255()
	return rain.RGB{R: r, G: g, B: b}, nil
}

func ParseColorMode(s string) (rain.ColorMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "classic", "green":
		return rain.ModeClassic, nil
	case "solid":
		return rain.ModeSolid, nil
	case "rainbow":
		return rain.ModeRainbow, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownColorMode, s)
	}
}

func ParsePolicy(s string) (rain.Policy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "gap":
		return rain.PolicyGap, nil
	case "cooldown":
		return rain.PolicyCooldown, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownPolicy, s)
	}
}

func (c *Config) Validate() error {
	checks := []struct {
		ok    bool
		field string
		value any
	}{
		{c.Columns >= 1, "columns", c.Columns},
		{c.FontSize > 0, "font_size", c.FontSize},
		{c.TrailsPerColumn >= 1, "trails_per_column", c.TrailsPerColumn},
		{c.GapWords >= 0, "gap_words", c.GapWords},
		{c.FallSeconds > 0, "fall_seconds", c.FallSeconds},
		{c.SpeedVariance >= 0, "speed_variance", c.SpeedVariance},
		{c.SpawnSeconds > 0, "spawn_seconds", c.SpawnSeconds},
		{c.Brightness > 0 && c.Brightness <= 1, "brightness", c.Brightness},
		{c.TrailLength >= 1, "trail_length", c.TrailLength},
		{c.RespawnDelay >= 0, "respawn_delay", c.RespawnDelay},
		{c.TravelMin > 0, "travel_min", c.TravelMin},
		{c.TravelMax >= c.TravelMin, "travel_max", c.TravelMax},
	}
	for _, ch := range checks {
		if !ch.ok {
			return fmt.Errorf("%w: %s = %v", ErrOutOfRange, ch.field, ch.value)
		}
	}

	mode, err := ParseColorMode(c.Color.Mode)
	if err != nil {
		return err
	}
	if mode == rain.ModeSolid {
		if _, err := ParseHex(c.Color.Solid); err != nil {
			return err
		}
	}
	if mode == rain.ModeRainbow && c.Color.RainbowPeriod <= 0 {
		return fmt.Errorf("%w: rainbow_period = %v", ErrOutOfRange, c.Color.RainbowPeriod)
	}
	if _, err := ParsePolicy(c.Policy); err != nil {
		return err
	}
	return nil
}

// Params validates the configuration and resolves it into the record the
// simulation core runs with.
func (c *Config) Params() (rain.Params, error) {
	if err := c.Validate(); err != nil {
		return rain.Params{}, err
	}
	mode, _ := ParseColorMode(c.Color.Mode)
	policy, _ := ParsePolicy(c.Policy)

	solid := rain.ClassicGreen
	if parsed, err := ParseHex(c.Color.Solid); err == nil {
		solid = parsed
	}

	return rain.Params{
		Words:           NormalizeWords(c.Words),
		Columns:         c.Columns,
		LineHeight:      c.FontSize * LineHeightRatio,
		FallDuration:    seconds(c.FallSeconds),
		SpeedVariance:   seconds(c.SpeedVariance),
		SpawnInterval:   seconds(c.SpawnSeconds),
		Brightness:      c.Brightness,
		TrailLength:     float64(c.TrailLength),
		TrailsPerColumn: c.TrailsPerColumn,
		GapWords:        float64(c.GapWords),
		Palette: rain.Palette{
			Mode:   mode,
			Solid:  solid,
			Period: seconds(c.Color.RainbowPeriod),
		},
		Policy:       policy,
		RespawnDelay: seconds(c.RespawnDelay),
		TravelMin:    c.TravelMin,
		TravelMax:    c.TravelMax,
	}, nil
}

// Clone returns a deep copy so presets are never mutated by callers.
func (c *Config) Clone() *Config {
	cp := *c
	cp.Words = append([]string(nil), c.Words...)
	return &cp
}

func seconds(s float64) time.Duration {
	return time.Duration(s * float64(time.Second))
}

// SetNumeric assigns a numeric field by its yaml key. Integer fields are
// rounded.
func (c *Config) SetNumeric(key string, v float64) error {
	n := int(math.Round(v))
	switch key {
	case "columns":
		c.Columns = n
	case "font_size":
		c.FontSize = v
	case "trails_per_column", "trails":
		c.TrailsPerColumn = n
	case "gap_words", "gap":
		c.GapWords = n
	case "fall_seconds", "fall":
		c.FallSeconds = v
	case "speed_variance", "variance":
		c.SpeedVariance = v
	case "spawn_seconds", "spawn":
		c.SpawnSeconds = v
	case "brightness":
		c.Brightness = v
	case "trail_length":
		c.TrailLength = n
	case "respawn_delay":
		c.RespawnDelay = v
	case "travel_min":
		c.TravelMin = v
	case "travel_max":
		c.TravelMax = v
	default:
		return fmt.Errorf("%w: %q", ErrUnknownField, key)
	}
	return nil
}
