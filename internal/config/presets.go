package config

import (
	"fmt"
	"sort"
)

var Presets = map[string]*Config{
	"classic": DefaultConfig(),
	"dense": func() *Config {
		c := DefaultConfig()
		c.Columns = 48
		c.FontSize = 10
		c.TrailsPerColumn = 3
		c.GapWords = 2
		c.SpawnSeconds = 0.2
		return c
	}(),
	"sparse": func() *Config {
		c := DefaultConfig()
		c.Columns = 14
		c.TrailsPerColumn = 1
		c.FallSeconds = 4
		c.SpeedVariance = 0.5
		c.TrailLength = 8
		return c
	}(),
	"rainbow": func() *Config {
		c := DefaultConfig()
		c.Color.Mode = "rainbow"
		c.Color.RainbowPeriod = 3
		c.Brightness = 0.9
		return c
	}(),
	"amber": func() *Config {
		c := DefaultConfig()
		c.Color.Mode = "solid"
		c.Color.Solid = "#ffbf00"
		return c
	}(),
	"cooldown": func() *Config {
		c := DefaultConfig()
		c.Policy = "cooldown"
		c.TrailsPerColumn = 1
		c.RespawnDelay = 1.5
		c.TravelMin = 0.3
		c.TravelMax = 1.4
		return c
	}(),
}

var presetInfo = map[string]string{
	"classic":  "green rain, two trails per column",
	"dense":    "narrow font, many columns, three trails",
	"sparse":   "few slow single trails",
	"rainbow":  "hue cycles across columns and time",
	"amber":    "solid amber monochrome",
	"cooldown": "one trail per column, respawn after a delay",
}

// PresetSummary returns a one-line description of the named preset.
func PresetSummary(name string) string {
	return presetInfo[name]
}

// GetPreset returns a copy of the named preset, or nil.
func GetPreset(name string) *Config {
	p, ok := Presets[name]
	if !ok {
		return nil
	}
	return p.Clone()
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// LookupPreset is GetPreset with an error for unknown names.
func LookupPreset(name string) (*Config, error) {
	if cfg := GetPreset(name); cfg != nil {
		return cfg, nil
	}
	return nil, fmt.Errorf("%w: %s (available: %v)", ErrUnknownPreset, name, ListPresets())
}
