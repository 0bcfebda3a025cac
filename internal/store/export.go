package store

import (
	"encoding/json"
	"io"
	"os"
	"time"

	"github.com/san-kum/wordrain/internal/rain"
	"github.com/san-kum/wordrain/internal/sim"
)

// Snapshot is the JSON document describing one rendered frame.
type Snapshot struct {
	Preset  string             `json:"preset"`
	Seed    int64              `json:"seed"`
	TimeMS  int64              `json:"time_ms"`
	Frames  int                `json:"frames"`
	Width   float64            `json:"width"`
	Height  float64            `json:"height"`
	Mode    string             `json:"mode"`
	Glyphs  []rain.Glyph       `json:"glyphs"`
	Metrics map[string]float64 `json:"metrics,omitempty"`
}

func NewSnapshot(preset string, mode rain.ColorMode, result *sim.Result) Snapshot {
	var last time.Duration
	if n := len(result.Times); n > 0 {
		last = result.Times[n-1]
	}
	glyphs := result.Final
	if glyphs == nil {
		glyphs = []rain.Glyph{}
	}
	return Snapshot{
		Preset:  preset,
		Seed:    result.Seed,
		TimeMS:  last.Milliseconds(),
		Frames:  result.Frames,
		Width:   result.Viewport.Width,
		Height:  result.Viewport.Height,
		Mode:    mode.String(),
		Glyphs:  glyphs,
		Metrics: result.Metrics,
	}
}

func WriteJSON(w io.Writer, snap Snapshot) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(snap)
}

func ExportJSON(path string, snap Snapshot) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	return WriteJSON(file, snap)
}
