package store

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/san-kum/wordrain/internal/rain"
	"github.com/san-kum/wordrain/internal/sim"
)

func testResult() *sim.Result {
	return &sim.Result{
		Seed:     9,
		Frames:   3,
		Times:    []time.Duration{16 * time.Millisecond, 32 * time.Millisecond, 48 * time.Millisecond},
		Viewport: rain.Viewport{Width: 640, Height: 480},
		Final: []rain.Glyph{
			{Column: 2, Text: "essential", X: 45.7, Y: 120, Band: rain.BandHead, Color: rain.White, Glow: rain.ClassicGreen, Opacity: 1},
			{Column: 2, Text: "of", X: 45.7, Y: 60, Band: rain.BandMid, Color: rain.RGB{G: 140, B: 36}, Opacity: 0.4},
		},
		Metrics: map[string]float64{"vocabulary": 2},
	}
}

func TestWriteJSON(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteJSON(&buf, NewSnapshot("classic", rain.ModeClassic, testResult())); err != nil {
		t.Fatalf("write failed: %v", err)
	}

	var doc struct {
		Preset string `json:"preset"`
		Seed   int64  `json:"seed"`
		TimeMS int64  `json:"time_ms"`
		Mode   string `json:"mode"`
		Glyphs []struct {
			Text  string `json:"text"`
			Band  string `json:"band"`
			Color string `json:"color"`
		} `json:"glyphs"`
	}
	if err := json.Unmarshal(buf.Bytes(), &doc); err != nil {
		t.Fatalf("invalid json: %v", err)
	}

	if doc.Preset != "classic" || doc.Seed != 9 || doc.TimeMS != 48 {
		t.Errorf("header = %+v", doc)
	}
	if doc.Mode != rain.ModeClassic.String() {
		t.Errorf("mode = %q", doc.Mode)
	}
	if len(doc.Glyphs) != 2 {
		t.Fatalf("expected 2 glyphs, got %d", len(doc.Glyphs))
	}
	if doc.Glyphs[0].Band != rain.BandHead.String() || doc.Glyphs[0].Color != "#ffffff" {
		t.Errorf("head glyph = %+v", doc.Glyphs[0])
	}
	if doc.Glyphs[1].Color != "#008c24" {
		t.Errorf("mid glyph color = %q", doc.Glyphs[1].Color)
	}
}

func TestExportJSON_EmptyFrame(t *testing.T) {
	path := filepath.Join(t.TempDir(), "frame.json")
	if err := ExportJSON(path, NewSnapshot("sparse", rain.ModeSolid, &sim.Result{})); err != nil {
		t.Fatalf("export failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read failed: %v", err)
	}
	if !bytes.Contains(data, []byte(`"glyphs": []`)) {
		t.Errorf("empty frame should encode an empty glyph list:\n%s", data)
	}
}
