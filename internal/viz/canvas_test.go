package viz

import (
	"strings"
	"testing"

	"github.com/san-kum/wordrain/internal/rain"
)

func rows(c *Canvas) []string {
	return strings.Split(c.Text(), "\n")
}

func TestCanvasDraw(t *testing.T) {
	tests := []struct {
		name    string
		columns int
		glyph   rain.Glyph
		row     int
		want    string
	}{
		{"fits lane", 2, rain.Glyph{Text: "hello", Y: 0, Opacity: 1}, 0, "hello     "},
		{"clipped to lane", 5, rain.Glyph{Text: "hello", Y: 0, Opacity: 1}, 0, "he        "},
		{"row from y", 2, rain.Glyph{Text: "ab", Y: 20, Opacity: 1}, 1, "ab        "},
		{"x offset", 2, rain.Glyph{Text: "ab", X: 30, Y: 0, Opacity: 1}, 0, "     ab   "},
		{"clipped at edge", 1, rain.Glyph{Text: "abcdef", X: 42, Y: 0, Opacity: 1}, 0, "       abc"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewCanvas(10, 3)
			c.Draw([]rain.Glyph{tt.glyph}, 16, tt.columns)
			if got := rows(c)[tt.row]; got != tt.want {
				t.Errorf("row %d = %q, want %q", tt.row, got, tt.want)
			}
		})
	}
}

func TestCanvasDraw_OutOfBounds(t *testing.T) {
	c := NewCanvas(10, 3)
	c.Draw([]rain.Glyph{
		{Text: "up", Y: -1, Opacity: 1},
		{Text: "down", Y: 48, Opacity: 1},
	}, 16, 1)

	if strings.TrimSpace(c.Text()) != "" {
		t.Errorf("expected empty canvas, got %q", c.Text())
	}
}

func TestCanvasDraw_OpaqueWins(t *testing.T) {
	c := NewCanvas(4, 1)
	c.Draw([]rain.Glyph{
		{Text: "aaaa", Opacity: 0.9},
		{Text: "bb", Opacity: 0.2},
		{Text: "c", Opacity: 1},
	}, 16, 1)

	if got := rows(c)[0]; got != "caaa" {
		t.Errorf("row = %q, want %q", got, "caaa")
	}
}

func TestCanvasViewport(t *testing.T) {
	vp := NewCanvas(80, 22).Viewport(16)
	if vp.Width != 480 || vp.Height != 352 {
		t.Errorf("viewport = %+v, want 480x352", vp)
	}
}

func TestFade(t *testing.T) {
	green := rain.RGB{R: 0, G: 255, B: 65}
	if got := fade(green, 1); got != "#00ff41" {
		t.Errorf("full opacity = %s", got)
	}
	if got := fade(green, 0); got != "#000000" {
		t.Errorf("zero opacity = %s", got)
	}
	if got := fade(rain.RGB{R: 254, G: 100}, 0.5); got != "#7f3200" {
		t.Errorf("half opacity = %s", got)
	}
}

func TestCanvasClear(t *testing.T) {
	c := NewCanvas(5, 2)
	c.Draw([]rain.Glyph{{Text: "word", Opacity: 1}}, 16, 1)
	c.Clear()
	if strings.TrimSpace(c.Text()) != "" {
		t.Errorf("clear left %q", c.Text())
	}
}
