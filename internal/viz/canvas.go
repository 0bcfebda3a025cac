package viz

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/san-kum/wordrain/internal/rain"
)

// cellAspect is the width of one terminal cell relative to the line height.
const cellAspect = 0.6 / 1.6

var black = colorful.Color{}

type cell struct {
	r     rune
	color rain.RGB
	alpha float64
	head  bool
}

// Canvas is a character grid that field glyphs are rasterized onto. One row
// holds one word slot; a column cell is cellAspect line heights wide.
type Canvas struct {
	Width, Height int
	Grid          [][]cell
}

func NewCanvas(w, h int) *Canvas {
	c := &Canvas{Width: w, Height: h, Grid: make([][]cell, h)}
	for i := range c.Grid {
		c.Grid[i] = make([]cell, w)
	}
	c.Clear()
	return c
}

func (c *Canvas) Clear() {
	for i := range c.Grid {
		for j := range c.Grid[i] {
			c.Grid[i][j] = cell{r: ' '}
		}
	}
}

// Viewport is the pixel extent the field should simulate for this canvas.
func (c *Canvas) Viewport(lineHeight float64) rain.Viewport {
	return rain.Viewport{
		Width:  float64(c.Width) * lineHeight * cellAspect,
		Height: float64(c.Height) * lineHeight,
	}
}

// Draw writes the glyphs left to right from their lane origin, clipped to the
// lane. Where glyphs collide the more opaque one wins.
func (c *Canvas) Draw(glyphs []rain.Glyph, lineHeight float64, columns int) {
	cellW := lineHeight * cellAspect
	lane := max(1, c.Width/max(1, columns))

	for _, g := range glyphs {
		row := int(math.Floor(g.Y / lineHeight))
		if row < 0 || row >= c.Height {
			continue
		}
		col := int(math.Floor(g.X / cellW))
		for i, r := range []rune(g.Text) {
			x := col + i
			if i >= lane || x >= c.Width {
				break
			}
			if x < 0 {
				continue
			}
			dst := &c.Grid[row][x]
			if dst.r != ' ' && dst.alpha >= g.Opacity {
				continue
			}
			*dst = cell{r: r, color: g.Color, alpha: g.Opacity, head: g.Band == rain.BandHead}
		}
	}
}

// fade blends a color toward black by its opacity, the terminal having no
// alpha channel.
func fade(c rain.RGB, alpha float64) string {
	return black.BlendRgb(c.Colorful(), math.Max(0, math.Min(1, alpha))).Clamped().Hex()
}

func (c *Canvas) String() string {
	var b strings.Builder
	for y, row := range c.Grid {
		var run strings.Builder
		var runStyle *lipgloss.Style
		flush := func() {
			if run.Len() == 0 {
				return
			}
			if runStyle == nil {
				b.WriteString(run.String())
			} else {
				b.WriteString(runStyle.Render(run.String()))
			}
			run.Reset()
		}

		var prev cell
		for x, ce := range row {
			if x == 0 || !sameInk(prev, ce) {
				flush()
				runStyle = cellStyle(ce)
			}
			run.WriteRune(ce.r)
			prev = ce
		}
		flush()
		if y < len(c.Grid)-1 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}

func sameInk(a, b cell) bool {
	if a.r == ' ' && b.r == ' ' {
		return true
	}
	return a.r != ' ' && b.r != ' ' && a.head == b.head && fade(a.color, a.alpha) == fade(b.color, b.alpha)
}

func cellStyle(ce cell) *lipgloss.Style {
	if ce.r == ' ' {
		return nil
	}
	s := lipgloss.NewStyle().Foreground(lipgloss.Color(fade(ce.color, ce.alpha)))
	if ce.head {
		s = s.Bold(true)
	}
	return &s
}

// Text returns the grid without styling, one line per row.
func (c *Canvas) Text() string {
	lines := make([]string, len(c.Grid))
	for i, row := range c.Grid {
		rs := make([]rune, len(row))
		for j, ce := range row {
			rs[j] = ce.r
		}
		lines[i] = string(rs)
	}
	return strings.Join(lines, "\n")
}
