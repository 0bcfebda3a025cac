package export

import (
	"fmt"
	"html"
	"strings"

	"github.com/san-kum/wordrain/internal/rain"
)

// GlyphsToSVG renders one frame of glyphs as positioned text. Drops with a
// glow color get a blurred halo in that color.
func GlyphsToSVG(glyphs []rain.Glyph, vp rain.Viewport, fontSize float64, background string) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%.0f" height="%.0f" viewBox="0 0 %.0f %.0f">
<defs>
<filter id="glow" x="-50%%" y="-50%%" width="200%%" height="200%%">
<feGaussianBlur stdDeviation="%.1f"/>
</filter>
</defs>
<rect width="100%%" height="100%%" fill="%s"/>
<g font-family="monospace" font-size="%.0f">
`, vp.Width, vp.Height, vp.Width, vp.Height, fontSize*0.4, background, fontSize))

	for _, g := range glyphs {
		text := html.EscapeString(g.Text)
		if g.Glow != (rain.RGB{}) && g.Band != rain.BandDim {
			sb.WriteString(fmt.Sprintf(`<text x="%.1f" y="%.1f" fill="%s" fill-opacity="%.3f" filter="url(#glow)">%s</text>
`, g.X, g.Y, g.Glow.Hex(), g.Opacity, text))
		}
		sb.WriteString(fmt.Sprintf(`<text x="%.1f" y="%.1f" fill="%s" fill-opacity="%.3f">%s</text>
`, g.X, g.Y, g.Color.Hex(), g.Opacity, text))
	}

	sb.WriteString("</g>\n</svg>")
	return sb.String()
}

// SeriesToSVG plots values against their index as a single polyline.
func SeriesToSVG(values []float64, width, height int, strokeColor string) string {
	if len(values) < 2 {
		return ""
	}

	minY, maxY := values[0], values[0]
	for _, v := range values {
		minY = min(minY, v)
		maxY = max(maxY, v)
	}

	rangeY := maxY - minY
	if rangeY == 0 {
		rangeY = 1
	}
	minY -= rangeY * 0.1
	maxY += rangeY * 0.1
	rangeY = maxY - minY
	rangeX := float64(len(values) - 1)

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="#0a0a0a"/>
<path fill="none" stroke="%s" stroke-width="1.5" d="M`,
		width, height, width, height, strokeColor))

	for i, v := range values {
		x := float64(i) / rangeX * float64(width)
		y := float64(height) - (v-minY)/rangeY*float64(height)

		if i == 0 {
			sb.WriteString(fmt.Sprintf("%.1f,%.1f", x, y))
		} else {
			sb.WriteString(fmt.Sprintf(" L%.1f,%.1f", x, y))
		}
	}

	sb.WriteString(`"/>
</svg>`)
	return sb.String()
}
