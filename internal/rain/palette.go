package rain

import (
	"fmt"
	"math"
	"time"

	"github.com/lucasb-eyer/go-colorful"
)

type RGB struct {
	R, G, B uint8
}

var (
	ClassicGreen = RGB{0, 255, 65}
	White        = RGB{255, 255, 255}
)

// Scale multiplies every channel by f, rounding to the nearest integer.
func (c RGB) Scale(f float64) RGB {
	return RGB{R: scaleChannel(c.R, f), G: scaleChannel(c.G, f), B: scaleChannel(c.B, f)}
}

func scaleChannel(v uint8, f float64) uint8 {
	return uint8(math.Max(0, math.Min(255, math.Round(float64(v)*f))))
}

func (c RGB) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

func (c RGB) MarshalText() ([]byte, error) {
	return []byte(c.Hex()), nil
}

// Colorful converts c for blending and color-space math.
func (c RGB) Colorful() colorful.Color {
	return colorful.Color{R: float64(c.R) / 255, G: float64(c.G) / 255, B: float64(c.B) / 255}
}

type ColorMode int

const (
	ModeClassic ColorMode = iota
	ModeSolid
	ModeRainbow
)

var modeNames = [...]string{"classic", "solid", "rainbow"}

func (m ColorMode) String() string {
	if m < 0 || int(m) >= len(modeNames) {
		return fmt.Sprintf("ColorMode(%d)", int(m))
	}
	return modeNames[m]
}

// Next cycles classic -> solid -> rainbow -> classic.
func (m ColorMode) Next() ColorMode {
	return (m + 1) % ColorMode(len(modeNames))
}

// Palette resolves the base color a trail is shaded from.
type Palette struct {
	Mode   ColorMode
	Solid  RGB
	Period time.Duration
}

// Base returns the base color for column col of numCols at time now.
// In rainbow mode the hue cycles once per Period and each column is offset
// by col/numCols of the wheel.
func (p Palette) Base(col, numCols int, now time.Duration) RGB {
	switch p.Mode {
	case ModeSolid:
		return p.Solid
	case ModeRainbow:
		period := p.Period
		if period <= 0 {
			period = time.Second
		}
		offset := 0.0
		if numCols > 0 {
			offset = float64(col) / float64(numCols) * 360
		}
		hue := math.Mod(now.Seconds()/period.Seconds()*360+offset, 360)
		if hue < 0 {
			hue += 360
		}
		r, g, b := colorful.Hsl(hue, 1, 0.55).Clamped().RGB255()
		return RGB{r, g, b}
	default:
		return ClassicGreen
	}
}

type Band int

const (
	BandHead Band = iota
	BandBright
	BandMid
	BandDim
	BandExpired
)

var bandNames = [...]string{"head", "bright", "mid", "dim", "expired"}

func (b Band) String() string {
	if b < 0 || int(b) >= len(bandNames) {
		return fmt.Sprintf("Band(%d)", int(b))
	}
	return bandNames[b]
}

func (b Band) MarshalText() ([]byte, error) {
	return []byte(b.String()), nil
}

// Shade is the derived look of a drop for the current tick.
type Shade struct {
	Band    Band
	Color   RGB
	Glow    RGB
	Opacity float64
}

const (
	headReach    = 0.5
	brightReach  = 0.25
	midReach     = 0.6
	midDarken    = 0.55
	dimDarken    = 0.25
	minMidAlpha  = 0.08
	minDimAlpha  = 0.02
	brightFactor = 0.95
)

// ShadeAt classifies a drop dist word-slots behind its head. Drops past
// trailLen come back as BandExpired and must be removed by the caller.
func ShadeAt(dist, trailLen, brightness float64, base RGB) Shade {
	switch {
	case dist <= headReach:
		return Shade{Band: BandHead, Color: White, Glow: base, Opacity: 1}
	case dist <= trailLen*brightReach:
		return Shade{Band: BandBright, Color: base, Glow: base, Opacity: brightness * brightFactor}
	case dist <= trailLen*midReach:
		f := (dist - trailLen*brightReach) / (trailLen * (midReach - brightReach))
		c := base.Scale(midDarken)
		return Shade{Band: BandMid, Color: c, Glow: c, Opacity: math.Max(minMidAlpha, brightness*(0.7-f*0.4))}
	case dist <= trailLen:
		f := (dist - trailLen*midReach) / (trailLen * (1 - midReach))
		return Shade{Band: BandDim, Color: base.Scale(dimDarken), Opacity: math.Max(minDimAlpha, 0.15-f*0.13)}
	default:
		return Shade{Band: BandExpired}
	}
}
