package rain

import (
	"fmt"
	"time"
)

// Policy decides when a column may add another trail.
type Policy int

const (
	// PolicyGap spawns once the trail nearest the top has cleared a full
	// trail body plus the configured gap.
	PolicyGap Policy = iota
	// PolicyCooldown spawns dormant trails that wake after a random
	// respawn delay.
	PolicyCooldown
)

func (p Policy) String() string {
	switch p {
	case PolicyGap:
		return "gap"
	case PolicyCooldown:
		return "cooldown"
	default:
		return fmt.Sprintf("Policy(%d)", int(p))
	}
}

// MaxFrameStep caps the delta applied by a single Field.Update.
const MaxFrameStep = 50 * time.Millisecond

// Params is the configuration record the core runs with. Values are
// expected to be validated by the caller.
type Params struct {
	Words           []string
	Columns         int
	LineHeight      float64
	FallDuration    time.Duration
	SpeedVariance   time.Duration
	SpawnInterval   time.Duration
	Brightness      float64
	TrailLength     float64
	TrailsPerColumn int
	GapWords        float64
	Palette         Palette
	Policy          Policy
	RespawnDelay    time.Duration
	TravelMin       float64
	TravelMax       float64
}

type Viewport struct {
	Width, Height float64
}

// normalized clamps degenerate values so the core never divides by zero.
func (p Params) normalized() Params {
	if p.Columns < 1 {
		p.Columns = 1
	}
	if p.LineHeight <= 0 {
		p.LineHeight = 1
	}
	if p.TrailLength <= 0 {
		p.TrailLength = 1
	}
	if p.TrailsPerColumn < 1 {
		p.TrailsPerColumn = 1
	}
	if p.GapWords < 0 {
		p.GapWords = 0
	}
	if p.TravelMin <= 0 && p.TravelMax <= 0 {
		p.TravelMin, p.TravelMax = 1, 1
	}
	if p.TravelMax < p.TravelMin {
		p.TravelMax = p.TravelMin
	}
	return p
}

func (v Viewport) normalized() Viewport {
	if v.Width < 1 {
		v.Width = 1
	}
	if v.Height < 1 {
		v.Height = 1
	}
	return v
}

// spawnClearance is the head depth, in pixels, the trailing trail must reach
// before a new one may start at the top.
func (p Params) spawnClearance() float64 {
	return (p.TrailLength + p.GapWords) * p.LineHeight
}

// env is shared by every column and trail of one field.
type env struct {
	p      Params
	vp     Viewport
	src    Source
	picker *WordPicker
}
