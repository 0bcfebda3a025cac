package sim

import (
	"time"

	"github.com/san-kum/wordrain/internal/rain"
)

// Clock supplies the monotonically increasing timestamps a field is driven
// with, measured from the clock's origin.
type Clock interface {
	Now() time.Duration
}

// FixedClock advances by Step on every Advance call.
type FixedClock struct {
	Step time.Duration
	t    time.Duration
}

func (c *FixedClock) Now() time.Duration { return c.t }

func (c *FixedClock) Advance() time.Duration {
	c.t += c.Step
	return c.t
}

type WallClock struct {
	start time.Time
}

func NewWallClock() *WallClock { return &WallClock{start: time.Now()} }

func (c *WallClock) Now() time.Duration { return time.Since(c.start) }

// PausableClock freezes its base clock while paused and resumes from the
// frozen reading, so paused spans never reach the field.
type PausableClock struct {
	base   Clock
	paused bool
	frozen time.Duration
	offset time.Duration
}

func NewPausableClock(base Clock) *PausableClock {
	return &PausableClock{base: base}
}

func (c *PausableClock) Now() time.Duration {
	if c.paused {
		return c.frozen
	}
	return c.base.Now() - c.offset
}

func (c *PausableClock) Pause() {
	if c.paused {
		return
	}
	c.frozen = c.Now()
	c.paused = true
}

func (c *PausableClock) Resume() {
	if !c.paused {
		return
	}
	c.offset = c.base.Now() - c.frozen
	c.paused = false
}

func (c *PausableClock) Paused() bool { return c.paused }

type Metric interface {
	Name() string
	Observe(f *rain.Field, now time.Duration)
	Value() float64
	Reset()
}

type Observer interface {
	OnFrame(f *rain.Field, now time.Duration)
}

type Config struct {
	Step     time.Duration
	Duration time.Duration
	Seed     int64
}

type Result struct {
	Seed     int64
	Frames   int
	Times    []time.Duration
	Drops    []int
	Trails   []int
	Metrics  map[string]float64
	Final    []rain.Glyph
	Viewport rain.Viewport
}
