package rain

import (
	"math"
	"time"
)

type TrailState int

const (
	TrailActive TrailState = iota
	TrailFinished
	TrailDead
)

func (s TrailState) String() string {
	switch s {
	case TrailActive:
		return "active"
	case TrailFinished:
		return "finished"
	default:
		return "dead"
	}
}

// Drop is one spawned word. Its Y is fixed at creation; only its distance
// from the head changes.
type Drop struct {
	Text string
	Y    float64
	Shade
}

// Trail is a falling head that leaves words behind it. Drops are kept
// oldest first, so their distance from the head is non-increasing along
// the slice.
type Trail struct {
	env    *env
	column int

	headY     float64
	speed     float64
	traveled  float64
	maxTravel float64

	lastWord  string
	lastSpawn time.Duration
	wakeAt    time.Duration

	drops []Drop
	state TrailState
}

// newTrail starts a trail just above the viewport with a speed and travel
// budget drawn once for its lifetime.
func newTrail(e *env, column int, now time.Duration) *Trail {
	v := (e.src.Float64() - 0.5) * 2 * e.p.SpeedVariance.Seconds()
	return &Trail{
		env:       e,
		column:    column,
		headY:     -e.p.LineHeight,
		speed:     e.vp.Height / math.Max(0.5, e.p.FallDuration.Seconds()+v),
		maxTravel: e.vp.Height*uniform(e.src, e.p.TravelMin, e.p.TravelMax) + e.p.TrailLength*e.p.LineHeight,
		lastSpawn: now,
		wakeAt:    now,
	}
}

// Update advances the head by dt, spawns a word when the jittered spawn
// interval has elapsed, and reshades or retires every drop.
func (t *Trail) Update(now, dt time.Duration) {
	if t.state == TrailDead || t.Dormant(now) {
		return
	}
	e := t.env

	mv := t.speed * dt.Seconds()
	t.headY += mv
	t.traveled += mv

	if t.state == TrailActive && t.headY < e.vp.Height+e.p.LineHeight {
		interval := float64(e.p.SpawnInterval) * uniform(e.src, 0.7, 1.3)
		if float64(now-t.lastSpawn) >= interval {
			w := e.picker.Pick(t.lastWord)
			t.lastWord = w
			t.drops = append(t.drops, Drop{Text: w, Y: t.headY})
			t.lastSpawn = now
		}
	}

	if t.state == TrailActive && t.traveled >= t.maxTravel {
		t.state = TrailFinished
	}

	base := e.p.Palette.Base(t.column, e.p.Columns, now)
	kept := t.drops[:0]
	for _, d := range t.drops {
		dist := (t.headY - d.Y) / e.p.LineHeight
		s := ShadeAt(dist, e.p.TrailLength, e.p.Brightness, base)
		if s.Band == BandExpired {
			continue
		}
		d.Shade = s
		kept = append(kept, d)
	}
	clear(t.drops[len(kept):])
	t.drops = kept

	if t.state == TrailFinished && len(t.drops) == 0 {
		t.state = TrailDead
	}
}

func (t *Trail) HeadY() float64    { return t.headY }
func (t *Trail) Speed() float64    { return t.speed }
func (t *Trail) Traveled() float64 { return t.traveled }
func (t *Trail) State() TrailState { return t.state }
func (t *Trail) Column() int       { return t.column }
func (t *Trail) LastWord() string  { return t.lastWord }

// Dormant reports whether the trail is still waiting out a respawn delay.
func (t *Trail) Dormant(now time.Duration) bool { return now < t.wakeAt }

// Drops returns the live drops, oldest first. The slice must not be modified.
func (t *Trail) Drops() []Drop { return t.drops }

// Span returns the vertical extent [top, head] the trail body occupies.
func (t *Trail) Span() (top, head float64) {
	return t.headY - t.env.p.TrailLength*t.env.p.LineHeight, t.headY
}
