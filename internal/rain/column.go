package rain

import (
	"math"
	"time"
)

// Column owns the trails of one horizontal lane.
type Column struct {
	env    *env
	index  int
	trails []*Trail
}

// newColumn seeds the lane with one trail at a random depth whose spawn
// timer is backdated, so words show up on the first frames.
func newColumn(e *env, index int, now time.Duration) *Column {
	c := &Column{env: e, index: index}
	t := newTrail(e, index, now)
	t.headY = e.src.Float64() * e.vp.Height
	t.lastSpawn = now - time.Duration(e.src.Float64()*3*float64(e.p.SpawnInterval))
	c.trails = append(c.trails, t)
	return c
}

// Update advances every trail, drops the dead ones and applies the spawn
// policy. The column always holds at least one trail on return.
func (c *Column) Update(now, dt time.Duration) {
	live := c.trails[:0]
	for _, t := range c.trails {
		t.Update(now, dt)
		if t.state != TrailDead {
			live = append(live, t)
		}
	}
	clear(c.trails[len(live):])
	c.trails = live

	if c.canSpawn(now) {
		c.spawn(now)
	}
	if len(c.trails) == 0 {
		c.spawn(now)
	}
}

func (c *Column) canSpawn(now time.Duration) bool {
	p := c.env.p
	if len(c.trails) == 0 {
		return true
	}
	if len(c.trails) >= p.TrailsPerColumn {
		return false
	}
	switch p.Policy {
	case PolicyCooldown:
		for _, t := range c.trails {
			if t.Dormant(now) {
				return false
			}
		}
		return true
	default:
		return c.trailingHeadY() >= p.spawnClearance()
	}
}

// trailingHeadY is the head of the trail nearest the top, the only one a
// trail starting at the top could run into.
func (c *Column) trailingHeadY() float64 {
	y := math.Inf(1)
	for _, t := range c.trails {
		y = math.Min(y, t.headY)
	}
	return y
}

func (c *Column) spawn(now time.Duration) {
	t := newTrail(c.env, c.index, now)
	if c.env.p.Policy == PolicyCooldown {
		delay := float64(c.env.p.RespawnDelay) * uniform(c.env.src, 0.5, 1.5)
		t.wakeAt = now + time.Duration(delay)
	}
	c.trails = append(c.trails, t)
}

func (c *Column) Index() int { return c.index }

// X is the left edge of the lane in viewport pixels.
func (c *Column) X() float64 {
	return float64(c.index) * c.env.vp.Width / float64(c.env.p.Columns)
}

// Trails returns the current trails in spawn order. The slice must not be
// modified.
func (c *Column) Trails() []*Trail { return c.trails }

func (c *Column) DropCount() int {
	n := 0
	for _, t := range c.trails {
		n += len(t.drops)
	}
	return n
}
