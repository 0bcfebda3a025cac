package metrics

import (
	"time"

	"github.com/san-kum/wordrain/internal/rain"
)

// LiveDrops is the mean number of drops on screen per frame.
type LiveDrops struct {
	name    string
	total   int
	samples int
}

func NewLiveDrops() *LiveDrops {
	return &LiveDrops{name: "live_drops"}
}

func (l *LiveDrops) Name() string { return l.name }

func (l *LiveDrops) Observe(f *rain.Field, now time.Duration) {
	l.total += f.DropCount()
	l.samples++
}

func (l *LiveDrops) Value() float64 {
	if l.samples == 0 {
		return 0
	}
	return float64(l.total) / float64(l.samples)
}

func (l *LiveDrops) Reset() {
	l.total = 0
	l.samples = 0
}

// TrailOccupancy is the mean fraction of trail slots in use across columns.
type TrailOccupancy struct {
	name    string
	sum     float64
	samples int
	peak    int
}

func NewTrailOccupancy() *TrailOccupancy {
	return &TrailOccupancy{name: "trail_occupancy"}
}

func (o *TrailOccupancy) Name() string { return o.name }

func (o *TrailOccupancy) Observe(f *rain.Field, now time.Duration) {
	p := f.Params()
	slots := p.Columns * p.TrailsPerColumn
	if slots == 0 {
		return
	}
	for _, c := range f.Columns() {
		o.peak = max(o.peak, len(c.Trails()))
	}
	o.sum += float64(f.TrailCount()) / float64(slots)
	o.samples++
}

func (o *TrailOccupancy) Value() float64 {
	if o.samples == 0 {
		return 0
	}
	return o.sum / float64(o.samples)
}

// Peak is the largest trail count seen in any single column.
func (o *TrailOccupancy) Peak() int { return o.peak }

func (o *TrailOccupancy) Reset() {
	o.sum = 0
	o.samples = 0
	o.peak = 0
}
