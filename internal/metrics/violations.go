package metrics

import (
	"time"

	"github.com/san-kum/wordrain/internal/rain"
)

// Overlap is the fraction of frames in which two visible trails of the same
// column share vertical space.
type Overlap struct {
	name       string
	violations int
	samples    int
}

func NewOverlap() *Overlap {
	return &Overlap{name: "overlap"}
}

func (o *Overlap) Name() string { return o.name }

func (o *Overlap) Observe(f *rain.Field, now time.Duration) {
	o.samples++
	for _, c := range f.Columns() {
		if columnOverlaps(c.Trails()) {
			o.violations++
			return
		}
	}
}

func columnOverlaps(trails []*rain.Trail) bool {
	for i := 0; i < len(trails); i++ {
		if len(trails[i].Drops()) == 0 {
			continue
		}
		topI, headI := trails[i].Span()
		for j := i + 1; j < len(trails); j++ {
			if len(trails[j].Drops()) == 0 {
				continue
			}
			topJ, headJ := trails[j].Span()
			if topI < headJ && topJ < headI {
				return true
			}
		}
	}
	return false
}

func (o *Overlap) Value() float64 {
	if o.samples == 0 {
		return 0
	}
	return float64(o.violations) / float64(o.samples)
}

func (o *Overlap) Reset() {
	o.violations = 0
	o.samples = 0
}

// EmptyColumns counts column-frames that ended a tick without any trail.
// A healthy field always reports zero.
type EmptyColumns struct {
	name  string
	count int
}

func NewEmptyColumns() *EmptyColumns {
	return &EmptyColumns{name: "empty_columns"}
}

func (e *EmptyColumns) Name() string { return e.name }

func (e *EmptyColumns) Observe(f *rain.Field, now time.Duration) {
	for _, c := range f.Columns() {
		if len(c.Trails()) == 0 {
			e.count++
		}
	}
}

func (e *EmptyColumns) Value() float64 { return float64(e.count) }

func (e *EmptyColumns) Reset() { e.count = 0 }
