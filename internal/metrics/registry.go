package metrics

import "github.com/san-kum/wordrain/internal/sim"

// Defaults returns a fresh set of the standard field metrics.
func Defaults() []sim.Metric {
	return []sim.Metric{
		NewLiveDrops(),
		NewTrailOccupancy(),
		NewOverlap(),
		NewEmptyColumns(),
		NewVocabulary(),
	}
}

var (
	_ sim.Metric = (*LiveDrops)(nil)
	_ sim.Metric = (*TrailOccupancy)(nil)
	_ sim.Metric = (*Overlap)(nil)
	_ sim.Metric = (*EmptyColumns)(nil)
	_ sim.Metric = (*Vocabulary)(nil)
)
