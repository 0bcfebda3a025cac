package rain

import "math/rand"

// Source is the single random source used for all jitter in the simulation.
// *rand.Rand satisfies it.
type Source interface {
	Float64() float64
	Intn(n int) int
}

// NewSource returns a deterministic Source for the given seed.
func NewSource(seed int64) Source {
	return rand.New(rand.NewSource(seed))
}

func uniform(src Source, lo, hi float64) float64 {
	return lo + src.Float64()*(hi-lo)
}
