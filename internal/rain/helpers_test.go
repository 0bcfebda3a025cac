package rain

import "time"

// constSource returns the same draw every call.
type constSource struct {
	f     float64
	calls int
}

func (s *constSource) Float64() float64 { return s.f }

func (s *constSource) Intn(n int) int {
	s.calls++
	i := int(s.f * float64(n))
	if i >= n {
		i = n - 1
	}
	return i
}

func testParams() Params {
	return Params{
		Words:           []string{"alpha", "beta", "gamma"},
		Columns:         4,
		LineHeight:      10,
		FallDuration:    time.Second,
		SpawnInterval:   100 * time.Millisecond,
		Brightness:      0.8,
		TrailLength:     3,
		TrailsPerColumn: 2,
		GapWords:        1,
		Palette:         Palette{Mode: ModeClassic},
		TravelMin:       1,
		TravelMax:       1,
	}
}

func testEnv(p Params, vp Viewport, src Source) *env {
	p = p.normalized()
	return &env{p: p, vp: vp.normalized(), src: src, picker: NewWordPicker(p.Words, src)}
}
