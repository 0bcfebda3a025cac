package sim

import (
	"context"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/wordrain/internal/rain"
)

type columnWatch struct {
	minTrails  int
	maxTrails  int
	framesSeen int
}

func (w *columnWatch) OnFrame(f *rain.Field, now time.Duration) {
	w.framesSeen++
	for _, c := range f.Columns() {
		n := len(c.Trails())
		if n < w.minTrails {
			w.minTrails = n
		}
		if n > w.maxTrails {
			w.maxTrails = n
		}
	}
}

var _ = Describe("Simulator", func() {
	var (
		params rain.Params
		cfg    Config
	)

	BeforeEach(func() {
		params = testParams()
		cfg = Config{Step: 16 * time.Millisecond, Duration: 10 * time.Second, Seed: 3}
	})

	It("keeps every column populated and within its trail limit", func() {
		watch := &columnWatch{minTrails: 1 << 30}
		s := New(params, testViewport)
		s.AddObserver(watch)

		_, err := s.Run(context.Background(), cfg)
		Expect(err).NotTo(HaveOccurred())
		Expect(watch.framesSeen).To(Equal(625))
		Expect(watch.minTrails).To(BeNumerically(">=", 1))
		Expect(watch.maxTrails).To(BeNumerically("<=", params.TrailsPerColumn))
	})

	It("keeps glyphs inside their columns", func() {
		result, err := New(params, testViewport).Run(context.Background(), cfg)
		Expect(err).NotTo(HaveOccurred())

		colWidth := testViewport.Width / float64(params.Columns)
		for _, g := range result.Final {
			Expect(g.X).To(BeNumerically("~", float64(g.Column)*colWidth, 1e-9))
			Expect(g.Band).NotTo(Equal(rain.BandExpired))
			Expect(g.Opacity).To(BeNumerically(">", 0))
			Expect(params.Words).To(ContainElement(g.Text))
		}
	})

	Context("with the cooldown policy", func() {
		BeforeEach(func() {
			params.Policy = rain.PolicyCooldown
			params.TrailsPerColumn = 1
			params.RespawnDelay = 500 * time.Millisecond
		})

		It("never leaves a column empty", func() {
			watch := &columnWatch{minTrails: 1 << 30}
			s := New(params, testViewport)
			s.AddObserver(watch)

			_, err := s.Run(context.Background(), cfg)
			Expect(err).NotTo(HaveOccurred())
			Expect(watch.minTrails).To(Equal(1))
			Expect(watch.maxTrails).To(Equal(1))
		})
	})

	Describe("Ensemble", func() {
		It("runs each seed independently", func() {
			e := NewEnsemble(params, testViewport, nil, 3, 0)
			results, err := e.Run(context.Background(), Config{Step: 16 * time.Millisecond, Duration: time.Second})
			Expect(err).NotTo(HaveOccurred())
			Expect(results).To(HaveLen(3))
			for i, r := range results {
				Expect(r.Seed).To(Equal(int64(i)))
				Expect(r.Frames).To(Equal(62))
			}
		})

		It("propagates configuration errors", func() {
			e := NewEnsemble(params, testViewport, nil, 2, 0)
			_, err := e.Run(context.Background(), Config{})
			Expect(err).To(HaveOccurred())
		})
	})
})
