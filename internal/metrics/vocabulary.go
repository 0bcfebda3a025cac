package metrics

import (
	"time"

	"github.com/san-kum/wordrain/internal/rain"
)

// Vocabulary counts the distinct words that have been on screen.
type Vocabulary struct {
	name string
	seen map[string]struct{}
	buf  []rain.Glyph
}

func NewVocabulary() *Vocabulary {
	return &Vocabulary{name: "vocabulary", seen: make(map[string]struct{})}
}

func (v *Vocabulary) Name() string { return v.name }

func (v *Vocabulary) Observe(f *rain.Field, now time.Duration) {
	v.buf = f.AppendGlyphs(v.buf[:0])
	for _, g := range v.buf {
		v.seen[g.Text] = struct{}{}
	}
}

func (v *Vocabulary) Value() float64 { return float64(len(v.seen)) }

func (v *Vocabulary) Reset() {
	clear(v.seen)
	v.buf = v.buf[:0]
}
