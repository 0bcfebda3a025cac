package rain

// DefaultWord is shown when the configured word list is empty.
const DefaultWord = "essential"

const maxPickRetries = 10

type WordPicker struct {
	words []string
	src   Source
}

func NewWordPicker(words []string, src Source) *WordPicker {
	if len(words) == 0 {
		words = []string{DefaultWord}
	}
	return &WordPicker{words: words, src: src}
}

// Pick draws a word uniformly, redrawing a bounded number of times to avoid
// returning last again. Repetition is tolerated once retries run out.
func (p *WordPicker) Pick(last string) string {
	w := p.words[p.src.Intn(len(p.words))]
	for t := 0; w == last && len(p.words) > 1 && t < maxPickRetries; t++ {
		w = p.words[p.src.Intn(len(p.words))]
	}
	return w
}

func (p *WordPicker) Words() []string { return p.words }
