package rain

import "time"

// Glyph is one renderable drop for the current tick.
type Glyph struct {
	Column  int     `json:"column"`
	Text    string  `json:"text"`
	X       float64 `json:"x"`
	Y       float64 `json:"y"`
	Band    Band    `json:"band"`
	Color   RGB     `json:"color"`
	Glow    RGB     `json:"glow"`
	Opacity float64 `json:"opacity"`
}

type Field struct {
	env     *env
	columns []*Column
	last    time.Duration
}

// New builds a field of p.Columns columns, each seeded with one trail.
// now is the timestamp of the clock the field will be driven with.
func New(p Params, vp Viewport, src Source, now time.Duration) *Field {
	p = p.normalized()
	e := &env{
		p:      p,
		vp:     vp.normalized(),
		src:    src,
		picker: NewWordPicker(p.Words, src),
	}
	f := &Field{env: e, last: now}
	f.columns = make([]*Column, p.Columns)
	for i := range f.columns {
		f.columns[i] = newColumn(e, i, now)
	}
	return f
}

// Update advances the simulation to now. The delta from the previous call
// is clamped to [0, MaxFrameStep].
func (f *Field) Update(now time.Duration) {
	dt := now - f.last
	if dt < 0 {
		dt = 0
	}
	if dt > MaxFrameStep {
		dt = MaxFrameStep
	}
	if now > f.last {
		f.last = now
	}
	for _, c := range f.columns {
		c.Update(now, dt)
	}
}

// Glyphs returns a fresh snapshot of every live drop.
func (f *Field) Glyphs() []Glyph {
	return f.AppendGlyphs(make([]Glyph, 0, f.DropCount()))
}

// AppendGlyphs appends the snapshot to dst, letting renderers reuse a buffer.
func (f *Field) AppendGlyphs(dst []Glyph) []Glyph {
	for _, c := range f.columns {
		x := c.X()
		for _, t := range c.trails {
			for _, d := range t.drops {
				dst = append(dst, Glyph{
					Column:  c.index,
					Text:    d.Text,
					X:       x,
					Y:       d.Y,
					Band:    d.Band,
					Color:   d.Color,
					Glow:    d.Glow,
					Opacity: d.Opacity,
				})
			}
		}
	}
	return dst
}

// Resize changes the viewport. Column positions follow immediately; trails
// keep their speed and only pick up the new height for new trails.
func (f *Field) Resize(vp Viewport) {
	f.env.vp = vp.normalized()
}

// SetPalette swaps the color mode for subsequent ticks.
func (f *Field) SetPalette(p Palette) {
	f.env.p.Palette = p
}

func (f *Field) Columns() []*Column { return f.columns }
func (f *Field) Params() Params     { return f.env.p }
func (f *Field) Viewport() Viewport { return f.env.vp }
func (f *Field) Now() time.Duration { return f.last }

func (f *Field) TrailCount() int {
	n := 0
	for _, c := range f.columns {
		n += len(c.trails)
	}
	return n
}

func (f *Field) DropCount() int {
	n := 0
	for _, c := range f.columns {
		n += c.DropCount()
	}
	return n
}
