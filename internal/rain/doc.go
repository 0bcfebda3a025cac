// Package rain implements the falling-word simulation core.
//
// The package owns the per-column trail scheduling and lifecycle:
//
//   - [Field]: top-level driver owning every column; clamps the frame delta
//   - [Column]: one horizontal lane holding 1..N concurrent trails
//   - [Trail]: a falling head that drops words and fades them with distance
//   - [WordPicker]: next-word selection avoiding immediate repeats
//   - [Palette]: base color per column for the classic, solid and rainbow modes
//
// # Example
//
//	src := rain.NewSource(42)
//	f := rain.New(params, rain.Viewport{Width: 1280, Height: 800}, src, 0)
//	for now := time.Duration(0); now < 2*time.Second; now += 16 * time.Millisecond {
//		f.Update(now)
//		draw(f.Glyphs())
//	}
//
// # Thread Safety
//
// A Field is NOT thread-safe. It is meant to be driven from a single frame
// loop; renderers should consume the slice returned by [Field.Glyphs].
package rain
