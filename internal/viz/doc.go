// Package viz renders a running field in the terminal with Bubble Tea.
//
// Glyphs are rasterized onto a [Canvas] of terminal cells: one row per word
// slot, each word written from its lane origin and clipped to the lane.
// Opacity is approximated by blending the glyph color toward black.
//
// # Key Bindings
//
//	Space - Pause/Resume
//	R     - Reseed the field
//	C     - Cycle color mode
//	?     - Toggle full help
//	Q     - Quit
package viz
