// Package glyph stores per-character glyph metadata for text rendering.
//
// A [Library] maps a single-byte character [Code] to a [Record] describing
// where the glyph lives in a texture, how large it is, where it sits relative
// to the pen and how far the pen moves afterwards.
//
// A library is populated once at startup, usually by iterating a [Range]
// through a rasterizer, and is read-only while the render loop runs. It holds
// texture handles but never owns them: the graphics device that created a
// texture is responsible for releasing it.
//
//	lib := glyph.NewLibrary()
//	lib.Add('A', glyph.Record{Atlas: glyph.Rect{X1: 10, Y1: 12}, Advance: 640})
//
//	rec, err := lib.Get('A')
//	if errors.Is(err, glyph.ErrNotFound) {
//	    // never rasterized
//	}
package glyph
