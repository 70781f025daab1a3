package glyph

import (
	"image"

	"golang.org/x/image/math/fixed"
)

// TextureID is an opaque texture handle owned by the graphics device.
// Zero means no texture, as for blank glyphs like space.
type TextureID uint32

// Rect is an integer texture-space rectangle. X0,Y0 is inclusive and X1,Y1
// exclusive, like image.Rectangle.
type Rect struct {
	X0, Y0, X1, Y1 int
}

// Dx returns the width of r.
func (r Rect) Dx() int { return r.X1 - r.X0 }

// Dy returns the height of r.
func (r Rect) Dy() int { return r.Y1 - r.Y0 }

// Empty reports whether r has no area.
func (r Rect) Empty() bool { return r.X0 >= r.X1 || r.Y0 >= r.Y1 }

// Image converts r to an image.Rectangle.
func (r Rect) Image() image.Rectangle {
	return image.Rect(r.X0, r.Y0, r.X1, r.Y1)
}

// RectFrom converts an image.Rectangle to a Rect.
func RectFrom(r image.Rectangle) Rect {
	return Rect{X0: r.Min.X, Y0: r.Min.Y, X1: r.Max.X, Y1: r.Max.Y}
}

// Record describes one rasterized glyph.
type Record struct {
	// Atlas is the glyph's rectangle inside its backing texture. For a glyph
	// with its own texture this is {0, 0, Size.X, Size.Y}.
	Atlas Rect

	// Size is the glyph bitmap width and height in pixels.
	Size image.Point

	// Bearing is the offset from the pen origin to the glyph's top-left
	// corner. Bearing.Y grows upwards from the baseline.
	Bearing image.Point

	// Advance is the horizontal pen advance in 1/64 pixel units.
	Advance fixed.Int26_6

	// Texture is the backing texture. The library does not own it.
	Texture TextureID
}

// AdvancePixels returns the advance in whole-and-fractional pixels.
func (r Record) AdvancePixels() float32 {
	return float32(r.Advance) / 64
}

// Blank reports whether the glyph has nothing to draw.
func (r Record) Blank() bool {
	return r.Size.X <= 0 || r.Size.Y <= 0
}
