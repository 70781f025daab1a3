package raster

import (
	"image"
	"image/draw"
	"log/slog"

	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"

	glsandbox "github.com/gogpu/glsandbox"
	"github.com/gogpu/glsandbox/glyph"
)

// Metrics places a glyph bitmap relative to the pen.
type Metrics struct {
	// Size is the bitmap width and height.
	Size image.Point

	// Bearing is the offset from the pen to the bitmap's top-left corner,
	// with Y growing upwards.
	Bearing image.Point

	// Advance is the horizontal pen advance.
	Advance fixed.Int26_6
}

// Glyph is one rasterized code.
type Glyph struct {
	Code glyph.Code

	// Image holds coverage. It is nil for blank glyphs.
	Image *image.Alpha

	Metrics
}

// Blank reports whether the glyph has nothing to draw.
func (g *Glyph) Blank() bool { return g.Image == nil }

// Rasterizer renders codes to coverage bitmaps.
type Rasterizer interface {
	Rasterize(code glyph.Code) (*Glyph, error)
}

// Coverage reports whether a font maps a rune to a real glyph.
type Coverage interface {
	HasGlyph(r rune) bool
}

// Bitmap rasterizes glyphs from a font.Face.
type Bitmap struct {
	face     font.Face
	coverage Coverage
}

// NewBitmap creates a rasterizer for face.
func NewBitmap(face font.Face) *Bitmap {
	return &Bitmap{face: face}
}

// WithCoverage sets an extra check for missing glyphs, for faces whose
// GlyphBounds reports .notdef as present.
func (b *Bitmap) WithCoverage(c Coverage) *Bitmap {
	b.coverage = c
	return b
}

// Face returns the underlying face.
func (b *Bitmap) Face() font.Face { return b.face }

// Rasterize renders code. Missing glyphs fail with a *GlyphError wrapping
// ErrNoGlyph.
func (b *Bitmap) Rasterize(code glyph.Code) (*Glyph, error) {
	r := code.Rune()
	if b.coverage != nil && !b.coverage.HasGlyph(r) {
		return nil, &GlyphError{Code: code, Err: ErrNoGlyph}
	}

	bounds, advance, ok := b.face.GlyphBounds(r)
	if !ok {
		return nil, &GlyphError{Code: code, Err: ErrNoGlyph}
	}

	x0, y0 := bounds.Min.X.Floor(), bounds.Min.Y.Floor()
	x1, y1 := bounds.Max.X.Ceil(), bounds.Max.Y.Ceil()
	g := &Glyph{
		Code: code,
		Metrics: Metrics{
			Bearing: image.Pt(x0, -y0),
			Advance: advance,
		},
	}
	if x1 <= x0 || y1 <= y0 {
		g.Bearing = image.Point{}
		return g, nil
	}

	dst := image.NewAlpha(image.Rect(0, 0, x1-x0, y1-y0))
	dr, mask, maskp, _, ok := b.face.Glyph(fixed.P(-x0, -y0), r)
	if !ok {
		return nil, &GlyphError{Code: code, Err: ErrNoGlyph}
	}
	draw.DrawMask(dst, dr, image.Opaque, image.Point{}, mask, maskp, draw.Src)

	g.Image = dst
	g.Size = dst.Rect.Size()

	glsandbox.ComponentLogger("raster").Debug("rasterized glyph",
		slog.String("code", code.String()),
		slog.Int("w", g.Size.X), slog.Int("h", g.Size.Y),
		slog.Int("advance", advance.Round()))
	return g, nil
}
