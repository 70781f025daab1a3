package textrender

import (
	"golang.org/x/image/math/fixed"

	"github.com/gogpu/glsandbox/glyph"
)

// Quad is one glyph rectangle in screen space, Y up, with its texture
// coordinates. V0 is the top row of the glyph in the texture.
type Quad struct {
	X0, Y0, X1, Y1 float32
	U0, V0, U1, V1 float32
	Texture        glyph.TextureID
}

// Layout places each byte of text as a code, starting with the pen at
// (x, y) on the baseline. Blank glyphs advance the pen without a quad.
// A code missing from the library fails with glyph.ErrNotFound.
func Layout(g *Glyphs, text string, x, y, scale float32) ([]Quad, error) {
	return LayoutShaped(g, text, nil, x, y, scale)
}

// LayoutShaped is Layout with per-byte advances overriding the library's,
// as returned by Shaper.Advances. A nil slice uses library advances.
func LayoutShaped(g *Glyphs, text string, advances []fixed.Int26_6, x, y, scale float32) ([]Quad, error) {
	quads := make([]Quad, 0, len(text))
	for i := 0; i < len(text); i++ {
		rec, err := g.Get(glyph.Code(text[i]))
		if err != nil {
			return nil, err
		}

		if !rec.Blank() {
			xpos := x + float32(rec.Bearing.X)*scale
			ypos := y - float32(rec.Size.Y-rec.Bearing.Y)*scale
			q := Quad{
				X0: xpos, Y0: ypos,
				X1: xpos + float32(rec.Size.X)*scale, Y1: ypos + float32(rec.Size.Y)*scale,
				Texture: rec.Texture,
			}
			if ts, ok := g.TextureSize(rec.Texture); ok && ts.X > 0 && ts.Y > 0 {
				q.U0 = float32(rec.Atlas.X0) / float32(ts.X)
				q.U1 = float32(rec.Atlas.X1) / float32(ts.X)
				q.V0 = float32(rec.Atlas.Y0) / float32(ts.Y)
				q.V1 = float32(rec.Atlas.Y1) / float32(ts.Y)
			}
			quads = append(quads, q)
		}

		adv := rec.Advance
		if i < len(advances) {
			adv = advances[i]
		}
		x += float32(adv) / 64 * scale
	}
	return quads, nil
}

// Width returns the pen travel of text at scale.
func Width(g *Glyphs, text string, scale float32) (float32, error) {
	var w float32
	for i := 0; i < len(text); i++ {
		rec, err := g.Get(glyph.Code(text[i]))
		if err != nil {
			return 0, err
		}
		w += rec.AdvancePixels() * scale
	}
	return w, nil
}

// vertices appends two triangles per quad as x, y, u, v.
func vertices(dst []float32, quads []Quad) []float32 {
	for _, q := range quads {
		dst = append(dst,
			q.X0, q.Y1, q.U0, q.V0,
			q.X0, q.Y0, q.U0, q.V1,
			q.X1, q.Y0, q.U1, q.V1,

			q.X0, q.Y1, q.U0, q.V0,
			q.X1, q.Y0, q.U1, q.V1,
			q.X1, q.Y1, q.U1, q.V0,
		)
	}
	return dst
}
