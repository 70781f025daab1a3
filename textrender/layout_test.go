package textrender

import (
	"errors"
	"image"
	"testing"

	"github.com/google/go-cmp/cmp"
	"golang.org/x/image/math/fixed"

	"github.com/gogpu/glsandbox/glyph"
)

// testGlyphs has 'A' with its own 10x12 texture, a blank space and 'B'
// inside a 64x64 atlas.
func testGlyphs() *Glyphs {
	g := newGlyphs(ModeBitmap)
	g.sizes[1] = image.Pt(10, 12)
	g.sizes[2] = image.Pt(64, 64)
	g.Add('A', glyph.Record{
		Atlas:   glyph.Rect{X1: 10, Y1: 12},
		Size:    image.Pt(10, 12),
		Bearing: image.Pt(1, 10),
		Advance: fixed.I(10),
		Texture: 1,
	})
	g.Add(' ', glyph.Record{Advance: fixed.I(4)})
	g.Add('B', glyph.Record{
		Atlas:   glyph.Rect{X0: 8, Y0: 16, X1: 18, Y1: 28},
		Size:    image.Pt(10, 12),
		Bearing: image.Pt(0, 12),
		Advance: fixed.I(11),
		Texture: 2,
	})
	return g
}

func TestLayout(t *testing.T) {
	quads, err := Layout(testGlyphs(), "A A", 5, 100, 2)
	if err != nil {
		t.Fatalf("Layout: %v", err)
	}
	want := []Quad{
		{X0: 7, Y0: 96, X1: 27, Y1: 120, U0: 0, V0: 0, U1: 1, V1: 1, Texture: 1},
		// Pen: 5 + 10*2 (A) + 4*2 (space) = 33, plus bearing 1*2.
		{X0: 35, Y0: 96, X1: 55, Y1: 120, U0: 0, V0: 0, U1: 1, V1: 1, Texture: 1},
	}
	if diff := cmp.Diff(want, quads); diff != "" {
		t.Errorf("Layout mismatch (-want +got):\n%s", diff)
	}
}

func TestLayout_AtlasUV(t *testing.T) {
	quads, err := Layout(testGlyphs(), "B", 0, 0, 1)
	if err != nil {
		t.Fatalf("Layout: %v", err)
	}
	if len(quads) != 1 {
		t.Fatalf("expected 1 quad, got %d", len(quads))
	}
	q := quads[0]
	if q.U0 != 0.125 || q.V0 != 0.25 || q.U1 != 0.28125 || q.V1 != 0.4375 {
		t.Errorf("unexpected uv (%v,%v)-(%v,%v)", q.U0, q.V0, q.U1, q.V1)
	}
	// Bearing.Y == Size.Y puts the bottom on the baseline.
	if q.Y0 != 0 || q.Y1 != 12 {
		t.Errorf("expected y from 0 to 12, got %v to %v", q.Y0, q.Y1)
	}
}

func TestLayout_BlankOnly(t *testing.T) {
	quads, err := Layout(testGlyphs(), "   ", 0, 0, 1)
	if err != nil {
		t.Fatal(err)
	}
	if len(quads) != 0 {
		t.Errorf("expected no quads for spaces, got %d", len(quads))
	}
}

func TestLayout_Unknown(t *testing.T) {
	_, err := Layout(testGlyphs(), "AZ", 0, 0, 1)
	if !errors.Is(err, glyph.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestLayoutShaped(t *testing.T) {
	adv := []fixed.Int26_6{fixed.I(8), fixed.I(8)}
	quads, err := LayoutShaped(testGlyphs(), "AAA", adv, 0, 0, 1)
	if err != nil {
		t.Fatal(err)
	}
	// First two advances come from the shaper, the third from the library.
	xs := []float32{quads[0].X0, quads[1].X0, quads[2].X0}
	if diff := cmp.Diff([]float32{1, 9, 17}, xs); diff != "" {
		t.Errorf("pen positions mismatch (-want +got):\n%s", diff)
	}
}

func TestWidth(t *testing.T) {
	w, err := Width(testGlyphs(), "A B", 2)
	if err != nil {
		t.Fatal(err)
	}
	if w != 50 {
		t.Errorf("expected width 50, got %v", w)
	}
}

func TestVertices(t *testing.T) {
	q := Quad{X0: 0, Y0: 0, X1: 2, Y1: 3, U0: 0, V0: 0, U1: 1, V1: 1}
	v := vertices(nil, []Quad{q, q})
	if len(v) != 48 {
		t.Fatalf("expected 48 floats, got %d", len(v))
	}
	// Top-left vertex samples the top of the texture.
	if diff := cmp.Diff([]float32{0, 3, 0, 0}, v[:4]); diff != "" {
		t.Errorf("first vertex mismatch (-want +got):\n%s", diff)
	}
	// Bottom-left samples the bottom row.
	if diff := cmp.Diff([]float32{0, 0, 0, 1}, v[4:8]); diff != "" {
		t.Errorf("second vertex mismatch (-want +got):\n%s", diff)
	}
}

func TestMode(t *testing.T) {
	m, err := ParseMode("MSDF")
	if err != nil || m != ModeMSDF {
		t.Errorf("ParseMode(MSDF) = %v, %v", m, err)
	}
	if _, err := ParseMode("vector"); err == nil {
		t.Error("expected error for unknown mode")
	}
	if ModeBitmap.Toggle() != ModeMSDF || ModeMSDF.Toggle() != ModeBitmap {
		t.Error("Toggle should switch modes")
	}
	if ModeBitmap.String() != "bitmap" {
		t.Errorf("unexpected name %q", ModeBitmap.String())
	}
}
