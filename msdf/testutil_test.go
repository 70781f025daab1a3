package msdf

import (
	"testing"

	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/math/fixed"

	"github.com/gogpu/glsandbox/typeface"
)

// polygon builds a closed outline through pts without repeating the start.
func polygon(pts ...typeface.Point) *typeface.Outline {
	o := &typeface.Outline{Advance: 640}
	o.Segments = append(o.Segments, typeface.Segment{Op: typeface.OpMoveTo, Points: [3]typeface.Point{pts[0]}})
	b := typeface.Bounds{MinX: pts[0].X, MinY: pts[0].Y, MaxX: pts[0].X, MaxY: pts[0].Y}
	for _, p := range pts[1:] {
		o.Segments = append(o.Segments, typeface.Segment{Op: typeface.OpLineTo, Points: [3]typeface.Point{p}})
		b.MinX, b.MinY = min(b.MinX, p.X), min(b.MinY, p.Y)
		b.MaxX, b.MaxY = max(b.MaxX, p.X), max(b.MaxY, p.Y)
	}
	o.Bounds = b
	return o
}

func square(size float64) *typeface.Outline {
	return polygon(
		typeface.Point{X: 0, Y: 0},
		typeface.Point{X: size, Y: 0},
		typeface.Point{X: size, Y: size},
		typeface.Point{X: 0, Y: size},
	)
}

// circle approximates a unit circle scaled by r around (r, r) with four
// tangent-continuous quadratics.
func circle(r float64) *typeface.Outline {
	pt := func(x, y float64) typeface.Point { return typeface.Point{X: r + x*r, Y: r + y*r} }
	quad := func(c, p typeface.Point) typeface.Segment {
		return typeface.Segment{Op: typeface.OpQuadTo, Points: [3]typeface.Point{c, p}}
	}
	return &typeface.Outline{
		Segments: []typeface.Segment{
			{Op: typeface.OpMoveTo, Points: [3]typeface.Point{pt(1, 0)}},
			quad(pt(1, 1), pt(0, 1)),
			quad(pt(-1, 1), pt(-1, 0)),
			quad(pt(-1, -1), pt(0, -1)),
			quad(pt(1, -1), pt(1, 0)),
		},
		Bounds:  typeface.Bounds{MinX: 0, MinY: 0, MaxX: 2 * r, MaxY: 2 * r},
		Advance: fixed.I(int(2 * r)),
	}
}

func goOutline(t *testing.T, r rune, ppem float64) *typeface.Outline {
	t.Helper()
	f, err := typeface.Parse(goregular.TTF)
	if err != nil {
		t.Fatalf("Parse(goregular): %v", err)
	}
	o, err := f.Outline(r, ppem)
	if err != nil {
		t.Fatalf("Outline(%q): %v", r, err)
	}
	return o
}
