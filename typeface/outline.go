package typeface

import (
	"fmt"

	"golang.org/x/image/font"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
)

// Point is an outline point in pixels. Y grows downwards, as in image space.
type Point struct {
	X, Y float64
}

// SegmentOp is a path operation.
type SegmentOp uint8

const (
	// OpMoveTo starts a new contour at Points[0].
	OpMoveTo SegmentOp = iota
	// OpLineTo draws a line to Points[0].
	OpLineTo
	// OpQuadTo draws a quadratic Bezier with control Points[0] to Points[1].
	OpQuadTo
	// OpCubeTo draws a cubic Bezier with controls Points[0], Points[1] to Points[2].
	OpCubeTo
)

// String returns the operation name.
func (op SegmentOp) String() string {
	switch op {
	case OpMoveTo:
		return "MoveTo"
	case OpLineTo:
		return "LineTo"
	case OpQuadTo:
		return "QuadTo"
	case OpCubeTo:
		return "CubeTo"
	default:
		return "Unknown"
	}
}

// Segment is one path operation of an outline.
type Segment struct {
	Op     SegmentOp
	Points [3]Point
}

// Bounds is an axis-aligned box in outline space.
type Bounds struct {
	MinX, MinY, MaxX, MaxY float64
}

// Empty reports whether b has no area.
func (b Bounds) Empty() bool {
	return b.MinX >= b.MaxX || b.MinY >= b.MaxY
}

// Outline is the vector outline of one glyph, scaled to pixels with the
// pen origin at (0, 0) on the baseline.
type Outline struct {
	Segments []Segment

	// Bounds covers every on- and off-curve point.
	Bounds Bounds

	// Advance is the unhinted horizontal advance.
	Advance fixed.Int26_6
}

// IsEmpty reports whether the outline has no segments, as for a space.
func (o *Outline) IsEmpty() bool {
	return o == nil || len(o.Segments) == 0
}

// Outline extracts the outline of r at the given pixels per em.
// A rune that maps to .notdef fails with ErrGlyphNotInFont.
func (f *Font) Outline(r rune, ppem float64) (*Outline, error) {
	gid, err := f.glyphIndex(r)
	if err != nil {
		return nil, err
	}

	scale := fixed.Int26_6(ppem * 64)

	f.mu.Lock()
	defer f.mu.Unlock()

	segments, err := f.sf.LoadGlyph(&f.buf, gid, scale, nil)
	if err != nil {
		return nil, fmt.Errorf("typeface: load glyph %q: %w", r, err)
	}
	advance, err := f.sf.GlyphAdvance(&f.buf, gid, scale, font.HintingNone)
	if err != nil {
		return nil, fmt.Errorf("typeface: advance for %q: %w", r, err)
	}

	out := &Outline{
		Segments: make([]Segment, 0, len(segments)),
		Advance:  advance,
	}
	if len(segments) == 0 {
		return out, nil
	}

	b := Bounds{MinX: 1e18, MinY: 1e18, MaxX: -1e18, MaxY: -1e18}
	for _, seg := range segments {
		var s Segment
		n := 1
		switch seg.Op {
		case sfnt.SegmentOpMoveTo:
			s.Op = OpMoveTo
		case sfnt.SegmentOpLineTo:
			s.Op = OpLineTo
		case sfnt.SegmentOpQuadTo:
			s.Op, n = OpQuadTo, 2
		case sfnt.SegmentOpCubeTo:
			s.Op, n = OpCubeTo, 3
		}
		for i := 0; i < n; i++ {
			p := Point{X: float64(seg.Args[i].X) / 64, Y: float64(seg.Args[i].Y) / 64}
			s.Points[i] = p
			b.MinX, b.MaxX = min(b.MinX, p.X), max(b.MaxX, p.X)
			b.MinY, b.MaxY = min(b.MinY, p.Y), max(b.MaxY, p.Y)
		}
		out.Segments = append(out.Segments, s)
	}
	out.Bounds = b
	return out, nil
}
