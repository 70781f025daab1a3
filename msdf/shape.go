package msdf

import (
	"github.com/gogpu/glsandbox/typeface"
)

// Contour is a closed loop of edges.
type Contour struct {
	Edges []Edge
}

// Shape is a glyph as a set of contours.
type Shape struct {
	Contours []Contour

	// polys holds each contour flattened to a polygon for the inside test.
	polys [][]Vec

	// orient is 1 when the filled side is left of the edges, -1 otherwise.
	orient float64
}

// EdgeCount returns the number of edges across all contours.
func (s *Shape) EdgeCount() int {
	n := 0
	for _, c := range s.Contours {
		n += len(c.Edges)
	}
	return n
}

// Bounds returns the box containing every edge.
func (s *Shape) Bounds() Box {
	b := emptyBox
	for _, c := range s.Contours {
		for i := range c.Edges {
			b = b.Union(c.Edges[i].Bounds())
		}
	}
	return b
}

// ShapeFromOutline converts a glyph outline into a shape. Degenerate line
// segments are dropped and open contours are closed with a line.
func ShapeFromOutline(o *typeface.Outline) *Shape {
	s := &Shape{}
	if o.IsEmpty() {
		return s
	}

	var cur Contour
	var start, pen Vec
	flush := func() {
		if len(cur.Edges) == 0 {
			return
		}
		if pen.Sub(start).Len() > 1e-9 {
			cur.Edges = append(cur.Edges, Line(pen, start))
		}
		s.Contours = append(s.Contours, cur)
		cur = Contour{}
	}

	for _, seg := range o.Segments {
		p := func(i int) Vec { return Vec{seg.Points[i].X, seg.Points[i].Y} }
		switch seg.Op {
		case typeface.OpMoveTo:
			flush()
			start, pen = p(0), p(0)
		case typeface.OpLineTo:
			if p(0).Sub(pen).Len() > 1e-9 {
				cur.Edges = append(cur.Edges, Line(pen, p(0)))
			}
			pen = p(0)
		case typeface.OpQuadTo:
			cur.Edges = append(cur.Edges, Quad(pen, p(0), p(1)))
			pen = p(1)
		case typeface.OpCubeTo:
			cur.Edges = append(cur.Edges, Cubic(pen, p(0), p(1), p(2)))
			pen = p(2)
		}
	}
	flush()

	s.polys = make([][]Vec, len(s.Contours))
	area := 0.0
	for i, c := range s.Contours {
		poly := []Vec{c.Edges[0].Start()}
		for j := range c.Edges {
			poly = c.Edges[j].flatten(poly)
		}
		s.polys[i] = poly
		for j := 0; j+1 < len(poly); j++ {
			area += poly[j].Cross(poly[j+1])
		}
	}
	// Holes wind against the outer contours and enclose less area, so the
	// sign of the total tells which side of an edge is filled.
	s.orient = 1
	if area < 0 {
		s.orient = -1
	}
	return s
}

// Inside reports whether p is filled under the nonzero winding rule.
// It is independent of contour orientation.
func (s *Shape) Inside(p Vec) bool {
	winding := 0
	for _, poly := range s.polys {
		for i := 0; i+1 < len(poly); i++ {
			a, b := poly[i], poly[i+1]
			if a.Y <= p.Y {
				if b.Y > p.Y && b.Sub(a).Cross(p.Sub(a)) > 0 {
					winding++
				}
			} else if b.Y <= p.Y && b.Sub(a).Cross(p.Sub(a)) < 0 {
				winding--
			}
		}
	}
	return winding != 0
}

// ColorEdges assigns channel colors so that edges meeting at a corner
// sharper than threshold radians never share all channels. Smooth contours
// stay white. A contour with a single corner is split into three color
// runs, subdividing its edges when it has fewer than three.
func ColorEdges(s *Shape, threshold float64) {
	palette := [3]EdgeColor{ColorCyan, ColorMagenta, ColorYellow}

	for ci := range s.Contours {
		edges := s.Contours[ci].Edges
		n := len(edges)

		corners := make([]bool, n)
		numCorners, first := 0, -1
		for i := range edges {
			next := &edges[(i+1)%n]
			if angleBetween(edges[i].Tangent(1), next.Tangent(0)) > threshold {
				corners[i] = true
				numCorners++
				if first < 0 {
					first = i
				}
			}
		}

		switch numCorners {
		case 0:
			for i := range edges {
				edges[i].Color = ColorWhite
			}
			continue
		case 1:
			s.Contours[ci].Edges = colorTeardrop(edges, first, palette)
			continue
		}

		// Walk from the edge after the first corner, switching color at each
		// corner. The last run must not match the first run's color.
		run := 0
		for k := 0; k < n; k++ {
			i := (first + 1 + k) % n
			if k > 0 && corners[(i-1+n)%n] {
				run++
			}
			c := palette[run%3]
			if run == numCorners-1 && c == palette[0] {
				c = palette[1]
			}
			edges[i].Color = c
		}
	}
}

// colorTeardrop colors a contour whose only corner is at the end of
// edges[corner]. Starting at the corner, the first third of the edges gets
// one color, the middle third white and the last third a second color.
func colorTeardrop(edges []Edge, corner int, palette [3]EdgeColor) []Edge {
	n := len(edges)
	ordered := make([]Edge, 0, max(n, 3))
	for k := 0; k < n; k++ {
		ordered = append(ordered, edges[(corner+1+k)%n])
	}
	if n < 3 {
		split := make([]Edge, 0, 3*n)
		for i := range ordered {
			parts := ordered[i].splitThirds()
			split = append(split, parts[:]...)
		}
		ordered = split
	}

	colors := [3]EdgeColor{palette[0], ColorWhite, palette[1]}
	m := len(ordered)
	for k := range ordered {
		ordered[k].Color = colors[1+trichotomy(k, m)]
	}
	return ordered
}

// trichotomy maps position k of n to -1, 0 or 1, splitting the range into
// thirds that are symmetric around the middle.
func trichotomy(k, n int) int {
	return int(3+2.875*float64(k)/float64(n-1)-1.4375+0.5) - 3
}
