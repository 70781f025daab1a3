package msdf

import "math"

// EdgeKind is the geometric type of an edge.
type EdgeKind uint8

const (
	// EdgeLine is a straight segment P[0]-P[1].
	EdgeLine EdgeKind = iota
	// EdgeQuad is a quadratic Bezier P[0], control P[1], P[2].
	EdgeQuad
	// EdgeCubic is a cubic Bezier P[0], controls P[1], P[2], P[3].
	EdgeCubic
)

// String returns the kind name.
func (k EdgeKind) String() string {
	switch k {
	case EdgeLine:
		return "Line"
	case EdgeQuad:
		return "Quad"
	case EdgeCubic:
		return "Cubic"
	default:
		return "Unknown"
	}
}

// EdgeColor is the set of RGB channels an edge contributes to.
type EdgeColor uint8

const (
	ColorBlack EdgeColor = 0
	ColorRed   EdgeColor = 1 << (iota - 1)
	ColorGreen
	ColorBlue

	ColorYellow  = ColorRed | ColorGreen
	ColorCyan    = ColorGreen | ColorBlue
	ColorMagenta = ColorRed | ColorBlue
	ColorWhite   = ColorRed | ColorGreen | ColorBlue
)

// Has reports whether c includes every channel of ch.
func (c EdgeColor) Has(ch EdgeColor) bool { return c&ch == ch }

// String returns the color name.
func (c EdgeColor) String() string {
	switch c {
	case ColorBlack:
		return "Black"
	case ColorRed:
		return "Red"
	case ColorGreen:
		return "Green"
	case ColorBlue:
		return "Blue"
	case ColorYellow:
		return "Yellow"
	case ColorCyan:
		return "Cyan"
	case ColorMagenta:
		return "Magenta"
	case ColorWhite:
		return "White"
	default:
		return "Unknown"
	}
}

// Edge is one segment of a contour.
type Edge struct {
	Kind  EdgeKind
	P     [4]Vec
	Color EdgeColor
}

// Line returns a white linear edge.
func Line(a, b Vec) Edge {
	return Edge{Kind: EdgeLine, P: [4]Vec{a, b}, Color: ColorWhite}
}

// Quad returns a white quadratic edge.
func Quad(a, c, b Vec) Edge {
	return Edge{Kind: EdgeQuad, P: [4]Vec{a, c, b}, Color: ColorWhite}
}

// Cubic returns a white cubic edge.
func Cubic(a, c1, c2, b Vec) Edge {
	return Edge{Kind: EdgeCubic, P: [4]Vec{a, c1, c2, b}, Color: ColorWhite}
}

// Start returns the first point of the edge.
func (e *Edge) Start() Vec { return e.P[0] }

// End returns the last point of the edge.
func (e *Edge) End() Vec { return e.P[e.Kind+1] }

// PointAt evaluates the edge at t in [0, 1].
func (e *Edge) PointAt(t float64) Vec {
	p := e.P
	switch e.Kind {
	case EdgeQuad:
		return p[0].Lerp(p[1], t).Lerp(p[1].Lerp(p[2], t), t)
	case EdgeCubic:
		a, b, c := p[0].Lerp(p[1], t), p[1].Lerp(p[2], t), p[2].Lerp(p[3], t)
		return a.Lerp(b, t).Lerp(b.Lerp(c, t), t)
	default:
		return p[0].Lerp(p[1], t)
	}
}

// Tangent returns the derivative of the edge at t. A coincident control
// point falls back to the chord.
func (e *Edge) Tangent(t float64) Vec {
	p := e.P
	switch e.Kind {
	case EdgeQuad:
		d := p[1].Sub(p[0]).Lerp(p[2].Sub(p[1]), t).Mul(2)
		if d.X == 0 && d.Y == 0 {
			return p[2].Sub(p[0])
		}
		return d
	case EdgeCubic:
		a, b, c := p[1].Sub(p[0]), p[2].Sub(p[1]), p[3].Sub(p[2])
		d := a.Lerp(b, t).Lerp(b.Lerp(c, t), t).Mul(3)
		if d.X == 0 && d.Y == 0 {
			if t < 0.5 {
				return p[2].Sub(p[0])
			}
			return p[3].Sub(p[1])
		}
		return d
	default:
		return p[1].Sub(p[0])
	}
}

// Bounds returns a box containing the edge, control points included.
func (e *Edge) Bounds() Box {
	b := emptyBox
	for i := 0; i <= int(e.Kind)+1; i++ {
		b = b.include(e.P[i])
	}
	return b
}

// Split divides the edge at t into two edges of the same kind and color.
func (e *Edge) Split(t float64) (Edge, Edge) {
	p := e.P
	a, b := Edge{Kind: e.Kind, Color: e.Color}, Edge{Kind: e.Kind, Color: e.Color}
	switch e.Kind {
	case EdgeQuad:
		p01, p12 := p[0].Lerp(p[1], t), p[1].Lerp(p[2], t)
		m := p01.Lerp(p12, t)
		a.P = [4]Vec{p[0], p01, m}
		b.P = [4]Vec{m, p12, p[2]}
	case EdgeCubic:
		p01, p12, p23 := p[0].Lerp(p[1], t), p[1].Lerp(p[2], t), p[2].Lerp(p[3], t)
		q0, q1 := p01.Lerp(p12, t), p12.Lerp(p23, t)
		m := q0.Lerp(q1, t)
		a.P = [4]Vec{p[0], p01, q0, m}
		b.P = [4]Vec{m, q1, p23, p[3]}
	default:
		m := p[0].Lerp(p[1], t)
		a.P = [4]Vec{p[0], m}
		b.P = [4]Vec{m, p[1]}
	}
	return a, b
}

// splitThirds divides the edge into three parts of equal parameter length.
func (e *Edge) splitThirds() [3]Edge {
	first, rest := e.Split(1.0 / 3)
	second, third := rest.Split(0.5)
	return [3]Edge{first, second, third}
}

// distance returns the signed distance from p to the edge. The sign is
// positive on the left of the direction of travel.
func (e *Edge) distance(p Vec) distance {
	best := farAway
	try := func(t float64) {
		if t < 0 || t > 1 {
			return
		}
		diff := p.Sub(e.PointAt(t))
		tan := e.Tangent(t)
		d := distance{d: diff.Len(), t: t}
		if tan.Cross(diff) < 0 {
			d.d = -d.d
		}
		if t == 0 || t == 1 {
			d.dot = math.Abs(tan.Unit().Dot(diff.Unit()))
		}
		if d.closerThan(best) {
			best = d
		}
	}

	try(0)
	try(1)

	switch e.Kind {
	case EdgeLine:
		ab := e.P[1].Sub(e.P[0])
		if l2 := ab.Dot(ab); l2 > 0 {
			try(p.Sub(e.P[0]).Dot(ab) / l2)
		}
	case EdgeQuad:
		// Stationary points of |B(t)-p|^2 are the roots of a cubic.
		qa := e.P[0].Sub(p)
		ab := e.P[1].Sub(e.P[0])
		br := e.P[2].Sub(e.P[1]).Sub(ab)
		for _, t := range solveCubic(br.Dot(br), 3*ab.Dot(br), 2*ab.Dot(ab)+qa.Dot(br), qa.Dot(ab)) {
			try(t)
		}
	case EdgeCubic:
		const samples = 8
		for i := 0; i <= samples; i++ {
			try(e.refine(p, float64(i)/samples))
		}
	}
	return best
}

// pseudo converts d, the distance from p to the edge, into a pseudo-distance:
// past an endpoint it is the distance to the line extending the edge
// there, when that is nearer.
func (e *Edge) pseudo(p Vec, d distance) float64 {
	var q, dir Vec
	switch d.t {
	case 0:
		dir = e.Tangent(0).Unit()
		q = p.Sub(e.Start())
		if q.Dot(dir) >= 0 {
			return d.d
		}
	case 1:
		dir = e.Tangent(1).Unit()
		q = p.Sub(e.End())
		if q.Dot(dir) <= 0 {
			return d.d
		}
	default:
		return d.d
	}
	if pd := dir.Cross(q); math.Abs(pd) <= math.Abs(d.d) {
		return pd
	}
	return d.d
}

// refine runs Newton iterations towards the closest point on a cubic.
func (e *Edge) refine(p Vec, t float64) float64 {
	for i := 0; i < 6; i++ {
		diff := e.PointAt(t).Sub(p)
		d1 := e.Tangent(t)
		// Second derivative of the cubic.
		a := e.P[2].Sub(e.P[1].Mul(2)).Add(e.P[0])
		b := e.P[3].Sub(e.P[2].Mul(2)).Add(e.P[1])
		d2 := a.Lerp(b, t).Mul(6)

		den := d1.Dot(d1) + diff.Dot(d2)
		if math.Abs(den) < 1e-12 {
			break
		}
		step := diff.Dot(d1) / den
		t = math.Max(0, math.Min(1, t-step))
		if math.Abs(step) < 1e-9 {
			break
		}
	}
	return t
}

// flatten appends line-segment approximations of e to pts, excluding the
// start point.
func (e *Edge) flatten(pts []Vec) []Vec {
	n := 1
	switch e.Kind {
	case EdgeQuad:
		n = 8
	case EdgeCubic:
		n = 12
	}
	for i := 1; i <= n; i++ {
		pts = append(pts, e.PointAt(float64(i)/float64(n)))
	}
	return pts
}

// solveCubic returns the real roots of a*t^3 + b*t^2 + c*t + d.
func solveCubic(a, b, c, d float64) []float64 {
	if math.Abs(a) < 1e-12 {
		return solveQuadratic(b, c, d)
	}
	b, c, d = b/a, c/a, d/a
	p := c - b*b/3
	q := 2*b*b*b/27 - b*c/3 + d
	shift := -b / 3

	disc := q*q/4 + p*p*p/27
	switch {
	case disc > 1e-14:
		s := math.Sqrt(disc)
		return []float64{math.Cbrt(-q/2+s) + math.Cbrt(-q/2-s) + shift}
	case disc < -1e-14:
		r := math.Sqrt(-p / 3)
		phi := math.Acos(math.Max(-1, math.Min(1, -q/(2*r*r*r))))
		roots := make([]float64, 3)
		for k := range roots {
			roots[k] = 2*r*math.Cos((phi-2*math.Pi*float64(k))/3) + shift
		}
		return roots
	default:
		u := math.Cbrt(-q / 2)
		return []float64{2*u + shift, -u + shift}
	}
}

// solveQuadratic returns the real roots of a*t^2 + b*t + c.
func solveQuadratic(a, b, c float64) []float64 {
	if math.Abs(a) < 1e-12 {
		if math.Abs(b) < 1e-12 {
			return nil
		}
		return []float64{-c / b}
	}
	disc := b*b - 4*a*c
	if disc < 0 {
		return nil
	}
	s := math.Sqrt(disc)
	return []float64{(-b + s) / (2 * a), (-b - s) / (2 * a)}
}
