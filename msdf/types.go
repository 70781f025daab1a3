package msdf

import "math"

// Config holds MSDF generation parameters.
type Config struct {
	// Range is the distance, in pixels, covered by the field on each side of
	// an edge. It is also the padding added around every glyph.
	// Default: 4
	Range float64

	// AngleThreshold is the minimum direction change, in radians, that
	// counts as a corner.
	// Default: pi/3
	AngleThreshold float64
}

// DefaultConfig returns a configuration suited to 32-64px glyphs.
func DefaultConfig() Config {
	return Config{
		Range:          4,
		AngleThreshold: math.Pi / 3,
	}
}

// Validate checks the configuration.
func (c *Config) Validate() error {
	if c.Range <= 0 {
		return &ConfigError{Field: "Range", Reason: "must be positive"}
	}
	if c.Range > 64 {
		return &ConfigError{Field: "Range", Reason: "must be at most 64"}
	}
	if c.AngleThreshold <= 0 || c.AngleThreshold > math.Pi {
		return &ConfigError{Field: "AngleThreshold", Reason: "must be in (0, pi]"}
	}
	return nil
}

// Vec is a 2D vector.
type Vec struct {
	X, Y float64
}

func (v Vec) Add(w Vec) Vec             { return Vec{v.X + w.X, v.Y + w.Y} }
func (v Vec) Sub(w Vec) Vec             { return Vec{v.X - w.X, v.Y - w.Y} }
func (v Vec) Mul(s float64) Vec         { return Vec{v.X * s, v.Y * s} }
func (v Vec) Dot(w Vec) float64         { return v.X*w.X + v.Y*w.Y }
func (v Vec) Cross(w Vec) float64       { return v.X*w.Y - v.Y*w.X }
func (v Vec) Len() float64              { return math.Hypot(v.X, v.Y) }
func (v Vec) Lerp(w Vec, t float64) Vec { return v.Add(w.Sub(v).Mul(t)) }

// Unit returns v scaled to length 1, or the zero vector.
func (v Vec) Unit() Vec {
	l := v.Len()
	if l == 0 {
		return Vec{}
	}
	return Vec{v.X / l, v.Y / l}
}

// angleBetween returns the angle between a and b in [0, pi].
func angleBetween(a, b Vec) float64 {
	la, lb := a.Len(), b.Len()
	if la == 0 || lb == 0 {
		return 0
	}
	c := a.Dot(b) / (la * lb)
	return math.Acos(math.Max(-1, math.Min(1, c)))
}

// Box is an axis-aligned rectangle in outline space.
type Box struct {
	MinX, MinY, MaxX, MaxY float64
}

// emptyBox is the identity for Union.
var emptyBox = Box{MinX: math.Inf(1), MinY: math.Inf(1), MaxX: math.Inf(-1), MaxY: math.Inf(-1)}

// Empty reports whether b has no area.
func (b Box) Empty() bool { return b.MinX >= b.MaxX || b.MinY >= b.MaxY }

// Union returns the smallest box containing b and o.
func (b Box) Union(o Box) Box {
	return Box{
		MinX: min(b.MinX, o.MinX),
		MinY: min(b.MinY, o.MinY),
		MaxX: max(b.MaxX, o.MaxX),
		MaxY: max(b.MaxY, o.MaxY),
	}
}

// include grows b to contain p.
func (b Box) include(p Vec) Box {
	return Box{
		MinX: min(b.MinX, p.X),
		MinY: min(b.MinY, p.Y),
		MaxX: max(b.MaxX, p.X),
		MaxY: max(b.MaxY, p.Y),
	}
}

// distance is a signed edge distance, positive on the left of the edge.
// dot is the orthogonality used to break ties between edges sharing an
// endpoint, and t the edge parameter of the nearest point.
type distance struct {
	d   float64
	dot float64
	t   float64
}

var farAway = distance{d: math.MaxFloat64}

func (a distance) closerThan(b distance) bool {
	if da, db := math.Abs(a.d), math.Abs(b.d); da != db {
		return da < db
	}
	return a.dot < b.dot
}
