package msdf

import (
	"image"
	"image/color"
	"math"

	"github.com/gogpu/glsandbox/typeface"
)

// Field is a generated MSDF in RGB, one byte per channel, row-major.
type Field struct {
	Pix    []byte
	Width  int
	Height int

	// Origin is the outline-space position of the top-left pixel corner.
	// The glyph bearing is (Origin.X, -Origin.Y).
	Origin image.Point
}

// Empty reports whether the field has no pixels, as for a space.
func (f *Field) Empty() bool {
	return f == nil || f.Width == 0 || f.Height == 0
}

// RGB returns the channel values at (x, y).
func (f *Field) RGB(x, y int) (r, g, b byte) {
	i := (y*f.Width + x) * 3
	return f.Pix[i], f.Pix[i+1], f.Pix[i+2]
}

// Median returns the median channel value at (x, y). Values above 127 are
// inside the glyph.
func (f *Field) Median(x, y int) byte {
	r, g, b := f.RGB(x, y)
	return max(min(r, g), min(max(r, g), b))
}

// Image converts the field to an opaque NRGBA image.
func (f *Field) Image() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, f.Width, f.Height))
	for y := 0; y < f.Height; y++ {
		for x := 0; x < f.Width; x++ {
			r, g, b := f.RGB(x, y)
			img.SetNRGBA(x, y, color.NRGBA{R: r, G: g, B: b, A: 0xff})
		}
	}
	return img
}

// Generator turns outlines into fields. Generate keeps no state between
// calls, so one Generator may serve several goroutines.
type Generator struct {
	config Config
}

// NewGenerator creates a generator. The config is validated on Generate.
func NewGenerator(config Config) *Generator {
	return &Generator{config: config}
}

// Config returns the generator configuration.
func (g *Generator) Config() Config { return g.config }

// Generate builds the field for an outline. An empty outline yields an
// empty field and no error.
func (g *Generator) Generate(o *typeface.Outline) (*Field, error) {
	if err := g.config.Validate(); err != nil {
		return nil, err
	}

	shape := ShapeFromOutline(o)
	if shape.EdgeCount() == 0 {
		return &Field{}, nil
	}
	ColorEdges(shape, g.config.AngleThreshold)

	pad := g.config.Range
	b := shape.Bounds()
	x0, y0 := int(math.Floor(b.MinX-pad)), int(math.Floor(b.MinY-pad))
	x1, y1 := int(math.Ceil(b.MaxX+pad)), int(math.Ceil(b.MaxY+pad))

	f := &Field{
		Width:  x1 - x0,
		Height: y1 - y0,
		Origin: image.Pt(x0, y0),
	}
	f.Pix = make([]byte, f.Width*f.Height*3)

	g.fill(f, shape)
	return f, nil
}

var channels = [3]EdgeColor{ColorRed, ColorGreen, ColorBlue}

// fill writes every pixel of f. Each channel takes the pseudo-distance to
// the nearest edge carrying that channel, so channels disagree near corners
// and their median keeps the corner sharp.
func (g *Generator) fill(f *Field, s *Shape) {
	rng := g.config.Range
	type nearestEdge struct {
		d    distance
		edge *Edge
	}
	for y := 0; y < f.Height; y++ {
		for x := 0; x < f.Width; x++ {
			p := Vec{float64(f.Origin.X+x) + 0.5, float64(f.Origin.Y+y) + 0.5}

			var best [3]nearestEdge
			for ch := range best {
				best[ch].d = farAway
			}
			nearest := nearestEdge{d: farAway}
			for ci := range s.Contours {
				edges := s.Contours[ci].Edges
				for ei := range edges {
					e := &edges[ei]
					d := e.distance(p)
					if d.closerThan(nearest.d) {
						nearest = nearestEdge{d, e}
					}
					for ch, mask := range channels {
						if e.Color.Has(mask) && d.closerThan(best[ch].d) {
							best[ch] = nearestEdge{d, e}
						}
					}
				}
			}

			var sd [3]float64
			for ch, b := range best {
				if b.edge == nil {
					b = nearest
				}
				sd[ch] = s.orient * b.edge.pseudo(p, b.d)
			}

			// A median on the wrong side of the fill means the channels
			// describe a phantom edge here; flip them.
			if (median(sd[0], sd[1], sd[2]) > 0) != s.Inside(p) {
				for ch := range sd {
					sd[ch] = -sd[ch]
				}
			}

			i := (y*f.Width + x) * 3
			for ch, d := range sd {
				f.Pix[i+ch] = encode(d, rng)
			}
		}
	}
}

func median(a, b, c float64) float64 {
	return max(min(a, b), min(max(a, b), c))
}

// encode maps a signed pixel distance to a byte, 128 on the edge.
func encode(d, rng float64) byte {
	v := 0.5 + d/(2*rng)
	return byte(math.Round(math.Max(0, math.Min(1, v)) * 255))
}
