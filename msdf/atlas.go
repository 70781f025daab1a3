package msdf

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"log/slog"
	"maps"

	"golang.org/x/image/math/fixed"

	glsandbox "github.com/gogpu/glsandbox"
	"github.com/gogpu/glsandbox/glyph"
	"github.com/gogpu/glsandbox/typeface"
)

// AtlasConfig holds atlas configuration.
type AtlasConfig struct {
	// Size is the atlas width and height in pixels. Must be a power of 2.
	Size int

	// Padding is the gap between packed fields.
	Padding int

	// Glyph configures field generation.
	Glyph Config
}

// DefaultAtlasConfig returns a 1024x1024 atlas with 2 pixels of padding.
func DefaultAtlasConfig() AtlasConfig {
	return AtlasConfig{
		Size:    1024,
		Padding: 2,
		Glyph:   DefaultConfig(),
	}
}

// Validate checks the configuration.
func (c *AtlasConfig) Validate() error {
	if c.Size < 64 || c.Size > 8192 {
		return &ConfigError{Field: "Size", Reason: "must be in [64, 8192]"}
	}
	if c.Size&(c.Size-1) != 0 {
		return &ConfigError{Field: "Size", Reason: "must be power of 2"}
	}
	if c.Padding < 0 || c.Padding > 16 {
		return &ConfigError{Field: "Padding", Reason: "must be in [0, 16]"}
	}
	return c.Glyph.Validate()
}

// Placement describes where a glyph's field sits in the atlas.
type Placement struct {
	// Rect is the field's rectangle in atlas pixels. Empty for blank glyphs.
	Rect glyph.Rect

	// Bearing is the offset from the pen origin to the field's top-left
	// corner, y up.
	Bearing image.Point

	// Advance is the horizontal advance in 26.6 pixels.
	Advance fixed.Int26_6
}

// Atlas packs glyph fields into one square image.
type Atlas struct {
	config     AtlasConfig
	gen        *Generator
	alloc      *ShelfAllocator
	img        *image.NRGBA
	placements map[glyph.Code]Placement
	log        *slog.Logger
}

// NewAtlas creates an empty atlas.
func NewAtlas(config AtlasConfig) (*Atlas, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	img := image.NewNRGBA(image.Rect(0, 0, config.Size, config.Size))
	draw.Draw(img, img.Bounds(), image.NewUniform(color.NRGBA{A: 0xff}), image.Point{}, draw.Src)

	return &Atlas{
		config:     config,
		gen:        NewGenerator(config.Glyph),
		alloc:      NewShelfAllocator(config.Size, config.Size, config.Padding),
		img:        img,
		placements: make(map[glyph.Code]Placement),
		log:        glsandbox.ComponentLogger("msdf"),
	}, nil
}

// Generator returns the atlas field generator.
func (a *Atlas) Generator() *Generator { return a.gen }

// Add generates the field for an outline and packs it. Blank outlines get a
// placement with an empty rectangle.
func (a *Atlas) Add(code glyph.Code, o *typeface.Outline) (Placement, error) {
	f, err := a.gen.Generate(o)
	if err != nil {
		return Placement{}, err
	}
	var adv fixed.Int26_6
	if o != nil {
		adv = o.Advance
	}
	return a.AddField(code, f, adv)
}

// AddField packs a field generated elsewhere. Fields are packed in call
// order, so callers generating concurrently should add in a fixed order.
func (a *Atlas) AddField(code glyph.Code, f *Field, advance fixed.Int26_6) (Placement, error) {
	p := Placement{Advance: advance}
	if f.Empty() {
		a.placements[code] = p
		return p, nil
	}

	x, y, ok := a.alloc.Allocate(f.Width, f.Height)
	if !ok {
		return Placement{}, fmt.Errorf("%w: code %s needs %dx%d", ErrAtlasFull, code, f.Width, f.Height)
	}
	draw.Draw(a.img, image.Rect(x, y, x+f.Width, y+f.Height), f.Image(), image.Point{}, draw.Src)

	p.Rect = glyph.Rect{X0: x, Y0: y, X1: x + f.Width, Y1: y + f.Height}
	p.Bearing = image.Pt(f.Origin.X, -f.Origin.Y)
	a.placements[code] = p

	a.log.Debug("packed glyph", slog.String("code", code.String()),
		slog.Int("w", f.Width), slog.Int("h", f.Height))
	return p, nil
}

// Image returns the atlas image. It is shared, not copied.
func (a *Atlas) Image() *image.NRGBA { return a.img }

// Size returns the atlas edge length in pixels.
func (a *Atlas) Size() int { return a.config.Size }

// Len returns the number of placed glyphs, blank ones included.
func (a *Atlas) Len() int { return len(a.placements) }

// Placements returns a copy of all placements.
func (a *Atlas) Placements() map[glyph.Code]Placement {
	return maps.Clone(a.placements)
}

// Utilization returns the packed fraction of the atlas.
func (a *Atlas) Utilization() float64 { return a.alloc.Utilization() }
