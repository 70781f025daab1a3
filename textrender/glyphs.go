package textrender

import (
	"errors"
	"fmt"
	"image"
	"log/slog"

	"golang.org/x/image/math/fixed"

	glsandbox "github.com/gogpu/glsandbox"
	"github.com/gogpu/glsandbox/gfx"
	"github.com/gogpu/glsandbox/glyph"
	"github.com/gogpu/glsandbox/internal/parallel"
	"github.com/gogpu/glsandbox/msdf"
	"github.com/gogpu/glsandbox/raster"
	"github.com/gogpu/glsandbox/typeface"
)

// Glyphs is a glyph library together with the textures backing it.
type Glyphs struct {
	*glyph.Library

	Mode Mode

	// PxRange is the distance field range in atlas pixels. Zero for bitmaps.
	PxRange float64

	sizes map[glyph.TextureID]image.Point
}

func newGlyphs(mode Mode) *Glyphs {
	return &Glyphs{
		Library: glyph.NewLibrary(),
		Mode:    mode,
		sizes:   make(map[glyph.TextureID]image.Point),
	}
}

// TextureSize returns the pixel size of a texture used by the library.
func (g *Glyphs) TextureSize(id glyph.TextureID) (image.Point, bool) {
	p, ok := g.sizes[id]
	return p, ok
}

// Release deletes the library's textures from dev.
func (g *Glyphs) Release(dev gfx.Device) {
	for id := range g.sizes {
		dev.DeleteTexture(id)
	}
	clear(g.sizes)
}

// LoadBitmap rasterizes every code in rng and uploads one red texture per
// non-blank glyph. Codes the font lacks are skipped with a warning; any
// other failure aborts.
func LoadBitmap(dev gfx.Device, r raster.Rasterizer, rng glyph.Range) (*Glyphs, error) {
	if err := rng.Validate(); err != nil {
		return nil, err
	}
	log := glsandbox.ComponentLogger("textrender")
	g := newGlyphs(ModeBitmap)

	skipped := 0
	for _, code := range rng.Codes() {
		bm, err := r.Rasterize(code)
		if errors.Is(err, raster.ErrNoGlyph) {
			log.Warn("glyph missing, skipped", slog.String("code", code.String()))
			skipped++
			continue
		}
		if err != nil {
			g.Release(dev)
			return nil, err
		}

		rec := glyph.Record{
			Size:    bm.Size,
			Bearing: bm.Bearing,
			Advance: bm.Advance,
		}
		if !bm.Blank() {
			id, err := dev.UploadTexture(bm.Image, gfx.FormatRed)
			if err != nil {
				g.Release(dev)
				return nil, fmt.Errorf("textrender: upload %s: %w", code, err)
			}
			g.sizes[id] = bm.Size
			rec.Texture = id
			rec.Atlas = glyph.Rect{X1: bm.Size.X, Y1: bm.Size.Y}
		}
		g.Add(code, rec)
	}

	log.Info("bitmap glyphs loaded",
		slog.Int("count", g.Count()), slog.Int("skipped", skipped), slog.Int("textures", len(g.sizes)))
	return g, nil
}

// BuildAtlas generates and packs the MSDF of every code in rng. Codes the
// font lacks are skipped with a warning. Fields are generated on a worker
// pool and packed in code order, so the layout does not depend on
// scheduling.
func BuildAtlas(f *typeface.Font, opts typeface.Options, cfg msdf.AtlasConfig, rng glyph.Range) (*msdf.Atlas, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	if err := rng.Validate(); err != nil {
		return nil, err
	}
	atlas, err := msdf.NewAtlas(cfg)
	if err != nil {
		return nil, err
	}

	type result struct {
		field   *msdf.Field
		advance fixed.Int26_6
		err     error
	}
	codes := rng.Codes()
	results := make([]result, len(codes))
	jobs := make([]func(), len(codes))
	gen := atlas.Generator()
	ppem := opts.PPEM()
	for i, code := range codes {
		jobs[i] = func() {
			o, err := f.Outline(code.Rune(), ppem)
			if err != nil {
				results[i].err = err
				return
			}
			results[i].advance = o.Advance
			results[i].field, results[i].err = gen.Generate(o)
		}
	}

	pool := parallel.NewWorkerPool(0)
	pool.ExecuteAll(jobs)
	pool.Close()

	log := glsandbox.ComponentLogger("textrender")
	for i, code := range codes {
		r := results[i]
		if errors.Is(r.err, typeface.ErrGlyphNotInFont) {
			log.Warn("glyph missing, skipped", slog.String("code", code.String()))
			continue
		}
		if r.err != nil {
			return nil, r.err
		}
		if _, err := atlas.AddField(code, r.field, r.advance); err != nil {
			return nil, err
		}
	}
	log.Info("msdf atlas built", slog.Int("glyphs", atlas.Len()),
		slog.Float64("utilization", atlas.Utilization()))
	return atlas, nil
}

// LoadMSDF builds the atlas, exports it to <exportDir>/<font stem>.png,
// reloads that file and uploads it. Every record shares the atlas texture.
func LoadMSDF(dev gfx.Device, f *typeface.Font, opts typeface.Options, cfg msdf.AtlasConfig, rng glyph.Range, exportDir string) (*Glyphs, error) {
	atlas, err := BuildAtlas(f, opts, cfg, rng)
	if err != nil {
		return nil, err
	}

	stem := f.Stem()
	if stem == "" {
		stem = "font"
	}
	path, err := atlas.Export(exportDir, stem)
	if err != nil {
		return nil, err
	}
	img, err := msdf.LoadPNG(path)
	if err != nil {
		return nil, err
	}
	id, err := dev.UploadTexture(img, gfx.FormatRGBA)
	if err != nil {
		return nil, fmt.Errorf("textrender: upload atlas: %w", err)
	}

	g := newGlyphs(ModeMSDF)
	g.PxRange = cfg.Glyph.Range
	g.sizes[id] = img.Bounds().Size()
	for code, p := range atlas.Placements() {
		g.Add(code, glyph.Record{
			Atlas:   p.Rect,
			Size:    image.Pt(p.Rect.Dx(), p.Rect.Dy()),
			Bearing: p.Bearing,
			Advance: p.Advance,
			Texture: id,
		})
	}
	return g, nil
}
