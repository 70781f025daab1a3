package app

import (
	"math"

	"golang.org/x/image/font/gofont/goregular"

	"github.com/gogpu/glsandbox/glyph"
	"github.com/gogpu/glsandbox/internal/config"
	"github.com/gogpu/glsandbox/msdf"
	"github.com/gogpu/glsandbox/textrender"
	"github.com/gogpu/glsandbox/typeface"
)

// builtinStem names the export file for the built-in font.
const builtinStem = "GoRegular"

// LoadFont opens the configured font, or Go Regular when no path is set,
// and returns it with its rasterization options.
func LoadFont(cfg config.Font) (*typeface.Font, typeface.Options, error) {
	backend, err := typeface.ParseBackend(cfg.Backend)
	if err != nil {
		return nil, typeface.Options{}, err
	}
	opts := typeface.DefaultOptions()
	opts.Size = cfg.Size
	opts.DPI = cfg.DPI
	opts.Backend = backend
	if err := opts.Validate(); err != nil {
		return nil, opts, err
	}

	var f *typeface.Font
	if cfg.Path == "" {
		f, err = typeface.Parse(goregular.TTF)
		if err == nil {
			f = f.WithStem(builtinStem)
		}
	} else {
		f, err = typeface.Open(cfg.Path)
	}
	if err != nil {
		return nil, opts, err
	}
	return f, opts, nil
}

// atlasConfig converts the msdf section to an atlas configuration.
func atlasConfig(cfg config.MSDF) msdf.AtlasConfig {
	return msdf.AtlasConfig{
		Size:    cfg.AtlasSize,
		Padding: cfg.Padding,
		Glyph: msdf.Config{
			Range:          cfg.Range,
			AngleThreshold: cfg.AngleThreshold * math.Pi / 180,
		},
	}
}

func codeRange(cfg config.Text) glyph.Range {
	return glyph.Range{First: glyph.Code(cfg.First), Last: glyph.Code(cfg.Last)}
}

// Export builds the MSDF atlas for cfg and writes it to the export
// directory without opening a window. It returns the written path.
func Export(cfg config.Config) (string, error) {
	f, opts, err := LoadFont(cfg.Font)
	if err != nil {
		return "", err
	}
	atlas, err := textrender.BuildAtlas(f, opts, atlasConfig(cfg.MSDF), codeRange(cfg.Text))
	if err != nil {
		return "", err
	}
	return atlas.Export(cfg.MSDF.ExportDir, f.Stem())
}
