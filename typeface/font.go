package typeface

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"

	"github.com/gogpu/glsandbox"
)

// Font is a parsed font file.
//
// Font methods are safe for concurrent use. Faces returned by NewFace are
// not.
type Font struct {
	data []byte
	stem string
	sf   *opentype.Font

	// mu guards buf, the scratch buffer for sfnt calls.
	mu  sync.Mutex
	buf sfnt.Buffer

	ttOnce sync.Once
	tt     *truetype.Font
	ttErr  error
}

// Parse parses TrueType or OpenType font data. The stem is left empty.
// The data must not be modified while the font is in use.
func Parse(data []byte) (*Font, error) {
	if len(data) == 0 {
		return nil, ErrEmptyFontData
	}
	sf, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("typeface: failed to parse font: %w", err)
	}
	return &Font{data: data, sf: sf}, nil
}

// Open reads and parses the font file at path. The file name without its
// extension becomes the font stem.
func Open(path string) (*Font, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("typeface: %w", err)
	}
	f, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%w (%s)", err, path)
	}
	f.stem = Stem(path)

	glsandbox.ComponentLogger("typeface").Info("font loaded",
		"path", path, "name", f.Name(), "glyphs", f.NumGlyphs())
	return f, nil
}

// Stem returns the base name of path without its extension.
func Stem(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// WithStem returns f with its stem replaced. Used for fonts parsed from
// memory that still need an export name.
func (f *Font) WithStem(stem string) *Font {
	f.stem = stem
	return f
}

// Stem returns the file stem the font was opened from.
func (f *Font) Stem() string { return f.stem }

// Data returns the raw font bytes.
func (f *Font) Data() []byte { return f.data }

// Name returns the font family name, or "" if the font has none.
func (f *Font) Name() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	name, err := f.sf.Name(&f.buf, sfnt.NameIDFamily)
	if err != nil {
		return ""
	}
	return name
}

// NumGlyphs returns the number of glyphs in the font.
func (f *Font) NumGlyphs() int {
	return f.sf.NumGlyphs()
}

// HasGlyph reports whether r maps to a real glyph rather than .notdef.
func (f *Font) HasGlyph(r rune) bool {
	_, err := f.glyphIndex(r)
	return err == nil
}

func (f *Font) glyphIndex(r rune) (sfnt.GlyphIndex, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	gid, err := f.sf.GlyphIndex(&f.buf, r)
	if err != nil {
		return 0, fmt.Errorf("typeface: glyph index for %q: %w", r, err)
	}
	if gid == 0 {
		return 0, ErrGlyphNotInFont
	}
	return gid, nil
}

// NewFace creates a sized face using the backend in opts.
func (f *Font) NewFace(opts Options) (font.Face, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	switch opts.Backend {
	case BackendFreeType:
		tt, err := f.truetype()
		if err != nil {
			return nil, err
		}
		return truetype.NewFace(tt, &truetype.Options{
			Size:    opts.Size,
			DPI:     opts.DPI,
			Hinting: opts.Hinting,
		}), nil
	default:
		face, err := opentype.NewFace(f.sf, &opentype.FaceOptions{
			Size:    opts.Size,
			DPI:     opts.DPI,
			Hinting: opts.Hinting,
		})
		if err != nil {
			return nil, fmt.Errorf("typeface: failed to create face: %w", err)
		}
		return face, nil
	}
}

// truetype parses the font a second time for the FreeType backend.
func (f *Font) truetype() (*truetype.Font, error) {
	f.ttOnce.Do(func() {
		f.tt, f.ttErr = truetype.Parse(f.data)
		if f.ttErr != nil {
			f.ttErr = fmt.Errorf("typeface: freetype backend: %w", f.ttErr)
		}
	})
	return f.tt, f.ttErr
}

// Metrics returns the font metrics at the given pixels per em.
func (f *Font) Metrics(ppem float64) (font.Metrics, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	m, err := f.sf.Metrics(&f.buf, fixed.Int26_6(ppem*64), font.HintingNone)
	if err != nil {
		return font.Metrics{}, fmt.Errorf("typeface: metrics: %w", err)
	}
	return m, nil
}
