package textrender

import (
	"bytes"
	"fmt"
	"slices"

	"github.com/go-text/typesetting/di"
	"github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/language"
	"github.com/go-text/typesetting/shaping"
	"golang.org/x/image/math/fixed"

	"github.com/gogpu/glsandbox/glyph"
	"github.com/gogpu/glsandbox/internal/cache"
	"github.com/gogpu/glsandbox/typeface"
)

// shapedCacheSize bounds the number of distinct strings kept shaped.
const shapedCacheSize = 64

// Shaper computes kerning-aware advances with HarfBuzz shaping. Results are
// cached per string, since the same text is usually drawn every frame. It
// is not safe for concurrent use.
type Shaper struct {
	face   *font.Face
	size   fixed.Int26_6
	shaper shaping.HarfbuzzShaper
	shaped *cache.Cache[string, []fixed.Int26_6]
}

// NewShaper parses the font for shaping at size pixels per em.
func NewShaper(f *typeface.Font, size float64) (*Shaper, error) {
	face, err := font.ParseTTF(bytes.NewReader(f.Data()))
	if err != nil {
		return nil, fmt.Errorf("textrender: parse font for shaping: %w", err)
	}
	return &Shaper{
		face:   face,
		size:   fixed.Int26_6(size * 64),
		shaped: cache.New[string, []fixed.Int26_6](shapedCacheSize),
	}, nil
}

// Advances returns one advance per byte of text. A byte merged into a
// ligature gets a zero advance; the ligature's advance goes to the first
// byte of its cluster.
func (s *Shaper) Advances(text string) []fixed.Int26_6 {
	if text == "" {
		return nil
	}
	adv := s.shaped.GetOrCreate(text, func() []fixed.Int26_6 { return s.shape(text) })
	return slices.Clone(adv)
}

func (s *Shaper) shape(text string) []fixed.Int26_6 {
	runes := make([]rune, len(text))
	for i := 0; i < len(text); i++ {
		runes[i] = glyph.Code(text[i]).Rune()
	}

	out := s.shaper.Shape(shaping.Input{
		Text:      runes,
		RunStart:  0,
		RunEnd:    len(runes),
		Direction: di.DirectionLTR,
		Face:      s.face,
		Size:      s.size,
		Script:    script(runes),
		Language:  language.NewLanguage("en"),
	})

	adv := make([]fixed.Int26_6, len(runes))
	for _, g := range out.Glyphs {
		if i := g.TextIndex(); i >= 0 && i < len(adv) {
			adv[i] += g.Advance
		}
	}
	return adv
}

// script returns the script of the first non-space rune.
func script(runes []rune) language.Script {
	for _, r := range runes {
		if r == ' ' || r == '\t' || r == '\n' || r == '\r' {
			continue
		}
		return language.LookupScript(r)
	}
	return language.Latin
}
