package raster

import (
	"errors"
	"fmt"

	"github.com/gogpu/glsandbox/glyph"
)

// ErrNoGlyph is returned when the face has no glyph for a code.
var ErrNoGlyph = errors.New("raster: no glyph")

// GlyphError reports a failure to rasterize one code.
type GlyphError struct {
	Code glyph.Code
	Err  error
}

func (e *GlyphError) Error() string {
	return fmt.Sprintf("raster: code %s: %v", e.Code, e.Err)
}

func (e *GlyphError) Unwrap() error { return e.Err }
