package typeface

import "errors"

var (
	// ErrEmptyFontData is returned when parsing zero bytes.
	ErrEmptyFontData = errors.New("typeface: empty font data")

	// ErrGlyphNotInFont is returned when a rune maps to the .notdef glyph.
	ErrGlyphNotInFont = errors.New("typeface: glyph not in font")
)

// OptionsError reports an invalid Options field.
type OptionsError struct {
	Field  string
	Reason string
}

func (e *OptionsError) Error() string {
	return "typeface: invalid options." + e.Field + ": " + e.Reason
}
