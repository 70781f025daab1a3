package msdf

import "errors"

var (
	// ErrAtlasFull is returned when a glyph does not fit in the atlas.
	ErrAtlasFull = errors.New("msdf: atlas full")

	// ErrNoImage is returned by Export before any glyph was added.
	ErrNoImage = errors.New("msdf: atlas has no glyphs")
)

// ConfigError reports an invalid configuration field.
type ConfigError struct {
	Field  string
	Reason string
}

func (e *ConfigError) Error() string {
	return "msdf: invalid config." + e.Field + ": " + e.Reason
}
