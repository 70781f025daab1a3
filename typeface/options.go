package typeface

import (
	"fmt"
	"strings"

	"golang.org/x/image/font"
)

// Backend selects the library used to build faces.
type Backend int

const (
	// BackendOpenType builds faces with golang.org/x/image/font/opentype.
	BackendOpenType Backend = iota

	// BackendFreeType builds faces with github.com/golang/freetype/truetype.
	BackendFreeType
)

// String returns the backend name as accepted by ParseBackend.
func (b Backend) String() string {
	switch b {
	case BackendOpenType:
		return "opentype"
	case BackendFreeType:
		return "freetype"
	default:
		return "unknown"
	}
}

// ParseBackend parses a backend name, case-insensitively.
func ParseBackend(s string) (Backend, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "opentype":
		return BackendOpenType, nil
	case "freetype", "truetype":
		return BackendFreeType, nil
	default:
		return 0, fmt.Errorf("typeface: unknown backend %q", s)
	}
}

// Options configures a face.
type Options struct {
	// Size is the font size in points. Default: 48
	Size float64

	// DPI is the output resolution. At 72 DPI one point is one pixel.
	// Default: 72
	DPI float64

	// Hinting is the hinting mode. Default: font.HintingFull
	Hinting font.Hinting

	// Backend selects the face implementation. Default: BackendOpenType
	Backend Backend
}

// DefaultOptions returns options for a 48px face.
func DefaultOptions() Options {
	return Options{
		Size:    48,
		DPI:     72,
		Hinting: font.HintingFull,
		Backend: BackendOpenType,
	}
}

// PPEM returns the size in pixels per em.
func (o Options) PPEM() float64 {
	return o.Size * o.DPI / 72
}

// Validate checks the options.
func (o *Options) Validate() error {
	if o.Size <= 0 {
		return &OptionsError{Field: "Size", Reason: "must be positive"}
	}
	if o.Size > 1024 {
		return &OptionsError{Field: "Size", Reason: "must be at most 1024"}
	}
	if o.DPI <= 0 {
		return &OptionsError{Field: "DPI", Reason: "must be positive"}
	}
	if o.Backend != BackendOpenType && o.Backend != BackendFreeType {
		return &OptionsError{Field: "Backend", Reason: "unknown backend"}
	}
	return nil
}
