package textrender

import (
	"fmt"
	"strings"
)

// Mode selects the glyph source used for drawing.
type Mode int

const (
	ModeBitmap Mode = iota
	ModeMSDF
)

func (m Mode) String() string {
	switch m {
	case ModeBitmap:
		return "bitmap"
	case ModeMSDF:
		return "msdf"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// Toggle returns the other mode.
func (m Mode) Toggle() Mode {
	if m == ModeBitmap {
		return ModeMSDF
	}
	return ModeBitmap
}

// ParseMode accepts "bitmap" or "msdf", case-insensitively.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(s) {
	case "bitmap":
		return ModeBitmap, nil
	case "msdf":
		return ModeMSDF, nil
	default:
		return 0, fmt.Errorf("textrender: unknown mode %q", s)
	}
}
