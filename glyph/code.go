package glyph

import (
	"fmt"

	"golang.org/x/text/encoding/charmap"
)

// Code is a single-byte character code. Codes above 127 are interpreted
// with the Windows-1252 code page.
type Code byte

// Rune returns the Unicode code point for c.
func (c Code) Rune() rune {
	if c < 0x80 {
		return rune(c)
	}
	return charmap.Windows1252.DecodeByte(byte(c))
}

// String returns a readable form such as 'A' (0x41) or 0x0a.
func (c Code) String() string {
	r := c.Rune()
	if r < 0x20 || r == 0x7f || r == 0xfffd {
		return fmt.Sprintf("0x%02x", byte(c))
	}
	return fmt.Sprintf("%q (0x%02x)", r, byte(c))
}

// Range is an inclusive span of character codes.
type Range struct {
	First, Last Code
}

var (
	// ASCII covers codes 0 through 127.
	ASCII = Range{First: 0, Last: 127}

	// Printable covers the printable ASCII characters, space through tilde.
	Printable = Range{First: 32, Last: 126}

	// Latin1 covers every single-byte code.
	Latin1 = Range{First: 0, Last: 255}
)

// Validate returns ErrInvalidRange if First is greater than Last.
func (r Range) Validate() error {
	if r.First > r.Last {
		return fmt.Errorf("%w: first %d > last %d", ErrInvalidRange, r.First, r.Last)
	}
	return nil
}

// Len returns the number of codes in the range, or 0 for an invalid range.
func (r Range) Len() int {
	if r.First > r.Last {
		return 0
	}
	return int(r.Last) - int(r.First) + 1
}

// Contains reports whether c lies inside the range.
func (r Range) Contains(c Code) bool {
	return c >= r.First && c <= r.Last
}

// Codes returns every code in the range in ascending order.
func (r Range) Codes() []Code {
	codes := make([]Code, 0, r.Len())
	for i := int(r.First); i <= int(r.Last) && r.First <= r.Last; i++ {
		codes = append(codes, Code(i))
	}
	return codes
}
