package glyph

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is matched by the error returned from Get for a code that
	// was never added.
	ErrNotFound = errors.New("glyph: not found")

	// ErrInvalidRange is returned by Range.Validate when First > Last.
	ErrInvalidRange = errors.New("glyph: invalid range")
)

// NotFoundError reports a lookup of a code that is not in the library.
type NotFoundError struct {
	Code Code
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("glyph: code %s not found", e.Code)
}

// Is reports whether target is ErrNotFound.
func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}
