package glyph

import (
	"slices"

	"github.com/gogpu/glsandbox"
)

// Library maps character codes to glyph records.
//
// A Library is populated before the render loop starts and only read
// afterwards; it performs no locking and must not be mutated concurrently.
type Library struct {
	records map[Code]Record
}

// NewLibrary creates an empty library.
func NewLibrary() *Library {
	return &Library{
		records: make(map[Code]Record),
	}
}

// Add inserts or replaces the record for code. It reports whether an
// existing record was replaced; a replacement is logged as a warning.
func (l *Library) Add(code Code, rec Record) (replaced bool) {
	if _, replaced = l.records[code]; replaced {
		glsandbox.ComponentLogger("glyph").Warn("glyph record overwritten",
			"code", code.String())
	}
	l.records[code] = rec
	return replaced
}

// Get returns the record last added for code. A code that was never added
// yields a *NotFoundError, which matches ErrNotFound.
func (l *Library) Get(code Code) (Record, error) {
	rec, ok := l.records[code]
	if !ok {
		return Record{}, &NotFoundError{Code: code}
	}
	return rec, nil
}

// MustGet is like Get but panics if code is missing. Use it only for codes
// whose presence was checked while loading.
func (l *Library) MustGet(code Code) Record {
	rec, err := l.Get(code)
	if err != nil {
		panic(err)
	}
	return rec
}

// Exists reports whether a record for code is present.
func (l *Library) Exists(code Code) bool {
	_, ok := l.records[code]
	return ok
}

// Count returns the number of distinct codes stored.
func (l *Library) Count() int {
	return len(l.records)
}

// Codes returns the stored codes in ascending order.
func (l *Library) Codes() []Code {
	codes := make([]Code, 0, len(l.records))
	for c := range l.records {
		codes = append(codes, c)
	}
	slices.Sort(codes)
	return codes
}

// Each calls fn for every record in ascending code order. It stops at and
// returns the first non-nil error from fn.
func (l *Library) Each(fn func(Code, Record) error) error {
	for _, c := range l.Codes() {
		if err := fn(c, l.records[c]); err != nil {
			return err
		}
	}
	return nil
}

// Textures returns the distinct non-zero texture handles referenced by the
// library, in ascending order. Owners use it to release textures at teardown.
func (l *Library) Textures() []TextureID {
	seen := make(map[TextureID]struct{})
	var ids []TextureID
	for _, rec := range l.records {
		if rec.Texture == 0 {
			continue
		}
		if _, ok := seen[rec.Texture]; ok {
			continue
		}
		seen[rec.Texture] = struct{}{}
		ids = append(ids, rec.Texture)
	}
	slices.Sort(ids)
	return ids
}
