package glyph

import (
	"errors"
	"testing"
)

func TestCode_Rune(t *testing.T) {
	tests := []struct {
		code Code
		want rune
	}{
		{'A', 'A'},
		{0x00, 0},
		{0x7f, 0x7f},
		{0x80, '€'},
		{0xe9, 'é'},
		{0xff, 'ÿ'},
	}
	for _, tt := range tests {
		if got := tt.code.Rune(); got != tt.want {
			t.Errorf("Code(0x%02x).Rune() = %U, want %U", byte(tt.code), got, tt.want)
		}
	}
}

func TestCode_String(t *testing.T) {
	if got := Code('A').String(); got != `'A' (0x41)` {
		t.Errorf("unexpected String(): %s", got)
	}
	if got := Code('\n').String(); got != "0x0a" {
		t.Errorf("unexpected String() for control code: %s", got)
	}
}

func TestRange(t *testing.T) {
	if ASCII.Len() != 128 {
		t.Errorf("expected ASCII.Len() == 128, got %d", ASCII.Len())
	}
	if Printable.Len() != 95 {
		t.Errorf("expected Printable.Len() == 95, got %d", Printable.Len())
	}
	if Latin1.Len() != 256 || len(Latin1.Codes()) != 256 {
		t.Errorf("expected 256 codes in Latin1, got %d", len(Latin1.Codes()))
	}
	if !Printable.Contains('~') || Printable.Contains('\t') {
		t.Error("Printable.Contains gave wrong answers")
	}

	codes := Range{First: 'a', Last: 'c'}.Codes()
	if len(codes) != 3 || codes[0] != 'a' || codes[2] != 'c' {
		t.Errorf("unexpected codes: %v", codes)
	}

	bad := Range{First: 10, Last: 5}
	if !errors.Is(bad.Validate(), ErrInvalidRange) {
		t.Error("expected ErrInvalidRange for reversed range")
	}
	if bad.Len() != 0 || len(bad.Codes()) != 0 {
		t.Error("invalid range should be empty")
	}
	if err := ASCII.Validate(); err != nil {
		t.Errorf("ASCII should be valid: %v", err)
	}
}
