package textrender

import (
	"testing"

	"golang.org/x/image/math/fixed"
)

func TestShaper_Advances(t *testing.T) {
	f := goFont(t)
	s, err := NewShaper(f, 48)
	if err != nil {
		t.Fatalf("NewShaper: %v", err)
	}

	if adv := s.Advances(""); adv != nil {
		t.Errorf("expected nil for empty text, got %v", adv)
	}

	adv := s.Advances("Hello world")
	if len(adv) != len("Hello world") {
		t.Fatalf("expected one advance per byte, got %d", len(adv))
	}

	o, err := f.Outline('H', 48)
	if err != nil {
		t.Fatal(err)
	}
	if d := adv[0] - o.Advance; d < -fixed.I(1) || d > fixed.I(1) {
		t.Errorf("shaped 'H' advance %v differs from outline advance %v", adv[0], o.Advance)
	}
	for i, a := range adv {
		if a <= 0 {
			t.Errorf("byte %d: expected positive advance, got %v", i, a)
		}
	}
}

func TestShaper_AdvancesCached(t *testing.T) {
	s, err := NewShaper(goFont(t), 24)
	if err != nil {
		t.Fatalf("NewShaper: %v", err)
	}

	first := s.Advances("cached")
	first[0] = 0
	second := s.Advances("cached")
	if second[0] == 0 {
		t.Error("Advances should return a copy of the cached result")
	}

	hits, misses := s.shaped.Stats()
	if hits != 1 || misses != 1 {
		t.Errorf("expected 1 hit and 1 miss, got %d and %d", hits, misses)
	}
}
