package msdf

import (
	"errors"
	"image"
	"os"
	"testing"

	"github.com/gogpu/glsandbox/glyph"
)

func TestShelfAllocator(t *testing.T) {
	a := NewShelfAllocator(100, 100, 2)

	var rects []image.Rectangle
	for i := 0; i < 6; i++ {
		x, y, ok := a.Allocate(30, 20)
		if !ok {
			t.Fatalf("allocation %d failed", i)
		}
		r := image.Rect(x, y, x+30, y+20)
		for _, prev := range rects {
			if r.Overlaps(prev) {
				t.Errorf("rect %v overlaps %v", r, prev)
			}
		}
		if !r.In(image.Rect(0, 0, 100, 100)) {
			t.Errorf("rect %v outside allocator", r)
		}
		rects = append(rects, r)
	}
	if a.ShelfCount() != 2 {
		t.Errorf("expected 2 shelves, got %d", a.ShelfCount())
	}
	if u := a.Utilization(); u != 0.36 {
		t.Errorf("expected utilization 0.36, got %v", u)
	}

	if _, _, ok := a.Allocate(200, 10); ok {
		t.Error("expected oversized allocation to fail")
	}

	a.Reset()
	if a.ShelfCount() != 0 || a.Utilization() != 0 {
		t.Error("Reset should clear shelves")
	}
	if x, y, ok := a.Allocate(10, 10); !ok || x != 0 || y != 0 {
		t.Errorf("expected (0,0) after reset, got (%d,%d,%v)", x, y, ok)
	}
}

func TestShelfAllocator_Full(t *testing.T) {
	a := NewShelfAllocator(64, 64, 0)
	n := 0
	for {
		if _, _, ok := a.Allocate(16, 16); !ok {
			break
		}
		n++
	}
	if n != 16 {
		t.Errorf("expected 16 cells, got %d", n)
	}
}

func TestAtlasConfig_Validate(t *testing.T) {
	c := DefaultAtlasConfig()
	if err := c.Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
	c.Size = 1000
	var ce *ConfigError
	if err := c.Validate(); !errors.As(err, &ce) || ce.Field != "Size" {
		t.Errorf("expected Size error, got %v", err)
	}
	c = DefaultAtlasConfig()
	c.Glyph.Range = -1
	if err := c.Validate(); !errors.As(err, &ce) || ce.Field != "Range" {
		t.Errorf("expected Range error, got %v", err)
	}
}

func TestAtlas_Add(t *testing.T) {
	a, err := NewAtlas(AtlasConfig{Size: 128, Padding: 2, Glyph: Config{Range: 4, AngleThreshold: 1}})
	if err != nil {
		t.Fatalf("NewAtlas: %v", err)
	}

	p, err := a.Add('#', square(10))
	if err != nil {
		t.Fatalf("Add: %v", err)
	}
	if p.Rect.Dx() != 18 || p.Rect.Dy() != 18 {
		t.Errorf("expected 18x18 placement, got %+v", p.Rect)
	}
	if p.Bearing != image.Pt(-4, 4) {
		t.Errorf("expected bearing (-4,4), got %v", p.Bearing)
	}
	if p.Advance != 640 {
		t.Errorf("expected advance 640, got %d", p.Advance)
	}

	c := a.Image().NRGBAAt(p.Rect.X0+9, p.Rect.Y0+9)
	if c.R < 200 || c.G < 200 || c.B < 200 {
		t.Errorf("expected inside color at glyph center, got %v", c)
	}

	blank, err := a.Add(' ', nil)
	if err != nil {
		t.Fatalf("Add(blank): %v", err)
	}
	if !blank.Rect.Empty() {
		t.Errorf("expected empty rect for blank glyph, got %+v", blank.Rect)
	}

	if a.Len() != 2 {
		t.Errorf("expected 2 placements, got %d", a.Len())
	}
	pl := a.Placements()
	delete(pl, '#')
	if a.Len() != 2 {
		t.Error("Placements should return a copy")
	}
	if a.Utilization() <= 0 {
		t.Error("expected non-zero utilization")
	}
}

func TestAtlas_AddField(t *testing.T) {
	cfg := AtlasConfig{Size: 128, Padding: 2, Glyph: Config{Range: 4, AngleThreshold: 1}}
	a, err := NewAtlas(cfg)
	if err != nil {
		t.Fatalf("NewAtlas: %v", err)
	}
	b, err := NewAtlas(cfg)
	if err != nil {
		t.Fatalf("NewAtlas: %v", err)
	}

	o := square(10)
	want, err := a.Add('#', o)
	if err != nil {
		t.Fatalf("Add: %v", err)
	}
	f, err := b.Generator().Generate(o)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	got, err := b.AddField('#', f, o.Advance)
	if err != nil {
		t.Fatalf("AddField: %v", err)
	}
	if got != want {
		t.Errorf("AddField = %+v, Add = %+v", got, want)
	}

	blank, err := b.AddField(' ', &Field{}, 320)
	if err != nil || !blank.Rect.Empty() || blank.Advance != 320 {
		t.Errorf("AddField(blank) = %+v, %v", blank, err)
	}
}

func TestAtlas_Full(t *testing.T) {
	a, err := NewAtlas(AtlasConfig{Size: 64, Glyph: DefaultConfig()})
	if err != nil {
		t.Fatal(err)
	}
	_, err = a.Add('W', square(60))
	if !errors.Is(err, ErrAtlasFull) {
		t.Errorf("expected ErrAtlasFull, got %v", err)
	}
}

func TestAtlas_ExportAndLoad(t *testing.T) {
	a, err := NewAtlas(AtlasConfig{Size: 64, Padding: 1, Glyph: DefaultConfig()})
	if err != nil {
		t.Fatal(err)
	}
	if _, err := a.Export(t.TempDir(), "empty"); !errors.Is(err, ErrNoImage) {
		t.Errorf("expected ErrNoImage, got %v", err)
	}

	p, err := a.Add(glyph.Code('A'), square(12))
	if err != nil {
		t.Fatal(err)
	}

	dir := t.TempDir() + "/res/Exports"
	path, err := a.Export(dir, "GoRegular")
	if err != nil {
		t.Fatalf("Export: %v", err)
	}
	if path != dir+"/GoRegular.png" {
		t.Errorf("unexpected path %s", path)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("exported file missing: %v", err)
	}

	img, err := LoadPNG(path)
	if err != nil {
		t.Fatalf("LoadPNG: %v", err)
	}
	if img.Bounds() != a.Image().Bounds() {
		t.Errorf("bounds mismatch: %v vs %v", img.Bounds(), a.Image().Bounds())
	}
	x, y := p.Rect.X0+p.Rect.Dx()/2, p.Rect.Y0+p.Rect.Dy()/2
	if got, want := img.NRGBAAt(x, y), a.Image().NRGBAAt(x, y); got != want {
		t.Errorf("pixel mismatch after reload: %v vs %v", got, want)
	}
}

func TestLoadPNG_Missing(t *testing.T) {
	if _, err := LoadPNG("does/not/exist.png"); err == nil {
		t.Error("expected error for missing file")
	}
}
