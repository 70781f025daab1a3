package msdf

import (
	"errors"
	"image"
	"math"
	"testing"

	"github.com/gogpu/glsandbox/typeface"
)

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name  string
		mod   func(*Config)
		field string
	}{
		{"default", func(*Config) {}, ""},
		{"zero range", func(c *Config) { c.Range = 0 }, "Range"},
		{"huge range", func(c *Config) { c.Range = 100 }, "Range"},
		{"zero angle", func(c *Config) { c.AngleThreshold = 0 }, "AngleThreshold"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := DefaultConfig()
			tt.mod(&c)
			err := c.Validate()
			if tt.field == "" {
				if err != nil {
					t.Errorf("expected valid config, got %v", err)
				}
				return
			}
			var ce *ConfigError
			if !errors.As(err, &ce) {
				t.Fatalf("expected *ConfigError, got %v", err)
			}
			if ce.Field != tt.field {
				t.Errorf("expected field %s, got %s", tt.field, ce.Field)
			}
		})
	}
}

func TestGenerate_Square(t *testing.T) {
	g := NewGenerator(Config{Range: 4, AngleThreshold: DefaultConfig().AngleThreshold})
	f, err := g.Generate(square(10))
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	if f.Width != 18 || f.Height != 18 {
		t.Errorf("expected 18x18 field, got %dx%d", f.Width, f.Height)
	}
	if f.Origin != image.Pt(-4, -4) {
		t.Errorf("expected origin (-4,-4), got %v", f.Origin)
	}
	if len(f.Pix) != 18*18*3 {
		t.Errorf("expected %d bytes, got %d", 18*18*3, len(f.Pix))
	}

	// Pixel (9, 9) samples (5.5, 5.5), deep inside.
	if m := f.Median(9, 9); m != 255 {
		t.Errorf("expected saturated inside at center, got %d", m)
	}
	// Pixel (0, 0) samples (-3.5, -3.5), beyond the corner. Channels carry
	// pseudo-distances of -3.5 there.
	if m := f.Median(0, 0); m > 32 {
		t.Errorf("expected far outside at corner, got %d", m)
	}
	// Pixel (4, 9) samples (0.5, 5.5), half a pixel inside the left edge.
	if m := f.Median(4, 9); m <= 128 || m > 160 {
		t.Errorf("expected value just above 128 near the edge, got %d", m)
	}
	// Pixel (3, 9) samples (-0.5, 5.5), half a pixel outside.
	if m := f.Median(3, 9); m >= 128 || m < 96 {
		t.Errorf("expected value just below 128 near the edge, got %d", m)
	}
}

// sample bilinearly interpolates the channels at outline point p and
// returns their median, as a shader sampling the atlas would.
func sample(f *Field, p Vec) float64 {
	fx := p.X - float64(f.Origin.X) - 0.5
	fy := p.Y - float64(f.Origin.Y) - 0.5
	x0, y0 := int(math.Floor(fx)), int(math.Floor(fy))
	tx, ty := fx-float64(x0), fy-float64(y0)

	var ch [3]float64
	for _, c := range []struct {
		x, y int
		w    float64
	}{
		{x0, y0, (1 - tx) * (1 - ty)},
		{x0 + 1, y0, tx * (1 - ty)},
		{x0, y0 + 1, (1 - tx) * ty},
		{x0 + 1, y0 + 1, tx * ty},
	} {
		r, g, b := f.RGB(c.x, c.y)
		ch[0] += c.w * float64(r)
		ch[1] += c.w * float64(g)
		ch[2] += c.w * float64(b)
	}
	return median(ch[0], ch[1], ch[2])
}

func TestGenerate_SharpCorners(t *testing.T) {
	g := NewGenerator(Config{Range: 4, AngleThreshold: DefaultConfig().AngleThreshold})
	f, err := g.Generate(square(10))
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	split := 0
	for y := 0; y < f.Height; y++ {
		for x := 0; x < f.Width; x++ {
			r, g, b := f.RGB(x, y)
			lo := min(r, g, b) < 128
			hi := max(r, g, b) >= 128
			if lo && hi {
				split++
			}
		}
	}
	if split == 0 {
		t.Error("expected pixels whose channels lie on both sides of the edge")
	}

	// Just inside each corner, the interpolated median must stay inside.
	for _, p := range []Vec{{9.9, 9.9}, {0.1, 0.1}, {9.9, 0.1}, {0.1, 9.9}} {
		if m := sample(f, p); m <= 127.5 {
			t.Errorf("median at %v = %.1f, expected inside", p, m)
		}
	}
	// Just outside, beyond the corner diagonally, it must stay outside.
	for _, p := range []Vec{{10.3, 10.3}, {-0.3, -0.3}} {
		if m := sample(f, p); m >= 127.5 {
			t.Errorf("median at %v = %.1f, expected outside", p, m)
		}
	}
}

func TestGenerate_ReversedContour(t *testing.T) {
	cfg := Config{Range: 4, AngleThreshold: DefaultConfig().AngleThreshold}
	ccw, err := NewGenerator(cfg).Generate(square(10))
	if err != nil {
		t.Fatal(err)
	}
	cw, err := NewGenerator(cfg).Generate(polygon(
		typeface.Point{X: 0, Y: 0},
		typeface.Point{X: 0, Y: 10},
		typeface.Point{X: 10, Y: 10},
		typeface.Point{X: 10, Y: 0},
	))
	if err != nil {
		t.Fatal(err)
	}
	for _, px := range []image.Point{{9, 9}, {4, 9}, {3, 9}, {0, 0}} {
		a, b := ccw.Median(px.X, px.Y), cw.Median(px.X, px.Y)
		if (a > 127) != (b > 127) {
			t.Errorf("pixel %v: winding changed inside/outside (%d vs %d)", px, a, b)
		}
	}
}

func TestGenerate_Empty(t *testing.T) {
	f, err := NewGenerator(DefaultConfig()).Generate(nil)
	if err != nil {
		t.Fatalf("Generate(nil): %v", err)
	}
	if !f.Empty() {
		t.Errorf("expected empty field, got %dx%d", f.Width, f.Height)
	}
}

func TestGenerate_InvalidConfig(t *testing.T) {
	_, err := NewGenerator(Config{}).Generate(square(10))
	var ce *ConfigError
	if !errors.As(err, &ce) {
		t.Errorf("expected *ConfigError, got %v", err)
	}
}

func TestGenerate_Glyph(t *testing.T) {
	o := goOutline(t, 'I', 48)
	f, err := NewGenerator(DefaultConfig()).Generate(o)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if f.Empty() {
		t.Fatal("expected a non-empty field for 'I'")
	}
	if m := f.Median(f.Width/2, f.Height/2); m <= 128 {
		t.Errorf("expected center of 'I' inside, got %d", m)
	}
	if m := f.Median(0, 0); m >= 128 {
		t.Errorf("expected corner outside, got %d", m)
	}
}

func TestField_Image(t *testing.T) {
	f, err := NewGenerator(DefaultConfig()).Generate(square(8))
	if err != nil {
		t.Fatal(err)
	}
	img := f.Image()
	if img.Bounds().Dx() != f.Width || img.Bounds().Dy() != f.Height {
		t.Errorf("image bounds %v do not match field %dx%d", img.Bounds(), f.Width, f.Height)
	}
	r, g, b := f.RGB(2, 3)
	c := img.NRGBAAt(2, 3)
	if c.R != r || c.G != g || c.B != b || c.A != 0xff {
		t.Errorf("pixel mismatch: field (%d,%d,%d), image %v", r, g, b, c)
	}
}
