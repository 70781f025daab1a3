package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
	if cfg.Window.Width != 800 || cfg.Window.Height != 600 || cfg.Window.Title != "LearnOpenGL" {
		t.Errorf("unexpected window defaults %+v", cfg.Window)
	}
	if cfg.Window.VSync {
		t.Error("vsync should default to off")
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sandbox.toml")
	data := `
[window]
width = 1280
vsync = true

[font]
path = "res/Fonts/Inter.ttf"
backend = "freetype"

[text]
mode = "msdf"
color = [1.0, 0.5, 0.25]
`
	if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
		t.Fatal(err)
	}

	got, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	want := Default()
	want.Window.Width = 1280
	want.Window.VSync = true
	want.Font.Path = "res/Fonts/Inter.ttf"
	want.Font.Backend = "freetype"
	want.Text.Mode = "msdf"
	want.Text.Color = [3]float32{1, 0.5, 0.25}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Load mismatch (-want +got):\n%s", diff)
	}
}

func TestLoad_Missing(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.toml")); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("expected not-exist error, got %v", err)
	}
}

func TestDecode_UnknownKey(t *testing.T) {
	cfg := Default()
	err := Decode([]byte("[window]\nwidht = 10\n"), &cfg)
	var ce *Error
	if !errors.As(err, &ce) {
		t.Errorf("expected *Error for unknown key, got %v", err)
	}
}

func TestDecode_Syntax(t *testing.T) {
	cfg := Default()
	if err := Decode([]byte("[window\n"), &cfg); err == nil {
		t.Error("expected syntax error")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name  string
		mod   func(*Config)
		field string
	}{
		{"width", func(c *Config) { c.Window.Width = 0 }, "window size"},
		{"font size", func(c *Config) { c.Font.Size = -1 }, "font.size"},
		{"dpi", func(c *Config) { c.Font.DPI = 0 }, "font.dpi"},
		{"backend", func(c *Config) { c.Font.Backend = "cairo" }, "font.backend"},
		{"atlas", func(c *Config) { c.MSDF.AtlasSize = 1000 }, "msdf.atlas_size"},
		{"range", func(c *Config) { c.MSDF.Range = 0 }, "msdf.range"},
		{"angle", func(c *Config) { c.MSDF.AngleThreshold = 270 }, "msdf.angle_threshold"},
		{"export", func(c *Config) { c.MSDF.ExportDir = "" }, "msdf.export_dir"},
		{"mode", func(c *Config) { c.Text.Mode = "sdf" }, "text.mode"},
		{"scale", func(c *Config) { c.Text.Scale = 0 }, "text.scale"},
		{"range order", func(c *Config) { c.Text.First, c.Text.Last = 100, 50 }, "text.first/last"},
		{"range max", func(c *Config) { c.Text.Last = 300 }, "text.first/last"},
		{"sample outside range", func(c *Config) { c.Text.Sample = "caf\u00e9" }, "text.sample"},
		{"sample below first", func(c *Config) { c.Text.First = 100 }, "text.sample"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mod(&cfg)
			var ce *Error
			if err := cfg.Validate(); !errors.As(err, &ce) || ce.Field != tt.field {
				t.Errorf("expected error on %s, got %v", tt.field, err)
			}
		})
	}
}

func TestEncodeRoundTrip(t *testing.T) {
	data, err := Encode(Default())
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	cfg := Config{}
	if err := Decode(data, &cfg); err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if diff := cmp.Diff(Default(), cfg); diff != "" {
		t.Errorf("round trip mismatch (-want +got):\n%s", diff)
	}
}
