// Package config loads the sandbox configuration from TOML.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// Config is the full sandbox configuration.
type Config struct {
	Window  Window  `toml:"window"`
	Font    Font    `toml:"font"`
	MSDF    MSDF    `toml:"msdf"`
	Text    Text    `toml:"text"`
	Shaders Shaders `toml:"shaders"`
}

// Window configures the window and swap behavior.
type Window struct {
	Width  int    `toml:"width"`
	Height int    `toml:"height"`
	Title  string `toml:"title"`
	VSync  bool   `toml:"vsync"`
}

// Font selects the font file and rasterization parameters. An empty Path
// uses the built-in Go Regular font.
type Font struct {
	Path    string  `toml:"path"`
	Size    float64 `toml:"size"`
	DPI     float64 `toml:"dpi"`
	Backend string  `toml:"backend"`
}

// MSDF configures atlas generation and export.
type MSDF struct {
	AtlasSize int     `toml:"atlas_size"`
	Padding   int     `toml:"padding"`
	Range     float64 `toml:"range"`

	// AngleThreshold is the corner angle in degrees.
	AngleThreshold float64 `toml:"angle_threshold"`

	ExportDir string `toml:"export_dir"`
}

// Text configures the sample string drawn every frame.
type Text struct {
	Sample  string     `toml:"sample"`
	Mode    string     `toml:"mode"`
	Color   [3]float32 `toml:"color"`
	Scale   float32    `toml:"scale"`
	X       float32    `toml:"x"`
	Y       float32    `toml:"y"`
	Shaping bool       `toml:"shaping"`

	// First and Last bound the loaded character codes.
	First int `toml:"first"`
	Last  int `toml:"last"`
}

// Shaders points at the unlit shader sources. An empty Dir uses the
// built-in sources.
type Shaders struct {
	Dir string `toml:"dir"`
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		Window: Window{Width: 800, Height: 600, Title: "LearnOpenGL"},
		Font:   Font{Size: 48, DPI: 72, Backend: "opentype"},
		MSDF: MSDF{
			AtlasSize:      1024,
			Padding:        2,
			Range:          4,
			AngleThreshold: 60,
			ExportDir:      "res/Exports",
		},
		Text: Text{
			Sample: "This is sample text",
			Mode:   "bitmap",
			Color:  [3]float32{0.5, 0.8, 0.2},
			Scale:  1,
			X:      25,
			Y:      25,
			First:  0,
			Last:   127,
		},
	}
}

// Load reads path over the defaults. Unknown keys are an error.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("config: %w", err)
	}
	if err := Decode(data, &cfg); err != nil {
		return cfg, fmt.Errorf("config: %s: %w", path, err)
	}
	return cfg, nil
}

// Decode strictly decodes TOML data into cfg and validates the result.
func Decode(data []byte, cfg *Config) error {
	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(cfg); err != nil {
		var strict *toml.StrictMissingError
		if errors.As(err, &strict) {
			return &Error{Field: "file", Reason: strict.String()}
		}
		return err
	}
	return cfg.Validate()
}

// Encode returns cfg as TOML.
func Encode(cfg Config) ([]byte, error) {
	return toml.Marshal(cfg)
}

// Error reports an invalid configuration value.
type Error struct {
	Field  string
	Reason string
}

func (e *Error) Error() string {
	return "config: invalid " + e.Field + ": " + e.Reason
}

// Validate checks ranges and enumerations.
func (c *Config) Validate() error {
	switch {
	case c.Window.Width <= 0 || c.Window.Height <= 0:
		return &Error{Field: "window size", Reason: "must be positive"}
	case c.Font.Size <= 0 || c.Font.Size > 1024:
		return &Error{Field: "font.size", Reason: "must be in (0, 1024]"}
	case c.Font.DPI <= 0:
		return &Error{Field: "font.dpi", Reason: "must be positive"}
	case c.Font.Backend != "opentype" && c.Font.Backend != "freetype" && c.Font.Backend != "truetype" && c.Font.Backend != "":
		return &Error{Field: "font.backend", Reason: fmt.Sprintf("unknown backend %q", c.Font.Backend)}
	case c.MSDF.AtlasSize <= 0 || c.MSDF.AtlasSize&(c.MSDF.AtlasSize-1) != 0:
		return &Error{Field: "msdf.atlas_size", Reason: "must be a power of 2"}
	case c.MSDF.Range <= 0:
		return &Error{Field: "msdf.range", Reason: "must be positive"}
	case c.MSDF.AngleThreshold <= 0 || c.MSDF.AngleThreshold > 180:
		return &Error{Field: "msdf.angle_threshold", Reason: "must be in (0, 180] degrees"}
	case c.MSDF.ExportDir == "":
		return &Error{Field: "msdf.export_dir", Reason: "must be set"}
	case c.Text.Mode != "bitmap" && c.Text.Mode != "msdf":
		return &Error{Field: "text.mode", Reason: fmt.Sprintf("unknown mode %q", c.Text.Mode)}
	case c.Text.Scale <= 0:
		return &Error{Field: "text.scale", Reason: "must be positive"}
	case c.Text.First < 0 || c.Text.Last > 255 || c.Text.First > c.Text.Last:
		return &Error{Field: "text.first/last", Reason: "must satisfy 0 <= first <= last <= 255"}
	}
	for i := 0; i < len(c.Text.Sample); i++ {
		if b := int(c.Text.Sample[i]); b < c.Text.First || b > c.Text.Last {
			return &Error{Field: "text.sample",
				Reason: fmt.Sprintf("byte %d (0x%02x) is outside [%d, %d]", i, b, c.Text.First, c.Text.Last)}
		}
	}
	return nil
}
