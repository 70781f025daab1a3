package msdf

import (
	"fmt"
	"image"
	"image/draw"
	"image/png"
	"log/slog"
	"os"
	"path/filepath"
)

// Export writes the atlas to <dir>/<stem>.png, creating dir, and returns
// the written path.
func (a *Atlas) Export(dir, stem string) (string, error) {
	if len(a.placements) == 0 {
		return "", ErrNoImage
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("msdf: export: %w", err)
	}

	path := filepath.Join(dir, stem+".png")
	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("msdf: export: %w", err)
	}
	if err := png.Encode(f, a.img); err != nil {
		_ = f.Close()
		return "", fmt.Errorf("msdf: export %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("msdf: export %s: %w", path, err)
	}

	a.log.Info("atlas exported", slog.String("path", path), slog.Int("glyphs", len(a.placements)))
	return path, nil
}

// LoadPNG reads an exported atlas back as NRGBA.
func LoadPNG(path string) (*image.NRGBA, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("msdf: load: %w", err)
	}
	defer f.Close()

	src, err := png.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("msdf: load %s: %w", path, err)
	}
	if img, ok := src.(*image.NRGBA); ok {
		return img, nil
	}
	img := image.NewNRGBA(src.Bounds())
	draw.Draw(img, img.Bounds(), src, src.Bounds().Min, draw.Src)
	return img, nil
}
