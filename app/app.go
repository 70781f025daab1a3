// Package app runs the sandbox: a pulsing quad and a line of text drawn
// with either glyph library, switchable at runtime.
package app

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"path/filepath"
	"time"

	"github.com/go-gl/mathgl/mgl32"
	"golang.org/x/image/font"

	glsandbox "github.com/gogpu/glsandbox"
	"github.com/gogpu/glsandbox/gfx"
	"github.com/gogpu/glsandbox/internal/config"
	"github.com/gogpu/glsandbox/raster"
	"github.com/gogpu/glsandbox/textrender"
)

//go:embed shaders
var shaderFS embed.FS

// quadVertices is a centered square in clip space.
var quadVertices = []float32{
	0.5, 0.5, 0.0,
	0.5, -0.5, 0.0,
	-0.5, -0.5, 0.0,
	-0.5, 0.5, 0.0,
}

var quadIndices = []uint32{
	0, 1, 3,
	1, 2, 3,
}

// Application owns the window, the device and everything drawn with it.
type Application struct {
	cfg    config.Config
	win    gfx.Window
	dev    gfx.Device
	unlit  gfx.Program
	quad   gfx.Mesh
	text   *textrender.Renderer
	glyphs [2]*textrender.Glyphs
	face   font.Face
	mode   textrender.Mode
	color  mgl32.Vec3
	timer  *FrameTimer
	log    *slog.Logger

	toggleDown bool
}

// New builds the application on an open window and device. Any failure
// releases what was created and is returned.
func New(cfg config.Config, win gfx.Window, dev gfx.Device) (*Application, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	mode, err := textrender.ParseMode(cfg.Text.Mode)
	if err != nil {
		return nil, err
	}

	a := &Application{
		cfg:   cfg,
		win:   win,
		dev:   dev,
		mode:  mode,
		color: mgl32.Vec3(cfg.Text.Color),
		log:   glsandbox.ComponentLogger("app"),
	}
	a.timer = NewFrameTimer(a.clock)
	if err := a.init(); err != nil {
		a.release()
		return nil, err
	}
	return a, nil
}

func (a *Application) init() error {
	var err error
	if dir := a.cfg.Shaders.Dir; dir != "" {
		a.unlit, err = gfx.LoadProgram(a.dev, filepath.Join(dir, "unlit.vert"), filepath.Join(dir, "unlit.frag"))
	} else {
		a.unlit, err = gfx.LoadProgramFS(a.dev, shaderFS, "shaders/unlit.vert", "shaders/unlit.frag")
	}
	if err != nil {
		return err
	}

	if a.quad, err = a.dev.NewMesh(quadVertices, quadIndices, []int{3}); err != nil {
		return err
	}

	f, opts, err := LoadFont(a.cfg.Font)
	if err != nil {
		return err
	}
	if a.face, err = f.NewFace(opts); err != nil {
		return err
	}

	rng := codeRange(a.cfg.Text)
	bm := raster.NewBitmap(a.face).WithCoverage(f)
	if a.glyphs[textrender.ModeBitmap], err = textrender.LoadBitmap(a.dev, bm, rng); err != nil {
		return err
	}
	if a.glyphs[textrender.ModeMSDF], err = textrender.LoadMSDF(a.dev, f, opts, atlasConfig(a.cfg.MSDF), rng, a.cfg.MSDF.ExportDir); err != nil {
		return err
	}

	// Laying out the sample now turns a code the font lacks into a startup
	// error instead of a failure on the first frame.
	t := a.cfg.Text
	for _, g := range a.glyphs {
		if _, err := textrender.Layout(g, t.Sample, t.X, t.Y, t.Scale); err != nil {
			return fmt.Errorf("app: sample text in %s mode: %w", g.Mode, err)
		}
	}

	w, h := a.win.FramebufferSize()
	if a.text, err = textrender.NewRenderer(a.dev, w, h); err != nil {
		return err
	}
	if a.cfg.Text.Shaping {
		s, err := textrender.NewShaper(f, opts.PPEM())
		if err != nil {
			return err
		}
		a.text.SetShaper(s)
	}

	a.dev.Viewport(0, 0, w, h)
	a.win.SetResizeCallback(a.resize)

	a.log.Info("application ready",
		slog.String("font", f.Name()), slog.String("mode", a.mode.String()),
		slog.Int("bitmap_glyphs", a.glyphs[textrender.ModeBitmap].Count()),
		slog.Int("msdf_glyphs", a.glyphs[textrender.ModeMSDF].Count()))
	return nil
}

func (a *Application) clock() time.Duration {
	return time.Duration(a.win.Time() * float64(time.Second))
}

// Mode returns the active glyph mode.
func (a *Application) Mode() textrender.Mode { return a.mode }

// Glyphs returns the library for mode.
func (a *Application) Glyphs(mode textrender.Mode) *textrender.Glyphs { return a.glyphs[mode] }

// Run drives the render loop until the window should close or ctx is
// done. Cancellation returns ctx.Err().
func (a *Application) Run(ctx context.Context) error {
	for !a.win.ShouldClose() {
		if err := ctx.Err(); err != nil {
			return err
		}
		a.timer.Start()

		a.win.PollEvents()
		a.processInput()
		if err := a.Frame(); err != nil {
			return err
		}
		a.win.SwapBuffers()

		a.timer.Stop()
		if title, ok := a.timer.Tick(); ok {
			a.win.SetTitle(title)
		}
	}
	return nil
}

// processInput closes on Escape and toggles the glyph mode on each M press.
func (a *Application) processInput() {
	if a.win.KeyPressed(gfx.KeyEscape) {
		a.win.SetShouldClose(true)
	}

	down := a.win.KeyPressed(gfx.KeyM)
	if down && !a.toggleDown {
		a.mode = a.mode.Toggle()
		a.log.Info("glyph mode switched", slog.String("mode", a.mode.String()))
	}
	a.toggleDown = down
}

// Frame renders one frame without presenting it.
func (a *Application) Frame() error {
	green := float32(math.Sin(a.win.Time())/2 + 0.5)

	a.dev.Clear(0.2, 0.3, 0.3, 1.0)

	a.unlit.Bind()
	a.unlit.SetUniform4f("u_Color", 0, green, 0, 1)
	a.quad.Draw()
	a.unlit.Unbind()

	t := a.cfg.Text
	return a.text.Draw(a.glyphs[a.mode], t.Sample, t.X, t.Y, t.Scale, a.color)
}

func (a *Application) resize(w, h int) {
	a.dev.Viewport(0, 0, w, h)
	a.text.Resize(w, h)
	a.log.Debug("resized", slog.Int("width", w), slog.Int("height", h))
}

// Close releases every GPU object, then the device and the window.
func (a *Application) Close() error {
	a.release()
	return errors.Join(a.dev.Close(), a.win.Close())
}

func (a *Application) release() {
	if a.text != nil {
		a.text.Close()
		a.text = nil
	}
	for i, g := range a.glyphs {
		if g != nil {
			g.Release(a.dev)
			a.glyphs[i] = nil
		}
	}
	if a.quad != nil {
		a.quad.Delete()
		a.quad = nil
	}
	if a.unlit != nil {
		a.unlit.Delete()
		a.unlit = nil
	}
	if a.face != nil {
		_ = a.face.Close()
		a.face = nil
	}
}
