package glfwgl

import (
	"fmt"
	"log/slog"
	"runtime"

	"github.com/go-gl/gl/v3.3-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	glsandbox "github.com/gogpu/glsandbox"
	"github.com/gogpu/glsandbox/gfx"
)

func init() {
	runtime.LockOSThread()
}

// WindowConfig describes the window and context to create.
type WindowConfig struct {
	Width, Height int
	Title         string

	// SwapInterval is passed to glfwSwapInterval. 0 disables vsync.
	SwapInterval int

	// Hidden creates an invisible window, for headless runs.
	Hidden bool
}

// Window is a GLFW window with a current GL context.
type Window struct {
	w *glfw.Window
}

var keys = map[gfx.Key]glfw.Key{
	gfx.KeyEscape: glfw.KeyEscape,
	gfx.KeySpace:  glfw.KeySpace,
	gfx.KeyM:      glfw.KeyM,
}

// Open initializes GLFW, creates the window, makes its context current and
// loads GL entry points.
func Open(cfg WindowConfig) (*Window, *Device, error) {
	if err := glfw.Init(); err != nil {
		return nil, nil, fmt.Errorf("glfwgl: init glfw: %w", err)
	}

	glfw.WindowHint(glfw.ContextVersionMajor, 3)
	glfw.WindowHint(glfw.ContextVersionMinor, 3)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	if runtime.GOOS == "darwin" {
		glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	}
	if cfg.Hidden {
		glfw.WindowHint(glfw.Visible, glfw.False)
	}

	w, err := glfw.CreateWindow(cfg.Width, cfg.Height, cfg.Title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, nil, fmt.Errorf("glfwgl: create window: %w", err)
	}
	w.MakeContextCurrent()
	glfw.SwapInterval(cfg.SwapInterval)

	if err := gl.Init(); err != nil {
		w.Destroy()
		glfw.Terminate()
		return nil, nil, fmt.Errorf("glfwgl: init gl: %w", err)
	}

	glsandbox.ComponentLogger("gfx").Info("context created",
		slog.String("version", gl.GoStr(gl.GetString(gl.VERSION))),
		slog.String("renderer", gl.GoStr(gl.GetString(gl.RENDERER))),
		slog.Int("width", cfg.Width), slog.Int("height", cfg.Height))

	return &Window{w: w}, newDevice(), nil
}

func (w *Window) PollEvents()                 { glfw.PollEvents() }
func (w *Window) ShouldClose() bool           { return w.w.ShouldClose() }
func (w *Window) SetShouldClose(v bool)       { w.w.SetShouldClose(v) }
func (w *Window) SwapBuffers()                { w.w.SwapBuffers() }
func (w *Window) SetTitle(title string)       { w.w.SetTitle(title) }
func (w *Window) Time() float64               { return glfw.GetTime() }
func (w *Window) FramebufferSize() (int, int) { return w.w.GetFramebufferSize() }

// KeyPressed reports whether k is held down.
func (w *Window) KeyPressed(k gfx.Key) bool {
	gk, ok := keys[k]
	return ok && w.w.GetKey(gk) == glfw.Press
}

// SetResizeCallback registers fn for framebuffer size changes.
func (w *Window) SetResizeCallback(fn func(width, height int)) {
	if fn == nil {
		w.w.SetFramebufferSizeCallback(nil)
		return
	}
	w.w.SetFramebufferSizeCallback(func(_ *glfw.Window, width, height int) {
		fn(width, height)
	})
}

// Close destroys the window and terminates GLFW.
func (w *Window) Close() error {
	if w.w != nil {
		w.w.Destroy()
		w.w = nil
		glfw.Terminate()
	}
	return nil
}

var _ gfx.Window = (*Window)(nil)
