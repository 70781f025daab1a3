// Package gfxtest provides in-memory gfx implementations that record calls.
package gfxtest

import (
	"fmt"
	"image"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/gogpu/glsandbox/gfx"
	"github.com/gogpu/glsandbox/glyph"
)

// Window is a scripted window. Time advances by Step on every SwapBuffers,
// and the window asks to close after MaxFrames frames when MaxFrames > 0.
type Window struct {
	Width, Height int
	Step          float64
	MaxFrames     int

	// Keys holds the pressed state per key. OnFrame, if set, runs after
	// each swap and may change it.
	Keys    map[gfx.Key]bool
	OnFrame func(frame int, w *Window)

	Frames int
	Polls  int
	Titles []string
	Closed bool

	now         float64
	shouldClose bool
	resize      func(w, h int)
}

// NewWindow returns a w x h window at 60 frames per second.
func NewWindow(w, h int) *Window {
	return &Window{Width: w, Height: h, Step: 1.0 / 60, Keys: make(map[gfx.Key]bool)}
}

func (w *Window) PollEvents()                 { w.Polls++ }
func (w *Window) ShouldClose() bool           { return w.shouldClose }
func (w *Window) SetShouldClose(v bool)       { w.shouldClose = v }
func (w *Window) KeyPressed(k gfx.Key) bool   { return w.Keys[k] }
func (w *Window) SetTitle(t string)           { w.Titles = append(w.Titles, t) }
func (w *Window) FramebufferSize() (int, int) { return w.Width, w.Height }
func (w *Window) Time() float64               { return w.now }

func (w *Window) SetResizeCallback(fn func(w, h int)) { w.resize = fn }

// SwapBuffers ends a frame.
func (w *Window) SwapBuffers() {
	w.Frames++
	w.now += w.Step
	if w.OnFrame != nil {
		w.OnFrame(w.Frames, w)
	}
	if w.MaxFrames > 0 && w.Frames >= w.MaxFrames {
		w.shouldClose = true
	}
}

// Resize changes the framebuffer size and fires the callback.
func (w *Window) Resize(width, height int) {
	w.Width, w.Height = width, height
	if w.resize != nil {
		w.resize(width, height)
	}
}

func (w *Window) Close() error {
	w.Closed = true
	return nil
}

// Upload records one texture upload.
type Upload struct {
	ID     glyph.TextureID
	Format gfx.TextureFormat
	Size   image.Point
	Pix    []byte
}

// Device records GPU calls. Set CompileErr to make CompileProgram fail.
type Device struct {
	CompileErr error
	MaxAttribs int
	Uploads    []Upload
	Deleted    []glyph.TextureID
	Programs   []*Program
	Meshes     []*Mesh
	Viewports  []image.Rectangle
	Clears     [][4]float32
	Bound      map[int]glyph.TextureID
	Blending   bool
	Closed     bool

	nextID glyph.TextureID
	live   map[glyph.TextureID]bool
}

// NewDevice returns an empty recording device.
func NewDevice() *Device {
	return &Device{
		MaxAttribs: 16,
		Bound:      make(map[int]glyph.TextureID),
		live:       make(map[glyph.TextureID]bool),
	}
}

func (d *Device) CompileProgram(vs, fs string) (gfx.Program, error) {
	if d.CompileErr != nil {
		return nil, d.CompileErr
	}
	if vs == "" || fs == "" {
		return nil, gfx.ErrEmptySource
	}
	p := &Program{Vertex: vs, Fragment: fs, Uniforms: make(map[string]any)}
	d.Programs = append(d.Programs, p)
	return p, nil
}

func (d *Device) UploadTexture(img image.Image, format gfx.TextureFormat) (glyph.TextureID, error) {
	pix, w, h := gfx.Pixels(img, format)
	if w == 0 || h == 0 {
		return 0, fmt.Errorf("gfxtest: empty texture %dx%d", w, h)
	}
	d.nextID++
	d.live[d.nextID] = true
	d.Uploads = append(d.Uploads, Upload{ID: d.nextID, Format: format, Size: image.Pt(w, h), Pix: pix})
	return d.nextID, nil
}

func (d *Device) DeleteTexture(id glyph.TextureID) {
	if d.live[id] {
		delete(d.live, id)
		d.Deleted = append(d.Deleted, id)
	}
}

// LiveTextures returns the number of textures not yet deleted.
func (d *Device) LiveTextures() int { return len(d.live) }

func (d *Device) BindTexture(unit int, id glyph.TextureID) { d.Bound[unit] = id }

func (d *Device) NewMesh(vertices []float32, indices []uint32, layout []int) (gfx.Mesh, error) {
	if err := gfx.ValidateLayout(layout, d.MaxAttribs); err != nil {
		return nil, err
	}
	m := &Mesh{Vertices: vertices, Indices: indices, Layout: layout}
	d.Meshes = append(d.Meshes, m)
	return m, nil
}

func (d *Device) NewDynamicMesh(layout []int, maxVertices int) (gfx.Mesh, error) {
	if err := gfx.ValidateLayout(layout, d.MaxAttribs); err != nil {
		return nil, err
	}
	m := &Mesh{Layout: layout, Dynamic: true, Capacity: maxVertices}
	d.Meshes = append(d.Meshes, m)
	return m, nil
}

func (d *Device) Viewport(x, y, w, h int) {
	d.Viewports = append(d.Viewports, image.Rect(x, y, x+w, y+h))
}

func (d *Device) Clear(r, g, b, a float32) { d.Clears = append(d.Clears, [4]float32{r, g, b, a}) }
func (d *Device) EnableBlending()          { d.Blending = true }
func (d *Device) MaxVertexAttribs() int    { return d.MaxAttribs }

// Close deletes all live textures, meshes and programs.
func (d *Device) Close() error {
	for id := range d.live {
		d.DeleteTexture(id)
	}
	for _, m := range d.Meshes {
		m.Delete()
	}
	for _, p := range d.Programs {
		p.Delete()
	}
	d.Closed = true
	return nil
}

// Program records uniform values and bind state.
type Program struct {
	Vertex, Fragment string
	Uniforms         map[string]any
	Bound            bool
	Binds            int
	Deleted          bool
}

func (p *Program) Bind()   { p.Bound = true; p.Binds++ }
func (p *Program) Unbind() { p.Bound = false }

func (p *Program) SetUniform1i(name string, v int32)   { p.Uniforms[name] = v }
func (p *Program) SetUniform1f(name string, v float32) { p.Uniforms[name] = v }

func (p *Program) SetUniform3f(name string, v0, v1, v2 float32) {
	p.Uniforms[name] = [3]float32{v0, v1, v2}
}

func (p *Program) SetUniform4f(name string, v0, v1, v2, v3 float32) {
	p.Uniforms[name] = [4]float32{v0, v1, v2, v3}
}

func (p *Program) SetUniformMat4(name string, m mgl32.Mat4) { p.Uniforms[name] = m }
func (p *Program) Delete()                                  { p.Deleted = true }

// Mesh records vertex data and draws.
type Mesh struct {
	Vertices []float32
	Indices  []uint32
	Layout   []int
	Dynamic  bool
	Capacity int
	Draws    int
	Deleted  bool

	// Drawn accumulates the vertices of every Draw of a dynamic mesh.
	Drawn [][]float32
}

func (m *Mesh) Update(vertices []float32) error {
	if !m.Dynamic {
		return gfx.ErrStaticMesh
	}
	if err := gfx.CheckVertexCount(len(vertices), gfx.Stride(m.Layout), m.Capacity); err != nil {
		return err
	}
	m.Vertices = append(m.Vertices[:0], vertices...)
	return nil
}

func (m *Mesh) Draw() {
	m.Draws++
	if m.Dynamic {
		m.Drawn = append(m.Drawn, append([]float32(nil), m.Vertices...))
	}
}

func (m *Mesh) Delete() { m.Deleted = true }

var (
	_ gfx.Window  = (*Window)(nil)
	_ gfx.Device  = (*Device)(nil)
	_ gfx.Program = (*Program)(nil)
	_ gfx.Mesh    = (*Mesh)(nil)
)
