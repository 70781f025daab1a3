package gfx

import (
	"image"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/gogpu/glsandbox/glyph"
)

// Key identifies a keyboard key the sandbox reacts to.
type Key int

const (
	KeyEscape Key = iota + 1
	KeySpace
	KeyM
)

// String returns the key name.
func (k Key) String() string {
	switch k {
	case KeyEscape:
		return "Escape"
	case KeySpace:
		return "Space"
	case KeyM:
		return "M"
	default:
		return "Unknown"
	}
}

// Window is an on-screen surface with an input queue.
type Window interface {
	PollEvents()
	ShouldClose() bool
	SetShouldClose(bool)
	SwapBuffers()
	KeyPressed(Key) bool
	SetTitle(string)
	FramebufferSize() (w, h int)

	// SetResizeCallback registers fn for framebuffer size changes.
	SetResizeCallback(fn func(w, h int))

	// Time returns seconds since the window system started.
	Time() float64

	Close() error
}

// TextureFormat selects the texture's channel layout.
type TextureFormat int

const (
	// FormatRed stores a single coverage channel.
	FormatRed TextureFormat = iota
	// FormatRGBA stores four 8-bit channels.
	FormatRGBA
)

// String returns the format name.
func (f TextureFormat) String() string {
	switch f {
	case FormatRed:
		return "Red"
	case FormatRGBA:
		return "RGBA"
	default:
		return "Unknown"
	}
}

// Device creates and draws GPU objects. It owns everything it creates and
// releases the remainder on Close.
type Device interface {
	// CompileProgram compiles and links a program. Failures return a
	// *CompileError.
	CompileProgram(vertexSrc, fragmentSrc string) (Program, error)

	// UploadTexture creates a texture from img. FormatRed uploads the
	// alpha (for *image.Alpha) or red channel.
	UploadTexture(img image.Image, format TextureFormat) (glyph.TextureID, error)
	DeleteTexture(id glyph.TextureID)
	BindTexture(unit int, id glyph.TextureID)

	// NewMesh creates a static indexed mesh. layout lists the component
	// count of each vertex attribute.
	NewMesh(vertices []float32, indices []uint32, layout []int) (Mesh, error)

	// NewDynamicMesh creates a triangle-list mesh for up to maxVertices
	// vertices, filled by Mesh.Update.
	NewDynamicMesh(layout []int, maxVertices int) (Mesh, error)

	Viewport(x, y, w, h int)
	Clear(r, g, b, a float32)
	EnableBlending()
	MaxVertexAttribs() int
	Close() error
}

// Mesh is vertex data on the device.
type Mesh interface {
	// Update replaces the vertices of a dynamic mesh.
	Update(vertices []float32) error
	Draw()
	Delete()
}

// Program is a linked shader program. Setting a uniform the program does
// not have is a no-op.
type Program interface {
	Bind()
	Unbind()
	SetUniform1i(name string, v int32)
	SetUniform1f(name string, v float32)
	SetUniform3f(name string, v0, v1, v2 float32)
	SetUniform4f(name string, v0, v1, v2, v3 float32)
	SetUniformMat4(name string, m mgl32.Mat4)
	Delete()
}

// Stride returns the floats per vertex of a layout.
func Stride(layout []int) int {
	n := 0
	for _, c := range layout {
		n += c
	}
	return n
}

// ValidateLayout checks a vertex layout against the device attribute limit.
func ValidateLayout(layout []int, maxAttribs int) error {
	if len(layout) == 0 {
		return ErrEmptyLayout
	}
	if maxAttribs > 0 && len(layout) > maxAttribs {
		return ErrTooManyAttribs
	}
	for _, c := range layout {
		if c < 1 || c > 4 {
			return ErrAttribSize
		}
	}
	return nil
}
