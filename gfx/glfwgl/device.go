package glfwgl

import (
	"image"
	"log/slog"
	"strings"

	"github.com/go-gl/gl/v3.3-core/gl"

	glsandbox "github.com/gogpu/glsandbox"
	"github.com/gogpu/glsandbox/gfx"
	"github.com/gogpu/glsandbox/glyph"
)

// Device issues GL calls on the current context and tracks what it created.
type Device struct {
	textures map[glyph.TextureID]struct{}
	programs map[*Program]struct{}
	meshes   map[*Mesh]struct{}
	log      *slog.Logger
}

func newDevice() *Device {
	return &Device{
		textures: make(map[glyph.TextureID]struct{}),
		programs: make(map[*Program]struct{}),
		meshes:   make(map[*Mesh]struct{}),
		log:      glsandbox.ComponentLogger("gfx"),
	}
}

// CompileProgram compiles both stages and links them.
func (d *Device) CompileProgram(vertexSrc, fragmentSrc string) (gfx.Program, error) {
	vs, err := compileShader(vertexSrc, gl.VERTEX_SHADER, gfx.StageVertex)
	if err != nil {
		return nil, err
	}
	defer gl.DeleteShader(vs)

	fs, err := compileShader(fragmentSrc, gl.FRAGMENT_SHADER, gfx.StageFragment)
	if err != nil {
		return nil, err
	}
	defer gl.DeleteShader(fs)

	id := gl.CreateProgram()
	gl.AttachShader(id, vs)
	gl.AttachShader(id, fs)
	gl.LinkProgram(id)

	var status int32
	gl.GetProgramiv(id, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var n int32
		gl.GetProgramiv(id, gl.INFO_LOG_LENGTH, &n)
		log := strings.Repeat("\x00", int(n+1))
		gl.GetProgramInfoLog(id, n, nil, gl.Str(log))
		gl.DeleteProgram(id)
		return nil, &gfx.CompileError{Stage: gfx.StageLink, Log: log}
	}
	gl.DetachShader(id, vs)
	gl.DetachShader(id, fs)

	p := &Program{id: id, locations: make(map[string]int32), dev: d}
	d.programs[p] = struct{}{}
	return p, nil
}

func compileShader(src string, kind uint32, stage gfx.Stage) (uint32, error) {
	if src == "" {
		return 0, gfx.ErrEmptySource
	}
	id := gl.CreateShader(kind)
	csrc, free := gl.Strs(src + "\x00")
	gl.ShaderSource(id, 1, csrc, nil)
	free()
	gl.CompileShader(id)

	var status int32
	gl.GetShaderiv(id, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var n int32
		gl.GetShaderiv(id, gl.INFO_LOG_LENGTH, &n)
		log := strings.Repeat("\x00", int(n+1))
		gl.GetShaderInfoLog(id, n, nil, gl.Str(log))
		gl.DeleteShader(id)
		return 0, &gfx.CompileError{Stage: stage, Log: log}
	}
	return id, nil
}

// UploadTexture creates a clamped, linearly filtered 2D texture.
func (d *Device) UploadTexture(img image.Image, format gfx.TextureFormat) (glyph.TextureID, error) {
	pix, w, h := gfx.Pixels(img, format)

	internal, layout := int32(gl.RGBA8), uint32(gl.RGBA)
	if format == gfx.FormatRed {
		internal, layout = gl.R8, gl.RED
	}

	var id uint32
	gl.GenTextures(1, &id)
	gl.BindTexture(gl.TEXTURE_2D, id)
	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 1)
	gl.TexImage2D(gl.TEXTURE_2D, 0, internal, int32(w), int32(h), 0, layout, gl.UNSIGNED_BYTE, gl.Ptr(pix))
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)
	gl.BindTexture(gl.TEXTURE_2D, 0)

	tid := glyph.TextureID(id)
	d.textures[tid] = struct{}{}
	return tid, nil
}

// DeleteTexture releases a texture. Unknown ids are ignored.
func (d *Device) DeleteTexture(id glyph.TextureID) {
	if _, ok := d.textures[id]; !ok {
		return
	}
	raw := uint32(id)
	gl.DeleteTextures(1, &raw)
	delete(d.textures, id)
}

// BindTexture binds id to a texture unit.
func (d *Device) BindTexture(unit int, id glyph.TextureID) {
	gl.ActiveTexture(gl.TEXTURE0 + uint32(unit))
	gl.BindTexture(gl.TEXTURE_2D, uint32(id))
}

// NewMesh uploads a static indexed mesh.
func (d *Device) NewMesh(vertices []float32, indices []uint32, layout []int) (gfx.Mesh, error) {
	if err := gfx.ValidateLayout(layout, d.MaxVertexAttribs()); err != nil {
		return nil, err
	}
	m := d.newMesh(layout)
	gl.BufferData(gl.ARRAY_BUFFER, len(vertices)*4, gl.Ptr(vertices), gl.STATIC_DRAW)

	gl.GenBuffers(1, &m.ebo)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, m.ebo)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(indices)*4, gl.Ptr(indices), gl.STATIC_DRAW)
	m.count = int32(len(indices))

	gl.BindVertexArray(0)
	return m, nil
}

// NewDynamicMesh allocates a vertex buffer for maxVertices vertices.
func (d *Device) NewDynamicMesh(layout []int, maxVertices int) (gfx.Mesh, error) {
	if err := gfx.ValidateLayout(layout, d.MaxVertexAttribs()); err != nil {
		return nil, err
	}
	m := d.newMesh(layout)
	m.dynamic = true
	m.capacity = maxVertices
	gl.BufferData(gl.ARRAY_BUFFER, maxVertices*m.stride*4, nil, gl.DYNAMIC_DRAW)

	gl.BindVertexArray(0)
	return m, nil
}

// newMesh creates and binds a VAO and VBO and sets up attributes.
func (d *Device) newMesh(layout []int) *Mesh {
	m := &Mesh{stride: gfx.Stride(layout), dev: d}
	gl.GenVertexArrays(1, &m.vao)
	gl.BindVertexArray(m.vao)
	gl.GenBuffers(1, &m.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, m.vbo)

	offset := 0
	for i, n := range layout {
		gl.EnableVertexAttribArray(uint32(i))
		gl.VertexAttribPointer(uint32(i), int32(n), gl.FLOAT, false, int32(m.stride*4), gl.PtrOffset(offset*4))
		offset += n
	}
	d.meshes[m] = struct{}{}
	return m
}

func (d *Device) Viewport(x, y, w, h int) {
	gl.Viewport(int32(x), int32(y), int32(w), int32(h))
}

func (d *Device) Clear(r, g, b, a float32) {
	gl.ClearColor(r, g, b, a)
	gl.Clear(gl.COLOR_BUFFER_BIT)
}

// EnableBlending turns on premultiplied-free alpha blending for text.
func (d *Device) EnableBlending() {
	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
}

// MaxVertexAttribs returns GL_MAX_VERTEX_ATTRIBS.
func (d *Device) MaxVertexAttribs() int {
	var n int32
	gl.GetIntegerv(gl.MAX_VERTEX_ATTRIBS, &n)
	return int(n)
}

// Close deletes every object still owned by the device.
func (d *Device) Close() error {
	for m := range d.meshes {
		m.Delete()
	}
	for p := range d.programs {
		p.Delete()
	}
	for id := range d.textures {
		d.DeleteTexture(id)
	}
	d.log.Debug("device closed")
	return nil
}

var _ gfx.Device = (*Device)(nil)
