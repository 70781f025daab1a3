package textrender

import (
	"embed"
	"fmt"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/gogpu/glsandbox/gfx"
	"github.com/gogpu/glsandbox/glyph"
)

//go:embed shaders
var shaderFS embed.FS

// maxQuads bounds one draw call.
const maxQuads = 256

// Renderer draws text through a device with one program per mode and a
// shared dynamic mesh.
type Renderer struct {
	dev      gfx.Device
	programs [2]gfx.Program
	mesh     gfx.Mesh
	shaper   *Shaper
	proj     mgl32.Mat4
	verts    []float32
}

// NewRenderer compiles the text programs and sets a width x height
// orthographic projection with the origin at the bottom left.
func NewRenderer(dev gfx.Device, width, height int) (*Renderer, error) {
	r := &Renderer{dev: dev}

	frags := [2]string{ModeBitmap: "shaders/bitmap.frag", ModeMSDF: "shaders/msdf.frag"}
	for mode, frag := range frags {
		p, err := gfx.LoadProgramFS(dev, shaderFS, "shaders/text.vert", frag)
		if err != nil {
			r.Close()
			return nil, fmt.Errorf("textrender: %s program: %w", Mode(mode), err)
		}
		r.programs[mode] = p
	}

	mesh, err := dev.NewDynamicMesh([]int{4}, maxQuads*6)
	if err != nil {
		r.Close()
		return nil, err
	}
	r.mesh = mesh

	dev.EnableBlending()
	r.Resize(width, height)
	return r, nil
}

// SetShaper enables shaped advances. Nil restores library advances.
func (r *Renderer) SetShaper(s *Shaper) { r.shaper = s }

// Projection returns the current projection matrix.
func (r *Renderer) Projection() mgl32.Mat4 { return r.proj }

// Resize updates the projection for a new framebuffer size.
func (r *Renderer) Resize(width, height int) {
	r.proj = mgl32.Ortho2D(0, float32(width), 0, float32(height))
	for _, p := range r.programs {
		p.Bind()
		p.SetUniformMat4("projection", r.proj)
		p.SetUniform1i("text", 0)
		p.Unbind()
	}
}

// Draw renders text with the pen starting at (x, y).
func (r *Renderer) Draw(g *Glyphs, text string, x, y, scale float32, color mgl32.Vec3) error {
	var quads []Quad
	var err error
	if r.shaper != nil {
		quads, err = LayoutShaped(g, text, r.shaper.Advances(text), x, y, scale)
	} else {
		quads, err = Layout(g, text, x, y, scale)
	}
	if err != nil {
		return err
	}

	p := r.programs[g.Mode]
	p.Bind()
	defer p.Unbind()
	p.SetUniform3f("textColor", color[0], color[1], color[2])
	if g.Mode == ModeMSDF {
		p.SetUniform1f("screenPxRange", float32(g.PxRange)*scale)
	}

	// Quads sharing a texture are batched; bitmap glyphs each have their own.
	for start := 0; start < len(quads); {
		tex := quads[start].Texture
		end := start + 1
		for end < len(quads) && end-start < maxQuads && quads[end].Texture == tex {
			end++
		}
		if err := r.flush(tex, quads[start:end]); err != nil {
			return err
		}
		start = end
	}
	return nil
}

func (r *Renderer) flush(tex glyph.TextureID, quads []Quad) error {
	r.verts = vertices(r.verts[:0], quads)
	if err := r.mesh.Update(r.verts); err != nil {
		return err
	}
	r.dev.BindTexture(0, tex)
	r.mesh.Draw()
	return nil
}

// Close releases the programs and mesh.
func (r *Renderer) Close() {
	for i, p := range r.programs {
		if p != nil {
			p.Delete()
			r.programs[i] = nil
		}
	}
	if r.mesh != nil {
		r.mesh.Delete()
		r.mesh = nil
	}
}
