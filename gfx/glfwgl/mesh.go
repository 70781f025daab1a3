package glfwgl

import (
	"github.com/go-gl/gl/v3.3-core/gl"

	"github.com/gogpu/glsandbox/gfx"
)

// Mesh is a VAO with its buffers. Static meshes draw indexed triangles,
// dynamic ones draw the vertices of the last Update.
type Mesh struct {
	vao, vbo, ebo uint32
	stride        int
	count         int32
	dynamic       bool
	capacity      int
	dev           *Device
}

// Update replaces the vertices of a dynamic mesh.
func (m *Mesh) Update(vertices []float32) error {
	if !m.dynamic {
		return gfx.ErrStaticMesh
	}
	if err := gfx.CheckVertexCount(len(vertices), m.stride, m.capacity); err != nil {
		return err
	}
	m.count = int32(len(vertices) / m.stride)
	if len(vertices) == 0 {
		return nil
	}
	gl.BindBuffer(gl.ARRAY_BUFFER, m.vbo)
	gl.BufferSubData(gl.ARRAY_BUFFER, 0, len(vertices)*4, gl.Ptr(vertices))
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	return nil
}

// Draw issues the draw call.
func (m *Mesh) Draw() {
	if m.count == 0 {
		return
	}
	gl.BindVertexArray(m.vao)
	if m.dynamic {
		gl.DrawArrays(gl.TRIANGLES, 0, m.count)
	} else {
		gl.DrawElements(gl.TRIANGLES, m.count, gl.UNSIGNED_INT, gl.PtrOffset(0))
	}
	gl.BindVertexArray(0)
}

// Delete releases the buffers. Calling it twice is safe.
func (m *Mesh) Delete() {
	if m.vao == 0 {
		return
	}
	gl.DeleteVertexArrays(1, &m.vao)
	gl.DeleteBuffers(1, &m.vbo)
	if m.ebo != 0 {
		gl.DeleteBuffers(1, &m.ebo)
	}
	m.vao, m.vbo, m.ebo = 0, 0, 0
	delete(m.dev.meshes, m)
}

var _ gfx.Mesh = (*Mesh)(nil)
