package glfwgl

import (
	"github.com/go-gl/gl/v3.3-core/gl"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/gogpu/glsandbox/gfx"
)

// Program is a linked GL program with a uniform location cache.
type Program struct {
	id        uint32
	locations map[string]int32
	dev       *Device
}

func (p *Program) Bind()   { gl.UseProgram(p.id) }
func (p *Program) Unbind() { gl.UseProgram(0) }

// location returns the cached uniform location, -1 when absent.
func (p *Program) location(name string) int32 {
	if loc, ok := p.locations[name]; ok {
		return loc
	}
	loc := gl.GetUniformLocation(p.id, gl.Str(name+"\x00"))
	p.locations[name] = loc
	return loc
}

func (p *Program) SetUniform1i(name string, v int32) {
	gl.Uniform1i(p.location(name), v)
}

func (p *Program) SetUniform1f(name string, v float32) {
	gl.Uniform1f(p.location(name), v)
}

func (p *Program) SetUniform3f(name string, v0, v1, v2 float32) {
	gl.Uniform3f(p.location(name), v0, v1, v2)
}

func (p *Program) SetUniform4f(name string, v0, v1, v2, v3 float32) {
	gl.Uniform4f(p.location(name), v0, v1, v2, v3)
}

func (p *Program) SetUniformMat4(name string, m mgl32.Mat4) {
	gl.UniformMatrix4fv(p.location(name), 1, false, &m[0])
}

// Delete releases the program. Calling it twice is safe.
func (p *Program) Delete() {
	if p.id == 0 {
		return
	}
	gl.DeleteProgram(p.id)
	p.id = 0
	delete(p.dev.programs, p)
}

var _ gfx.Program = (*Program)(nil)
