package gfx

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrEmptyLayout is returned for a mesh without vertex attributes.
	ErrEmptyLayout = errors.New("gfx: empty vertex layout")

	// ErrTooManyAttribs is returned when a layout exceeds MaxVertexAttribs.
	ErrTooManyAttribs = errors.New("gfx: too many vertex attributes")

	// ErrAttribSize is returned for attributes outside 1 to 4 components.
	ErrAttribSize = errors.New("gfx: attribute size must be 1 to 4")

	// ErrMeshOverflow is returned when Update exceeds a mesh's capacity.
	ErrMeshOverflow = errors.New("gfx: mesh capacity exceeded")

	// ErrStaticMesh is returned by Update on a static mesh.
	ErrStaticMesh = errors.New("gfx: static mesh cannot be updated")

	// ErrEmptySource is returned for an empty shader source.
	ErrEmptySource = errors.New("gfx: empty shader source")
)

// Stage names the step of program creation that failed.
type Stage string

const (
	StageVertex   Stage = "vertex"
	StageFragment Stage = "fragment"
	StageLink     Stage = "link"
)

// CompileError carries the driver's info log for a failed compile or link.
type CompileError struct {
	Stage Stage
	Path  string
	Log   string
}

func (e *CompileError) Error() string {
	where := string(e.Stage)
	if e.Path != "" {
		where += " " + e.Path
	}
	return fmt.Sprintf("gfx: %s shader failed: %s", where, strings.TrimRight(e.Log, "\x00\n "))
}

// CheckVertexCount validates a dynamic mesh update.
func CheckVertexCount(floats, stride, maxVertices int) error {
	if stride <= 0 || floats%stride != 0 {
		return fmt.Errorf("gfx: %d floats is not a multiple of stride %d", floats, stride)
	}
	if n := floats / stride; n > maxVertices {
		return fmt.Errorf("%w: %d vertices, capacity %d", ErrMeshOverflow, n, maxVertices)
	}
	return nil
}
