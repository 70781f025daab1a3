package gfx

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"

	glsandbox "github.com/gogpu/glsandbox"
)

// LoadProgram reads a vertex and fragment shader from disk and compiles
// them. A missing or empty file is an error.
func LoadProgram(dev Device, vertexPath, fragmentPath string) (Program, error) {
	return LoadProgramFS(dev, osFS{}, vertexPath, fragmentPath)
}

// LoadProgramFS is LoadProgram over an fs.FS.
func LoadProgramFS(dev Device, fsys fs.FS, vertexPath, fragmentPath string) (Program, error) {
	vsrc, err := readSource(fsys, vertexPath)
	if err != nil {
		return nil, err
	}
	fsrc, err := readSource(fsys, fragmentPath)
	if err != nil {
		return nil, err
	}

	p, err := dev.CompileProgram(vsrc, fsrc)
	if err != nil {
		var ce *CompileError
		if errors.As(err, &ce) {
			switch ce.Stage {
			case StageVertex:
				ce.Path = vertexPath
			case StageFragment:
				ce.Path = fragmentPath
			}
		}
		return nil, err
	}

	glsandbox.ComponentLogger("gfx").Debug("program loaded",
		slog.String("vertex", vertexPath), slog.String("fragment", fragmentPath))
	return p, nil
}

func readSource(fsys fs.FS, path string) (string, error) {
	b, err := fs.ReadFile(fsys, path)
	if err != nil {
		return "", fmt.Errorf("gfx: read shader: %w", err)
	}
	if len(b) == 0 {
		return "", fmt.Errorf("%w: %s", ErrEmptySource, path)
	}
	return string(b), nil
}

// osFS opens paths as given, relative or absolute, unlike os.DirFS.
type osFS struct{}

func (osFS) Open(name string) (fs.File, error) { return os.Open(name) }
