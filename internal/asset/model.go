package asset

import (
	"path/filepath"
	"strings"

	"github.com/Faultbox/shapeview/internal/mesh"
)

// DefaultOptions weld seams and fit models to the size of the built-in
// shapes.
var DefaultOptions = LoadOptions{Weld: true, Fit: 1.5}

// Model is a shape variant backed by a glTF file.
type Model struct {
	Path    string
	Manager *Manager // nil loads without caching
}

// Name returns the file name without extension.
func (m Model) Name() string {
	return strings.TrimSuffix(filepath.Base(m.Path), filepath.Ext(m.Path))
}

// BuildMesh loads the file.
func (m Model) BuildMesh() (*mesh.Mesh, error) {
	if m.Manager != nil {
		return m.Manager.Load(m.Path)
	}
	return LoadGLTF(m.Path, DefaultOptions)
}
