package mesh

import (
	"fmt"

	"github.com/Faultbox/shapeview/pkg/math"
)

// Builder accumulates vertices and polygons for a single mesh.
// It panics on contract violations: those are programming errors in the
// code constructing the mesh, not recoverable conditions.
type Builder struct {
	mesh  *Mesh
	built bool
}

// NewBuilder returns a builder for a mesh with the given name.
func NewBuilder(name string) *Builder {
	return &Builder{mesh: &Mesh{name: name}}
}

// Grow reserves room for the given number of additional vertices and polygons.
func (b *Builder) Grow(vertices, polygons int) *Builder {
	b.mustOpen()
	if vertices > 0 {
		v := make([]math.Vec3, len(b.mesh.vertices), len(b.mesh.vertices)+vertices)
		copy(v, b.mesh.vertices)
		b.mesh.vertices = v
	}
	if polygons > 0 {
		p := make([]Polygon, len(b.mesh.polygons), len(b.mesh.polygons)+polygons)
		copy(p, b.mesh.polygons)
		b.mesh.polygons = p
	}
	return b
}

// AddVertex appends a vertex and returns its index.
func (b *Builder) AddVertex(p math.Vec3) int {
	b.mustOpen()
	b.mesh.vertices = append(b.mesh.vertices, p)
	return len(b.mesh.vertices) - 1
}

// AddPolygon appends a polygon over existing vertices. Corners must be given
// counter-clockwise as seen from the front face.
func (b *Builder) AddPolygon(indices ...int) {
	b.mustOpen()
	if err := checkPolygon(indices, len(b.mesh.vertices)); err != nil {
		panic(fmt.Sprintf("mesh %q: polygon %d: %v", b.mesh.name, len(b.mesh.polygons), err))
	}
	owned := make([]int, len(indices))
	copy(owned, indices)
	b.mesh.polygons = append(b.mesh.polygons, Polygon{indices: owned})
}

// VertexCount returns the number of vertices added so far.
func (b *Builder) VertexCount() int {
	return len(b.mesh.vertices)
}

// Build freezes and returns the mesh. The builder cannot be used afterwards.
func (b *Builder) Build() *Mesh {
	b.mustOpen()
	b.built = true
	return b.mesh
}

func (b *Builder) mustOpen() {
	if b.built {
		panic(fmt.Sprintf("mesh %q: builder used after Build", b.mesh.name))
	}
}
