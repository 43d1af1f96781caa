// Package mesh holds polygon meshes and derives their face and vertex normals.
package mesh

import (
	"errors"
	"fmt"

	"github.com/Faultbox/shapeview/pkg/math"
)

// MinPolygonSize is the smallest number of vertices a polygon may reference.
const MinPolygonSize = 3

// ErrInvalidPolygon is returned by Validate for polygons that break the mesh contract.
var ErrInvalidPolygon = errors.New("invalid polygon")

// Polygon is an ordered list of indices into the owning mesh's vertices.
type Polygon struct {
	indices []int
}

// Size returns the number of vertices in the polygon.
func (p Polygon) Size() int {
	return len(p.indices)
}

// Vertex returns the mesh vertex index of the j-th polygon corner.
func (p Polygon) Vertex(j int) int {
	return p.indices[j]
}

// Mesh is a frozen vertex and polygon list. It is created by a Builder and
// never changes topology afterwards.
type Mesh struct {
	name     string
	vertices []math.Vec3
	polygons []Polygon
}

// Bounds holds the axis-aligned bounding box of a mesh.
type Bounds struct {
	Min math.Vec3
	Max math.Vec3
}

// Center returns the center of the bounding box.
func (b Bounds) Center() math.Vec3 {
	return b.Min.Add(b.Max).Scale(0.5)
}

// Radius returns half the diagonal of the bounding box.
func (b Bounds) Radius() float64 {
	return b.Max.Distance(b.Min) / 2
}

// Name returns the name given to the builder.
func (m *Mesh) Name() string {
	return m.name
}

// VertexCount returns the number of vertices.
func (m *Mesh) VertexCount() int {
	return len(m.vertices)
}

// PolygonCount returns the number of polygons.
func (m *Mesh) PolygonCount() int {
	return len(m.polygons)
}

// Position returns the position of vertex i.
func (m *Mesh) Position(i int) math.Vec3 {
	return m.vertices[i]
}

// Polygon returns polygon i.
func (m *Mesh) Polygon(i int) Polygon {
	return m.polygons[i]
}

// Corner returns the position of the j-th corner of polygon i.
func (m *Mesh) Corner(i, j int) math.Vec3 {
	return m.vertices[m.polygons[i].indices[j]]
}

// Bounds computes the axis-aligned bounding box. An empty mesh has zero bounds.
func (m *Mesh) Bounds() Bounds {
	if len(m.vertices) == 0 {
		return Bounds{}
	}

	b := Bounds{Min: m.vertices[0], Max: m.vertices[0]}
	for _, v := range m.vertices[1:] {
		b.Min = b.Min.Min(v)
		b.Max = b.Max.Max(v)
	}
	return b
}

// Validate checks that every polygon has at least three corners and only
// references vertices of this mesh.
func (m *Mesh) Validate() error {
	for i, p := range m.polygons {
		if err := checkPolygon(p.indices, len(m.vertices)); err != nil {
			return fmt.Errorf("polygon %d: %w", i, err)
		}
	}
	return nil
}

func checkPolygon(indices []int, vertexCount int) error {
	if len(indices) < MinPolygonSize {
		return fmt.Errorf("%w: %d vertices, need at least %d", ErrInvalidPolygon, len(indices), MinPolygonSize)
	}
	for _, idx := range indices {
		if idx < 0 || idx >= vertexCount {
			return fmt.Errorf("%w: vertex index %d out of range [0,%d)", ErrInvalidPolygon, idx, vertexCount)
		}
	}
	return nil
}
