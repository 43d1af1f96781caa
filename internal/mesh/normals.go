package mesh

import "github.com/Faultbox/shapeview/pkg/math"

// FaceNormal returns the unit normal of polygon i, taken from the cross
// product of the edges leaving its first corner. Counter-clockwise corners
// give an outward normal. Degenerate polygons return the zero vector.
func FaceNormal(m *Mesh, i int) math.Vec3 {
	v0 := m.Corner(i, 0)
	e1 := m.Corner(i, 1).Sub(v0)
	e2 := m.Corner(i, 2).Sub(v0)
	return e1.Cross(e2).Normalize()
}

// FaceNormals computes the unit normal of every polygon into a new slice.
func FaceNormals(m *Mesh) []math.Vec3 {
	faces := make([]math.Vec3, m.PolygonCount())
	for i := range faces {
		faces[i] = FaceNormal(m, i)
	}
	return faces
}

// VertexNormals averages the given face normals onto the vertices they touch.
// The face normals are only read; accumulation happens in a fresh buffer
// that is normalized once every polygon has contributed.
func VertexNormals(m *Mesh, faces []math.Vec3) []math.Vec3 {
	if len(faces) != m.PolygonCount() {
		panic("mesh: face normal count does not match polygon count")
	}

	sums := make([]math.Vec3, m.VertexCount())
	for i, p := range m.polygons {
		n := faces[i]
		for _, idx := range p.indices {
			sums[idx] = sums[idx].Add(n)
		}
	}

	for i := range sums {
		sums[i] = sums[i].Normalize()
	}
	return sums
}

// Normals holds the normals derived for one frame.
type Normals struct {
	Faces    []math.Vec3
	Vertices []math.Vec3 // nil unless requested
}

// ComputeNormals derives face normals and, when withVertices is set, the
// smoothed vertex normals from them.
func ComputeNormals(m *Mesh, withVertices bool) Normals {
	n := Normals{Faces: FaceNormals(m)}
	if withVertices {
		n.Vertices = VertexNormals(m, n.Faces)
	}
	return n
}
