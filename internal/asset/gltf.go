// Package asset loads meshes from glTF 2.0 files and watches them for
// changes.
package asset

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/qmuntal/gltf"
	"github.com/qmuntal/gltf/modeler"

	"github.com/Faultbox/shapeview/internal/mesh"
	"github.com/Faultbox/shapeview/pkg/math"
)

// ErrNoGeometry is returned for documents without triangle primitives.
var ErrNoGeometry = errors.New("no triangle geometry")

// LoadOptions control how a document is turned into a mesh.
type LoadOptions struct {
	// Weld merges vertices with identical positions so smooth shading
	// averages across the seams exporters leave between faces.
	Weld bool
	// Fit, when positive, centers the mesh and scales it to this radius.
	Fit float64
}

// LoadGLTF reads every triangle primitive of a .gltf or .glb file into one
// mesh. Input is validated; a malformed file returns an error, never a
// panic.
func LoadGLTF(path string, opts LoadOptions) (*mesh.Mesh, error) {
	doc, err := gltf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open gltf: %w", err)
	}

	name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	m, err := buildMesh(doc, name, opts)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filepath.Base(path), err)
	}
	return m, nil
}

type triangle [3]int

func buildMesh(doc *gltf.Document, name string, opts LoadOptions) (*mesh.Mesh, error) {
	var (
		positions []math.Vec3
		tris      []triangle
	)

	for _, gm := range doc.Meshes {
		for pi, prim := range gm.Primitives {
			if prim.Mode != gltf.PrimitiveTriangles {
				continue
			}
			posIdx, ok := prim.Attributes[gltf.POSITION]
			if !ok {
				continue
			}
			if posIdx < 0 || posIdx >= len(doc.Accessors) {
				return nil, fmt.Errorf("mesh %q primitive %d: position accessor %d out of range", gm.Name, pi, posIdx)
			}

			pos, err := modeler.ReadPosition(doc, doc.Accessors[posIdx], nil)
			if err != nil {
				return nil, fmt.Errorf("mesh %q primitive %d: read positions: %w", gm.Name, pi, err)
			}

			var indices []uint32
			if prim.Indices != nil {
				idx := *prim.Indices
				if idx < 0 || idx >= len(doc.Accessors) {
					return nil, fmt.Errorf("mesh %q primitive %d: index accessor %d out of range", gm.Name, pi, idx)
				}
				indices, err = modeler.ReadIndices(doc, doc.Accessors[idx], nil)
				if err != nil {
					return nil, fmt.Errorf("mesh %q primitive %d: read indices: %w", gm.Name, pi, err)
				}
			} else {
				indices = make([]uint32, len(pos)-len(pos)%3)
				for i := range indices {
					indices[i] = uint32(i)
				}
			}

			base := len(positions)
			for _, p := range pos {
				positions = append(positions, math.V3(float64(p[0]), float64(p[1]), float64(p[2])))
			}

			for i := 0; i+2 < len(indices); i += 3 {
				var t triangle
				for k := range 3 {
					v := int(indices[i+k])
					if v >= len(pos) {
						return nil, fmt.Errorf("mesh %q primitive %d: index %d out of range (%d vertices)", gm.Name, pi, v, len(pos))
					}
					t[k] = base + v
				}
				tris = append(tris, t)
			}
		}
	}

	if len(tris) == 0 {
		return nil, ErrNoGeometry
	}

	remap := identity(len(positions))
	if opts.Weld {
		positions, remap = weld(positions)
	}
	if opts.Fit > 0 {
		fit(positions, opts.Fit)
	}

	b := mesh.NewBuilder(name).Grow(len(positions), len(tris))
	for _, p := range positions {
		b.AddVertex(p)
	}
	for _, t := range tris {
		a, c, d := remap[t[0]], remap[t[1]], remap[t[2]]
		if a == c || c == d || a == d {
			continue // collapsed by welding
		}
		b.AddPolygon(a, c, d)
	}
	m := b.Build()
	if m.PolygonCount() == 0 {
		return nil, ErrNoGeometry
	}
	return m, nil
}

func identity(n int) []int {
	r := make([]int, n)
	for i := range r {
		r[i] = i
	}
	return r
}

// weld keeps the first vertex of every distinct position and returns the
// old-to-new index map.
func weld(positions []math.Vec3) ([]math.Vec3, []int) {
	seen := make(map[math.Vec3]int, len(positions))
	remap := make([]int, len(positions))
	out := positions[:0:0]
	for i, p := range positions {
		j, ok := seen[p]
		if !ok {
			j = len(out)
			seen[p] = j
			out = append(out, p)
		}
		remap[i] = j
	}
	return out, remap
}

// fit centers positions on their bounding box and scales them so the
// bounding sphere has the given radius.
func fit(positions []math.Vec3, radius float64) {
	lo, hi := positions[0], positions[0]
	for _, p := range positions[1:] {
		lo = lo.Min(p)
		hi = hi.Max(p)
	}
	center := lo.Add(hi).Scale(0.5)
	extent := hi.Sub(lo).Length() / 2
	scale := 1.0
	if extent > math.Epsilon {
		scale = radius / extent
	}
	for i, p := range positions {
		positions[i] = p.Sub(center).Scale(scale)
	}
}
