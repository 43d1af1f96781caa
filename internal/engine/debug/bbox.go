// Package debug provides debug visualization utilities.
package debug

import (
	"github.com/Faultbox/shapeview/internal/engine/gfx"
	"github.com/Faultbox/shapeview/internal/mesh"
	"github.com/Faultbox/shapeview/pkg/math"
)

// BBoxWireframeVertexCount is the number of vertices for a bbox wireframe (12 edges × 2).
const BBoxWireframeVertexCount = 24

// DefaultBBoxPadding is the default padding around a mesh's bounds.
const DefaultBBoxPadding = 0.05

var bboxColor = [3]float64{1, 0.8, 0.2}

// BBoxEdges returns the 12 edges of b grown by padding on every side, as
// pairs of endpoints.
func BBoxEdges(b mesh.Bounds, padding float64) []math.Vec3 {
	pad := math.V3(padding, padding, padding)
	lo := b.Min.Sub(pad)
	hi := b.Max.Add(pad)

	corner := func(x, y, z bool) math.Vec3 {
		p := lo
		if x {
			p.X = hi.X
		}
		if y {
			p.Y = hi.Y
		}
		if z {
			p.Z = hi.Z
		}
		return p
	}

	out := make([]math.Vec3, 0, BBoxWireframeVertexCount)
	// Edges along X, then Y, then Z
	for _, a := range [2]bool{false, true} {
		for _, c := range [2]bool{false, true} {
			out = append(out, corner(false, a, c), corner(true, a, c))
			out = append(out, corner(a, false, c), corner(a, true, c))
			out = append(out, corner(a, c, false), corner(a, c, true))
		}
	}
	return out
}

// DrawBBox draws the padded bounds as unlit lines in the current
// model-view space.
func DrawBBox(surf gfx.Surface, b mesh.Bounds, padding float64) {
	surf.Disable(gfx.Lighting)
	surf.Color(bboxColor[0], bboxColor[1], bboxColor[2])
	surf.Begin(gfx.PrimLines)
	for _, p := range BBoxEdges(b, padding) {
		surf.Vertex(p)
	}
	surf.End()
}
