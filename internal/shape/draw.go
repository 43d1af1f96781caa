package shape

import (
	"github.com/Faultbox/shapeview/internal/engine/gfx"
	"github.com/Faultbox/shapeview/internal/mesh"
	"github.com/Faultbox/shapeview/pkg/math"
)

// Overlay constants.
const (
	NormalLength        = 0.25
	SilhouetteLineWidth = 4
)

var (
	normalColor    = [3]float64{0.5, 0.5, 1}
	wireframeColor = [3]float64{0, 0, 1}
)

// Draw renders one frame of the shape: shading setup, light and material,
// the pose, then the normals overlay, wireframe, filled polygons and
// silhouette in that order, each only when its option is on. The matrix
// stack is balanced on return.
func (s *Shape) Draw(surf gfx.Surface) {
	s.binder.Setup(surf)
	s.setupScene(surf)

	surf.PushMatrix()
	defer surf.PopMatrix()
	s.ApplyPose(surf)

	n := mesh.ComputeNormals(s.mesh, s.Smooth.Value || s.Normals.Value)

	if s.Normals.Value {
		s.drawNormals(surf, n.Vertices)
	}

	if s.Wireframe.Value {
		s.drawWireframe(surf)
	}

	if s.Polygons.Value {
		s.binder.EnableFragmentStage(surf)
		surf.Enable(gfx.Lighting)
		surf.PolygonMode(gfx.FaceFront, gfx.ModeFill)
		s.drawPolygons(surf, n)
		s.binder.DisableFragmentStage(surf)
	}

	if s.Silhouette.Value {
		s.drawSilhouette(surf, n)
	}
}

// drawPolygons submits every polygon, with per-vertex normals in smooth
// mode and the face normal otherwise.
func (s *Shape) drawPolygons(surf gfx.Surface, n mesh.Normals) {
	m := s.mesh
	smooth := s.Smooth.Value && n.Vertices != nil

	for i := 0; i < m.PolygonCount(); i++ {
		p := m.Polygon(i)
		surf.Begin(gfx.PrimPolygon)
		if !smooth {
			surf.Normal(n.Faces[i])
		}
		for j := 0; j < p.Size(); j++ {
			v := p.Vertex(j)
			if smooth {
				surf.Normal(n.Vertices[v])
			}
			surf.Vertex(m.Position(v))
		}
		surf.End()
	}
}

// drawNormals draws a short segment from every vertex along its normal.
func (s *Shape) drawNormals(surf gfx.Surface, normals []math.Vec3) {
	surf.Disable(gfx.Lighting)
	surf.Color(normalColor[0], normalColor[1], normalColor[2])

	for i, nv := range normals {
		p := s.mesh.Position(i)
		surf.Begin(gfx.PrimLineStrip)
		surf.Vertex(p)
		surf.Vertex(p.Add(nv.Scale(NormalLength)))
		surf.End()
	}
}

// drawWireframe outlines every polygon, pulled slightly toward the viewer
// so the lines win the depth test against the filled pass.
func (s *Shape) drawWireframe(surf gfx.Surface) {
	m := s.mesh

	surf.PolygonOffset(-1, 1)
	surf.Enable(gfx.PolygonOffsetLine)
	surf.Disable(gfx.Lighting)
	surf.Color(wireframeColor[0], wireframeColor[1], wireframeColor[2])
	surf.PolygonMode(gfx.FaceFrontAndBack, gfx.ModeLine)

	for i := 0; i < m.PolygonCount(); i++ {
		p := m.Polygon(i)
		surf.Begin(gfx.PrimPolygon)
		for j := 0; j < p.Size(); j++ {
			surf.Vertex(m.Position(p.Vertex(j)))
		}
		surf.End()
	}

	surf.PolygonMode(gfx.FaceFrontAndBack, gfx.ModeFill)
	surf.Disable(gfx.PolygonOffsetLine)
}

// drawSilhouette draws the outline in two sub-passes: thick back-face lines
// with color writes masked, then the front faces filled black. The color
// mask, line width, culling and back polygon mode are restored however the
// pass exits.
func (s *Shape) drawSilhouette(surf gfx.Surface, n mesh.Normals) {
	surf.Disable(gfx.Lighting)
	defer restoreOutlineState(surf)

	surf.Color(1, 1, 1)
	surf.ColorMask(false, false, false, true)
	surf.CullFace(gfx.FaceBack)
	surf.Enable(gfx.CullFace)
	surf.PolygonMode(gfx.FaceBack, gfx.ModeLine)
	surf.LineWidth(SilhouetteLineWidth)
	s.drawPolygons(surf, n)
	surf.ColorMask(true, true, true, true)
	surf.Disable(gfx.CullFace)

	surf.Color(0, 0, 0)
	surf.PolygonMode(gfx.FaceFront, gfx.ModeFill)
	s.drawPolygons(surf, n)
}

func restoreOutlineState(surf gfx.Surface) {
	surf.ColorMask(true, true, true, true)
	surf.LineWidth(1)
	surf.Disable(gfx.CullFace)
	surf.PolygonMode(gfx.FaceBack, gfx.ModeFill)
}
