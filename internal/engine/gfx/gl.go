package gfx

import (
	"github.com/go-gl/gl/v2.1/gl"

	"github.com/Faultbox/shapeview/internal/engine/shader"
	"github.com/Faultbox/shapeview/pkg/math"
)

// GL draws through the current OpenGL 2.1 context.
// IMPORTANT: gl.Init must have run on the context's thread before use.
type GL struct{}

// NewGL returns a surface bound to the current context.
func NewGL() *GL {
	return &GL{}
}

var glCapabilities = [...]uint32{
	Lighting:          gl.LIGHTING,
	Light0:            gl.LIGHT0,
	CullFace:          gl.CULL_FACE,
	PolygonOffsetLine: gl.POLYGON_OFFSET_LINE,
	DepthTest:         gl.DEPTH_TEST,
	Normalize:         gl.NORMALIZE,
}

var glLightParams = [...]uint32{
	LightPosition: gl.POSITION,
	LightAmbient:  gl.AMBIENT,
	LightDiffuse:  gl.DIFFUSE,
	LightSpecular: gl.SPECULAR,
}

var glMaterialParams = [...]uint32{
	MatAmbient:  gl.AMBIENT,
	MatDiffuse:  gl.DIFFUSE,
	MatSpecular: gl.SPECULAR,
}

var glPrimitives = [...]uint32{
	PrimPolygon:   gl.POLYGON,
	PrimLineStrip: gl.LINE_STRIP,
	PrimLines:     gl.LINES,
}

func glFace(f Face) uint32 {
	switch f {
	case FaceFront:
		return gl.FRONT
	case FaceBack:
		return gl.BACK
	default:
		return gl.FRONT_AND_BACK
	}
}

func glMode(m PolygonMode) uint32 {
	switch m {
	case ModeLine:
		return gl.LINE
	case ModePoint:
		return gl.POINT
	default:
		return gl.FILL
	}
}

func (*GL) Enable(c Capability) { gl.Enable(glCapabilities[c]) }
func (*GL) Disable(c Capability) { gl.Disable(glCapabilities[c]) }

func (*GL) Light(light int, p LightParam, v RGBA) {
	gl.Lightfv(gl.LIGHT0+uint32(light), glLightParams[p], &v[0])
}

func (*GL) LightModelAmbient(v RGBA) {
	gl.LightModelfv(gl.LIGHT_MODEL_AMBIENT, &v[0])
}

func (*GL) LightModelLocalViewer(local bool) {
	var v int32 = gl.FALSE
	if local {
		v = gl.TRUE
	}
	gl.LightModeli(gl.LIGHT_MODEL_LOCAL_VIEWER, v)
}

func (*GL) Material(face Face, p MaterialParam, v RGBA) {
	gl.Materialfv(glFace(face), glMaterialParams[p], &v[0])
}

func (*GL) Shininess(face Face, s float32) {
	gl.Materialf(glFace(face), gl.SHININESS, s)
}

func (*GL) PushMatrix() { gl.PushMatrix() }
func (*GL) PopMatrix() { gl.PopMatrix() }
func (*GL) Translate(x, y, z float64) { gl.Translated(x, y, z) }
func (*GL) Rotate(angleDeg, x, y, z float64) { gl.Rotated(angleDeg, x, y, z) }
func (*GL) Scale(x, y, z float64) { gl.Scaled(x, y, z) }

func (*GL) PolygonMode(face Face, mode PolygonMode) { gl.PolygonMode(glFace(face), glMode(mode)) }
func (*GL) PolygonOffset(factor, units float32) { gl.PolygonOffset(factor, units) }
func (*GL) CullFace(face Face) { gl.CullFace(glFace(face)) }
func (*GL) ColorMask(r, g, b, a bool) { gl.ColorMask(r, g, b, a) }
func (*GL) LineWidth(w float32) { gl.LineWidth(w) }
func (*GL) Color(r, g, b float64) { gl.Color3d(r, g, b) }

func (*GL) Begin(p Primitive) { gl.Begin(glPrimitives[p]) }
func (*GL) Normal(n math.Vec3) { gl.Normal3d(n.X, n.Y, n.Z) }
func (*GL) Vertex(p math.Vec3) { gl.Vertex3d(p.X, p.Y, p.Z) }
func (*GL) End() { gl.End() }

func (*GL) CompileProgram(vertexSrc, fragmentSrc string) (uint32, error) {
	return shader.CompileProgram(vertexSrc, fragmentSrc)
}

func (*GL) UseProgram(program uint32) { gl.UseProgram(program) }

func (*GL) UniformLocation(program uint32, name string) int32 {
	return shader.Uniform(program, name)
}

func (*GL) Uniform1i(location int32, v int32) { gl.Uniform1i(location, v) }
func (*GL) Uniform1f(location int32, v float32) { gl.Uniform1f(location, v) }
