// Package gfx defines the drawing surface shapes render through, with an
// OpenGL implementation and a recording one for tests.
package gfx

import "github.com/Faultbox/shapeview/pkg/math"

// Capability is a server-side switch toggled with Enable/Disable.
type Capability int

const (
	Lighting Capability = iota
	Light0
	CullFace
	PolygonOffsetLine
	DepthTest
	Normalize
)

var capabilityNames = [...]string{"Lighting", "Light0", "CullFace", "PolygonOffsetLine", "DepthTest", "Normalize"}

func (c Capability) String() string {
	if int(c) < len(capabilityNames) {
		return capabilityNames[c]
	}
	return "Capability(?)"
}

// Face selects polygon faces.
type Face int

const (
	FaceFront Face = iota
	FaceBack
	FaceFrontAndBack
)

func (f Face) String() string {
	switch f {
	case FaceFront:
		return "Front"
	case FaceBack:
		return "Back"
	default:
		return "FrontAndBack"
	}
}

// PolygonMode is the rasterization mode of polygons.
type PolygonMode int

const (
	ModeFill PolygonMode = iota
	ModeLine
	ModePoint
)

func (m PolygonMode) String() string {
	switch m {
	case ModeFill:
		return "Fill"
	case ModeLine:
		return "Line"
	default:
		return "Point"
	}
}

// Primitive is the kind of geometry between Begin and End.
type Primitive int

const (
	PrimPolygon Primitive = iota
	PrimLineStrip
	PrimLines
)

// LightParam names a light property.
type LightParam int

const (
	LightPosition LightParam = iota
	LightAmbient
	LightDiffuse
	LightSpecular
)

// MaterialParam names a material property.
type MaterialParam int

const (
	MatAmbient MaterialParam = iota
	MatDiffuse
	MatSpecular
)

// RGBA is a color or homogeneous position as the fixed pipeline takes it.
type RGBA [4]float32

// Surface is the rendering context shapes draw with. Implementations are
// bound to the thread owning the context and are not safe for concurrent use.
type Surface interface {
	Enable(c Capability)
	Disable(c Capability)

	Light(light int, p LightParam, v RGBA)
	LightModelAmbient(v RGBA)
	LightModelLocalViewer(local bool)
	Material(face Face, p MaterialParam, v RGBA)
	Shininess(face Face, s float32)

	PushMatrix()
	PopMatrix()
	Translate(x, y, z float64)
	Rotate(angleDeg, x, y, z float64)
	Scale(x, y, z float64)

	PolygonMode(face Face, mode PolygonMode)
	PolygonOffset(factor, units float32)
	CullFace(face Face)
	ColorMask(r, g, b, a bool)
	LineWidth(w float32)
	Color(r, g, b float64)

	Begin(p Primitive)
	Normal(n math.Vec3)
	Vertex(p math.Vec3)
	End()

	CompileProgram(vertexSrc, fragmentSrc string) (uint32, error)
	UseProgram(program uint32)
	UniformLocation(program uint32, name string) int32
	Uniform1i(location int32, v int32)
	Uniform1f(location int32, v float32)
}
