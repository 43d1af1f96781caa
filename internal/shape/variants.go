package shape

import (
	"github.com/Faultbox/shapeview/internal/engine/gfx"
	"github.com/Faultbox/shapeview/internal/mesh"
	"github.com/Faultbox/shapeview/internal/params"
)

// Cube is an axis-aligned cube.
type Cube struct {
	Size float64
}

func (Cube) Name() string { return "Cube" }

func (c Cube) BuildMesh() (*mesh.Mesh, error) {
	return mesh.Cube(c.Size), nil
}

// Sphere is a UV sphere around the Z axis.
type Sphere struct {
	Radius         float64
	Slices, Stacks int
}

func (Sphere) Name() string { return "Sphere" }

func (s Sphere) BuildMesh() (*mesh.Mesh, error) {
	return mesh.Sphere(s.Radius, s.Slices, s.Stacks), nil
}

// Cylinder is a capped cylinder along the Z axis.
type Cylinder struct {
	Radius, Height float64
	Slices         int
}

func (Cylinder) Name() string { return "Cylinder" }

func (c Cylinder) BuildMesh() (*mesh.Mesh, error) {
	return mesh.Cylinder(c.Radius, c.Height, c.Slices), nil
}

// UniformToonBands is the band count uniform of the toon shader.
const UniformToonBands = "toonBands"

// Torus is a ring torus in the XY plane. It adds a "Toon bands"
// parameter bound to the toon shader.
type Torus struct {
	Major, Minor float64
	Rings, Sides int

	Bands *params.Float
}

// NewTorus returns a torus with its band parameter.
func NewTorus(major, minor float64, rings, sides int) *Torus {
	return &Torus{
		Major: major,
		Minor: minor,
		Rings: rings,
		Sides: sides,
		Bands: params.NewFloat("Toon bands", 4, 1, 16, 1),
	}
}

func (*Torus) Name() string { return "Torus" }

func (t *Torus) BuildMesh() (*mesh.Mesh, error) {
	return mesh.Torus(t.Major, t.Minor, t.Rings, t.Sides), nil
}

func (t *Torus) Parameters() []*params.Float {
	return []*params.Float{t.Bands}
}

// BindUniforms writes the band count while the shading program is active.
func (t *Torus) BindUniforms(s gfx.Surface, program uint32) {
	s.Uniform1f(s.UniformLocation(program, UniformToonBands), float32(t.Bands.Value))
}

// Builtin returns the procedural shapes in display order.
func Builtin() []Variant {
	return []Variant{
		Cube{Size: 2},
		Sphere{Radius: 1.25, Slices: 32, Stacks: 16},
		Cylinder{Radius: 1, Height: 2.5, Slices: 32},
		NewTorus(1.25, 0.5, 48, 24),
	}
}
