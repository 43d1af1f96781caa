// Package shape draws one polygon mesh with a pose, a material and a set
// of display options.
//
// A Shape is built from a Variant, which supplies the mesh and may add
// its own parameters and shader uniforms. Every frame Draw reads the
// current parameter values and issues the whole draw sequence through a
// gfx.Surface; nothing but the parameter values survives between frames.
package shape

import (
	"fmt"

	"github.com/Faultbox/shapeview/internal/mesh"
	"github.com/Faultbox/shapeview/internal/params"
	"github.com/Faultbox/shapeview/internal/shading"
)

// Variant supplies the geometry of a shape.
type Variant interface {
	Name() string
	BuildMesh() (*mesh.Mesh, error)
}

// ParameterProvider is implemented by variants with parameters of their
// own. They are registered after the common pose and material parameters.
type ParameterProvider interface {
	Parameters() []*params.Float
}

// Option names shared by every shape.
const (
	OptionPolygons   = "Draw polygons"
	OptionSmooth     = "Smooth shading"
	OptionWireframe  = "Draw wireframe"
	OptionNormals    = "Draw normals"
	OptionSilhouette = "Draw silhouettes"
)

// Shape is a mesh with its pose, material and display controls.
type Shape struct {
	name    string
	mesh    *mesh.Mesh
	variant Variant
	set     *params.Set
	binder  *shading.Binder

	// Pose
	Tx, Ty, Tz *params.Float
	Rx, Ry, Rz *params.Float
	Scale      *params.Float

	// Material
	Hue       *params.Float
	Ka        *params.Float
	Kd        *params.Float
	Ks        *params.Float
	Shininess *params.Float

	// Display options
	Polygons   *params.Bool
	Smooth     *params.Bool
	Wireframe  *params.Bool
	Normals    *params.Bool
	Silhouette *params.Bool
}

// New builds the variant's mesh and registers the shape's controls:
// pose, material, variant parameters, display options, shading toggles.
func New(v Variant) (*Shape, error) {
	m, err := v.BuildMesh()
	if err != nil {
		return nil, fmt.Errorf("building %s: %w", v.Name(), err)
	}

	s := &Shape{
		name:    v.Name(),
		mesh:    m,
		variant: v,
		set:     params.NewSet(),
	}

	s.Tx = s.set.AddParameter(params.NewFloat("Tx", 0, -20, 20, 1))
	s.Ty = s.set.AddParameter(params.NewFloat("Ty", 0, -20, 20, 1))
	s.Tz = s.set.AddParameter(params.NewFloat("Tz", 0, -20, 20, 1))

	s.Rx = s.set.AddParameter(params.NewFloat("Rx", 0, -180, 180, 5))
	s.Ry = s.set.AddParameter(params.NewFloat("Ry", 0, -180, 180, 5))
	s.Rz = s.set.AddParameter(params.NewFloat("Rz", 0, -180, 180, 5))

	s.Scale = s.set.AddParameter(params.NewFloat("Scale", 1, 0.05, 10, 0.05))

	s.Hue = s.set.AddParameter(params.NewFloat("Color", 0.1, 0, 1, 0.02))
	s.Ka = s.set.AddParameter(params.NewFloat("Ka", 0.2, 0, 1, 0.05))
	s.Kd = s.set.AddParameter(params.NewFloat("Kd", 0.5, 0, 1, 0.05))
	s.Ks = s.set.AddParameter(params.NewFloat("Ks", 0.3, 0, 1, 0.05))
	s.Shininess = s.set.AddParameter(params.NewFloat("Shininess", 40, 0, 128, 4))

	if pp, ok := v.(ParameterProvider); ok {
		for _, p := range pp.Parameters() {
			s.set.AddParameter(p)
		}
	}

	s.Polygons = s.set.AddOption(params.NewBool(OptionPolygons, true))
	s.Smooth = s.set.AddOption(params.NewBool(OptionSmooth, false))
	s.Wireframe = s.set.AddOption(params.NewBool(OptionWireframe, false))
	s.Normals = s.set.AddOption(params.NewBool(OptionNormals, false))
	s.Silhouette = s.set.AddOption(params.NewBool(OptionSilhouette, false))

	custom, _ := v.(shading.UniformBinder)
	s.binder = shading.NewBinder(custom)
	s.binder.Register(s.set)

	return s, nil
}

// Name returns the display name.
func (s *Shape) Name() string {
	return s.name
}

// Mesh returns the shape's geometry.
func (s *Shape) Mesh() *mesh.Mesh {
	return s.mesh
}

// Variant returns the variant the shape was built from.
func (s *Shape) Variant() Variant {
	return s.variant
}

// Shading returns the binder driving the optional GLSL program.
func (s *Shape) Shading() *shading.Binder {
	return s.binder
}

// Params returns the float parameters in registration order.
func (s *Shape) Params() []*params.Float {
	return s.set.Params()
}

// Options returns the display options and shading toggles in
// registration order.
func (s *Shape) Options() []*params.Bool {
	return s.set.Options()
}

// Reset restores every control to its default.
func (s *Shape) Reset() {
	s.set.Reset()
}

// Apply sets the controls named in pr. Nothing changes if any name is
// unknown.
func (s *Shape) Apply(pr params.Preset) error {
	if err := s.set.Apply(pr); err != nil {
		return fmt.Errorf("%s preset: %w", s.name, err)
	}
	return nil
}

// Preset captures the current control values.
func (s *Shape) Preset() params.Preset {
	return s.set.Preset()
}
