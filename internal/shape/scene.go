package shape

import (
	gomath "math"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/Faultbox/shapeview/internal/engine/gfx"
	"github.com/Faultbox/shapeview/pkg/math"
)

// Light 0 sits at a fixed point in world space.
var (
	LightPosition = gfx.RGBA{10, 20, 20, 1}
	white         = gfx.RGBA{1, 1, 1, 1}
)

// MaterialColor maps a hue in [0, 1) to a fully saturated, full value RGB
// color with 8-bit channels. Hues outside the range wrap around.
func MaterialColor(hue float64) (r, g, b float64) {
	h := hue - gomath.Floor(hue)
	r8, g8, b8 := colorful.Hsv(h*360, 1, 1).RGB255()
	return float64(r8) / 255, float64(g8) / 255, float64(b8) / 255
}

// setupScene places the light and loads the material from the sliders.
func (s *Shape) setupScene(surf gfx.Surface) {
	surf.Light(0, gfx.LightPosition, LightPosition)
	surf.Light(0, gfx.LightAmbient, white)
	surf.Light(0, gfx.LightDiffuse, white)
	surf.Light(0, gfx.LightSpecular, white)
	surf.Enable(gfx.Light0)

	ka := float32(s.Ka.Value)
	kd := float32(s.Kd.Value)
	ks := float32(s.Ks.Value)
	r, g, b := MaterialColor(s.Hue.Value)

	surf.Material(gfx.FaceFront, gfx.MatAmbient, gfx.RGBA{ka, ka, ka, 1})
	surf.Material(gfx.FaceFront, gfx.MatDiffuse, gfx.RGBA{kd * float32(r), kd * float32(g), kd * float32(b), 1})
	surf.Material(gfx.FaceFront, gfx.MatSpecular, gfx.RGBA{ks, ks, ks, 1})
	surf.Shininess(gfx.FaceFront, float32(s.Shininess.Value))

	surf.LightModelAmbient(gfx.RGBA{0, 0, 0, 0})
	surf.LightModelLocalViewer(true)
}

// PoseMatrix returns M = T · Rx · Ry · Rz · S for the current parameters.
func (s *Shape) PoseMatrix() math.Mat4 {
	sc := s.Scale.Value
	return math.Translate(s.Tx.Value, s.Ty.Value, s.Tz.Value).
		Mul(math.RotateX(math.Radians(s.Rx.Value))).
		Mul(math.RotateY(math.Radians(s.Ry.Value))).
		Mul(math.RotateZ(math.Radians(s.Rz.Value))).
		Mul(math.Scale(sc, sc, sc))
}

// ApplyPose multiplies the pose onto the current matrix in the same order
// as PoseMatrix.
func (s *Shape) ApplyPose(surf gfx.Surface) {
	sc := s.Scale.Value
	surf.Translate(s.Tx.Value, s.Ty.Value, s.Tz.Value)
	surf.Rotate(s.Rx.Value, 1, 0, 0)
	surf.Rotate(s.Ry.Value, 0, 1, 0)
	surf.Rotate(s.Rz.Value, 0, 0, 1)
	surf.Scale(sc, sc, sc)
}
