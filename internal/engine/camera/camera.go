// Package camera provides the orbit camera the viewer looks through.
package camera

import (
	gomath "math"

	"github.com/charmbracelet/harmonica"
	"github.com/go-gl/mathgl/mgl64"
)

// OrbitCamera orbits around a center point. Drag and zoom move target
// angles and distance; Update eases the visible camera toward them with
// critically damped springs.
type OrbitCamera struct {
	Center mgl64.Vec3

	// Current spherical coordinates
	Distance float64
	Pitch    float64 // radians, positive looks down on the center
	Yaw      float64 // radians

	// Targets the springs pull toward
	TargetDistance float64
	TargetPitch    float64
	TargetYaw      float64

	// Constraints
	MinDistance float64
	MaxDistance float64
	MinPitch    float64
	MaxPitch    float64

	// Sensitivity
	DragSensitivity float64
	ZoomSensitivity float64

	// Projection
	FieldOfView float64 // degrees
	Near, Far   float64

	spring harmonica.Spring

	distVel, pitchVel, yawVel float64
}

// NewOrbitCamera creates an orbit camera at distance from the origin,
// stepping its springs at fps.
func NewOrbitCamera(distance, fovDeg float64, fps int) *OrbitCamera {
	c := &OrbitCamera{
		Distance:        distance,
		Pitch:           0.35,
		Yaw:             0.6,
		MinDistance:     1,
		MaxDistance:     100,
		MinPitch:        -1.5,
		MaxPitch:        1.5,
		DragSensitivity: 0.01,
		ZoomSensitivity: 0.1,
		FieldOfView:     fovDeg,
		Near:            0.1,
		Far:             500,
		spring:          harmonica.NewSpring(harmonica.FPS(fps), 8.0, 1.0),
	}
	c.Snap()
	return c
}

// Snap moves the targets to the current position and stops the springs.
func (c *OrbitCamera) Snap() {
	c.TargetDistance = c.Distance
	c.TargetPitch = c.Pitch
	c.TargetYaw = c.Yaw
	c.distVel, c.pitchVel, c.yawVel = 0, 0, 0
}

// Update advances the springs by one frame.
func (c *OrbitCamera) Update() {
	c.Distance, c.distVel = c.spring.Update(c.Distance, c.distVel, c.TargetDistance)
	c.Pitch, c.pitchVel = c.spring.Update(c.Pitch, c.pitchVel, c.TargetPitch)
	c.Yaw, c.yawVel = c.spring.Update(c.Yaw, c.yawVel, c.TargetYaw)
}

// Position returns the camera position in world space. Y is up.
func (c *OrbitCamera) Position() mgl64.Vec3 {
	cp := gomath.Cos(c.Pitch)
	offset := mgl64.Vec3{
		c.Distance * cp * gomath.Sin(c.Yaw),
		c.Distance * gomath.Sin(c.Pitch),
		c.Distance * cp * gomath.Cos(c.Yaw),
	}
	return c.Center.Add(offset)
}

// ViewMatrix returns the view matrix for this camera.
func (c *OrbitCamera) ViewMatrix() mgl64.Mat4 {
	return mgl64.LookAtV(c.Position(), c.Center, mgl64.Vec3{0, 1, 0})
}

// ProjectionMatrix returns the perspective projection for aspect
// (width / height).
func (c *OrbitCamera) ProjectionMatrix(aspect float64) mgl64.Mat4 {
	if aspect <= 0 {
		aspect = 1
	}
	return mgl64.Perspective(mgl64.DegToRad(c.FieldOfView), aspect, c.Near, c.Far)
}

// HandleDrag updates the target angles from a mouse drag delta in pixels.
func (c *OrbitCamera) HandleDrag(deltaX, deltaY float64) {
	c.TargetYaw -= deltaX * c.DragSensitivity
	c.TargetPitch = mgl64.Clamp(c.TargetPitch+deltaY*c.DragSensitivity, c.MinPitch, c.MaxPitch)
}

// HandleZoom updates the target distance from scroll wheel steps.
func (c *OrbitCamera) HandleZoom(delta float64) {
	d := c.TargetDistance - delta*c.TargetDistance*c.ZoomSensitivity
	c.TargetDistance = mgl64.Clamp(d, c.MinDistance, c.MaxDistance)
}

// FitRadius centers the camera on the origin and backs off until a sphere
// of the given radius fills the view.
func (c *OrbitCamera) FitRadius(radius float64) {
	half := mgl64.DegToRad(c.FieldOfView) / 2
	d := radius / gomath.Sin(half) * 1.2
	c.Center = mgl64.Vec3{}
	c.TargetDistance = mgl64.Clamp(d, c.MinDistance, c.MaxDistance)
}
