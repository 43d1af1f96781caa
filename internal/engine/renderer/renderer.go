// Package renderer owns frame-level OpenGL state: initialization, the
// viewport, camera matrices and frame capture.
package renderer

import (
	"fmt"

	"github.com/go-gl/gl/v2.1/gl"
	"github.com/go-gl/mathgl/mgl64"
	"go.uber.org/zap"

	"github.com/Faultbox/shapeview/internal/engine/gfx"
	"github.com/Faultbox/shapeview/internal/engine/shader"
	"github.com/Faultbox/shapeview/internal/logger"
)

// Config holds renderer configuration.
type Config struct {
	Width  int
	Height int
}

// Renderer handles per-frame OpenGL state.
type Renderer struct {
	config  Config
	surface *gfx.GL
	log     *zap.Logger
}

// New initializes OpenGL and the default pipeline state.
// IMPORTANT: Must be called AFTER OpenGL context is created!
func New(cfg Config) (*Renderer, error) {
	r := &Renderer{
		config:  cfg,
		surface: gfx.NewGL(),
		log:     logger.Named("renderer"),
	}

	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize OpenGL: %w", err)
	}

	r.log.Info("OpenGL initialized",
		zap.String("version", gl.GoStr(gl.GetString(gl.VERSION))),
		zap.String("renderer", gl.GoStr(gl.GetString(gl.RENDERER))),
		zap.String("glsl", shader.LanguageVersion()),
	)

	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LESS)
	// Shapes scale uniformly; renormalize so lighting stays correct
	gl.Enable(gl.NORMALIZE)
	gl.ShadeModel(gl.SMOOTH)
	gl.Enable(gl.MULTISAMPLE)
	gl.ClearColor(0.1, 0.1, 0.15, 1.0)

	r.Resize(cfg.Width, cfg.Height)
	return r, nil
}

// Surface returns the drawing surface bound to the current context.
func (r *Renderer) Surface() gfx.Surface {
	return r.surface
}

// Close releases renderer resources.
func (r *Renderer) Close() {
	r.log.Info("closing renderer")
	gl.UseProgram(0)
}

// Resize handles window resize.
func (r *Renderer) Resize(width, height int) {
	r.config.Width = width
	r.config.Height = height
	gl.Viewport(0, 0, int32(width), int32(height))
	r.log.Debug("renderer resized",
		zap.Int("width", width),
		zap.Int("height", height),
	)
}

// Aspect returns the viewport aspect ratio.
func (r *Renderer) Aspect() float64 {
	if r.config.Height == 0 {
		return 1
	}
	return float64(r.config.Width) / float64(r.config.Height)
}

// Begin clears the frame and loads the camera matrices. Everything drawn
// afterwards, including the light position, is in world space.
func (r *Renderer) Begin(projection, view mgl64.Mat4) {
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)

	gl.MatrixMode(gl.PROJECTION)
	gl.LoadMatrixd(&projection[0])
	gl.MatrixMode(gl.MODELVIEW)
	gl.LoadMatrixd(&view[0])

	gl.Enable(gl.LIGHTING)
}

// End finishes the current frame.
func (r *Renderer) End() {
	gl.UseProgram(0)
	gl.Flush()
}

// ReadPixels returns the back buffer as bottom-up RGBA rows.
func (r *Renderer) ReadPixels() ([]byte, int, int) {
	w, h := r.config.Width, r.config.Height
	pixels := make([]byte, w*h*4)
	if len(pixels) == 0 {
		return pixels, w, h
	}
	gl.PixelStorei(gl.PACK_ALIGNMENT, 1)
	gl.ReadPixels(0, 0, int32(w), int32(h), gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(pixels))
	return pixels, w, h
}
