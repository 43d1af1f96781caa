// Package app implements the viewer main loop.
package app

import (
	"fmt"
	"time"

	"github.com/sqweek/dialog"
	"github.com/veandco/go-sdl2/sdl"
	"go.uber.org/zap"

	"github.com/Faultbox/shapeview/internal/asset"
	"github.com/Faultbox/shapeview/internal/config"
	"github.com/Faultbox/shapeview/internal/engine/camera"
	"github.com/Faultbox/shapeview/internal/engine/debug"
	"github.com/Faultbox/shapeview/internal/engine/input"
	"github.com/Faultbox/shapeview/internal/engine/renderer"
	"github.com/Faultbox/shapeview/internal/engine/window"
	"github.com/Faultbox/shapeview/internal/logger"
)

// frameRate is the rate the camera springs are tuned for.
const frameRate = 60

// dialogResult is what the file dialog goroutine hands back.
type dialogResult struct {
	path string
	err  error
}

// App is the viewer instance.
type App struct {
	config   *config.Config
	running  bool
	window   *window.Window
	renderer *renderer.Renderer
	input    *input.Input
	camera   *camera.OrbitCamera
	scene    *Scene

	assets      *asset.Manager
	watcher     *asset.Watcher // nil unless scene.watch is set
	screenshots *debug.ScreenshotCapture
	grid        *debug.GridRenderer

	showGrid   bool
	showBounds bool
	dragging   bool
	capture    bool
	title      string

	dialogBusy bool
	opened     chan dialogResult

	log *zap.Logger
}

// New creates the window, GL state and scene.
func New(cfg *config.Config) (*App, error) {
	a := &App{
		config:      cfg,
		assets:      asset.NewManager(asset.DefaultOptions),
		screenshots: debug.NewScreenshotCapture(cfg.Screenshots.Dir, "shapeview"),
		grid:        debug.NewGridRenderer(10, 1, -2),
		showGrid:    true,
		opened:      make(chan dialogResult, 1),
		log:         logger.Named("app"),
	}

	a.log.Info("initializing viewer",
		zap.String("title", cfg.Window.Title),
		zap.Int("width", cfg.Window.Width),
		zap.Int("height", cfg.Window.Height),
	)

	var err error
	a.scene, err = NewScene(cfg, a.assets)
	if err != nil {
		return nil, fmt.Errorf("failed to build scene: %w", err)
	}

	// Create window (this also creates OpenGL context)
	a.window, err = window.New(window.Config{
		Title:      cfg.Window.Title,
		Width:      cfg.Window.Width,
		Height:     cfg.Window.Height,
		Fullscreen: cfg.Window.Fullscreen,
		VSync:      cfg.Window.VSync,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create window: %w", err)
	}

	// Create renderer (AFTER window, since OpenGL context must exist)
	width, height := a.window.DrawableSize()
	a.renderer, err = renderer.New(renderer.Config{Width: width, Height: height})
	if err != nil {
		a.window.Close()
		return nil, fmt.Errorf("failed to create renderer: %w", err)
	}

	a.input = input.New()
	a.camera = camera.NewOrbitCamera(cfg.Scene.CameraDistance, cfg.Scene.FieldOfView, frameRate)

	if cfg.Scene.Watch {
		a.watcher, err = asset.NewWatcher()
		if err != nil {
			a.log.Warn("file watching disabled", zap.Error(err))
		} else {
			for _, path := range a.scene.ModelPaths() {
				a.watch(path)
			}
		}
	}

	a.log.Info("viewer initialized", zap.Int("shapes", len(a.scene.Shapes())))
	return a, nil
}

// Run starts the main loop.
func (a *App) Run() error {
	a.running = true

	// Timing
	lastTime := time.Now()
	frameCount := 0
	fpsTimer := time.Now()

	a.log.Info("starting main loop")

	for a.running {
		now := time.Now()
		dt := now.Sub(lastTime).Seconds()
		lastTime = now

		// 1. Process input
		if a.input.Update() {
			a.running = false
			break
		}
		for _, ev := range a.input.Events() {
			a.handleEvent(ev)
		}

		// 2. Update
		a.poll()
		a.update()

		// 3. Render
		a.render()
		if a.capture {
			a.capture = false
			a.screenshot()
		}

		// 4. Present (swap buffers)
		a.window.SwapBuffers()

		frameCount++
		if time.Since(fpsTimer) >= time.Second {
			a.log.Debug("fps", zap.Int("count", frameCount), zap.String("dt", fmt.Sprintf("%.2fms", dt*1000)))
			frameCount = 0
			fpsTimer = time.Now()
		}
	}

	return nil
}

// Close cleans up viewer resources.
func (a *App) Close() {
	a.log.Info("closing viewer")

	if a.watcher != nil {
		if err := a.watcher.Close(); err != nil {
			a.log.Warn("closing watcher", zap.Error(err))
		}
	}
	if a.renderer != nil {
		a.renderer.Close()
	}
	if a.window != nil {
		a.window.Close()
	}
}

func (a *App) handleEvent(ev input.Event) {
	switch ev.Type {
	case input.EventWindowResize:
		a.renderer.Resize(a.window.DrawableSize())
	case input.EventMouseDown:
		if ev.Button == sdl.BUTTON_LEFT {
			a.dragging = true
		}
	case input.EventMouseUp:
		if ev.Button == sdl.BUTTON_LEFT {
			a.dragging = false
		}
	case input.EventMouseMove:
		if a.dragging {
			a.camera.HandleDrag(float64(ev.DeltaX), float64(ev.DeltaY))
		}
	case input.EventMouseWheel:
		a.camera.HandleZoom(float64(ev.DeltaY))
	case input.EventKeyDown:
		a.dispatch(a.scene.HandleKey(ev))
	}
}

func (a *App) dispatch(act Action) {
	switch act {
	case ActionQuit:
		a.running = false
	case ActionScreenshot:
		a.capture = true
	case ActionOpenFile:
		a.openFileDialog()
	case ActionToggleGrid:
		a.showGrid = !a.showGrid
	case ActionToggleBounds:
		a.showBounds = !a.showBounds
	case ActionFrame:
		s := a.scene.Current()
		a.camera.FitRadius(s.Mesh().Bounds().Radius() * s.Scale.Value)
	}
}

// openFileDialog shows a native file dialog for a mesh file. The dialog
// runs on its own goroutine; the result is picked up by poll on the main
// thread.
func (a *App) openFileDialog() {
	if a.dialogBusy {
		return
	}
	a.dialogBusy = true

	go func() {
		path, err := dialog.File().
			Filter("glTF", "gltf", "glb").
			Filter("All Files", "*").
			Title("Open Mesh").
			Load()
		a.opened <- dialogResult{path: path, err: err}
	}()
}

// poll picks up dialog results and file changes without blocking.
func (a *App) poll() {
	select {
	case res := <-a.opened:
		a.dialogBusy = false
		switch {
		case res.err == dialog.ErrCancelled:
		case res.err != nil:
			a.log.Warn("file dialog failed", zap.Error(res.err))
		default:
			if err := a.scene.Open(res.path); err != nil {
				a.log.Error("failed to open mesh", zap.Error(err))
			} else {
				a.watch(res.path)
			}
		}
	default:
	}

	if a.watcher == nil {
		return
	}
	for {
		select {
		case path, ok := <-a.watcher.Changes():
			if !ok {
				a.watcher = nil
				return
			}
			if err := a.scene.Reload(path); err != nil {
				a.log.Error("failed to reload mesh", zap.Error(err))
			}
		default:
			return
		}
	}
}

func (a *App) watch(path string) {
	if a.watcher == nil {
		return
	}
	if err := a.watcher.Add(path); err != nil {
		a.log.Warn("cannot watch mesh", zap.String("path", path), zap.Error(err))
	}
}

func (a *App) update() {
	a.camera.Update()

	if title := a.scene.Title(); title != a.title {
		a.title = title
		a.window.SetTitle(title)
	}
}

// render draws the current frame.
func (a *App) render() {
	a.renderer.Begin(a.camera.ProjectionMatrix(a.renderer.Aspect()), a.camera.ViewMatrix())
	surf := a.renderer.Surface()

	if a.showGrid {
		a.grid.Draw(surf)
	}

	s := a.scene.Current()
	s.Draw(surf)

	if a.showBounds {
		surf.PushMatrix()
		s.ApplyPose(surf)
		debug.DrawBBox(surf, s.Mesh().Bounds(), debug.DefaultBBoxPadding)
		surf.PopMatrix()
	}

	a.renderer.End()
}

func (a *App) screenshot() {
	pixels, w, h := a.renderer.ReadPixels()
	name, err := a.screenshots.CaptureFromPixels(pixels, w, h)
	if err != nil {
		a.log.Error("screenshot failed", zap.Error(err))
		return
	}
	a.log.Info("screenshot saved", zap.String("file", name))
}
