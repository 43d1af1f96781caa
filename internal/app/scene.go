package app

import (
	"fmt"
	"path/filepath"

	"github.com/veandco/go-sdl2/sdl"
	"go.uber.org/zap"

	"github.com/Faultbox/shapeview/internal/asset"
	"github.com/Faultbox/shapeview/internal/config"
	"github.com/Faultbox/shapeview/internal/engine/input"
	"github.com/Faultbox/shapeview/internal/logger"
	"github.com/Faultbox/shapeview/internal/shape"
)

// Action is a key binding the scene cannot carry out on its own.
type Action int

const (
	ActionNone Action = iota
	ActionQuit
	ActionScreenshot
	ActionOpenFile
	ActionToggleGrid
	ActionToggleBounds
	ActionFrame
)

// bigStep multiplies Left/Right nudges while shift is held.
const bigStep = 10

// Scene is the list of shapes the viewer cycles through and the panel
// bound to the current one. It never touches GL.
type Scene struct {
	cfg     *config.Config
	assets  *asset.Manager
	shapes  []*shape.Shape
	current int
	panel   *Panel
	log     *zap.Logger
}

// NewScene builds the built-in shapes plus the configured mesh file and
// selects the configured shape.
func NewScene(cfg *config.Config, assets *asset.Manager) (*Scene, error) {
	sc := &Scene{
		cfg:    cfg,
		assets: assets,
		panel:  NewPanel(),
		log:    logger.Named("scene"),
	}

	variants := shape.Builtin()
	if cfg.Scene.Mesh != "" {
		variants = append(variants, asset.Model{Path: cfg.Scene.Mesh, Manager: assets})
	}
	for _, v := range variants {
		s, err := sc.newShape(v)
		if err != nil {
			return nil, err
		}
		sc.shapes = append(sc.shapes, s)
	}

	if i, ok := sc.find(cfg.Scene.Shape); ok {
		sc.current = i
	} else if cfg.Scene.Shape != "" {
		sc.log.Warn("unknown initial shape", zap.String("shape", cfg.Scene.Shape))
	}
	sc.panel.Bind(sc.Current())
	return sc, nil
}

// newShape builds a shape and applies the configured shading toggles and
// preset. A bad preset is logged, not fatal.
func (sc *Scene) newShape(v shape.Variant) (*shape.Shape, error) {
	s, err := shape.New(v)
	if err != nil {
		return nil, err
	}

	b := s.Shading()
	b.GLSL.Set(sc.cfg.Shading.GLSL)
	b.Phong.Set(sc.cfg.Shading.Phong)
	b.Toon.Set(sc.cfg.Shading.Toon)

	if pr, ok := sc.cfg.Preset(s.Name()); ok {
		if err := s.Apply(pr); err != nil {
			sc.log.Warn("ignoring preset", zap.Error(err))
		}
	}
	return s, nil
}

func (sc *Scene) find(name string) (int, bool) {
	for i, s := range sc.shapes {
		if s.Name() == name {
			return i, true
		}
	}
	return 0, false
}

// Shapes returns the shapes in cycling order.
func (sc *Scene) Shapes() []*shape.Shape {
	return sc.shapes
}

// Current returns the selected shape.
func (sc *Scene) Current() *shape.Shape {
	return sc.shapes[sc.current]
}

// Panel returns the panel bound to the current shape.
func (sc *Scene) Panel() *Panel {
	return sc.panel
}

// Cycle selects the shape d places away, wrapping around.
func (sc *Scene) Cycle(d int) {
	n := len(sc.shapes)
	sc.current = ((sc.current+d)%n + n) % n
	sc.panel.Bind(sc.Current())
	sc.log.Debug("shape selected", zap.String("shape", sc.Current().Name()))
}

// Open selects the shape for a mesh file, loading it first if it is not
// in the list yet.
func (sc *Scene) Open(path string) error {
	if i, ok := sc.modelIndex(path); ok {
		sc.current = i
		sc.panel.Bind(sc.Current())
		return nil
	}

	s, err := sc.newShape(asset.Model{Path: path, Manager: sc.assets})
	if err != nil {
		return fmt.Errorf("opening %s: %w", path, err)
	}
	sc.shapes = append(sc.shapes, s)
	sc.current = len(sc.shapes) - 1
	sc.panel.Bind(s)
	sc.log.Info("mesh opened", zap.String("path", path), zap.Int("polygons", s.Mesh().PolygonCount()))
	return nil
}

// Reload rebuilds the shape of a changed mesh file as a fresh instance,
// carrying its control values over. Paths that no shape uses are ignored.
func (sc *Scene) Reload(path string) error {
	i, ok := sc.modelIndex(path)
	if !ok {
		return nil
	}
	old := sc.shapes[i]
	if sc.assets != nil {
		sc.assets.Invalidate(path)
	}

	s, err := shape.New(old.Variant())
	if err != nil {
		return fmt.Errorf("reloading %s: %w", path, err)
	}
	if err := s.Apply(old.Preset()); err != nil {
		return fmt.Errorf("reloading %s: %w", path, err)
	}

	sc.shapes[i] = s
	if i == sc.current {
		sc.panel.Bind(s)
	}
	sc.log.Info("mesh reloaded", zap.String("path", path), zap.Int("polygons", s.Mesh().PolygonCount()))
	return nil
}

// ModelPaths returns the files behind the mesh shapes.
func (sc *Scene) ModelPaths() []string {
	var paths []string
	for _, s := range sc.shapes {
		if m, ok := s.Variant().(asset.Model); ok {
			paths = append(paths, m.Path)
		}
	}
	return paths
}

func (sc *Scene) modelIndex(path string) (int, bool) {
	want := absPath(path)
	for i, s := range sc.shapes {
		if m, ok := s.Variant().(asset.Model); ok && absPath(m.Path) == want {
			return i, true
		}
	}
	return 0, false
}

func absPath(path string) string {
	if abs, err := filepath.Abs(path); err == nil {
		return abs
	}
	return filepath.Clean(path)
}

// HandleKey applies the panel and shape bindings of a key press and
// returns the action left for the caller.
func (sc *Scene) HandleKey(ev input.Event) Action {
	steps := 1.0
	if ev.Shift() {
		steps = bigStep
	}

	switch ev.Key {
	case sdl.SCANCODE_UP:
		sc.panel.Prev()
	case sdl.SCANCODE_DOWN:
		sc.panel.Next()
	case sdl.SCANCODE_LEFT:
		sc.panel.Nudge(-steps)
	case sdl.SCANCODE_RIGHT:
		sc.panel.Nudge(steps)
	}
	if ev.Repeat {
		return ActionNone
	}

	switch ev.Key {
	case sdl.SCANCODE_ESCAPE:
		return ActionQuit
	case sdl.SCANCODE_TAB:
		if ev.Shift() {
			sc.Cycle(-1)
		} else {
			sc.Cycle(1)
		}
	case sdl.SCANCODE_SPACE:
		sc.panel.Toggle()
	case sdl.SCANCODE_R:
		sc.panel.Reset()
	case sdl.SCANCODE_O:
		return ActionOpenFile
	case sdl.SCANCODE_F:
		return ActionFrame
	case sdl.SCANCODE_G:
		return ActionToggleGrid
	case sdl.SCANCODE_B:
		return ActionToggleBounds
	case sdl.SCANCODE_F12:
		return ActionScreenshot
	}
	return ActionNone
}

// Title is the window title for the current state.
func (sc *Scene) Title() string {
	return fmt.Sprintf("%s - %s - %s", sc.cfg.Window.Title, sc.Current().Name(), sc.panel.Label())
}
