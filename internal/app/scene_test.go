package app

import (
	"bytes"
	"encoding/base64"
	"encoding/binary"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/veandco/go-sdl2/sdl"

	"github.com/Faultbox/shapeview/internal/asset"
	"github.com/Faultbox/shapeview/internal/config"
	"github.com/Faultbox/shapeview/internal/engine/input"
	"github.com/Faultbox/shapeview/internal/params"
	"github.com/Faultbox/shapeview/internal/shape"
)

// writeSoup writes a non-indexed triangle soup as a .gltf file.
func writeSoup(t *testing.T, path string, positions [][3]float32) {
	t.Helper()

	var buf bytes.Buffer
	require.NoError(t, binary.Write(&buf, binary.LittleEndian, positions))

	doc := map[string]any{
		"asset": map[string]any{"version": "2.0"},
		"buffers": []map[string]any{{
			"byteLength": buf.Len(),
			"uri":        "data:application/octet-stream;base64," + base64.StdEncoding.EncodeToString(buf.Bytes()),
		}},
		"bufferViews": []map[string]any{{"buffer": 0, "byteLength": buf.Len()}},
		"accessors": []map[string]any{{
			"bufferView": 0, "componentType": 5126, "count": len(positions), "type": "VEC3",
		}},
		"meshes": []map[string]any{{
			"primitives": []map[string]any{{"attributes": map[string]int{"POSITION": 0}}},
		}},
	}
	data, err := json.Marshal(doc)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, data, 0644))
}

var (
	triangle = [][3]float32{{0, 0, 0}, {1, 0, 0}, {0, 1, 0}}
	square   = [][3]float32{
		{0, 0, 0}, {1, 0, 0}, {1, 1, 0},
		{0, 0, 0}, {1, 1, 0}, {0, 1, 0},
	}
)

func newTestScene(t *testing.T, cfg *config.Config) *Scene {
	t.Helper()
	sc, err := NewScene(cfg, asset.NewManager(asset.DefaultOptions))
	require.NoError(t, err)
	return sc
}

func key(code sdl.Scancode) input.Event {
	return input.Event{Type: input.EventKeyDown, Key: code}
}

func shiftKey(code sdl.Scancode) input.Event {
	return input.Event{Type: input.EventKeyDown, Key: code, Mod: sdl.KMOD_LSHIFT}
}

func TestNewSceneBuiltins(t *testing.T) {
	sc := newTestScene(t, config.Default())

	var got []string
	for _, s := range sc.Shapes() {
		got = append(got, s.Name())
	}
	assert.Equal(t, []string{"Cube", "Sphere", "Cylinder", "Torus"}, got)
	assert.Equal(t, "Cube", sc.Current().Name())
	assert.Empty(t, sc.ModelPaths())
}

func TestNewSceneSelectsConfiguredShape(t *testing.T) {
	cfg := config.Default()
	cfg.Scene.Shape = "Torus"
	sc := newTestScene(t, cfg)
	assert.Equal(t, "Torus", sc.Current().Name())

	cfg.Scene.Shape = "Dodecahedron"
	sc = newTestScene(t, cfg)
	assert.Equal(t, "Cube", sc.Current().Name(), "unknown shape falls back to the first")
}

func TestNewSceneAppliesShadingAndPresets(t *testing.T) {
	cfg := config.Default()
	cfg.Shading.GLSL = true
	cfg.Shading.Toon = true
	cfg.Presets = map[string]params.Preset{
		"Sphere": {
			Params:  map[string]float64{"Ry": 30},
			Options: map[string]bool{shape.OptionWireframe: true},
		},
		"Cube": {Params: map[string]float64{"Nope": 1}},
	}
	sc := newTestScene(t, cfg)

	for _, s := range sc.Shapes() {
		assert.True(t, s.Shading().GLSL.Value, s.Name())
		assert.False(t, s.Shading().Phong.Value, s.Name())
		assert.True(t, s.Shading().Toon.Value, s.Name())
	}

	sphere := sc.Shapes()[1]
	assert.InDelta(t, 30, sphere.Ry.Value, 1e-9)
	assert.True(t, sphere.Wireframe.Value)

	cube := sc.Shapes()[0]
	assert.Zero(t, cube.Ry.Value, "a bad preset leaves the shape untouched")
}

func TestNewSceneWithMesh(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tri.gltf")
	writeSoup(t, path, triangle)

	cfg := config.Default()
	cfg.Scene.Mesh = path
	cfg.Scene.Shape = "tri"
	sc := newTestScene(t, cfg)

	require.Len(t, sc.Shapes(), 5)
	assert.Equal(t, "tri", sc.Current().Name())
	assert.Equal(t, 1, sc.Current().Mesh().PolygonCount())
	assert.Equal(t, []string{path}, sc.ModelPaths())
}

func TestNewSceneMissingMesh(t *testing.T) {
	cfg := config.Default()
	cfg.Scene.Mesh = filepath.Join(t.TempDir(), "missing.gltf")

	_, err := NewScene(cfg, asset.NewManager(asset.DefaultOptions))
	assert.Error(t, err)
}

func TestCycleWraps(t *testing.T) {
	sc := newTestScene(t, config.Default())

	sc.Cycle(-1)
	assert.Equal(t, "Torus", sc.Current().Name())
	sc.Cycle(1)
	assert.Equal(t, "Cube", sc.Current().Name())
	sc.Cycle(6)
	assert.Equal(t, "Cylinder", sc.Current().Name())
}

func TestOpenAddsAndReselects(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "tri.gltf")
	writeSoup(t, path, triangle)
	sc := newTestScene(t, config.Default())

	require.NoError(t, sc.Open(path))
	require.Len(t, sc.Shapes(), 5)
	assert.Equal(t, "tri", sc.Current().Name())

	sc.Cycle(1)
	require.NoError(t, sc.Open(path))
	assert.Len(t, sc.Shapes(), 5, "opening the same file selects the existing shape")
	assert.Equal(t, "tri", sc.Current().Name())

	assert.Error(t, sc.Open(filepath.Join(dir, "missing.gltf")))
	assert.Len(t, sc.Shapes(), 5)
}

func TestReloadBuildsFreshShape(t *testing.T) {
	path := filepath.Join(t.TempDir(), "model.gltf")
	writeSoup(t, path, triangle)
	sc := newTestScene(t, config.Default())
	require.NoError(t, sc.Open(path))

	old := sc.Current()
	old.Tx.Set(3)
	old.Silhouette.Set(true)

	writeSoup(t, path, square)
	require.NoError(t, sc.Reload(path))

	s := sc.Current()
	assert.NotSame(t, old, s)
	assert.Equal(t, 2, s.Mesh().PolygonCount())
	assert.InDelta(t, 3, s.Tx.Value, 1e-9)
	assert.True(t, s.Silhouette.Value)

	f, _ := sc.Panel().Selected()
	assert.Same(t, s.Tx, f, "panel follows the reloaded shape")
}

func TestReloadIgnoresUnknownPath(t *testing.T) {
	sc := newTestScene(t, config.Default())
	before := sc.Current()
	assert.NoError(t, sc.Reload(filepath.Join(t.TempDir(), "other.gltf")))
	assert.Same(t, before, sc.Current())
}

func TestHandleKeyPanelBindings(t *testing.T) {
	sc := newTestScene(t, config.Default())
	cube := sc.Current()

	assert.Equal(t, ActionNone, sc.HandleKey(key(sdl.SCANCODE_RIGHT)))
	assert.InDelta(t, 1, cube.Tx.Value, 1e-9)
	sc.HandleKey(shiftKey(sdl.SCANCODE_RIGHT))
	assert.InDelta(t, 11, cube.Tx.Value, 1e-9)

	repeat := key(sdl.SCANCODE_LEFT)
	repeat.Repeat = true
	sc.HandleKey(repeat)
	assert.InDelta(t, 10, cube.Tx.Value, 1e-9, "nudges auto-repeat")

	sc.HandleKey(key(sdl.SCANCODE_DOWN))
	f, _ := sc.Panel().Selected()
	assert.Same(t, cube.Ty, f)
	sc.HandleKey(key(sdl.SCANCODE_UP))
	sc.HandleKey(key(sdl.SCANCODE_UP))
	_, b := sc.Panel().Selected()
	require.NotNil(t, b)
	assert.Equal(t, "Toon shading", b.Name)

	sc.HandleKey(key(sdl.SCANCODE_SPACE))
	assert.True(t, cube.Shading().Toon.Value)

	sc.HandleKey(key(sdl.SCANCODE_R))
	assert.Zero(t, cube.Tx.Value)
	assert.False(t, cube.Shading().Toon.Value)
}

func TestHandleKeyCyclesShapes(t *testing.T) {
	sc := newTestScene(t, config.Default())

	sc.HandleKey(key(sdl.SCANCODE_TAB))
	assert.Equal(t, "Sphere", sc.Current().Name())
	sc.HandleKey(shiftKey(sdl.SCANCODE_TAB))
	sc.HandleKey(shiftKey(sdl.SCANCODE_TAB))
	assert.Equal(t, "Torus", sc.Current().Name())

	repeat := key(sdl.SCANCODE_TAB)
	repeat.Repeat = true
	sc.HandleKey(repeat)
	assert.Equal(t, "Torus", sc.Current().Name(), "held Tab does not cycle")
}

func TestHandleKeyActions(t *testing.T) {
	tests := []struct {
		name string
		key  sdl.Scancode
		want Action
	}{
		{"escape", sdl.SCANCODE_ESCAPE, ActionQuit},
		{"f12", sdl.SCANCODE_F12, ActionScreenshot},
		{"o", sdl.SCANCODE_O, ActionOpenFile},
		{"g", sdl.SCANCODE_G, ActionToggleGrid},
		{"b", sdl.SCANCODE_B, ActionToggleBounds},
		{"f", sdl.SCANCODE_F, ActionFrame},
		{"z", sdl.SCANCODE_Z, ActionNone},
	}

	sc := newTestScene(t, config.Default())
	for _, tt := range tests {
		assert.Equal(t, tt.want, sc.HandleKey(key(tt.key)), tt.name)
	}
}

func TestTitleShowsShapeAndControl(t *testing.T) {
	sc := newTestScene(t, config.Default())
	sc.Current().Tx.Set(2)

	title := sc.Title()
	assert.True(t, strings.HasPrefix(title, "shapeview - Cube - "), title)
	assert.Contains(t, title, "Tx = 2")
}
