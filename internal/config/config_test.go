package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Window.Width != 1024 {
		t.Errorf("expected width 1024, got %d", cfg.Window.Width)
	}
	if cfg.Window.Height != 768 {
		t.Errorf("expected height 768, got %d", cfg.Window.Height)
	}
	if cfg.Window.Fullscreen {
		t.Error("expected fullscreen to be false by default")
	}
	if !cfg.Window.VSync {
		t.Error("expected vsync to be true by default")
	}

	if cfg.Scene.Shape != "Cube" {
		t.Errorf("expected initial shape Cube, got %s", cfg.Scene.Shape)
	}
	if cfg.Scene.FieldOfView != 45 {
		t.Errorf("expected fov 45, got %g", cfg.Scene.FieldOfView)
	}

	if cfg.Shading.GLSL || cfg.Shading.Phong || cfg.Shading.Toon {
		t.Error("expected all shader toggles off by default")
	}

	if cfg.Logging.Level != "info" {
		t.Errorf("expected log level 'info', got %s", cfg.Logging.Level)
	}
	if cfg.Logging.LogFile != "" {
		t.Errorf("expected empty log file, got %s", cfg.Logging.LogFile)
	}

	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should validate: %v", err)
	}
}

func TestLoadFromFile(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	yamlContent := `
window:
  width: 1920
  height: 1080
  fullscreen: true
  vsync: false

scene:
  shape: Torus
  mesh: models/bunny.glb
  watch: true
  camera_distance: 12.5

shading:
  glsl: true
  toon: true

presets:
  Torus:
    params:
      Shininess: 80
      Color: 0.6
    options:
      "Draw wireframe": true

logging:
  level: "debug"
  log_file: "shapeview.log"
`

	if err := os.WriteFile(configPath, []byte(yamlContent), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg := Default()
	if err := loadFromFile(cfg, configPath); err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if cfg.Window.Width != 1920 {
		t.Errorf("expected width 1920, got %d", cfg.Window.Width)
	}
	if !cfg.Window.Fullscreen {
		t.Error("expected fullscreen to be true")
	}
	if cfg.Window.VSync {
		t.Error("expected vsync to be false")
	}
	if cfg.Window.Title != "shapeview" {
		t.Errorf("expected title to keep its default, got %q", cfg.Window.Title)
	}

	if cfg.Scene.Shape != "Torus" {
		t.Errorf("expected shape Torus, got %s", cfg.Scene.Shape)
	}
	if cfg.Scene.Mesh != "models/bunny.glb" || !cfg.Scene.Watch {
		t.Errorf("unexpected mesh settings: %+v", cfg.Scene)
	}
	if cfg.Scene.CameraDistance != 12.5 {
		t.Errorf("expected camera distance 12.5, got %g", cfg.Scene.CameraDistance)
	}
	if cfg.Scene.FieldOfView != 45 {
		t.Errorf("expected fov to keep its default, got %g", cfg.Scene.FieldOfView)
	}

	if !cfg.Shading.GLSL || cfg.Shading.Phong || !cfg.Shading.Toon {
		t.Errorf("unexpected shading toggles: %+v", cfg.Shading)
	}

	pr, ok := cfg.Preset("Torus")
	if !ok {
		t.Fatal("expected a Torus preset")
	}
	if pr.Params["Shininess"] != 80 || pr.Params["Color"] != 0.6 {
		t.Errorf("unexpected preset params: %v", pr.Params)
	}
	if !pr.Options["Draw wireframe"] {
		t.Errorf("unexpected preset options: %v", pr.Options)
	}
	if _, ok := cfg.Preset("Cube"); ok {
		t.Error("expected no Cube preset")
	}

	if cfg.Logging.Level != "debug" {
		t.Errorf("expected log level 'debug', got %s", cfg.Logging.Level)
	}
	if cfg.Logging.LogFile != "shapeview.log" {
		t.Errorf("expected log file 'shapeview.log', got %s", cfg.Logging.LogFile)
	}
}

func TestLoadFromTOML(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.toml")

	tomlContent := `
[window]
width = 800
height = 600

[scene]
shape = "Sphere"
fov = 60.0

[shading]
phong = true

[presets.Sphere.params]
Ka = 0.4

[presets.Sphere.options]
"Smooth shading" = true
`

	if err := os.WriteFile(configPath, []byte(tomlContent), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg := Default()
	if err := loadFromFile(cfg, configPath); err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if cfg.Window.Width != 800 || cfg.Window.Height != 600 {
		t.Errorf("expected 800x600, got %dx%d", cfg.Window.Width, cfg.Window.Height)
	}
	if cfg.Scene.Shape != "Sphere" {
		t.Errorf("expected shape Sphere, got %s", cfg.Scene.Shape)
	}
	if cfg.Scene.FieldOfView != 60 {
		t.Errorf("expected fov 60, got %g", cfg.Scene.FieldOfView)
	}
	if cfg.Scene.CameraDistance != 8 {
		t.Errorf("expected camera distance to keep its default, got %g", cfg.Scene.CameraDistance)
	}
	if !cfg.Shading.Phong {
		t.Error("expected phong toggle on")
	}

	pr, ok := cfg.Preset("Sphere")
	if !ok {
		t.Fatal("expected a Sphere preset")
	}
	if pr.Params["Ka"] != 0.4 {
		t.Errorf("expected Ka 0.4, got %v", pr.Params["Ka"])
	}
	if !pr.Options["Smooth shading"] {
		t.Errorf("expected smooth shading preset, got %v", pr.Options)
	}
}

func TestLoadFromFileInvalid(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "invalid.yaml")

	invalidYAML := `
window:
  width: not a number
  invalid syntax here
`

	if err := os.WriteFile(configPath, []byte(invalidYAML), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg := Default()
	err := loadFromFile(cfg, configPath)
	if err == nil {
		t.Error("expected error loading invalid YAML, got nil")
	}
}

func TestLoadFromFileUnknownFormat(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.ini")
	if err := os.WriteFile(configPath, []byte("width=1\n"), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	err := loadFromFile(Default(), configPath)
	if !errors.Is(err, ErrFormat) {
		t.Errorf("expected ErrFormat, got %v", err)
	}
}

func TestLoadFromFileMissing(t *testing.T) {
	cfg := Default()
	err := loadFromFile(cfg, "/nonexistent/path/config.yaml")
	if err == nil {
		t.Error("expected error loading missing file, got nil")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero width", func(c *Config) { c.Window.Width = 0 }},
		{"negative height", func(c *Config) { c.Window.Height = -1 }},
		{"flat fov", func(c *Config) { c.Scene.FieldOfView = 180 }},
		{"camera at target", func(c *Config) { c.Scene.CameraDistance = 0 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("expected validation error")
			}
		})
	}
}

func TestConfigDir(t *testing.T) {
	dir := ConfigDir()

	// Actual path depends on OS
	if dir == "" {
		t.Error("ConfigDir returned empty string")
	}

	if !filepath.IsAbs(dir) {
		t.Errorf("ConfigDir should return absolute path, got %s", dir)
	}
}

func TestFindConfigFile(t *testing.T) {
	tmpDir := t.TempDir()
	t.Chdir(tmpDir)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(tmpDir, "xdg"))

	path := findConfigFile()
	if path != "" {
		t.Errorf("expected empty path when no config exists, got %s", path)
	}

	if err := os.WriteFile(filepath.Join(tmpDir, "config.toml"), []byte("[window]\nwidth = 800\n"), 0644); err != nil {
		t.Fatalf("failed to create test config: %v", err)
	}

	path = findConfigFile()
	if filepath.Base(path) != "config.toml" {
		t.Errorf("expected to find config.toml in current directory, got %q", path)
	}
}

func TestApplyFlags(t *testing.T) {
	tests := []struct {
		name     string
		setup    func()
		verify   func(*Config)
		teardown func()
	}{
		{
			name:  "debug flag",
			setup: func() { *flagDebug = true },
			verify: func(cfg *Config) {
				if cfg.Logging.Level != "debug" {
					t.Errorf("expected log level 'debug', got %s", cfg.Logging.Level)
				}
			},
			teardown: func() { *flagDebug = false },
		},
		{
			name:  "shape flag",
			setup: func() { *flagShape = "Cylinder" },
			verify: func(cfg *Config) {
				if cfg.Scene.Shape != "Cylinder" {
					t.Errorf("expected shape Cylinder, got %s", cfg.Scene.Shape)
				}
			},
			teardown: func() { *flagShape = "" },
		},
		{
			name:  "mesh flag",
			setup: func() { *flagMesh = "teapot.gltf" },
			verify: func(cfg *Config) {
				if cfg.Scene.Mesh != "teapot.gltf" {
					t.Errorf("expected mesh teapot.gltf, got %s", cfg.Scene.Mesh)
				}
			},
			teardown: func() { *flagMesh = "" },
		},
		{
			name:  "windowed flag",
			setup: func() { *flagWindowed = true },
			verify: func(cfg *Config) {
				if cfg.Window.Fullscreen {
					t.Error("expected fullscreen to be false with windowed flag")
				}
			},
			teardown: func() { *flagWindowed = false },
		},
		{
			name:  "fullscreen flag",
			setup: func() { *flagFullscreen = true },
			verify: func(cfg *Config) {
				if !cfg.Window.Fullscreen {
					t.Error("expected fullscreen to be true with fullscreen flag")
				}
			},
			teardown: func() { *flagFullscreen = false },
		},
		{
			name: "width and height flags",
			setup: func() {
				*flagWidth = 2560
				*flagHeight = 1440
			},
			verify: func(cfg *Config) {
				if cfg.Window.Width != 2560 {
					t.Errorf("expected width 2560, got %d", cfg.Window.Width)
				}
				if cfg.Window.Height != 1440 {
					t.Errorf("expected height 1440, got %d", cfg.Window.Height)
				}
			},
			teardown: func() {
				*flagWidth = 0
				*flagHeight = 0
			},
		},
		{
			name:  "glsl flag",
			setup: func() { *flagGLSL = true },
			verify: func(cfg *Config) {
				if !cfg.Shading.GLSL {
					t.Error("expected GLSL shading with glsl flag")
				}
			},
			teardown: func() { *flagGLSL = false },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup()
			defer tt.teardown()

			cfg := Default()
			applyFlags(cfg)

			tt.verify(cfg)
		})
	}
}

func TestLoadPriority(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	yamlContent := `
window:
  width: 1600
  height: 900
`

	if err := os.WriteFile(configPath, []byte(yamlContent), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	// Flag overrides the file
	*flagConfig = configPath
	*flagWidth = 1920
	defer func() {
		*flagConfig = ""
		*flagWidth = 0
	}()

	cfg, err := Load()
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if cfg.Window.Width != 1920 {
		t.Errorf("expected width 1920 from flag, got %d", cfg.Window.Width)
	}

	if cfg.Window.Height != 900 {
		t.Errorf("expected height 900 from file, got %d", cfg.Window.Height)
	}
}

func TestSaveToRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")

	cfg := Default()
	cfg.Scene.Shape = "Sphere"

	if err := cfg.SaveTo(path); err != nil {
		t.Fatalf("SaveTo failed: %v", err)
	}

	loaded := Default()
	if err := loadFromFile(loaded, path); err != nil {
		t.Fatalf("failed to reload saved config: %v", err)
	}
	if loaded.Scene.Shape != "Sphere" {
		t.Errorf("expected saved shape Sphere, got %s", loaded.Scene.Shape)
	}
}
