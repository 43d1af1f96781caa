// Package config handles viewer configuration loading and management.
package config

import "github.com/Faultbox/shapeview/internal/params"

// Config holds all viewer settings.
type Config struct {
	Window      WindowConfig             `yaml:"window" toml:"window"`
	Scene       SceneConfig              `yaml:"scene" toml:"scene"`
	Shading     ShadingConfig            `yaml:"shading" toml:"shading"`
	Presets     map[string]params.Preset `yaml:"presets,omitempty" toml:"presets,omitempty"`
	Screenshots ScreenshotConfig         `yaml:"screenshots" toml:"screenshots"`
	Logging     LoggingConfig            `yaml:"logging" toml:"logging"`
}

// WindowConfig holds display settings.
type WindowConfig struct {
	Title      string `yaml:"title" toml:"title"`
	Width      int    `yaml:"width" toml:"width"`
	Height     int    `yaml:"height" toml:"height"`
	Fullscreen bool   `yaml:"fullscreen" toml:"fullscreen"`
	VSync      bool   `yaml:"vsync" toml:"vsync"`
}

// SceneConfig selects what is shown at startup and how the camera frames it.
type SceneConfig struct {
	Shape          string  `yaml:"shape" toml:"shape"`
	Mesh           string  `yaml:"mesh" toml:"mesh"` // glTF/GLB file, shown as an extra shape
	Watch          bool    `yaml:"watch" toml:"watch"`
	CameraDistance float64 `yaml:"camera_distance" toml:"camera_distance"`
	FieldOfView    float64 `yaml:"fov" toml:"fov"` // degrees
}

// ShadingConfig holds the initial shader toggles of every shape.
type ShadingConfig struct {
	GLSL  bool `yaml:"glsl" toml:"glsl"`
	Phong bool `yaml:"phong" toml:"phong"`
	Toon  bool `yaml:"toon" toml:"toon"`
}

// ScreenshotConfig holds screenshot output settings.
type ScreenshotConfig struct {
	Dir string `yaml:"dir" toml:"dir"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level" toml:"level"`
	LogFile string `yaml:"log_file" toml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Window: WindowConfig{
			Title:  "shapeview",
			Width:  1024,
			Height: 768,
			VSync:  true,
		},
		Scene: SceneConfig{
			Shape:          "Cube",
			CameraDistance: 8,
			FieldOfView:    45,
		},
		Screenshots: ScreenshotConfig{
			Dir: "screenshots",
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// Preset returns the overrides configured for the named shape.
func (c *Config) Preset(shape string) (params.Preset, bool) {
	pr, ok := c.Presets[shape]
	return pr, ok
}
