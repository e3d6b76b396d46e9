// Package config loads the optional calculator configuration file.
package config

import (
	"fmt"
	"image/color"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/philipparndt/lebna/pkg/render"
	"gopkg.in/yaml.v3"
)

// Config is the complete application configuration
type Config struct {
	Canvas Canvas `toml:"canvas" yaml:"canvas"`
	Style  Style  `toml:"style" yaml:"style"`
	Log    Log    `toml:"log" yaml:"log"`
}

// Canvas is the size of the drawing surface
type Canvas struct {
	Width  int `toml:"width" yaml:"width"`
	Height int `toml:"height" yaml:"height"`
}

// Style holds the drawing colors as #RRGGBB strings
type Style struct {
	Background  string  `toml:"background" yaml:"background"`
	Fill        string  `toml:"fill" yaml:"fill"`
	Stroke      string  `toml:"stroke" yaml:"stroke"`
	StrokeWidth float64 `toml:"stroke_width" yaml:"stroke_width"`
	Labels      bool    `toml:"labels" yaml:"labels"`
}

// Log configures diagnostic output
type Log struct {
	Level string `toml:"level" yaml:"level"`
}

var logLevels = []string{"debug", "info", "warn", "error"}

// Default returns the built-in configuration
func Default() Config {
	return Config{
		Canvas: Canvas{Width: 400, Height: 200},
		Style: Style{
			Background:  "#FFFFFF",
			Fill:        "#FFD700",
			Stroke:      "#000000",
			StrokeWidth: 1,
		},
		Log: Log{Level: "info"},
	}
}

// Load reads a TOML or YAML file over the defaults. An empty path returns
// the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config: %w", err)
	}

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		if err := toml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("failed to parse %s: %w", path, err)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("failed to parse %s: %w", path, err)
		}
	default:
		return Config{}, fmt.Errorf("unsupported config format %q (use .toml, .yaml or .yml)", ext)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks value ranges and color syntax
func (c Config) Validate() error {
	if c.Canvas.Width <= 0 || c.Canvas.Height <= 0 {
		return fmt.Errorf("canvas size must be positive, got %dx%d", c.Canvas.Width, c.Canvas.Height)
	}
	if c.Style.StrokeWidth < 0 {
		return fmt.Errorf("stroke_width must not be negative, got %v", c.Style.StrokeWidth)
	}
	if _, err := c.Style.colors(); err != nil {
		return err
	}
	if !validLevel(c.Log.Level) {
		return fmt.Errorf("unknown log level %q (use %s)", c.Log.Level, strings.Join(logLevels, ", "))
	}
	return nil
}

// RenderOptions converts the configuration into drawing options
func (c Config) RenderOptions() (render.Options, error) {
	cols, err := c.Style.colors()
	if err != nil {
		return render.Options{}, err
	}
	return render.Options{
		Width:       float64(c.Canvas.Width),
		Height:      float64(c.Canvas.Height),
		Background:  cols[0],
		Fill:        cols[1],
		Stroke:      cols[2],
		StrokeWidth: c.Style.StrokeWidth,
		Labels:      c.Style.Labels,
	}, nil
}

func (s Style) colors() ([3]color.RGBA, error) {
	var out [3]color.RGBA
	for i, field := range []struct{ name, value string }{
		{"background", s.Background},
		{"fill", s.Fill},
		{"stroke", s.Stroke},
	} {
		c, err := render.ParseHexColor(field.value)
		if err != nil {
			return out, fmt.Errorf("style.%s: %w", field.name, err)
		}
		out[i] = c
	}
	return out, nil
}

func validLevel(level string) bool {
	for _, l := range logLevels {
		if strings.EqualFold(level, l) {
			return true
		}
	}
	return false
}
