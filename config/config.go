// Package config provides configuration loading and access for the glyph field.
package config

import (
	_ "embed"
	"errors"
	"fmt"
	"image/color"
	"os"
	"time"

	"github.com/lucasb-eyer/go-colorful"
	"gopkg.in/yaml.v3"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// Config holds all configuration parameters.
type Config struct {
	Screen    ScreenConfig    `yaml:"screen"`
	Text      TextConfig      `yaml:"text"`
	Particle  ParticleConfig  `yaml:"particle"`
	Options   OptionsConfig   `yaml:"options"`
	Mouse     MouseConfig     `yaml:"mouse"`
	Seeding   SeedingConfig   `yaml:"seeding"`
	Headless  HeadlessConfig  `yaml:"headless"`
	Telemetry TelemetryConfig `yaml:"telemetry"`

	// Derived values computed after loading
	Derived DerivedConfig `yaml:"-"`
}

// ScreenConfig holds display settings. The canvas matches the screen size.
type ScreenConfig struct {
	Width     int `yaml:"width"`
	Height    int `yaml:"height"`
	TargetFPS int `yaml:"target_fps"`
}

// TextConfig holds glyph rasterization parameters.
type TextConfig struct {
	Initial        string  `yaml:"initial"`         // Word shown at startup
	FontSize       float64 `yaml:"font_size"`       // Glyph size in pixels
	BaselineOffset float64 `yaml:"baseline_offset"` // Baseline shift from the vertical center
}

// ParticleConfig holds per-particle physics and appearance.
type ParticleConfig struct {
	Density    int      `yaml:"density"`     // Grid step and particle diameter
	Stiffness  float64  `yaml:"stiffness"`   // Spring constant k
	RestOffset float64  `yaml:"rest_offset"` // Spring rest length
	Friction   float64  `yaml:"friction"`    // Velocity multiplier per tick (0 = none)
	Color      string   `yaml:"color"`       // Default color (hex)
	Colors     []string `yaml:"colors"`      // Random color palette (hex)
}

// OptionsConfig holds the initial values of the runtime toggles.
type OptionsConfig struct {
	Bold        bool `yaml:"bold"`
	Italic      bool `yaml:"italic"`
	RandomColor bool `yaml:"random_color"`
}

// MouseConfig holds cursor repulsion parameters.
type MouseConfig struct {
	Radius      float64 `yaml:"radius"`       // Influence radius added to the particle radius
	Force       float64 `yaml:"force"`        // Repulsion magnitude (divided by distance)
	MinDistance float64 `yaml:"min_distance"` // Distance clamp for the 1/d falloff
}

// SeedingConfig holds the optional initial scatter applied at seeding.
type SeedingConfig struct {
	ScatterSpeed float64 `yaml:"scatter_speed"` // Initial speed (0 = particles start at rest)
	ScatterScale float64 `yaml:"scatter_scale"` // Noise frequency for scatter direction
}

// HeadlessConfig holds parameters for runs without a window.
type HeadlessConfig struct {
	SweepTicks int `yaml:"sweep_ticks"` // Ticks for the scripted cursor to cross the canvas
}

// TelemetryConfig holds telemetry parameters.
type TelemetryConfig struct {
	StatsWindow         float64 `yaml:"stats_window"` // Seconds per stats window
	PerfCollectorWindow int     `yaml:"perf_collector_window"`
}

// DerivedConfig holds computed values derived from the loaded config.
type DerivedConfig struct {
	Color         color.RGBA    // Particle.Color parsed
	Palette       []color.RGBA  // Particle.Colors parsed
	FrameInterval time.Duration // 1s / TargetFPS
	WindowTicks   int           // Telemetry.StatsWindow in ticks
}

// Default returns the embedded defaults.
func Default() (*Config, error) {
	return Load("")
}

// Load loads configuration from a YAML file, merging with embedded defaults.
// If path is empty, only embedded defaults are used.
func Load(path string) (*Config, error) {
	cfg := &Config{}
	if err := yaml.Unmarshal(defaultsYAML, cfg); err != nil {
		return nil, fmt.Errorf("parsing embedded defaults: %w", err)
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		if err := Merge(cfg, data); err != nil {
			return nil, err
		}
	}

	if err := cfg.Prepare(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Merge overlays YAML data onto cfg. Only fields present in data are overwritten.
func Merge(cfg *Config, data []byte) error {
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parsing config file: %w", err)
	}
	return nil
}

// Prepare validates the config and computes derived values.
// Call it again after changing fields by hand.
func (c *Config) Prepare() error {
	if err := c.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return c.computeDerived()
}

// Validate checks value ranges.
func (c *Config) Validate() error {
	var errs []error
	if c.Screen.Width <= 0 || c.Screen.Height <= 0 {
		errs = append(errs, fmt.Errorf("screen size must be positive, got %dx%d", c.Screen.Width, c.Screen.Height))
	}
	if c.Screen.TargetFPS <= 0 {
		errs = append(errs, fmt.Errorf("screen.target_fps must be positive, got %d", c.Screen.TargetFPS))
	}
	if c.Particle.Density <= 0 {
		errs = append(errs, fmt.Errorf("particle.density must be positive, got %d", c.Particle.Density))
	}
	if c.Particle.Friction < 0 || c.Particle.Friction > 1 {
		errs = append(errs, fmt.Errorf("particle.friction must be in [0, 1], got %v", c.Particle.Friction))
	}
	if c.Mouse.Radius < 0 {
		errs = append(errs, fmt.Errorf("mouse.radius must not be negative, got %v", c.Mouse.Radius))
	}
	if c.Mouse.MinDistance < 0 {
		errs = append(errs, fmt.Errorf("mouse.min_distance must not be negative, got %v", c.Mouse.MinDistance))
	}
	if c.Text.FontSize <= 0 {
		errs = append(errs, fmt.Errorf("text.font_size must be positive, got %v", c.Text.FontSize))
	}
	return errors.Join(errs...)
}

// computeDerived calculates values derived from loaded config.
func (c *Config) computeDerived() error {
	col, err := ParseColor(c.Particle.Color)
	if err != nil {
		return fmt.Errorf("particle.color: %w", err)
	}
	c.Derived.Color = col

	c.Derived.Palette = make([]color.RGBA, 0, len(c.Particle.Colors))
	for i, s := range c.Particle.Colors {
		col, err := ParseColor(s)
		if err != nil {
			return fmt.Errorf("particle.colors[%d]: %w", i, err)
		}
		c.Derived.Palette = append(c.Derived.Palette, col)
	}

	c.Derived.FrameInterval = time.Second / time.Duration(c.Screen.TargetFPS)

	c.Derived.WindowTicks = int(c.Telemetry.StatsWindow * float64(c.Screen.TargetFPS))
	if c.Derived.WindowTicks < 1 {
		c.Derived.WindowTicks = 1
	}
	return nil
}

// ParseColor parses a hex color such as "#ef476f" into an opaque RGBA.
func ParseColor(s string) (color.RGBA, error) {
	c, err := colorful.Hex(s)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("parsing color %q: %w", s, err)
	}
	r, g, b := c.RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 255}, nil
}

// WriteYAML writes the configuration to a YAML file.
func (c *Config) WriteYAML(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}
