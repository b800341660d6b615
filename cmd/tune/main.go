// Physics tuning tool - live glyph field with sliders for the spring and cursor parameters.
//
// Usage: go run ./cmd/tune [-config path] [-text word]
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"math/rand"
	"os"
	"strings"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"
	"gopkg.in/yaml.v3"

	"github.com/pthm-cable/glyphfield/config"
	"github.com/pthm-cable/glyphfield/glyph"
	"github.com/pthm-cable/glyphfield/renderer"
	"github.com/pthm-cable/glyphfield/state"
	"github.com/pthm-cable/glyphfield/systems"
)

const panelWidth = 300

// tunables is the subset of config written out by the C key.
type tunables struct {
	Particle struct {
		Density    int     `yaml:"density"`
		Stiffness  float64 `yaml:"stiffness"`
		RestOffset float64 `yaml:"rest_offset"`
		Friction   float64 `yaml:"friction"`
	} `yaml:"particle"`
	Mouse struct {
		Radius float64 `yaml:"radius"`
		Force  float64 `yaml:"force"`
	} `yaml:"mouse"`
}

// slider draws a labelled slider and returns the new value.
func slider(x, y *float32, label string, value, min, max float32, format string) float32 {
	rl.DrawText(label, int32(*x), int32(*y), 14, rl.Gray)
	*y += 18
	v := gui.SliderBar(rl.Rectangle{X: *x, Y: *y, Width: panelWidth - 90, Height: 20}, "", "", value, min, max)
	rl.DrawText(fmt.Sprintf(format, v), int32(*x+panelWidth-80), int32(*y+2), 16, rl.DarkGray)
	*y += 34
	return v
}

func main() {
	configPath := flag.String("config", "", "Path to config.yaml (empty = use defaults)")
	text := flag.String("text", "", "Word to tune against (empty = use config)")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	if *text != "" {
		cfg.Text.Initial = *text
	}

	fieldWidth := cfg.Screen.Width
	rl.InitWindow(int32(fieldWidth+panelWidth), int32(cfg.Screen.Height), "Glyph Field Tuning")
	defer rl.CloseWindow()
	rl.SetTargetFPS(int32(cfg.Screen.TargetFPS))

	glyphs, err := glyph.New(cfg)
	if err != nil {
		slog.Error("failed to create rasterizer", "error", err)
		os.Exit(1)
	}
	defer glyphs.Close()

	stage := &state.Stage{}
	opts := state.DefaultOptions()
	field := systems.NewField(cfg, stage, &opts, glyphs, rand.New(rand.NewSource(1)))
	particles := renderer.NewParticleRenderer()

	for !rl.WindowShouldClose() {
		pos := rl.GetMousePosition()
		if int(pos.X) < fieldWidth && rl.IsCursorOnScreen() {
			field.SetCursor(float64(pos.X), float64(pos.Y))
		} else {
			field.ClearCursor()
		}

		if !stage.IsPopulated() {
			field.Populate()
		}
		field.Update()

		rl.BeginDrawing()
		rl.ClearBackground(rl.RayWhite)

		particles.Begin()
		field.Draw(particles)

		// Panel
		panelX := float32(fieldWidth + 15)
		panelY := float32(15)
		rl.DrawRectangle(int32(fieldWidth), 0, panelWidth, int32(cfg.Screen.Height), rl.Color{R: 235, G: 235, B: 235, A: 255})
		rl.DrawText("Field Parameters", int32(panelX), int32(panelY), 20, rl.DarkGray)
		panelY += 35

		// Spring parameters are baked into particles at seeding, so changes reseed
		pc := &cfg.Particle
		before := *pc
		pc.Density = int(slider(&panelX, &panelY, "Density (grid step, px)", float32(pc.Density), 2, 20, "%.0f"))
		pc.Stiffness = float64(slider(&panelX, &panelY, "Stiffness (spring k)", float32(pc.Stiffness), 0.001, 0.5, "%.3f"))
		pc.RestOffset = float64(slider(&panelX, &panelY, "Rest offset (px)", float32(pc.RestOffset), 0, 20, "%.1f"))
		pc.Friction = float64(slider(&panelX, &panelY, "Friction (velocity scale)", float32(pc.Friction), 0, 1, "%.2f"))
		if pc.Density != before.Density || pc.Stiffness != before.Stiffness ||
			pc.RestOffset != before.RestOffset || pc.Friction != before.Friction {
			field.Reset()
		}

		// Cursor parameters are read every tick
		cfg.Mouse.Radius = float64(slider(&panelX, &panelY, "Mouse radius (px)", float32(cfg.Mouse.Radius), 0, 200, "%.0f"))
		cfg.Mouse.Force = float64(slider(&panelX, &panelY, "Mouse force", float32(cfg.Mouse.Force), 0, 200, "%.0f"))

		if gui.Button(rl.Rectangle{X: panelX, Y: panelY, Width: 120, Height: 30}, "Reseed") {
			field.Reset()
		}
		panelY += 45

		t := currentTunables(cfg)
		out, err := yaml.Marshal(t)
		if err != nil {
			slog.Error("failed to marshal tunables", "error", err)
			os.Exit(1)
		}

		rl.DrawText("YAML Config:", int32(panelX), int32(panelY), 16, rl.DarkGray)
		panelY += 25
		for _, line := range strings.Split(strings.TrimSpace(string(out)), "\n") {
			rl.DrawText(line, int32(panelX), int32(panelY), 14, rl.Gray)
			panelY += 16
		}

		rl.DrawText(fmt.Sprintf("%d particles | FPS %d", field.Len(), rl.GetFPS()), int32(panelX), int32(cfg.Screen.Height-50), 14, rl.Gray)
		rl.DrawText("Press C to copy YAML to clipboard", int32(panelX), int32(cfg.Screen.Height-30), 12, rl.LightGray)

		if rl.IsKeyPressed(rl.KeyC) {
			rl.SetClipboardText(string(out))
		}

		rl.EndDrawing()
	}
}

func currentTunables(cfg *config.Config) tunables {
	var t tunables
	t.Particle.Density = cfg.Particle.Density
	t.Particle.Stiffness = cfg.Particle.Stiffness
	t.Particle.RestOffset = cfg.Particle.RestOffset
	t.Particle.Friction = cfg.Particle.Friction
	t.Mouse.Radius = cfg.Mouse.Radius
	t.Mouse.Force = cfg.Mouse.Force
	return t
}
