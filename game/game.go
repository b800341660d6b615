// Package game drives the glyph field: frame throttling, input, drawing and telemetry.
package game

import (
	"fmt"
	"log/slog"
	"math/rand"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/glyphfield/config"
	"github.com/pthm-cable/glyphfield/glyph"
	"github.com/pthm-cable/glyphfield/renderer"
	"github.com/pthm-cable/glyphfield/state"
	"github.com/pthm-cable/glyphfield/systems"
	"github.com/pthm-cable/glyphfield/telemetry"
	"github.com/pthm-cable/glyphfield/ui"
)

// Background is the canvas clear color.
var Background = rl.RayWhite

const controlsLegend = "Space: pause | Tab: panel | O: overlays | F11: fullscreen"

// Options configures a Game beyond the loaded config.
type Options struct {
	Seed           int64
	LogStats       bool
	StatsWindowSec float64 // 0 = use config
	OutputDir      string
	Headless       bool
	Text           string // overrides text.initial when non-empty

	// Rasterizer overrides the Go font rasterizer (tests).
	Rasterizer systems.Rasterizer
}

// Game holds the complete run state.
type Game struct {
	cfg *config.Config
	rng *rand.Rand

	stage   *state.Stage
	options *state.Options
	field   *systems.Field
	glyphs  *glyph.Rasterizer // nil when a custom rasterizer is used

	ticker   *Ticker
	tick     int32
	paused   bool
	headless bool
	stepped  bool // the current frame ran a step whose perf tick is still open

	// Telemetry
	perfCollector *telemetry.PerfCollector
	collector     *telemetry.Collector
	outputManager *telemetry.OutputManager
	logStats      bool
	seedsWritten  int

	// Headless input
	sweep *SweepCursor

	// Graphics
	particles *renderer.ParticleRenderer
	panel     *ui.Panel
	hud       *ui.HUD
	overlays  *ui.OverlayRegistry
	controls  *ui.ControlsPanel

	screenWidth, screenHeight int
}

// NewGame creates a game for cfg. The field starts Empty and is seeded on the first step.
func NewGame(cfg *config.Config, opts Options) (*Game, error) {
	if opts.Text != "" {
		cfg.Text.Initial = opts.Text
	}

	stage := &state.Stage{}
	options := &state.Options{
		Bold:        cfg.Options.Bold,
		Italic:      cfg.Options.Italic,
		RandomColor: cfg.Options.RandomColor,
	}

	g := &Game{
		cfg:           cfg,
		rng:           rand.New(rand.NewSource(opts.Seed)),
		stage:         stage,
		options:       options,
		ticker:        NewTicker(cfg.Derived.FrameInterval),
		headless:      opts.Headless,
		logStats:      opts.LogStats,
		perfCollector: telemetry.NewPerfCollector(cfg.Telemetry.PerfCollectorWindow),
		screenWidth:   cfg.Screen.Width,
		screenHeight:  cfg.Screen.Height,
	}

	r := opts.Rasterizer
	if r == nil {
		glyphs, err := glyph.New(cfg)
		if err != nil {
			return nil, fmt.Errorf("creating rasterizer: %w", err)
		}
		g.glyphs = glyphs
		r = glyphs
	}
	g.field = systems.NewField(cfg, stage, options, r, g.rng)

	windowTicks := cfg.Derived.WindowTicks
	if opts.StatsWindowSec > 0 {
		windowTicks = int(opts.StatsWindowSec * float64(cfg.Screen.TargetFPS))
	}
	g.collector = telemetry.NewCollector(windowTicks, cfg.Derived.FrameInterval.Seconds())

	om, err := telemetry.NewOutputManager(opts.OutputDir)
	if err != nil {
		return nil, err
	}
	g.outputManager = om
	if err := om.WriteConfig(cfg); err != nil {
		slog.Warn("failed to write config snapshot", "error", err)
	}

	if opts.Headless {
		g.sweep = NewSweepCursor(
			float64(cfg.Screen.Width),
			sweepLine(cfg),
			cfg.Headless.SweepTicks,
		)
	} else {
		g.particles = renderer.NewParticleRenderer()
		g.panel = ui.NewPanel(10, 10, 220, cfg.Text.Initial)
		g.hud = ui.NewHUD()
		g.overlays = ui.NewOverlayRegistry()
		g.controls = ui.NewControlsPanel(10, 10, 220)
	}

	return g, nil
}

// sweepLine returns a y coordinate through the middle of the capital letters.
func sweepLine(cfg *config.Config) float64 {
	baseline := float64(cfg.Screen.Height)/2 + cfg.Text.BaselineOffset
	return baseline - cfg.Text.FontSize/3
}

// Frame runs one physics step if the ticker is due at now.
// It reports whether a step ran. The step's perf sample is closed by Draw.
func (g *Game) Frame(now time.Time) bool {
	if !g.ticker.Due(now) {
		return false
	}
	g.perfCollector.StartTick()
	g.step()
	g.stepped = true
	return true
}

// step seeds the field if it is Empty, then advances it one tick.
// While paused only seeding happens, so a text change is still shown.
func (g *Game) step() {
	if !g.stage.IsPopulated() {
		g.perfCollector.StartPhase(telemetry.PhaseSeed)
		g.field.Populate()
		g.recordSeed()
	}
	if g.paused {
		g.perfCollector.EndPhase()
		return
	}

	g.perfCollector.StartPhase(telemetry.PhaseUpdate)
	g.field.Update()

	g.perfCollector.StartPhase(telemetry.PhaseTelemetry)
	g.collector.RecordTick(g.field)
	g.tick++
	g.flushTelemetry()
	g.perfCollector.EndPhase()
}

// Update handles input and runs the throttled step for the graphical loop.
func (g *Game) Update() {
	g.handleInput()
	g.Frame(time.Now())
	g.perfCollector.RecordFrame()
}

// UpdateHeadless runs one unthrottled step driven by the scripted cursor.
func (g *Game) UpdateHeadless() {
	x, y := g.sweep.Position(g.tick)
	g.field.SetCursor(x, y)

	g.perfCollector.StartTick()
	g.step()
	g.perfCollector.EndTick()
}

// Draw renders the field and overlays for the graphical loop.
func (g *Game) Draw() {
	rl.BeginDrawing()
	rl.ClearBackground(Background)

	if g.stepped {
		g.perfCollector.StartPhase(telemetry.PhaseDraw)
	}

	g.particles.Begin()
	g.field.Draw(g.particles)
	g.drawActiveOverlays()

	g.applyPanel(g.panel.Draw(g.options))
	var snap systems.Snapshot
	g.field.Snapshot(&snap)
	g.hud.Draw(ui.HUDData{
		Particles:    g.particles.Drawn(),
		Repelled:     snap.Repelled,
		Tick:         g.tick,
		FPS:          rl.GetFPS(),
		Paused:       g.paused,
		ScreenHeight: int32(g.screenHeight),
	})
	g.drawControlsPanel()
	g.hud.DrawControls(int32(g.screenWidth), int32(g.screenHeight), controlsLegend)

	if g.stepped {
		g.perfCollector.EndTick()
		g.stepped = false
	}

	rl.EndDrawing()
}

// Unload releases resources and closes output files.
func (g *Game) Unload() {
	if g.glyphs != nil {
		g.glyphs.Close()
	}
	if err := g.outputManager.Close(); err != nil {
		slog.Warn("failed to close output", "error", err)
	}
}

// Tick returns the number of physics steps run.
func (g *Game) Tick() int32 {
	return g.tick
}

// Field returns the particle field.
func (g *Game) Field() *systems.Field {
	return g.field
}

// Options returns the live runtime toggles.
func (g *Game) Options() *state.Options {
	return g.options
}

// Paused reports whether physics is paused.
func (g *Game) Paused() bool {
	return g.paused
}

// SetPaused pauses or resumes physics.
func (g *Game) SetPaused(paused bool) {
	g.paused = paused
}
