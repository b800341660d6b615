package game

import (
	"image"
	"image/color"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/pthm-cable/glyphfield/config"
	"github.com/pthm-cable/glyphfield/state"
	"github.com/pthm-cable/glyphfield/ui"
)

// stubRasterizer paints a solid bar whose width depends on the text length.
type stubRasterizer struct {
	calls int
}

func (r *stubRasterizer) Rasterize(text string, _ state.Options, w, h int) *image.RGBA {
	r.calls++
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 40; y < 60; y++ {
		for x := 0; x < 10*len(text) && x < w; x++ {
			img.SetRGBA(x, y, color.RGBA{A: 255})
		}
	}
	return img
}

func newTestGame(t *testing.T, opts Options) (*Game, *stubRasterizer) {
	t.Helper()
	cfg, err := config.Default()
	if err != nil {
		t.Fatal(err)
	}
	cfg.Screen.Width, cfg.Screen.Height = 200, 100
	cfg.Particle.Density = 10
	cfg.Text.Initial = "ab"
	cfg.Headless.SweepTicks = 20
	if err := cfg.Prepare(); err != nil {
		t.Fatal(err)
	}

	r := &stubRasterizer{}
	opts.Rasterizer = r
	opts.Headless = true
	g, err := NewGame(cfg, opts)
	if err != nil {
		t.Fatalf("NewGame failed: %v", err)
	}
	t.Cleanup(g.Unload)
	return g, r
}

func TestFrameSeedsThenSteps(t *testing.T) {
	g, r := newTestGame(t, Options{Seed: 1})
	now := time.Unix(1000, 0)

	if !g.Frame(now) {
		t.Fatal("first frame should run a step")
	}
	// "ab" -> 20px bar -> x in {0, 10}, y in {40, 50}
	if g.Field().Len() != 4 {
		t.Errorf("particles = %d, want 4", g.Field().Len())
	}
	if g.Tick() != 1 {
		t.Errorf("tick = %d, want 1", g.Tick())
	}

	// Not due yet: nothing changes
	if g.Frame(now.Add(time.Millisecond)) {
		t.Error("frame 1ms later should be throttled")
	}
	if g.Tick() != 1 {
		t.Errorf("throttled frame advanced tick to %d", g.Tick())
	}

	g.Frame(now.Add(time.Second))
	if r.calls != 1 {
		t.Errorf("rasterizer called %d times, want 1", r.calls)
	}
}

func TestFrameReseedsOnTextChange(t *testing.T) {
	g, r := newTestGame(t, Options{Seed: 1})
	now := time.Unix(1000, 0)
	g.Frame(now)

	g.Field().SetText("abcd")
	g.Frame(now.Add(time.Second))

	if r.calls != 2 {
		t.Errorf("rasterizer called %d times, want 2", r.calls)
	}
	if g.Field().Len() != 8 {
		t.Errorf("particles = %d, want 8", g.Field().Len())
	}
}

func TestTextOverride(t *testing.T) {
	g, _ := newTestGame(t, Options{Text: "abc"})
	if g.Field().Text() != "abc" {
		t.Errorf("text = %q, want %q", g.Field().Text(), "abc")
	}
}

func TestPausedSeedsButDoesNotStep(t *testing.T) {
	g, _ := newTestGame(t, Options{})
	g.SetPaused(true)

	g.UpdateHeadless()

	if g.Field().Len() == 0 {
		t.Error("paused game should still seed")
	}
	if g.Tick() != 0 {
		t.Errorf("paused game advanced to tick %d", g.Tick())
	}
}

func TestUpdateHeadlessDrivesCursor(t *testing.T) {
	g, _ := newTestGame(t, Options{})

	for i := 0; i < 5; i++ {
		g.UpdateHeadless()
	}

	c := g.Field().Cursor()
	if !c.Present {
		t.Fatal("headless cursor should be present")
	}
	// Sweep crosses 200px in 20 ticks; position set before tick 4 ran
	if c.X != 40 {
		t.Errorf("cursor x = %v, want 40", c.X)
	}
	if g.Tick() != 5 {
		t.Errorf("tick = %d, want 5", g.Tick())
	}
}

func TestApplyPanel(t *testing.T) {
	g, r := newTestGame(t, Options{})
	g.UpdateHeadless()

	g.applyPanel(ui.PanelResult{})
	g.UpdateHeadless()
	if r.calls != 1 {
		t.Errorf("empty result reseeded: %d calls", r.calls)
	}

	g.applyPanel(ui.PanelResult{StyleChanged: true})
	g.UpdateHeadless()
	if r.calls != 2 {
		t.Errorf("style change should reseed: %d calls", r.calls)
	}

	g.applyPanel(ui.PanelResult{CommitText: true, Text: "xyz"})
	g.UpdateHeadless()
	if g.Field().Text() != "xyz" || r.calls != 3 {
		t.Errorf("commit: text=%q calls=%d", g.Field().Text(), r.calls)
	}

	// Committing the same word is a no-op
	g.applyPanel(ui.PanelResult{CommitText: true, Text: "xyz"})
	g.UpdateHeadless()
	if r.calls != 3 {
		t.Errorf("same text reseeded: %d calls", r.calls)
	}

	g.applyPanel(ui.PanelResult{Reset: true})
	g.UpdateHeadless()
	if r.calls != 4 {
		t.Errorf("reset should reseed: %d calls", r.calls)
	}
}

func TestOutputDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "out")
	g, _ := newTestGame(t, Options{OutputDir: dir, StatsWindowSec: 0.1})

	// 0.1s at 60 fps = 6 ticks per window
	for i := 0; i < 12; i++ {
		g.UpdateHeadless()
	}

	for _, name := range []string{"config.yaml", "field.csv", "perf.csv", "anchors.csv"} {
		if _, err := os.Stat(filepath.Join(dir, name)); err != nil {
			t.Errorf("missing %s: %v", name, err)
		}
	}

	data, err := os.ReadFile(filepath.Join(dir, "field.csv"))
	if err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	if len(lines) != 3 {
		t.Errorf("field.csv has %d lines, want header + 2 windows", len(lines))
	}
}

func TestLogf(t *testing.T) {
	var sb strings.Builder
	SetLogWriter(&sb)
	defer SetLogWriter(nil)

	Logf("tick %d", 7)
	if sb.String() != "tick 7\n" {
		t.Errorf("Logf wrote %q", sb.String())
	}
}
