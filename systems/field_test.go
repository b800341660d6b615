package systems

import (
	"image"
	"image/color"
	"math"
	"math/rand"
	"testing"

	"github.com/pthm-cable/glyphfield/config"
	"github.com/pthm-cable/glyphfield/state"
	"github.com/pthm-cable/glyphfield/vector"
)

// squareRasterizer paints an opaque square and counts calls.
type squareRasterizer struct {
	rect  image.Rectangle
	calls int
	last  state.Options
}

func (r *squareRasterizer) Rasterize(text string, opts state.Options, width, height int) *image.RGBA {
	r.calls++
	r.last = opts
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	if text == "" {
		return img
	}
	for y := r.rect.Min.Y; y < r.rect.Max.Y; y++ {
		for x := r.rect.Min.X; x < r.rect.Max.X; x++ {
			img.SetRGBA(x, y, color.RGBA{A: 255})
		}
	}
	return img
}

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	cfg, err := config.Default()
	if err != nil {
		t.Fatal(err)
	}
	cfg.Screen.Width = 100
	cfg.Screen.Height = 100
	cfg.Particle.Density = 10
	cfg.Particle.Stiffness = 0.1
	cfg.Particle.RestOffset = 0
	cfg.Particle.Friction = 0.9
	cfg.Mouse.Radius = 5
	cfg.Mouse.Force = 10
	cfg.Mouse.MinDistance = 1
	cfg.Seeding.ScatterSpeed = 0
	cfg.Text.Initial = "abc"
	if err := cfg.Prepare(); err != nil {
		t.Fatal(err)
	}
	return cfg
}

func newTestField(t *testing.T, cfg *config.Config) (*Field, *state.Stage, *squareRasterizer) {
	t.Helper()
	stage := &state.Stage{}
	opts := state.DefaultOptions()
	r := &squareRasterizer{rect: image.Rect(40, 40, 60, 60)}
	f := NewField(cfg, stage, &opts, r, rand.New(rand.NewSource(1)))
	return f, stage, r
}

func TestPopulateSquare(t *testing.T) {
	f, stage, _ := newTestField(t, testConfig(t))

	if stage.IsPopulated() {
		t.Fatal("new field should be empty")
	}

	f.Populate()

	if !stage.IsPopulated() {
		t.Error("expected stage populated after Populate")
	}
	want := []vector.Vector2{
		vector.New(40, 40), vector.New(50, 40),
		vector.New(40, 50), vector.New(50, 50),
	}
	particles := f.Particles()
	if len(particles) != len(want) {
		t.Fatalf("expected %d particles, got %d", len(want), len(particles))
	}
	for i, p := range particles {
		if !p.Position.Equal(want[i]) {
			t.Errorf("particle %d at %v, want %v", i, p.Position, want[i])
		}
		anchor, ok := p.Anchor()
		if !ok || !anchor.Equal(want[i]) {
			t.Errorf("particle %d anchor %v, want %v", i, anchor, want[i])
		}
		if p.Radius != 5 {
			t.Errorf("particle %d radius %v, want 5", i, p.Radius)
		}
		if p.Friction != 0.9 {
			t.Errorf("particle %d friction %v, want 0.9", i, p.Friction)
		}
		if !p.Velocity.Equal(vector.New(0, 0)) {
			t.Errorf("particle %d initial velocity %v, want zero", i, p.Velocity)
		}
		springs := p.Springs()
		if len(springs) != 1 || springs[0].Stiffness != 0.1 || springs[0].RestOffset != 0 {
			t.Errorf("particle %d springs %+v", i, springs)
		}
	}
}

func TestPopulateIdempotent(t *testing.T) {
	f, _, _ := newTestField(t, testConfig(t))

	f.Populate()
	first := make([]vector.Vector2, 0, f.Len())
	for _, p := range f.Particles() {
		a, _ := p.Anchor()
		first = append(first, a)
	}

	// Disturb the field, then reseed from the same raster
	f.SetCursor(45, 45)
	for i := 0; i < 10; i++ {
		f.Update()
	}
	f.Populate()

	if f.Len() != len(first) {
		t.Fatalf("reseed produced %d particles, want %d", f.Len(), len(first))
	}
	for i, p := range f.Particles() {
		a, _ := p.Anchor()
		if !a.Equal(first[i]) || !p.Position.Equal(first[i]) {
			t.Errorf("particle %d anchor %v pos %v, want %v", i, a, p.Position, first[i])
		}
	}
}

func TestPopulateEmptyText(t *testing.T) {
	cfg := testConfig(t)
	cfg.Text.Initial = ""
	f, stage, _ := newTestField(t, cfg)

	f.Populate()

	if f.Len() != 0 {
		t.Errorf("expected no particles for empty text, got %d", f.Len())
	}
	if !stage.IsPopulated() {
		t.Error("empty seeding still populates the stage")
	}
}

func TestPopulatePassesOptions(t *testing.T) {
	f, _, r := newTestField(t, testConfig(t))
	f.options.Italic = true

	f.Populate()

	if r.calls != 1 || !r.last.Italic {
		t.Errorf("rasterizer calls=%d last=%+v", r.calls, r.last)
	}
}

func TestSetText(t *testing.T) {
	f, stage, _ := newTestField(t, testConfig(t))
	f.Populate()

	// Same text: no state change
	f.SetText("abc")
	if !stage.IsPopulated() {
		t.Error("setting identical text should be a no-op")
	}

	f.SetText("xyz")
	if stage.IsPopulated() {
		t.Error("new text should empty the stage")
	}
	if f.Text() != "xyz" {
		t.Errorf("text = %q, want %q", f.Text(), "xyz")
	}

	// Repopulate, then the same text again does not re-flip
	f.Populate()
	f.SetText("xyz")
	if !stage.IsPopulated() {
		t.Error("repeating the current text should not empty the stage")
	}
}

func TestReset(t *testing.T) {
	f, stage, _ := newTestField(t, testConfig(t))
	f.Populate()
	f.Reset()

	if stage.IsPopulated() {
		t.Error("Reset should empty the stage")
	}
	if f.Text() != "abc" {
		t.Errorf("Reset changed text to %q", f.Text())
	}
}

func TestResize(t *testing.T) {
	f, stage, _ := newTestField(t, testConfig(t))
	f.Populate()

	f.Resize(100, 100)
	if !stage.IsPopulated() {
		t.Error("same size should not reseed")
	}

	f.Resize(200, 100)
	if stage.IsPopulated() {
		t.Error("new size should force a reseed")
	}
	if w, h := f.Size(); w != 200 || h != 100 {
		t.Errorf("size = %dx%d, want 200x100", w, h)
	}
}

func TestUpdateNoCursorNoRepulsion(t *testing.T) {
	f, _, _ := newTestField(t, testConfig(t))
	f.Populate()

	f.Update()

	for i, p := range f.Particles() {
		if !p.Velocity.Equal(vector.New(0, 0)) {
			t.Errorf("particle %d moved without a cursor: v=%v", i, p.Velocity)
		}
	}
	var s Snapshot
	f.Snapshot(&s)
	if s.Repelled != 0 {
		t.Errorf("repelled = %d, want 0", s.Repelled)
	}
}

func TestUpdateRepulsionRange(t *testing.T) {
	f, _, _ := newTestField(t, testConfig(t))
	f.Populate()

	// Reach is radius 5 + mouse radius 5 = 10.
	// Cursor at (40, 30): (40,40) is exactly 10 away, (50,40) is ~14.1 away.
	f.SetCursor(40, 30)
	f.Update()

	particles := f.Particles()
	if particles[0].Velocity.Y <= 0 {
		t.Errorf("particle at boundary should be pushed down, v=%v", particles[0].Velocity)
	}
	for i, p := range particles[1:] {
		if !p.Velocity.Equal(vector.New(0, 0)) {
			t.Errorf("particle %d outside reach received velocity %v", i+1, p.Velocity)
		}
	}

	var s Snapshot
	f.Snapshot(&s)
	if s.Repelled != 1 {
		t.Errorf("repelled = %d, want 1", s.Repelled)
	}
}

func TestUpdateRepulsionMagnitude(t *testing.T) {
	cfg := testConfig(t)
	cfg.Particle.Friction = 0
	cfg.Particle.Stiffness = 0
	f, _, _ := newTestField(t, cfg)
	f.Populate()

	f.SetCursor(35, 40)
	f.Update()

	// Particle (40,40) is 5 away: impulse 10/5 = 2 along +X, no spring, no friction
	p := f.Particles()[0]
	if math.Abs(p.Velocity.X-2) > 1e-9 || math.Abs(p.Velocity.Y) > 1e-9 {
		t.Errorf("velocity = %v, want (2, 0)", p.Velocity)
	}
	if math.Abs(p.Position.X-42) > 1e-9 {
		t.Errorf("position = %v, want (42, 40)", p.Position)
	}
}

func TestUpdateCursorOnParticleIsBounded(t *testing.T) {
	f, _, _ := newTestField(t, testConfig(t))
	f.Populate()

	f.SetCursor(40, 40)
	f.Update()

	p := f.Particles()[0]
	if math.IsNaN(p.Velocity.X) || math.IsInf(p.Velocity.X, 0) {
		t.Fatalf("velocity not finite: %v", p.Velocity)
	}
	// Force 10 clamped at min distance 1, then friction 0.9
	if p.Velocity.Length() > 10*0.9+1e-9 {
		t.Errorf("impulse %v exceeds clamp bound", p.Velocity.Length())
	}
}

func TestClearCursor(t *testing.T) {
	f, _, _ := newTestField(t, testConfig(t))
	f.Populate()

	f.SetCursor(40, 40)
	f.ClearCursor()
	if f.Cursor().Present {
		t.Fatal("cursor should be absent")
	}
	f.Update()

	for i, p := range f.Particles() {
		if !p.Velocity.Equal(vector.New(0, 0)) {
			t.Errorf("particle %d moved after ClearCursor: v=%v", i, p.Velocity)
		}
	}
}

func TestParticlesReturnToAnchor(t *testing.T) {
	f, _, _ := newTestField(t, testConfig(t))
	f.Populate()

	f.SetCursor(45, 45)
	for i := 0; i < 5; i++ {
		f.Update()
	}
	f.ClearCursor()
	for i := 0; i < 2000; i++ {
		f.Update()
	}

	var s Snapshot
	f.Snapshot(&s)
	for i, d := range s.Displacement {
		if d > 1e-3 {
			t.Errorf("particle %d still %v from anchor", i, d)
		}
	}
}

type circleRecorder struct {
	centers []vector.Vector2
}

func (c *circleRecorder) FillCircle(center vector.Vector2, radius float64, col color.RGBA) {
	c.centers = append(c.centers, center)
}

func TestDrawOrder(t *testing.T) {
	f, _, _ := newTestField(t, testConfig(t))
	f.Populate()

	var rec circleRecorder
	f.Draw(&rec)

	if len(rec.centers) != f.Len() {
		t.Fatalf("drew %d circles, want %d", len(rec.centers), f.Len())
	}
	for i, p := range f.Particles() {
		if !rec.centers[i].Equal(p.Position) {
			t.Errorf("circle %d at %v, want %v", i, rec.centers[i], p.Position)
		}
	}
}

func TestSnapshotReusesSlices(t *testing.T) {
	f, _, _ := newTestField(t, testConfig(t))
	f.Populate()

	var s Snapshot
	f.Snapshot(&s)
	f.Snapshot(&s)

	if len(s.Displacement) != 4 || len(s.Speed) != 4 {
		t.Errorf("snapshot lengths %d/%d, want 4/4", len(s.Displacement), len(s.Speed))
	}
	if s.Particles != 4 || s.Seeds != 1 {
		t.Errorf("snapshot counts %+v", s)
	}
}

func BenchmarkFieldUpdate(b *testing.B) {
	cfg, err := config.Default()
	if err != nil {
		b.Fatal(err)
	}
	stage := &state.Stage{}
	opts := state.DefaultOptions()
	r := &squareRasterizer{rect: image.Rect(100, 100, 900, 500)}
	f := NewField(cfg, stage, &opts, r, rand.New(rand.NewSource(1)))
	f.Populate()
	f.SetCursor(500, 300)

	b.ResetTimer()
	for n := 0; n < b.N; n++ {
		f.Update()
	}
}
