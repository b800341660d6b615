// Package systems contains the particle field simulation.
package systems

import (
	"log/slog"
	"math/rand"
	"time"

	"github.com/pthm-cable/glyphfield/components"
	"github.com/pthm-cable/glyphfield/config"
	"github.com/pthm-cable/glyphfield/state"
	"github.com/pthm-cable/glyphfield/vector"
)

// MouseState is the last cursor position reported by the host, in canvas space.
type MouseState struct {
	X, Y    float64
	Present bool // false until the host reports a cursor, or after it leaves
}

// Field owns the particles derived from the rasterized text.
// It is either Empty (stage not populated) or Populated; Populate swaps the
// whole collection in one call.
type Field struct {
	cfg        *config.Config
	stage      *state.Stage
	options    *state.Options
	rasterizer Rasterizer
	colors     *ColorPicker
	scatter    *Scatter

	width, height int
	text          string
	particles     []*components.Particle
	cursor        MouseState

	repelled int // particles repelled during the last Update
	seeds    int // completed Populate calls
}

// NewField creates an empty field for a canvas of the configured screen size.
func NewField(cfg *config.Config, stage *state.Stage, options *state.Options, r Rasterizer, rng *rand.Rand) *Field {
	return &Field{
		cfg:        cfg,
		stage:      stage,
		options:    options,
		rasterizer: r,
		colors:     NewColorPicker(cfg.Derived.Color, cfg.Derived.Palette, options, rng),
		scatter:    NewScatter(cfg.Seeding.ScatterSpeed, cfg.Seeding.ScatterScale, rng.Int63()),
		width:      cfg.Screen.Width,
		height:     cfg.Screen.Height,
		text:       cfg.Text.Initial,
	}
}

// Populate rasterizes the current text and replaces the particle collection
// with one particle per opaque grid sample. Marks the stage populated.
func (f *Field) Populate() {
	start := time.Now()

	img := f.rasterizer.Rasterize(f.text, *f.options, f.width, f.height)
	points := SampleGrid(img, f.cfg.Particle.Density)

	particles := make([]*components.Particle, 0, len(points))
	for _, pt := range points {
		particles = append(particles, f.createParticle(float64(pt.X), float64(pt.Y)))
	}

	f.particles = particles
	f.seeds++
	f.stage.SetPopulated(true)

	slog.Info("field seeded",
		"text", f.text,
		"style", f.options.FontStyle(),
		"particles", len(particles),
		"duration_us", time.Since(start).Microseconds(),
	)
}

// createParticle builds a particle at rest (unless scatter is on), anchored to (x, y).
func (f *Field) createParticle(x, y float64) *components.Particle {
	pc := f.cfg.Particle
	speed, direction := f.scatter.Velocity(x, y)

	p := components.NewParticle(x, y, speed, direction, float64(pc.Density)/2, f.colors.Pick())
	p.Friction = pc.Friction
	p.AddSpring(components.NewSpring(x, y, pc.Stiffness, pc.RestOffset))
	return p
}

// Update applies cursor repulsion, then advances every particle one tick.
func (f *Field) Update() {
	f.repelled = 0
	if f.cursor.Present {
		f.handleMouseCollision()
	}

	for _, p := range f.particles {
		p.Update()
	}
}

// handleMouseCollision repels every particle within reach of the cursor.
func (f *Field) handleMouseCollision() {
	m := f.cfg.Mouse
	cursor := vector.New(f.cursor.X, f.cursor.Y)

	for _, p := range f.particles {
		if f.inReach(p, cursor) {
			p.RepulseTo(cursor, m.Force, m.MinDistance)
			f.repelled++
		}
	}
}

// inReach reports whether the particle circle overlaps the cursor's influence circle.
func (f *Field) inReach(p *components.Particle, cursor vector.Vector2) bool {
	_, distance := p.DistanceTo(cursor)
	return distance <= p.Radius+f.cfg.Mouse.Radius
}

// Draw renders every particle in seed order.
func (f *Field) Draw(s components.Surface) {
	for _, p := range f.particles {
		p.Draw(s)
	}
}

// SetText stores a new word and forces a reseed. Setting the same text is a no-op.
func (f *Field) SetText(text string) {
	if text == f.text {
		return
	}
	f.text = text
	f.stage.SetPopulated(false)
	slog.Info("text changed", "text", text)
}

// Reset forces a reseed of the current text on the next frame.
func (f *Field) Reset() {
	f.stage.SetPopulated(false)
}

// Resize changes the canvas size. The text is re-centred by a reseed.
func (f *Field) Resize(width, height int) {
	if width == f.width && height == f.height {
		return
	}
	f.width = width
	f.height = height
	f.stage.SetPopulated(false)
}

// SetCursor records the cursor position for the next Update.
func (f *Field) SetCursor(x, y float64) {
	f.cursor = MouseState{X: x, Y: y, Present: true}
}

// ClearCursor marks the cursor as absent; no repulsion is applied.
func (f *Field) ClearCursor() {
	f.cursor.Present = false
}

// Cursor returns the last reported cursor state.
func (f *Field) Cursor() MouseState {
	return f.cursor
}

// Text returns the current word.
func (f *Field) Text() string {
	return f.text
}

// Len returns the number of particles.
func (f *Field) Len() int {
	return len(f.particles)
}

// Particles returns the particle collection in seed order. Callers must not modify it.
func (f *Field) Particles() []*components.Particle {
	return f.particles
}

// Size returns the canvas dimensions.
func (f *Field) Size() (width, height int) {
	return f.width, f.height
}

// Snapshot holds per-particle measurements for telemetry.
type Snapshot struct {
	Particles    int
	Repelled     int
	Seeds        int
	Displacement []float64 // distance from the first spring anchor
	Speed        []float64
}

// Snapshot fills s with the current field state, reusing its slices.
func (f *Field) Snapshot(s *Snapshot) {
	s.Particles = len(f.particles)
	s.Repelled = f.repelled
	s.Seeds = f.seeds
	s.Displacement = s.Displacement[:0]
	s.Speed = s.Speed[:0]

	for _, p := range f.particles {
		var disp float64
		if anchor, ok := p.Anchor(); ok {
			disp = p.Position.DistanceTo(anchor)
		}
		s.Displacement = append(s.Displacement, disp)
		s.Speed = append(s.Speed, p.Velocity.Length())
	}
}
