// Package components defines the physical bodies of the glyph field.
package components

import (
	"image/color"
	"math"

	"github.com/pthm-cable/glyphfield/vector"
)

// Surface is anything a particle can be drawn onto.
type Surface interface {
	FillCircle(center vector.Vector2, radius float64, c color.RGBA)
}

// Particle is a point mass held in place by springs.
type Particle struct {
	Position vector.Vector2
	Velocity vector.Vector2

	// Friction scales velocity every tick. 0 disables damping.
	Friction float64

	Radius float64
	Color  color.RGBA

	springs []Spring
}

// NewParticle creates a particle at (x, y) moving at speed along direction (radians).
func NewParticle(x, y, speed, direction, radius float64, c color.RGBA) *Particle {
	p := &Particle{
		Position: vector.New(x, y),
		Radius:   radius,
		Color:    c,
	}
	p.Velocity.SetLength(speed)
	p.Velocity.SetAngle(direction)
	return p
}

// AddSpring attaches s, replacing any spring with the same anchor.
func (p *Particle) AddSpring(s Spring) {
	for i := range p.springs {
		if p.springs[i].Anchor.Equal(s.Anchor) {
			p.springs[i] = s
			return
		}
	}
	p.springs = append(p.springs, s)
}

// RemoveSpring detaches the spring anchored at anchor. Missing anchors are ignored.
func (p *Particle) RemoveSpring(anchor vector.Vector2) {
	for i := range p.springs {
		if p.springs[i].Anchor.Equal(anchor) {
			p.springs = append(p.springs[:i], p.springs[i+1:]...)
			return
		}
	}
}

// Springs returns a copy of the attached springs.
func (p *Particle) Springs() []Spring {
	out := make([]Spring, len(p.springs))
	copy(out, p.springs)
	return out
}

// Anchor returns the anchor of the first attached spring.
func (p *Particle) Anchor() (vector.Vector2, bool) {
	if len(p.springs) == 0 {
		return vector.Vector2{}, false
	}
	return p.springs[0].Anchor, true
}

// DistanceTo returns the vector from the particle to point and its length.
func (p *Particle) DistanceTo(point vector.Vector2) (vector.Vector2, float64) {
	d := point.Subtract(p.Position)
	return d, d.Length()
}

// RepulseTo pushes the particle away from point with magnitude force/distance.
// distance is clamped to minDistance so a particle sitting on the point gets a
// bounded impulse. The impulse accumulates into velocity.
func (p *Particle) RepulseTo(point vector.Vector2, force, minDistance float64) {
	away := p.Position.Subtract(point)
	distance := away.Length()
	if distance < minDistance {
		distance = minDistance
	}
	if distance <= 0 {
		return
	}

	angle := away.Angle()
	magnitude := force / distance
	p.Velocity.X += math.Cos(angle) * magnitude
	p.Velocity.Y += math.Sin(angle) * magnitude
}

// Update advances the particle one tick: springs, then friction, then position.
func (p *Particle) Update() {
	for _, s := range p.springs {
		p.Velocity.AddTo(s.Force(p.Position))
	}

	if p.Friction != 0 {
		p.Velocity.MultiplyBy(p.Friction)
	}

	p.Position.AddTo(p.Velocity)
}

// Draw renders the particle as a filled circle.
func (p *Particle) Draw(s Surface) {
	s.FillCircle(p.Position, p.Radius, p.Color)
}
