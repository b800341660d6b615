// Package renderer draws the particle field with raylib.
package renderer

import (
	"image/color"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/glyphfield/vector"
)

// minRadius keeps sub-pixel particles visible.
const minRadius = 0.5

// ParticleRenderer draws particles as filled circles on the current raylib target.
// It satisfies components.Surface.
type ParticleRenderer struct {
	drawn int
}

// NewParticleRenderer creates a new particle renderer.
func NewParticleRenderer() *ParticleRenderer {
	return &ParticleRenderer{}
}

// Begin resets the per-frame counter.
func (r *ParticleRenderer) Begin() {
	r.drawn = 0
}

// FillCircle draws one particle.
func (r *ParticleRenderer) FillCircle(center vector.Vector2, radius float64, c color.RGBA) {
	size := float32(radius)
	if size < minRadius {
		size = minRadius
	}
	rl.DrawCircleV(rl.Vector2{X: float32(center.X), Y: float32(center.Y)}, size, c)
	r.drawn++
}

// Drawn returns the number of circles drawn since Begin.
func (r *ParticleRenderer) Drawn() int {
	return r.drawn
}
