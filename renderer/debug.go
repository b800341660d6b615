package renderer

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/glyphfield/components"
	"github.com/pthm-cable/glyphfield/vector"
)

var (
	anchorColor   = rl.Color{R: 17, G: 138, B: 178, A: 200}
	springColor   = rl.Color{R: 17, G: 138, B: 178, A: 120}
	velocityColor = rl.Color{R: 239, G: 71, B: 111, A: 200}
	reachColor    = rl.Color{R: 43, G: 45, B: 66, A: 160}
)

// velocityScale stretches velocity vectors so slow particles stay visible.
const velocityScale = 4

func toRL(v vector.Vector2) rl.Vector2 {
	return rl.Vector2{X: float32(v.X), Y: float32(v.Y)}
}

// DrawAnchors marks the rest point of every particle.
func DrawAnchors(particles []*components.Particle) {
	for _, p := range particles {
		if a, ok := p.Anchor(); ok {
			rl.DrawPixelV(toRL(a), anchorColor)
		}
	}
}

// DrawSprings draws a line from each displaced particle to its anchor.
func DrawSprings(particles []*components.Particle) {
	for _, p := range particles {
		a, ok := p.Anchor()
		if !ok || p.Position.DistanceTo(a) < 0.5 {
			continue
		}
		rl.DrawLineV(toRL(p.Position), toRL(a), springColor)
		rl.DrawPixelV(toRL(a), anchorColor)
	}
}

// DrawVelocity draws each moving particle's velocity vector.
func DrawVelocity(particles []*components.Particle) {
	for _, p := range particles {
		if p.Velocity.Length() < 0.05 {
			continue
		}
		end := p.Position.Add(p.Velocity.Multiply(velocityScale))
		rl.DrawLineV(toRL(p.Position), toRL(end), velocityColor)
	}
}

// DrawReach outlines the circle in which the cursor repels particles.
func DrawReach(x, y, radius float64) {
	rl.DrawCircleLines(int32(x), int32(y), float32(radius), reachColor)
}
