package game

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/glyphfield/renderer"
	"github.com/pthm-cable/glyphfield/ui"
)

// handleOverlayKeys checks for overlay toggle key presses.
func (g *Game) handleOverlayKeys() {
	for _, desc := range g.overlays.All() {
		if desc.Key != 0 && rl.IsKeyPressed(desc.Key) {
			g.overlays.Toggle(desc.ID)
		}
	}
}

// drawActiveOverlays renders all currently enabled overlays on top of the field.
func (g *Game) drawActiveOverlays() {
	particles := g.field.Particles()
	for _, id := range g.overlays.EnabledOverlays() {
		switch id {
		case ui.OverlayAnchors:
			renderer.DrawAnchors(particles)
		case ui.OverlaySprings:
			renderer.DrawSprings(particles)
		case ui.OverlayVelocity:
			renderer.DrawVelocity(particles)
		case ui.OverlayReach:
			if c := g.field.Cursor(); c.Present {
				renderer.DrawReach(c.X, c.Y, g.cfg.Mouse.Radius)
			}
		}
	}
}

// drawControlsPanel places the overlay list below the option panel.
func (g *Game) drawControlsPanel() {
	y := int32(10)
	if g.panel.IsVisible() {
		y += g.panel.Height() + 10
	}
	g.controls.SetPosition(10, y)
	g.controls.Draw(g.overlays)
}
