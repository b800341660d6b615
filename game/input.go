package game

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/glyphfield/ui"
)

// handleInput processes cursor and keyboard input.
func (g *Game) handleInput() {
	g.handleResize()
	g.handleCursor()

	// Keys are routed to the text box while it has focus
	if g.panel.Editing() {
		return
	}

	if rl.IsKeyPressed(rl.KeyF11) {
		rl.ToggleFullscreen()
	}
	if rl.IsKeyPressed(rl.KeySpace) {
		g.paused = !g.paused
	}
	if rl.IsKeyPressed(rl.KeyTab) {
		g.panel.Toggle()
	}
	if rl.IsKeyPressed(rl.KeyO) {
		g.controls.Toggle()
	}
	g.handleOverlayKeys()
}

// handleCursor forwards the mouse position to the field while it is over the window.
func (g *Game) handleCursor() {
	if !rl.IsCursorOnScreen() {
		g.field.ClearCursor()
		return
	}
	pos := rl.GetMousePosition()
	g.field.SetCursor(float64(pos.X), float64(pos.Y))
}

// handleResize checks for window resize and reseeds at the new size.
func (g *Game) handleResize() {
	if !rl.IsWindowResized() {
		return
	}
	w := rl.GetScreenWidth()
	h := rl.GetScreenHeight()
	if w == g.screenWidth && h == g.screenHeight {
		return
	}
	g.screenWidth = w
	g.screenHeight = h
	g.field.Resize(w, h)
}

// applyPanel applies the changes reported by the option panel.
func (g *Game) applyPanel(res ui.PanelResult) {
	if res.CommitText {
		g.field.SetText(res.Text)
	}
	if res.StyleChanged || res.Reset {
		g.field.Reset()
	}
}
