package ui

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// HUDData holds all the data needed to render the status overlay.
type HUDData struct {
	Particles    int
	Repelled     int
	Tick         int32
	FPS          int32
	Paused       bool
	ScreenHeight int32
}

// HUD renders the status overlay in the bottom-left corner.
type HUD struct {
	renderer *Renderer
}

// NewHUD creates a new HUD renderer.
func NewHUD() *HUD {
	return &HUD{renderer: NewRenderer()}
}

// Draw renders the HUD.
func (h *HUD) Draw(data HUDData) {
	t := h.renderer.Theme
	y := data.ScreenHeight - 2*t.LineHeight - t.Padding

	h.renderer.DrawLabel(t.Padding, y, fmt.Sprintf(
		"Particles: %d | Repelled: %d | Tick: %d | FPS: %d",
		data.Particles, data.Repelled, data.Tick, data.FPS,
	))
	if data.Paused {
		rl.DrawText("PAUSED", t.Padding, y+t.LineHeight, t.FontSize, t.StatusColor)
	}
}

// DrawControls renders the key legend in the bottom-right corner.
func (h *HUD) DrawControls(screenWidth, screenHeight int32, controls string) {
	t := h.renderer.Theme
	w := rl.MeasureText(controls, t.FontSize)
	rl.DrawText(controls, screenWidth-w-t.Padding, screenHeight-t.LineHeight-t.Padding, t.FontSize, t.LabelColor)
}
