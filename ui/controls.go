package ui

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// ControlsPanel lists the debug overlays with their toggle keys.
type ControlsPanel struct {
	renderer *Renderer
	x, y     int32
	width    int32
	visible  bool
}

// NewControlsPanel creates a new controls panel.
func NewControlsPanel(x, y, width int32) *ControlsPanel {
	return &ControlsPanel{
		renderer: NewRenderer(),
		x:        x,
		y:        y,
		width:    width,
	}
}

// SetPosition moves the panel's top-left corner.
func (c *ControlsPanel) SetPosition(x, y int32) {
	c.x = x
	c.y = y
}

// IsVisible returns whether the panel is shown.
func (c *ControlsPanel) IsVisible() bool {
	return c.visible
}

// Toggle switches panel visibility.
func (c *ControlsPanel) Toggle() bool {
	c.visible = !c.visible
	return c.visible
}

// Height returns the panel height for the given registry.
func (c *ControlsPanel) Height(overlays *OverlayRegistry) int32 {
	t := c.renderer.Theme
	items := len(overlays.All()) + len(overlays.Categories())
	return int32(items)*t.LineHeight + t.Padding*3 + t.LineHeight
}

// Draw renders the controls panel and returns the Y below it.
func (c *ControlsPanel) Draw(overlays *OverlayRegistry) int32 {
	if !c.visible {
		return c.y
	}

	r := c.renderer
	padding := r.Theme.Padding
	lineHeight := r.Theme.LineHeight

	r.DrawPanel(c.x, c.y, c.width, c.Height(overlays))

	y := c.y + padding
	y = r.DrawSectionHeader(c.x+padding, y, "Overlays")

	for _, category := range overlays.Categories() {
		r.DrawLabel(c.x+padding, y, categoryLabel(category))
		y += lineHeight

		for _, desc := range overlays.ByCategory(category) {
			c.drawToggle(c.x+padding, y, desc, overlays.IsEnabled(desc.ID), c.width-padding*2)
			y += lineHeight
		}
	}

	return y
}

// drawToggle draws a single overlay toggle line.
func (c *ControlsPanel) drawToggle(x, y int32, desc OverlayDescriptor, enabled bool, width int32) {
	t := c.renderer.Theme

	statusColor := rl.Color{R: 200, G: 200, B: 200, A: 255}
	nameColor := t.LabelColor
	if enabled {
		statusColor = rl.Color{R: 6, G: 214, B: 160, A: 255}
		nameColor = t.ValueColor
	}
	rl.DrawRectangle(x+6, y+3, 8, 8, statusColor)
	rl.DrawText(desc.Name, x+20, y, t.FontSize, nameColor)

	if desc.KeyLabel != "" {
		keyText := fmt.Sprintf("[%s]", desc.KeyLabel)
		keyWidth := rl.MeasureText(keyText, t.FontSize)
		rl.DrawText(keyText, x+width-keyWidth, y, t.FontSize, t.LabelColor)
	}
}

func categoryLabel(cat string) string {
	switch cat {
	case "field":
		return "Field"
	case "cursor":
		return "Cursor"
	default:
		return cat
	}
}
