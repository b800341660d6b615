package ui

import (
	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/glyphfield/state"
)

// maxTextLen bounds the word typed into the text box.
const maxTextLen = 32

// PanelResult reports what the user changed during one Draw.
type PanelResult struct {
	Text         string // pending word, valid when CommitText is set
	CommitText   bool
	StyleChanged bool // Bold or Italic toggled
	Reset        bool
}

// Panel is the option panel: word entry, style toggles and reset.
type Panel struct {
	renderer *Renderer
	x, y     int32
	width    int32
	visible  bool

	text    string
	editing bool
}

// NewPanel creates a visible panel holding text as the pending word.
func NewPanel(x, y, width int32, text string) *Panel {
	return &Panel{
		renderer: NewRenderer(),
		x:        x,
		y:        y,
		width:    width,
		visible:  true,
		text:     text,
	}
}

// SetVisible shows or hides the panel.
func (p *Panel) SetVisible(visible bool) {
	p.visible = visible
	if !visible {
		p.editing = false
	}
}

// IsVisible returns whether the panel is shown.
func (p *Panel) IsVisible() bool {
	return p.visible
}

// Toggle switches panel visibility.
func (p *Panel) Toggle() bool {
	p.SetVisible(!p.visible)
	return p.visible
}

// Editing reports whether the text box has keyboard focus.
func (p *Panel) Editing() bool {
	return p.editing
}

// SetText replaces the pending word.
func (p *Panel) SetText(text string) {
	p.text = text
}

// Height returns the panel height in pixels.
func (p *Panel) Height() int32 {
	t := p.renderer.Theme
	rows := int32(5) // text box, three toggles, reset
	return t.Padding*2 + t.LineHeight + 4 + rows*(t.ControlHeight+t.Padding/2)
}

// Draw renders the panel and applies toggle changes to opts.
func (p *Panel) Draw(opts *state.Options) PanelResult {
	var res PanelResult
	if !p.visible {
		return res
	}

	r := p.renderer
	t := r.Theme
	r.DrawPanel(p.x, p.y, p.width, p.Height())

	x := float32(p.x + t.Padding)
	y := r.DrawSectionHeader(p.x+t.Padding, p.y+t.Padding, "Glyph Field")
	inner := float32(p.width - 2*t.Padding)
	row := float32(t.ControlHeight + t.Padding/2)
	box := float32(t.ControlHeight - 6)

	// Word entry; Enter or clicking away commits
	if gui.TextBox(rl.Rectangle{X: x, Y: float32(y), Width: inner, Height: float32(t.ControlHeight)}, &p.text, maxTextLen, p.editing) {
		if p.editing {
			res.Text = p.text
			res.CommitText = true
		}
		p.editing = !p.editing
	}
	fy := float32(y) + row

	bold := gui.CheckBox(rl.Rectangle{X: x, Y: fy, Width: box, Height: box}, "Bold", opts.Bold)
	fy += row
	italic := gui.CheckBox(rl.Rectangle{X: x, Y: fy, Width: box, Height: box}, "Italic", opts.Italic)
	fy += row
	opts.RandomColor = gui.CheckBox(rl.Rectangle{X: x, Y: fy, Width: box, Height: box}, "Random color", opts.RandomColor)
	fy += row

	if bold != opts.Bold || italic != opts.Italic {
		opts.Bold = bold
		opts.Italic = italic
		res.StyleChanged = true
	}

	if gui.Button(rl.Rectangle{X: x, Y: fy, Width: 120, Height: float32(t.ControlHeight)}, "Reset") {
		res.Reset = true
	}

	return res
}
