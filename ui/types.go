// Package ui draws the option panel and status overlay on top of the field.
package ui

import rl "github.com/gen2brain/raylib-go/raylib"

// Theme holds UI styling constants.
type Theme struct {
	PanelBg        rl.Color
	PanelBorder    rl.Color
	SectionHeader  rl.Color
	LabelColor     rl.Color
	ValueColor     rl.Color
	StatusColor    rl.Color
	Padding        int32
	LineHeight     int32
	LabelWidth     int32
	ControlHeight  int32
	FontSize       int32
	HeaderFontSize int32
}

// DefaultTheme returns the default UI theme for a light canvas.
func DefaultTheme() Theme {
	return Theme{
		PanelBg:        rl.Color{R: 245, G: 245, B: 245, A: 235},
		PanelBorder:    rl.Color{R: 180, G: 180, B: 185, A: 255},
		SectionHeader:  rl.Color{R: 43, G: 45, B: 66, A: 255},
		LabelColor:     rl.Gray,
		ValueColor:     rl.DarkGray,
		StatusColor:    rl.Color{R: 239, G: 71, B: 111, A: 255},
		Padding:        10,
		LineHeight:     18,
		LabelWidth:     80,
		ControlHeight:  24,
		FontSize:       14,
		HeaderFontSize: 16,
	}
}
