package smiles

import (
	"github.com/gdamore/tcell/v3"
	"github.com/gdamore/tcell/v3/color"
)

// Theme is the palette widgets read when they are created or drawn.
type Theme struct {
	PrimitiveBackgroundColor tcell.Color
	// Input fields, buttons, and the empty part of bars.
	ContrastBackgroundColor tcell.Color

	BorderColor      tcell.Color
	FocusBorderColor tcell.Color
	TitleColor       tcell.Color

	PrimaryTextColor tcell.Color
	// Labels and counters.
	SecondaryTextColor tcell.Color
	// Notes, descriptions, and placeholders outside fields.
	TertiaryTextColor tcell.Color
	// Text on PrimaryTextColor backgrounds.
	InverseTextColor tcell.Color
	// Secondary text on ContrastBackgroundColor.
	ContrastSecondaryTextColor tcell.Color

	ProgressColor   tcell.Color
	ActiveItemColor tcell.Color
}

// Styles is the board's theme: white on black with a navy field color and the
// campaign's green and yellow accents.
var Styles = Theme{
	PrimitiveBackgroundColor:   color.Black,
	ContrastBackgroundColor:    color.Navy,
	BorderColor:                color.Gray,
	FocusBorderColor:           color.White,
	TitleColor:                 color.White,
	PrimaryTextColor:           color.White,
	SecondaryTextColor:         color.Yellow,
	TertiaryTextColor:          color.Green,
	InverseTextColor:           color.Navy,
	ContrastSecondaryTextColor: color.Silver,
	ProgressColor:              color.Lime,
	ActiveItemColor:            color.Yellow,
}
