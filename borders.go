package smiles

// BorderSet holds the glyphs of a box outline.
type BorderSet struct {
	Top         string
	Bottom      string
	Left        string
	Right       string
	TopLeft     string
	TopRight    string
	BottomLeft  string
	BottomRight string
}

// BorderSetPlain is the default square outline.
func BorderSetPlain() BorderSet {
	return lightBorderSet(BoxDrawingsLightDownAndRight, BoxDrawingsLightDownAndLeft, BoxDrawingsLightUpAndRight, BoxDrawingsLightUpAndLeft)
}

// BorderSetRound is used for panels floating above the page and for the
// active carousel item.
func BorderSetRound() BorderSet {
	return lightBorderSet(BoxDrawingsLightArcDownAndRight, BoxDrawingsLightArcDownAndLeft, BoxDrawingsLightArcUpAndRight, BoxDrawingsLightArcUpAndLeft)
}

// BorderSetThick marks the active carousel item while the carousel has focus.
func BorderSetThick() BorderSet {
	return BorderSet{
		Top:         BoxDrawingsHeavyHorizontal,
		Bottom:      BoxDrawingsHeavyHorizontal,
		Left:        BoxDrawingsHeavyVertical,
		Right:       BoxDrawingsHeavyVertical,
		TopLeft:     BoxDrawingsHeavyDownAndRight,
		TopRight:    BoxDrawingsHeavyDownAndLeft,
		BottomLeft:  BoxDrawingsHeavyUpAndRight,
		BottomRight: BoxDrawingsHeavyUpAndLeft,
	}
}

func lightBorderSet(topLeft, topRight, bottomLeft, bottomRight string) BorderSet {
	return BorderSet{
		Top:         BoxDrawingsLightHorizontal,
		Bottom:      BoxDrawingsLightHorizontal,
		Left:        BoxDrawingsLightVertical,
		Right:       BoxDrawingsLightVertical,
		TopLeft:     topLeft,
		TopRight:    topRight,
		BottomLeft:  bottomLeft,
		BottomRight: bottomRight,
	}
}

// Borders is a bit set of box sides.
type Borders uint

const (
	BordersTop Borders = 1 << iota
	BordersBottom
	BordersLeft
	BordersRight

	BordersNone Borders = 0
	BordersAll  Borders = BordersTop | BordersBottom | BordersLeft | BordersRight
)

// Has reports whether any side in flag is set.
func (b Borders) Has(flag Borders) bool {
	return b&flag != 0
}
