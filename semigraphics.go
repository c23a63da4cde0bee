package smiles

// Semigraphics provides easy access to Unicode characters for drawing.
const (
	SemigraphicsHorizontalEllipsis  = "\u2026" // …
	BoxDrawingsLightHorizontal      = "\u2500" // ─
	BoxDrawingsHeavyHorizontal      = "\u2501" // ━
	BoxDrawingsLightVertical        = "\u2502" // │
	BoxDrawingsHeavyVertical        = "\u2503" // ┃
	BoxDrawingsLightDownAndRight    = "\u250c" // ┌
	BoxDrawingsHeavyDownAndRight    = "\u250f" // ┏
	BoxDrawingsLightDownAndLeft     = "\u2510" // ┐
	BoxDrawingsHeavyDownAndLeft     = "\u2513" // ┓
	BoxDrawingsLightUpAndRight      = "\u2514" // └
	BoxDrawingsHeavyUpAndRight      = "\u2517" // ┗
	BoxDrawingsLightUpAndLeft       = "\u2518" // ┘
	BoxDrawingsHeavyUpAndLeft       = "\u251b" // ┛
	BoxDrawingsLightArcDownAndRight = "\u256d" // ╭
	BoxDrawingsLightArcDownAndLeft  = "\u256e" // ╮
	BoxDrawingsLightArcUpAndLeft    = "\u256f" // ╯
	BoxDrawingsLightArcUpAndRight   = "\u2570" // ╰
	BlockUpperHalfBlock             = "\u2580" // ▀
	BlockFullBlock                  = "\u2588" // █
	BlockLightShade                 = "\u2591" // ░

	// Carousel controls and page indicators.
	BlackMediumLeftPointingTriangle  = "\u25c0" // ◀
	BlackMediumRightPointingTriangle = "\u25b6" // ▶
	BlackCircle                      = "\u25cf" // ●
	WhiteCircle                      = "\u25cb" // ○
)

