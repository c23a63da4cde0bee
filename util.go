package smiles

import (
	"github.com/gdamore/tcell/v3"
)

type Alignment int

const (
	AlignmentLeft Alignment = iota
	AlignmentCenter
	AlignmentRight
)

// Print prints text onto the screen into the box at (x,y,maxWidth,1),
// keeping the background already on the screen.
//
// Returns the number of bytes of text printed and the width they use.
func Print(screen tcell.Screen, text string, x, y, maxWidth int, alignment Alignment, color tcell.Color) (int, int) {
	return printWithStyle(screen, text, x, y, maxWidth, alignment, tcell.StyleDefault.Foreground(color), true)
}

// PrintWithStyle works like [Print] but takes a full style. The style's
// background replaces the existing screen background.
func PrintWithStyle(screen tcell.Screen, text string, x, y, maxWidth int, alignment Alignment, style tcell.Style) (int, int) {
	return printWithStyle(screen, text, x, y, maxWidth, alignment, style, false)
}

// printWithStyle prints the part of text that fits maxWidth cells. Right
// aligned text loses clusters on the left, centered text on both sides. With
// keepBackground the style's background is replaced per cell by the one on
// the screen.
func printWithStyle(screen tcell.Screen, text string, x, y, maxWidth int, alignment Alignment, style tcell.Style, keepBackground bool) (printed, printedWidth int) {
	totalWidth, totalHeight := screen.Size()
	if maxWidth <= 0 || text == "" || y < 0 || y >= totalHeight {
		return 0, 0
	}
	if keepBackground {
		style = style.Background(tcell.ColorDefault)
	}

	var c cluster
	state := -1
	textWidth := StringWidth(text)
	trimLeft := func(width int) {
		for text != "" && width > 0 {
			c, text, state = nextCluster(text, state)
			width -= c.width
			textWidth -= c.width
		}
	}
	switch alignment {
	case AlignmentRight:
		trimLeft(textWidth - maxWidth)
		x, maxWidth = x+maxWidth-textWidth, textWidth
	case AlignmentCenter:
		trimLeft((textWidth - maxWidth) / 2)
		if textWidth < maxWidth {
			x, maxWidth = x+maxWidth/2-textWidth/2, textWidth
		}
	}

	right := min(x+maxWidth, totalWidth)
	for text != "" && x < right {
		c, text, state = nextCluster(text, state)
		if c.text == "" {
			break
		}
		if width := c.width; width > 0 {
			cellStyle := style
			if keepBackground {
				_, existing, _ := screen.Get(x, y)
				cellStyle = cellStyle.Background(existing.GetBackground())
			}
			// Wide clusters own the cells they cover.
			for offset := width - 1; offset > 0; offset-- {
				screen.Put(x+offset, y, " ", cellStyle)
			}
			screen.Put(x, y, c.text, cellStyle)
		}
		x += c.width
		printed += len(c.text)
		printedWidth += c.width
	}
	return printed, printedWidth
}

// fill paints width cells starting at (x, y) with str in the given style.
func fill(screen tcell.Screen, x, y, width int, str string, style tcell.Style) {
	for i := 0; i < width; i++ {
		screen.Put(x+i, y, str, style)
	}
}
