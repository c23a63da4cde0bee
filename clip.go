package smiles

import (
	"github.com/gdamore/tcell/v3"
	"github.com/rivo/uniseg"
)

// clippedScreen restricts drawing to a rectangle of the wrapped screen. The
// carousel strip and list rows draw partially visible items through it.
type clippedScreen struct {
	tcell.Screen
	x, y, width, height int
}

func newClippedScreen(screen tcell.Screen, x, y, width, height int) *clippedScreen {
	return &clippedScreen{Screen: screen, x: x, y: y, width: width, height: height}
}

func (s *clippedScreen) inBounds(x, y int) bool {
	return x >= s.x && x < s.x+s.width && y >= s.y && y < s.y+s.height
}

// Put drops clusters outside the rectangle, including wide ones that would
// cross its right edge.
func (s *clippedScreen) Put(x, y int, str string, style tcell.Style) (string, int) {
	cluster, rest, width, _ := uniseg.FirstGraphemeClusterInString(str, -1)
	width = max(width, 1)
	if cluster == "" || !s.inBounds(x, y) || !s.inBounds(x+width-1, y) {
		return rest, width
	}
	return s.Screen.Put(x, y, str, style)
}

func (s *clippedScreen) ShowCursor(x, y int) {
	if !s.inBounds(x, y) {
		s.Screen.HideCursor()
		return
	}
	s.Screen.ShowCursor(x, y)
}
