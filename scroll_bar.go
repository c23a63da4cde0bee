package smiles

import "github.com/gdamore/tcell/v3"

// ScrollLengths bundles content and viewport lengths in rows.
type ScrollLengths struct {
	ContentLen  int
	ViewportLen int
}

// subcell is the number of thumb steps per cell.
const subcell = 8

var (
	thumbLower = [subcell]string{"▁", "▂", "▃", "▄", "▅", "▆", "▇", "█"}
	thumbUpper = [subcell]string{"▔", "▔", "▀", "▀", "▀", "▀", "█", "█"}
)

// ScrollBar renders a vertical scroll bar whose thumb moves in eighths of a
// cell. It hides itself when the content fits the viewport.
type ScrollBar struct {
	*Box

	contentLen  int
	viewportLen int
	offset      int

	trackStyle tcell.Style
	thumbStyle tcell.Style
}

// NewScrollBar returns a new vertical scroll bar.
func NewScrollBar() *ScrollBar {
	return &ScrollBar{
		Box:        NewBox(),
		trackStyle: tcell.StyleDefault.Foreground(Styles.BorderColor),
		thumbStyle: tcell.StyleDefault.Foreground(Styles.PrimaryTextColor),
	}
}

// SetLengths sets content and viewport lengths.
func (s *ScrollBar) SetLengths(lengths ScrollLengths) *ScrollBar {
	s.contentLen = max(lengths.ContentLen, 0)
	s.viewportLen = max(lengths.ViewportLen, 0)
	return s
}

// SetOffset sets the first visible row.
func (s *ScrollBar) SetOffset(offset int) *ScrollBar {
	s.offset = max(offset, 0)
	return s
}

// thumb returns the thumb's start and length in subcells for a track of the
// given number of cells. A zero length means nothing needs scrolling.
func (s *ScrollBar) thumb(cells int) (start, length int) {
	track := cells * subcell
	viewport := s.viewportLen
	if viewport <= 0 {
		viewport = cells
	}
	if track <= 0 || s.contentLen <= viewport {
		return 0, 0
	}
	maxOffset := s.contentLen - viewport
	offset := min(s.offset, maxOffset)

	length = min(max(track*viewport/s.contentLen, subcell), track)
	start = (track - length) * offset / maxOffset
	return start, length
}

// glyph returns the symbol for the cell covering subcells [cell*8, cell*8+8).
func (s *ScrollBar) glyph(cell, start, length int) (string, tcell.Style) {
	from := max(start, cell*subcell)
	to := min(start+length, (cell+1)*subcell)
	if to <= from {
		return BoxDrawingsLightVertical, s.trackStyle
	}
	covered := to - from
	if covered >= subcell {
		return thumbLower[subcell-1], s.thumbStyle
	}
	if from == cell*subcell {
		return thumbUpper[covered-1], s.thumbStyle
	}
	return thumbLower[covered-1], s.thumbStyle
}

// Draw draws the scroll bar.
func (s *ScrollBar) Draw(screen tcell.Screen) {
	s.DrawForSubclass(screen, s)

	x, y, _, height := s.GetInnerRect()
	start, length := s.thumb(height)
	if length == 0 {
		return
	}
	for cell := range height {
		str, style := s.glyph(cell, start, length)
		screen.Put(x, y+cell, str, style)
	}
}

var _ Primitive = &ScrollBar{}
