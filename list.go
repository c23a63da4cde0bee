package smiles

import (
	"github.com/gdamore/tcell/v3"
)

// ListItem is a list row. Items report their height for a width, so rows can
// span several lines.
type ListItem interface {
	Primitive
	Height(width int) int
}

// ListBuilder builds the item at index, styled for the cursor at cursor. It
// returns nil past the last item.
type ListBuilder func(index int, cursor int) ListItem

// List displays a list of primitives returned by a builder function, scrolled
// line by line, with a scroll bar on the right when the content overflows.
type List struct {
	*Box

	Builder ListBuilder
	gap     int

	cursor int
	// First content row shown.
	scroll int
	// Scroll so the cursor item is visible on the next draw.
	wantsCursor bool

	scrollBar *ScrollBar

	// Items and their content rows from the last draw, for mouse hits.
	lastDraw []listDrawnItem
}

type listDrawnItem struct {
	index  int
	item   ListItem
	row    int
	height int
}

// NewList returns a new list.
func NewList() *List {
	return &List{
		Box:       NewBox(),
		cursor:    -1,
		scrollBar: NewScrollBar(),
	}
}

// SetBuilder sets the item builder. Items are built on every draw.
func (l *List) SetBuilder(builder ListBuilder) *List {
	l.Builder = builder
	return l
}

// Clear drops the builder and resets the cursor and scroll position.
func (l *List) Clear() *List {
	l.Builder = nil
	l.cursor = -1
	l.scroll = 0
	l.lastDraw = nil
	return l
}

// SetGap sets the blank rows between items.
func (l *List) SetGap(gap int) *List {
	l.gap = max(gap, 0)
	return l
}

// SetCursor sets the currently selected item index. -1 selects nothing.
func (l *List) SetCursor(index int) *List {
	index = max(index, -1)
	if l.cursor != index {
		l.cursor = index
		l.wantsCursor = index >= 0
	}
	return l
}

func (l *List) Cursor() int {
	return l.cursor
}

// ScrollToStart scrolls to the first row without changing the cursor.
func (l *List) ScrollToStart() *List {
	l.scroll = 0
	l.wantsCursor = false
	return l
}

// ScrollUp scrolls the list up by the given number of rows.
func (l *List) ScrollUp(rows int) *List {
	l.scroll = max(l.scroll-rows, 0)
	l.wantsCursor = false
	return l
}

// ScrollDown scrolls the list down by the given number of rows. The list
// stops at the end of its content when drawn.
func (l *List) ScrollDown(rows int) *List {
	l.scroll += rows
	l.wantsCursor = false
	return l
}

// NextItem moves the cursor down and reports whether there was an item.
func (l *List) NextItem() bool {
	if l.Builder == nil || l.Builder(l.cursor+1, l.cursor) == nil {
		return false
	}
	l.SetCursor(l.cursor + 1)
	return true
}

// PrevItem moves the cursor up and reports whether there was an item.
func (l *List) PrevItem() bool {
	if l.cursor <= 0 || l.Builder == nil || l.Builder(l.cursor-1, l.cursor) == nil {
		return false
	}
	l.SetCursor(l.cursor - 1)
	return true
}

// layout builds all items for the given width and returns them with their
// content rows and the total content height.
func (l *List) layout(width int) ([]listDrawnItem, int) {
	if l.Builder == nil {
		return nil, 0
	}
	var (
		items []listDrawnItem
		row   int
	)
	for i := 0; ; i++ {
		item := l.Builder(i, l.cursor)
		if item == nil {
			break
		}
		if i > 0 {
			row += l.gap
		}
		height := max(item.Height(width), 1)
		items = append(items, listDrawnItem{index: i, item: item, row: row, height: height})
		row += height
	}
	return items, row
}

// Draw draws the visible rows through a clipped screen, so the first and last
// items may show only in part.
func (l *List) Draw(screen tcell.Screen) {
	l.DrawForSubclass(screen, l)

	x, y, width, height := l.GetInnerRect()
	l.lastDraw = nil
	if width <= 0 || height <= 0 || l.Builder == nil {
		return
	}

	items, total := l.layout(width)
	if total > height && width > 1 {
		// Leave a column for the scroll bar.
		width--
		items, total = l.layout(width)
	}

	// Keep the cursor item in view, then clamp to the content.
	if l.wantsCursor && l.cursor >= 0 && l.cursor < len(items) {
		cursorItem := items[l.cursor]
		if cursorItem.row < l.scroll {
			l.scroll = cursorItem.row
		} else if bottom := cursorItem.row + cursorItem.height; bottom > l.scroll+height {
			l.scroll = bottom - height
		}
	}
	l.wantsCursor = false
	l.scroll = min(max(l.scroll, 0), max(total-height, 0))

	clipped := newClippedScreen(screen, x, y, width, height)
	for _, child := range items {
		top := child.row - l.scroll
		if top+child.height <= 0 || top >= height {
			continue
		}
		child.item.SetRect(x, y+top, width, child.height)
		child.item.Draw(clipped)
		l.lastDraw = append(l.lastDraw, child)
	}

	if total > height {
		l.scrollBar.SetLengths(ScrollLengths{ContentLen: total, ViewportLen: height}).SetOffset(l.scroll)
		l.scrollBar.SetRect(x+width, y, 1, height)
		l.scrollBar.Draw(screen)
	}
}

// InputHandler handles key events for this primitive.
func (l *List) InputHandler(event *tcell.EventKey) Command {
	_, _, _, height := l.GetInnerRect()
	switch event.Key() {
	case tcell.KeyDown:
		l.NextItem()
	case tcell.KeyUp:
		l.PrevItem()
	case tcell.KeyPgDn:
		l.ScrollDown(max(height, 1))
	case tcell.KeyPgUp:
		l.ScrollUp(max(height, 1))
	case tcell.KeyHome:
		l.ScrollToStart()
	default:
		return nil
	}
	return RedrawCommand{}
}

// MouseHandler moves the cursor to a clicked item and scrolls on the wheel.
func (l *List) MouseHandler(action MouseAction, event *tcell.EventMouse) (Primitive, Command) {
	x, y := event.Position()
	if !l.InRect(x, y) {
		return nil, nil
	}

	switch action {
	case MouseLeftDown:
		return nil, SetFocusCommand{Target: l}
	case MouseLeftClick:
		if index := l.indexAtPoint(x, y); index >= 0 {
			l.SetCursor(index)
		}
		return nil, RedrawCommand{}
	case MouseScrollUp:
		l.ScrollUp(3)
		return nil, RedrawCommand{}
	case MouseScrollDown:
		l.ScrollDown(3)
		return nil, RedrawCommand{}
	}
	return nil, nil
}

func (l *List) indexAtPoint(x, y int) int {
	for _, child := range l.lastDraw {
		cx, cy, cw, ch := child.item.GetRect()
		if x >= cx && x < cx+cw && y >= cy && y < cy+ch {
			return child.index
		}
	}
	return -1
}

var _ Primitive = &List{}
