package smiles

import (
	"strings"
	"sync"

	"github.com/gdamore/tcell/v3"
)

// TabSize is the number of spaces a tab expands to.
var TabSize = 4

// TextView shows read-only styled lines, word-wrapped to its width unless
// wrapping is off. The donation list and the message of the day use it.
//
// Keys while focused:
//
//   - Up, Down, j, k: Scroll one line.
//   - PgUp, PgDn: Scroll one page.
//   - Home, End, g, G: Go to the beginning or end.
type TextView struct {
	sync.Mutex
	*Box

	lines []Line

	// Wrapped visual lines for the width in wrappedWidth.
	wrapped      []Line
	wrappedWidth int

	// The first visible wrapped line.
	lineOffset int
	// Keep the last line in view.
	trackEnd bool

	wrap      bool
	alignment Alignment
	textStyle tcell.Style

	changed func()
}

// NewTextView returns a new text view.
func NewTextView() *TextView {
	return &TextView{
		Box:       NewBox(),
		wrap:      true,
		textStyle: tcell.StyleDefault.Foreground(Styles.PrimaryTextColor),
	}
}

// SetWrap sets whether long lines continue on the next row. Unwrapped lines
// are cut at the right edge.
func (t *TextView) SetWrap(wrap bool) *TextView {
	if t.wrap != wrap {
		t.wrap = wrap
		t.resetLayout()
	}
	return t
}

// SetTextAlign aligns every row within the inner width.
func (t *TextView) SetTextAlign(alignment Alignment) *TextView {
	t.alignment = alignment
	return t
}

// SetTextStyle sets the style SetText applies to its lines.
func (t *TextView) SetTextStyle(style tcell.Style) *TextView {
	t.textStyle = style
	return t
}

// SetText replaces the content with plain text in the text style. Setting the
// same text again changes nothing.
func (t *TextView) SetText(text string) *TextView {
	t.Lock()
	if t.getText() == text {
		t.Unlock()
		return t
	}
	t.lines = t.lines[:0]
	for _, line := range strings.Split(text, "\n") {
		t.lines = append(t.lines, t.styledLine(line, t.textStyle))
	}
	t.resetLayout()
	t.Unlock()
	t.contentChanged()
	return t
}

// SetLines replaces the content with styled lines.
func (t *TextView) SetLines(lines []Line) *TextView {
	t.Lock()
	t.lines = make([]Line, 0, len(lines))
	for _, line := range lines {
		copied := make(Line, 0, len(line))
		for _, seg := range line {
			if seg.Text == "" {
				continue
			}
			copied = append(copied, Segment{Text: expandTabs(seg.Text), Style: seg.Style})
		}
		t.lines = append(t.lines, copied)
	}
	t.resetLayout()
	t.Unlock()
	t.contentChanged()
	return t
}

// GetText returns the content without styles, lines joined by newlines.
func (t *TextView) GetText() string {
	t.Lock()
	defer t.Unlock()
	return t.getText()
}

func (t *TextView) getText() string {
	var b strings.Builder
	for i, line := range t.lines {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(line.Text())
	}
	return b.String()
}

// Clear removes all text.
func (t *TextView) Clear() *TextView {
	t.Lock()
	t.lines = nil
	t.lineOffset = 0
	t.resetLayout()
	t.Unlock()
	t.contentChanged()
	return t
}

// Height returns the number of rows needed to show all text at the given
// width, including the box's border and padding.
func (t *TextView) Height(width int) int {
	t.Lock()
	defer t.Unlock()

	chrome := t.paddingTop + t.paddingBottom
	if t.title != "" || t.borders.Has(BordersTop) {
		chrome++
	}
	if t.footer != "" || t.borders.Has(BordersBottom) {
		chrome++
	}
	inner := width - t.paddingLeft - t.paddingRight
	if t.borders.Has(BordersLeft) {
		inner--
	}
	if t.borders.Has(BordersRight) {
		inner--
	}
	t.buildWrapped(max(inner, 1))
	return len(t.wrapped) + chrome
}

// SetChangedFunc sets a function called after the content changes.
func (t *TextView) SetChangedFunc(handler func()) *TextView {
	t.changed = handler
	return t
}

// ScrollTo makes row the first visible wrapped line.
func (t *TextView) ScrollTo(row int) *TextView {
	t.lineOffset = max(row, 0)
	t.trackEnd = false
	return t
}

// ScrollToBeginning shows the first line.
func (t *TextView) ScrollToBeginning() *TextView {
	return t.ScrollTo(0)
}

// ScrollToEnd scrolls to the bottom of the text and keeps following it as
// lines are appended.
func (t *TextView) ScrollToEnd() *TextView {
	t.trackEnd = true
	return t
}

// GetScrollOffset returns the first visible wrapped line.
func (t *TextView) GetScrollOffset() int {
	return t.lineOffset
}

func (t *TextView) contentChanged() {
	if t.changed != nil {
		t.changed()
	}
}

func (t *TextView) resetLayout() {
	t.wrapped = nil
	t.wrappedWidth = -1
}

func (t *TextView) styledLine(text string, style tcell.Style) Line {
	if text == "" {
		return nil
	}
	return Line{{Text: expandTabs(text), Style: style}}
}

func (t *TextView) buildWrapped(width int) {
	if t.wrapped != nil && t.wrappedWidth == width {
		return
	}
	t.wrappedWidth = width
	t.wrapped = make([]Line, 0, len(t.lines))
	for _, line := range t.lines {
		if !t.wrap {
			t.wrapped = append(t.wrapped, line)
			continue
		}
		t.wrapped = append(t.wrapped, wrapLine(line, width)...)
	}
}

func expandTabs(text string) string {
	return strings.ReplaceAll(text, "\t", strings.Repeat(" ", TabSize))
}

// Draw draws the wrapped lines from the scroll offset down.
func (t *TextView) Draw(screen tcell.Screen) {
	t.DrawForSubclass(screen, t)
	t.Lock()
	defer t.Unlock()

	x, y, width, height := t.GetInnerRect()
	if width <= 0 || height <= 0 {
		return
	}
	t.buildWrapped(width)

	if t.trackEnd {
		t.lineOffset = len(t.wrapped) - height
	}
	t.lineOffset = min(t.lineOffset, len(t.wrapped)-height)
	t.lineOffset = max(t.lineOffset, 0)

	for row := 0; row < height && t.lineOffset+row < len(t.wrapped); row++ {
		drawLine(screen, t.wrapped[t.lineOffset+row], x, y+row, width, t.alignment)
	}
}

// drawLine prints a styled line into a row, cutting it off at maxWidth.
func drawLine(screen tcell.Screen, line Line, x, y, maxWidth int, alignment Alignment) {
	var lineWidth int
	for _, seg := range line {
		lineWidth += StringWidth(seg.Text)
	}
	switch alignment {
	case AlignmentCenter:
		x += max((maxWidth-lineWidth)/2, 0)
	case AlignmentRight:
		x += max(maxWidth-lineWidth, 0)
	}
	end := x + min(lineWidth, maxWidth)

	for _, seg := range line {
		text := seg.Text
		state := -1
		for text != "" {
			var c cluster
			c, text, state = nextCluster(text, state)
			if x+c.width > end {
				return
			}
			if c.width > 0 {
				screen.Put(x, y, c.text, seg.Style)
			}
			x += c.width
		}
	}
}

// InputHandler handles key events for this primitive.
func (t *TextView) InputHandler(event *tcell.EventKey) Command {
	_, _, _, height := t.GetInnerRect()
	page := max(height, 1)

	switch event.Key() {
	case tcell.KeyRune:
		switch event.Str() {
		case "g":
			t.ScrollToBeginning()
		case "G":
			t.ScrollToEnd()
		case "j":
			t.ScrollTo(t.lineOffset + 1)
		case "k":
			t.ScrollTo(t.lineOffset - 1)
		default:
			return nil
		}
	case tcell.KeyHome:
		t.ScrollToBeginning()
	case tcell.KeyEnd:
		t.ScrollToEnd()
	case tcell.KeyUp:
		t.ScrollTo(t.lineOffset - 1)
	case tcell.KeyDown:
		t.ScrollTo(t.lineOffset + 1)
	case tcell.KeyPgUp:
		t.ScrollTo(t.lineOffset - page)
	case tcell.KeyPgDn:
		t.ScrollTo(t.lineOffset + page)
	default:
		return nil
	}
	return RedrawCommand{}
}

// MouseHandler focuses the view on press and scrolls on the wheel.
func (t *TextView) MouseHandler(action MouseAction, event *tcell.EventMouse) (Primitive, Command) {
	if !t.InRect(event.Position()) {
		return nil, nil
	}
	switch action {
	case MouseLeftDown:
		return nil, SetFocusCommand{Target: t}
	case MouseScrollUp:
		t.ScrollTo(t.lineOffset - 1)
		return nil, RedrawCommand{}
	case MouseScrollDown:
		t.ScrollTo(t.lineOffset + 1)
		return nil, RedrawCommand{}
	}
	return nil, nil
}

var _ Primitive = &TextView{}
