package smiles

import (
	"github.com/gdamore/tcell/v3"
)

// Box is the base of every primitive. It draws a background, an optional
// border with a title and a footer, and keeps the inner rect the content is
// drawn into. Widgets embed it and draw their content over it.
type Box struct {
	x, y, width, height int

	// The content rect. A negative innerX means it must be computed again.
	innerX, innerY, innerWidth, innerHeight int

	paddingTop, paddingBottom, paddingLeft, paddingRight int

	backgroundColor tcell.Color

	borders     Borders
	borderSet   BorderSet
	borderStyle tcell.Style

	title      string
	titleStyle tcell.Style

	footer      string
	footerStyle tcell.Style

	// Containers ignore this and pass focus on to their children.
	hasFocus bool
}

// NewBox returns a Box without a border.
func NewBox() *Box {
	return &Box{
		width:           15,
		height:          10,
		innerX:          -1,
		backgroundColor: Styles.PrimitiveBackgroundColor,
		borderStyle:     tcell.StyleDefault.Foreground(Styles.BorderColor).Background(Styles.PrimitiveBackgroundColor),
		borderSet:       BorderSetPlain(),
		titleStyle:      tcell.StyleDefault.Foreground(Styles.TitleColor),
		footerStyle:     tcell.StyleDefault.Foreground(Styles.SecondaryTextColor),
	}
}

// SetBorderPadding sets the space between the border and the content.
func (b *Box) SetBorderPadding(top, bottom, left, right int) *Box {
	b.paddingTop, b.paddingBottom, b.paddingLeft, b.paddingRight = top, bottom, left, right
	b.innerX = -1
	return b
}

// GetRect returns the position and size of the box.
func (b *Box) GetRect() (int, int, int, int) {
	return b.x, b.y, b.width, b.height
}

// GetInnerRect returns the rect inside the border and padding. Width and
// height are never negative. A title takes the top row and a footer the
// bottom row even without a border.
func (b *Box) GetInnerRect() (int, int, int, int) {
	if b.innerX >= 0 {
		return b.innerX, b.innerY, b.innerWidth, b.innerHeight
	}

	x, y, width, height := b.GetRect()
	if b.title != "" || b.borders.Has(BordersTop) {
		y++
		height--
	}
	if b.footer != "" || b.borders.Has(BordersBottom) {
		height--
	}
	if b.borders.Has(BordersLeft) {
		x++
		width--
	}
	if b.borders.Has(BordersRight) {
		width--
	}

	x += b.paddingLeft
	y += b.paddingTop
	width = max(width-b.paddingLeft-b.paddingRight, 0)
	height = max(height-b.paddingTop-b.paddingBottom, 0)
	return x, y, width, height
}

// SetRect places the box. Containers and the application call it on every
// layout pass.
func (b *Box) SetRect(x, y, width, height int) {
	if b.x != x || b.y != y || b.width != width || b.height != height {
		b.x, b.y, b.width, b.height = x, y, width, height
		b.innerX = -1
	}
}

// InputHandler ignores key events.
func (b *Box) InputHandler(event *tcell.EventKey) Command {
	return nil
}

// PasteHandler ignores pasted text.
func (b *Box) PasteHandler(text string) Command {
	return nil
}

// MouseHandler focuses the box when it is clicked.
func (b *Box) MouseHandler(action MouseAction, event *tcell.EventMouse) (Primitive, Command) {
	if action == MouseLeftDown && b.InRect(event.Position()) {
		return nil, SetFocusCommand{Target: b}
	}
	return nil, nil
}

// InRect reports whether (x, y) lies within the box.
func (b *Box) InRect(x, y int) bool {
	rectX, rectY, width, height := b.GetRect()
	return x >= rectX && x < rectX+width && y >= rectY && y < rectY+height
}

// InInnerRect reports whether (x, y) lies within the content rect.
func (b *Box) InInnerRect(x, y int) bool {
	rectX, rectY, width, height := b.GetInnerRect()
	return x >= rectX && x < rectX+width && y >= rectY && y < rectY+height
}

// SetBackgroundColor sets the color the box is cleared with.
func (b *Box) SetBackgroundColor(color tcell.Color) *Box {
	b.backgroundColor = color
	b.borderStyle = b.borderStyle.Background(color)
	return b
}

// SetBorders sets which sides get a border.
func (b *Box) SetBorders(flag Borders) *Box {
	b.borders = flag
	b.innerX = -1
	return b
}

// SetBorderSet sets the glyphs of the border.
func (b *Box) SetBorderSet(borderSet BorderSet) *Box {
	b.borderSet = borderSet
	return b
}

// SetBorderStyle sets the style of the border while the box has no focus.
func (b *Box) SetBorderStyle(style tcell.Style) *Box {
	b.borderStyle = style
	return b
}

// GetTitle returns the title.
func (b *Box) GetTitle() string {
	return b.title
}

// SetTitle sets the centered text on the top row.
func (b *Box) SetTitle(title string) *Box {
	if b.title != title {
		b.title = title
		b.innerX = -1
	}
	return b
}

// SetFooter sets the centered text on the bottom row.
func (b *Box) SetFooter(footer string) *Box {
	if b.footer != footer {
		b.footer = footer
		b.innerX = -1
	}
	return b
}

// Draw draws the box.
func (b *Box) Draw(screen tcell.Screen) {
	b.DrawForSubclass(screen, b)
}

// DrawForSubclass draws the box for the primitive p embedding it, so the
// border reflects p's focus rather than the box's.
func (b *Box) DrawForSubclass(screen tcell.Screen, p Primitive) {
	if b.width <= 0 || b.height <= 0 {
		return
	}

	background := tcell.StyleDefault.Background(b.backgroundColor)
	for y := b.y; y < b.y+b.height; y++ {
		fill(screen, b.x, y, b.width, " ", background)
	}

	borderStyle := b.borderStyle
	if p.HasFocus() {
		borderStyle = borderStyle.Foreground(Styles.FocusBorderColor)
	}
	if b.borders != BordersNone && b.width >= 2 && b.height >= 2 {
		b.drawBorder(screen, borderStyle)
	}

	if b.width >= 4 {
		if b.title != "" {
			b.drawEdgeText(screen, b.title, b.y, b.titleStyle)
		}
		if b.footer != "" {
			b.drawEdgeText(screen, b.footer, b.y+b.height-1, b.footerStyle)
		}
	}

	b.innerX = -1
	b.innerX, b.innerY, b.innerWidth, b.innerHeight = b.GetInnerRect()
}

func (b *Box) drawBorder(screen tcell.Screen, style tcell.Style) {
	left, top := b.x, b.y
	right, bottom := b.x+b.width-1, b.y+b.height-1
	set := b.borderSet

	if b.borders.Has(BordersTop) {
		fill(screen, left+1, top, b.width-2, set.Top, style)
	}
	if b.borders.Has(BordersBottom) {
		fill(screen, left+1, bottom, b.width-2, set.Bottom, style)
	}
	for y := top + 1; y < bottom; y++ {
		if b.borders.Has(BordersLeft) {
			screen.Put(left, y, set.Left, style)
		}
		if b.borders.Has(BordersRight) {
			screen.Put(right, y, set.Right, style)
		}
	}

	// A corner is drawn when either of its sides is.
	corners := []struct {
		sides Borders
		x, y  int
		str   string
	}{
		{BordersTop | BordersLeft, left, top, set.TopLeft},
		{BordersTop | BordersRight, right, top, set.TopRight},
		{BordersBottom | BordersLeft, left, bottom, set.BottomLeft},
		{BordersBottom | BordersRight, right, bottom, set.BottomRight},
	}
	for _, corner := range corners {
		if b.borders.Has(corner.sides) {
			screen.Put(corner.x, corner.y, corner.str, style)
		}
	}
}

// drawEdgeText prints a title or footer centered on row y and ends it with
// an ellipsis when it does not fit.
func (b *Box) drawEdgeText(screen tcell.Screen, text string, y int, style tcell.Style) {
	printed, _ := printWithStyle(screen, text, b.x+1, y, b.width-2, AlignmentCenter, style, true)
	if printed > 0 && printed < len(text) {
		x := b.x + b.width - 2
		_, existing, _ := screen.Get(x, y)
		Print(screen, SemigraphicsHorizontalEllipsis, x, y, 1, AlignmentLeft, existing.GetForeground())
	}
}

// Focus gives the box focus.
func (b *Box) Focus(delegate func(p Primitive)) {
	b.hasFocus = true
}

// Blur takes the focus away.
func (b *Box) Blur() {
	b.hasFocus = false
}

// HasFocus reports whether the box has focus.
func (b *Box) HasFocus() bool {
	return b.hasFocus
}

var _ Primitive = &Box{}
