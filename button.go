package smiles

import (
	"github.com/gdamore/tcell/v3"
)

// Button is a one-line label that runs an action on Enter or a click. Forms
// lay buttons out in their last row.
type Button struct {
	*Box

	label    string
	disabled bool

	// Styles while idle, focused, and disabled.
	style, activatedStyle, disabledStyle tcell.Style

	selected func() Command
	// Called with Tab, Backtab, or Escape when the user leaves the button.
	exit func(tcell.Key) Command
}

// NewButton returns a new button.
func NewButton(label string) *Button {
	b := &Button{
		Box:            NewBox(),
		label:          label,
		style:          tcell.StyleDefault.Background(Styles.ContrastBackgroundColor).Foreground(Styles.PrimaryTextColor),
		activatedStyle: tcell.StyleDefault.Background(Styles.PrimaryTextColor).Foreground(Styles.InverseTextColor),
		disabledStyle:  tcell.StyleDefault.Background(Styles.ContrastBackgroundColor).Foreground(Styles.ContrastSecondaryTextColor),
	}
	b.SetRect(0, 0, StringWidth(label)+4, 1)
	return b
}

func (b *Button) SetLabel(label string) *Button {
	b.label = label
	return b
}

func (b *Button) GetLabel() string {
	return b.label
}

// SetStyle sets the style used while the button has no focus.
func (b *Button) SetStyle(style tcell.Style) *Button {
	b.style = style
	return b
}

// SetActivatedStyle sets the style used while the button has focus.
func (b *Button) SetActivatedStyle(style tcell.Style) *Button {
	b.activatedStyle = style
	return b
}

// SetDisabled sets whether the button ignores input. Forms skip disabled
// buttons when moving the focus.
func (b *Button) SetDisabled(disabled bool) *Button {
	b.disabled = disabled
	return b
}

func (b *Button) GetDisabled() bool {
	return b.disabled
}

// SetSelectedFunc sets the action. Its command is executed by the application.
func (b *Button) SetSelectedFunc(handler func() Command) *Button {
	b.selected = handler
	return b
}

// SetExitFunc sets a handler for Tab, Backtab, and Escape.
func (b *Button) SetExitFunc(handler func(key tcell.Key) Command) *Button {
	b.exit = handler
	return b
}

func (b *Button) currentStyle() tcell.Style {
	switch {
	case b.disabled:
		return b.disabledStyle
	case b.HasFocus():
		return b.activatedStyle
	}
	return b.style
}

// Draw draws the label centered on the middle row.
func (b *Button) Draw(screen tcell.Screen) {
	style := b.currentStyle()
	b.SetBackgroundColor(style.GetBackground())
	b.DrawForSubclass(screen, b)

	x, y, width, height := b.GetInnerRect()
	if width > 0 && height > 0 {
		printWithStyle(screen, b.label, x, y+height/2, width, AlignmentCenter, style, true)
	}
}

// InputHandler handles key events for this primitive.
func (b *Button) InputHandler(event *tcell.EventKey) Command {
	if b.disabled {
		return nil
	}
	switch key := event.Key(); key {
	case tcell.KeyEnter:
		return b.activate()
	case tcell.KeyBacktab, tcell.KeyTab, tcell.KeyEscape:
		if b.exit != nil {
			return AppendCommand(b.exit(key), RedrawCommand{})
		}
	}
	return nil
}

// MouseHandler focuses the button on press and activates it on click.
func (b *Button) MouseHandler(action MouseAction, event *tcell.EventMouse) (Primitive, Command) {
	if b.disabled || !b.InRect(event.Position()) {
		return nil, nil
	}
	switch action {
	case MouseLeftDown:
		return nil, SetFocusCommand{Target: b}
	case MouseLeftClick:
		return nil, b.activate()
	}
	return nil, nil
}

func (b *Button) activate() Command {
	if b.selected == nil {
		return RedrawCommand{}
	}
	return AppendCommand(RedrawCommand{}, b.selected())
}

var _ Primitive = &Button{}
