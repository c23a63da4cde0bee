package smiles

import (
	"github.com/gdamore/tcell/v3"
)

// FormItem is a labelled one-row field that a Form lays out and moves the
// focus through.
type FormItem interface {
	Primitive

	GetLabel() string

	// SetLabelWidth reserves width cells for the label so that the fields of
	// a form line up.
	SetLabelWidth(width int) FormItem

	// GetFieldHeight returns the number of rows the field takes, at least 1.
	GetFieldHeight() int

	// SetFinishedFunc sets the handler called with Enter, Escape, Tab, or
	// Backtab when the user leaves the item.
	SetFinishedFunc(handler func(key tcell.Key) Command) FormItem

	// GetDisabled reports whether the item is read-only. Forms skip disabled
	// items when moving the focus.
	GetDisabled() bool
}

// Form stacks one-line form items vertically, followed by a row of buttons.
// Tab and Enter move to the next item, Backtab to the previous one; the focus
// wraps around and skips disabled items and buttons.
type Form struct {
	*Box

	items   []FormItem
	buttons []*Button

	// Empty rows between items.
	itemPadding int

	// Button styles without and with focus.
	buttonStyle, buttonFocusStyle tcell.Style

	// Called on Escape.
	cancel func() Command
}

// NewForm returns a new form.
func NewForm() *Form {
	return &Form{
		Box:                  NewBox().SetBorderPadding(1, 1, 1, 1),
		itemPadding:          1,
		buttonStyle:          tcell.StyleDefault.Background(Styles.ContrastBackgroundColor).Foreground(Styles.PrimaryTextColor),
		buttonFocusStyle:     tcell.StyleDefault.Reverse(true),
	}
}

// AddFormItem appends item below the existing ones.
func (f *Form) AddFormItem(item FormItem) *Form {
	item.SetFinishedFunc(f.finished)
	f.items = append(f.items, item)
	return f
}

// AddButton appends a button running selected.
func (f *Form) AddButton(label string, selected func() Command) *Form {
	return f.AddButtonItem(NewButton(label).SetSelectedFunc(selected))
}

// AddButtonItem appends button to the button row.
func (f *Form) AddButtonItem(button *Button) *Form {
	button.SetExitFunc(f.finished)
	f.buttons = append(f.buttons, button)
	return f
}

// SetCancelFunc sets the handler for Escape.
func (f *Form) SetCancelFunc(callback func() Command) *Form {
	f.cancel = callback
	return f
}

// Height returns the number of rows the form needs, including its border.
func (f *Form) Height() int {
	height := f.paddingTop + f.paddingBottom
	if f.title != "" || f.borders.Has(BordersTop) {
		height++
	}
	if f.footer != "" || f.borders.Has(BordersBottom) {
		height++
	}
	for index, item := range f.items {
		if index > 0 {
			height += f.itemPadding
		}
		height += max(item.GetFieldHeight(), 1)
	}
	if len(f.buttons) > 0 {
		if len(f.items) > 0 {
			height += max(f.itemPadding, 1)
		}
		height++
	}
	return height
}

// Draw lays the items out top to bottom and the buttons left to right below
// them. Items that do not fit get an empty rect so they take no clicks.
func (f *Form) Draw(screen tcell.Screen) {
	f.DrawForSubclass(screen, f)

	x, y, width, height := f.GetInnerRect()
	if width <= 0 || height <= 0 {
		return
	}
	bottom := y + height

	// All fields start in the same column.
	var labelWidth int
	for _, item := range f.items {
		labelWidth = max(labelWidth, StringWidth(item.GetLabel()))
	}
	if labelWidth > 0 {
		labelWidth++
	}

	for index, item := range f.items {
		if index > 0 {
			y += f.itemPadding
		}
		itemHeight := max(item.GetFieldHeight(), 1)
		if y+itemHeight > bottom {
			item.SetRect(x, y, width, 0)
			continue
		}
		item.SetLabelWidth(labelWidth)
		item.SetRect(x, y, width, itemHeight)
		item.Draw(screen)
		y += itemHeight
	}

	if len(f.buttons) == 0 {
		return
	}
	if len(f.items) > 0 {
		y += max(f.itemPadding, 1)
	}
	if y >= bottom {
		return
	}

	bx := x
	for _, button := range f.buttons {
		buttonWidth := min(StringWidth(button.GetLabel())+4, x+width-bx)
		if buttonWidth <= 0 {
			break
		}
		button.SetStyle(f.buttonStyle).SetActivatedStyle(f.buttonFocusStyle)
		button.SetRect(bx, y, buttonWidth, 1)
		button.Draw(screen)
		bx += buttonWidth + 1
	}
}

// Focus passes the focus to the first enabled item or button.
func (f *Form) Focus(delegate func(p Primitive)) {
	if target := f.step(-1, 1); target != nil {
		delegate(target)
		return
	}
	f.Box.Focus(delegate)
}

// step returns the next enabled item or button after position from in the
// given direction, wrapping around.
func (f *Form) step(from, direction int) Primitive {
	total := len(f.items) + len(f.buttons)
	if total == 0 {
		return nil
	}
	focus := from
	if focus < 0 && direction < 0 {
		focus = total
	}
	for range total {
		focus = ((focus+direction)%total + total) % total
		if focus < len(f.items) {
			if !f.items[focus].GetDisabled() {
				return f.items[focus]
			}
		} else if button := f.buttons[focus-len(f.items)]; !button.GetDisabled() {
			return button
		}
	}
	return nil
}

// finished moves the focus when an item or button is left with key.
func (f *Form) finished(key tcell.Key) Command {
	switch key {
	case tcell.KeyTab, tcell.KeyEnter:
		if target := f.step(f.focusIndex(), 1); target != nil {
			return SetFocusCommand{Target: target}
		}
	case tcell.KeyBacktab:
		if target := f.step(f.focusIndex(), -1); target != nil {
			return SetFocusCommand{Target: target}
		}
	case tcell.KeyEscape:
		if f.cancel != nil {
			return f.cancel()
		}
	}
	return nil
}

// focusIndex returns the position of the focused item or button, items
// first, or -1.
func (f *Form) focusIndex() int {
	for index, item := range f.items {
		if item.HasFocus() {
			return index
		}
	}
	for index, button := range f.buttons {
		if button.HasFocus() {
			return len(f.items) + index
		}
	}
	return -1
}

func (f *Form) HasFocus() bool {
	return f.focusIndex() >= 0 || f.Box.HasFocus()
}

// MouseHandler passes mouse events to the items and buttons.
func (f *Form) MouseHandler(action MouseAction, event *tcell.EventMouse) (Primitive, Command) {
	if !f.InRect(event.Position()) {
		return nil, nil
	}
	for _, item := range f.items {
		if item.GetDisabled() {
			continue
		}
		if capture, cmd := item.MouseHandler(action, event); consumed(cmd) || capture != nil {
			return capture, cmd
		}
	}
	for _, button := range f.buttons {
		if capture, cmd := button.MouseHandler(action, event); consumed(cmd) || capture != nil {
			return capture, cmd
		}
	}

	// A mouse down anywhere else focuses the form.
	if action == MouseLeftDown {
		return nil, SetFocusCommand{Target: f}
	}
	return nil, nil
}

// InputHandler passes key events to the focused item or button.
func (f *Form) InputHandler(event *tcell.EventKey) Command {
	for _, item := range f.items {
		if item.HasFocus() {
			return item.InputHandler(event)
		}
	}
	for _, button := range f.buttons {
		if button.HasFocus() {
			return button.InputHandler(event)
		}
	}
	return nil
}

// PasteHandler passes pasted text to the focused item.
func (f *Form) PasteHandler(text string) Command {
	for _, item := range f.items {
		if item.HasFocus() {
			return item.PasteHandler(text)
		}
	}
	return nil
}

var _ Primitive = &Form{}
