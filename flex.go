package smiles

import (
	"github.com/gdamore/tcell/v3"
)

// Flex directions.
const (
	// FlexRow stacks items from top to bottom.
	FlexRow = iota
	// FlexColumn places items from left to right.
	FlexColumn
)

// flexItem holds layout options for one item.
type flexItem struct {
	Item       Primitive
	FixedSize  int // Size in rows or columns. 0 means proportional.
	Proportion int // Share of the remaining space.
}

// Flex is a basic implementation of the Flexbox layout. The contained
// primitives are arranged horizontally or vertically. Items either have a
// fixed size or receive a share of the remaining space proportional to their
// weight.
type Flex struct {
	*Box

	items     []*flexItem
	direction int
}

// NewFlex returns a new flexbox layout container with no primitives and its
// direction set to FlexRow.
func NewFlex() *Flex {
	return &Flex{
		Box:       NewBox(),
		direction: FlexRow,
	}
}

// SetDirection sets the direction in which the contained primitives are
// distributed.
func (f *Flex) SetDirection(direction int) *Flex {
	f.direction = direction
	return f
}

// AddItem adds a new item to the container. A fixedSize of 0 makes the item's
// size proportional to the others; a nil item leaves an empty gap.
func (f *Flex) AddItem(item Primitive, fixedSize, proportion int) *Flex {
	f.items = append(f.items, &flexItem{Item: item, FixedSize: fixedSize, Proportion: proportion})
	return f
}

// ResizeItem sets a new size for the item(s) with the given primitive.
func (f *Flex) ResizeItem(p Primitive, fixedSize, proportion int) *Flex {
	for _, item := range f.items {
		if item.Item == p && (item.FixedSize != fixedSize || item.Proportion != proportion) {
			item.FixedSize = fixedSize
			item.Proportion = proportion
		}
	}
	return f
}

// GetItemCount returns the number of items in this container.
func (f *Flex) GetItemCount() int {
	return len(f.items)
}

// Clear removes all items from the container.
func (f *Flex) Clear() *Flex {
	f.items = nil
	return f
}

// Draw draws this primitive onto the screen.
func (f *Flex) Draw(screen tcell.Screen) {
	f.DrawForSubclass(screen, f)

	x, y, width, height := f.GetInnerRect()
	total := height
	if f.direction == FlexColumn {
		total = width
	}

	// Fixed items first, the rest is shared. Fixed items that do not fit
	// are cut off.
	var proportionSum int
	remaining := total
	for _, item := range f.items {
		if item.FixedSize > 0 {
			remaining -= item.FixedSize
		} else {
			proportionSum += item.Proportion
		}
	}
	remaining = max(remaining, 0)

	pos := 0
	for _, item := range f.items {
		size := item.FixedSize
		if size <= 0 {
			if proportionSum <= 0 {
				size = 0
			} else {
				size = remaining * item.Proportion / proportionSum
				remaining -= size
				proportionSum -= item.Proportion
			}
		}
		size = min(size, max(total-pos, 0))
		if item.Item != nil {
			if f.direction == FlexColumn {
				item.Item.SetRect(x+pos, y, size, height)
			} else {
				item.Item.SetRect(x, y+pos, width, size)
			}
			if size > 0 {
				item.Item.Draw(screen)
			}
		}
		pos += size
	}
}

// Focus is called when this primitive receives focus. The first item that
// can take it receives it.
func (f *Flex) Focus(delegate func(p Primitive)) {
	for _, item := range f.items {
		if item.Item != nil {
			delegate(item.Item)
			return
		}
	}
	f.Box.Focus(delegate)
}

// HasFocus returns whether or not this primitive has focus.
func (f *Flex) HasFocus() bool {
	for _, item := range f.items {
		if item.Item != nil && item.Item.HasFocus() {
			return true
		}
	}
	return f.Box.HasFocus()
}

// MouseHandler passes mouse events to the item under the pointer.
func (f *Flex) MouseHandler(action MouseAction, event *tcell.EventMouse) (Primitive, Command) {
	if !f.InRect(event.Position()) {
		return nil, nil
	}
	for _, item := range f.items {
		if item.Item == nil {
			continue
		}
		if capture, cmd := item.Item.MouseHandler(action, event); consumed(cmd) || capture != nil {
			return capture, cmd
		}
	}
	return nil, nil
}

// InputHandler passes key events to the focused item.
func (f *Flex) InputHandler(event *tcell.EventKey) Command {
	for _, item := range f.items {
		if item.Item != nil && item.Item.HasFocus() {
			return item.Item.InputHandler(event)
		}
	}
	return nil
}

// PasteHandler passes pasted text to the focused item.
func (f *Flex) PasteHandler(text string) Command {
	for _, item := range f.items {
		if item.Item != nil && item.Item.HasFocus() {
			return item.Item.PasteHandler(text)
		}
	}
	return nil
}

var _ Primitive = &Flex{}
