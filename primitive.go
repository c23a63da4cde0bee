package smiles

import "github.com/gdamore/tcell/v3"

// Primitive is implemented by every widget the board is assembled from.
// Handlers never touch the application directly; they return [Command]
// values which the event loop executes.
type Primitive interface {
	// Draw draws the primitive. Only a focused primitive may show the cursor.
	Draw(screen tcell.Screen)

	// GetRect returns the position and size of the primitive.
	GetRect() (int, int, int, int)
	// SetRect places the primitive.
	SetRect(x, y, width, height int)

	// InputHandler receives key events while the primitive has focus.
	InputHandler(event *tcell.EventKey) Command
	// MouseHandler receives mouse events. A non-nil capture receives every
	// following mouse event until it returns nil, which lets a drag continue
	// outside the primitive.
	MouseHandler(action MouseAction, event *tcell.EventMouse) (capture Primitive, cmd Command)
	// PasteHandler receives bracketed paste text while the primitive has focus.
	PasteHandler(text string) Command

	// HasFocus reports whether the primitive or one of its children has focus.
	HasFocus() bool
	// Focus gives the primitive focus. Containers pass it on through delegate.
	Focus(delegate func(p Primitive))
	// Blur takes the focus away.
	Blur()
}
