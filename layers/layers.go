// Package layers stacks primitives on top of each other. The board uses it
// for the page, the modal key list, and transient notifications.
package layers

import (
	"github.com/gdamore/tcell/v3"
	"github.com/xqrs/smiles"
)

type layer struct {
	name string
	item smiles.Primitive
	// Whether the layer is stretched over the container on every draw.
	resize  bool
	visible bool
	// Whether the layer takes focus, keys, and mouse events.
	enabled bool
	// Whether the layer is modal, dimming and blocking the layers below.
	overlay bool
}

// live reports whether the layer takes part in focus and input.
func (l *layer) live() bool {
	return l.visible && l.enabled
}

// Layers draws its layers from back to front. The front-most live overlay
// layer makes the layers behind it inert and restyles them with the
// background layer style.
type Layers struct {
	*smiles.Box

	layers          []*layer
	backgroundStyle tcell.Style
}

// Option configures a layer on AddLayer.
type Option func(*layer)

// WithName names the layer. Names are used to show, hide, and replace layers.
func WithName(name string) Option {
	return func(l *layer) {
		l.name = name
	}
}

// WithResize sets whether the layer fills the container's inner rect.
// Layers that are not resized are placed by the caller.
func WithResize(resize bool) Option {
	return func(l *layer) {
		l.resize = resize
	}
}

// WithVisible sets the initial visibility of the layer.
func WithVisible(visible bool) Option {
	return func(l *layer) {
		l.visible = visible
	}
}

// WithEnabled sets whether the layer can receive focus and input.
func WithEnabled(enabled bool) Option {
	return func(l *layer) {
		l.enabled = enabled
	}
}

// WithOverlay makes the layer modal while it is visible.
func WithOverlay() Option {
	return func(l *layer) {
		l.overlay = true
	}
}

// New returns an empty stack.
func New() *Layers {
	return &Layers{Box: smiles.NewBox()}
}

// AddLayer puts item in front of the existing layers. A layer with the same
// name is removed first.
func (l *Layers) AddLayer(item smiles.Primitive, opts ...Option) *Layers {
	added := &layer{item: item, visible: true, enabled: true}
	for _, opt := range opts {
		opt(added)
	}
	if added.name != "" {
		if index := l.index(added.name); index >= 0 {
			l.layers = append(l.layers[:index], l.layers[index+1:]...)
		}
	}
	l.layers = append(l.layers, added)
	return l
}

func (l *Layers) index(name string) int {
	for index, layer := range l.layers {
		if layer.name == name {
			return index
		}
	}
	return -1
}

// GetVisible reports whether the named layer is visible.
func (l *Layers) GetVisible(name string) bool {
	index := l.index(name)
	return index >= 0 && l.layers[index].visible
}

// ShowLayer makes the named layer visible. Other layers keep their state.
func (l *Layers) ShowLayer(name string) *Layers {
	return l.setVisible(name, true)
}

// HideLayer hides the named layer and takes the focus from it.
func (l *Layers) HideLayer(name string) *Layers {
	return l.setVisible(name, false)
}

func (l *Layers) setVisible(name string, visible bool) *Layers {
	index := l.index(name)
	if index < 0 {
		return l
	}
	layer := l.layers[index]
	layer.visible = visible
	if !visible && layer.item.HasFocus() {
		layer.item.Blur()
	}
	return l
}

// SetBackgroundLayerStyle sets the style merged into the layers behind a
// visible overlay. Colors left at their default and attributes other than dim
// are ignored.
func (l *Layers) SetBackgroundLayerStyle(style tcell.Style) *Layers {
	l.backgroundStyle = style
	return l
}

// front returns the index of the front-most live layer accepted by match, or
// -1.
func (l *Layers) front(match func(*layer) bool) int {
	for index := len(l.layers) - 1; index >= 0; index-- {
		if layer := l.layers[index]; layer.live() && match(layer) {
			return index
		}
	}
	return -1
}

func (l *Layers) overlayIndex() int {
	return l.front(func(layer *layer) bool { return layer.overlay })
}

// focused returns the enabled layer holding the focus, or nil.
func (l *Layers) focused() *layer {
	for _, layer := range l.layers {
		if layer.enabled && layer.item.HasFocus() {
			return layer
		}
	}
	return nil
}

// HasFocus reports whether an enabled layer or the stack itself has focus.
func (l *Layers) HasFocus() bool {
	return l.focused() != nil || l.Box.HasFocus()
}

// Focus passes the focus to the front-most live layer.
func (l *Layers) Focus(delegate func(p smiles.Primitive)) {
	if index := l.front(func(*layer) bool { return true }); index >= 0 {
		delegate(l.layers[index].item)
		return
	}
	l.Box.Focus(delegate)
}

// Draw draws the visible layers from back to front.
func (l *Layers) Draw(screen tcell.Screen) {
	l.DrawForSubclass(screen, l)

	overlay := l.overlayIndex()
	for index, layer := range l.layers {
		if !layer.visible {
			continue
		}
		target := screen
		if index < overlay {
			target = &backgroundScreen{Screen: screen, style: l.backgroundStyle}
		}
		if layer.resize {
			layer.item.SetRect(l.GetInnerRect())
		}
		layer.item.Draw(target)
	}
}

// MouseHandler offers the event to the live layers from front to back and
// stops at an overlay, which consumes whatever its primitive ignores.
func (l *Layers) MouseHandler(action smiles.MouseAction, event *tcell.EventMouse) (smiles.Primitive, smiles.Command) {
	if !l.InRect(event.Position()) {
		return nil, nil
	}

	overlay := l.overlayIndex()
	for index := len(l.layers) - 1; index >= max(overlay, 0); index-- {
		layer := l.layers[index]
		if !layer.live() {
			continue
		}
		if capture, cmd := layer.item.MouseHandler(action, event); cmd != nil || capture != nil {
			return capture, cmd
		}
	}
	if overlay >= 0 {
		return nil, smiles.ConsumeEventCommand{}
	}
	return nil, nil
}

// InputHandler passes key events to the layer holding the focus.
func (l *Layers) InputHandler(event *tcell.EventKey) smiles.Command {
	if layer := l.focused(); layer != nil {
		return layer.item.InputHandler(event)
	}
	return nil
}

// PasteHandler passes pasted text to the layer holding the focus.
func (l *Layers) PasteHandler(text string) smiles.Command {
	if layer := l.focused(); layer != nil {
		return layer.item.PasteHandler(text)
	}
	return nil
}

// backgroundScreen merges a style into every cell drawn through it.
type backgroundScreen struct {
	tcell.Screen
	style tcell.Style
}

func (s *backgroundScreen) Put(x, y int, str string, style tcell.Style) (string, int) {
	if fg := s.style.GetForeground(); fg != tcell.ColorDefault {
		style = style.Foreground(fg)
	}
	if bg := s.style.GetBackground(); bg != tcell.ColorDefault {
		style = style.Background(bg)
	}
	if s.style.HasDim() {
		style = style.Dim(true)
	}
	return s.Screen.Put(x, y, str, style)
}

var _ smiles.Primitive = &Layers{}
