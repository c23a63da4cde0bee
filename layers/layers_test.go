package layers

import (
	"testing"

	"github.com/gdamore/tcell/v3"
	"github.com/stretchr/testify/assert"
	"github.com/xqrs/smiles"
)

// styleScreen remembers the style of every cell drawn.
type styleScreen struct {
	tcell.Screen
	width, height int
	styles        map[[2]int]tcell.Style
}

func newStyleScreen(width, height int) *styleScreen {
	return &styleScreen{width: width, height: height, styles: map[[2]int]tcell.Style{}}
}

func (s *styleScreen) Size() (int, int) { return s.width, s.height }

func (s *styleScreen) Put(x, y int, str string, style tcell.Style) (string, int) {
	s.styles[[2]int{x, y}] = style
	return "", 1
}

func focus(p smiles.Primitive) smiles.Primitive {
	target := p
	p.Focus(func(next smiles.Primitive) { target = focus(next) })
	return target
}

func TestAddLayerReplacesName(t *testing.T) {
	first, second := smiles.NewBox(), smiles.NewBox()
	l := New().
		AddLayer(first, WithName("page")).
		AddLayer(second, WithName("page"), WithVisible(false))

	assert.Len(t, l.layers, 1)
	assert.Same(t, second, l.layers[0].item)
	assert.False(t, l.GetVisible("page"))
	assert.False(t, l.GetVisible("missing"))
}

func TestShowHide(t *testing.T) {
	page, dialog := smiles.NewBox(), smiles.NewBox()
	l := New().
		AddLayer(page, WithName("page")).
		AddLayer(dialog, WithName("dialog"), WithVisible(false))

	assert.Equal(t, smiles.Primitive(page), focus(l))

	l.ShowLayer("dialog")
	assert.True(t, l.GetVisible("dialog"))
	page.Blur()
	assert.Equal(t, smiles.Primitive(dialog), focus(l), "the front layer takes the focus")
	assert.True(t, l.HasFocus())

	l.HideLayer("dialog")
	assert.False(t, dialog.HasFocus(), "hiding blurs")
	assert.False(t, l.HasFocus())
}

func TestDisabledLayerGetsNoFocusOrInput(t *testing.T) {
	page := smiles.NewInputField()
	toast := smiles.NewTextView()
	l := New().
		AddLayer(page, WithName("page")).
		AddLayer(toast, WithName("toast"), WithEnabled(false))

	assert.Equal(t, smiles.Primitive(page), focus(l))
	l.InputHandler(tcell.NewEventKey(tcell.KeyRune, "a", tcell.ModNone))
	l.PasteHandler("bc")
	assert.Equal(t, "abc", page.GetText())
}

func TestOverlayDimsAndBlocks(t *testing.T) {
	page := smiles.NewButton("page")
	dialog := smiles.NewBox()
	l := New().
		SetBackgroundLayerStyle(tcell.StyleDefault.Dim(true)).
		AddLayer(page, WithName("page"), WithResize(true)).
		AddLayer(dialog, WithName("dialog"), WithResize(false), WithOverlay(), WithVisible(false))
	l.SetRect(0, 0, 20, 10)
	dialog.SetRect(5, 3, 10, 4)

	screen := newStyleScreen(20, 10)
	l.Draw(screen)
	assert.False(t, screen.styles[[2]int{0, 0}].HasDim())

	click := tcell.NewEventMouse(1, 1, tcell.Button1, tcell.ModNone)
	_, cmd := l.MouseHandler(smiles.MouseLeftDown, click)
	assert.Equal(t, smiles.SetFocusCommand{Target: page}, cmd)

	l.ShowLayer("dialog")
	screen = newStyleScreen(20, 10)
	l.Draw(screen)
	assert.True(t, screen.styles[[2]int{0, 0}].HasDim(), "page behind the overlay is dimmed")
	assert.False(t, screen.styles[[2]int{6, 4}].HasDim(), "the overlay itself is not")

	_, cmd = l.MouseHandler(smiles.MouseLeftDown, click)
	assert.Equal(t, smiles.ConsumeEventCommand{}, cmd, "clicks do not reach the page")
}
