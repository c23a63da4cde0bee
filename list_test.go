package smiles

import (
	"fmt"
	"strings"
	"testing"

	"github.com/gdamore/tcell/v3"
	"github.com/stretchr/testify/assert"
)

func newTestList(n int) *List {
	views := make([]*TextView, n)
	for i := range views {
		views[i] = NewTextView()
		views[i].SetText(fmt.Sprintf("message %d\nfrom friend %d", i, i))
	}
	return NewList().SetBuilder(func(index, cursor int) ListItem {
		if index < 0 || index >= len(views) {
			return nil
		}
		return views[index]
	})
}

func TestListCursor(t *testing.T) {
	l := newTestList(3)
	assert.Equal(t, -1, l.Cursor())

	assert.True(t, l.NextItem())
	assert.True(t, l.NextItem())
	assert.True(t, l.NextItem())
	assert.False(t, l.NextItem())
	assert.Equal(t, 2, l.Cursor())

	assert.True(t, l.PrevItem())
	assert.Equal(t, 1, l.Cursor())

	l.SetCursor(-5)
	assert.Equal(t, -1, l.Cursor())
	assert.False(t, l.PrevItem())
}

func TestListDrawScrollsToCursor(t *testing.T) {
	l := newTestList(5).SetGap(1)
	l.SetRect(0, 0, 30, 5)
	screen := newTestScreen(30, 5)

	l.Draw(screen)
	assert.Equal(t, "message 0", strings.TrimSpace(screen.row(0)[:29]))

	l.SetCursor(4)
	screen.Clear()
	l.Draw(screen)
	assert.Contains(t, screen.text(), "from friend 4")
	assert.NotContains(t, screen.text(), "message 0")

	l.ScrollToStart()
	screen.Clear()
	l.Draw(screen)
	assert.Contains(t, screen.row(0), "message 0")
}

func TestListKeysAndMouse(t *testing.T) {
	l := newTestList(4)
	l.SetRect(0, 0, 30, 4)
	screen := newTestScreen(30, 4)
	l.Draw(screen)

	assert.Equal(t, RedrawCommand{}, l.InputHandler(keyEvent(tcell.KeyDown)))
	assert.Equal(t, 0, l.Cursor())
	assert.Nil(t, l.InputHandler(runeEvent("z")))

	_, cmd := l.MouseHandler(MouseLeftDown, mouseEvent(3, 3))
	assert.Equal(t, SetFocusCommand{Target: l}, cmd)
	l.MouseHandler(MouseLeftClick, mouseEvent(3, 3))
	assert.Equal(t, 1, l.Cursor())

	l.MouseHandler(MouseScrollDown, mouseEvent(3, 3))
	l.Draw(screen)
	assert.Contains(t, screen.row(0), "from friend 1")

	capture, cmd := l.MouseHandler(MouseLeftClick, mouseEvent(3, 30))
	assert.Nil(t, capture)
	assert.Nil(t, cmd)
}

func TestListClear(t *testing.T) {
	l := newTestList(2)
	l.SetCursor(1)
	l.Clear()
	assert.Equal(t, -1, l.Cursor())
	assert.False(t, l.NextItem())

	l.SetRect(0, 0, 10, 3)
	l.Draw(newTestScreen(10, 3))
	assert.Empty(t, l.lastDraw)
}
