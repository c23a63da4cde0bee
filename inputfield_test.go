package smiles

import (
	"testing"

	"github.com/gdamore/tcell/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func typeText(i *InputField, text string) {
	for _, r := range text {
		i.InputHandler(runeEvent(string(r)))
	}
}

func TestInputFieldEditing(t *testing.T) {
	var changes []string
	i := NewInputField().SetLabel("Name")
	i.SetChangedFunc(func(text string) { changes = append(changes, text) })

	typeText(i, "Dra")
	i.InputHandler(keyEvent(tcell.KeyLeft))
	typeText(i, "a")
	assert.Equal(t, "Draa", i.GetText())

	i.InputHandler(keyEvent(tcell.KeyHome))
	i.InputHandler(keyEvent(tcell.KeyDelete))
	typeText(i, "D")
	i.InputHandler(keyEvent(tcell.KeyEnd))
	i.InputHandler(keyEvent(tcell.KeyBackspace2))
	assert.Equal(t, "Dra", i.GetText())
	assert.Equal(t, "Dra", changes[len(changes)-1])

	i.InputHandler(keyEvent(tcell.KeyCtrlU))
	assert.Equal(t, "", i.GetText())
	assert.Nil(t, i.InputHandler(keyEvent(tcell.KeyF5)))
}

func TestInputFieldMaxLength(t *testing.T) {
	i := NewInputField()
	i.SetMaxLength(5)
	typeText(i, "hello world")
	assert.Equal(t, "hello", i.GetText())

	i.SetText("")
	i.PasteHandler("ab\ncdefg")
	assert.Equal(t, "ab cd", i.GetText())
}

func TestInputFieldClusters(t *testing.T) {
	i := NewInputField()
	i.PasteHandler("សួស្តី")
	require.NotEmpty(t, i.GetText())
	before := len(splitClusters(i.GetText()))
	i.InputHandler(keyEvent(tcell.KeyBackspace2))
	assert.Equal(t, before-1, len(splitClusters(i.GetText())), "backspace removes a whole cluster")
}

func TestInputFieldFinished(t *testing.T) {
	var keys []tcell.Key
	i := NewInputField()
	i.SetFinishedFunc(func(key tcell.Key) Command {
		keys = append(keys, key)
		return nil
	})

	for _, k := range []tcell.Key{tcell.KeyEnter, tcell.KeyTab, tcell.KeyBacktab, tcell.KeyEscape} {
		assert.NotNil(t, i.InputHandler(keyEvent(k)))
	}
	assert.Equal(t, []tcell.Key{tcell.KeyEnter, tcell.KeyTab, tcell.KeyBacktab, tcell.KeyEscape}, keys)
}

func TestInputFieldDisabled(t *testing.T) {
	i := NewInputField()
	i.SetDisabled(true)
	assert.Nil(t, i.InputHandler(runeEvent("a")))
	assert.Nil(t, i.PasteHandler("text"))
	assert.Equal(t, "", i.GetText())
}

func TestInputFieldDrawsPlaceholder(t *testing.T) {
	i := NewInputField().SetLabel("Name").SetPlaceholder("Your name")
	i.SetRect(0, 0, 30, 1)
	screen := newTestScreen(30, 1)
	i.Draw(screen)
	assert.Contains(t, screen.row(0), "Name")
	assert.Contains(t, screen.row(0), "Your name")

	i.SetText("Sok")
	i.Draw(screen)
	assert.NotContains(t, screen.row(0), "Your name")
	assert.Contains(t, screen.row(0), "Sok")
}
