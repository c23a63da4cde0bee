package keybind

import (
	"testing"

	"github.com/gdamore/tcell/v3"
	"github.com/stretchr/testify/assert"
)

func TestNormalizeKey(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"Ctrl+C", "ctrl+c"},
		{"ctrl-x", "ctrl+x"},
		{"Backtab", "shift+tab"},
		{"shift+tab", "shift+tab"},
		{"Rune[?]", "?"},
		{"Escape", "esc"},
		{"PageDown", "pgdn"},
		{"alt+shift+Q", "alt+shift+q"},
		{"shift+Alt+x", "alt+shift+x"},
		{"ctrl+ctrl+a", "ctrl+a"},
		{"Q", "Q"},
		{"  ", ""},
		{"ctrl+", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, normalizeKey(tt.in), "normalizeKey(%q)", tt.in)
	}
}

func TestMatches(t *testing.T) {
	next := NewKeybind(WithKeys("right", "l"), WithHelp("→/l", "next"))
	quit := NewKeybind(WithKeys("ctrl+c"))
	back := NewKeybind(WithKeys("shift+tab"))

	assert.True(t, Matches(tcell.NewEventKey(tcell.KeyRight, "", tcell.ModNone), next))
	assert.True(t, Matches(tcell.NewEventKey(tcell.KeyRune, "l", tcell.ModNone), next))
	assert.False(t, Matches(tcell.NewEventKey(tcell.KeyRune, "L", tcell.ModNone), next))
	assert.True(t, Matches(tcell.NewEventKey(tcell.KeyCtrlC, "", tcell.ModCtrl), quit))
	assert.True(t, Matches(tcell.NewEventKey(tcell.KeyBacktab, "", tcell.ModShift), back))
	assert.True(t, Matches(tcell.NewEventKey(tcell.KeyBacktab, "", tcell.ModNone), back))
	assert.True(t, Matches(tcell.NewEventKey(tcell.KeyRune, "l", tcell.ModNone), quit, next))
	assert.False(t, Matches(nil, next))

	altShift := NewKeybind(WithKeys("shift+alt+x"))
	assert.True(t, Matches(tcell.NewEventKey(tcell.KeyRune, "x", tcell.ModAlt|tcell.ModShift), altShift))
}

func TestDisabled(t *testing.T) {
	k := NewKeybind(WithKeys("q"), WithDisabled())
	assert.False(t, k.Enabled())
	assert.False(t, Matches(tcell.NewEventKey(tcell.KeyRune, "q", tcell.ModNone), k))

	k.SetEnabled(true)
	assert.True(t, Matches(tcell.NewEventKey(tcell.KeyRune, "q", tcell.ModNone), k))

	assert.False(t, NewKeybind().Enabled(), "no keys")
}

func TestSetters(t *testing.T) {
	k := NewKeybind(WithKeys("a"))
	k.SetKeys("Ctrl+B", "")
	k.SetHelp("^b", "back")
	assert.Equal(t, []string{"ctrl+b"}, k.Keys())
	assert.Equal(t, Help{Key: "^b", Desc: "back"}, k.Help())
}
