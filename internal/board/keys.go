package board

import (
	"github.com/xqrs/smiles"
	"github.com/xqrs/smiles/keybind"
)

// KeyMap holds the board's global key bindings and the carousel's, for the
// help bar.
type KeyMap struct {
	NextSection keybind.Keybind
	PrevSection keybind.Keybind
	Help        keybind.Keybind
	Quit        keybind.Keybind
	// ForceQuit also works while typing in the form.
	ForceQuit keybind.Keybind
	Carousel  smiles.CarouselKeyMap
}

// DefaultKeyMap returns the default bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		NextSection: keybind.NewKeybind(keybind.WithKeys("tab"), keybind.WithHelp("tab", "next section")),
		PrevSection: keybind.NewKeybind(keybind.WithKeys("shift+tab"), keybind.WithHelp("shift+tab", "previous section")),
		Help:        keybind.NewKeybind(keybind.WithKeys("?"), keybind.WithHelp("?", "more")),
		Quit:        keybind.NewKeybind(keybind.WithKeys("q"), keybind.WithHelp("q", "quit")),
		ForceQuit:   keybind.NewKeybind(keybind.WithKeys("ctrl+c"), keybind.WithHelp("ctrl+c", "quit")),
		Carousel:    smiles.DefaultCarouselKeyMap(),
	}
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []keybind.Keybind {
	return []keybind.Keybind{k.NextSection, k.Carousel.Prev, k.Carousel.Next, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]keybind.Keybind {
	return [][]keybind.Keybind{
		{k.NextSection, k.PrevSection},
		{k.Carousel.Prev, k.Carousel.Next},
		{k.Help, k.Quit, k.ForceQuit},
	}
}
