package menubar

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the key bindings for menu navigation.
type KeyMap struct {
	Prev key.Binding
	Next key.Binding
}

// DefaultKeyMap returns the stock bindings: arrow keys plus vim-style h/l.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Prev: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/h", "scroll back"),
		),
		Next: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→/l", "scroll forward"),
		),
	}
}
