package viewer

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the viewer key bindings.
type KeyMap struct {
	ToggleIndent    key.Binding
	ToggleNumbering key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		ToggleIndent:    key.NewBinding(key.WithKeys("i"), key.WithHelp("i", "toggle indent mode")),
		ToggleNumbering: key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "toggle numbering")),
	}
}

func (k KeyMap) isZero() bool {
	return len(k.ToggleIndent.Keys()) == 0 && len(k.ToggleNumbering.Keys()) == 0
}
