package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Warmer key.Binding
	Cooler key.Binding
	Apply  key.Binding
	Cancel key.Binding
}

var keys = keyMap{
	Warmer: key.NewBinding(
		key.WithKeys("left", "down", "h", "j"),
		key.WithHelp("←/↓", "warmer"),
	),
	Cooler: key.NewBinding(
		key.WithKeys("right", "up", "l", "k"),
		key.WithHelp("→/↑", "cooler"),
	),
	Apply: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("Enter", "apply"),
	),
	Cancel: key.NewBinding(
		key.WithKeys("esc", "q", "ctrl+c"),
		key.WithHelp("Esc", "cancel"),
	),
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Warmer, k.Cooler, k.Apply, k.Cancel}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Warmer, k.Cooler}, {k.Apply, k.Cancel}}
}
