package ui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the calculator key bindings.
//
// The keyboard is an accessibility path to the same buttons the mouse
// clicks: arrows move the focus and enter presses the focused button.
// Expression text is never typed; there are no bindings for digits or
// operators.
type KeyMap struct {
	Left, Right, Up, Down key.Binding

	Press   key.Binding
	Dismiss key.Binding
	Help    key.Binding
	Quit    key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Left:  key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "left")),
		Right: key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "right")),
		Up:    key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:  key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),

		Press:   key.NewBinding(key.WithKeys("enter", " "), key.WithHelp("enter", "press")),
		Dismiss: key.NewBinding(key.WithKeys("esc", "enter"), key.WithHelp("esc", "dismiss")),
		Help:    key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "more")),
		Quit:    key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Press, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right},
		{k.Press, k.Dismiss},
		{k.Help, k.Quit},
	}
}
