package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the key bindings of the stepper
type KeyMap struct {
	Next    key.Binding
	Reset   key.Binding
	Restart key.Binding
	Focus   key.Binding
	Commit  key.Binding
	Help    key.Binding
	Quit    key.Binding
}

// DefaultKeyMap returns the default key bindings
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Next: key.NewBinding(
			key.WithKeys("enter", " ", "space", "n"),
			key.WithHelp("enter/space/n", "next step"),
		),
		Reset: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "reset"),
		),
		Restart: key.NewBinding(
			key.WithKeys("ctrl+r"),
			key.WithHelp("ctrl+r", "restart"),
		),
		Focus: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "edit expression"),
		),
		Commit: key.NewBinding(
			key.WithKeys("enter", "tab", "esc"),
			key.WithHelp("enter", "use expression"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp returns a short help string
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Next, k.Reset, k.Help, k.Quit}
}

// FullHelp returns the full help string
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Next, k.Reset, k.Restart},
		{k.Focus, k.Commit},
		{k.Help, k.Quit},
	}
}
