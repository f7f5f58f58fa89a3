package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the key bindings of the terminal dashboard.
type KeyMap struct {
	Sidebar key.Binding
	Theme   key.Binding

	// Carousel.
	Prev key.Binding
	Next key.Binding

	// Events table.
	Up     key.Binding
	Down   key.Binding
	Select key.Binding
	Close  key.Binding

	Quit key.Binding
}

// DefaultKeyMap is the built-in key binding set.
var DefaultKeyMap = KeyMap{
	Sidebar: key.NewBinding(
		key.WithKeys("s"),
		key.WithHelp("s", "sidebar"),
	),
	Theme: key.NewBinding(
		key.WithKeys("d"),
		key.WithHelp("d", "dark mode"),
	),
	Prev: key.NewBinding(
		key.WithKeys("left", "h"),
		key.WithHelp("←", "prev slide"),
	),
	Next: key.NewBinding(
		key.WithKeys("right", "l"),
		key.WithHelp("→", "next slide"),
	),
	Up: key.NewBinding(
		key.WithKeys("up", "k"),
		key.WithHelp("↑", "up"),
	),
	Down: key.NewBinding(
		key.WithKeys("down", "j"),
		key.WithHelp("↓", "down"),
	),
	Select: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "details"),
	),
	Close: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "close"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}

// ShortHelp lists the bindings shown in the footer.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Sidebar, k.Theme, k.Prev, k.Next, k.Up, k.Down, k.Select, k.Close, k.Quit}
}
