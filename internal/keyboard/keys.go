package keyboard

import (
	"github.com/charmbracelet/bubbles/key"
)

// Keys holds the application key bindings.
type Keys struct {
	// Global
	OpenPalette key.Binding
	Record      key.Binding
	Meeting     key.Binding
	Quit        key.Binding
	Help        key.Binding

	// Palette session
	Next    key.Binding
	Prev    key.Binding
	Confirm key.Binding
	Dismiss key.Binding
}

// Default returns the default key bindings.
func Default() *Keys {
	return &Keys{
		OpenPalette: key.NewBinding(
			key.WithKeys("ctrl+k", "ctrl+p", ":"),
			key.WithHelp("ctrl+k", "commands"),
		),
		Record: key.NewBinding(
			key.WithKeys("R"),
			key.WithHelp("R", "record"),
		),
		Meeting: key.NewBinding(
			key.WithKeys("M"),
			key.WithHelp("M", "meeting"),
		),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c", "q"),
			key.WithHelp("q", "quit"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),

		Next: key.NewBinding(
			key.WithKeys("down", "ctrl+n", "tab"),
			key.WithHelp("↓", "next"),
		),
		Prev: key.NewBinding(
			key.WithKeys("up", "ctrl+p", "shift+tab"),
			key.WithHelp("↑", "previous"),
		),
		Confirm: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "run"),
		),
		Dismiss: key.NewBinding(
			key.WithKeys("esc", "ctrl+c"),
			key.WithHelp("esc", "close"),
		),
	}
}

// GlobalHelp is the help.KeyMap for the host screens.
type GlobalHelp struct{ *Keys }

// ShortHelp implements help.KeyMap.
func (k GlobalHelp) ShortHelp() []key.Binding {
	return []key.Binding{k.OpenPalette, k.Record, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k GlobalHelp) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.OpenPalette, k.Record, k.Meeting},
		{k.Next, k.Prev, k.Confirm, k.Dismiss},
		{k.Help, k.Quit},
	}
}

// PaletteHelp is the help.KeyMap shown while the palette is open.
type PaletteHelp struct{ *Keys }

// ShortHelp implements help.KeyMap.
func (k PaletteHelp) ShortHelp() []key.Binding {
	return []key.Binding{k.Next, k.Prev, k.Confirm, k.Dismiss}
}

// FullHelp implements help.KeyMap.
func (k PaletteHelp) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}
