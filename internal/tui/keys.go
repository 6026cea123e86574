package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines all keybindings of the checklist
type KeyMap struct {
	Up       key.Binding
	Down     key.Binding
	PageUp   key.Binding
	PageDown key.Binding
	Home     key.Binding
	End      key.Binding

	ToggleSeen   key.Binding
	ToggleCaught key.Binding
	AllSeen      key.Binding
	AllCaught    key.Binding

	Filter      key.Binding
	SeenOnly    key.Binding
	CaughtOnly  key.Binding
	MissingOnly key.Binding
	ClearFilter key.Binding

	Open key.Binding // Open the wiki page of the current entry
	Save key.Binding
	Load key.Binding
	Help key.Binding
	Quit key.Binding
	// ForceQuit works even while the filter input has focus
	ForceQuit key.Binding

	// Used while the filter input has focus
	Accept key.Binding
	Cancel key.Binding
}

// DefaultKeyMap returns the default keybindings
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		PageUp: key.NewBinding(
			key.WithKeys("pgup", "ctrl+u"),
			key.WithHelp("PgUp", "page up"),
		),
		PageDown: key.NewBinding(
			key.WithKeys("pgdown", "ctrl+d"),
			key.WithHelp("PgDn", "page down"),
		),
		Home: key.NewBinding(
			key.WithKeys("home", "g"),
			key.WithHelp("g", "first"),
		),
		End: key.NewBinding(
			key.WithKeys("end", "G"),
			key.WithHelp("G", "last"),
		),
		ToggleSeen: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "toggle seen"),
		),
		ToggleCaught: key.NewBinding(
			key.WithKeys("c", " "),
			key.WithHelp("c/space", "toggle caught"),
		),
		AllSeen: key.NewBinding(
			key.WithKeys("S"),
			key.WithHelp("S", "check/uncheck all seen"),
		),
		AllCaught: key.NewBinding(
			key.WithKeys("C"),
			key.WithHelp("C", "check/uncheck all caught"),
		),
		Filter: key.NewBinding(
			key.WithKeys("/"),
			key.WithHelp("/", "filter"),
		),
		SeenOnly: key.NewBinding(
			key.WithKeys("1"),
			key.WithHelp("1", "seen only"),
		),
		CaughtOnly: key.NewBinding(
			key.WithKeys("2"),
			key.WithHelp("2", "caught only"),
		),
		MissingOnly: key.NewBinding(
			key.WithKeys("3"),
			key.WithHelp("3", "missing only"),
		),
		ClearFilter: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "clear filters"),
		),
		Open: key.NewBinding(
			key.WithKeys("o", "enter"),
			key.WithHelp("o", "open wiki"),
		),
		Save: key.NewBinding(
			key.WithKeys("ctrl+s", "w"),
			key.WithHelp("w", "save"),
		),
		Load: key.NewBinding(
			key.WithKeys("ctrl+l", "L"),
			key.WithHelp("L", "load"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		ForceQuit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "quit"),
		),
		Accept: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "apply filter"),
		),
		Cancel: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "clear filter"),
		),
	}
}

// ShortHelp returns the bindings shown in the one-line help
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.ToggleSeen, k.ToggleCaught, k.Filter, k.Save, k.Help, k.Quit}
}

// FullHelp returns the bindings shown in the expanded help
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.PageUp, k.PageDown, k.Home, k.End},
		{k.ToggleSeen, k.ToggleCaught, k.AllSeen, k.AllCaught, k.Open},
		{k.Filter, k.SeenOnly, k.CaughtOnly, k.MissingOnly, k.ClearFilter},
		{k.Save, k.Load, k.Help, k.Quit},
	}
}
