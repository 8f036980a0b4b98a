package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the keybindings for the TUI.
type KeyMap struct {
	// Navigation
	Up       key.Binding
	Down     key.Binding
	LoadMore key.Binding

	// Filters
	Search       key.Binding // Edit the free-text query
	NextLanguage key.Binding
	PrevLanguage key.Binding
	Level        key.Binding // Cycle the level filter
	Labels       key.Binding // Open the label picker
	GoodFirst    key.Binding
	SavedOnly    key.Binding
	Reset        key.Binding

	// Saved issues
	Save   key.Binding // Toggle saved for the selected issue
	Panel  key.Binding // Show the saved issues panel
	Remove key.Binding // Remove the active issue (panel)
	Open   key.Binding // Open the issue link

	// General
	Toggle key.Binding // Toggle the highlighted label (label picker)
	Help   key.Binding
	Quit   key.Binding
	Escape key.Binding
	Enter  key.Binding
}

// DefaultKeyMap returns the default keybindings.
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
		LoadMore: key.NewBinding(
			key.WithKeys("m"),
			key.WithHelp("m", "load more"),
		),
		Search: key.NewBinding(
			key.WithKeys("/"),
			key.WithHelp("/", "search"),
		),
		NextLanguage: key.NewBinding(
			key.WithKeys("g"),
			key.WithHelp("g/G", "language"),
		),
		PrevLanguage: key.NewBinding(
			key.WithKeys("G"),
			key.WithHelp("G", "prev language"),
		),
		Level: key.NewBinding(
			key.WithKeys("e"),
			key.WithHelp("e", "level"),
		),
		Labels: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "labels"),
		),
		GoodFirst: key.NewBinding(
			key.WithKeys("f"),
			key.WithHelp("f", "good first only"),
		),
		SavedOnly: key.NewBinding(
			key.WithKeys("v"),
			key.WithHelp("v", "saved only"),
		),
		Reset: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "reset filters"),
		),
		Save: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "save"),
		),
		Panel: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "saved panel"),
		),
		Remove: key.NewBinding(
			key.WithKeys("x", "s"),
			key.WithHelp("x", "remove"),
		),
		Open: key.NewBinding(
			key.WithKeys("o", "enter"),
			key.WithHelp("o", "open link"),
		),
		Toggle: key.NewBinding(
			key.WithKeys(" ", "enter"),
			key.WithHelp("space", "toggle"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		Escape: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "close"),
		),
		Enter: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "apply"),
		),
	}
}

// ShortHelp returns keybindings to show in the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Search, k.Save, k.Panel, k.Open, k.Help, k.Quit}
}

// FullHelp returns keybindings for the expanded help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.LoadMore, k.Open},                                            // Navigation
		{k.Search, k.NextLanguage, k.Level, k.Labels, k.GoodFirst, k.SavedOnly, k.Reset}, // Filters
		{k.Save, k.Panel, k.Remove, k.Escape},                                          // Saved issues
		{k.Help, k.Quit},                                                               // General
	}
}

// panelKeyMap is the help shown while the saved panel is open.
type panelKeyMap struct{ k KeyMap }

func (p panelKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{p.k.Up, p.k.Down, p.k.Remove, p.k.Open, p.k.Escape}
}

func (p panelKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{p.ShortHelp()}
}
