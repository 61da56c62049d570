package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines all key bindings for the application.
// Closed-state bindings are plain keys; open-state bindings use ctrl
// chords because printable keys go to the search input.
type KeyMap struct {
	// Closed
	Toggle     key.Binding
	Add        key.Binding
	Delete     key.Binding
	Sync       key.Binding
	CancelSync key.Binding
	Clear      key.Binding
	YankURL    key.Binding
	Export     key.Binding
	Help       key.Binding
	Quit       key.Binding

	// Open
	Up        key.Binding
	Down      key.Binding
	Activate  key.Binding
	DeleteRow key.Binding
	SyncRow   key.Binding
	AddRow    key.Binding
	Close     key.Binding

	// Dialogs
	Submit    key.Binding
	Back      key.Binding
	Yes       key.Binding
	No        key.Binding
	ForceQuit key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Toggle: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter/space", "open"),
		),
		Add: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "add url"),
		),
		Delete: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "delete"),
		),
		Sync: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "sync"),
		),
		CancelSync: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "cancel sync"),
		),
		Clear: key.NewBinding(
			key.WithKeys("x"),
			key.WithHelp("x", "clear"),
		),
		YankURL: key.NewBinding(
			key.WithKeys("y"),
			key.WithHelp("y", "yank URL"),
		),
		Export: key.NewBinding(
			key.WithKeys("E"),
			key.WithHelp("E", "export"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		Up: key.NewBinding(
			key.WithKeys("up", "ctrl+k"),
			key.WithHelp("↑/ctrl+k", "move up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "ctrl+j"),
			key.WithHelp("↓/ctrl+j", "move down"),
		),
		Activate: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "select"),
		),
		DeleteRow: key.NewBinding(
			key.WithKeys("ctrl+x"),
			key.WithHelp("ctrl+x", "delete"),
		),
		SyncRow: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "sync"),
		),
		AddRow: key.NewBinding(
			key.WithKeys("ctrl+o"),
			key.WithHelp("ctrl+o", "add url"),
		),
		Close: key.NewBinding(
			key.WithKeys("esc", "tab"),
			key.WithHelp("esc/tab", "close"),
		),
		Submit: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "confirm"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "cancel"),
		),
		Yes: key.NewBinding(
			key.WithKeys("y"),
			key.WithHelp("y", "yes"),
		),
		No: key.NewBinding(
			key.WithKeys("n"),
			key.WithHelp("n", "no"),
		),
		ForceQuit: key.NewBinding(
			key.WithKeys("ctrl+c"),
		),
	}
}
