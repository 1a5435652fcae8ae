package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines all key bindings for the approval console.
type KeyMap struct {
	// List navigation.
	Up   key.Binding
	Down key.Binding

	// Pagination.
	NextPage key.Binding
	PrevPage key.Binding
	PageSize key.Binding

	// Tab switching.
	TabTickets  key.Binding
	TabTransfer key.Binding
	TabOnHold   key.Binding
	TabConcerns key.Binding

	// Search.
	SearchActivate key.Binding
	SearchClear    key.Binding

	// Mutations.
	Approve key.Binding
	Close   key.Binding
	NewItem key.Binding

	// Detail.
	History key.Binding

	Refresh key.Binding
	Back    key.Binding
	Quit    key.Binding
}

// DefaultKeyMap is the built-in key binding set, vim-style navigation
// alongside arrow keys.
var DefaultKeyMap = KeyMap{
	Up: key.NewBinding(
		key.WithKeys("k", "up"),
		key.WithHelp("k/↑", "up"),
	),
	Down: key.NewBinding(
		key.WithKeys("j", "down"),
		key.WithHelp("j/↓", "down"),
	),
	NextPage: key.NewBinding(
		key.WithKeys("l", "right"),
		key.WithHelp("l/→", "next page"),
	),
	PrevPage: key.NewBinding(
		key.WithKeys("h", "left"),
		key.WithHelp("h/←", "prev page"),
	),
	PageSize: key.NewBinding(
		key.WithKeys("s"),
		key.WithHelp("s", "page size"),
	),
	TabTickets: key.NewBinding(
		key.WithKeys("1"),
		key.WithHelp("1", "tickets"),
	),
	TabTransfer: key.NewBinding(
		key.WithKeys("2"),
		key.WithHelp("2", "for transfer"),
	),
	TabOnHold: key.NewBinding(
		key.WithKeys("3"),
		key.WithHelp("3", "on hold"),
	),
	TabConcerns: key.NewBinding(
		key.WithKeys("4"),
		key.WithHelp("4", "concerns"),
	),
	SearchActivate: key.NewBinding(
		key.WithKeys("/"),
		key.WithHelp("/", "search"),
	),
	SearchClear: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("Esc", "clear search"),
	),
	Approve: key.NewBinding(
		key.WithKeys("a"),
		key.WithHelp("a", "approve"),
	),
	Close: key.NewBinding(
		key.WithKeys("c"),
		key.WithHelp("c", "close ticket"),
	),
	NewItem: key.NewBinding(
		key.WithKeys("n"),
		key.WithHelp("n", "new concern"),
	),
	History: key.NewBinding(
		key.WithKeys("H"),
		key.WithHelp("H", "history"),
	),
	Refresh: key.NewBinding(
		key.WithKeys("r"),
		key.WithHelp("r", "refresh"),
	),
	Back: key.NewBinding(
		key.WithKeys("esc", "backspace"),
		key.WithHelp("Esc", "back"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}
