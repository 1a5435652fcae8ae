package tui

import "github.com/charmbracelet/lipgloss"

// styles is the console's dark-terminal palette.
type styles struct {
	Header      lipgloss.Style
	Tab         lipgloss.Style
	ActiveTab   lipgloss.Style
	Badge       lipgloss.Style
	Row         lipgloss.Style
	SelectedRow lipgloss.Style
	Muted       lipgloss.Style
	ToastOK     lipgloss.Style
	ToastErr    lipgloss.Style
	Overlay     lipgloss.Style
	Advisory    lipgloss.Style

	MarkerUpcoming lipgloss.Style
	MarkerDone     lipgloss.Style
	MarkerNegative lipgloss.Style
}

func defaultStyles() styles {
	return styles{
		Header: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("15")),
		Tab: lipgloss.NewStyle().
			Padding(0, 2).
			Foreground(lipgloss.Color("244")),
		ActiveTab: lipgloss.NewStyle().
			Padding(0, 2).
			Bold(true).
			Foreground(lipgloss.Color("15")).
			Background(lipgloss.Color("25")),
		Badge: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("15")).
			Background(lipgloss.Color("160")).
			Padding(0, 1),
		Row: lipgloss.NewStyle().
			Foreground(lipgloss.Color("252")),
		SelectedRow: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("15")).
			Background(lipgloss.Color("238")),
		Muted: lipgloss.NewStyle().
			Foreground(lipgloss.Color("244")),
		ToastOK: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("42")),
		ToastErr: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("196")),
		Overlay: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("62")).
			Padding(1, 2),
		Advisory: lipgloss.NewStyle().
			Italic(true).
			Foreground(lipgloss.Color("214")),
		MarkerUpcoming: lipgloss.NewStyle().
			Foreground(lipgloss.Color("244")),
		MarkerDone: lipgloss.NewStyle().
			Foreground(lipgloss.Color("42")),
		MarkerNegative: lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")),
	}
}
