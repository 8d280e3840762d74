package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines all key bindings for the TUI.
type KeyMap struct {
	PrevMonth key.Binding
	NextMonth key.Binding
	PrevYear  key.Binding
	NextYear  key.Binding
	EditYear  key.Binding
	EditDate  key.Binding
	Today     key.Binding
	Reload    key.Binding
	Help      key.Binding
	Quit      key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		PrevMonth: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/h", "previous month"),
		),
		NextMonth: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→/l", "next month"),
		),
		PrevYear: key.NewBinding(
			key.WithKeys("[", "up", "k"),
			key.WithHelp("[", "previous year"),
		),
		NextYear: key.NewBinding(
			key.WithKeys("]", "down", "j"),
			key.WithHelp("]", "next year"),
		),
		EditYear: key.NewBinding(
			key.WithKeys("y"),
			key.WithHelp("y", "enter year"),
		),
		EditDate: key.NewBinding(
			key.WithKeys("d", "/"),
			key.WithHelp("d", "enter date"),
		),
		Today: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "today"),
		),
		Reload: key.NewBinding(
			key.WithKeys("R"),
			key.WithHelp("R", "reload holidays"),
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

// ShortHelp returns the footer help text.
func (k KeyMap) ShortHelp() string {
	return "←→ month  [] year  y year  d date  t today  R reload  ? help  q quit"
}

// FullHelp returns all key bindings for the help panel.
func (k KeyMap) FullHelp() [][]string {
	return [][]string{
		{"←/h", "Previous month"},
		{"→/l", "Next month"},
		{"[/↑", "Previous year"},
		{"]/↓", "Next year"},
		{"y", "Type a year (4 digits)"},
		{"d", "Type a date (dd/mm/yyyy)"},
		{"t", "Jump to today"},
		{"R", "Reload holiday files"},
		{"esc", "Leave input"},
		{"?", "Toggle help"},
		{"q", "Quit"},
	}
}
