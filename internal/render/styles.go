package render

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/username/month-calendar/internal/calendar"
	"github.com/username/month-calendar/internal/config"
)

// CellWidth is the width of one day column
const CellWidth = 2

// PlainMark flags weekend and holiday days when colors are off
const PlainMark = "*"

// Styles maps display classes and chrome to lipgloss styles
type Styles struct {
	Title    lipgloss.Style
	Header   lipgloss.Style
	Hint     lipgloss.Style
	Error    lipgloss.Style
	Selected lipgloss.Style
	Classes  map[calendar.DisplayClass]lipgloss.Style

	// Mark replaces the gap after weekend and holiday days. Empty when
	// the classes are told apart by color.
	Mark string
}

// NewStyles builds colored styles on renderer r. Weekend shares the
// holiday color, the same way the grid classifies Sundays.
func NewStyles(r *lipgloss.Renderer, colors config.ColorsConfig) Styles {
	if r == nil {
		r = lipgloss.DefaultRenderer()
	}

	cell := r.NewStyle().Width(CellWidth).Align(lipgloss.Right)

	return Styles{
		Title:    r.NewStyle().Bold(true).Foreground(color(colors.Title)),
		Header:   cell.Foreground(color(colors.Header)),
		Hint:     r.NewStyle().Foreground(color(colors.Header)),
		Error:    r.NewStyle().Foreground(color(colors.Error)),
		Selected: r.NewStyle().Reverse(true),
		Classes: map[calendar.DisplayClass]lipgloss.Style{
			calendar.DisplayNormal:                cell.Foreground(color(colors.Normal)),
			calendar.DisplayWeekend:               cell.Foreground(color(colors.Holiday)),
			calendar.DisplayHoliday:               cell.Foreground(color(colors.Holiday)),
			calendar.DisplayFadedNormal:           cell.Foreground(color(colors.FadedNormal)),
			calendar.DisplayFadedWeekendOrHoliday: cell.Foreground(color(colors.FadedHoliday)),
		},
	}
}

// PlainStyles returns styles that only lay text out, without any escape
// codes. Weekend and holiday days carry PlainMark instead of a color.
func PlainStyles() Styles {
	cell := lipgloss.NewStyle().Width(CellWidth).Align(lipgloss.Right)

	return Styles{
		Title:    lipgloss.NewStyle(),
		Header:   cell,
		Hint:     lipgloss.NewStyle(),
		Error:    lipgloss.NewStyle(),
		Selected: lipgloss.NewStyle(),
		Classes: map[calendar.DisplayClass]lipgloss.Style{
			calendar.DisplayNormal:                cell,
			calendar.DisplayWeekend:               cell,
			calendar.DisplayHoliday:               cell,
			calendar.DisplayFadedNormal:           cell,
			calendar.DisplayFadedWeekendOrHoliday: cell,
		},
		Mark: PlainMark,
	}
}

// Cell returns the style for a display class
func (s Styles) Cell(class calendar.DisplayClass) lipgloss.Style {
	if style, ok := s.Classes[class]; ok {
		return style
	}
	return lipgloss.NewStyle().Width(CellWidth).Align(lipgloss.Right)
}

// marked reports whether a class stands for a weekend or holiday day
func marked(class calendar.DisplayClass) bool {
	switch class {
	case calendar.DisplayWeekend, calendar.DisplayHoliday, calendar.DisplayFadedWeekendOrHoliday:
		return true
	}
	return false
}

// color returns no color for an empty value
func color(value string) lipgloss.TerminalColor {
	if value == "" {
		return lipgloss.NoColor{}
	}
	return lipgloss.Color(value)
}
