package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/username/month-calendar/internal/render"
)

// View implements tea.Model.
func (m Model) View() string {
	if m.showHelp {
		return m.renderHelp()
	}

	var b strings.Builder

	b.WriteString(render.Month(m.grid, m.styles, m.highlight()))
	b.WriteString("\n\n")

	switch m.mode {
	case inputYear:
		b.WriteString(m.yearInput.View())
		b.WriteString("\n")
		if m.yearInvalid {
			b.WriteString(m.styles.Error.Render(yearEntryInvalid))
		}
	case inputDate:
		b.WriteString(m.dateInput.View())
		b.WriteString("\n")
		if m.dateInvalid {
			b.WriteString(m.styles.Error.Render(dateEntryInvalid))
		} else {
			b.WriteString(m.styles.Hint.Render(dateEntryHint))
		}
	default:
		if m.statusMsg != "" {
			b.WriteString(m.styles.Hint.Render(m.statusMsg))
		}
		b.WriteString("\n")
	}
	b.WriteString("\n")

	b.WriteString(m.styles.Hint.Render(m.keys.ShortHelp()))
	b.WriteString("\n")

	return b.String()
}

func (m Model) renderHelp() string {
	rows := make([]string, 0, len(m.keys.FullHelp())+2)
	rows = append(rows, m.styles.Title.Render("Keys"), "")
	for _, binding := range m.keys.FullHelp() {
		rows = append(rows, fmt.Sprintf("%-6s %s", binding[0], binding[1]))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...) + "\n"
}
