package render

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/username/month-calendar/internal/calendar"
	"github.com/username/month-calendar/pkg/dateutil"
)

// WeekdayLabels are the column headers of the Monday-first grid
var WeekdayLabels = [calendar.GridColumns]string{"Mo", "Tu", "We", "Th", "Fr", "Sa", "Su"}

// Month renders a grid as a title line, the weekday header and six week rows.
// A non-zero highlight date is drawn with the Selected style.
func Month(grid *calendar.MonthGrid, styles Styles, highlight time.Time) string {
	lines := make([]string, 0, calendar.GridRows+2)

	lines = append(lines, styles.Title.Render(fmt.Sprintf("%s %d", grid.Month, grid.Year)))
	lines = append(lines, Header(styles))

	for _, row := range grid.Rows() {
		lines = append(lines, Row(row, styles, highlight))
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

// Header renders the weekday labels
func Header(styles Styles) string {
	labels := make([]string, len(WeekdayLabels))
	for i, label := range WeekdayLabels {
		labels[i] = styles.Header.Render(label)
	}
	return strings.Join(labels, " ")
}

// Row renders one week of cells. With styles.Mark set, weekend and
// holiday days are followed by the mark instead of a space.
func Row(row []calendar.CalendarCell, styles Styles, highlight time.Time) string {
	var b strings.Builder
	for i, cell := range row {
		style := styles.Cell(cell.Class)
		if !highlight.IsZero() && dateutil.IsSameDay(cell.Date, highlight) {
			style = style.Inherit(styles.Selected)
		}
		b.WriteString(style.Render(fmt.Sprintf("%d", cell.Date.Day())))

		switch {
		case styles.Mark != "" && marked(cell.Class):
			b.WriteString(styles.Mark)
		case i < len(row)-1:
			b.WriteString(" ")
		}
	}
	return b.String()
}

// Describe returns a one-line summary of a cell, e.g.
// "25/12/2024 Wednesday: holiday (holiday)"
func Describe(cell calendar.CalendarCell) string {
	status := "not a holiday"
	if cell.IsHoliday {
		status = "holiday"
	}
	return fmt.Sprintf("%s %s: %s (%s)", dateutil.FormatDate(cell.Date), cell.Date.Weekday(), status, cell.Class)
}
