package calendar

import (
	"time"

	"github.com/username/month-calendar/pkg/dateutil"
)

// ComputeGrid builds the 42-cell Monday-first grid for the given month.
// month must be in 1..12. A nil holidays checker marks no holidays.
func ComputeGrid(year int, month time.Month, holidays HolidayChecker) *MonthGrid {
	first := dateutil.Date(year, month, 1)
	start := dateutil.StartOfWeek(first)

	grid := &MonthGrid{
		Year:  year,
		Month: month,
		Cells: make([]CalendarCell, GridCells),
	}

	for i := range grid.Cells {
		date := start.AddDate(0, 0, i)

		cell := CalendarCell{
			Date: date,
			// Only the month number is compared, the year is not
			IsCurrentMonth:  date.Month() == month,
			IsWeekendColumn: i%GridColumns == WeekendColumn,
		}
		if holidays != nil {
			cell.IsHoliday = holidays.IsHoliday(date.Year(), date.Month(), date.Day())
		}
		cell.Class = classify(cell)

		grid.Cells[i] = cell
	}

	return grid
}

func classify(cell CalendarCell) DisplayClass {
	marked := cell.IsWeekendColumn || cell.IsHoliday
	switch {
	case cell.IsCurrentMonth && marked:
		return DisplayHoliday
	case cell.IsCurrentMonth:
		return DisplayNormal
	case marked:
		return DisplayFadedWeekendOrHoliday
	default:
		return DisplayFadedNormal
	}
}

// Rows returns the grid split into weeks
func (g *MonthGrid) Rows() [][]CalendarCell {
	rows := make([][]CalendarCell, 0, GridRows)
	for i := 0; i+GridColumns <= len(g.Cells); i += GridColumns {
		rows = append(rows, g.Cells[i:i+GridColumns])
	}
	return rows
}

// Cell returns the cell at row/col
func (g *MonthGrid) Cell(row, col int) CalendarCell {
	return g.Cells[row*GridColumns+col]
}

// Find returns the cell holding date, if the grid contains it
func (g *MonthGrid) Find(date time.Time) (CalendarCell, bool) {
	for _, cell := range g.Cells {
		if dateutil.IsSameDay(cell.Date, date) {
			return cell, true
		}
	}
	return CalendarCell{}, false
}

// First returns the first day of the grid's month
func (g *MonthGrid) First() time.Time {
	return dateutil.Date(g.Year, g.Month, 1)
}
