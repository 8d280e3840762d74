package calendar

import (
	"fmt"
	"strings"
	"time"

	"github.com/username/month-calendar/pkg/dateutil"
)

// NavigationTarget is the month the grid should display. Day is set
// only when the target came from an explicit date.
type NavigationTarget struct {
	Year  int
	Month time.Month
	Day   int
}

// ByMonthSelection targets a month directly
func ByMonthSelection(year int, month time.Month) NavigationTarget {
	return NavigationTarget{Year: year, Month: month}
}

// ByExplicitDate targets the month containing the given date. It fails
// with ErrInvalidCalendarDate when the date does not exist.
func ByExplicitDate(year, month, day int) (NavigationTarget, error) {
	if !dateutil.IsValidDate(year, month, day) {
		return NavigationTarget{}, &DateError{
			Year:  year,
			Month: month,
			Day:   day,
			Err:   ErrInvalidCalendarDate,
		}
	}
	return NavigationTarget{Year: year, Month: time.Month(month), Day: day}, nil
}

// ByYearChange keeps the month and switches the year
func ByYearChange(currentMonth time.Month, year int) NavigationTarget {
	return NavigationTarget{Year: year, Month: currentMonth}
}

// ParseDateEntry parses typed "dd/mm/yyyy" input and routes it through
// ByExplicitDate.
func ParseDateEntry(s string) (NavigationTarget, error) {
	day, month, year, err := dateutil.SplitDate(s)
	if err != nil {
		return NavigationTarget{}, &DateError{Input: s, Err: ErrInvalidCalendarDate}
	}
	return ByExplicitDate(year, month, day)
}

// ValidYearEntry reports whether s is acceptable while typing a year:
// digits only and at most four of them.
func ValidYearEntry(s string) bool {
	if len(s) >= 5 {
		return false
	}
	return strings.Trim(s, "0123456789") == ""
}

// AddMonths moves the target by n months, rolling the year as needed.
// The explicit day is dropped. A move past MinYear or MaxYear stays on
// the current month.
func (t NavigationTarget) AddMonths(n int) NavigationTarget {
	first := dateutil.Date(t.Year, t.Month, 1).AddDate(0, n, 0)
	if first.Year() < dateutil.MinYear || first.Year() > dateutil.MaxYear {
		return ByMonthSelection(t.Year, t.Month)
	}
	return ByMonthSelection(first.Year(), first.Month())
}

// Date returns the explicit date, or the 1st of the month when no day was given
func (t NavigationTarget) Date() time.Time {
	day := t.Day
	if day == 0 {
		day = 1
	}
	return dateutil.Date(t.Year, t.Month, day)
}

// Grid computes the grid for the target month
func (t NavigationTarget) Grid(holidays HolidayChecker) *MonthGrid {
	return ComputeGrid(t.Year, t.Month, holidays)
}

// String formats the target as "October 2026"
func (t NavigationTarget) String() string {
	return fmt.Sprintf("%s %d", t.Month, t.Year)
}
