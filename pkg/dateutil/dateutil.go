package dateutil

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Bounds for years the calendar navigates to. Dates after MaxYear are
// still real dates: the grid of December 9999 runs into January 10000.
const (
	MinYear = 1
	MaxYear = 9999
)

// Date returns midnight UTC of the given calendar day.
// Out-of-range components are normalized the way time.Date does.
func Date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// MondayIndex returns the weekday of date with Monday=0 ... Sunday=6
func MondayIndex(date time.Time) int {
	return (int(date.Weekday()) + 6) % 7
}

// StartOfWeek returns midnight UTC of the Monday on or before date
func StartOfWeek(date time.Time) time.Time {
	return Date(date.Year(), date.Month(), date.Day()-MondayIndex(date))
}

// IsSameDay returns true if two dates are on the same day
func IsSameDay(date1, date2 time.Time) bool {
	return date1.Year() == date2.Year() &&
		date1.Month() == date2.Month() &&
		date1.Day() == date2.Day()
}

// DaysInMonth returns the number of days in the given month
func DaysInMonth(year int, month time.Month) int {
	return Date(year, month+1, 0).Day()
}

// IsValidDate reports whether year/month/day name a real calendar date.
// time.Date silently normalizes 31/04 to 01/05, so the round trip is compared.
func IsValidDate(year, month, day int) bool {
	if year < MinYear {
		return false
	}
	if month < 1 || month > 12 || day < 1 {
		return false
	}
	t := Date(year, time.Month(month), day)
	return t.Year() == year && int(t.Month()) == month && t.Day() == day
}

// IsValidMonthDay reports whether month/day exists in at least one year,
// which makes 29/02 valid.
func IsValidMonthDay(month, day int) bool {
	if month < 1 || month > 12 || day < 1 {
		return false
	}
	// 2000 is a leap year
	return day <= DaysInMonth(2000, time.Month(month))
}

// SplitDate splits a "dd/mm/yyyy" string into its numeric parts.
// It checks the shape only; calendar validity is up to the caller.
func SplitDate(s string) (day, month, year int, err error) {
	parts := strings.Split(strings.TrimSpace(s), "/")
	if len(parts) != 3 {
		return 0, 0, 0, fmt.Errorf("date %q: expected dd/mm/yyyy", s)
	}

	values := make([]int, 3)
	for i, part := range parts {
		if part == "" || !isDigits(part) {
			return 0, 0, 0, fmt.Errorf("date %q: component %q is not numeric", s, part)
		}
		v, err := strconv.Atoi(part)
		if err != nil {
			return 0, 0, 0, fmt.Errorf("date %q: %w", s, err)
		}
		values[i] = v
	}

	return values[0], values[1], values[2], nil
}

// FormatDate formats date as dd/mm/yyyy
func FormatDate(date time.Time) string {
	return date.Format("02/01/2006")
}

// Today returns today's date (start of day)
func Today() time.Time {
	now := time.Now()
	return Date(now.Year(), now.Month(), now.Day())
}

func isDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
