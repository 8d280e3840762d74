package calendar

import (
	"fmt"
	"time"
)

// GridColumns and GridRows describe the fixed Monday-first month grid
const (
	GridColumns = 7
	GridRows    = 6
	GridCells   = GridColumns * GridRows

	// WeekendColumn is the index of Sunday in a Monday-first week
	WeekendColumn = GridColumns - 1
)

// HolidayKind tells recurring rules from one-off ones
type HolidayKind int

const (
	HolidayRecurring HolidayKind = iota + 1
	HolidayOneTime
)

func (k HolidayKind) String() string {
	switch k {
	case HolidayRecurring:
		return "recurring"
	case HolidayOneTime:
		return "one-time"
	default:
		return fmt.Sprintf("HolidayKind(%d)", int(k))
	}
}

// HolidayRule represents one parsed line of the holiday source.
// For recurring rules Year is the first year the holiday is observed,
// for one-time rules it is the exact year.
type HolidayRule struct {
	Month time.Month
	Day   int
	Kind  HolidayKind
	Year  int
}

// DisplayClass is the derived display category of a grid cell
type DisplayClass int

const (
	DisplayNormal DisplayClass = iota + 1
	DisplayWeekend
	DisplayHoliday
	DisplayFadedNormal
	DisplayFadedWeekendOrHoliday
)

func (c DisplayClass) String() string {
	switch c {
	case DisplayNormal:
		return "normal"
	case DisplayWeekend:
		return "weekend"
	case DisplayHoliday:
		return "holiday"
	case DisplayFadedNormal:
		return "faded-normal"
	case DisplayFadedWeekendOrHoliday:
		return "faded-weekend-or-holiday"
	default:
		return fmt.Sprintf("DisplayClass(%d)", int(c))
	}
}

// CalendarCell represents one of the 42 grid positions
type CalendarCell struct {
	Date            time.Time
	IsCurrentMonth  bool
	IsWeekendColumn bool
	IsHoliday       bool
	Class           DisplayClass
}

// MonthGrid is the computed display grid for one month
type MonthGrid struct {
	Year  int
	Month time.Month
	Cells []CalendarCell // GridCells entries, row-major
}

// HolidayChecker answers holiday queries for concrete dates
type HolidayChecker interface {
	IsHoliday(year int, month time.Month, day int) bool
}
