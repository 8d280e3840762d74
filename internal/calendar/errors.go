package calendar

import (
	"errors"
	"fmt"
)

// ErrInvalidCalendarDate is returned when year/month/day do not form a real date
var ErrInvalidCalendarDate = errors.New("invalid calendar date")

// DateError reports a rejected date entry. Input is set when the
// rejected value was free text that did not split into numbers.
type DateError struct {
	Input string
	Year  int
	Month int
	Day   int
	Err   error
}

func (e *DateError) Error() string {
	if e.Input != "" {
		return fmt.Sprintf("%q: %v", e.Input, e.Err)
	}
	return fmt.Sprintf("%02d/%02d/%04d: %v", e.Day, e.Month, e.Year, e.Err)
}

func (e *DateError) Unwrap() error {
	return e.Err
}
