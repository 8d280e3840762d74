package calendar

import (
	"time"

	"go.uber.org/zap"
)

// CompositeChecker combines several holiday sources; a date is a holiday
// if any of them says so. Used when the configuration lists extra holiday
// files next to the main one.
type CompositeChecker struct {
	checkers []HolidayChecker
	logger   *zap.Logger
}

// NewCompositeChecker creates a new CompositeChecker. Nil checkers are skipped.
func NewCompositeChecker(logger *zap.Logger, checkers ...HolidayChecker) *CompositeChecker {
	if logger == nil {
		logger = zap.NewNop()
	}

	cc := &CompositeChecker{logger: logger}
	for _, c := range checkers {
		if c != nil {
			cc.checkers = append(cc.checkers, c)
		}
	}

	logger.Debug("Composite holiday checker created", zap.Int("sources", len(cc.checkers)))
	return cc
}

// IsHoliday checks the sources in order and stops at the first match
func (cc *CompositeChecker) IsHoliday(year int, month time.Month, day int) bool {
	for _, c := range cc.checkers {
		if c.IsHoliday(year, month, day) {
			return true
		}
	}
	return false
}

// Len returns the number of combined sources
func (cc *CompositeChecker) Len() int {
	return len(cc.checkers)
}
