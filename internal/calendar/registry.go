package calendar

import (
	"sort"
	"time"

	"github.com/username/month-calendar/pkg/dateutil"
	"go.uber.org/zap"
)

// Flags used in the holiday source
const (
	FlagRecurring = "r"
	FlagOneTime   = "n"
)

// RawEntry is one (date, flag) pair read from a holiday source.
// Date is "dd/mm/yyyy", Flag is FlagRecurring or FlagOneTime.
type RawEntry struct {
	Date string `yaml:"date"`
	Flag string `yaml:"flag"`
}

type monthDay struct {
	month time.Month
	day   int
}

type yearMonthDay struct {
	year  int
	month time.Month
	day   int
}

// HolidayRegistry holds parsed holiday rules. It is immutable once built;
// reloading means building a new registry.
type HolidayRegistry struct {
	recurring map[monthDay]HolidayRule
	oneTime   map[yearMonthDay]HolidayRule
	skipped   int
}

// NewHolidayRegistry builds a registry from raw entries. Rows with an
// unknown flag or an unparsable date are dropped and counted, never fatal.
func NewHolidayRegistry(entries []RawEntry, logger *zap.Logger) *HolidayRegistry {
	if logger == nil {
		logger = zap.NewNop()
	}

	r := &HolidayRegistry{
		recurring: make(map[monthDay]HolidayRule),
		oneTime:   make(map[yearMonthDay]HolidayRule),
	}

	for _, entry := range entries {
		if entry.Flag != FlagRecurring && entry.Flag != FlagOneTime {
			// Unknown flags are ignored quietly
			logger.Debug("Ignoring holiday entry with unknown flag",
				zap.String("date", entry.Date),
				zap.String("flag", entry.Flag))
			r.skipped++
			continue
		}

		day, month, year, err := dateutil.SplitDate(entry.Date)
		if err != nil {
			logger.Warn("Dropping malformed holiday entry", zap.String("date", entry.Date), zap.Error(err))
			r.skipped++
			continue
		}

		if entry.Flag == FlagRecurring {
			if !dateutil.IsValidMonthDay(month, day) {
				logger.Warn("Dropping recurring holiday with impossible day",
					zap.String("date", entry.Date))
				r.skipped++
				continue
			}
			key := monthDay{month: time.Month(month), day: day}
			r.recurring[key] = HolidayRule{
				Month: time.Month(month),
				Day:   day,
				Kind:  HolidayRecurring,
				Year:  year,
			}
			continue
		}

		if !dateutil.IsValidDate(year, month, day) {
			logger.Warn("Dropping one-time holiday with invalid date",
				zap.String("date", entry.Date))
			r.skipped++
			continue
		}
		key := yearMonthDay{year: year, month: time.Month(month), day: day}
		r.oneTime[key] = HolidayRule{
			Month: time.Month(month),
			Day:   day,
			Kind:  HolidayOneTime,
			Year:  year,
		}
	}

	logger.Debug("Holiday registry built",
		zap.Int("recurring", len(r.recurring)),
		zap.Int("one_time", len(r.oneTime)),
		zap.Int("skipped", r.skipped))

	return r
}

// IsHoliday checks whether the given date is a holiday. One-time rules
// match exactly, recurring rules match from their effective year on.
func (r *HolidayRegistry) IsHoliday(year int, month time.Month, day int) bool {
	if r == nil {
		return false
	}

	if _, ok := r.oneTime[yearMonthDay{year: year, month: month, day: day}]; ok {
		return true
	}

	rule, ok := r.recurring[monthDay{month: month, day: day}]
	return ok && year >= rule.Year
}

// Skipped returns how many entries were dropped during construction
func (r *HolidayRegistry) Skipped() int {
	if r == nil {
		return 0
	}
	return r.skipped
}

// Len returns the number of stored rules
func (r *HolidayRegistry) Len() int {
	if r == nil {
		return 0
	}
	return len(r.recurring) + len(r.oneTime)
}

// Rules returns all stored rules ordered by month, day and year
func (r *HolidayRegistry) Rules() []HolidayRule {
	if r == nil {
		return nil
	}

	rules := make([]HolidayRule, 0, r.Len())
	for _, rule := range r.recurring {
		rules = append(rules, rule)
	}
	for _, rule := range r.oneTime {
		rules = append(rules, rule)
	}

	sort.Slice(rules, func(i, j int) bool {
		a, b := rules[i], rules[j]
		if a.Month != b.Month {
			return a.Month < b.Month
		}
		if a.Day != b.Day {
			return a.Day < b.Day
		}
		if a.Year != b.Year {
			return a.Year < b.Year
		}
		return a.Kind < b.Kind
	})

	return rules
}
