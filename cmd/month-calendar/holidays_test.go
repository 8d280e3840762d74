package main

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/username/month-calendar/internal/calendar"
	"github.com/username/month-calendar/internal/config"
	"go.uber.org/zap"
)

func TestFormatRule(t *testing.T) {
	tests := []struct {
		name string
		rule calendar.HolidayRule
		want string
	}{
		{
			name: "recurring",
			rule: calendar.HolidayRule{Month: time.December, Day: 25, Kind: calendar.HolidayRecurring, Year: 2000},
			want: "25/12       every year since 2000",
		},
		{
			name: "one-time",
			rule: calendar.HolidayRule{Month: time.May, Day: 1, Kind: calendar.HolidayOneTime, Year: 2024},
			want: "01/05/2024  once",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := formatRule(tt.rule); got != tt.want {
				t.Errorf("formatRule() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestLoadSourcesAndSnapshot(t *testing.T) {
	dir := t.TempDir()
	mainFile := filepath.Join(dir, "holidays.txt")
	extra := filepath.Join(dir, "personal.yaml")

	if err := os.WriteFile(mainFile, []byte("25/12/2000,r\n"), 0o644); err != nil {
		t.Fatalf("failed to write holidays: %v", err)
	}
	if err := os.WriteFile(extra, []byte("holidays:\n  - {date: 14/03/2026, flag: n}\n"), 0o644); err != nil {
		t.Fatalf("failed to write extra holidays: %v", err)
	}

	logger = zap.NewNop()
	cfg = &config.Config{
		Holidays: config.HolidaysConfig{
			File:       mainFile,
			ExtraFiles: []string{extra, filepath.Join(dir, "missing.txt")},
		},
	}

	sources := loadSources()
	if len(sources) != 3 {
		t.Fatalf("loadSources() returned %d sources, want 3", len(sources))
	}

	holidays := snapshot(sources)
	if !holidays.IsHoliday(2026, time.December, 25) {
		t.Error("recurring holiday from main file not found")
	}
	if !holidays.IsHoliday(2026, time.March, 14) {
		t.Error("one-time holiday from extra file not found")
	}
	if holidays.IsHoliday(2026, time.March, 15) {
		t.Error("unexpected holiday on 2026-03-15")
	}
}
