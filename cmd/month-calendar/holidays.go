package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/username/month-calendar/internal/calendar"
	"github.com/username/month-calendar/internal/config"
	"github.com/username/month-calendar/internal/render"
	"go.uber.org/zap"
	"golang.org/x/term"
)

// loadSources loads every configured holiday file. A file that cannot be
// read leaves its source empty; the calendar still works without holidays.
func loadSources() []*calendar.RegistrySource {
	files := cfg.Holidays.HolidayFiles()
	sources := make([]*calendar.RegistrySource, 0, len(files))

	for _, file := range files {
		source := calendar.NewRegistrySource(file, logger)
		if err := source.Load(); err != nil {
			logger.Warn("Holiday file not loaded, continuing without it",
				zap.String("file", file),
				zap.Error(err))
		}
		sources = append(sources, source)
	}

	return sources
}

// snapshot combines the registries current at call time. Grids are
// computed against the snapshot, never against a source that may swap
// its registry midway.
func snapshot(sources []*calendar.RegistrySource) calendar.HolidayChecker {
	registries := make([]calendar.HolidayChecker, 0, len(sources))
	for _, source := range sources {
		registries = append(registries, source.Registry())
	}
	return calendar.NewCompositeChecker(logger, registries...)
}

func newStyles(display config.DisplayConfig, out *os.File) render.Styles {
	switch display.Color {
	case config.ColorNever:
		return render.PlainStyles()
	case config.ColorAlways:
		r := lipgloss.NewRenderer(out)
		r.SetColorProfile(termenv.ANSI256)
		return render.NewStyles(r, display.Colors)
	default:
		if !term.IsTerminal(int(out.Fd())) {
			return render.PlainStyles()
		}
		return render.NewStyles(lipgloss.NewRenderer(out), display.Colors)
	}
}

func formatRule(rule calendar.HolidayRule) string {
	if rule.Kind == calendar.HolidayRecurring {
		return fmt.Sprintf("%02d/%02d       every year since %d", rule.Day, int(rule.Month), rule.Year)
	}
	return fmt.Sprintf("%02d/%02d/%04d  once", rule.Day, int(rule.Month), rule.Year)
}
