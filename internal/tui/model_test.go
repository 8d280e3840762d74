package tui

import (
	"errors"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/username/month-calendar/internal/calendar"
	"github.com/username/month-calendar/internal/render"
	"github.com/username/month-calendar/pkg/dateutil"
)

func newTestModel(t *testing.T, holidays calendar.HolidayChecker) Model {
	t.Helper()
	return NewModel(Options{
		Holidays: holidays,
		Styles:   render.PlainStyles(),
		Today:    dateutil.Date(2026, 10, 18),
	})
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func send(t *testing.T, m Model, msgs ...tea.Msg) Model {
	t.Helper()
	for _, msg := range msgs {
		next, _ := m.Update(msg)
		var ok bool
		m, ok = next.(Model)
		require.True(t, ok)
	}
	return m
}

func typeText(t *testing.T, m Model, text string) Model {
	t.Helper()
	for _, r := range text {
		m = send(t, m, runes(string(r)))
	}
	return m
}

func TestModel_StartsOnToday(t *testing.T) {
	m := newTestModel(t, nil)

	assert.Equal(t, calendar.ByMonthSelection(2026, time.October), m.Target())
	require.NotNil(t, m.Grid())
	assert.Len(t, m.Grid().Cells, calendar.GridCells)
	assert.Contains(t, m.View(), "October 2026")
}

func TestModel_MonthNavigation(t *testing.T) {
	m := newTestModel(t, nil)

	m = send(t, m, tea.KeyMsg{Type: tea.KeyRight})
	assert.Equal(t, calendar.ByMonthSelection(2026, time.November), m.Target())

	m = send(t, m, runes("l"), runes("l"))
	assert.Equal(t, calendar.ByMonthSelection(2027, time.January), m.Target())

	m = send(t, m, tea.KeyMsg{Type: tea.KeyLeft}, runes("h"))
	assert.Equal(t, calendar.ByMonthSelection(2026, time.November), m.Target())
	assert.Equal(t, time.November, m.Grid().Month)
}

func TestModel_MonthNavigationStopsAtYearBounds(t *testing.T) {
	m := newTestModel(t, nil)

	m = send(t, m, runes("d"))
	m = typeText(t, m, "01/01/0001")
	m = send(t, m, tea.KeyMsg{Type: tea.KeyEsc}, runes("h"))
	assert.Equal(t, 1, m.Target().Year)
	assert.Equal(t, time.January, m.Target().Month)
	assert.Contains(t, m.View(), yearEntryInvalid)

	m = send(t, m, runes("d"))
	m = typeText(t, m, "31/12/9999")
	m = send(t, m, tea.KeyMsg{Type: tea.KeyEsc}, runes("l"))
	assert.Equal(t, 9999, m.Target().Year)
	assert.Equal(t, time.December, m.Target().Month)

	m = send(t, m, runes("h"))
	assert.Equal(t, calendar.ByMonthSelection(9999, time.November), m.Target())
}

func TestModel_YearNavigation(t *testing.T) {
	m := newTestModel(t, nil)

	m = send(t, m, runes("["))
	assert.Equal(t, calendar.ByMonthSelection(2025, time.October), m.Target())

	m = send(t, m, runes("]"), runes("]"))
	assert.Equal(t, calendar.ByMonthSelection(2027, time.October), m.Target())
}

func TestModel_Today(t *testing.T) {
	m := newTestModel(t, nil)
	m = send(t, m, runes("["), runes("l"), runes("t"))
	assert.Equal(t, calendar.ByMonthSelection(2026, time.October), m.Target())
}

func TestModel_YearEntry(t *testing.T) {
	m := newTestModel(t, nil)

	m = send(t, m, runes("y"))
	m = typeText(t, m, "19")
	assert.Equal(t, 2026, m.Target().Year, "year applies only after four digits")

	m = typeText(t, m, "x")
	assert.Equal(t, "19", m.yearInput.Value(), "non-digits are rejected")

	m = typeText(t, m, "99")
	assert.Equal(t, calendar.ByYearChange(time.October, 1999), m.Target())

	m = send(t, m, tea.KeyMsg{Type: tea.KeyEsc}, runes("l"))
	assert.Equal(t, calendar.ByMonthSelection(1999, time.November), m.Target())
}

func TestModel_YearEntryRejectsYearZero(t *testing.T) {
	m := newTestModel(t, nil)

	m = send(t, m, runes("y"))
	m = typeText(t, m, "0000")

	assert.Equal(t, 2026, m.Target().Year)
	assert.Contains(t, m.View(), yearEntryInvalid)
}

func TestModel_DateEntry(t *testing.T) {
	m := newTestModel(t, nil)

	m = send(t, m, runes("d"))
	m = typeText(t, m, "29/02/202")
	assert.True(t, m.dateInvalid)
	assert.Contains(t, m.View(), dateEntryInvalid)
	assert.NotEqual(t, 2024, m.Target().Year)

	m = typeText(t, m, "4")
	assert.False(t, m.dateInvalid)
	assert.Contains(t, m.View(), dateEntryHint)
	assert.Equal(t, calendar.NavigationTarget{Year: 2024, Month: time.February, Day: 29}, m.Target())

	m = send(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, inputNone, m.mode)
}

func TestModel_DateEntryRejectsImpossibleDate(t *testing.T) {
	m := newTestModel(t, nil)

	m = send(t, m, runes("d"))
	m = typeText(t, m, "31/04/2024")

	assert.True(t, m.dateInvalid)
	assert.Equal(t, calendar.ByMonthSelection(2026, time.October), m.Target())
}

func TestModel_HolidaysReloaded(t *testing.T) {
	m := newTestModel(t, nil)

	cell, ok := m.Grid().Find(dateutil.Date(2026, 10, 14))
	require.True(t, ok)
	assert.Equal(t, calendar.DisplayNormal, cell.Class)

	registry := calendar.NewHolidayRegistry([]calendar.RawEntry{{Date: "14/10/2026", Flag: "n"}}, nil)
	m = send(t, m, HolidaysReloadedMsg{Holidays: registry})

	cell, ok = m.Grid().Find(dateutil.Date(2026, 10, 14))
	require.True(t, ok)
	assert.Equal(t, calendar.DisplayHoliday, cell.Class)
	assert.Contains(t, m.View(), "Holidays reloaded")
}

func TestModel_HolidaysReloadFailureKeepsRegistry(t *testing.T) {
	registry := calendar.NewHolidayRegistry([]calendar.RawEntry{{Date: "14/10/2026", Flag: "n"}}, nil)
	m := newTestModel(t, registry)

	m = send(t, m, HolidaysReloadedMsg{Err: errors.New("boom")})

	cell, _ := m.Grid().Find(dateutil.Date(2026, 10, 14))
	assert.Equal(t, calendar.DisplayHoliday, cell.Class)
	assert.Contains(t, m.View(), "Reload failed: boom")
}

func TestModel_ReloadKey(t *testing.T) {
	registry := calendar.NewHolidayRegistry([]calendar.RawEntry{{Date: "15/10/2026", Flag: "n"}}, nil)
	m := NewModel(Options{
		Styles: render.PlainStyles(),
		Today:  dateutil.Date(2026, 10, 18),
		Reload: func() (calendar.HolidayChecker, error) { return registry, nil },
	})

	_, cmd := m.Update(runes("R"))
	require.NotNil(t, cmd)

	msg := cmd()
	reloaded, ok := msg.(HolidaysReloadedMsg)
	require.True(t, ok)
	assert.Same(t, registry, reloaded.Holidays)
}

func TestModel_ReloadUnavailable(t *testing.T) {
	m := newTestModel(t, nil)
	next, cmd := m.Update(runes("R"))
	assert.Nil(t, cmd)
	assert.Contains(t, next.View(), "Reload not available")
}

func TestModel_Quit(t *testing.T) {
	m := newTestModel(t, nil)

	_, cmd := m.Update(runes("q"))
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())

	_, cmd = m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestModel_Help(t *testing.T) {
	m := newTestModel(t, nil)

	m = send(t, m, runes("?"))
	assert.Contains(t, m.View(), "Reload holiday files")

	m = send(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.Contains(t, m.View(), "October 2026")
}
