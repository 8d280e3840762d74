package tui

import (
	"strconv"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/username/month-calendar/internal/calendar"
	"github.com/username/month-calendar/internal/render"
	"github.com/username/month-calendar/pkg/dateutil"
	"go.uber.org/zap"
)

const (
	dateEntryHint    = "Enter date: dd/mm/yyyy"
	dateEntryInvalid = "Date not valid."
	yearEntryInvalid = "Year not valid."
)

// HolidaysReloadedMsg carries a freshly built holiday checker. The model
// swaps it in and recomputes the grid.
type HolidaysReloadedMsg struct {
	Holidays calendar.HolidayChecker
	Err      error
}

type inputMode int

const (
	inputNone inputMode = iota
	inputYear
	inputDate
)

// Options configures a Model
type Options struct {
	Holidays calendar.HolidayChecker
	// Reload rebuilds the holiday checker from its sources; nil disables R
	Reload func() (calendar.HolidayChecker, error)
	Styles render.Styles
	Today  time.Time
	Logger *zap.Logger
}

// Model is the Bubble Tea model for the month calendar.
type Model struct {
	holidays calendar.HolidayChecker
	reload   func() (calendar.HolidayChecker, error)
	styles   render.Styles
	keys     KeyMap
	logger   *zap.Logger

	today  time.Time
	target calendar.NavigationTarget
	grid   *calendar.MonthGrid

	mode        inputMode
	yearInput   textinput.Model
	dateInput   textinput.Model
	dateInvalid bool
	yearInvalid bool

	showHelp  bool
	statusMsg string
}

// NewModel creates a model showing the month of opts.Today.
func NewModel(opts Options) Model {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	today := opts.Today
	if today.IsZero() {
		today = dateutil.Today()
	}

	yi := textinput.New()
	yi.Prompt = "Year: "
	yi.Placeholder = "yyyy"
	yi.CharLimit = 4

	di := textinput.New()
	di.Prompt = "Date: "
	di.Placeholder = "dd/mm/yyyy"
	di.CharLimit = 10

	m := Model{
		holidays:  opts.Holidays,
		reload:    opts.Reload,
		styles:    opts.Styles,
		keys:      DefaultKeyMap(),
		logger:    logger,
		today:     today,
		yearInput: yi,
		dateInput: di,
	}
	m.navigate(calendar.ByMonthSelection(today.Year(), today.Month()))
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Target returns the month currently displayed
func (m Model) Target() calendar.NavigationTarget {
	return m.target
}

// Grid returns the grid currently displayed
func (m Model) Grid() *calendar.MonthGrid {
	return m.grid
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case HolidaysReloadedMsg:
		if msg.Err != nil {
			m.logger.Warn("Holiday reload failed", zap.Error(msg.Err))
			m.statusMsg = "Reload failed: " + msg.Err.Error()
			return m, nil
		}
		m.holidays = msg.Holidays
		m.statusMsg = "Holidays reloaded"
		m.navigate(m.target)
		return m, nil

	case tea.KeyMsg:
		return m.handleKeyMsg(msg)
	}

	return m, nil
}

func (m Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyCtrlC {
		return m, tea.Quit
	}

	switch m.mode {
	case inputYear:
		return m.handleYearInput(msg)
	case inputDate:
		return m.handleDateInput(msg)
	}

	if m.showHelp {
		switch msg.String() {
		case "esc", "enter", "?", "q":
			m.showHelp = false
		}
		return m, nil
	}

	m.statusMsg = ""

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.PrevMonth):
		m.changeMonth(-1)

	case key.Matches(msg, m.keys.NextMonth):
		m.changeMonth(1)

	case key.Matches(msg, m.keys.PrevYear):
		m.changeYear(m.target.Year - 1)

	case key.Matches(msg, m.keys.NextYear):
		m.changeYear(m.target.Year + 1)

	case key.Matches(msg, m.keys.Today):
		m.navigate(calendar.ByMonthSelection(m.today.Year(), m.today.Month()))

	case key.Matches(msg, m.keys.EditYear):
		m.mode = inputYear
		m.yearInvalid = false
		m.yearInput.Reset()
		return m, m.yearInput.Focus()

	case key.Matches(msg, m.keys.EditDate):
		m.mode = inputDate
		m.dateInvalid = false
		m.dateInput.Reset()
		return m, m.dateInput.Focus()

	case key.Matches(msg, m.keys.Reload):
		if m.reload == nil {
			m.statusMsg = "Reload not available"
			return m, nil
		}
		return m, reloadCmd(m.reload)

	case key.Matches(msg, m.keys.Help):
		m.showHelp = true
	}

	return m, nil
}

// handleYearInput mirrors the year box: only up to four digits are
// accepted and the year is applied once four are typed.
func (m Model) handleYearInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc, tea.KeyEnter:
		m.leaveInput()
		return m, nil
	}

	previous := m.yearInput.Value()
	var cmd tea.Cmd
	m.yearInput, cmd = m.yearInput.Update(msg)

	value := m.yearInput.Value()
	if !calendar.ValidYearEntry(value) {
		m.yearInput.SetValue(previous)
		return m, cmd
	}

	m.yearInvalid = false
	if len(value) == 4 && value != previous {
		year, _ := strconv.Atoi(value)
		if year < dateutil.MinYear {
			m.yearInvalid = true
			return m, cmd
		}
		m.changeYear(year)
	}

	return m, cmd
}

// handleDateInput re-validates the typed date on every change and jumps
// to its month as soon as it names a real date.
func (m Model) handleDateInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc, tea.KeyEnter:
		m.leaveInput()
		return m, nil
	}

	previous := m.dateInput.Value()
	var cmd tea.Cmd
	m.dateInput, cmd = m.dateInput.Update(msg)

	value := m.dateInput.Value()
	if value == previous {
		return m, cmd
	}

	target, err := calendar.ParseDateEntry(value)
	if err != nil {
		m.dateInvalid = true
		m.logger.Debug("Rejected date entry", zap.String("input", value), zap.Error(err))
		return m, cmd
	}

	m.dateInvalid = false
	m.navigate(target)
	return m, cmd
}

func (m *Model) leaveInput() {
	m.mode = inputNone
	m.yearInput.Blur()
	m.dateInput.Blur()
}

func (m *Model) changeMonth(n int) {
	next := m.target.AddMonths(n)
	if next.Year == m.target.Year && next.Month == m.target.Month {
		m.statusMsg = yearEntryInvalid
		return
	}
	m.navigate(next)
}

func (m *Model) changeYear(year int) {
	if year < dateutil.MinYear || year > dateutil.MaxYear {
		m.statusMsg = yearEntryInvalid
		return
	}
	m.navigate(calendar.ByYearChange(m.target.Month, year))
}

func (m *Model) navigate(target calendar.NavigationTarget) {
	m.target = target
	m.grid = target.Grid(m.holidays)
	m.logger.Debug("Calendar view changed",
		zap.Int("year", target.Year),
		zap.Int("month", int(target.Month)),
		zap.Int("day", target.Day))
}

// highlight returns the date to mark: the typed date if any, else today
func (m Model) highlight() time.Time {
	if m.target.Day != 0 {
		return m.target.Date()
	}
	return m.today
}

func reloadCmd(reload func() (calendar.HolidayChecker, error)) tea.Cmd {
	return func() tea.Msg {
		holidays, err := reload()
		return HolidaysReloadedMsg{Holidays: holidays, Err: err}
	}
}
