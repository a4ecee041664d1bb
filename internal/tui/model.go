// Package tui provides the interactive month grid.
package tui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/brk3/habitgrid/internal/logger"
	"github.com/brk3/habitgrid/internal/render"
	"github.com/brk3/habitgrid/internal/tracker"
	"github.com/brk3/habitgrid/pkg/habit"
)

var (
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF4D4F"))
	footerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#6E6E6E"))
)

// Model implements tea.Model on top of a tracker. Every mutation goes
// through the tracker, so changes are persisted as they happen.
type Model struct {
	ctx     context.Context
	tracker *tracker.Tracker

	year  int
	month int
	row   int
	day   int

	keys   keyMap
	help   help.Model
	input  textinput.Model
	adding bool
	err    string

	width  int
	height int
}

func NewModel(ctx context.Context, tr *tracker.Tracker) *Model {
	in := textinput.New()
	in.Placeholder = "habit name"
	in.CharLimit = habit.MaxNameLength
	in.Prompt = "New habit: "

	m := &Model{
		ctx:     ctx,
		tracker: tr,
		keys:    defaultKeyMap(),
		help:    help.New(),
		input:   in,
	}
	m.jumpToday()
	return m
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil
	case tea.KeyMsg:
		if m.adding {
			return m.updateInput(msg)
		}
		return m.updateGrid(msg)
	default:
		return m, nil
	}
}

func (m *Model) updateInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.stopAdding()
		return m, nil
	case tea.KeyEnter:
		name := m.input.Value()
		m.stopAdding()
		if _, err := m.tracker.AddHabit(m.ctx, name); err != nil {
			m.err = err.Error()
			return m, nil
		}
		m.row = len(m.tracker.Habits()) - 1
		return m, nil
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *Model) stopAdding() {
	m.adding = false
	m.input.Reset()
	m.input.Blur()
}

func (m *Model) updateGrid(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.err = ""
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Up):
		m.row = max(m.row-1, 0)
	case key.Matches(msg, m.keys.Down):
		m.row = min(m.row+1, max(len(m.tracker.Habits())-1, 0))
	case key.Matches(msg, m.keys.Left):
		m.day = max(m.day-1, 1)
	case key.Matches(msg, m.keys.Right):
		m.day = min(m.day+1, habit.DaysInMonth(m.year, m.month))
	case key.Matches(msg, m.keys.Cycle):
		if h, ok := m.current(); ok {
			status, _ := m.tracker.Status(h.ID, m.date())
			m.set(h, status.Next())
		}
	case key.Matches(msg, m.keys.Complete):
		m.setCurrent(habit.StatusCompleted)
	case key.Matches(msg, m.keys.Fail):
		m.setCurrent(habit.StatusFailed)
	case key.Matches(msg, m.keys.Clear):
		m.setCurrent(habit.StatusNone)
	case key.Matches(msg, m.keys.NextMon):
		m.shiftMonth(1)
	case key.Matches(msg, m.keys.PrevMon):
		m.shiftMonth(-1)
	case key.Matches(msg, m.keys.Today):
		m.jumpToday()
	case key.Matches(msg, m.keys.Add):
		m.adding = true
		return m, m.input.Focus()
	case key.Matches(msg, m.keys.Delete):
		if h, ok := m.current(); ok {
			m.tracker.DeleteHabit(m.ctx, h.ID)
			m.row = min(m.row, max(len(m.tracker.Habits())-1, 0))
		}
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	}
	return m, nil
}

func (m *Model) current() (habit.Habit, bool) {
	habits := m.tracker.Habits()
	if m.row < 0 || m.row >= len(habits) {
		return habit.Habit{}, false
	}
	return habits[m.row], true
}

func (m *Model) date() string {
	return habit.FormatDate(m.year, m.month, m.day)
}

func (m *Model) setCurrent(status habit.Status) {
	if h, ok := m.current(); ok {
		m.set(h, status)
	}
}

func (m *Model) set(h habit.Habit, status habit.Status) {
	if err := m.tracker.SetStatus(m.ctx, h.ID, m.date(), status); err != nil {
		logger.Warn("Failed to set status", "habit_id", h.ID, "date", m.date(), "error", err)
		m.err = err.Error()
	}
}

func (m *Model) shiftMonth(delta int) {
	m.year, m.month = habit.AddMonths(m.year, m.month, delta)
	m.day = min(m.day, habit.DaysInMonth(m.year, m.month))
}

func (m *Model) jumpToday() {
	today := m.tracker.Today()
	m.year, m.month = habit.MonthOf(today)
	m.day = today.Day()
}

// View implements tea.Model.
func (m *Model) View() string {
	d := m.tracker.Snapshot()
	opts := render.Options{
		Today:       habit.DateKey(m.tracker.Today()),
		ShowCursor:  true,
		CursorHabit: m.row,
		CursorDay:   m.day,
	}

	var b strings.Builder
	b.WriteString(render.Month(m.year, m.month, d, m.tracker.MonthStats(m.year, m.month), opts))
	b.WriteString("\n")
	if m.adding {
		b.WriteString(m.input.View())
		b.WriteString("\n")
	}
	if m.err != "" {
		b.WriteString(errorStyle.Render(m.err))
		b.WriteString("\n")
	}
	q := habit.DailyQuote(m.tracker.Today())
	b.WriteString(footerStyle.Render("“" + q.Text + "” " + q.Author))
	b.WriteString("\n")
	b.WriteString(m.help.View(m.keys))

	if m.width == 0 || m.height == 0 {
		return b.String()
	}
	return lipgloss.NewStyle().MaxWidth(m.width).MaxHeight(m.height).Render(b.String())
}

// Run starts the program on the alternate screen and blocks until quit.
func Run(ctx context.Context, tr *tracker.Tracker) error {
	_, err := tea.NewProgram(NewModel(ctx, tr), tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	return err
}
