// Package render draws the month grid, the stats panel and the daily
// progress chart for the terminal.
package render

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/brk3/habitgrid/pkg/habit"
)

const maxNameWidth = 20

var (
	completedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#52C41A"))
	failedStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF4D4F"))
	noneStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("#6E6E6E"))
	headerStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#8C8C8C"))
	todayStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#C89A3A")).Bold(true)
	cursorStyle    = lipgloss.NewStyle().Reverse(true)
	titleStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#F0F0F0")).Bold(true)
	labelStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#8C8C8C"))
	valueStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#F0F0F0")).Bold(true)
	panelStyle     = lipgloss.NewStyle().
			Padding(0, 1).
			Border(lipgloss.RoundedBorder(), true).
			BorderForeground(lipgloss.Color("#4A4A4A"))

	tierStyles = map[habit.Tier]lipgloss.Style{
		habit.TierFull:  lipgloss.NewStyle().Foreground(lipgloss.Color("#52C41A")),
		habit.TierHigh:  lipgloss.NewStyle().Foreground(lipgloss.Color("#A0D911")),
		habit.TierMid:   lipgloss.NewStyle().Foreground(lipgloss.Color("#FADB14")),
		habit.TierLow:   lipgloss.NewStyle().Foreground(lipgloss.Color("#FA8C16")),
		habit.TierEmpty: lipgloss.NewStyle().Foreground(lipgloss.Color("#4A4A4A")),
	}
	tierGlyphs = map[habit.Tier]string{
		habit.TierFull:  "█",
		habit.TierHigh:  "▆",
		habit.TierMid:   "▄",
		habit.TierLow:   "▂",
		habit.TierEmpty: "·",
	}
)

// Options controls how a month is drawn. Today and the cursor are only
// highlighted when they fall inside the rendered month.
type Options struct {
	Plain bool
	// Today is the date key of the current day.
	Today string
	// ShowCursor enables the cursor at (CursorHabit, CursorDay).
	ShowCursor  bool
	CursorHabit int
	CursorDay   int
}

func (o Options) paint(s lipgloss.Style, text string) string {
	if o.Plain {
		return text
	}
	return s.Render(text)
}

// Glyph is the single-cell symbol used for a status.
func Glyph(s habit.Status) string {
	switch s {
	case habit.StatusCompleted:
		return "✓"
	case habit.StatusFailed:
		return "✗"
	default:
		return "·"
	}
}

func statusStyle(s habit.Status) lipgloss.Style {
	switch s {
	case habit.StatusCompleted:
		return completedStyle
	case habit.StatusFailed:
		return failedStyle
	default:
		return noneStyle
	}
}

func nameColumnWidth(habits []habit.Habit) int {
	w := runewidth.StringWidth("Habit")
	for _, h := range habits {
		w = max(w, runewidth.StringWidth(h.Name))
	}
	return min(w, maxNameWidth)
}

func fitName(name string, width int) string {
	return runewidth.FillRight(runewidth.Truncate(name, width, "…"), width)
}

// Grid draws one row per habit and one column per day of the 0-indexed
// month.
func Grid(year, month int, d habit.Data, opts Options) string {
	days := habit.DaysInMonth(year, month)
	nameW := nameColumnWidth(d.Habits)
	ix := habit.NewIndex(d.Completions)

	var b strings.Builder
	title := fmt.Sprintf("%s %d", habit.MonthName(month), year)
	b.WriteString(opts.paint(titleStyle, title))
	b.WriteString("\n")

	b.WriteString(opts.paint(headerStyle, fitName("Habit", nameW)))
	for day := 1; day <= days; day++ {
		label := fmt.Sprintf("%3d", day)
		if habit.FormatDate(year, month, day) == opts.Today {
			b.WriteString(opts.paint(todayStyle, label))
		} else {
			b.WriteString(opts.paint(headerStyle, label))
		}
	}
	b.WriteString("\n")

	if len(d.Habits) == 0 {
		b.WriteString(opts.paint(labelStyle, "No habits yet. Add one to get started."))
		b.WriteString("\n")
		return b.String()
	}

	for row, h := range d.Habits {
		b.WriteString(fitName(h.Name, nameW))
		for day := 1; day <= days; day++ {
			date := habit.FormatDate(year, month, day)
			status := ix.Status(h.ID, date)
			cell := "  " + Glyph(status)
			style := statusStyle(status)
			if opts.ShowCursor && row == opts.CursorHabit && day == opts.CursorDay {
				style = cursorStyle
				if opts.Plain {
					cell = " [" + Glyph(status)
				}
			}
			b.WriteString(opts.paint(style, cell))
		}
		b.WriteString("\n")
	}
	return b.String()
}

// Chart draws one tier glyph per day, aligned with the grid columns.
func Chart(days []habit.DayStats, nameW int, opts Options) string {
	var b strings.Builder
	b.WriteString(opts.paint(headerStyle, fitName("Daily", nameW)))
	for _, d := range days {
		tier := habit.TierOf(d.Percentage)
		b.WriteString("  ")
		b.WriteString(opts.paint(tierStyles[tier], tierGlyphs[tier]))
	}
	b.WriteString("\n")
	return b.String()
}

// Stats draws the month summary panel.
func Stats(s habit.MonthStats, opts Options) string {
	best := "-"
	if s.BestDay != nil {
		best = fmt.Sprintf("%d", *s.BestDay)
	}
	rows := []struct{ label, value string }{
		{"Current streak", fmt.Sprintf("%d days", s.CurrentStreak)},
		{"Longest streak", fmt.Sprintf("%d days", s.LongestStreak)},
		{"Completions", fmt.Sprintf("%d", s.TotalCompletions)},
		{"Average", fmt.Sprintf("%.1f%%", s.AverageDaily)},
		{"Best day", best},
	}

	var lines []string
	for _, r := range rows {
		lines = append(lines, opts.paint(labelStyle, fitName(r.label, 16))+opts.paint(valueStyle, r.value))
	}
	body := strings.Join(lines, "\n")
	if opts.Plain {
		return body + "\n"
	}
	return panelStyle.Render(body) + "\n"
}

// Month combines the grid, the daily chart and the stats panel.
func Month(year, month int, d habit.Data, s habit.MonthStats, opts Options) string {
	var b strings.Builder
	b.WriteString(Grid(year, month, d, opts))
	if len(d.Habits) > 0 {
		days := habit.MonthDayStats(year, month, d.Habits, d.Completions)
		b.WriteString(Chart(days, nameColumnWidth(d.Habits), opts))
	}
	b.WriteString("\n")
	b.WriteString(Stats(s, opts))
	return b.String()
}
