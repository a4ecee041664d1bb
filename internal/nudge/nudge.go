// Package nudge reminds the user about a full-completion streak that will
// break unless today's habits get marked.
package nudge

import (
	"context"
	"fmt"
	"time"

	"github.com/brk3/habitgrid/internal/logger"
	"github.com/brk3/habitgrid/pkg/habit"
)

// Querier is satisfied by both the local tracker and the API client.
type Querier interface {
	Export(ctx context.Context) (habit.Data, error)
}

type Notifier interface {
	SendNudge(habits []string, streak int) error
}

type AtRisk struct {
	Habits []string
	Streak int
}

// HabitsAtRisk returns the habits still unmarked today when the streak
// through yesterday is non-zero. The streak is the month-scoped current
// streak of yesterday's month.
func HabitsAtRisk(ctx context.Context, q Querier, today time.Time) (AtRisk, error) {
	d, err := q.Export(ctx)
	if err != nil {
		return AtRisk{}, fmt.Errorf("fetch habit data: %w", err)
	}

	yesterday := today.AddDate(0, 0, -1)
	y, m := habit.MonthOf(yesterday)
	stats := habit.CalculateMonthStats(y, m, d.Habits, d.Completions, yesterday)
	if stats.CurrentStreak == 0 {
		return AtRisk{}, nil
	}

	date := habit.DateKey(today)
	ix := habit.NewIndex(d.Completions)
	out := AtRisk{Streak: stats.CurrentStreak}
	for _, h := range d.Habits {
		if ix.Status(h.ID, date) == habit.StatusNone {
			out.Habits = append(out.Habits, h.Name)
		}
	}
	return out, nil
}

// Nudge sends a reminder when any habit is at risk. It reports whether a
// reminder was sent.
func Nudge(ctx context.Context, q Querier, n Notifier, today time.Time) (bool, error) {
	risk, err := HabitsAtRisk(ctx, q, today)
	if err != nil {
		return false, err
	}
	if len(risk.Habits) == 0 {
		logger.Info("No streak at risk, nothing to send", "streak", risk.Streak)
		return false, nil
	}
	if err := n.SendNudge(risk.Habits, risk.Streak); err != nil {
		return false, fmt.Errorf("send nudge: %w", err)
	}
	logger.Info("Sent streak nudge", "habits", len(risk.Habits), "streak", risk.Streak)
	return true, nil
}
