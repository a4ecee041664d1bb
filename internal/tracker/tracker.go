// Package tracker owns the habit aggregate between user actions: it loads it
// once, applies each mutation, saves after every change and derives
// statistics from the current snapshot on demand.
package tracker

import (
	"context"
	"sync"
	"time"

	"github.com/brk3/habitgrid/internal/logger"
	"github.com/brk3/habitgrid/pkg/habit"
)

// Persister is the load/save boundary. Load never fails (absent or corrupt
// data yields empty data) and Save reports nothing back.
type Persister interface {
	Load(ctx context.Context) habit.Data
	Save(ctx context.Context, d habit.Data)
}

type Option func(*Tracker)

// WithClock replaces time.Now as the source of "today".
func WithClock(now func() time.Time) Option {
	return func(t *Tracker) { t.now = now }
}

// WithObserver registers fn to be called with every new snapshot, including
// the one loaded at startup.
func WithObserver(fn func(habit.Data)) Option {
	return func(t *Tracker) { t.observers = append(t.observers, fn) }
}

type Tracker struct {
	mu        sync.Mutex
	data      habit.Data
	store     Persister
	now       func() time.Time
	observers []func(habit.Data)
}

func New(ctx context.Context, store Persister, opts ...Option) *Tracker {
	t := &Tracker{store: store, now: time.Now}
	for _, opt := range opts {
		opt(t)
	}
	t.data = store.Load(ctx)
	t.notify(t.data)
	return t
}

func (t *Tracker) notify(d habit.Data) {
	for _, fn := range t.observers {
		fn(d)
	}
}

// commit installs next as the current aggregate and persists it. Callers
// hold t.mu.
func (t *Tracker) commit(ctx context.Context, next habit.Data) {
	t.data = next
	t.store.Save(ctx, next)
	t.notify(next)
}

// Snapshot returns the current aggregate. Operations never modify a
// returned snapshot.
func (t *Tracker) Snapshot() habit.Data {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.data
}

// Export is Snapshot behind the context/error signature shared with remote
// clients.
func (t *Tracker) Export(context.Context) (habit.Data, error) {
	return t.Snapshot(), nil
}

func (t *Tracker) Habits() []habit.Habit {
	return t.Snapshot().Habits
}

func (t *Tracker) Today() time.Time {
	return t.now()
}

func (t *Tracker) AddHabit(ctx context.Context, name string) (habit.Habit, error) {
	if _, err := habit.ValidateName(name); err != nil {
		return habit.Habit{}, err
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	next, h := habit.AddHabit(t.data, name)
	t.commit(ctx, next)
	logger.Info("Habit added", "habit_id", h.ID, "name", h.Name)
	return h, nil
}

// DeleteHabit removes the habit and its completions. Unknown ids are a
// no-op and are not persisted again.
func (t *Tracker) DeleteHabit(ctx context.Context, habitID string) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if _, ok := habit.HabitByID(t.data.Habits, habitID); !ok {
		logger.Debug("Delete of unknown habit ignored", "habit_id", habitID)
		return
	}
	next := habit.DeleteHabit(t.data, habitID)
	removed := len(t.data.Completions) - len(next.Completions)
	t.commit(ctx, next)
	logger.Info("Habit deleted", "habit_id", habitID, "completions_removed", removed)
}

// SetStatus validates its arguments so transports can report them; the
// underlying store operation would silently ignore the same inputs.
func (t *Tracker) SetStatus(ctx context.Context, habitID, date string, status habit.Status) error {
	if !status.IsValid() {
		return habit.ErrInvalidStatus
	}
	if _, _, _, err := habit.ParseDate(date); err != nil {
		return err
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	if _, ok := habit.HabitByID(t.data.Habits, habitID); !ok {
		return habit.ErrUnknownHabit
	}
	if habit.StatusOf(t.data, habitID, date) == status {
		return nil
	}
	t.commit(ctx, habit.SetStatus(t.data, habitID, date, status))
	logger.Debug("Status set", "habit_id", habitID, "date", date, "status", status)
	return nil
}

func (t *Tracker) Status(habitID, date string) (habit.Status, error) {
	d := t.Snapshot()
	if _, ok := habit.HabitByID(d.Habits, habitID); !ok {
		return "", habit.ErrUnknownHabit
	}
	if _, _, _, err := habit.ParseDate(date); err != nil {
		return "", err
	}
	return habit.StatusOf(d, habitID, date), nil
}

// MonthStats computes statistics for the 0-indexed month against today.
func (t *Tracker) MonthStats(year, month int) habit.MonthStats {
	d := t.Snapshot()
	return habit.CalculateMonthStats(year, month, d.Habits, d.Completions, t.now())
}

func (t *Tracker) DayStats(year, month int) []habit.DayStats {
	d := t.Snapshot()
	return habit.MonthDayStats(year, month, d.Habits, d.Completions)
}

func (t *Tracker) HabitSummaries(year, month int) []habit.HabitMonthSummary {
	d := t.Snapshot()
	return habit.SummarizeHabits(year, month, d.Habits, d.Completions)
}
