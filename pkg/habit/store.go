package habit

import (
	"slices"
	"time"

	"github.com/google/uuid"
)

// Overridden in tests.
var (
	newID = func() string { return "habit-" + uuid.NewString() }
	now   = time.Now
)

// AddHabit appends a habit with a fresh id and creation time. An empty or
// over-long name leaves d unchanged and returns a zero Habit.
func AddHabit(d Data, name string) (Data, Habit) {
	name, err := ValidateName(name)
	if err != nil {
		return d, Habit{}
	}
	h := Habit{
		ID:        newID(),
		Name:      name,
		CreatedAt: now().UTC(),
	}
	habits := make([]Habit, 0, len(d.Habits)+1)
	habits = append(habits, d.Habits...)
	habits = append(habits, h)
	return Data{Habits: habits, Completions: slices.Clone(d.Completions)}, h
}

// DeleteHabit removes the habit and every completion that references it.
func DeleteHabit(d Data, habitID string) Data {
	out := Data{
		Habits:      make([]Habit, 0, len(d.Habits)),
		Completions: make([]Completion, 0, len(d.Completions)),
	}
	for _, h := range d.Habits {
		if h.ID != habitID {
			out.Habits = append(out.Habits, h)
		}
	}
	for _, c := range d.Completions {
		if c.HabitID != habitID {
			out.Completions = append(out.Completions, c)
		}
	}
	return out
}

// SetStatus records status for (habitID, date). StatusNone removes the
// record; the other statuses replace an existing record in place or append a
// new one. Unknown habits, malformed dates and invalid statuses are no-ops.
func SetStatus(d Data, habitID, date string, status Status) Data {
	if !status.IsValid() || !ValidDate(date) {
		return d
	}
	if _, ok := HabitByID(d.Habits, habitID); !ok {
		return d
	}

	idx := slices.IndexFunc(d.Completions, func(c Completion) bool {
		return c.HabitID == habitID && c.Date == date
	})

	out := Data{Habits: slices.Clone(d.Habits)}
	switch {
	case status == StatusNone && idx < 0:
		out.Completions = slices.Clone(d.Completions)
	case status == StatusNone:
		out.Completions = slices.Delete(slices.Clone(d.Completions), idx, idx+1)
	case idx >= 0:
		out.Completions = slices.Clone(d.Completions)
		out.Completions[idx].Status = status
	default:
		out.Completions = append(slices.Clone(d.Completions), Completion{
			HabitID: habitID,
			Date:    date,
			Status:  status,
		})
	}
	return out
}

func HabitByID(habits []Habit, id string) (Habit, bool) {
	for _, h := range habits {
		if h.ID == id {
			return h, true
		}
	}
	return Habit{}, false
}

// StatusOf returns the recorded status for (habitID, date), StatusNone when
// nothing is recorded.
func StatusOf(d Data, habitID, date string) Status {
	for _, c := range d.Completions {
		if c.HabitID == habitID && c.Date == date {
			return c.Status
		}
	}
	return StatusNone
}

type cellKey struct {
	habitID string
	date    string
}

// Index maps (habit, date) to its recorded status for constant-time lookup.
type Index map[cellKey]Status

func NewIndex(completions []Completion) Index {
	ix := make(Index, len(completions))
	for _, c := range completions {
		ix[cellKey{c.HabitID, c.Date}] = c.Status
	}
	return ix
}

func (ix Index) Status(habitID, date string) Status {
	if s, ok := ix[cellKey{habitID, date}]; ok {
		return s
	}
	return StatusNone
}
