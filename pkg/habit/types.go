// Package habit holds the habit tracker's data model, the pure operations
// that mutate it, and the statistics derived from it.
package habit

import (
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"
)

const MaxNameLength = 50

var (
	ErrEmptyName     = errors.New("habit name is required")
	ErrNameTooLong   = fmt.Errorf("habit name must be at most %d characters", MaxNameLength)
	ErrUnknownHabit  = errors.New("unknown habit")
	ErrInvalidStatus = errors.New("invalid status")
	ErrInvalidDate   = errors.New("invalid date key, want YYYY-MM-DD")
)

// Status is the state of a single (habit, day) cell. StatusNone is never
// stored: it is the absence of a Completion.
type Status string

const (
	StatusNone      Status = "none"
	StatusCompleted Status = "completed"
	StatusFailed    Status = "failed"
)

func (s Status) IsValid() bool {
	switch s {
	case StatusNone, StatusCompleted, StatusFailed:
		return true
	default:
		return false
	}
}

// Stored reports whether a status is recorded as a Completion.
func (s Status) Stored() bool {
	return s == StatusCompleted || s == StatusFailed
}

// Next cycles none -> completed -> failed -> none.
func (s Status) Next() Status {
	switch s {
	case StatusNone:
		return StatusCompleted
	case StatusCompleted:
		return StatusFailed
	default:
		return StatusNone
	}
}

func ParseStatus(input string) (Status, error) {
	s := Status(strings.TrimSpace(strings.ToLower(input)))
	if s == "" {
		return StatusNone, nil
	}
	if !s.IsValid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidStatus, input)
	}
	return s, nil
}

type Habit struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"createdAt"`
}

// Completion records a non-default status for one habit on one day. Date is
// a canonical YYYY-MM-DD key.
type Completion struct {
	HabitID string `json:"habitId"`
	Date    string `json:"date"`
	Status  Status `json:"status"`
}

// Data is the aggregate root: every habit in display order plus the sparse
// completion log. At most one Completion exists per (HabitID, Date).
type Data struct {
	Habits      []Habit      `json:"habits"`
	Completions []Completion `json:"completions"`
}

func Empty() Data {
	return Data{Habits: []Habit{}, Completions: []Completion{}}
}

type DayStats struct {
	Date           int     `json:"date"`
	CompletedCount int     `json:"completed_count"`
	TotalHabits    int     `json:"total_habits"`
	Percentage     float64 `json:"percentage"`
}

// Perfect reports whether every habit was completed on the day.
func (d DayStats) Perfect() bool {
	return d.TotalHabits > 0 && d.CompletedCount == d.TotalHabits
}

type MonthStats struct {
	CurrentStreak    int     `json:"current_streak"`
	LongestStreak    int     `json:"longest_streak"`
	TotalCompletions int     `json:"total_completions"`
	AverageDaily     float64 `json:"average_daily"`
	BestDay          *int    `json:"best_day"`
}

// HabitMonthSummary counts a single habit's cells for one month.
type HabitMonthSummary struct {
	HabitID   string `json:"habit_id"`
	Name      string `json:"name"`
	Completed int    `json:"completed"`
	Failed    int    `json:"failed"`
	None      int    `json:"none"`
}

// ValidateName trims name and checks it against the naming rules.
func ValidateName(name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", ErrEmptyName
	}
	if utf8.RuneCountInString(name) > MaxNameLength {
		return "", ErrNameTooLong
	}
	return name, nil
}
