package storage

import (
	"bytes"
	"encoding/json"
	"errors"
	"time"

	"github.com/brk3/habitgrid/pkg/habit"
)

var errNotObject = errors.New("habit data must be a JSON object")

type habitRecord struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"createdAt"`
}

// completionRecord.Status is nil for records written before statuses
// existed, when presence alone meant completed.
type completionRecord struct {
	HabitID string        `json:"habitId"`
	Date    string        `json:"date"`
	Status  *habit.Status `json:"status,omitempty"`
}

type dataRecord struct {
	Habits      []habitRecord      `json:"habits"`
	Completions []completionRecord `json:"completions"`
}

// Encode serializes d. Nil slices are written as empty arrays.
func Encode(d habit.Data) ([]byte, error) {
	if d.Habits == nil {
		d.Habits = []habit.Habit{}
	}
	if d.Completions == nil {
		d.Completions = []habit.Completion{}
	}
	return json.Marshal(d)
}

// Decode parses a stored aggregate and repairs what it can: legacy
// completions without a status become completed, and completions that are
// orphaned, malformed or duplicated are dropped (the last duplicate wins).
// dropped counts discarded records.
func Decode(b []byte) (d habit.Data, dropped int, err error) {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || b[0] != '{' {
		return habit.Empty(), 0, errNotObject
	}
	var rec dataRecord
	if err := json.Unmarshal(b, &rec); err != nil {
		return habit.Empty(), 0, err
	}

	d = habit.Empty()
	known := make(map[string]bool, len(rec.Habits))
	for _, h := range rec.Habits {
		if h.ID == "" || known[h.ID] {
			dropped++
			continue
		}
		known[h.ID] = true
		d.Habits = append(d.Habits, habit.Habit(h))
	}

	pos := make(map[[2]string]int, len(rec.Completions))
	for _, c := range rec.Completions {
		status := habit.StatusCompleted
		if c.Status != nil {
			status = *c.Status
		}
		if !known[c.HabitID] || !habit.ValidDate(c.Date) || !status.Stored() {
			dropped++
			continue
		}
		key := [2]string{c.HabitID, c.Date}
		if i, ok := pos[key]; ok {
			d.Completions[i].Status = status
			dropped++
			continue
		}
		pos[key] = len(d.Completions)
		d.Completions = append(d.Completions, habit.Completion{HabitID: c.HabitID, Date: c.Date, Status: status})
	}
	return d, dropped, nil
}
