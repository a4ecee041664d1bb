package nudge

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/brk3/habitgrid/pkg/habit"
)

func fixture() habit.Data {
	return habit.Data{
		Habits: []habit.Habit{{ID: "g", Name: "guitar"}, {ID: "c", Name: "coding"}},
		Completions: []habit.Completion{
			{HabitID: "g", Date: "2024-05-30", Status: habit.StatusCompleted},
			{HabitID: "c", Date: "2024-05-30", Status: habit.StatusCompleted},
			{HabitID: "g", Date: "2024-05-31", Status: habit.StatusCompleted},
			{HabitID: "c", Date: "2024-05-31", Status: habit.StatusCompleted},
			{HabitID: "c", Date: "2024-06-01", Status: habit.StatusCompleted},
		},
	}
}

func TestHabitsAtRisk(t *testing.T) {
	today := time.Date(2024, time.June, 1, 19, 0, 0, 0, time.Local)

	got, err := HabitsAtRisk(context.Background(), &mockClient{data: fixture()}, today)
	if err != nil {
		t.Fatal(err)
	}
	if got.Streak != 2 {
		t.Errorf("streak = %d, want 2", got.Streak)
	}
	if len(got.Habits) != 1 || got.Habits[0] != "guitar" {
		t.Fatalf("got %v, want [guitar]", got.Habits)
	}
}

func TestHabitsAtRisk_NoStreak(t *testing.T) {
	today := time.Date(2024, time.June, 3, 19, 0, 0, 0, time.Local)

	got, err := HabitsAtRisk(context.Background(), &mockClient{data: fixture()}, today)
	if err != nil {
		t.Fatal(err)
	}
	if len(got.Habits) != 0 || got.Streak != 0 {
		t.Fatalf("got %+v, want nothing at risk", got)
	}
}

func TestNudge(t *testing.T) {
	ctx := context.Background()
	today := time.Date(2024, time.June, 1, 19, 0, 0, 0, time.Local)

	n := &mockNotifier{}
	sent, err := Nudge(ctx, &mockClient{data: fixture()}, n, today)
	if err != nil {
		t.Fatal(err)
	}
	if !sent || !n.called || n.streak != 2 || len(n.habits) != 1 {
		t.Fatalf("unexpected notifier state: sent=%v %+v", sent, n)
	}

	n = &mockNotifier{}
	sent, err = Nudge(ctx, &mockClient{data: habit.Empty()}, n, today)
	if err != nil {
		t.Fatal(err)
	}
	if sent || n.called {
		t.Fatal("expected no nudge for empty data")
	}
}

func TestNudge_Errors(t *testing.T) {
	ctx := context.Background()
	today := time.Date(2024, time.June, 1, 19, 0, 0, 0, time.Local)

	if _, err := Nudge(ctx, &mockClient{err: errors.New("offline")}, &mockNotifier{}, today); err == nil {
		t.Error("expected error when querier fails")
	}
	if _, err := Nudge(ctx, &mockClient{data: fixture()}, &mockNotifier{err: errors.New("smtp")}, today); err == nil {
		t.Error("expected error when notifier fails")
	}
}
