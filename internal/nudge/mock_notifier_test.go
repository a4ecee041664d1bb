package nudge

import (
	"context"

	"github.com/brk3/habitgrid/pkg/habit"
)

type mockNotifier struct {
	called bool
	habits []string
	streak int
	err    error
}

func (m *mockNotifier) SendNudge(habits []string, streak int) error {
	m.called = true
	m.habits = habits
	m.streak = streak
	return m.err
}

type mockClient struct {
	data habit.Data
	err  error
}

func (f *mockClient) Export(context.Context) (habit.Data, error) {
	return f.data, f.err
}
