package habit

import (
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// June 2024 has 30 days.
const (
	testYear  = 2024
	testMonth = 5
)

func day(d int) time.Time {
	return time.Date(testYear, time.June, d, 12, 0, 0, 0, time.Local)
}

func habits(ids ...string) []Habit {
	out := make([]Habit, 0, len(ids))
	for _, id := range ids {
		out = append(out, Habit{ID: id, Name: id})
	}
	return out
}

func marks(habitID string, status Status, days ...int) []Completion {
	out := make([]Completion, 0, len(days))
	for _, d := range days {
		out = append(out, Completion{HabitID: habitID, Date: FormatDate(testYear, testMonth, d), Status: status})
	}
	return out
}

func TestMonthStats_NoHabits(t *testing.T) {
	stats := CalculateMonthStats(testYear, testMonth, nil, marks("ghost", StatusCompleted, 1, 2), day(10))
	assert.Equal(t, MonthStats{}, stats)
	assert.Nil(t, stats.BestDay)

	ds := CalculateDayStats(1, testYear, testMonth, nil, nil)
	assert.Equal(t, DayStats{Date: 1}, ds)
}

func TestMonthStats_ThreeDayStreak(t *testing.T) {
	hs := habits("a")
	cs := marks("a", StatusCompleted, 1, 2, 3)

	stats := CalculateMonthStats(testYear, testMonth, hs, cs, day(3))

	assert.Equal(t, 3, stats.CurrentStreak)
	assert.Equal(t, 3, stats.LongestStreak)
	assert.Equal(t, 3, stats.TotalCompletions)
	assert.InDelta(t, 10.0, stats.AverageDaily, 1e-9)
	require.NotNil(t, stats.BestDay)
	assert.Equal(t, 1, *stats.BestDay)
}

func TestMonthStats_LaterDaysDoNotInflateStreaks(t *testing.T) {
	hs := habits("a")
	cs := marks("a", StatusCompleted, 1, 2, 3)

	stats := CalculateMonthStats(testYear, testMonth, hs, cs, day(15))
	assert.Equal(t, 0, stats.CurrentStreak)
	assert.Equal(t, 3, stats.LongestStreak)
}

func TestMonthStats_CurrentStreakStopsAtFirstGap(t *testing.T) {
	hs := habits("a")
	cs := append(marks("a", StatusCompleted, 1, 2, 3, 5, 6), marks("a", StatusFailed, 4)...)

	stats := CalculateMonthStats(testYear, testMonth, hs, cs, day(6))
	assert.Equal(t, 2, stats.CurrentStreak)
	assert.Equal(t, 3, stats.LongestStreak)
	assert.Equal(t, 5, stats.TotalCompletions)
}

func TestMonthStats_PastMonthAnchorsAtLastDay(t *testing.T) {
	hs := habits("a")
	cs := marks("a", StatusCompleted, 28, 29, 30)
	july := time.Date(testYear, time.July, 2, 8, 0, 0, 0, time.Local)

	stats := CalculateMonthStats(testYear, testMonth, hs, cs, july)
	assert.Equal(t, 3, stats.CurrentStreak)
	assert.Equal(t, 3, stats.LongestStreak)
	require.NotNil(t, stats.BestDay)
	assert.Equal(t, 28, *stats.BestDay)
}

func TestMonthStats_PartialDaysBreakStreaks(t *testing.T) {
	hs := habits("a", "b")
	cs := append(marks("a", StatusCompleted, 1, 2, 3, 4), marks("b", StatusCompleted, 1, 2, 4)...)

	stats := CalculateMonthStats(testYear, testMonth, hs, cs, day(4))
	assert.Equal(t, 1, stats.CurrentStreak)
	assert.Equal(t, 2, stats.LongestStreak)
	assert.Equal(t, 7, stats.TotalCompletions)
	assert.InDelta(t, 7.0/60.0*100, stats.AverageDaily, 1e-9)
}

func TestMonthStats_BestDayFirstMaximum(t *testing.T) {
	hs := habits("a", "b")
	cs := append(marks("a", StatusCompleted, 5, 10, 20), marks("b", StatusCompleted, 10, 20)...)

	stats := CalculateMonthStats(testYear, testMonth, hs, cs, day(30))
	require.NotNil(t, stats.BestDay)
	assert.Equal(t, 10, *stats.BestDay)
}

func TestMonthStats_BestDayWithNothingMarked(t *testing.T) {
	stats := CalculateMonthStats(testYear, testMonth, habits("a"), nil, day(30))
	require.NotNil(t, stats.BestDay)
	assert.Equal(t, 1, *stats.BestDay)
	assert.Zero(t, stats.CurrentStreak)
	assert.Zero(t, stats.AverageDaily)
}

func TestDayStats_FailedIsNotCompleted(t *testing.T) {
	hs := habits("a")
	cs := append(marks("a", StatusCompleted, 1), marks("a", StatusFailed, 2)...)

	assert.Equal(t, 100.0, CalculateDayStats(1, testYear, testMonth, hs, cs).Percentage)
	assert.Equal(t, 0.0, CalculateDayStats(2, testYear, testMonth, hs, cs).Percentage)
	assert.Equal(t, 0.0, CalculateDayStats(3, testYear, testMonth, hs, cs).Percentage)

	d2 := CalculateDayStats(2, testYear, testMonth, hs, cs)
	assert.Equal(t, DayStats{Date: 2, CompletedCount: 0, TotalHabits: 1, Percentage: 0}, d2)
}

func TestDayStats_IgnoresCompletionsForUnlistedHabits(t *testing.T) {
	hs := habits("a", "b")
	cs := append(marks("a", StatusCompleted, 1), marks("zombie", StatusCompleted, 1)...)

	ds := CalculateDayStats(1, testYear, testMonth, hs, cs)
	assert.Equal(t, 1, ds.CompletedCount)
	assert.Equal(t, 2, ds.TotalHabits)
	assert.Equal(t, 50.0, ds.Percentage)
}

func TestMonthDayStats_Length(t *testing.T) {
	assert.Len(t, MonthDayStats(2024, 1, habits("a"), nil), 29)
	assert.Len(t, MonthDayStats(2023, 1, habits("a"), nil), 28)
	assert.Len(t, MonthDayStats(2024, 0, nil, nil), 31)
}

func TestMonthStats_RandomInvariants(t *testing.T) {
	r := rand.New(rand.NewSource(7))
	statuses := []Status{StatusCompleted, StatusFailed}

	for round := 0; round < 200; round++ {
		hs := habits("a", "b", "c")[:r.Intn(4)]
		var cs []Completion
		for _, h := range hs {
			for d := 1; d <= 30; d++ {
				if r.Intn(4) > 0 {
					cs = append(cs, marks(h.ID, statuses[r.Intn(2)], d)...)
				}
			}
		}
		today := day(1 + r.Intn(30))

		for _, ds := range MonthDayStats(testYear, testMonth, hs, cs) {
			require.GreaterOrEqual(t, ds.Percentage, 0.0)
			require.LessOrEqual(t, ds.Percentage, 100.0)
			if ds.TotalHabits == 0 {
				require.Zero(t, ds.Percentage)
			}
		}

		stats := CalculateMonthStats(testYear, testMonth, hs, cs, today)
		require.GreaterOrEqual(t, stats.LongestStreak, stats.CurrentStreak)
		require.LessOrEqual(t, stats.CurrentStreak, today.Day())
		require.GreaterOrEqual(t, stats.AverageDaily, 0.0)
		require.LessOrEqual(t, stats.AverageDaily, 100.0)
		if len(hs) == 0 {
			require.Nil(t, stats.BestDay)
		} else {
			require.NotNil(t, stats.BestDay)
		}
	}
}

func TestSummarizeHabits(t *testing.T) {
	hs := habits("a", "b")
	cs := append(marks("a", StatusCompleted, 1, 2), marks("a", StatusFailed, 3)...)
	cs = append(cs, Completion{HabitID: "a", Date: "2024-07-01", Status: StatusCompleted})

	got := SummarizeHabits(testYear, testMonth, hs, cs)
	require.Len(t, got, 2)
	assert.Equal(t, HabitMonthSummary{HabitID: "a", Name: "a", Completed: 2, Failed: 1, None: 27}, got[0])
	assert.Equal(t, HabitMonthSummary{HabitID: "b", Name: "b", None: 30}, got[1])
}

func TestTierOf(t *testing.T) {
	tests := map[float64]Tier{
		100:  TierFull,
		99.9: TierHigh,
		75:   TierHigh,
		74.9: TierMid,
		50:   TierMid,
		0.1:  TierLow,
		0:    TierEmpty,
	}
	for pct, want := range tests {
		assert.Equal(t, want, TierOf(pct), "%v", pct)
	}
}

func TestDailyQuote(t *testing.T) {
	morning := time.Date(2024, time.March, 3, 6, 0, 0, 0, time.Local)
	evening := time.Date(2024, time.March, 3, 22, 0, 0, 0, time.Local)
	assert.Equal(t, DailyQuote(morning), DailyQuote(evening))

	jan1 := time.Date(2024, time.January, 1, 0, 0, 0, 0, time.Local)
	assert.Equal(t, quotes[1], DailyQuote(jan1))
	assert.Equal(t, quotes[0], DailyQuote(jan1.AddDate(0, 0, 19)))
}
