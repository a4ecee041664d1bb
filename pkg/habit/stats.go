package habit

import "time"

// CalculateDayStats counts the habits completed on the given day of the
// 0-indexed month. Failed cells count as not completed.
func CalculateDayStats(day, year, month int, habits []Habit, completions []Completion) DayStats {
	return dayStats(day, year, month, habits, NewIndex(completions))
}

func dayStats(day, year, month int, habits []Habit, ix Index) DayStats {
	date := FormatDate(year, month, day)
	completed := 0
	for _, h := range habits {
		if ix.Status(h.ID, date) == StatusCompleted {
			completed++
		}
	}
	var pct float64
	if len(habits) > 0 {
		pct = float64(completed) / float64(len(habits)) * 100
	}
	return DayStats{
		Date:           day,
		CompletedCount: completed,
		TotalHabits:    len(habits),
		Percentage:     pct,
	}
}

// MonthDayStats returns one DayStats per day of the 0-indexed month.
func MonthDayStats(year, month int, habits []Habit, completions []Completion) []DayStats {
	ix := NewIndex(completions)
	n := DaysInMonth(year, month)
	out := make([]DayStats, 0, n)
	for day := 1; day <= n; day++ {
		out = append(out, dayStats(day, year, month, habits, ix))
	}
	return out
}

// CalculateMonthStats aggregates the 0-indexed month. today decides where
// the current streak is anchored: today's day when it falls inside the
// month, the last day of the month otherwise.
func CalculateMonthStats(year, month int, habits []Habit, completions []Completion, today time.Time) MonthStats {
	days := MonthDayStats(year, month, habits, completions)

	var stats MonthStats
	for _, d := range days {
		stats.TotalCompletions += d.CompletedCount
	}
	if len(habits) > 0 {
		stats.AverageDaily = float64(stats.TotalCompletions) / float64(len(days)*len(habits)) * 100
	}

	if len(habits) > 0 && len(days) > 0 {
		best := days[0]
		for _, d := range days[1:] {
			if d.Percentage > best.Percentage {
				best = d
			}
		}
		stats.BestDay = &best.Date
	}

	current := len(days)
	if y, m := MonthOf(today); y == year && m == month {
		current = today.Day()
	}
	for i := current - 1; i >= 0; i-- {
		if !days[i].Perfect() {
			break
		}
		stats.CurrentStreak++
	}

	run := 0
	for _, d := range days {
		if d.Perfect() {
			run++
			stats.LongestStreak = max(stats.LongestStreak, run)
		} else {
			run = 0
		}
	}

	return stats
}

// SummarizeHabits counts completed, failed and unmarked days per habit for
// the 0-indexed month, in habit order.
func SummarizeHabits(year, month int, habits []Habit, completions []Completion) []HabitMonthSummary {
	ix := NewIndex(completions)
	n := DaysInMonth(year, month)
	out := make([]HabitMonthSummary, 0, len(habits))
	for _, h := range habits {
		s := HabitMonthSummary{HabitID: h.ID, Name: h.Name}
		for day := 1; day <= n; day++ {
			switch ix.Status(h.ID, FormatDate(year, month, day)) {
			case StatusCompleted:
				s.Completed++
			case StatusFailed:
				s.Failed++
			default:
				s.None++
			}
		}
		out = append(out, s)
	}
	return out
}

// Tier buckets a day's percentage for the progress chart.
type Tier string

const (
	TierFull  Tier = "full"
	TierHigh  Tier = "high"
	TierMid   Tier = "mid"
	TierLow   Tier = "low"
	TierEmpty Tier = "empty"
)

func TierOf(percentage float64) Tier {
	switch {
	case percentage >= 100:
		return TierFull
	case percentage >= 75:
		return TierHigh
	case percentage >= 50:
		return TierMid
	case percentage > 0:
		return TierLow
	default:
		return TierEmpty
	}
}
