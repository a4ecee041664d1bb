package server

import (
	"github.com/brk3/habitgrid/pkg/habit"
)

type ErrorResponse struct {
	Error string `json:"error"`
}

type HabitListResponse struct {
	Habits []habit.Habit `json:"habits"`
}

type AddHabitRequest struct {
	Name string `json:"name"`
}

type StatusRequest struct {
	Status habit.Status `json:"status"`
}

type StatusResponse struct {
	HabitID string       `json:"habit_id"`
	Date    string       `json:"date"`
	Status  habit.Status `json:"status"`
}

// Month is 1-12 in every response, unlike the 0-indexed habit package.
type MonthStatsResponse struct {
	Year      int    `json:"year"`
	Month     int    `json:"month"`
	MonthName string `json:"month_name"`
	habit.MonthStats
	Habits []habit.HabitMonthSummary `json:"habits"`
}

type DayStatsEntry struct {
	habit.DayStats
	Tier habit.Tier `json:"tier"`
}

type DayStatsResponse struct {
	Year  int             `json:"year"`
	Month int             `json:"month"`
	Days  []DayStatsEntry `json:"days"`
}
