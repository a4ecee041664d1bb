package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/brk3/habitgrid/internal/logger"
	"github.com/brk3/habitgrid/pkg/habit"
	"github.com/brk3/habitgrid/pkg/versioninfo"
	"github.com/go-chi/chi/v5"
)

func writeJSON(w http.ResponseWriter, code int, v any) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	return json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, code int, msg string) {
	_ = writeJSON(w, code, ErrorResponse{Error: msg})
}

func (s *Server) getVersionInfo(w http.ResponseWriter, _ *http.Request) {
	if err := writeJSON(w, http.StatusOK, versioninfo.Get()); err != nil {
		logger.Error("Failed to serialize version info response", "error", err)
	}
}

func (s *Server) getQuote(w http.ResponseWriter, _ *http.Request) {
	if err := writeJSON(w, http.StatusOK, habit.DailyQuote(s.tracker.Today())); err != nil {
		logger.Error("Failed to serialize quote response", "error", err)
	}
}

func (s *Server) exportData(w http.ResponseWriter, _ *http.Request) {
	d := s.tracker.Snapshot()
	if d.Habits == nil {
		d.Habits = []habit.Habit{}
	}
	if d.Completions == nil {
		d.Completions = []habit.Completion{}
	}
	if err := writeJSON(w, http.StatusOK, d); err != nil {
		logger.Error("Failed to serialize export response", "error", err)
	}
}

func (s *Server) listHabits(w http.ResponseWriter, _ *http.Request) {
	habits := s.tracker.Habits()
	if habits == nil {
		habits = []habit.Habit{}
	}
	logger.Debug("Listed habits", "count", len(habits))
	if err := writeJSON(w, http.StatusOK, HabitListResponse{Habits: habits}); err != nil {
		logger.Error("Failed to serialize habit list response", "error", err)
	}
}

func (s *Server) addHabit(w http.ResponseWriter, r *http.Request) {
	var req AddHabitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Warn("Invalid JSON in add habit request", "error", err)
		writeError(w, http.StatusBadRequest, "invalid JSON")
		return
	}
	h, err := s.tracker.AddHabit(r.Context(), req.Name)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if err := writeJSON(w, http.StatusCreated, h); err != nil {
		logger.Error("Failed to serialize add habit response", "habit_id", h.ID, "error", err)
	}
}

func (s *Server) deleteHabit(w http.ResponseWriter, r *http.Request) {
	habitID := chi.URLParam(r, "habit_id")
	s.tracker.DeleteHabit(r.Context(), habitID)
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) getStatus(w http.ResponseWriter, r *http.Request) {
	habitID := chi.URLParam(r, "habit_id")
	date := chi.URLParam(r, "date")

	status, err := s.tracker.Status(habitID, date)
	if err != nil {
		writeError(w, statusCodeFor(err), err.Error())
		return
	}
	if err := writeJSON(w, http.StatusOK, StatusResponse{HabitID: habitID, Date: date, Status: status}); err != nil {
		logger.Error("Failed to serialize status response", "habit_id", habitID, "error", err)
	}
}

func (s *Server) setStatus(w http.ResponseWriter, r *http.Request) {
	habitID := chi.URLParam(r, "habit_id")
	date := chi.URLParam(r, "date")

	var req StatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Warn("Invalid JSON in set status request", "error", err)
		writeError(w, http.StatusBadRequest, "invalid JSON")
		return
	}
	status, err := habit.ParseStatus(string(req.Status))
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if err := s.tracker.SetStatus(r.Context(), habitID, date, status); err != nil {
		logger.Warn("Rejected status change", "habit_id", habitID, "date", date, "error", err)
		writeError(w, statusCodeFor(err), err.Error())
		return
	}
	if err := writeJSON(w, http.StatusOK, StatusResponse{HabitID: habitID, Date: date, Status: status}); err != nil {
		logger.Error("Failed to serialize status response", "habit_id", habitID, "error", err)
	}
}

func (s *Server) getMonthStats(w http.ResponseWriter, r *http.Request) {
	year, month, ok := monthParams(w, r)
	if !ok {
		return
	}
	resp := MonthStatsResponse{
		Year:       year,
		Month:      month + 1,
		MonthName:  habit.MonthName(month),
		MonthStats: s.tracker.MonthStats(year, month),
		Habits:     s.tracker.HabitSummaries(year, month),
	}
	if err := writeJSON(w, http.StatusOK, resp); err != nil {
		logger.Error("Failed to serialize month stats response", "year", year, "month", month+1, "error", err)
	}
}

func (s *Server) getDayStats(w http.ResponseWriter, r *http.Request) {
	year, month, ok := monthParams(w, r)
	if !ok {
		return
	}
	days := s.tracker.DayStats(year, month)
	resp := DayStatsResponse{Year: year, Month: month + 1, Days: make([]DayStatsEntry, 0, len(days))}
	for _, d := range days {
		resp.Days = append(resp.Days, DayStatsEntry{DayStats: d, Tier: habit.TierOf(d.Percentage)})
	}
	if err := writeJSON(w, http.StatusOK, resp); err != nil {
		logger.Error("Failed to serialize day stats response", "year", year, "month", month+1, "error", err)
	}
}

// monthParams reads {year} and the 1-12 {month} and returns the 0-indexed
// month. It writes a 400 and returns ok=false on bad input.
func monthParams(w http.ResponseWriter, r *http.Request) (year, month int, ok bool) {
	year, err := strconv.Atoi(chi.URLParam(r, "year"))
	if err != nil || year < 1 || year > 9999 {
		writeError(w, http.StatusBadRequest, "bad year")
		return 0, 0, false
	}
	month, err = strconv.Atoi(chi.URLParam(r, "month"))
	if err != nil || month < 1 || month > 12 {
		writeError(w, http.StatusBadRequest, "bad month: must be 1-12")
		return 0, 0, false
	}
	return year, month - 1, true
}

func statusCodeFor(err error) int {
	switch {
	case errors.Is(err, habit.ErrUnknownHabit):
		return http.StatusNotFound
	case errors.Is(err, habit.ErrInvalidDate), errors.Is(err, habit.ErrInvalidStatus):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
