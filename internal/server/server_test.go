package server

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/brk3/habitgrid/internal/config"
	"github.com/brk3/habitgrid/internal/storage"
	"github.com/brk3/habitgrid/internal/storage/memory"
	"github.com/brk3/habitgrid/internal/tracker"
	"github.com/brk3/habitgrid/pkg/habit"
)

func newTestServer(t *testing.T) (http.Handler, *tracker.Tracker) {
	t.Helper()
	cfg := config.Default()
	tr := tracker.New(context.Background(), storage.NewGateway(memory.New(), ""),
		tracker.WithClock(func() time.Time { return time.Date(2024, time.June, 3, 12, 0, 0, 0, time.Local) }),
		tracker.WithObserver(ObserveData),
	)
	return New(&cfg, tr).Router(), tr
}

func mockRequest(h http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)

	return rr
}

func decode[T any](t *testing.T, rr *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	if err := json.Unmarshal(rr.Body.Bytes(), &v); err != nil {
		t.Fatalf("unmarshal error: %v, body: %s", err, rr.Body.String())
	}
	return v
}

func TestListHabits_Empty(t *testing.T) {
	h, _ := newTestServer(t)
	rr := mockRequest(h, http.MethodGet, "/habits/", nil)
	if rr.Code != http.StatusOK {
		t.Fatalf("got %d want 200", rr.Code)
	}
	if got := strings.TrimSpace(rr.Body.String()); got != `{"habits":[]}` {
		t.Fatalf("got %s want empty list", got)
	}
}

func TestAddHabit_Valid(t *testing.T) {
	h, tr := newTestServer(t)

	rr := mockRequest(h, http.MethodPost, "/habits/", AddHabitRequest{Name: " guitar "})
	if rr.Code != http.StatusCreated {
		t.Fatalf("got %d want 201, body: %s", rr.Code, rr.Body.String())
	}
	created := decode[habit.Habit](t, rr)
	if created.Name != "guitar" || created.ID == "" {
		t.Fatalf("unexpected habit: %+v", created)
	}

	rr = mockRequest(h, http.MethodGet, "/habits", nil)
	list := decode[HabitListResponse](t, rr)
	if len(list.Habits) != 1 || list.Habits[0].ID != created.ID {
		t.Fatalf("unexpected list: %+v", list)
	}
	if len(tr.Habits()) != 1 {
		t.Fatalf("tracker has %d habits, want 1", len(tr.Habits()))
	}
}

func TestAddHabit_Invalid(t *testing.T) {
	h, _ := newTestServer(t)

	for _, body := range []any{
		AddHabitRequest{Name: "   "},
		AddHabitRequest{Name: strings.Repeat("x", habit.MaxNameLength+1)},
		"not an object",
	} {
		rr := mockRequest(h, http.MethodPost, "/habits/", body)
		if rr.Code != http.StatusBadRequest {
			t.Errorf("body %v: got %d want 400", body, rr.Code)
		}
	}
}

func TestSetStatus(t *testing.T) {
	h, tr := newTestServer(t)
	hb, err := tr.AddHabit(context.Background(), "guitar")
	if err != nil {
		t.Fatal(err)
	}

	rr := mockRequest(h, http.MethodPut, "/habits/"+hb.ID+"/days/2024-06-01", StatusRequest{Status: habit.StatusFailed})
	if rr.Code != http.StatusOK {
		t.Fatalf("got %d want 200, body: %s", rr.Code, rr.Body.String())
	}
	resp := decode[StatusResponse](t, rr)
	if resp.Status != habit.StatusFailed || resp.Date != "2024-06-01" {
		t.Fatalf("unexpected response: %+v", resp)
	}

	rr = mockRequest(h, http.MethodGet, "/habits/"+hb.ID+"/days/2024-06-01", nil)
	if got := decode[StatusResponse](t, rr); got.Status != habit.StatusFailed {
		t.Fatalf("got status %q want failed", got.Status)
	}

	rr = mockRequest(h, http.MethodPut, "/habits/"+hb.ID+"/days/2024-06-01", StatusRequest{Status: habit.StatusNone})
	if rr.Code != http.StatusOK {
		t.Fatalf("got %d want 200", rr.Code)
	}
	if n := len(tr.Snapshot().Completions); n != 0 {
		t.Fatalf("got %d completions after clearing, want 0", n)
	}
}

func TestSetStatus_Errors(t *testing.T) {
	h, tr := newTestServer(t)
	hb, err := tr.AddHabit(context.Background(), "guitar")
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name string
		path string
		body any
		want int
	}{
		{"unknown habit", "/habits/nope/days/2024-06-01", StatusRequest{Status: habit.StatusCompleted}, http.StatusNotFound},
		{"bad date", "/habits/" + hb.ID + "/days/2024-6-1", StatusRequest{Status: habit.StatusCompleted}, http.StatusBadRequest},
		{"bad status", "/habits/" + hb.ID + "/days/2024-06-01", StatusRequest{Status: "done"}, http.StatusBadRequest},
		{"bad json", "/habits/" + hb.ID + "/days/2024-06-01", 12, http.StatusBadRequest},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := mockRequest(h, http.MethodPut, tt.path, tt.body)
			if rr.Code != tt.want {
				t.Fatalf("got %d want %d, body: %s", rr.Code, tt.want, rr.Body.String())
			}
		})
	}
}

func TestDeleteHabit_Cascades(t *testing.T) {
	h, tr := newTestServer(t)
	ctx := context.Background()
	hb, _ := tr.AddHabit(ctx, "guitar")
	for _, d := range []string{"2024-06-01", "2024-06-02"} {
		if err := tr.SetStatus(ctx, hb.ID, d, habit.StatusCompleted); err != nil {
			t.Fatal(err)
		}
	}

	rr := mockRequest(h, http.MethodDelete, "/habits/"+hb.ID, nil)
	if rr.Code != http.StatusNoContent {
		t.Fatalf("got %d want 204", rr.Code)
	}
	snap := tr.Snapshot()
	if len(snap.Habits) != 0 || len(snap.Completions) != 0 {
		t.Fatalf("expected empty data after delete, got %+v", snap)
	}

	rr = mockRequest(h, http.MethodDelete, "/habits/"+hb.ID, nil)
	if rr.Code != http.StatusNoContent {
		t.Fatalf("repeat delete: got %d want 204", rr.Code)
	}
}

func TestMonthStats(t *testing.T) {
	h, tr := newTestServer(t)
	ctx := context.Background()
	hb, _ := tr.AddHabit(ctx, "guitar")
	for _, d := range []string{"2024-06-01", "2024-06-02", "2024-06-03"} {
		if err := tr.SetStatus(ctx, hb.ID, d, habit.StatusCompleted); err != nil {
			t.Fatal(err)
		}
	}

	rr := mockRequest(h, http.MethodGet, "/stats/2024/6", nil)
	if rr.Code != http.StatusOK {
		t.Fatalf("got %d want 200, body: %s", rr.Code, rr.Body.String())
	}
	resp := decode[MonthStatsResponse](t, rr)
	if resp.MonthName != "June" || resp.Month != 6 {
		t.Errorf("unexpected month: %d %s", resp.Month, resp.MonthName)
	}
	if resp.CurrentStreak != 3 || resp.LongestStreak != 3 || resp.TotalCompletions != 3 {
		t.Errorf("unexpected stats: %+v", resp.MonthStats)
	}
	if resp.BestDay == nil || *resp.BestDay != 1 {
		t.Errorf("best day = %v, want 1", resp.BestDay)
	}
	if len(resp.Habits) != 1 || resp.Habits[0].Completed != 3 {
		t.Errorf("unexpected habit summaries: %+v", resp.Habits)
	}
}

func TestMonthStats_NoHabitsHasNullBestDay(t *testing.T) {
	h, _ := newTestServer(t)
	rr := mockRequest(h, http.MethodGet, "/stats/2024/2", nil)
	if !strings.Contains(rr.Body.String(), `"best_day":null`) {
		t.Fatalf("expected null best_day, got %s", rr.Body.String())
	}
}

func TestDayStats(t *testing.T) {
	h, tr := newTestServer(t)
	ctx := context.Background()
	a, _ := tr.AddHabit(ctx, "a")
	_, _ = tr.AddHabit(ctx, "b")
	if err := tr.SetStatus(ctx, a.ID, "2024-02-29", habit.StatusCompleted); err != nil {
		t.Fatal(err)
	}

	rr := mockRequest(h, http.MethodGet, "/stats/2024/2/days", nil)
	resp := decode[DayStatsResponse](t, rr)
	if len(resp.Days) != 29 {
		t.Fatalf("got %d days want 29", len(resp.Days))
	}
	last := resp.Days[28]
	if last.Percentage != 50 || last.Tier != habit.TierMid {
		t.Errorf("unexpected day 29: %+v", last)
	}
}

func TestMonthParams_Invalid(t *testing.T) {
	h, _ := newTestServer(t)
	for _, path := range []string{"/stats/2024/0", "/stats/2024/13", "/stats/abc/1", "/stats/2024/june/days"} {
		rr := mockRequest(h, http.MethodGet, path, nil)
		if rr.Code != http.StatusBadRequest {
			t.Errorf("%s: got %d want 400", path, rr.Code)
		}
	}
}

func TestVersionAndQuote(t *testing.T) {
	h, _ := newTestServer(t)

	rr := mockRequest(h, http.MethodGet, "/version", nil)
	if !strings.Contains(rr.Body.String(), `"version"`) {
		t.Errorf("expected version info, got %s", rr.Body.String())
	}

	rr = mockRequest(h, http.MethodGet, "/quote", nil)
	q := decode[habit.Quote](t, rr)
	if q.Text == "" || q.Author == "" {
		t.Errorf("unexpected quote: %+v", q)
	}
}

func TestExport(t *testing.T) {
	h, tr := newTestServer(t)
	ctx := context.Background()
	hb, _ := tr.AddHabit(ctx, "guitar")
	_ = tr.SetStatus(ctx, hb.ID, "2024-06-01", habit.StatusFailed)

	rr := mockRequest(h, http.MethodGet, "/export", nil)
	d := decode[habit.Data](t, rr)
	if len(d.Habits) != 1 || len(d.Completions) != 1 || d.Completions[0].Status != habit.StatusFailed {
		t.Fatalf("unexpected export: %+v", d)
	}
}

func TestMetricsEndpoint(t *testing.T) {
	h, tr := newTestServer(t)
	_, _ = tr.AddHabit(context.Background(), "guitar")
	_ = mockRequest(h, http.MethodGet, "/habits/", nil)

	rr := mockRequest(h, http.MethodGet, "/metrics", nil)
	body := rr.Body.String()
	for _, want := range []string{"habits_active_habits_total", "habits_http_requests_total", `endpoint="/habits`} {
		if !strings.Contains(body, want) {
			t.Errorf("metrics output missing %q", want)
		}
	}
}
