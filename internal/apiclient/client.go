package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/brk3/habitgrid/internal/server"
	"github.com/brk3/habitgrid/pkg/habit"
	"github.com/brk3/habitgrid/pkg/versioninfo"
)

type Client struct {
	BaseURL string
	HTTP    *http.Client
}

func New(base string) *Client {
	return &Client{
		BaseURL: strings.TrimSuffix(base, "/"),
		HTTP:    http.DefaultClient,
	}
}

// do sends body as JSON (when non-nil) and decodes a JSON response into out
// (when non-nil). Non-2xx responses become errors carrying the server's
// error message.
func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var rd io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return err
		}
		rd = bytes.NewReader(b)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.BaseURL+path, rd)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	res, err := c.HTTP.Do(req)
	if err != nil {
		return err
	}
	defer res.Body.Close()

	if res.StatusCode < 200 || res.StatusCode > 299 {
		var e server.ErrorResponse
		if json.NewDecoder(res.Body).Decode(&e) == nil && e.Error != "" {
			return fmt.Errorf("%s %s: %s: %s", method, path, res.Status, e.Error)
		}
		return fmt.Errorf("%s %s: %s", method, path, res.Status)
	}
	if out == nil {
		return nil
	}
	return json.NewDecoder(res.Body).Decode(out)
}

func (c *Client) ListHabits(ctx context.Context) ([]habit.Habit, error) {
	var response server.HabitListResponse
	if err := c.do(ctx, http.MethodGet, "/habits", nil, &response); err != nil {
		return nil, err
	}
	return response.Habits, nil
}

func (c *Client) AddHabit(ctx context.Context, name string) (habit.Habit, error) {
	var h habit.Habit
	err := c.do(ctx, http.MethodPost, "/habits", server.AddHabitRequest{Name: name}, &h)
	return h, err
}

func (c *Client) DeleteHabit(ctx context.Context, habitID string) error {
	return c.do(ctx, http.MethodDelete, "/habits/"+url.PathEscape(habitID), nil, nil)
}

func (c *Client) SetStatus(ctx context.Context, habitID, date string, status habit.Status) error {
	path := fmt.Sprintf("/habits/%s/days/%s", url.PathEscape(habitID), url.PathEscape(date))
	return c.do(ctx, http.MethodPut, path, server.StatusRequest{Status: status}, nil)
}

// MonthStats fetches statistics for the 0-indexed month.
func (c *Client) MonthStats(ctx context.Context, year, month int) (*server.MonthStatsResponse, error) {
	var out server.MonthStatsResponse
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/stats/%d/%d", year, month+1), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) Export(ctx context.Context) (habit.Data, error) {
	var d habit.Data
	err := c.do(ctx, http.MethodGet, "/export", nil, &d)
	return d, err
}

func (c *Client) Version(ctx context.Context) (versioninfo.VersionInfo, error) {
	var v versioninfo.VersionInfo
	err := c.do(ctx, http.MethodGet, "/version", nil, &v)
	return v, err
}
