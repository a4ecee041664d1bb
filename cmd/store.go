package cmd

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/brk3/habitgrid/internal/config"
	"github.com/brk3/habitgrid/internal/logger"
	"github.com/brk3/habitgrid/internal/storage"
	"github.com/brk3/habitgrid/internal/storage/bolt"
	"github.com/brk3/habitgrid/internal/storage/memory"
	"github.com/brk3/habitgrid/internal/storage/postgres"
	"github.com/brk3/habitgrid/internal/storage/redis"
	"github.com/brk3/habitgrid/internal/storage/sqlite"
	"github.com/brk3/habitgrid/internal/tracker"
	"github.com/brk3/habitgrid/pkg/habit"
)

func openBackend(ctx context.Context, c *config.Config) (storage.Backend, error) {
	switch c.Backend {
	case config.BackendBolt:
		return bolt.Open(c.DBPath)
	case config.BackendSQLite:
		return sqlite.Open(c.DBPath)
	case config.BackendRedis:
		return redis.Open(redis.Options{
			Addr:     c.Redis.Addr,
			Password: c.Redis.Password,
			DB:       c.Redis.DB,
		})
	case config.BackendPostgres:
		return postgres.Open(ctx, c.Postgres.Driver, c.Postgres.DSN)
	case config.BackendMemory:
		return memory.New(), nil
	default:
		return nil, fmt.Errorf("unknown backend %q", c.Backend)
	}
}

type trackerRunFunc func(cmd *cobra.Command, args []string, tr *tracker.Tracker) error

// withTracker opens the configured backend for the duration of a single
// command.
func withTracker(fn trackerRunFunc, opts ...tracker.Option) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		backend, err := openBackend(ctx, cfg)
		if err != nil {
			return fmt.Errorf("open %s store: %w", cfg.Backend, err)
		}
		gw := storage.NewGateway(backend, cfg.StorageKey)
		defer func() {
			if err := gw.Close(); err != nil {
				logger.Warn("Failed to close store", "backend", cfg.Backend, "error", err)
			}
		}()

		return fn(cmd, args, tracker.New(ctx, gw, opts...))
	}
}

func isPlain(cmd *cobra.Command) bool {
	if plain {
		return true
	}
	f, ok := cmd.OutOrStdout().(*os.File)
	return !ok || !term.IsTerminal(int(f.Fd()))
}

// parseMonth reads a YYYY-MM flag value into a year and 0-indexed month.
// An empty value selects the month containing now.
func parseMonth(s string, now time.Time) (int, int, error) {
	if s == "" {
		y, m := habit.MonthOf(now)
		return y, m, nil
	}
	t, err := time.Parse("2006-01", s)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid month %q, expected YYYY-MM", s)
	}
	y, m := habit.MonthOf(t)
	return y, m, nil
}

// parseDay accepts a YYYY-MM-DD key or the words today and yesterday.
func parseDay(s string, now time.Time) (string, error) {
	switch s {
	case "today":
		return habit.DateKey(now), nil
	case "yesterday":
		return habit.DateKey(now.AddDate(0, 0, -1)), nil
	}
	if !habit.ValidDate(s) {
		return "", fmt.Errorf("%w: %q", habit.ErrInvalidDate, s)
	}
	return s, nil
}
