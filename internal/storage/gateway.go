package storage

import (
	"context"
	"errors"

	"github.com/brk3/habitgrid/internal/logger"
	"github.com/brk3/habitgrid/pkg/habit"
)

// Gateway loads and saves the whole aggregate under a single key. It never
// returns errors: failures are logged, a failed load yields empty data and a
// failed save is dropped.
type Gateway struct {
	backend Backend
	key     string
}

func NewGateway(b Backend, key string) *Gateway {
	if key == "" {
		key = DefaultKey
	}
	return &Gateway{backend: b, key: key}
}

func (g *Gateway) Load(ctx context.Context) habit.Data {
	raw, err := g.backend.Get(ctx, g.key)
	if errors.Is(err, ErrNotFound) {
		logger.Debug("No stored habit data, starting empty", "key", g.key)
		return habit.Empty()
	}
	if err != nil {
		logger.Error("Error loading habit data", "key", g.key, "error", err)
		return habit.Empty()
	}

	d, dropped, err := Decode(raw)
	if err != nil {
		logger.Error("Stored habit data is malformed, starting empty", "key", g.key, "error", err)
		return habit.Empty()
	}
	if dropped > 0 {
		logger.Warn("Dropped invalid records from stored habit data", "key", g.key, "dropped", dropped)
	}
	logger.Debug("Loaded habit data", "key", g.key, "habits", len(d.Habits), "completions", len(d.Completions))
	return d
}

func (g *Gateway) Save(ctx context.Context, d habit.Data) {
	raw, err := Encode(d)
	if err != nil {
		logger.Error("Error encoding habit data", "key", g.key, "error", err)
		return
	}
	if err := g.backend.Put(ctx, g.key, raw); err != nil {
		logger.Error("Error saving habit data", "key", g.key, "error", err)
		return
	}
	logger.Debug("Saved habit data", "key", g.key, "bytes", len(raw))
}

func (g *Gateway) Close() error {
	return g.backend.Close()
}
