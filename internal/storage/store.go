package storage

import (
	"context"
	"errors"
)

const DefaultKey = "habit-tracker-data"

var ErrNotFound = errors.New("key not found")

// Backend is a blob store addressed by key. Get returns ErrNotFound when the
// key has never been written.
type Backend interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Put(ctx context.Context, key string, value []byte) error
	Close() error
}
