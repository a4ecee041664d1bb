package memory

import (
	"context"
	"slices"
	"sync"

	"github.com/brk3/habitgrid/internal/storage"
)

type Store struct {
	mu   sync.RWMutex
	data map[string][]byte

	// PutErr, when set, is returned by every Put.
	PutErr error
}

func New() *Store {
	return &Store{data: map[string][]byte{}}
}

func (m *Store) Get(_ context.Context, key string) ([]byte, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	v, ok := m.data[key]
	if !ok {
		return nil, storage.ErrNotFound
	}
	return slices.Clone(v), nil
}

func (m *Store) Put(_ context.Context, key string, value []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.PutErr != nil {
		return m.PutErr
	}
	m.data[key] = slices.Clone(value)
	return nil
}

func (m *Store) Close() error {
	return nil
}

var _ storage.Backend = (*Store)(nil)
