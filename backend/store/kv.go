package store

import (
	"context"
	"fmt"
	"sync"

	"mylegs/backend/config"
)

// KV is the durable blob storage behind the binder and progress stores.
// Get returns (nil, nil) for a missing key; corrupt values are the reader's
// problem and must degrade to empty collections, never crash startup.
type KV interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Put(ctx context.Context, key string, value []byte) error
	Close() error
}

// OpenKV selects the storage backend from configuration. The sqlite file is
// the per-installation default; postgres suits a hosted deployment; memory
// is for tests and throwaway runs.
func OpenKV(cfg *config.Config) (KV, error) {
	switch cfg.StorageDriver {
	case "memory":
		return NewMemoryKV(), nil
	case "sqlite":
		return OpenSQLiteKV(cfg.StoragePath)
	case "postgres":
		return OpenPostgresKV(cfg)
	default:
		return nil, fmt.Errorf("unknown storage driver %q", cfg.StorageDriver)
	}
}

type memoryKV struct {
	mu   sync.RWMutex
	data map[string][]byte
}

func NewMemoryKV() KV {
	return &memoryKV{data: make(map[string][]byte)}
}

func (m *memoryKV) Get(_ context.Context, key string) ([]byte, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	value, ok := m.data[key]
	if !ok {
		return nil, nil
	}
	out := make([]byte, len(value))
	copy(out, value)
	return out, nil
}

func (m *memoryKV) Put(_ context.Context, key string, value []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	stored := make([]byte, len(value))
	copy(stored, value)
	m.data[key] = stored
	return nil
}

func (m *memoryKV) Close() error {
	return nil
}
