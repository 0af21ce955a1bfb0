package store

import "sync"

// KV is the local key-value storage the repositories persist to. Each
// collection lives under a single key.
type KV interface {
	// Get returns the value stored under key, or nil if the key is unset
	Get(key string) ([]byte, error)
	// Set overwrites the value stored under key
	Set(key string, value []byte) error
}

// MemoryKV is a KV held in memory. It is used for transient sessions and
// in tests.
type MemoryKV struct {
	data map[string][]byte
	mu   sync.RWMutex
}

// NewMemoryKV returns an empty in-memory store.
func NewMemoryKV() *MemoryKV {
	return &MemoryKV{data: make(map[string][]byte)}
}

func (m *MemoryKV) Get(key string) ([]byte, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	v, ok := m.data[key]
	if !ok {
		return nil, nil
	}

	return append([]byte(nil), v...), nil
}

func (m *MemoryKV) Set(key string, value []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.data[key] = append([]byte(nil), value...)

	return nil
}
