package history

import "sync"

// Ensure MemoryStore implements the Store interface
var _ Store = &MemoryStore{}

// MemoryStore keeps history for the lifetime of the process only.
type MemoryStore struct {
	mu   sync.Mutex
	data map[string]map[string]any
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{data: make(map[string]map[string]any)}
}

func (m *MemoryStore) Get(namespace, key string) (any, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.data[namespace][key], nil
}

func (m *MemoryStore) Set(namespace, key string, value any) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	apply(m.data, namespace, key, value)
	return nil
}
