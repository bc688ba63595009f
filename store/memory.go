package store

import "maps"

// MemoryStore is a Store that lives as long as the process.
type MemoryStore struct {
	values map[string]string
}

// NewMemoryStore returns an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{values: make(map[string]string)}
}

func (m *MemoryStore) Get(key string) (string, bool, error) {
	v, ok := m.values[key]
	return v, ok, nil
}

func (m *MemoryStore) Set(key, value string) error {
	m.values[key] = value
	return nil
}

func (m *MemoryStore) Remove(key string) error {
	delete(m.values, key)
	return nil
}

// Snapshot returns a copy of every entry.
func (m *MemoryStore) Snapshot() map[string]string {
	return maps.Clone(m.values)
}
