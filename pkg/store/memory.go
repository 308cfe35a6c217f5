package store

import (
	"sort"
	"sync"

	"github.com/dispa-lang/dispa/pkg/types"
)

// MemoryStore implements Store in memory. Used for tests and for builds that
// don't want an on-disk cache.
type MemoryStore struct {
	mu      sync.RWMutex
	records map[string]Record // keyed by FileID.Hex()
}

// NewMemory creates a new in-memory store.
func NewMemory() *MemoryStore {
	return &MemoryStore{records: make(map[string]Record)}
}

// Exists reports whether this exact file content was already compiled.
func (m *MemoryStore) Exists(id types.FileID) (bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	_, ok := m.records[id.Hex()]
	return ok, nil
}

// Add stores a compile record (idempotent).
func (m *MemoryStore) Add(rec Record) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.records[rec.ID.Hex()] = rec
	return nil
}

// All returns every record, ordered by path.
func (m *MemoryStore) All() ([]Record, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	records := make([]Record, 0, len(m.records))
	for _, rec := range m.records {
		records = append(records, rec)
	}
	sort.Slice(records, func(i, j int) bool { return records[i].Path < records[j].Path })
	return records, nil
}

// Close is a no-op for the memory store.
func (m *MemoryStore) Close() error {
	return nil
}
