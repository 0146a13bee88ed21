package store

import (
	"context"
	"sync"

	"github.com/doylet/CapacityReset-sub000/internal/types"
)

type memoryEntry struct {
	version string
	records []types.SkillRecord
}

// MemoryStore is an in-process Store for tests and single-shot CLI runs.
type MemoryStore struct {
	mu   sync.RWMutex
	docs map[string]memoryEntry
}

// NewMemory creates an empty MemoryStore.
func NewMemory() *MemoryStore {
	return &MemoryStore{docs: make(map[string]memoryEntry)}
}

// Save implements Store.
func (m *MemoryStore) Save(_ context.Context, documentID, extractorVersion string, records []types.SkillRecord) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.docs[documentID] = memoryEntry{
		version: extractorVersion,
		records: append([]types.SkillRecord(nil), records...),
	}
	return nil
}

// Version implements Store.
func (m *MemoryStore) Version(_ context.Context, documentID string) (string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	entry, ok := m.docs[documentID]
	if !ok {
		return "", ErrNotFound
	}
	return entry.version, nil
}

// Records returns the stored records for a document.
func (m *MemoryStore) Records(documentID string) ([]types.SkillRecord, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	entry, ok := m.docs[documentID]
	if !ok {
		return nil, false
	}
	return append([]types.SkillRecord(nil), entry.records...), true
}
