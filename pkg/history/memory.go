package history

import (
	"context"
	"sync"

	"drawpoker-server/pkg/playable/poker/fivecarddraw"
)

// MemoryStore keeps the most recent results in memory
type MemoryStore struct {
	mu      sync.RWMutex
	limit   int
	results []*fivecarddraw.GameResult
	keys    map[string]bool
}

// NewMemoryStore returns a store that holds at most limit results
func NewMemoryStore(limit int) *MemoryStore {
	if limit <= 0 {
		limit = MaxRows
	}

	return &MemoryStore{
		limit: limit,
		keys:  make(map[string]bool),
	}
}

// Save stores the result, evicting the oldest when the store is full
func (m *MemoryStore) Save(_ context.Context, result *fivecarddraw.GameResult) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.keys[result.ID] {
		return ErrDuplicateResult
	}

	m.keys[result.ID] = true
	m.results = append(m.results, result)
	if n := len(m.results); n > m.limit {
		delete(m.keys, m.results[0].ID)
		m.results = m.results[n-m.limit:]
	}

	return nil
}

// Recent returns up to rows results, most recent first
func (m *MemoryStore) Recent(_ context.Context, rows int) ([]*fivecarddraw.GameResult, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	rows = clampRows(rows)
	if rows > len(m.results) {
		rows = len(m.results)
	}

	recent := make([]*fivecarddraw.GameResult, 0, rows)
	for i := len(m.results) - 1; i >= 0 && len(recent) < rows; i-- {
		recent = append(recent, m.results[i])
	}

	return recent, nil
}
