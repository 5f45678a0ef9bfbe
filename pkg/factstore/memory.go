package factstore

import (
	"context"
	"slices"
	"sync"

	"github.com/LaurenzPoll/knowledge-graph-agent/pkg/types"
)

// MemoryStore implements FactsDB in process memory.
type MemoryStore struct {
	mu     sync.RWMutex
	groups map[string][]types.Triple
}

// NewMemoryStore creates an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{groups: make(map[string][]types.Triple)}
}

func (m *MemoryStore) Initialize(ctx context.Context) error {
	return nil
}

func (m *MemoryStore) SaveTriples(ctx context.Context, groupID string, triples []types.Triple) error {
	if err := validateTriples(groupID, triples); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.groups[groupID] = slices.Clone(triples)
	return nil
}

func (m *MemoryStore) GetTriples(ctx context.Context, groupID string) ([]types.Triple, error) {
	if groupID == "" {
		return nil, ErrEmptyGroupID
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	stored := m.groups[groupID]
	if stored == nil {
		return []types.Triple{}, nil
	}
	return slices.Clone(stored), nil
}

func (m *MemoryStore) DeleteGroup(ctx context.Context, groupID string) error {
	if groupID == "" {
		return ErrEmptyGroupID
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.groups, groupID)
	return nil
}

func (m *MemoryStore) ListGroups(ctx context.Context) ([]string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	groups := make([]string, 0, len(m.groups))
	for id := range m.groups {
		groups = append(groups, id)
	}
	slices.Sort(groups)
	return groups, nil
}

func (m *MemoryStore) GetStats(ctx context.Context) (*Stats, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	stats := &Stats{GroupCount: int64(len(m.groups))}
	for _, triples := range m.groups {
		stats.TripleCount += int64(len(triples))
	}
	return stats, nil
}

func (m *MemoryStore) Close() error {
	return nil
}
