package analyticsstore

import (
	"context"
	"sort"
	"sync"

	"github.com/zerozero/zerozero/internal/domain/analytics"
)

// MemoryStore is an in-memory implementation of the analytics store for
// tests/dev.
type MemoryStore struct {
	mu     sync.RWMutex
	counts map[string]int64
	recent []analytics.Event
}

// NewMemoryStore constructs a store backed by process memory.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{counts: make(map[string]int64)}
}

// RecordEvent bumps the counter and keeps a bounded tail of raw events.
func (s *MemoryStore) RecordEvent(_ context.Context, event analytics.Event) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.counts[event.Name]++
	s.recent = append(s.recent, event)
	if len(s.recent) > recentEventsCap {
		s.recent = s.recent[len(s.recent)-recentEventsCap:]
	}
	return nil
}

// TopEvents returns the most frequent event names.
func (s *MemoryStore) TopEvents(_ context.Context, limit int) ([]analytics.TrendingEvent, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if limit <= 0 {
		limit = len(s.counts)
	}
	items := make([]analytics.TrendingEvent, 0, len(s.counts))
	for name, count := range s.counts {
		items = append(items, analytics.TrendingEvent{Name: name, Count: count})
	}
	sort.Slice(items, func(i, j int) bool {
		if items[i].Count == items[j].Count {
			return items[i].Name < items[j].Name
		}
		return items[i].Count > items[j].Count
	})
	if len(items) > limit {
		items = items[:limit]
	}
	return items, nil
}

var _ analytics.Store = (*MemoryStore)(nil)
