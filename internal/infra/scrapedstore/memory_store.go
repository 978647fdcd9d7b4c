package scrapedstore

import (
	"context"
	"sync"
	"time"

	"github.com/zerozero/zerozero/internal/domain/impact"
	"github.com/zerozero/zerozero/internal/domain/zone"
)

type entry struct {
	point     impact.ScrapedDataPoint
	expiresAt time.Time
}

// MemoryStore is an in-memory implementation of the scraped data store for
// tests/dev.
type MemoryStore struct {
	mu      sync.RWMutex
	entries map[impact.JourneyID]entry
	ttl     time.Duration
}

// NewMemoryStore constructs a store backed by process memory.
func NewMemoryStore(ttl time.Duration) *MemoryStore {
	return &MemoryStore{
		entries: make(map[impact.JourneyID]entry),
		ttl:     ttl,
	}
}

// Get returns the cached data point unless it has expired.
func (s *MemoryStore) Get(_ context.Context, journey impact.JourneyID) (impact.ScrapedDataPoint, bool, error) {
	s.mu.RLock()
	stored, ok := s.entries[journey]
	s.mu.RUnlock()
	if !ok {
		return impact.ScrapedDataPoint{}, false, nil
	}
	if hasExpired(stored.expiresAt) {
		s.mu.Lock()
		delete(s.entries, journey)
		s.mu.Unlock()
		return impact.ScrapedDataPoint{}, false, nil
	}
	return stored.point, true, nil
}

// Put caches the data point with the store's TTL.
func (s *MemoryStore) Put(_ context.Context, journey impact.JourneyID, point impact.ScrapedDataPoint) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	exp := time.Time{}
	if s.ttl > 0 {
		exp = time.Now().Add(s.ttl)
	}
	s.entries[journey] = entry{point: point, expiresAt: exp}
	return nil
}

func hasExpired(ts time.Time) bool {
	if ts.IsZero() {
		return false
	}
	return ts.Before(time.Now())
}

var _ zone.ScrapedStore = (*MemoryStore)(nil)
