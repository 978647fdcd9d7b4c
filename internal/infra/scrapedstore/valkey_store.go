package scrapedstore

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/valkey-io/valkey-go"

	"github.com/zerozero/zerozero/internal/domain/impact"
	"github.com/zerozero/zerozero/internal/domain/zone"
)

// ValkeyStore caches scraped journey data in a Valkey-compatible database.
// Entries expire so stale scrapes fall back to the baseline calculators.
type ValkeyStore struct {
	client valkey.Client
	prefix string
	ttl    time.Duration
}

// NewValkeyStore constructs a new store backed by Valkey.
func NewValkeyStore(client valkey.Client, prefix string, ttl time.Duration) *ValkeyStore {
	if prefix == "" {
		prefix = "scraped"
	}
	return &ValkeyStore{client: client, prefix: prefix, ttl: ttl}
}

func (s *ValkeyStore) Get(ctx context.Context, journey impact.JourneyID) (impact.ScrapedDataPoint, bool, error) {
	cmd := s.client.B().Get().Key(s.journeyKey(journey)).Build()
	payload, err := s.client.Do(ctx, cmd).ToString()
	if err != nil {
		if valkey.IsValkeyNil(err) {
			return impact.ScrapedDataPoint{}, false, nil
		}
		return impact.ScrapedDataPoint{}, false, err
	}
	var point impact.ScrapedDataPoint
	if err := json.Unmarshal([]byte(payload), &point); err != nil {
		return impact.ScrapedDataPoint{}, false, err
	}
	return point, true, nil
}

func (s *ValkeyStore) Put(ctx context.Context, journey impact.JourneyID, point impact.ScrapedDataPoint) error {
	payload, err := json.Marshal(point)
	if err != nil {
		return err
	}
	builder := s.client.B().Set().Key(s.journeyKey(journey)).Value(string(payload))
	var cmd valkey.Completed
	if s.ttl > 0 {
		ttl := s.ttl
		if ttl < time.Second {
			ttl = time.Second
		}
		cmd = builder.Ex(ttl).Build()
	} else {
		cmd = builder.Build()
	}
	return s.client.Do(ctx, cmd).Error()
}

func (s *ValkeyStore) journeyKey(journey impact.JourneyID) string {
	return fmt.Sprintf("%s:%s", s.prefix, journey)
}

var _ zone.ScrapedStore = (*ValkeyStore)(nil)
