package analyticsstore

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/valkey-io/valkey-go"

	"github.com/zerozero/zerozero/internal/domain/analytics"
)

// Keep a bounded tail of raw events for debugging alongside the counters.
const recentEventsCap = 1000

// ValkeyStore persists analytics events using a Valkey-compatible database.
type ValkeyStore struct {
	client valkey.Client
	prefix string
}

// NewValkeyStore constructs a new store backed by Valkey.
func NewValkeyStore(client valkey.Client, prefix string) *ValkeyStore {
	if prefix == "" {
		prefix = "events"
	}
	return &ValkeyStore{client: client, prefix: prefix}
}

func (s *ValkeyStore) RecordEvent(ctx context.Context, event analytics.Event) error {
	if err := s.client.Do(ctx, s.client.B().Zincrby().Key(s.countKey()).Increment(1).Member(event.Name).Build()).Error(); err != nil {
		return err
	}
	payload, err := json.Marshal(event)
	if err != nil {
		return err
	}
	if err := s.client.Do(ctx, s.client.B().Lpush().Key(s.recentKey()).Element(string(payload)).Build()).Error(); err != nil {
		return err
	}
	return s.client.Do(ctx, s.client.B().Ltrim().Key(s.recentKey()).Start(0).Stop(recentEventsCap-1).Build()).Error()
}

func (s *ValkeyStore) TopEvents(ctx context.Context, limit int) ([]analytics.TrendingEvent, error) {
	if limit <= 0 {
		limit = 10
	}
	resp := s.client.Do(ctx, s.client.B().Zrevrange().Key(s.countKey()).Start(0).Stop(int64(limit-1)).Withscores().Build())
	arr, err := resp.ToArray()
	if err != nil {
		if valkey.IsValkeyNil(err) {
			return nil, nil
		}
		return nil, err
	}
	out := make([]analytics.TrendingEvent, 0, len(arr))
	for i := 0; i < len(arr); {
		var (
			member string
			score  float64
		)
		if tuple, tupleErr := arr[i].ToArray(); tupleErr == nil && len(tuple) == 2 {
			// RESP3 returns [member, score] per element
			if member, err = tuple[0].ToString(); err != nil {
				if valkey.IsValkeyNil(err) {
					i++
					continue
				}
				return nil, err
			}
			if score, err = tuple[1].ToFloat64(); err != nil {
				return nil, err
			}
			i++
		} else {
			// RESP2 returns a flat alternating array.
			if i+1 >= len(arr) {
				break
			}
			if member, err = arr[i].ToString(); err != nil {
				if valkey.IsValkeyNil(err) {
					i += 2
					continue
				}
				return nil, err
			}
			if score, err = arr[i+1].ToFloat64(); err != nil {
				return nil, err
			}
			i += 2
		}
		out = append(out, analytics.TrendingEvent{Name: member, Count: int64(score)})
	}
	return out, nil
}

func (s *ValkeyStore) countKey() string {
	return fmt.Sprintf("%s:counts", s.prefix)
}

func (s *ValkeyStore) recentKey() string {
	return fmt.Sprintf("%s:recent", s.prefix)
}

var _ analytics.Store = (*ValkeyStore)(nil)
