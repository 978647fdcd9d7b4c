package analytics

import "context"

// Store defines the persistence contract for analytics data.
type Store interface {
	RecordEvent(ctx context.Context, event Event) error
	TopEvents(ctx context.Context, limit int) ([]TrendingEvent, error)
}
