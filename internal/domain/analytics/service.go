package analytics

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	apperrors "github.com/zerozero/zerozero/pkg/errors"
)

// Config holds runtime knobs for analytics capture.
type Config struct {
	TrendingLimit int
}

// Service captures interaction events and exposes trending counts for
// operators.
type Service interface {
	Capture(ctx context.Context, userID *int64, req CaptureRequest) (Event, error)
	Trending(ctx context.Context) ([]TrendingEvent, error)
}

type service struct {
	cfg    Config
	store  Store
	logger *slog.Logger
	now    func() time.Time
	newID  func() string
}

// NewService wires up the analytics domain.
func NewService(cfg Config, store Store, logger *slog.Logger) Service {
	return &service{
		cfg:    cfg,
		store:  store,
		logger: logger.With("component", "analytics.service"),
		now:    time.Now,
		newID:  func() string { return uuid.NewString() },
	}
}

func (s *service) Capture(ctx context.Context, userID *int64, req CaptureRequest) (Event, error) {
	name := normalizeEventName(req.Name)
	if name == "" {
		return Event{}, apperrors.Wrap("invalid_input", "event name cannot be empty", nil)
	}
	event := Event{
		ID:        s.newID(),
		UserID:    userID,
		Name:      name,
		Journey:   strings.TrimSpace(req.Journey),
		CardID:    strings.TrimSpace(req.CardID),
		CreatedAt: s.now().UTC(),
	}
	if err := s.store.RecordEvent(ctx, event); err != nil {
		return Event{}, apperrors.Wrap("storage_error", "failed to record event", err)
	}
	s.logger.Debug("event captured", "name", event.Name, "journey", event.Journey)
	return event, nil
}

func (s *service) Trending(ctx context.Context) ([]TrendingEvent, error) {
	limit := s.cfg.TrendingLimit
	if limit <= 0 {
		limit = 10
	}
	events, err := s.store.TopEvents(ctx, limit)
	if err != nil {
		return nil, apperrors.Wrap("storage_error", "failed to load trending events", err)
	}
	return events, nil
}

// normalizeEventName lowercases and snake-cases the supplied event name so
// counters aggregate across client spellings.
func normalizeEventName(raw string) string {
	lowered := strings.ToLower(strings.TrimSpace(raw))
	return strings.Join(strings.FieldsFunc(lowered, func(r rune) bool {
		return r == ' ' || r == '-' || r == '.'
	}), "_")
}
