package answerrepo

import (
	"context"
	"sync"

	"github.com/zerozero/zerozero/internal/domain/answers"
	"github.com/zerozero/zerozero/internal/domain/impact"
)

// MemoryRepository stores answers and likes in process memory for tests/dev.
type MemoryRepository struct {
	mu      sync.RWMutex
	answers map[int64]impact.AnswerSet
	likes   map[int64][]string
}

// NewMemoryRepository constructs a new in-memory repository.
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{
		answers: make(map[int64]impact.AnswerSet),
		likes:   make(map[int64][]string),
	}
}

// UpsertAnswer stores one answer keyed by journey and question.
func (r *MemoryRepository) UpsertAnswer(_ context.Context, record answers.AnswerRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	set, ok := r.answers[record.UserID]
	if !ok {
		set = impact.AnswerSet{}
		r.answers[record.UserID] = set
	}
	journey, ok := set[record.Journey]
	if !ok {
		journey = impact.Answers{}
		set[record.Journey] = journey
	}
	journey[record.QuestionID] = record.Value
	return nil
}

// AnswersByJourney returns a copy of one journey's answers.
func (r *MemoryRepository) AnswersByJourney(_ context.Context, userID int64, journey impact.JourneyID) (impact.Answers, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	stored := r.answers[userID][journey]
	out := make(impact.Answers, len(stored))
	for questionID, value := range stored {
		out[questionID] = value
	}
	return out, nil
}

// AnswersByUser returns a copy of every journey's answers.
func (r *MemoryRepository) AnswersByUser(_ context.Context, userID int64) (impact.AnswerSet, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := impact.AnswerSet{}
	for journey, stored := range r.answers[userID] {
		copied := make(impact.Answers, len(stored))
		for questionID, value := range stored {
			copied[questionID] = value
		}
		out[journey] = copied
	}
	return out, nil
}

// DeleteJourney drops all answers for one journey.
func (r *MemoryRepository) DeleteJourney(_ context.Context, userID int64, journey impact.JourneyID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.answers[userID], journey)
	return nil
}

// InsertLike records a like once.
func (r *MemoryRepository) InsertLike(_ context.Context, userID int64, cardID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.likes[userID] {
		if existing == cardID {
			return nil
		}
	}
	r.likes[userID] = append(r.likes[userID], cardID)
	return nil
}

// DeleteLike removes a like.
func (r *MemoryRepository) DeleteLike(_ context.Context, userID int64, cardID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	kept := r.likes[userID][:0]
	for _, existing := range r.likes[userID] {
		if existing != cardID {
			kept = append(kept, existing)
		}
	}
	r.likes[userID] = kept
	return nil
}

// LikesByUser lists liked card ids in insertion order.
func (r *MemoryRepository) LikesByUser(_ context.Context, userID int64) ([]string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]string(nil), r.likes[userID]...), nil
}

var _ answers.Repository = (*MemoryRepository)(nil)
