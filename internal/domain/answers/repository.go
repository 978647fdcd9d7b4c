package answers

import (
	"context"

	"github.com/zerozero/zerozero/internal/domain/impact"
)

// Repository abstracts answer and like persistence.
type Repository interface {
	UpsertAnswer(ctx context.Context, record AnswerRecord) error
	AnswersByJourney(ctx context.Context, userID int64, journey impact.JourneyID) (impact.Answers, error)
	AnswersByUser(ctx context.Context, userID int64) (impact.AnswerSet, error)
	DeleteJourney(ctx context.Context, userID int64, journey impact.JourneyID) error
	InsertLike(ctx context.Context, userID int64, cardID string) error
	DeleteLike(ctx context.Context, userID int64, cardID string) error
	LikesByUser(ctx context.Context, userID int64) ([]string, error)
}
