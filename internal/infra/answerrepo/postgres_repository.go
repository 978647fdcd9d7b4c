package answerrepo

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/zerozero/zerozero/internal/domain/answers"
	"github.com/zerozero/zerozero/internal/domain/impact"
)

// PostgresRepository persists questionnaire answers and card likes.
type PostgresRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresRepository creates a new repository.
func NewPostgresRepository(pool *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{pool: pool}
}

// UpsertAnswer inserts or replaces a single answer.
func (r *PostgresRepository) UpsertAnswer(ctx context.Context, record answers.AnswerRecord) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO journey_answers (user_id, journey, question_id, value, updated_at)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (user_id, journey, question_id) DO UPDATE SET
			value = EXCLUDED.value,
			updated_at = EXCLUDED.updated_at
	`, record.UserID, string(record.Journey), record.QuestionID, record.Value, record.UpdatedAt)
	return err
}

// AnswersByJourney loads one journey's answers for a user.
func (r *PostgresRepository) AnswersByJourney(ctx context.Context, userID int64, journey impact.JourneyID) (impact.Answers, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT question_id, value
		FROM journey_answers
		WHERE user_id = $1 AND journey = $2
	`, userID, string(journey))
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := impact.Answers{}
	for rows.Next() {
		var questionID, value string
		if err := rows.Scan(&questionID, &value); err != nil {
			return nil, err
		}
		out[questionID] = value
	}
	return out, rows.Err()
}

// AnswersByUser loads every stored answer grouped by journey.
func (r *PostgresRepository) AnswersByUser(ctx context.Context, userID int64) (impact.AnswerSet, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT journey, question_id, value
		FROM journey_answers
		WHERE user_id = $1
	`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := impact.AnswerSet{}
	for rows.Next() {
		var journey, questionID, value string
		if err := rows.Scan(&journey, &questionID, &value); err != nil {
			return nil, err
		}
		id, ok := impact.ParseJourney(journey)
		if !ok {
			continue
		}
		if out[id] == nil {
			out[id] = impact.Answers{}
		}
		out[id][questionID] = value
	}
	return out, rows.Err()
}

// DeleteJourney removes all answers for one journey.
func (r *PostgresRepository) DeleteJourney(ctx context.Context, userID int64, journey impact.JourneyID) error {
	_, err := r.pool.Exec(ctx, `
		DELETE FROM journey_answers
		WHERE user_id = $1 AND journey = $2
	`, userID, string(journey))
	return err
}

// InsertLike records a card like, ignoring duplicates.
func (r *PostgresRepository) InsertLike(ctx context.Context, userID int64, cardID string) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO card_likes (user_id, card_id)
		VALUES ($1, $2)
		ON CONFLICT (user_id, card_id) DO NOTHING
	`, userID, cardID)
	return err
}

// DeleteLike removes a card like.
func (r *PostgresRepository) DeleteLike(ctx context.Context, userID int64, cardID string) error {
	_, err := r.pool.Exec(ctx, `
		DELETE FROM card_likes
		WHERE user_id = $1 AND card_id = $2
	`, userID, cardID)
	return err
}

// LikesByUser lists the liked card ids in insertion order.
func (r *PostgresRepository) LikesByUser(ctx context.Context, userID int64) ([]string, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT card_id
		FROM card_likes
		WHERE user_id = $1
		ORDER BY created_at
	`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []string
	for rows.Next() {
		var cardID string
		if err := rows.Scan(&cardID); err != nil {
			return nil, err
		}
		out = append(out, cardID)
	}
	return out, rows.Err()
}

var _ answers.Repository = (*PostgresRepository)(nil)
