package answers

import (
	"context"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/zerozero/zerozero/internal/domain/impact"
	apperrors "github.com/zerozero/zerozero/pkg/errors"
)

// Service exposes the per-user answer store consumed by the questionnaire
// flow and the impact aggregator.
type Service interface {
	Save(ctx context.Context, userID int64, journey impact.JourneyID, req SaveRequest) (JourneyAnswersResponse, error)
	JourneyAnswers(ctx context.Context, userID int64, journey impact.JourneyID) (JourneyAnswersResponse, error)
	AllAnswers(ctx context.Context, userID int64) (impact.AnswerSet, error)
	Reset(ctx context.Context, userID int64, journey impact.JourneyID) error
	Like(ctx context.Context, userID int64, cardID string) error
	Unlike(ctx context.Context, userID int64, cardID string) error
	Likes(ctx context.Context, userID int64) ([]string, error)
}

type service struct {
	repo   Repository
	logger *slog.Logger
	now    func() time.Time
}

// NewService wires up the answer store domain.
func NewService(repo Repository, logger *slog.Logger) Service {
	return &service{
		repo:   repo,
		logger: logger.With("component", "answers.service"),
		now:    time.Now,
	}
}

func (s *service) Save(ctx context.Context, userID int64, journey impact.JourneyID, req SaveRequest) (JourneyAnswersResponse, error) {
	if _, ok := impact.ParseJourney(string(journey)); !ok {
		return JourneyAnswersResponse{}, apperrors.Wrap("invalid_input", "unknown journey", nil)
	}
	if len(req.Answers) == 0 {
		return JourneyAnswersResponse{}, apperrors.Wrap("invalid_input", "answers cannot be empty", nil)
	}
	updatedAt := s.now().UTC()
	for questionID, value := range req.Answers {
		questionID = strings.TrimSpace(questionID)
		if questionID == "" {
			return JourneyAnswersResponse{}, apperrors.Wrap("invalid_input", "question id cannot be empty", nil)
		}
		record := AnswerRecord{
			UserID:     userID,
			Journey:    journey,
			QuestionID: questionID,
			Value:      normalizeValue(value),
			UpdatedAt:  updatedAt,
		}
		if err := s.repo.UpsertAnswer(ctx, record); err != nil {
			return JourneyAnswersResponse{}, apperrors.Wrap("storage_error", "failed to save answer", err)
		}
	}
	s.logger.Info("answers saved", "user", userID, "journey", journey, "count", len(req.Answers))
	return s.JourneyAnswers(ctx, userID, journey)
}

func (s *service) JourneyAnswers(ctx context.Context, userID int64, journey impact.JourneyID) (JourneyAnswersResponse, error) {
	if _, ok := impact.ParseJourney(string(journey)); !ok {
		return JourneyAnswersResponse{}, apperrors.Wrap("invalid_input", "unknown journey", nil)
	}
	stored, err := s.repo.AnswersByJourney(ctx, userID, journey)
	if err != nil {
		return JourneyAnswersResponse{}, apperrors.Wrap("storage_error", "failed to load answers", err)
	}
	if stored == nil {
		stored = impact.Answers{}
	}
	return JourneyAnswersResponse{Journey: journey, Answers: stored}, nil
}

func (s *service) AllAnswers(ctx context.Context, userID int64) (impact.AnswerSet, error) {
	stored, err := s.repo.AnswersByUser(ctx, userID)
	if err != nil {
		return nil, apperrors.Wrap("storage_error", "failed to load answers", err)
	}
	if stored == nil {
		stored = impact.AnswerSet{}
	}
	return stored, nil
}

func (s *service) Reset(ctx context.Context, userID int64, journey impact.JourneyID) error {
	if _, ok := impact.ParseJourney(string(journey)); !ok {
		return apperrors.Wrap("invalid_input", "unknown journey", nil)
	}
	if err := s.repo.DeleteJourney(ctx, userID, journey); err != nil {
		return apperrors.Wrap("storage_error", "failed to reset journey", err)
	}
	s.logger.Info("journey reset", "user", userID, "journey", journey)
	return nil
}

func (s *service) Like(ctx context.Context, userID int64, cardID string) error {
	cardID = strings.TrimSpace(cardID)
	if cardID == "" {
		return apperrors.Wrap("invalid_input", "card id cannot be empty", nil)
	}
	if err := s.repo.InsertLike(ctx, userID, cardID); err != nil {
		return apperrors.Wrap("storage_error", "failed to save like", err)
	}
	return nil
}

func (s *service) Unlike(ctx context.Context, userID int64, cardID string) error {
	cardID = strings.TrimSpace(cardID)
	if cardID == "" {
		return apperrors.Wrap("invalid_input", "card id cannot be empty", nil)
	}
	if err := s.repo.DeleteLike(ctx, userID, cardID); err != nil {
		return apperrors.Wrap("storage_error", "failed to remove like", err)
	}
	return nil
}

func (s *service) Likes(ctx context.Context, userID int64) ([]string, error) {
	likes, err := s.repo.LikesByUser(ctx, userID)
	if err != nil {
		return nil, apperrors.Wrap("storage_error", "failed to load likes", err)
	}
	return likes, nil
}

// normalizeValue keeps numeric answers verbatim and folds enum tokens to the
// uppercase form the calculators expect.
func normalizeValue(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if _, err := strconv.ParseFloat(trimmed, 64); err == nil {
		return trimmed
	}
	return strings.ToUpper(trimmed)
}
