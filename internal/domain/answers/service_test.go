package answers

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/zerozero/zerozero/internal/domain/impact"
	apperrors "github.com/zerozero/zerozero/pkg/errors"
)

func newTestService(repo Repository) *service {
	return &service{
		repo:   repo,
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
		now:    func() time.Time { return time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC) },
	}
}

func TestSaveNormalizesTokens(t *testing.T) {
	repo := newStubRepo()
	svc := newTestService(repo)

	resp, err := svc.Save(context.Background(), 7, impact.JourneyHome, SaveRequest{Answers: map[string]string{
		impact.QHomeGreenTariff: " no ",
		impact.QHomeMonthlyCost: " 120 ",
	}})
	require.NoError(t, err)
	require.Equal(t, impact.JourneyHome, resp.Journey)
	require.Equal(t, "NO", resp.Answers[impact.QHomeGreenTariff])
	require.Equal(t, "120", resp.Answers[impact.QHomeMonthlyCost])
}

func TestSaveRejectsUnknownJourney(t *testing.T) {
	svc := newTestService(newStubRepo())
	_, err := svc.Save(context.Background(), 7, impact.JourneyID("gardening"), SaveRequest{Answers: map[string]string{"q": "YES"}})
	require.Error(t, err)
	require.True(t, apperrors.IsCode(err, "invalid_input"))
}

func TestSaveRejectsEmptyBatch(t *testing.T) {
	svc := newTestService(newStubRepo())
	_, err := svc.Save(context.Background(), 7, impact.JourneyHome, SaveRequest{})
	require.True(t, apperrors.IsCode(err, "invalid_input"))
}

func TestJourneyAnswersEmptyMapForFreshJourney(t *testing.T) {
	svc := newTestService(newStubRepo())
	resp, err := svc.JourneyAnswers(context.Background(), 7, impact.JourneyFood)
	require.NoError(t, err)
	require.NotNil(t, resp.Answers)
	require.Empty(t, resp.Answers)
}

func TestResetClearsJourney(t *testing.T) {
	repo := newStubRepo()
	svc := newTestService(repo)

	_, err := svc.Save(context.Background(), 7, impact.JourneyWaste, SaveRequest{Answers: map[string]string{
		impact.QWasteRecycling: "NEVER",
	}})
	require.NoError(t, err)
	require.NoError(t, svc.Reset(context.Background(), 7, impact.JourneyWaste))

	resp, err := svc.JourneyAnswers(context.Background(), 7, impact.JourneyWaste)
	require.NoError(t, err)
	require.Empty(t, resp.Answers)
}

func TestLikeRoundTrip(t *testing.T) {
	svc := newTestService(newStubRepo())
	ctx := context.Background()

	require.NoError(t, svc.Like(ctx, 7, "tip-home"))
	require.NoError(t, svc.Like(ctx, 7, "journey-food"))

	likes, err := svc.Likes(ctx, 7)
	require.NoError(t, err)
	require.ElementsMatch(t, []string{"tip-home", "journey-food"}, likes)

	require.NoError(t, svc.Unlike(ctx, 7, "tip-home"))
	likes, err = svc.Likes(ctx, 7)
	require.NoError(t, err)
	require.Equal(t, []string{"journey-food"}, likes)
}

func TestLikeRejectsEmptyCardID(t *testing.T) {
	svc := newTestService(newStubRepo())
	err := svc.Like(context.Background(), 7, "  ")
	require.True(t, apperrors.IsCode(err, "invalid_input"))
}

type stubRepo struct {
	answers map[int64]impact.AnswerSet
	likes   map[int64][]string
}

func newStubRepo() *stubRepo {
	return &stubRepo{
		answers: make(map[int64]impact.AnswerSet),
		likes:   make(map[int64][]string),
	}
}

func (r *stubRepo) UpsertAnswer(_ context.Context, record AnswerRecord) error {
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

func (r *stubRepo) AnswersByJourney(_ context.Context, userID int64, journey impact.JourneyID) (impact.Answers, error) {
	return r.answers[userID][journey], nil
}

func (r *stubRepo) AnswersByUser(_ context.Context, userID int64) (impact.AnswerSet, error) {
	return r.answers[userID], nil
}

func (r *stubRepo) DeleteJourney(_ context.Context, userID int64, journey impact.JourneyID) error {
	delete(r.answers[userID], journey)
	return nil
}

func (r *stubRepo) InsertLike(_ context.Context, userID int64, cardID string) error {
	for _, existing := range r.likes[userID] {
		if existing == cardID {
			return nil
		}
	}
	r.likes[userID] = append(r.likes[userID], cardID)
	return nil
}

func (r *stubRepo) DeleteLike(_ context.Context, userID int64, cardID string) error {
	kept := r.likes[userID][:0]
	for _, existing := range r.likes[userID] {
		if existing != cardID {
			kept = append(kept, existing)
		}
	}
	r.likes[userID] = kept
	return nil
}

func (r *stubRepo) LikesByUser(_ context.Context, userID int64) ([]string, error) {
	return append([]string(nil), r.likes[userID]...), nil
}
