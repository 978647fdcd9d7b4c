package answers

import (
	"time"

	"github.com/zerozero/zerozero/internal/domain/impact"
)

// AnswerRecord is one persisted questionnaire answer.
type AnswerRecord struct {
	UserID     int64            `json:"-"`
	Journey    impact.JourneyID `json:"journey"`
	QuestionID string           `json:"questionId"`
	Value      string           `json:"value"`
	UpdatedAt  time.Time        `json:"updatedAt"`
}

// SaveRequest carries a batch of answers for one journey.
type SaveRequest struct {
	Answers map[string]string `json:"answers"`
}

// JourneyAnswersResponse is returned to the questionnaire flow.
type JourneyAnswersResponse struct {
	Journey impact.JourneyID `json:"journey"`
	Answers impact.Answers   `json:"answers"`
}
