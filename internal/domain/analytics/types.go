package analytics

import "time"

// Event is one captured interaction from the app.
type Event struct {
	ID        string    `json:"id"`
	UserID    *int64    `json:"userId,omitempty"`
	Name      string    `json:"name"`
	Journey   string    `json:"journey,omitempty"`
	CardID    string    `json:"cardId,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

// CaptureRequest is the ingest payload.
type CaptureRequest struct {
	Name    string `json:"name"`
	Journey string `json:"journey,omitempty"`
	CardID  string `json:"cardId,omitempty"`
}

// TrendingEvent pairs an event name with its occurrence count.
type TrendingEvent struct {
	Name  string `json:"name"`
	Count int64  `json:"count"`
}
