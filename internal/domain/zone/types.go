package zone

import "github.com/zerozero/zerozero/internal/domain/impact"

// Card display variants.
const (
	VariantHero    = "hero"
	VariantJourney = "journey"
	VariantTip     = "tip"
)

// Card action types.
const (
	ActionLearn  = "learn"
	ActionSwitch = "switch"
)

// TipCount is the fixed number of tips in every zone.
const TipCount = 3

// CardAction describes what tapping a card does. LearnURL is always set so a
// card can attribute its data even when no dedicated action exists.
type CardAction struct {
	Type      string `json:"actionType"`
	LearnURL  string `json:"learnUrl"`
	ActionURL string `json:"actionUrl,omitempty"`
}

// CardStats carries the formatted display strings for a card.
type CardStats struct {
	Carbon string `json:"carbon"`
	Money  string `json:"money"`
}

// HeroCard is the single top-billed card. Its stats show the aggregate
// totals; the journey field identifies the highest-impact journey for
// image/category context.
type HeroCard struct {
	ID          string           `json:"id"`
	Variant     string           `json:"variant"`
	Title       string           `json:"title"`
	Journey     impact.JourneyID `json:"journey"`
	Stats       CardStats        `json:"stats"`
	SourceURL   string           `json:"sourceUrl,omitempty"`
	SourceLabel string           `json:"sourceLabel,omitempty"`
	Explanation []string         `json:"explanation,omitempty"`
	Action      CardAction       `json:"action"`
}

// JourneyCard shows one journey's own numbers.
type JourneyCard struct {
	ID          string           `json:"id"`
	Variant     string           `json:"variant"`
	Title       string           `json:"title"`
	Journey     impact.JourneyID `json:"journey"`
	Stats       CardStats        `json:"stats"`
	SourceURL   string           `json:"sourceUrl,omitempty"`
	SourceLabel string           `json:"sourceLabel,omitempty"`
	Explanation []string         `json:"explanation,omitempty"`
	Action      CardAction       `json:"action"`
}

// TipCard is one of the top-carbon journeys surfaced as a secondary nudge.
type TipCard struct {
	ID          string           `json:"id"`
	Variant     string           `json:"variant"`
	Title       string           `json:"title"`
	Journey     impact.JourneyID `json:"journey"`
	Stats       CardStats        `json:"stats"`
	SourceURL   string           `json:"sourceUrl,omitempty"`
	SourceLabel string           `json:"sourceLabel,omitempty"`
	Insight     string           `json:"insight,omitempty"`
	Alert       bool             `json:"alert,omitempty"`
	Action      CardAction       `json:"action"`
}

// ViewModel is the complete zone. The fixed-size arrays encode the
// one-hero/nine-journeys/three-tips contract structurally, so callers never
// need cardinality checks.
type ViewModel struct {
	Hero     HeroCard                         `json:"hero"`
	Journeys [impact.JourneyCount]JourneyCard `json:"journeys"`
	Tips     [TipCount]TipCard                `json:"tips"`
}
