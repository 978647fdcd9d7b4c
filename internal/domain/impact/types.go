package impact

// Answers holds a single journey's questionnaire answers keyed by question
// id. Values are uppercase enum tokens or numeric strings. Missing keys mean
// the question has not been answered yet.
type Answers map[string]string

// AnswerSet maps every started journey to its answers.
type AnswerSet map[JourneyID]Answers

// Profile carries the optional user profile supplied by the host system.
type Profile struct {
	Name              string `json:"name,omitempty"`
	Postcode          string `json:"postcode,omitempty"`
	Household         string `json:"household,omitempty"`
	HomeType          string `json:"homeType,omitempty"`
	TransportBaseline string `json:"transportBaseline,omitempty"`
}

// Result is the estimated annual effect attributed to one journey's answers.
// Both numeric fields are rounded and never negative.
type Result struct {
	CarbonKg    int      `json:"carbonKg"`
	MoneyGbp    int      `json:"moneyGbp"`
	Source      string   `json:"source"`
	Explanation []string `json:"explanation"`
}

// Totals aggregates rounded per-journey results.
type Totals struct {
	CarbonKg int `json:"totalCarbon"`
	MoneyGbp int `json:"totalMoney"`
}

// UserImpact is the full aggregation output: one entry per journey in the
// closed set, even for journeys without answers, plus grand totals.
type UserImpact struct {
	Journeys map[JourneyID]Result `json:"perJourneyResults"`
	Totals   Totals               `json:"totals"`
}

// Input bundles the aggregator's arguments.
type Input struct {
	Profile *Profile  `json:"profile,omitempty"`
	Answers AnswerSet `json:"journeyAnswers"`
}
