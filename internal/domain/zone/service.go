package zone

import (
	"context"
	"fmt"
	"log/slog"
	"sort"

	"github.com/zerozero/zerozero/internal/domain/impact"
)

// Hero scoring weights.
const (
	heroCarbonWeight = 0.6
	heroMoneyWeight  = 0.4
)

// Config holds runtime knobs for the zone builder.
type Config struct {
	// SwitchAdviceURL is the external advice page used by the home
	// switch-supplier call to action.
	SwitchAdviceURL string
}

// ScrapedStore persists externally scraped datapoints per journey.
type ScrapedStore interface {
	Get(ctx context.Context, journey impact.JourneyID) (impact.ScrapedDataPoint, bool, error)
	Put(ctx context.Context, journey impact.JourneyID, point impact.ScrapedDataPoint) error
}

// Service builds the zone view model. Build always succeeds and always
// returns the full fixed shape regardless of input completeness.
type Service interface {
	Build(ctx context.Context, in impact.Input) ViewModel
}

type service struct {
	cfg     Config
	scraped ScrapedStore
	logger  *slog.Logger
}

// NewService wires up the zone builder.
func NewService(cfg Config, scraped ScrapedStore, logger *slog.Logger) Service {
	return &service{
		cfg:     cfg,
		scraped: scraped,
		logger:  logger.With("component", "zone.service"),
	}
}

func (s *service) Build(ctx context.Context, in impact.Input) ViewModel {
	userImpact := impact.BuildUserImpact(in)
	blended := s.blend(ctx, userImpact)

	needsSwitch := needsSupplierSwitch(in.Answers[impact.JourneyHome])

	var vm ViewModel
	vm.Hero = s.buildHero(blended)
	for i, journey := range impact.JourneyOrder {
		vm.Journeys[i] = s.buildJourneyCard(journey, blended[journey], needsSwitch)
	}
	vm.Tips = s.buildTips(blended, needsSwitch)
	return vm
}

// blend fetches any scraped datapoints and gates them against the calculated
// baselines. A store failure degrades to the baseline and a warning.
func (s *service) blend(ctx context.Context, userImpact impact.UserImpact) map[impact.JourneyID]impact.OverlayResult {
	blended := make(map[impact.JourneyID]impact.OverlayResult, impact.JourneyCount)
	for _, journey := range impact.JourneyOrder {
		baseline := userImpact.Journeys[journey]
		var point *impact.ScrapedDataPoint
		if s.scraped != nil {
			fetched, found, err := s.scraped.Get(ctx, journey)
			if err != nil {
				s.logger.Warn("scraped datapoint lookup failed", "journey", journey, "error", err)
			} else if found {
				point = &fetched
			}
		}
		blended[journey] = impact.ApplyOverlay(baseline, point)
	}
	return blended
}

// buildHero picks the highest weighted-score journey and headlines the
// aggregate totals. Strict > keeps the earlier journey on ties.
func (s *service) buildHero(blended map[impact.JourneyID]impact.OverlayResult) HeroCard {
	winner := impact.JourneyOrder[0]
	best := -1.0
	var totalCarbon, totalMoney int
	for _, journey := range impact.JourneyOrder {
		result := blended[journey]
		totalCarbon += result.CarbonKg
		totalMoney += result.MoneyGbp
		score := float64(result.CarbonKg)*heroCarbonWeight + float64(result.MoneyGbp)*heroMoneyWeight
		if score > best {
			best = score
			winner = journey
		}
	}

	source := sourceFor(winner)
	return HeroCard{
		ID:          "hero",
		Variant:     VariantHero,
		Title:       heroTitle(totalCarbon, totalMoney),
		Journey:     winner,
		Stats: CardStats{
			Carbon: impact.FormatCarbon(float64(totalCarbon)),
			Money:  impact.FormatMoney(totalMoney),
		},
		SourceURL:   source.URL,
		SourceLabel: source.Label,
		Explanation: blended[winner].Explanation,
		Action:      CardAction{Type: ActionLearn, LearnURL: source.URL},
	}
}

func heroTitle(totalCarbon, totalMoney int) string {
	if totalCarbon == 0 && totalMoney == 0 {
		return "Start a journey to see what you could save"
	}
	return fmt.Sprintf("You could save %s and %s every year",
		impact.FormatMoney(totalMoney), impact.FormatCarbon(float64(totalCarbon)))
}

func (s *service) buildJourneyCard(journey impact.JourneyID, result impact.OverlayResult, needsSwitch bool) JourneyCard {
	source := sourceFor(journey)
	action := CardAction{Type: ActionLearn, LearnURL: source.URL}
	if journey == impact.JourneyHome && needsSwitch {
		action = CardAction{Type: ActionSwitch, LearnURL: source.URL, ActionURL: s.cfg.SwitchAdviceURL}
	}
	return JourneyCard{
		ID:          "journey-" + string(journey),
		Variant:     VariantJourney,
		Title:       journeyTitles[journey],
		Journey:     journey,
		Stats: CardStats{
			Carbon: impact.FormatCarbon(float64(result.CarbonKg)),
			Money:  impact.FormatMoney(result.MoneyGbp),
		},
		SourceURL:   source.URL,
		SourceLabel: source.Label,
		Explanation: result.Explanation,
		Action:      action,
	}
}

// buildTips takes the top three journeys by carbon (stable on ties, so
// JourneyOrder breaks them) and applies the home switch override: when home
// needs the nudge, is not already present, and carries strictly more carbon
// than the lowest-ranked tip, it displaces that tip.
func (s *service) buildTips(blended map[impact.JourneyID]impact.OverlayResult, needsSwitch bool) [TipCount]TipCard {
	ranked := make([]impact.JourneyID, len(impact.JourneyOrder))
	copy(ranked, impact.JourneyOrder[:])
	sort.SliceStable(ranked, func(i, j int) bool {
		return blended[ranked[i]].CarbonKg > blended[ranked[j]].CarbonKg
	})
	top := ranked[:TipCount]

	if needsSwitch && !containsJourney(top, impact.JourneyHome) {
		homeCarbon := blended[impact.JourneyHome].CarbonKg
		if homeCarbon > blended[top[TipCount-1]].CarbonKg {
			top[TipCount-1] = impact.JourneyHome
		}
	}

	var tips [TipCount]TipCard
	for i, journey := range top {
		forced := journey == impact.JourneyHome && needsSwitch
		tips[i] = s.buildTip(journey, blended[journey], forced)
	}
	return tips
}

func (s *service) buildTip(journey impact.JourneyID, result impact.OverlayResult, forcedSwitch bool) TipCard {
	source := sourceFor(journey)
	action := CardAction{Type: ActionLearn, LearnURL: source.URL}
	if forcedSwitch {
		action = CardAction{Type: ActionSwitch, LearnURL: source.URL, ActionURL: s.cfg.SwitchAdviceURL}
	}
	return TipCard{
		ID:          "tip-" + string(journey),
		Variant:     VariantTip,
		Title:       tipTitles[journey],
		Journey:     journey,
		Stats: CardStats{
			Carbon: impact.FormatCarbon(float64(result.CarbonKg)),
			Money:  impact.FormatMoney(result.MoneyGbp),
		},
		SourceURL:   source.URL,
		SourceLabel: source.Label,
		Insight:     result.Insight,
		Alert:       result.Alert,
		Action:      action,
	}
}

// needsSupplierSwitch reports whether the home answers show neither a
// green-friendly supplier nor an explicit green-tariff opt-in. Answers are
// folded through the same normalization the calculators use.
func needsSupplierSwitch(answers impact.Answers) bool {
	if impact.AnswerToken(answers, impact.QHomeGreenTariff) == impact.TokenYes {
		return false
	}
	if _, ok := impact.GreenSuppliers[impact.AnswerToken(answers, impact.QHomeElectricity)]; ok {
		return false
	}
	if _, ok := impact.GreenSuppliers[impact.AnswerToken(answers, impact.QHomeGas)]; ok {
		return false
	}
	return true
}

func containsJourney(journeys []impact.JourneyID, target impact.JourneyID) bool {
	for _, journey := range journeys {
		if journey == target {
			return true
		}
	}
	return false
}
