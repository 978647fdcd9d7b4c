package zone

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/zerozero/zerozero/internal/domain/impact"
)

func newTestService(store ScrapedStore) *service {
	return &service{
		cfg:     Config{SwitchAdviceURL: "https://example.com/switch"},
		scraped: store,
		logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

func TestBuildAlwaysReturnsFixedShape(t *testing.T) {
	svc := newTestService(nil)
	vm := svc.Build(context.Background(), impact.Input{})

	require.Len(t, vm.Journeys, impact.JourneyCount)
	require.Len(t, vm.Tips, TipCount)
	for i, journey := range impact.JourneyOrder {
		card := vm.Journeys[i]
		require.Equal(t, journey, card.Journey)
		require.NotEmpty(t, card.Title)
		require.NotEmpty(t, card.Action.LearnURL, "journey %s must attribute its data", journey)
	}
	for _, tip := range vm.Tips {
		require.NotEmpty(t, tip.Action.LearnURL)
	}
}

func TestBuildEmptyAnswersEncouragementHero(t *testing.T) {
	svc := newTestService(nil)
	vm := svc.Build(context.Background(), impact.Input{})

	// Nine-way zero-score tie resolves to the first journey in order.
	require.Equal(t, impact.JourneyHome, vm.Hero.Journey)
	require.Equal(t, "n/a", vm.Hero.Stats.Carbon)
	require.Equal(t, "£0", vm.Hero.Stats.Money)
	require.Contains(t, vm.Hero.Title, "Start a journey")
}

func TestBuildHeroTieBreakPrefersEarlierJourney(t *testing.T) {
	// travel and carbon both score 300*0.6 = 180; travel is earlier.
	input := impact.Input{Answers: impact.AnswerSet{
		impact.JourneyTravel: {
			impact.QTravelMode:     "TRAIN",
			impact.QTravelFuel:     "ELECTRIC",
			impact.QTravelDistance: "500",
			impact.QTravelPeriod:   "MONTH",
		},
		impact.JourneyCarbon: {impact.QCarbonTracks: "NO"},
	}}

	svc := newTestService(nil)
	vm := svc.Build(context.Background(), input)
	require.Equal(t, impact.JourneyTravel, vm.Hero.Journey)
}

func TestBuildHeroHeadlinesAggregateTotals(t *testing.T) {
	input := impact.Input{Answers: impact.AnswerSet{
		impact.JourneyTech:     {impact.QTechUpgradesOften: "YES"},
		impact.JourneyHolidays: {impact.QHolidayFlights: "OFTEN", impact.QHolidayLongHaul: "YES"},
	}}

	svc := newTestService(nil)
	vm := svc.Build(context.Background(), input)

	require.Equal(t, impact.JourneyHolidays, vm.Hero.Journey)
	require.Equal(t, "2.40t", vm.Hero.Stats.Carbon) // 2000 + 400
	require.Equal(t, "£500", vm.Hero.Stats.Money)   // 300 + 200
}

func TestBuildHomeSwitchCallToAction(t *testing.T) {
	input := impact.Input{Answers: impact.AnswerSet{
		impact.JourneyHome: {
			impact.QHomeMonthlyCost: "100",
			impact.QHomeGreenTariff: "NO",
			impact.QHomeElectricity: "BRITISH_GAS",
		},
	}}

	svc := newTestService(nil)
	vm := svc.Build(context.Background(), input)

	home := vm.Journeys[0]
	require.Equal(t, ActionSwitch, home.Action.Type)
	require.Equal(t, "https://example.com/switch", home.Action.ActionURL)
	require.NotEmpty(t, home.Action.LearnURL)
}

func TestBuildHomeGreenSupplierKeepsLearnAction(t *testing.T) {
	tests := []impact.Answers{
		{impact.QHomeGreenTariff: "YES"},
		{impact.QHomeElectricity: "OCTOPUS"},
		{impact.QHomeGas: "ECOTRICITY"},
	}
	for _, answers := range tests {
		svc := newTestService(nil)
		vm := svc.Build(context.Background(), impact.Input{Answers: impact.AnswerSet{impact.JourneyHome: answers}})
		require.Equal(t, ActionLearn, vm.Journeys[0].Action.Type)
		require.Empty(t, vm.Journeys[0].Action.ActionURL)
	}
}

func TestBuildHomeSwitchMatchesCalculatorNormalization(t *testing.T) {
	// Lowercase answers are folded the same way the calculators fold them,
	// so a "yes" tariff suppresses the switch nudge just like "YES".
	tests := []impact.Answers{
		{impact.QHomeGreenTariff: "yes"},
		{impact.QHomeGreenTariff: " Yes "},
		{impact.QHomeElectricity: "octopus"},
		{impact.QHomeGas: "ecotricity"},
	}
	for _, answers := range tests {
		svc := newTestService(nil)
		vm := svc.Build(context.Background(), impact.Input{Answers: impact.AnswerSet{impact.JourneyHome: answers}})
		require.Equal(t, ActionLearn, vm.Journeys[0].Action.Type, "answers %v", answers)
	}
}

func TestBuildTipsTopThreeByCarbon(t *testing.T) {
	input := impact.Input{Answers: impact.AnswerSet{
		impact.JourneyHolidays: {impact.QHolidayFlights: "OFTEN"},                         // 2000
		impact.JourneyFood:     {impact.QFoodDiet: "OMNIVORE"},                            // 1800
		impact.JourneyTravel:   {impact.QTravelDistance: "50", impact.QTravelFuel: "PETROL"}, // 1050
		impact.JourneyTech:     {impact.QTechUpgradesOften: "YES"},                        // 400
	}}

	svc := newTestService(nil)
	vm := svc.Build(context.Background(), input)

	require.Equal(t, impact.JourneyHolidays, vm.Tips[0].Journey)
	require.Equal(t, impact.JourneyFood, vm.Tips[1].Journey)
	require.Equal(t, impact.JourneyTravel, vm.Tips[2].Journey)
}

func TestBuildTipsStableOnTies(t *testing.T) {
	// travel and carbon both land on 300kg; the stable sort keeps travel
	// ahead because it comes first in the journey order.
	input := impact.Input{Answers: impact.AnswerSet{
		impact.JourneyHolidays: {impact.QHolidayFlights: "OFTEN"}, // 2000
		impact.JourneyTravel: {
			impact.QTravelMode:     "TRAIN",
			impact.QTravelFuel:     "ELECTRIC",
			impact.QTravelDistance: "500",
			impact.QTravelPeriod:   "MONTH",
		}, // 300
		impact.JourneyCarbon: {impact.QCarbonTracks: "NO"}, // 300
	}}

	svc := newTestService(nil)
	vm := svc.Build(context.Background(), input)

	require.Equal(t, impact.JourneyHolidays, vm.Tips[0].Journey)
	require.Equal(t, impact.JourneyTravel, vm.Tips[1].Journey)
	require.Equal(t, impact.JourneyCarbon, vm.Tips[2].Journey)
}

func TestBuildTipsHomeNaturallyIncludedKeepsSwitchCopy(t *testing.T) {
	input := impact.Input{Answers: impact.AnswerSet{
		impact.JourneyHome: {
			impact.QHomeMonthlyCost: "200",
			impact.QHomeGreenTariff: "NO",
			impact.QHomeElectricity: "BRITISH_GAS",
		}, // 1480
		impact.JourneyHolidays: {impact.QHolidayFlights: "OFTEN"}, // 2000
	}}

	svc := newTestService(nil)
	vm := svc.Build(context.Background(), input)

	require.Equal(t, impact.JourneyHolidays, vm.Tips[0].Journey)
	require.Equal(t, impact.JourneyHome, vm.Tips[1].Journey)
	require.Equal(t, "Switch to a greener tariff", vm.Tips[1].Title)
	require.Equal(t, ActionSwitch, vm.Tips[1].Action.Type)
}

func TestBuildTipsOverrideNeverDemotesHigherCarbonTip(t *testing.T) {
	// Home ranks below the top three, so its carbon cannot exceed the
	// displaced tip's and the top three stay as sorted.
	input := impact.Input{Answers: impact.AnswerSet{
		impact.JourneyHome: {
			impact.QHomeMonthlyCost: "50",
			impact.QHomeGreenTariff: "NO",
			impact.QHomeElectricity: "BRITISH_GAS",
		}, // 670
		impact.JourneyHolidays: {impact.QHolidayFlights: "OFTEN"},                            // 2000
		impact.JourneyFood:     {impact.QFoodDiet: "OMNIVORE"},                               // 1800
		impact.JourneyTravel:   {impact.QTravelDistance: "50", impact.QTravelFuel: "PETROL"}, // 1050
	}}

	svc := newTestService(nil)
	vm := svc.Build(context.Background(), input)

	require.Equal(t, impact.JourneyHolidays, vm.Tips[0].Journey)
	require.Equal(t, impact.JourneyFood, vm.Tips[1].Journey)
	require.Equal(t, impact.JourneyTravel, vm.Tips[2].Journey)
}

func TestBuildTipsEqualCarbonRanksHomeAboveByOrder(t *testing.T) {
	// home at 400 (zero spend, non-green, other supplier) ties tech at 400;
	// the stable sort keeps home first, so it lands in the tips without any
	// demotion being needed.
	input := impact.Input{Answers: impact.AnswerSet{
		impact.JourneyHome: {
			impact.QHomeMonthlyCost: "0",
			impact.QHomeGreenTariff: "NO",
			impact.QHomeElectricity: "BRITISH_GAS",
		}, // 400
		impact.JourneyHolidays: {impact.QHolidayFlights: "OFTEN"}, // 2000
		impact.JourneyFood:     {impact.QFoodDiet: "OMNIVORE"},    // 1800
		impact.JourneyTech:     {impact.QTechUpgradesOften: "YES"}, // 400
	}}

	svc := newTestService(nil)
	vm := svc.Build(context.Background(), input)

	require.Equal(t, impact.JourneyHome, vm.Tips[2].Journey)
}

func TestBuildBlendsScrapedData(t *testing.T) {
	carbon := 1150.0
	store := &stubScrapedStore{points: map[impact.JourneyID]impact.ScrapedDataPoint{
		impact.JourneyTravel: {
			CarbonValue:    &carbon,
			DeepContentTip: "local EV grant open",
			HighSaving:     true,
			LocalGrantGbp:  100,
		},
	}}
	input := impact.Input{Answers: impact.AnswerSet{
		impact.JourneyTravel: {
			impact.QTravelMode:     "CAR",
			impact.QTravelFuel:     "PETROL",
			impact.QTravelDistance: "50",
		}, // baseline 1050 carbon / £300
	}}

	svc := newTestService(store)
	vm := svc.Build(context.Background(), input)

	travel := vm.Journeys[1]
	require.Equal(t, "1.15t", travel.Stats.Carbon) // 1150 accepted, ratio 1.095
	require.Equal(t, "£400", travel.Stats.Money)   // grant added

	require.Equal(t, impact.JourneyTravel, vm.Tips[0].Journey)
	require.Equal(t, "local EV grant open", vm.Tips[0].Insight)
	require.True(t, vm.Tips[0].Alert)
}

func TestBuildScrapedStoreFailureDegradesToBaseline(t *testing.T) {
	store := &stubScrapedStore{err: errors.New("valkey down")}
	input := impact.Input{Answers: impact.AnswerSet{
		impact.JourneyTech: {impact.QTechUpgradesOften: "YES"},
	}}

	svc := newTestService(store)
	vm := svc.Build(context.Background(), input)

	tech := vm.Journeys[6]
	require.Equal(t, "400kg", tech.Stats.Carbon)
	require.Equal(t, "£200", tech.Stats.Money)
}

type stubScrapedStore struct {
	points map[impact.JourneyID]impact.ScrapedDataPoint
	err    error
}

func (s *stubScrapedStore) Get(_ context.Context, journey impact.JourneyID) (impact.ScrapedDataPoint, bool, error) {
	if s.err != nil {
		return impact.ScrapedDataPoint{}, false, s.err
	}
	point, ok := s.points[journey]
	return point, ok, nil
}

func (s *stubScrapedStore) Put(_ context.Context, journey impact.JourneyID, point impact.ScrapedDataPoint) error {
	if s.points == nil {
		s.points = make(map[impact.JourneyID]impact.ScrapedDataPoint)
	}
	s.points[journey] = point
	return nil
}
