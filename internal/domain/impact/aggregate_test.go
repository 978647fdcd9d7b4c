package impact

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBuildUserImpactEmptyAnswers(t *testing.T) {
	userImpact := BuildUserImpact(Input{})

	require.Len(t, userImpact.Journeys, JourneyCount)
	for _, journey := range JourneyOrder {
		result, ok := userImpact.Journeys[journey]
		require.True(t, ok, "missing journey %s", journey)
		require.Equal(t, 0, result.CarbonKg)
		require.Equal(t, 0, result.MoneyGbp)
		require.NotEmpty(t, result.Source)
		require.NotEmpty(t, result.Explanation)
	}
	require.Equal(t, 0, userImpact.Totals.CarbonKg)
	require.Equal(t, 0, userImpact.Totals.MoneyGbp)
}

func TestBuildUserImpactTotalsMatchSum(t *testing.T) {
	input := Input{Answers: AnswerSet{
		JourneyHome: {
			QHomeMonthlyCost: "100",
			QHomeGreenTariff: "NO",
			QHomeElectricity: "BRITISH_GAS",
		},
		JourneyTravel: {
			QTravelMode:     "CAR",
			QTravelFuel:     "PETROL",
			QTravelDistance: "50",
			QTravelPeriod:   "WEEK",
		},
		JourneyTech: {QTechUpgradesOften: "YES"},
	}}

	userImpact := BuildUserImpact(input)

	var carbon, money int
	for _, result := range userImpact.Journeys {
		carbon += result.CarbonKg
		money += result.MoneyGbp
	}
	require.Equal(t, carbon, userImpact.Totals.CarbonKg)
	require.Equal(t, money, userImpact.Totals.MoneyGbp)
	require.Equal(t, 940+1050+400, userImpact.Totals.CarbonKg)
	require.Equal(t, 300+300+200, userImpact.Totals.MoneyGbp)
}

func TestBuildUserImpactIdempotent(t *testing.T) {
	input := Input{Answers: AnswerSet{
		JourneyFood:  {QFoodDiet: "FLEXITARIAN", QFoodWaste: "HIGH"},
		JourneyWaste: {QWasteRecycling: "NEVER", QWasteComposting: "NO"},
	}}

	first := BuildUserImpact(input)
	second := BuildUserImpact(input)
	require.Equal(t, first, second)
}

func TestJourneyImpactUnknownJourneyDegrades(t *testing.T) {
	result := JourneyImpact(JourneyID("spaceflight"), Answers{"foo": "BAR"})
	require.Equal(t, 0, result.CarbonKg)
	require.Equal(t, 0, result.MoneyGbp)
	require.NotEmpty(t, result.Explanation)
}

func TestParseJourney(t *testing.T) {
	journey, ok := ParseJourney("waste")
	require.True(t, ok)
	require.Equal(t, JourneyWaste, journey)

	_, ok = ParseJourney("WASTE")
	require.False(t, ok)
}
