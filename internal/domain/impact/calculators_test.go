package impact

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCalculateHome(t *testing.T) {
	result := CalculateHome(Answers{
		QHomeMonthlyCost: "100",
		QHomeGreenTariff: "NO",
		QHomeElectricity: "BRITISH_GAS",
	})
	require.Equal(t, 940, result.CarbonKg) // 100*12*0.45 + 400
	require.Equal(t, 300, result.MoneyGbp) // 120 + 180
	require.NotEmpty(t, result.Source)
	require.NotEmpty(t, result.Explanation)
}

func TestCalculateHomeGreenTariffPreferredSupplier(t *testing.T) {
	result := CalculateHome(Answers{
		QHomeMonthlyCost: "100",
		QHomeGreenTariff: "YES",
		QHomeElectricity: "OCTOPUS",
	})
	require.Equal(t, 540, result.CarbonKg)
	require.Equal(t, 0, result.MoneyGbp)
}

func TestCalculateHomeMalformedSpendFallsBack(t *testing.T) {
	result := CalculateHome(Answers{
		QHomeMonthlyCost: "lots",
		QHomeGreenTariff: "YES",
	})
	// 120/month UK-average default
	require.Equal(t, 648, result.CarbonKg)
}

func TestCalculateTravel(t *testing.T) {
	result := CalculateTravel(Answers{
		QTravelMode:     "CAR",
		QTravelFuel:     "PETROL",
		QTravelDistance: "50",
		QTravelPeriod:   "WEEK",
	})
	require.Equal(t, 1050, result.CarbonKg) // round(50*52*0.404)
	require.Equal(t, 300, result.MoneyGbp)
}

func TestCalculateTravelMonthlyElectric(t *testing.T) {
	result := CalculateTravel(Answers{
		QTravelMode:     "TRAIN",
		QTravelFuel:     "ELECTRIC",
		QTravelDistance: "200",
		QTravelPeriod:   "MONTH",
	})
	require.Equal(t, 120, result.CarbonKg) // 200*12*0.05
	require.Equal(t, 0, result.MoneyGbp)
}

func TestCalculateFoodTiers(t *testing.T) {
	tests := []struct {
		diet   string
		carbon int
	}{
		{"VEGAN", 800},
		{"VEGETARIAN", 1100},
		{"FLEXITARIAN", 1400},
		{"OMNIVORE", 1800},
		{"", 1800},
	}
	for _, tc := range tests {
		result := CalculateFood(Answers{QFoodDiet: tc.diet, QFoodWaste: "MEDIUM"})
		require.Equal(t, tc.carbon, result.CarbonKg, "diet %q", tc.diet)
		require.Equal(t, 150, result.MoneyGbp)
	}
}

func TestCalculateShopping(t *testing.T) {
	result := CalculateShopping(Answers{
		QShoppingSpend:  "80",
		QShoppingBuyNew: "OFTEN",
	})
	require.Equal(t, 2400, result.CarbonKg) // 80*12*2.5
	require.Equal(t, 192, result.MoneyGbp)  // 80*12*0.2
}

func TestCalculateMoney(t *testing.T) {
	tight := CalculateMoney(Answers{QMoneyFinances: "TIGHT"})
	require.Equal(t, 0, tight.CarbonKg)
	require.Equal(t, 250, tight.MoneyGbp)

	comfortable := CalculateMoney(Answers{QMoneyFinances: "COMFORTABLE"})
	require.Equal(t, 0, comfortable.MoneyGbp)
}

func TestCalculateCarbon(t *testing.T) {
	tracked := CalculateCarbon(Answers{QCarbonTracks: "YES"})
	require.Equal(t, 0, tracked.CarbonKg)

	untracked := CalculateCarbon(Answers{QCarbonTracks: "NO"})
	require.Equal(t, 300, untracked.CarbonKg)
	require.Equal(t, 0, untracked.MoneyGbp)
}

func TestCalculateTech(t *testing.T) {
	upgrades := CalculateTech(Answers{QTechUpgradesOften: "YES"})
	require.Equal(t, 400, upgrades.CarbonKg)
	require.Equal(t, 200, upgrades.MoneyGbp)

	keeps := CalculateTech(Answers{QTechUpgradesOften: "NO"})
	require.Equal(t, 0, keeps.CarbonKg)
	require.Equal(t, 0, keeps.MoneyGbp)
}

func TestCalculateWaste(t *testing.T) {
	result := CalculateWaste(Answers{
		QWasteRecycling:  "SOMETIMES",
		QWasteComposting: "NO",
	})
	require.Equal(t, 175, result.CarbonKg)
	require.Equal(t, 100, result.MoneyGbp)

	diligent := CalculateWaste(Answers{
		QWasteRecycling:  "ALWAYS",
		QWasteComposting: "YES",
	})
	require.Equal(t, 0, diligent.CarbonKg)
	require.Equal(t, 0, diligent.MoneyGbp)
}

func TestCalculateHolidays(t *testing.T) {
	frequent := CalculateHolidays(Answers{
		QHolidayFlights:  "OFTEN",
		QHolidayLongHaul: "YES",
	})
	require.Equal(t, 2000, frequent.CarbonKg)
	require.Equal(t, 300, frequent.MoneyGbp)

	grounded := CalculateHolidays(Answers{QHolidayFlights: "NEVER"})
	require.Equal(t, 0, grounded.CarbonKg)
	require.Equal(t, 150, grounded.MoneyGbp)
}

func TestCalculatorsNeverReturnNegatives(t *testing.T) {
	hostile := Answers{
		QHomeMonthlyCost: "-500",
		QTravelDistance:  "-10",
		QShoppingSpend:   "NaN",
	}
	for _, journey := range JourneyOrder {
		result := JourneyImpact(journey, hostile)
		require.GreaterOrEqual(t, result.CarbonKg, 0, "journey %s", journey)
		require.GreaterOrEqual(t, result.MoneyGbp, 0, "journey %s", journey)
		require.NotEmpty(t, result.Source, "journey %s", journey)
		require.NotEmpty(t, result.Explanation, "journey %s", journey)
	}
}
