package impact

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Per-journey attribution strings surfaced on every result.
const (
	sourceHome     = "BEIS domestic energy price statistics"
	sourceTravel   = "UK Government GHG conversion factors for transport"
	sourceFood     = "WRAP UK diet and food waste research"
	sourceShopping = "DEFRA consumption emissions estimates"
	sourceMoney    = "FCA financial lives survey averages"
	sourceCarbon   = "Climate Change Committee carbon budgets"
	sourceTech     = "DEFRA electronics lifecycle estimates"
	sourceWaste    = "WRAP UK recycling statistics"
	sourceHolidays = "UK Government GHG conversion factors for aviation"
)

// CalculateHome estimates annual savings from home energy answers. Carbon is
// proportional to reported monthly spend; money reflects tariff and supplier
// switching headroom.
func CalculateHome(answers Answers) Result {
	spend := parseAmount(answers, QHomeMonthlyCost, homeRules.DefaultMonthlySpend)
	carbon := spend * 12 * homeRules.SpendCarbonFactor
	money := 0.0
	lines := []string{fmt.Sprintf("Based on £%.0f/month energy spend", spend)}

	if !answeredYes(answers, QHomeGreenTariff) {
		money += homeRules.NonGreenTariffMoney
		lines = append(lines, "Switching to a green tariff could save you money and carbon")
		if token(answers, QHomeElectricity) != homeRules.PreferredSupplier {
			money += homeRules.OtherSupplierMoney
			carbon += homeRules.OtherSupplierCarbon
			lines = append(lines, "A greener supplier would cut your bills further")
		}
	}
	return finishResult(carbon, money, sourceHome, lines)
}

// CalculateTravel annualizes reported mileage and applies the fuel-specific
// emissions factor. The flat money saving only applies to car-first users.
func CalculateTravel(answers Answers) Result {
	distance := parseAmount(answers, QTravelDistance, travelRules.DefaultDistance)
	periods := travelRules.WeeksPerYear
	if token(answers, QTravelPeriod) == travelRules.PeriodMonth {
		periods = travelRules.MonthsPerYear
	}
	fuel := token(answers, QTravelFuel)
	factor, ok := travelRules.FuelFactors[fuel]
	if !ok {
		factor = travelRules.FuelFactors[travelRules.DefaultFuel]
	}
	carbon := distance * periods * factor

	money := 0.0
	lines := []string{fmt.Sprintf("Based on %.0f miles per %s", distance, periodLabel(periods))}
	if token(answers, QTravelMode) == travelRules.ModeCar {
		money = travelRules.CarMoneyPenalty
		lines = append(lines, "Swapping some car trips could save on fuel and upkeep")
	}
	return finishResult(carbon, money, sourceTravel, lines)
}

// CalculateFood maps diet tier to a fixed annual carbon figure and food-waste
// level to a money saving opportunity.
func CalculateFood(answers Answers) Result {
	carbon, ok := foodRules.DietCarbon[token(answers, QFoodDiet)]
	if !ok {
		carbon = foodRules.DefaultDiet
	}
	money := foodRules.WasteMoney[token(answers, QFoodWaste)]

	lines := []string{"Based on the typical footprint for your diet"}
	if money > 0 {
		lines = append(lines, "Cutting food waste would put cash straight back in your pocket")
	}
	return finishResult(carbon, money, sourceFood, lines)
}

// CalculateShopping scales carbon with reported monthly spend and money with
// how often the user buys new rather than second hand.
func CalculateShopping(answers Answers) Result {
	spend := parseAmount(answers, QShoppingSpend, shoppingRules.DefaultMonthlySpend)
	carbon := spend * 12 * shoppingRules.SpendCarbonFactor
	money := spend * 12 * shoppingRules.BuyNewSavingRate[token(answers, QShoppingBuyNew)]

	lines := []string{fmt.Sprintf("Based on £%.0f/month shopping spend", spend)}
	if money > 0 {
		lines = append(lines, "Buying second hand more often would trim this spend")
	}
	return finishResult(carbon, money, sourceShopping, lines)
}

// CalculateMoney flags a flat saving when finances are self-reported tight.
// This journey never carries carbon.
func CalculateMoney(answers Answers) Result {
	money := 0.0
	lines := []string{"Money habits shape every other journey"}
	if token(answers, QMoneyFinances) == moneyRules.TokenTight {
		money = moneyRules.TightFinancesMoney
		lines = append(lines, "A budgeting check-in could free up around £250 a year")
	}
	return finishResult(0, money, sourceMoney, lines)
}

// CalculateCarbon flags a flat carbon figure for users who do not track their
// footprint. This journey never carries money.
func CalculateCarbon(answers Answers) Result {
	carbon := 0.0
	lines := []string{"Tracking your footprint is the first step to shrinking it"}
	if !answeredYes(answers, QCarbonTracks) {
		carbon = carbonRules.UntrackedCarbon
		lines = append(lines, "People who track their footprint typically cut it by 300kg")
	}
	return finishResult(carbon, 0, sourceCarbon, lines)
}

// CalculateTech gates a flat saving on the single upgrade-frequency answer.
func CalculateTech(answers Answers) Result {
	carbon, money := 0.0, 0.0
	lines := []string{"Keeping devices longer avoids manufacturing emissions"}
	if answeredYes(answers, QTechUpgradesOften) {
		carbon = techRules.UpgradeCarbon
		money = techRules.UpgradeMoney
		lines = append(lines, "Skipping one upgrade cycle saves money and 400kg of carbon")
	}
	return finishResult(carbon, money, sourceTech, lines)
}

// CalculateWaste tiers carbon by recycling frequency and adds a composting
// money saving.
func CalculateWaste(answers Answers) Result {
	carbon, ok := wasteRules.RecyclingCarbon[token(answers, QWasteRecycling)]
	if !ok {
		carbon = wasteRules.DefaultCarbon
	}
	money := 0.0
	lines := []string{"Based on how often you recycle"}
	if !answeredYes(answers, QWasteComposting) {
		money = wasteRules.CompostMoney
		lines = append(lines, "Composting food scraps can shave £100 off your waste costs")
	}
	return finishResult(carbon, money, sourceWaste, lines)
}

// CalculateHolidays tiers carbon by flight frequency. Money defaults to the
// short-haul figure and doubles for long-haul flyers.
func CalculateHolidays(answers Answers) Result {
	carbon := holidayRules.FlightCarbon[token(answers, QHolidayFlights)]
	money := holidayRules.ShortHaulMoney
	lines := []string{"Based on how often you fly"}
	if answeredYes(answers, QHolidayLongHaul) {
		money = holidayRules.LongHaulMoney
		lines = append(lines, "Swapping one long-haul trip makes the biggest single difference")
	}
	return finishResult(carbon, money, sourceHolidays, lines)
}

// finishResult clamps both outputs to >=0 and rounds to whole units.
func finishResult(carbon, money float64, source string, lines []string) Result {
	return Result{
		CarbonKg:    clampRound(carbon),
		MoneyGbp:    clampRound(money),
		Source:      source,
		Explanation: lines,
	}
}

func clampRound(v float64) int {
	if v < 0 || math.IsNaN(v) {
		return 0
	}
	return int(math.Round(v))
}

// parseAmount reads a numeric answer, falling back to the documented
// UK-average default when missing or malformed.
func parseAmount(answers Answers, key string, fallback float64) float64 {
	raw, ok := answers[key]
	if !ok {
		return fallback
	}
	value, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil || value < 0 {
		return fallback
	}
	return value
}

// AnswerToken folds one answer to the uppercase form the rule tables key on.
func AnswerToken(answers Answers, key string) string {
	return strings.ToUpper(strings.TrimSpace(answers[key]))
}

func token(answers Answers, key string) string {
	return AnswerToken(answers, key)
}

func answeredYes(answers Answers, key string) bool {
	return token(answers, key) == TokenYes
}

func periodLabel(periods float64) string {
	if periods == travelRules.MonthsPerYear {
		return "month"
	}
	return "week"
}
