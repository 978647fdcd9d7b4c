package impact

// notStartedSource attributes zero-results so every card can always cite
// where its numbers come from.
const notStartedSource = "Zero Zero estimates"

// NotStartedResult is returned for journeys without any answers yet. It keeps
// the aggregate shape complete and swaps the explanation for encouragement.
func NotStartedResult() Result {
	return Result{
		CarbonKg:    0,
		MoneyGbp:    0,
		Source:      notStartedSource,
		Explanation: []string{"Complete this journey to see your potential savings"},
	}
}

// JourneyImpact computes a single journey's result. Unknown journey keys are
// unreachable under the closed enum but degrade to a zero-result rather than
// failing, since callers always expect a complete structure.
func JourneyImpact(journey JourneyID, answers Answers) Result {
	if len(answers) == 0 {
		return NotStartedResult()
	}
	switch journey {
	case JourneyHome:
		return CalculateHome(answers)
	case JourneyTravel:
		return CalculateTravel(answers)
	case JourneyFood:
		return CalculateFood(answers)
	case JourneyShopping:
		return CalculateShopping(answers)
	case JourneyMoney:
		return CalculateMoney(answers)
	case JourneyCarbon:
		return CalculateCarbon(answers)
	case JourneyTech:
		return CalculateTech(answers)
	case JourneyWaste:
		return CalculateWaste(answers)
	case JourneyHolidays:
		return CalculateHolidays(answers)
	default:
		return NotStartedResult()
	}
}

// BuildUserImpact runs every journey calculator over the supplied answers and
// sums the rounded per-journey results into grand totals. The returned map
// always holds exactly one entry per journey in JourneyOrder.
func BuildUserImpact(in Input) UserImpact {
	journeys := make(map[JourneyID]Result, JourneyCount)
	var totals Totals
	for _, journey := range JourneyOrder {
		result := JourneyImpact(journey, in.Answers[journey])
		journeys[journey] = result
		totals.CarbonKg += result.CarbonKg
		totals.MoneyGbp += result.MoneyGbp
	}
	return UserImpact{Journeys: journeys, Totals: totals}
}
