package zone

import "github.com/zerozero/zerozero/internal/domain/impact"

// Source pairs an attribution URL with a human-readable label.
type Source struct {
	URL   string
	Label string
}

// journeySources maps each journey to its reference data attributions. The
// first entry is used when no variant index is requested.
var journeySources = map[impact.JourneyID][]Source{
	impact.JourneyHome: {
		{URL: "https://www.gov.uk/government/collections/domestic-energy-prices", Label: "BEIS domestic energy prices"},
		{URL: "https://www.ofgem.gov.uk/energy-data-and-research", Label: "Ofgem energy data"},
	},
	impact.JourneyTravel: {
		{URL: "https://www.gov.uk/government/publications/greenhouse-gas-reporting-conversion-factors-2023", Label: "UK GHG conversion factors"},
	},
	impact.JourneyFood: {
		{URL: "https://wrap.org.uk/taking-action/food-drink", Label: "WRAP food and drink research"},
	},
	impact.JourneyShopping: {
		{URL: "https://www.gov.uk/government/statistics/uks-carbon-footprint", Label: "DEFRA consumption emissions"},
	},
	impact.JourneyMoney: {
		{URL: "https://www.fca.org.uk/publications/financial-lives", Label: "FCA financial lives survey"},
	},
	impact.JourneyCarbon: {
		{URL: "https://www.theccc.org.uk/what-is-climate-change/reducing-carbon-emissions/", Label: "Climate Change Committee"},
	},
	impact.JourneyTech: {
		{URL: "https://www.gov.uk/government/statistics/uks-carbon-footprint", Label: "DEFRA electronics lifecycle estimates"},
	},
	impact.JourneyWaste: {
		{URL: "https://wrap.org.uk/taking-action/citizen-behaviour-change/recycle-now", Label: "WRAP recycling statistics"},
	},
	impact.JourneyHolidays: {
		{URL: "https://www.gov.uk/government/publications/greenhouse-gas-reporting-conversion-factors-2023", Label: "UK GHG aviation factors"},
	},
}

// sourceFor returns the primary attribution for a journey.
func sourceFor(journey impact.JourneyID) Source {
	entries := journeySources[journey]
	if len(entries) == 0 {
		return Source{URL: "https://www.gov.uk", Label: "UK Government reference data"}
	}
	return entries[0]
}

// Hand-authored card titles, fixed per journey.
var journeyTitles = map[impact.JourneyID]string{
	impact.JourneyHome:     "Power your home for less",
	impact.JourneyTravel:   "Rethink the daily journey",
	impact.JourneyFood:     "Eat well, waste less",
	impact.JourneyShopping: "Buy less, choose well",
	impact.JourneyMoney:    "Make your money greener",
	impact.JourneyCarbon:   "Know your footprint",
	impact.JourneyTech:     "Keep your tech for longer",
	impact.JourneyWaste:    "Close the loop at home",
	impact.JourneyHolidays: "Travel lighter this year",
}

// Tip copy, fixed per journey.
var tipTitles = map[impact.JourneyID]string{
	impact.JourneyHome:     "Switch to a greener tariff",
	impact.JourneyTravel:   "Try one car-free day a week",
	impact.JourneyFood:     "Plan meals to cut food waste",
	impact.JourneyShopping: "Try second hand first",
	impact.JourneyMoney:    "Move to an ethical bank",
	impact.JourneyCarbon:   "Start tracking your footprint",
	impact.JourneyTech:     "Skip the next upgrade",
	impact.JourneyWaste:    "Recycle and compost more",
	impact.JourneyHolidays: "Take the train for your next trip",
}
