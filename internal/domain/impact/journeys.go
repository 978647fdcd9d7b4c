package impact

// JourneyID identifies one of the nine fixed lifestyle journeys.
type JourneyID string

const (
	JourneyHome     JourneyID = "home"
	JourneyTravel   JourneyID = "travel"
	JourneyFood     JourneyID = "food"
	JourneyShopping JourneyID = "shopping"
	JourneyMoney    JourneyID = "money"
	JourneyCarbon   JourneyID = "carbon"
	JourneyTech     JourneyID = "tech"
	JourneyWaste    JourneyID = "waste"
	JourneyHolidays JourneyID = "holidays"
)

// JourneyCount is the number of journeys in the closed set.
const JourneyCount = 9

// JourneyOrder is the canonical journey ordering. It is load-bearing: it
// fixes the output order of journey cards and resolves scoring ties in
// favour of the earlier journey.
var JourneyOrder = [JourneyCount]JourneyID{
	JourneyHome,
	JourneyTravel,
	JourneyFood,
	JourneyShopping,
	JourneyMoney,
	JourneyCarbon,
	JourneyTech,
	JourneyWaste,
	JourneyHolidays,
}

// ParseJourney maps a raw string onto the closed journey set.
func ParseJourney(raw string) (JourneyID, bool) {
	for _, id := range JourneyOrder {
		if string(id) == raw {
			return id, true
		}
	}
	return "", false
}
