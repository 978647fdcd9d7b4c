package impact

// Rule tables for the nine journey calculators. Factors come from fixed UK
// reference data (BEIS/DEFRA conversion tables plus industry averages) and
// are grouped per journey so defaults stay auditable in one place.

// Question ids, fixed per journey.
const (
	QHomeMonthlyCost   = "monthly_cost"
	QHomeGreenTariff   = "green_tariff"
	QHomeElectricity   = "electricity_provider"
	QHomeGas           = "gas_provider"
	QTravelMode        = "primary_transport"
	QTravelFuel        = "fuel_type"
	QTravelDistance    = "distance_amount"
	QTravelPeriod      = "distance_period"
	QFoodDiet          = "diet_type"
	QFoodWaste         = "food_waste"
	QShoppingSpend     = "monthly_spend"
	QShoppingBuyNew    = "buy_new"
	QMoneyFinances     = "finances"
	QCarbonTracks      = "track_footprint"
	QTechUpgradesOften = "upgrade_often"
	QWasteRecycling    = "recycling"
	QWasteComposting   = "composting"
	QHolidayFlights    = "flight_frequency"
	QHolidayLongHaul   = "long_haul"
)

// Shared answer tokens.
const (
	TokenYes = "YES"
	TokenNo  = "NO"
)

var homeRules = struct {
	DefaultMonthlySpend  float64 // GBP, UK average dual-fuel bill
	SpendCarbonFactor    float64 // kg CO2e per annual GBP of energy spend
	NonGreenTariffMoney  float64 // GBP/yr recoverable by switching tariff
	OtherSupplierMoney   float64 // extra GBP/yr when also on a non-preferred supplier
	OtherSupplierCarbon  float64 // extra kg/yr for the same case
	PreferredSupplier    string
}{
	DefaultMonthlySpend: 120,
	SpendCarbonFactor:   0.45,
	NonGreenTariffMoney: 120,
	OtherSupplierMoney:  180,
	OtherSupplierCarbon: 400,
	PreferredSupplier:   "OCTOPUS",
}

// GreenSuppliers lists tokens treated as green-friendly electricity/gas
// suppliers when deciding whether to surface the switch-supplier nudge.
var GreenSuppliers = map[string]struct{}{
	"OCTOPUS":     {},
	"OVO":         {},
	"BULB":        {},
	"ECOTRICITY":  {},
	"GOOD_ENERGY": {},
}

var travelRules = struct {
	DefaultDistance  float64            // miles per period when unanswered
	WeeksPerYear     float64
	MonthsPerYear    float64
	FuelFactors      map[string]float64 // kg CO2e per mile
	DefaultFuel      string
	CarMoneyPenalty  float64 // GBP/yr, running-cost saving opportunity
	ModeCar          string
	PeriodMonth      string
}{
	DefaultDistance: 100,
	WeeksPerYear:    52,
	MonthsPerYear:   12,
	FuelFactors: map[string]float64{
		"PETROL":   0.404,
		"DIESEL":   0.447,
		"ELECTRIC": 0.05,
		"HYBRID":   0.05,
		"NONE":     0,
	},
	DefaultFuel:     "PETROL",
	CarMoneyPenalty: 300,
	ModeCar:         "CAR",
	PeriodMonth:     "MONTH",
}

var foodRules = struct {
	DietCarbon   map[string]float64 // kg CO2e per year
	DefaultDiet  float64            // omnivore baseline
	WasteMoney   map[string]float64 // GBP/yr lost to food waste
}{
	DietCarbon: map[string]float64{
		"VEGAN":       800,
		"VEGETARIAN":  1100,
		"FLEXITARIAN": 1400,
	},
	DefaultDiet: 1800,
	WasteMoney: map[string]float64{
		"HIGH":   300,
		"MEDIUM": 150,
		"LOW":    0,
	},
}

var shoppingRules = struct {
	DefaultMonthlySpend float64
	SpendCarbonFactor   float64 // kg CO2e per annual GBP of retail spend
	BuyNewSavingRate    map[string]float64
}{
	DefaultMonthlySpend: 100,
	SpendCarbonFactor:   2.5,
	BuyNewSavingRate: map[string]float64{
		"OFTEN":     0.20,
		"SOMETIMES": 0.10,
		"RARELY":    0,
	},
}

var moneyRules = struct {
	TightFinancesMoney float64
	TokenTight         string
}{
	TightFinancesMoney: 250,
	TokenTight:         "TIGHT",
}

var carbonRules = struct {
	UntrackedCarbon float64
}{
	UntrackedCarbon: 300,
}

var techRules = struct {
	UpgradeCarbon float64
	UpgradeMoney  float64
}{
	UpgradeCarbon: 400,
	UpgradeMoney:  200,
}

var wasteRules = struct {
	RecyclingCarbon map[string]float64
	DefaultCarbon   float64 // treated as never recycling
	CompostMoney    float64
}{
	RecyclingCarbon: map[string]float64{
		"ALWAYS":    0,
		"SOMETIMES": 175,
		"NEVER":     350,
	},
	DefaultCarbon: 350,
	CompostMoney:  100,
}

var holidayRules = struct {
	FlightCarbon   map[string]float64
	ShortHaulMoney float64
	LongHaulMoney  float64
}{
	FlightCarbon: map[string]float64{
		"OFTEN":  2000,
		"YEARLY": 1000,
		"NEVER":  0,
	},
	ShortHaulMoney: 150,
	LongHaulMoney:  300,
}
