package impact

import (
	"fmt"
	"math"
)

// FormatCarbon renders a kg CO2e value for display: two decimals with a kg
// suffix under 100kg, a rounded integer up to 999kg, tonnes to two decimals
// from 1000kg. Zero (or anything below) renders as "n/a".
func FormatCarbon(kg float64) string {
	switch {
	case kg <= 0 || math.IsNaN(kg):
		return "n/a"
	case kg < 100:
		return fmt.Sprintf("%.2fkg", kg)
	case kg < 1000:
		return fmt.Sprintf("%.0fkg", kg)
	default:
		return fmt.Sprintf("%.2ft", kg/1000)
	}
}

// FormatMoney renders a rounded annual GBP amount.
func FormatMoney(gbp int) string {
	return fmt.Sprintf("£%d", gbp)
}
