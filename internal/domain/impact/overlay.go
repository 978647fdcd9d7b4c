package impact

// ScrapedDataPoint is an externally scraped estimate for one journey. It is
// untrusted input: the overlay only substitutes values that stay within the
// delta tolerance of the calculated baseline.
type ScrapedDataPoint struct {
	CarbonValue    *float64 `json:"carbon_value,omitempty"`
	MoneyValue     *float64 `json:"money_value,omitempty"`
	DeepContentTip string   `json:"deep_content_tip,omitempty"`
	HighSaving     bool     `json:"high_saving,omitempty"`
	LocalGrantGbp  float64  `json:"local_grant_gbp,omitempty"`
}

// OverlayResult is the baseline result after blending in scraped data.
type OverlayResult struct {
	Result
	FromScraper bool   `json:"fromScraper"`
	Insight     string `json:"insight,omitempty"`
	Alert       bool   `json:"alert,omitempty"`
}

// Tolerance band for accepting a scraped value over the calculated baseline.
const (
	overlayMinRatio = 0.8
	overlayMaxRatio = 1.2
)

// ApplyOverlay validates a scraped datapoint against the calculated baseline
// and substitutes each value independently when it falls within ±20% of the
// baseline. A zero baseline accepts the scraped value outright. Local grants
// are trusted and added to the money result unconditionally.
func ApplyOverlay(baseline Result, scraped *ScrapedDataPoint) OverlayResult {
	out := OverlayResult{Result: baseline}
	if scraped == nil {
		return out
	}

	if scraped.CarbonValue != nil {
		if accepted, ok := gateValue(baseline.CarbonKg, *scraped.CarbonValue); ok && accepted != baseline.CarbonKg {
			out.CarbonKg = accepted
			out.FromScraper = true
		}
	}
	if scraped.MoneyValue != nil {
		if accepted, ok := gateValue(baseline.MoneyGbp, *scraped.MoneyValue); ok && accepted != baseline.MoneyGbp {
			out.MoneyGbp = accepted
			out.FromScraper = true
		}
	}
	if scraped.LocalGrantGbp > 0 {
		out.MoneyGbp += clampRound(scraped.LocalGrantGbp)
		out.FromScraper = true
	}

	out.Insight = scraped.DeepContentTip
	out.Alert = scraped.HighSaving
	return out
}

// gateValue applies the delta check for one scraped value. The second return
// reports whether the scraped value passed the gate.
func gateValue(baseline int, scraped float64) (int, bool) {
	if baseline == 0 {
		return clampRound(scraped), true
	}
	ratio := scraped / float64(baseline)
	if ratio < overlayMinRatio || ratio > overlayMaxRatio {
		return baseline, false
	}
	return clampRound(scraped), true
}
