package impact

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func floatPtr(v float64) *float64 { return &v }

func TestApplyOverlayNilPoint(t *testing.T) {
	baseline := Result{CarbonKg: 1000, MoneyGbp: 200, Source: "x", Explanation: []string{"y"}}
	out := ApplyOverlay(baseline, nil)
	require.Equal(t, baseline, out.Result)
	require.False(t, out.FromScraper)
}

func TestApplyOverlayWithinTolerance(t *testing.T) {
	baseline := Result{CarbonKg: 1000, MoneyGbp: 200}
	out := ApplyOverlay(baseline, &ScrapedDataPoint{CarbonValue: floatPtr(1150)})
	require.Equal(t, 1150, out.CarbonKg) // ratio 1.15 accepted
	require.Equal(t, 200, out.MoneyGbp)
	require.True(t, out.FromScraper)
}

func TestApplyOverlayOutsideTolerance(t *testing.T) {
	baseline := Result{CarbonKg: 1000, MoneyGbp: 200}
	out := ApplyOverlay(baseline, &ScrapedDataPoint{CarbonValue: floatPtr(1300)})
	require.Equal(t, 1000, out.CarbonKg) // ratio 1.3 rejected
	require.False(t, out.FromScraper)
}

func TestApplyOverlayZeroBaselineAcceptsScraped(t *testing.T) {
	baseline := Result{CarbonKg: 0, MoneyGbp: 0}
	out := ApplyOverlay(baseline, &ScrapedDataPoint{
		CarbonValue: floatPtr(420),
		MoneyValue:  floatPtr(-50),
	})
	require.Equal(t, 420, out.CarbonKg)
	require.Equal(t, 0, out.MoneyGbp) // clamped
	require.True(t, out.FromScraper)
}

func TestApplyOverlayGrantAddedUnconditionally(t *testing.T) {
	baseline := Result{CarbonKg: 500, MoneyGbp: 100}
	out := ApplyOverlay(baseline, &ScrapedDataPoint{
		MoneyValue:    floatPtr(900), // ratio 9, rejected
		LocalGrantGbp: 350,
	})
	require.Equal(t, 450, out.MoneyGbp)
	require.True(t, out.FromScraper)
}

func TestApplyOverlayInsightPassthrough(t *testing.T) {
	baseline := Result{CarbonKg: 100, MoneyGbp: 100}
	out := ApplyOverlay(baseline, &ScrapedDataPoint{
		DeepContentTip: "local insulation grants available",
		HighSaving:     true,
	})
	require.Equal(t, "local insulation grants available", out.Insight)
	require.True(t, out.Alert)
	require.False(t, out.FromScraper) // nothing numeric changed
}

func TestApplyOverlayEqualValueNotFlagged(t *testing.T) {
	baseline := Result{CarbonKg: 1000, MoneyGbp: 200}
	out := ApplyOverlay(baseline, &ScrapedDataPoint{CarbonValue: floatPtr(1000)})
	require.Equal(t, 1000, out.CarbonKg)
	require.False(t, out.FromScraper)
}
