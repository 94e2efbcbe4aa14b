package panels

import (
	"github.com/grafana/grafana-foundation-sdk/go/common"
	"github.com/grafana/grafana-foundation-sdk/go/stat"
	"github.com/grafana/grafana-foundation-sdk/go/timeseries"
)

// CurrencyRefreshes returns a timeseries panel showing rate refreshes per hour.
func CurrencyRefreshes() *timeseries.PanelBuilder {
	return timeseries.NewPanelBuilder().
		Title("Rate Refreshes / hour").
		Description("Successful currency rate refreshes per hour").
		Datasource(DSRef()).
		Height(TSHeight).
		Span(8).
		WithTarget(PromQuery(
			`increase(sainto_currency_refreshes_total{job="sainto-api"}[1h])`,
			"refreshes/h", "A",
		)).
		FillOpacity(10).
		LineWidth(2).
		Thresholds(ThresholdsGreenOnly()).
		ColorScheme(ColorSchemePaletteClassic()).
		DrawStyle(common.GraphDrawStyleLine)
}

// CurrencyFallbacks returns a stat panel showing how often the fallback rate
// was served in the past 24 hours. Non-zero means the rate service is flaky.
func CurrencyFallbacks() *stat.PanelBuilder {
	return stat.NewPanelBuilder().
		Title("Fallback Rate Uses (24h)").
		Description("Times the hardcoded fallback rate was served in the last 24 hours").
		Datasource(DSRef()).
		Height(TSHeight).
		Span(8).
		WithTarget(PromQuery(`increase(sainto_currency_fallbacks_total{job="sainto-api"}[24h])`, "", "A")).
		Thresholds(ThresholdsGreenYellowRed(1, 10)).
		ColorScheme(ColorSchemeThresholds()).
		ColorMode(common.BigValueColorModeBackground).
		GraphMode(common.BigValueGraphModeArea)
}

// TrendingSectionErrors returns a timeseries panel showing failed trending
// section lookups per hour.
func TrendingSectionErrors() *timeseries.PanelBuilder {
	return timeseries.NewPanelBuilder().
		Title("Trending Lookup Failures").
		Description("Trending section lookups that degraded to an empty row, per hour").
		Datasource(DSRef()).
		Height(TSHeight).
		Span(8).
		WithTarget(PromQuery(
			`increase(sainto_trending_section_errors_total{job="sainto-api"}[1h])`,
			"failures/h", "A",
		)).
		FillOpacity(10).
		LineWidth(2).
		Thresholds(ThresholdsGreenYellowRed(1, 10)).
		ColorScheme(ColorSchemeThresholds()).
		DrawStyle(common.GraphDrawStyleLine)
}
