package panels

import (
	"github.com/grafana/grafana-foundation-sdk/go/common"
	"github.com/grafana/grafana-foundation-sdk/go/timeseries"
)

// UpstreamRequestRate returns a timeseries panel showing outbound request
// rates broken down by backend.
func UpstreamRequestRate() *timeseries.PanelBuilder {
	return timeseries.NewPanelBuilder().
		Title("Upstream Requests").
		Description("Outbound requests per second per backend").
		Datasource(DSRef()).
		Height(TSHeight).
		Span(8).
		WithTarget(PromQuery(
			`sum(rate(sainto_upstream_requests_total{job="sainto-api"}[5m])) by (backend)`,
			"{{backend}}", "A",
		)).
		Unit("reqps").
		FillOpacity(10).
		LineWidth(2).
		Legend(TableLegend("mean", "max")).
		Tooltip(MultiTooltip()).
		Thresholds(ThresholdsGreenOnly()).
		ColorScheme(ColorSchemePaletteClassic()).
		DrawStyle(common.GraphDrawStyleLine)
}

// UpstreamErrorRate returns a timeseries panel showing outbound request
// failures per backend.
func UpstreamErrorRate() *timeseries.PanelBuilder {
	return timeseries.NewPanelBuilder().
		Title("Upstream Errors").
		Description("Failed outbound requests per second per backend").
		Datasource(DSRef()).
		Height(TSHeight).
		Span(8).
		WithTarget(PromQuery(
			`sum(rate(sainto_upstream_errors_total{job="sainto-api"}[5m])) by (backend)`,
			"{{backend}}", "A",
		)).
		FillOpacity(10).
		LineWidth(2).
		Thresholds(ThresholdsGreenYellowRed(0.1, 1)).
		ColorScheme(ColorSchemeThresholds()).
		DrawStyle(common.GraphDrawStyleLine)
}

// UpstreamErrorRatio returns a timeseries panel showing the failed share of
// outbound requests as a percentage.
func UpstreamErrorRatio() *timeseries.PanelBuilder {
	return timeseries.NewPanelBuilder().
		Title("Upstream Error %").
		Description("Percentage of outbound requests that failed").
		Datasource(DSRef()).
		Height(TSHeight).
		Span(8).
		WithTarget(PromQuery(
			`sainto:upstream_errors:rate5m / sum(rate(sainto_upstream_requests_total[5m])) * 100`,
			"error %", "A",
		)).
		Unit("percent").
		FillOpacity(10).
		LineWidth(2).
		Thresholds(ThresholdsGreenYellowRed(1, 5)).
		ColorScheme(ColorSchemeThresholds()).
		DrawStyle(common.GraphDrawStyleLine)
}
