package panels

import (
	"github.com/grafana/grafana-foundation-sdk/go/common"
	"github.com/grafana/grafana-foundation-sdk/go/stat"
	"github.com/grafana/grafana-foundation-sdk/go/timeseries"
)

// OrdersRate returns a timeseries panel showing orders accepted per hour.
func OrdersRate() *timeseries.PanelBuilder {
	return timeseries.NewPanelBuilder().
		Title("Orders / hour").
		Description("Rate of orders accepted per hour").
		Datasource(DSRef()).
		Height(TSHeight).
		Span(TSWidth).
		WithTarget(PromQuery(
			`increase(sainto_orders_created_total{job="sainto-api"}[1h])`,
			"orders/h", "A",
		)).
		FillOpacity(10).
		LineWidth(2).
		Thresholds(ThresholdsGreenOnly()).
		ColorScheme(ColorSchemePaletteClassic()).
		DrawStyle(common.GraphDrawStyleLine)
}

// WebhookFailures returns a stat panel showing order notification failures
// in the past 24 hours.
func WebhookFailures() *stat.PanelBuilder {
	return stat.NewPanelBuilder().
		Title("Webhook Failures (24h)").
		Description("Failed order notification deliveries in the last 24 hours").
		Datasource(DSRef()).
		Height(TSHeight).
		Span(TSWidth).
		WithTarget(PromQuery(`increase(sainto_order_webhook_failures_total{job="sainto-api"}[24h])`, "", "A")).
		Thresholds(ThresholdsGreenYellowRed(1, 5)).
		ColorScheme(ColorSchemeThresholds()).
		ColorMode(common.BigValueColorModeBackground).
		GraphMode(common.BigValueGraphModeArea)
}
