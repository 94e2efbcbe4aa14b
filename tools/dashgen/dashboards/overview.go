// Package dashboards assembles Grafana dashboard definitions from panel builders.
package dashboards

import (
	"github.com/grafana/grafana-foundation-sdk/go/dashboard"

	"github.com/bilegt6969/sainto-api/tools/dashgen/panels"
)

// BuildOverview constructs the Sainto Overview dashboard with all metric rows.
func BuildOverview() *dashboard.DashboardBuilder {
	b := dashboard.NewDashboardBuilder("Sainto Overview").
		Uid("sainto-overview").
		Tags([]string{"sainto", "storefront-api"}).
		Refresh("30s").
		Time("now-6h", "now").
		Timezone("browser").
		Editable().
		Tooltip(dashboard.DashboardCursorSyncCrosshair).
		WithVariable(datasourceVar())

	// Row 1: Overview.
	b.WithRow(dashboard.NewRowBuilder("Overview").
		WithPanel(panels.HealthzStat()).
		WithPanel(panels.ReadyzStat()).
		WithPanel(panels.QuotaGauge()).
		WithPanel(panels.UptimeStat()))

	// Row 2: HTTP.
	b.WithRow(dashboard.NewRowBuilder("HTTP").
		WithPanel(panels.RequestRate()).
		WithPanel(panels.LatencyPercentiles()).
		WithPanel(panels.ErrorRate()))

	// Row 3: eBay API.
	b.WithRow(dashboard.NewRowBuilder("eBay API").
		WithPanel(panels.APICallsRate()).
		WithPanel(panels.DailyUsage()).
		WithPanel(panels.LimitHits()))

	// Row 4: Upstreams.
	b.WithRow(dashboard.NewRowBuilder("Upstreams").
		WithPanel(panels.UpstreamRequestRate()).
		WithPanel(panels.UpstreamErrorRate()).
		WithPanel(panels.UpstreamErrorRatio()))

	// Row 5: Orders.
	b.WithRow(dashboard.NewRowBuilder("Orders").
		WithPanel(panels.OrdersRate()).
		WithPanel(panels.WebhookFailures()))

	// Row 6: Currency & Trending.
	b.WithRow(dashboard.NewRowBuilder("Currency & Trending").
		WithPanel(panels.CurrencyRefreshes()).
		WithPanel(panels.CurrencyFallbacks()).
		WithPanel(panels.TrendingSectionErrors()))

	return b
}

func datasourceVar() *dashboard.DatasourceVariableBuilder {
	return dashboard.NewDatasourceVariableBuilder("datasource").
		Label("Datasource").
		Type("prometheus")
}
