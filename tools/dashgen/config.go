package main

import "errors"

// KnownMetrics is the set of metric names exported by the sainto API plus
// recording rule names referenced in dashboards and alerts.
var KnownMetrics = map[string]bool{
	// HTTP metrics.
	"sainto_http_request_duration_seconds": true,
	"sainto_http_requests_total":           true,

	// Health metrics.
	"sainto_healthz_up": true,
	"sainto_readyz_up":  true,

	// Upstream backend metrics.
	"sainto_upstream_requests_total": true,
	"sainto_upstream_errors_total":   true,

	// eBay API metrics.
	"sainto_ebay_api_calls_total":        true,
	"sainto_ebay_daily_usage":            true,
	"sainto_ebay_daily_limit_hits_total": true,

	// Order metrics.
	"sainto_orders_created_total":         true,
	"sainto_order_webhook_failures_total": true,

	// Currency metrics.
	"sainto_currency_refreshes_total": true,
	"sainto_currency_fallbacks_total": true,

	// Trending metrics.
	"sainto_trending_section_errors_total": true,

	// Recording rules.
	"sainto:http_requests:rate5m":   true,
	"sainto:http_errors:rate5m":     true,
	"sainto:upstream_errors:rate5m": true,
	"sainto:ebay_api_calls:rate5m":  true,

	// Standard Prometheus metrics referenced in dashboards.
	"up":                         true,
	"process_start_time_seconds": true,
}

// Config controls which artifacts the generator produces and where they go.
type Config struct {
	OutputDir        string
	DashboardEnabled bool
	RulesEnabled     bool
}

// DefaultConfig returns a Config that generates all artifacts into ../../deploy
// (relative to tools/dashgen/).
func DefaultConfig() Config {
	return Config{
		OutputDir:        "../../deploy",
		DashboardEnabled: true,
		RulesEnabled:     true,
	}
}

// Validate checks that the config is usable.
func (c Config) Validate() error {
	if c.OutputDir == "" {
		return errors.New("output directory must be set")
	}
	if !c.DashboardEnabled && !c.RulesEnabled {
		return errors.New("at least one of dashboard or rules must be enabled")
	}
	return nil
}
