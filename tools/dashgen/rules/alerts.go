package rules

// AlertRules returns a PrometheusRule CR containing alert rules for
// sainto API operational monitoring.
func AlertRules() PrometheusRule {
	return PrometheusRule{
		APIVersion: "monitoring.coreos.com/v1",
		Kind:       "PrometheusRule",
		Metadata: PrometheusRuleMetadata{
			Name: "sainto-alerts",
			Labels: map[string]string{
				"prometheus": "system-rules-prometheus",
			},
		},
		Spec: PrometheusRuleSpec{
			Groups: []RuleGroup{
				{
					Name: "sainto-alerts",
					Rules: []Rule{
						{
							Alert: "SaintoDown",
							Expr:  `absent(up{job="sainto-api"})`,
							For:   "2m",
							Labels: map[string]string{
								"severity": "critical",
							},
							Annotations: map[string]string{
								"summary":     "Sainto API is down",
								"description": "The sainto-api job has been absent for more than 2 minutes.",
							},
						},
						{
							Alert: "SaintoReadinessDown",
							Expr:  `sainto_readyz_up == 0`,
							For:   "2m",
							Labels: map[string]string{
								"severity": "critical",
							},
							Annotations: map[string]string{
								"summary":     "Sainto API readiness check is failing",
								"description": "The readiness probe has been reporting not-ready for more than 2 minutes.",
							},
						},
						{
							Alert: "SaintoHighErrorRate",
							Expr:  `sainto:http_errors:rate5m / sainto:http_requests:rate5m > 0.05`,
							For:   "5m",
							Labels: map[string]string{
								"severity": "warning",
							},
							Annotations: map[string]string{
								"summary":     "High HTTP error rate on Sainto API",
								"description": "More than 5% of HTTP requests are returning 5xx errors over the last 5 minutes.",
							},
						},
						{
							Alert: "SaintoUpstreamErrors",
							Expr:  `sainto:upstream_errors:rate5m > 0.1`,
							For:   "5m",
							Labels: map[string]string{
								"severity": "warning",
							},
							Annotations: map[string]string{
								"summary":     "Upstream backend errors are elevated",
								"description": "Outbound requests to the marketplace, eBay, CMS, or currency backends are failing at more than 0.1/s for the last 5 minutes.",
							},
						},
						{
							Alert: "SaintoEbayQuotaHigh",
							Expr:  `sainto_ebay_daily_usage > 4000`,
							For:   "5m",
							Labels: map[string]string{
								"severity": "warning",
							},
							Annotations: map[string]string{
								"summary":     "eBay API daily usage is above 80% of the quota",
								"description": "Daily eBay API usage has exceeded 4000 calls (limit is 5000).",
							},
						},
						{
							Alert: "SaintoEbayLimitReached",
							Expr:  `increase(sainto_ebay_daily_limit_hits_total[5m]) > 0`,
							For:   "0m",
							Labels: map[string]string{
								"severity": "critical",
							},
							Annotations: map[string]string{
								"summary":     "eBay API daily limit has been reached",
								"description": "The eBay Browse API daily quota has been exhausted. Pre-owned search is degraded until reset.",
							},
						},
						{
							Alert: "SaintoOrderWebhookFailures",
							Expr:  `increase(sainto_order_webhook_failures_total[5m]) > 0`,
							For:   "1m",
							Labels: map[string]string{
								"severity": "warning",
							},
							Annotations: map[string]string{
								"summary":     "Order notification delivery failures detected",
								"description": "One or more order Discord webhooks have failed to send. Orders are still accepted but staff are not being notified.",
							},
						},
						{
							Alert: "SaintoCurrencyFallback",
							Expr:  `increase(sainto_currency_fallbacks_total[30m]) > 0`,
							For:   "10m",
							Labels: map[string]string{
								"severity": "warning",
							},
							Annotations: map[string]string{
								"summary":     "Currency conversion is using the fallback rate",
								"description": "The rate service has been unreachable and prices are converted with the hardcoded fallback rate.",
							},
						},
					},
				},
			},
		},
	}
}
