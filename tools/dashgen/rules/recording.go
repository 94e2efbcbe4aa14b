package rules

// RecordingRules returns a PrometheusRule CR containing pre-computed rate
// expressions used by dashboards and alert rules.
func RecordingRules() PrometheusRule {
	return PrometheusRule{
		APIVersion: "monitoring.coreos.com/v1",
		Kind:       "PrometheusRule",
		Metadata: PrometheusRuleMetadata{
			Name: "sainto-recording-rules",
			Labels: map[string]string{
				"prometheus": "system-rules-prometheus",
			},
		},
		Spec: PrometheusRuleSpec{
			Groups: []RuleGroup{
				{
					Name: "sainto-recording",
					Rules: []Rule{
						{
							Record: "sainto:http_requests:rate5m",
							Expr:   `sum(rate(sainto_http_requests_total[5m]))`,
						},
						{
							Record: "sainto:http_errors:rate5m",
							Expr:   `sum(rate(sainto_http_requests_total{status=~"5.."}[5m]))`,
						},
						{
							Record: "sainto:upstream_errors:rate5m",
							Expr:   `sum(rate(sainto_upstream_errors_total[5m]))`,
						},
						{
							Record: "sainto:ebay_api_calls:rate5m",
							Expr:   `rate(sainto_ebay_api_calls_total[5m])`,
						},
					},
				},
			},
		},
	}
}
