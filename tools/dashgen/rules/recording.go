package rules

// RecordingRules returns a PrometheusRule CR containing pre-computed rate
// expressions used by dashboards and alert rules.
func RecordingRules() PrometheusRule {
	return PrometheusRule{
		APIVersion: "monitoring.coreos.com/v1",
		Kind:       "PrometheusRule",
		Metadata: PrometheusRuleMetadata{
			Name: "catalog-recording-rules",
			Labels: map[string]string{
				"prometheus": "system-rules-prometheus",
			},
		},
		Spec: PrometheusRuleSpec{
			Groups: []RuleGroup{
				{
					Name: "catalog-recording",
					Rules: []Rule{
						{
							Record: "catalog:http_requests:rate5m",
							Expr:   `sum(rate(catalog_http_requests_total[5m]))`,
						},
						{
							Record: "catalog:http_errors:rate5m",
							Expr:   `sum(rate(catalog_http_requests_total{status=~"5.."}[5m]))`,
						},
						{
							Record: "catalog:queries:rate5m",
							Expr:   `sum by (branch) (rate(catalog_queries_total[5m]))`,
						},
						{
							Record: "catalog:query_errors:rate5m",
							Expr:   `sum by (kind) (rate(catalog_query_errors_total[5m]))`,
						},
						{
							Record: "catalog:upstream_calls:rate5m",
							Expr:   `sum by (op, outcome) (rate(catalog_upstream_calls_total[5m]))`,
						},
					},
				},
			},
		},
	}
}
