package rules

import "fmt"

// AlertRules returns a PrometheusRule CR containing alert rules for
// catalogd operational monitoring. dailyBudget is the configured daily
// upstream call budget; 0 omits the budget alerts.
func AlertRules(dailyBudget int) PrometheusRule {
	alerts := []Rule{
		{
			Alert: "CatalogDown",
			Expr:  `absent(up{job="catalogd"})`,
			For:   "2m",
			Labels: map[string]string{
				"severity": "critical",
			},
			Annotations: map[string]string{
				"summary":     "catalogd is down",
				"description": "The catalogd job has been absent for more than 2 minutes.",
			},
		},
		{
			Alert: "CatalogNotReady",
			Expr:  `catalog_readyz_up == 0`,
			For:   "2m",
			Labels: map[string]string{
				"severity": "critical",
			},
			Annotations: map[string]string{
				"summary":     "catalogd readiness check is failing",
				"description": "The upstream category list has not loaded for more than 2 minutes.",
			},
		},
		{
			Alert: "CatalogHighErrorRate",
			Expr:  `catalog:http_errors:rate5m / catalog:http_requests:rate5m > 0.05`,
			For:   "5m",
			Labels: map[string]string{
				"severity": "warning",
			},
			Annotations: map[string]string{
				"summary":     "High HTTP error rate on catalogd",
				"description": "More than 5% of HTTP requests are returning 5xx errors over the last 5 minutes.",
			},
		},
		{
			Alert: "CatalogUpstreamUnavailable",
			Expr:  `sum(catalog:query_errors:rate5m{kind="gateway_unavailable"}) > 0`,
			For:   "5m",
			Labels: map[string]string{
				"severity": "warning",
			},
			Annotations: map[string]string{
				"summary":     "Upstream catalog is unreachable",
				"description": "Queries have been failing with gateway_unavailable for more than 5 minutes.",
			},
		},
		{
			Alert: "CatalogBreakerOpen",
			Expr:  `max by (name) (catalog_upstream_breaker_state) == 2`,
			For:   "1m",
			Labels: map[string]string{
				"severity": "critical",
			},
			Annotations: map[string]string{
				"summary":     "Upstream circuit breaker is open",
				"description": "The upstream circuit breaker {{ $labels.name }} has been open for more than 1 minute.",
			},
		},
	}

	if dailyBudget > 0 {
		warnAt := dailyBudget * 8 / 10
		alerts = append(alerts,
			Rule{
				Alert: "CatalogUpstreamBudgetHigh",
				Expr:  fmt.Sprintf(`catalog_upstream_daily_usage > %d`, warnAt),
				For:   "5m",
				Labels: map[string]string{
					"severity": "warning",
				},
				Annotations: map[string]string{
					"summary": "Upstream daily usage is above 80% of the budget",
					"description": fmt.Sprintf(
						"Daily upstream usage has exceeded %d calls (budget is %d).", warnAt, dailyBudget),
				},
			},
			Rule{
				Alert: "CatalogUpstreamBudgetExhausted",
				Expr:  `increase(catalog_upstream_daily_limit_hits_total[5m]) > 0`,
				For:   "0m",
				Labels: map[string]string{
					"severity": "critical",
				},
				Annotations: map[string]string{
					"summary":     "Upstream daily budget has been reached",
					"description": "The daily upstream call budget is exhausted. Queries fail as unavailable until the window resets.",
				},
			},
		)
	}

	return PrometheusRule{
		APIVersion: "monitoring.coreos.com/v1",
		Kind:       "PrometheusRule",
		Metadata: PrometheusRuleMetadata{
			Name: "catalog-alerts",
			Labels: map[string]string{
				"prometheus": "system-rules-prometheus",
			},
		},
		Spec: PrometheusRuleSpec{
			Groups: []RuleGroup{
				{
					Name:  "catalog-alerts",
					Rules: alerts,
				},
			},
		},
	}
}
