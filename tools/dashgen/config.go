package main

import (
	"errors"

	"github.com/donaldgifford/catalog-browser/tools/dashgen/panels"
)

// KnownMetrics is the set of metric names exported by catalogd plus
// recording rule names referenced in dashboards and alerts.
var KnownMetrics = map[string]bool{
	// HTTP metrics.
	"catalog_http_request_duration_seconds": true,
	"catalog_http_requests_total":           true,

	// Health metrics.
	"catalog_healthz_up": true,
	"catalog_readyz_up":  true,

	// Query engine metrics.
	"catalog_queries_total":              true,
	"catalog_query_errors_total":         true,
	"catalog_query_duration_seconds":     true,
	"catalog_query_candidates":           true,
	"catalog_categories_discarded_total": true,

	// Upstream metrics.
	"catalog_upstream_calls_total":            true,
	"catalog_upstream_call_duration_seconds":  true,
	"catalog_upstream_daily_usage":            true,
	"catalog_upstream_daily_limit_hits_total": true,
	"catalog_upstream_breaker_state":          true,

	// Recording rules.
	"catalog:http_requests:rate5m":  true,
	"catalog:http_errors:rate5m":    true,
	"catalog:queries:rate5m":        true,
	"catalog:query_errors:rate5m":   true,
	"catalog:upstream_calls:rate5m": true,

	// Standard Prometheus metrics referenced in dashboards.
	"up":                         true,
	"process_start_time_seconds": true,
}

// Config controls which artifacts the generator produces and where they go.
type Config struct {
	OutputDir        string
	DashboardEnabled bool
	RulesEnabled     bool

	// DailyBudget feeds the upstream budget alerts. 0 omits them.
	DailyBudget int
}

// DefaultConfig returns a Config that generates all artifacts into ../../deploy
// (relative to tools/dashgen/).
func DefaultConfig() Config {
	return Config{
		OutputDir:        "../../deploy",
		DashboardEnabled: true,
		RulesEnabled:     true,
		DailyBudget:      panels.UpstreamDailyBudget,
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
	if c.DailyBudget < 0 {
		return errors.New("daily budget must not be negative")
	}
	return nil
}
