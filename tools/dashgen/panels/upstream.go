package panels

import (
	"fmt"

	"github.com/grafana/grafana-foundation-sdk/go/common"
	"github.com/grafana/grafana-foundation-sdk/go/stat"
	"github.com/grafana/grafana-foundation-sdk/go/timeseries"
)

// UpstreamCallsRate returns a timeseries panel showing upstream call rate
// by operation and outcome.
func UpstreamCallsRate() *timeseries.PanelBuilder {
	return timeseries.NewPanelBuilder().
		Title("Upstream Calls").
		Description("Upstream catalog API calls per second by operation and outcome").
		Datasource(DSRef()).
		Height(TSHeight).
		Span(8).
		WithTarget(PromQuery(`catalog:upstream_calls:rate5m`, "{{op}} {{outcome}}", "A")).
		Unit("reqps").
		FillOpacity(10).
		LineWidth(2).
		Legend(TableLegend("mean", "max")).
		Tooltip(MultiTooltip()).
		Thresholds(ThresholdsGreenOnly()).
		ColorScheme(ColorSchemePaletteClassic()).
		DrawStyle(common.GraphDrawStyleLine)
}

// UpstreamLatency returns a timeseries panel showing p95 upstream call
// duration per operation.
func UpstreamLatency() *timeseries.PanelBuilder {
	return timeseries.NewPanelBuilder().
		Title("Upstream Latency p95").
		Description("95th percentile upstream call duration by operation").
		Datasource(DSRef()).
		Height(TSHeight).
		Span(8).
		WithTarget(PromQuery(
			`histogram_quantile(0.95, sum by (le, op) (rate(catalog_upstream_call_duration_seconds_bucket{`+JobSelector()+`}[5m])))`,
			"{{op}}", "A",
		)).
		Unit("s").
		FillOpacity(10).
		LineWidth(2).
		Thresholds(ThresholdsGreenOnly()).
		ColorScheme(ColorSchemePaletteClassic()).
		DrawStyle(common.GraphDrawStyleLine)
}

// BreakerState returns a stat panel showing each circuit breaker's state.
func BreakerState() *stat.PanelBuilder {
	return stat.NewPanelBuilder().
		Title("Circuit Breaker").
		Description("Upstream breaker state (0 = closed, 1 = half-open, 2 = open)").
		Datasource(DSRef()).
		Height(TSHeight).
		Span(8).
		WithTarget(PromQuery(`max by (name) (catalog_upstream_breaker_state{`+JobSelector()+`})`, "{{name}}", "A")).
		Thresholds(ThresholdsBreaker()).
		ColorScheme(ColorSchemeThresholds()).
		ColorMode(common.BigValueColorModeBackground).
		GraphMode(common.BigValueGraphModeArea)
}

// DailyUsage returns a timeseries panel showing rolling 24h upstream usage
// against the daily budget.
func DailyUsage() *timeseries.PanelBuilder {
	return timeseries.NewPanelBuilder().
		Title("Daily Usage vs Budget").
		Description(fmt.Sprintf("Rolling 24h upstream call count (budget: %d)", UpstreamDailyBudget)).
		Datasource(DSRef()).
		Height(TSHeight).
		Span(TSWidth).
		WithTarget(PromQuery(`catalog_upstream_daily_usage{`+JobSelector()+`}`, "usage", "A")).
		FillOpacity(10).
		LineWidth(2).
		Thresholds(ThresholdsGreenYellowRed(float64(UpstreamDailyBudget)*0.8, float64(UpstreamDailyBudget))).
		ColorScheme(ColorSchemeThresholds()).
		DrawStyle(common.GraphDrawStyleLine)
}

// BudgetExhaustions returns a stat panel counting how often the daily
// budget ran out in the past 24 hours.
func BudgetExhaustions() *stat.PanelBuilder {
	return stat.NewPanelBuilder().
		Title("Budget Exhaustions (24h)").
		Description("Times the daily upstream budget was reached in the last 24 hours").
		Datasource(DSRef()).
		Height(TSHeight).
		Span(TSWidth).
		WithTarget(PromQuery(`increase(catalog_upstream_daily_limit_hits_total{`+JobSelector()+`}[24h])`, "", "A")).
		Thresholds(ThresholdsGreenYellowRed(1, 3)).
		ColorScheme(ColorSchemeThresholds()).
		ColorMode(common.BigValueColorModeBackground).
		GraphMode(common.BigValueGraphModeArea)
}
