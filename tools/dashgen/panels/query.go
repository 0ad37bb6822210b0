package panels

import (
	"github.com/grafana/grafana-foundation-sdk/go/bargauge"
	"github.com/grafana/grafana-foundation-sdk/go/common"
	"github.com/grafana/grafana-foundation-sdk/go/timeseries"
)

// QueriesByBranch returns a timeseries panel showing list query rate per
// routing branch.
func QueriesByBranch() *timeseries.PanelBuilder {
	return timeseries.NewPanelBuilder().
		Title("Queries by Branch").
		Description("List queries per second by routing branch (text_category, text, category, all)").
		Datasource(DSRef()).
		Height(TSHeight).
		Span(8).
		WithTarget(PromQuery(`catalog:queries:rate5m`, "{{branch}}", "A")).
		Unit("reqps").
		FillOpacity(10).
		LineWidth(2).
		Legend(TableLegend("mean", "max")).
		Tooltip(MultiTooltip()).
		Thresholds(ThresholdsGreenOnly()).
		ColorScheme(ColorSchemePaletteClassic()).
		DrawStyle(common.GraphDrawStyleLine)
}

// QueryLatency returns a timeseries panel showing p95 query duration per
// branch. The filtered branches walk the whole candidate set, so they are
// expected to sit above the delegated ones.
func QueryLatency() *timeseries.PanelBuilder {
	return timeseries.NewPanelBuilder().
		Title("Query Latency p95").
		Description("95th percentile list query duration by branch").
		Datasource(DSRef()).
		Height(TSHeight).
		Span(8).
		WithTarget(PromQuery(
			`histogram_quantile(0.95, sum by (le, branch) (rate(catalog_query_duration_seconds_bucket{`+JobSelector()+`}[5m])))`,
			"{{branch}}", "A",
		)).
		Unit("s").
		FillOpacity(10).
		LineWidth(2).
		Legend(TableLegend("mean", "max")).
		Tooltip(MultiTooltip()).
		Thresholds(ThresholdsGreenOnly()).
		ColorScheme(ColorSchemePaletteClassic()).
		DrawStyle(common.GraphDrawStyleLine)
}

// QueryErrors returns a timeseries panel showing engine errors by kind.
func QueryErrors() *timeseries.PanelBuilder {
	return timeseries.NewPanelBuilder().
		Title("Query Errors").
		Description("Engine errors per second by kind").
		Datasource(DSRef()).
		Height(TSHeight).
		Span(8).
		WithTarget(PromQuery(`catalog:query_errors:rate5m`, "{{kind}}", "A")).
		Unit("reqps").
		FillOpacity(20).
		LineWidth(1).
		Thresholds(ThresholdsGreenYellowRed(0.1, 1)).
		ColorScheme(ColorSchemePaletteClassic()).
		DrawStyle(common.GraphDrawStyleLine)
}

// CandidateSetSize returns a bar gauge panel showing the distribution of
// candidate set sizes fetched for local filtering.
func CandidateSetSize() *bargauge.PanelBuilder {
	return bargauge.NewPanelBuilder().
		Title("Candidate Set Size").
		Description("Products fetched exhaustively per filtered query").
		Datasource(DSRef()).
		Height(TSHeight).
		Span(TSWidth).
		WithTarget(PromQuery(
			`sum(increase(catalog_query_candidates_bucket{`+JobSelector()+`}[1h])) by (le)`,
			"{{le}}", "A",
		)).
		Orientation(common.VizOrientationHorizontal).
		Min(0).
		Thresholds(ThresholdsGreenOnly()).
		ColorScheme(ColorSchemePaletteClassic())
}

// CategoriesDiscarded returns a timeseries panel showing the rate at which
// raw category records are dropped during normalization.
func CategoriesDiscarded() *timeseries.PanelBuilder {
	return timeseries.NewPanelBuilder().
		Title("Categories Discarded").
		Description("Raw category records dropped as malformed, duplicate or not allow-listed").
		Datasource(DSRef()).
		Height(TSHeight).
		Span(TSWidth).
		WithTarget(PromQuery(
			`rate(catalog_categories_discarded_total{`+JobSelector()+`}[5m])`,
			"discarded/s", "A",
		)).
		FillOpacity(10).
		LineWidth(2).
		Thresholds(ThresholdsGreenOnly()).
		ColorScheme(ColorSchemePaletteClassic()).
		DrawStyle(common.GraphDrawStyleLine)
}
