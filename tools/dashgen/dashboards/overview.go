// Package dashboards assembles Grafana dashboard definitions from panel builders.
package dashboards

import (
	"github.com/grafana/grafana-foundation-sdk/go/dashboard"

	"github.com/donaldgifford/catalog-browser/tools/dashgen/panels"
)

// UID is the stable dashboard identifier.
const UID = "catalog-overview"

// BuildOverview constructs the Catalog Overview dashboard with all metric rows.
func BuildOverview() *dashboard.DashboardBuilder {
	b := dashboard.NewDashboardBuilder("Catalog Overview").
		Uid(UID).
		Tags([]string{"catalog", "catalogd"}).
		Refresh("30s").
		Time("now-6h", "now").
		Timezone("browser").
		Editable().
		Tooltip(dashboard.DashboardCursorSyncCrosshair).
		WithVariable(datasourceVar())

	b.WithRow(dashboard.NewRowBuilder("Overview").
		WithPanel(panels.HealthzStat()).
		WithPanel(panels.ReadyzStat()).
		WithPanel(panels.BudgetGauge()).
		WithPanel(panels.UptimeStat()))

	b.WithRow(dashboard.NewRowBuilder("HTTP").
		WithPanel(panels.RequestRate()).
		WithPanel(panels.LatencyPercentiles()).
		WithPanel(panels.RequestsByRoute()).
		WithPanel(panels.ErrorRate()))

	b.WithRow(dashboard.NewRowBuilder("Query Engine").
		WithPanel(panels.QueriesByBranch()).
		WithPanel(panels.QueryLatency()).
		WithPanel(panels.QueryErrors()).
		WithPanel(panels.CandidateSetSize()).
		WithPanel(panels.CategoriesDiscarded()))

	b.WithRow(dashboard.NewRowBuilder("Upstream").
		WithPanel(panels.UpstreamCallsRate()).
		WithPanel(panels.UpstreamLatency()).
		WithPanel(panels.BreakerState()).
		WithPanel(panels.DailyUsage()).
		WithPanel(panels.BudgetExhaustions()))

	return b
}

func datasourceVar() *dashboard.DatasourceVariableBuilder {
	return dashboard.NewDatasourceVariableBuilder("datasource").
		Label("Datasource").
		Type("prometheus")
}
