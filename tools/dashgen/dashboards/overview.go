// Package dashboards assembles Grafana dashboard definitions from panel builders.
package dashboards

import (
	"github.com/grafana/grafana-foundation-sdk/go/dashboard"

	"github.com/donaldgifford/satsearch-go/tools/dashgen/panels"
)

// UID is the dashboard uid, also used as the output file name.
const UID = "satsearch-overview"

// BuildOverview constructs the SatSearch Overview dashboard with all metric rows.
func BuildOverview() *dashboard.DashboardBuilder {
	b := dashboard.NewDashboardBuilder("SatSearch Overview").
		Uid(UID).
		Tags([]string{"satsearch", "satsearch-mirror"}).
		Refresh("1m").
		Time("now-24h", "now").
		Timezone("browser").
		Editable().
		Tooltip(dashboard.DashboardCursorSyncCrosshair).
		WithVariable(datasourceVar())

	// Row 1: Overview.
	b.WithRow(dashboard.NewRowBuilder("Overview").
		WithPanel(panels.MirrorUpStat()).
		WithPanel(panels.LastSyncStat()).
		WithPanel(panels.NextSyncStat()).
		WithPanel(panels.UptimeStat()))

	// Row 2: SatSearch API.
	b.WithRow(dashboard.NewRowBuilder("SatSearch API").
		WithPanel(panels.RequestRate()).
		WithPanel(panels.LatencyPercentiles()).
		WithPanel(panels.ErrorRate()).
		WithPanel(panels.OutcomeBreakdown()))

	// Row 3: Caches.
	b.WithRow(dashboard.NewRowBuilder("Caches").
		WithPanel(panels.EntityCacheHitRatio()).
		WithPanel(panels.CacheLookups()).
		WithPanel(panels.ClientCacheEntries()))

	// Row 4: Catalog mirror.
	b.WithRow(dashboard.NewRowBuilder("Catalog Mirror").
		WithPanel(panels.SyncsByStatus()).
		WithPanel(panels.RecordsUpserted()).
		WithPanel(panels.FailedSyncs()).
		WithPanel(panels.SyncDuration()))

	// Row 5: Mirror API.
	b.WithRow(dashboard.NewRowBuilder("Mirror API").
		WithPanel(panels.ServerRequestRate()).
		WithPanel(panels.ServerLatency()).
		WithPanel(panels.ServerErrors()).
		WithPanel(panels.ReadyStat()))

	return b
}

func datasourceVar() *dashboard.DatasourceVariableBuilder {
	return dashboard.NewDatasourceVariableBuilder("datasource").
		Label("Datasource").
		Type("prometheus")
}
