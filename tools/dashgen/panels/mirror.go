package panels

import (
	"github.com/grafana/grafana-foundation-sdk/go/common"
	"github.com/grafana/grafana-foundation-sdk/go/stat"
	"github.com/grafana/grafana-foundation-sdk/go/timeseries"
)

// SyncsByStatus returns a stat panel showing mirror syncs in the past 24
// hours by status.
func SyncsByStatus() *stat.PanelBuilder {
	return stat.NewPanelBuilder().
		Title("Syncs (24h)").
		Description("Catalog mirror syncs in the last 24 hours by status").
		Datasource(DSRef()).
		Height(TSHeight).
		Span(8).
		WithTarget(PromQuery(
			`sum(increase(satsearch_mirror_syncs_total{job="satsearch-mirror"}[24h])) by (status)`,
			"{{status}}", "A",
		)).
		Thresholds(ThresholdsGreenOnly()).
		ColorScheme(ColorSchemePaletteClassic()).
		GraphMode(common.BigValueGraphModeArea)
}

// RecordsUpserted returns a timeseries panel showing records written to the
// mirror per minute by kind.
func RecordsUpserted() *timeseries.PanelBuilder {
	return timeseries.NewPanelBuilder().
		Title("Records / min").
		Description("Suppliers, categories and attribute types written to the mirror per minute").
		Datasource(DSRef()).
		Height(TSHeight).
		Span(8).
		WithTarget(PromQuery(`satsearch:mirror_records_upserted:rate5m * 60`, "{{kind}}", "A")).
		FillOpacity(10).
		LineWidth(2).
		Legend(TableLegend("max", "lastNotNull")).
		Thresholds(ThresholdsGreenOnly()).
		ColorScheme(ColorSchemePaletteClassic()).
		DrawStyle(common.GraphDrawStyleLine)
}

// FailedSyncs returns a stat panel showing failed syncs in the past 24
// hours.
func FailedSyncs() *stat.PanelBuilder {
	return stat.NewPanelBuilder().
		Title("Failed Syncs (24h)").
		Description("Catalog mirror syncs that aborted in the last 24 hours").
		Datasource(DSRef()).
		Height(TSHeight).
		Span(8).
		WithTarget(PromQuery(
			`sum(increase(satsearch_mirror_syncs_total{job="satsearch-mirror",status="failed"}[24h]))`,
			"", "A",
		)).
		Thresholds(ThresholdsGreenYellowRed(1, 3)).
		ColorScheme(ColorSchemeThresholds()).
		ColorMode(common.BigValueColorModeBackground).
		GraphMode(common.BigValueGraphModeArea)
}

// SyncDuration returns a timeseries panel showing p50 and p95 mirror sync
// durations.
func SyncDuration() *timeseries.PanelBuilder {
	return timeseries.NewPanelBuilder().
		Title("Sync Duration").
		Description("Catalog mirror sync duration percentiles").
		Datasource(DSRef()).
		Height(TSHeight).
		Span(FullWidth).
		WithTarget(PromQuery(
			Quantile(0.5, "satsearch_mirror_sync_duration_seconds", "1h"),
			"p50",
			"A",
		)).
		WithTarget(PromQuery(
			Quantile(0.95, "satsearch_mirror_sync_duration_seconds", "1h"),
			"p95",
			"B",
		)).
		Unit("s").
		FillOpacity(10).
		LineWidth(2).
		Tooltip(MultiTooltip()).
		Thresholds(ThresholdsGreenYellowRed(300, 600)).
		ColorScheme(ColorSchemePaletteClassic()).
		DrawStyle(common.GraphDrawStyleLine)
}
