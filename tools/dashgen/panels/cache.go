package panels

import (
	"github.com/grafana/grafana-foundation-sdk/go/common"
	"github.com/grafana/grafana-foundation-sdk/go/gauge"
	"github.com/grafana/grafana-foundation-sdk/go/stat"
	"github.com/grafana/grafana-foundation-sdk/go/timeseries"
)

// EntityCacheHitRatio returns a gauge panel showing the share of entity
// lookups served from cache.
func EntityCacheHitRatio() *gauge.PanelBuilder {
	return gauge.NewPanelBuilder().
		Title("Entity Cache Hit %").
		Description("Supplier and product lookups served from the entity cache").
		Datasource(DSRef()).
		Height(TSHeight).
		Span(8).
		WithTarget(PromQuery(
			`sum(rate(satsearch_entity_cache_hits_total{job="satsearch-mirror"}[5m])) / satsearch:entity_cache_lookups:rate5m * 100`,
			"", "A",
		)).
		Unit("percent").
		Min(0).
		Max(100).
		Thresholds(ThresholdsRedGreen(50)).
		ColorScheme(ColorSchemeThresholds())
}

// CacheLookups returns a timeseries panel showing entity cache hits and
// misses per second.
func CacheLookups() *timeseries.PanelBuilder {
	return timeseries.NewPanelBuilder().
		Title("Entity Cache Lookups").
		Description("Entity cache hits and misses per second").
		Datasource(DSRef()).
		Height(TSHeight).
		Span(8).
		WithTarget(PromQuery(`sum(rate(satsearch_entity_cache_hits_total{job="satsearch-mirror"}[5m]))`, "hits", "A")).
		WithTarget(PromQuery(`sum(rate(satsearch_entity_cache_misses_total{job="satsearch-mirror"}[5m]))`, "misses", "B")).
		Unit("ops").
		FillOpacity(10).
		LineWidth(2).
		Tooltip(MultiTooltip()).
		Thresholds(ThresholdsGreenOnly()).
		ColorScheme(ColorSchemePaletteClassic()).
		DrawStyle(common.GraphDrawStyleLine)
}

// ClientCacheEntries returns a stat panel showing how many per-credential
// API clients exist.
func ClientCacheEntries() *stat.PanelBuilder {
	return stat.NewPanelBuilder().
		Title("API Clients").
		Description("Per-credential API clients held by the client cache").
		Datasource(DSRef()).
		Height(TSHeight).
		Span(8).
		WithTarget(PromQuery(`max(satsearch_client_cache_entries{job="satsearch-mirror"})`, "", "A")).
		Thresholds(ThresholdsGreenOnly()).
		ColorScheme(ColorSchemeThresholds()).
		GraphMode(common.BigValueGraphModeArea)
}
