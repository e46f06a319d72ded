package panels

import (
	"github.com/grafana/grafana-foundation-sdk/go/common"
	"github.com/grafana/grafana-foundation-sdk/go/stat"
	"github.com/grafana/grafana-foundation-sdk/go/timeseries"
)

// ServerRequestRate returns a timeseries panel showing mirror API requests
// per second by route.
func ServerRequestRate() *timeseries.PanelBuilder {
	return timeseries.NewPanelBuilder().
		Title("Mirror API Requests").
		Description("Requests per second served by the mirror API, by route template").
		Datasource(DSRef()).
		Height(TSHeight).
		Span(TSWidth).
		WithTarget(PromQuery(`sum by (path) (satsearch:http_requests:rate5m)`, "{{path}}", "A")).
		Unit("reqps").
		FillOpacity(10).
		LineWidth(2).
		Legend(TableLegend("mean", "max")).
		Tooltip(MultiTooltip()).
		Thresholds(ThresholdsGreenOnly()).
		ColorScheme(ColorSchemePaletteClassic()).
		DrawStyle(common.GraphDrawStyleLine)
}

// ServerLatency returns a timeseries panel showing p95 mirror API latency
// by route.
func ServerLatency() *timeseries.PanelBuilder {
	return timeseries.NewPanelBuilder().
		Title("Mirror API Latency p95").
		Description("95th percentile mirror API response time by route template").
		Datasource(DSRef()).
		Height(TSHeight).
		Span(TSWidth).
		WithTarget(PromQuery(
			Quantile(0.95, "satsearch_http_request_duration_seconds", "5m", "path"),
			"{{path}}",
			"A",
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

// ServerErrors returns a stat panel showing 5xx responses from the mirror
// API in the past hour.
func ServerErrors() *stat.PanelBuilder {
	return stat.NewPanelBuilder().
		Title("Mirror API 5xx (1h)").
		Description("Server errors returned by the mirror API in the last hour").
		Datasource(DSRef()).
		Height(TSHeight).
		Span(TSWidth).
		WithTarget(PromQuery(
			`sum(increase(satsearch_http_requests_total{job="satsearch-mirror",status=~"5.."}[1h]))`,
			"", "A",
		)).
		Thresholds(ThresholdsGreenYellowRed(1, 10)).
		ColorScheme(ColorSchemeThresholds()).
		ColorMode(common.BigValueColorModeBackground).
		GraphMode(common.BigValueGraphModeArea)
}

// ReadyStat returns a stat panel showing whether the mirror database was
// reachable at the last readiness probe.
func ReadyStat() *stat.PanelBuilder {
	return stat.NewPanelBuilder().
		Title("Ready").
		Description("1 when the last /readyz probe reached the mirror database").
		Datasource(DSRef()).
		Height(TSHeight).
		Span(TSWidth).
		WithTarget(PromQuery(`satsearch_readyz_up{job="satsearch-mirror"}`, "", "A")).
		Thresholds(ThresholdsRedGreen(1)).
		ColorScheme(ColorSchemeThresholds()).
		ColorMode(common.BigValueColorModeBackground).
		GraphMode(common.BigValueGraphModeNone)
}
