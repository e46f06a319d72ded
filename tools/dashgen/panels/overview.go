package panels

import (
	"github.com/grafana/grafana-foundation-sdk/go/common"
	"github.com/grafana/grafana-foundation-sdk/go/stat"
)

// MirrorUpStat returns a stat panel showing whether the mirror process is
// being scraped.
func MirrorUpStat() *stat.PanelBuilder {
	return stat.NewPanelBuilder().
		Title("Mirror Up").
		Description("Scrape status of the mirror process (1 = up, 0 = down)").
		Datasource(DSRef()).
		Height(StatHeight).
		Span(StatWidth).
		WithTarget(PromQuery(`up{job="satsearch-mirror"}`, "", "A")).
		Thresholds(ThresholdsRedGreen(1)).
		ColorScheme(ColorSchemeThresholds()).
		ColorMode(common.BigValueColorModeBackground).
		GraphMode(common.BigValueGraphModeNone).
		TextMode(common.BigValueTextModeValue)
}

// LastSyncStat returns a stat panel showing time since the last successful
// catalog sync.
func LastSyncStat() *stat.PanelBuilder {
	return stat.NewPanelBuilder().
		Title("Last Sync").
		Description("Time since the last successful catalog sync").
		Datasource(DSRef()).
		Height(StatHeight).
		Span(StatWidth).
		WithTarget(PromQuery(
			`time() - satsearch_mirror_last_success_timestamp_seconds{job="satsearch-mirror"}`,
			"", "A",
		)).
		Unit("s").
		Thresholds(ThresholdsGreenYellowRed(43200, 86400)).
		ColorScheme(ColorSchemeThresholds()).
		ColorMode(common.BigValueColorModeBackground).
		GraphMode(common.BigValueGraphModeNone)
}

// NextSyncStat returns a stat panel showing time until the next scheduled
// catalog sync.
func NextSyncStat() *stat.PanelBuilder {
	return stat.NewPanelBuilder().
		Title("Next Sync").
		Description("Time until the next scheduled catalog sync").
		Datasource(DSRef()).
		Height(StatHeight).
		Span(StatWidth).
		WithTarget(PromQuery(
			`satsearch_mirror_next_sync_timestamp_seconds{job="satsearch-mirror"} - time()`,
			"", "A",
		)).
		Unit("s").
		Thresholds(ThresholdsGreenOnly()).
		ColorScheme(ColorSchemeThresholds()).
		ColorMode(common.BigValueColorModeBackground).
		GraphMode(common.BigValueGraphModeNone)
}

// UptimeStat returns a stat panel showing process uptime.
func UptimeStat() *stat.PanelBuilder {
	return stat.NewPanelBuilder().
		Title("Uptime").
		Description("Time since process start").
		Datasource(DSRef()).
		Height(StatHeight).
		Span(StatWidth).
		WithTarget(PromQuery(
			`time() - process_start_time_seconds{job="satsearch-mirror"}`,
			"", "A",
		)).
		Unit("s").
		Thresholds(ThresholdsGreenOnly()).
		ColorScheme(ColorSchemeThresholds()).
		GraphMode(common.BigValueGraphModeNone)
}
