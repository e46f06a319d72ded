// Package panels builds the Grafana panels of the satsearch overview
// dashboard: SatSearch API traffic, entity cache, mirror syncs and the
// mirror's own HTTP server.
package panels

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/grafana/grafana-foundation-sdk/go/cog"
	"github.com/grafana/grafana-foundation-sdk/go/common"
	"github.com/grafana/grafana-foundation-sdk/go/dashboard"
	"github.com/grafana/grafana-foundation-sdk/go/prometheus"
)

// Job is the scrape job of the catalog mirror.
const Job = "satsearch-mirror"

// Grid sizes on Grafana's 24-column layout.
const (
	StatWidth  = 6
	StatHeight = 4

	TSWidth  = 12
	TSHeight = 8

	FullWidth = 24
)

// DSRef points panels at the dashboard's ${datasource} variable.
func DSRef() dashboard.DataSourceRef {
	return dashboard.DataSourceRef{
		Type: cog.ToPtr("prometheus"),
		Uid:  cog.ToPtr("${datasource}"),
	}
}

// PromQuery is one Prometheus target.
func PromQuery(expr, legendFormat, refID string) *prometheus.DataqueryBuilder {
	return prometheus.NewDataqueryBuilder().
		Expr(expr).
		LegendFormat(legendFormat).
		RefId(refID)
}

// Quantile returns the q-quantile of histogram over window for the mirror
// job, aggregated by le and the extra labels in by.
func Quantile(q float64, histogram, window string, by ...string) string {
	return fmt.Sprintf(
		`histogram_quantile(%s, sum(rate(%s_bucket{job=%q}[%s])) by (%s))`,
		strconv.FormatFloat(q, 'f', -1, 64),
		histogram,
		Job,
		window,
		strings.Join(append([]string{"le"}, by...), ", "),
	)
}

func thresholds(steps ...dashboard.Threshold) cog.Builder[dashboard.ThresholdsConfig] {
	return dashboard.NewThresholdsConfigBuilder().
		Mode(dashboard.ThresholdsModeAbsolute).
		Steps(steps)
}

func step(color string, from float64) dashboard.Threshold {
	return dashboard.Threshold{Value: cog.ToPtr(from), Color: color}
}

// ThresholdsRedGreen is red below greenAbove, for counts that should stay up.
func ThresholdsRedGreen(greenAbove float64) cog.Builder[dashboard.ThresholdsConfig] {
	return thresholds(dashboard.Threshold{Color: "red"}, step("green", greenAbove))
}

// ThresholdsGreenYellowRed is for latencies and failure counts.
func ThresholdsGreenYellowRed(yellow, red float64) cog.Builder[dashboard.ThresholdsConfig] {
	return thresholds(dashboard.Threshold{Color: "green"}, step("yellow", yellow), step("red", red))
}

// ThresholdsGreenOnly is used by panels that only show a trend.
func ThresholdsGreenOnly() cog.Builder[dashboard.ThresholdsConfig] {
	return thresholds(dashboard.Threshold{Color: "green"})
}

func ColorSchemeThresholds() cog.Builder[dashboard.FieldColor] {
	return dashboard.NewFieldColorBuilder().Mode(dashboard.FieldColorModeIdThresholds)
}

func ColorSchemePaletteClassic() cog.Builder[dashboard.FieldColor] {
	return dashboard.NewFieldColorBuilder().Mode(dashboard.FieldColorModeIdPaletteClassic)
}

// TableLegend renders the legend as a table under the graph with calcs as
// columns, e.g. "mean", "max", "lastNotNull".
func TableLegend(calcs ...string) *common.VizLegendOptionsBuilder {
	return common.NewVizLegendOptionsBuilder().
		DisplayMode(common.LegendDisplayModeTable).
		Placement(common.LegendPlacementBottom).
		Calcs(calcs)
}

// MultiTooltip lists every series, highest first.
func MultiTooltip() *common.VizTooltipOptionsBuilder {
	return common.NewVizTooltipOptionsBuilder().
		Mode(common.TooltipDisplayModeMulti).
		Sort(common.SortOrderDescending)
}
