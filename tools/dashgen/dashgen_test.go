package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/donaldgifford/satsearch-go/tools/dashgen/dashboards"
	"github.com/donaldgifford/satsearch-go/tools/dashgen/rules"
	"github.com/donaldgifford/satsearch-go/tools/dashgen/validate"
)

func TestDefaultConfigValid(t *testing.T) {
	t.Parallel()
	cfg := DefaultConfig()
	require.NoError(t, cfg.Validate())
}

func TestConfigValidate_EmptyOutputDir(t *testing.T) {
	t.Parallel()
	cfg := Config{OutputDir: "", DashboardEnabled: true}
	assert.Error(t, cfg.Validate())
}

func TestConfigValidate_NothingEnabled(t *testing.T) {
	t.Parallel()
	cfg := Config{OutputDir: "/tmp", DashboardEnabled: false, RulesEnabled: false}
	assert.Error(t, cfg.Validate())
}

func TestBuildOverviewDashboard(t *testing.T) {
	t.Parallel()

	builder := dashboards.BuildOverview()
	dash, err := builder.Build()
	require.NoError(t, err)

	require.NotNil(t, dash.Uid)
	assert.Equal(t, "satsearch-overview", *dash.Uid)

	require.NotNil(t, dash.Title)
	assert.Equal(t, "SatSearch Overview", *dash.Title)

	require.NotNil(t, dash.Templating)
	assert.Len(t, dash.Templating.List, 1)
	assert.Equal(t, "datasource", dash.Templating.List[0].Name)

	assert.Len(t, dash.Panels, 5)

	totalPanels := 0
	for _, p := range dash.Panels {
		if p.RowPanel != nil {
			totalPanels += len(p.RowPanel.Panels)
		}
	}
	assert.Equal(t, 19, totalPanels)

	result := validate.Dashboard(dash, KnownMetrics)
	assert.True(t, result.Ok(), "validation errors: %v", result.Errors)
	assert.Empty(t, result.Warnings, "unexpected warnings: %v", result.Warnings)
}

func TestRecordingRules(t *testing.T) {
	t.Parallel()

	cr := rules.RecordingRules()
	assert.Equal(t, "monitoring.coreos.com/v1", cr.APIVersion)
	assert.Equal(t, "PrometheusRule", cr.Kind)
	assert.Equal(t, "satsearch-recording-rules", cr.Metadata.Name)

	require.Len(t, cr.Spec.Groups, 1)
	group := cr.Spec.Groups[0]
	assert.Equal(t, "satsearch-recording", group.Name)

	expectedRecords := []string{
		"satsearch:api_requests:rate5m",
		"satsearch:api_errors:rate5m",
		"satsearch:entity_cache_lookups:rate5m",
		"satsearch:mirror_records_upserted:rate5m",
		"satsearch:http_requests:rate5m",
	}
	require.Len(t, group.Rules, len(expectedRecords))
	for i, rule := range group.Rules {
		assert.Equal(t, expectedRecords[i], rule.Record)
		assert.True(t, KnownMetrics[rule.Record], "%s missing from KnownMetrics", rule.Record)
	}

	result := validate.Rules(cr, KnownMetrics)
	assert.True(t, result.Ok(), "validation errors: %v", result.Errors)

	data, err := yaml.Marshal(cr)
	require.NoError(t, err)
	assert.Contains(t, string(data), "apiVersion: monitoring.coreos.com/v1")
}

func TestAlertRules(t *testing.T) {
	t.Parallel()

	cr := rules.AlertRules()
	assert.Equal(t, "monitoring.coreos.com/v1", cr.APIVersion)
	assert.Equal(t, "PrometheusRule", cr.Kind)
	assert.Equal(t, "satsearch-alerts", cr.Metadata.Name)

	require.Len(t, cr.Spec.Groups, 1)
	group := cr.Spec.Groups[0]
	assert.Equal(t, "satsearch-alerts", group.Name)

	expectedAlerts := []string{
		"SatsearchMirrorDown",
		"SatsearchHighAPIErrorRate",
		"SatsearchAPIUnauthorized",
		"SatsearchMirrorSyncFailing",
		"SatsearchMirrorStale",
		"SatsearchMirrorNotReady",
	}
	require.Len(t, group.Rules, len(expectedAlerts))
	for i, rule := range group.Rules {
		assert.Equal(t, expectedAlerts[i], rule.Alert)
		assert.NotEmpty(t, rule.Labels["severity"], "alert %s missing severity", rule.Alert)
		assert.NotEmpty(t, rule.Annotations["summary"], "alert %s missing summary", rule.Alert)
		assert.NotEmpty(t, rule.Annotations["description"], "alert %s missing description", rule.Alert)
	}

	result := validate.Rules(cr, KnownMetrics)
	assert.True(t, result.Ok(), "validation errors: %v", result.Errors)
}

func TestRun_WritesArtifacts(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	cfg := Config{OutputDir: dir, DashboardEnabled: true, RulesEnabled: true}
	require.NoError(t, run(cfg, false))

	for _, rel := range []string{
		filepath.Join("grafana", "data", "satsearch-overview.json"),
		filepath.Join("prometheus", "satsearch-recording-rules.yaml"),
		filepath.Join("prometheus", "satsearch-alerts.yaml"),
		filepath.Join("prometheus", "satsearch-rules.yaml"),
	} {
		data, err := os.ReadFile(filepath.Join(dir, rel))
		require.NoError(t, err, "missing %s", rel)
		assert.NotEmpty(t, data)
	}

	plain, err := os.ReadFile(filepath.Join(dir, "prometheus", "satsearch-rules.yaml"))
	require.NoError(t, err)
	var rf rules.RuleFile
	require.NoError(t, yaml.Unmarshal(plain, &rf))
	assert.Len(t, rf.Groups, 2)
}

func TestRun_ValidateOnlyWritesNothing(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	cfg := Config{OutputDir: dir, DashboardEnabled: true, RulesEnabled: true}
	require.NoError(t, run(cfg, true))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestGenerate_DashboardOnly(t *testing.T) {
	t.Parallel()

	files, res, err := generate(Config{OutputDir: "out", DashboardEnabled: true})
	require.NoError(t, err)
	assert.True(t, res.Ok())
	require.Len(t, files, 1)
	assert.Equal(t, filepath.Join("grafana", "data", "satsearch-overview.json"), files[0].path)
}
