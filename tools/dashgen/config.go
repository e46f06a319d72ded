package main

import "errors"

// KnownMetrics is the set of metric names exported by the satsearch client
// and catalog mirror plus recording rule names referenced in dashboards and
// alerts.
var KnownMetrics = map[string]bool{
	// API client metrics.
	"satsearch_api_requests_total":           true,
	"satsearch_api_request_duration_seconds": true,

	// Cache metrics.
	"satsearch_client_cache_entries":      true,
	"satsearch_entity_cache_hits_total":   true,
	"satsearch_entity_cache_misses_total": true,

	// Mirror metrics.
	"satsearch_mirror_syncs_total":                    true,
	"satsearch_mirror_sync_duration_seconds":          true,
	"satsearch_mirror_records_upserted_total":         true,
	"satsearch_mirror_last_success_timestamp_seconds": true,
	"satsearch_mirror_next_sync_timestamp_seconds":    true,

	// Mirror API server metrics.
	"satsearch_http_requests_total":           true,
	"satsearch_http_request_duration_seconds": true,
	"satsearch_healthz_up":                    true,
	"satsearch_readyz_up":                     true,

	// Recording rules.
	"satsearch:api_requests:rate5m":            true,
	"satsearch:api_errors:rate5m":              true,
	"satsearch:entity_cache_lookups:rate5m":    true,
	"satsearch:mirror_records_upserted:rate5m": true,
	"satsearch:http_requests:rate5m":           true,

	// Standard Prometheus metrics referenced in dashboards.
	"up":                         true,
	"process_start_time_seconds": true,
}

// Config controls which artifacts the generator produces and where they go.
type Config struct {
	OutputDir        string
	DashboardEnabled bool
	RulesEnabled     bool
}

// DefaultConfig returns a Config that generates all artifacts into ../../deploy
// (relative to tools/dashgen/).
func DefaultConfig() Config {
	return Config{
		OutputDir:        "../../deploy",
		DashboardEnabled: true,
		RulesEnabled:     true,
	}
}

// Validate checks that the config is usable.
func (c Config) Validate() error {
	if c.OutputDir == "" {
		return errors.New("output directory must be set")
	}
	if !c.DashboardEnabled && !c.RulesEnabled {
		return errors.New("at least one of dashboard or rules must be enabled")
	}
	return nil
}
