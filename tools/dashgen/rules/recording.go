package rules

// RecordingRules returns a PrometheusRule CR containing pre-computed rate
// expressions used by dashboards and alert rules.
func RecordingRules() PrometheusRule {
	return newPrometheusRule("satsearch-recording-rules", RuleGroup{
		Name: "satsearch-recording",
		Rules: []Rule{
			{
				Record: "satsearch:api_requests:rate5m",
				Expr:   `sum by (resource) (rate(satsearch_api_requests_total[5m]))`,
			},
			{
				Record: "satsearch:api_errors:rate5m",
				Expr:   `sum by (resource) (rate(satsearch_api_requests_total{outcome!="ok"}[5m]))`,
			},
			{
				Record: "satsearch:entity_cache_lookups:rate5m",
				Expr:   `sum(rate(satsearch_entity_cache_hits_total[5m])) + sum(rate(satsearch_entity_cache_misses_total[5m]))`,
			},
			{
				Record: "satsearch:mirror_records_upserted:rate5m",
				Expr:   `sum by (kind) (rate(satsearch_mirror_records_upserted_total[5m]))`,
			},
			{
				Record: "satsearch:http_requests:rate5m",
				Expr:   `sum by (path, status) (rate(satsearch_http_requests_total[5m]))`,
			},
		},
	})
}
