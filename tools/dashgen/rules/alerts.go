package rules

// AlertRules returns a PrometheusRule CR containing alert rules for the
// satsearch catalog mirror.
func AlertRules() PrometheusRule {
	return newPrometheusRule("satsearch-alerts", RuleGroup{
		Name: "satsearch-alerts",
		Rules: []Rule{
			{
				Alert: "SatsearchMirrorDown",
				Expr:  `absent(up{job="satsearch-mirror"})`,
				For:   "5m",
				Labels: map[string]string{
					"severity": "critical",
				},
				Annotations: map[string]string{
					"summary":     "SatSearch catalog mirror is down",
					"description": "The satsearch-mirror job has been absent for more than 5 minutes.",
				},
			},
			{
				Alert: "SatsearchHighAPIErrorRate",
				Expr:  `sum(satsearch:api_errors:rate5m) / sum(satsearch:api_requests:rate5m) > 0.05`,
				For:   "10m",
				Labels: map[string]string{
					"severity": "warning",
				},
				Annotations: map[string]string{
					"summary":     "High SatSearch API error rate",
					"description": "More than 5% of SatSearch API requests have failed over the last 10 minutes.",
				},
			},
			{
				Alert: "SatsearchAPIUnauthorized",
				Expr:  `increase(satsearch_api_requests_total{outcome="status_4xx"}[15m]) > 0`,
				For:   "0m",
				Labels: map[string]string{
					"severity": "warning",
				},
				Annotations: map[string]string{
					"summary":     "SatSearch API is rejecting requests",
					"description": "The SatSearch API returned 4xx responses. Check the configured API and application tokens.",
				},
			},
			{
				Alert: "SatsearchMirrorSyncFailing",
				Expr:  `increase(satsearch_mirror_syncs_total{status="failed"}[1h]) > 0`,
				For:   "0m",
				Labels: map[string]string{
					"severity": "warning",
				},
				Annotations: map[string]string{
					"summary":     "Catalog mirror sync failed",
					"description": "At least one catalog mirror sync failed in the last hour.",
				},
			},
			{
				Alert: "SatsearchMirrorStale",
				Expr:  `time() - satsearch_mirror_last_success_timestamp_seconds > 86400`,
				For:   "15m",
				Labels: map[string]string{
					"severity": "critical",
				},
				Annotations: map[string]string{
					"summary":     "Catalog mirror is stale",
					"description": "The catalog mirror has not completed a successful sync in more than 24 hours.",
				},
			},
			{
				Alert: "SatsearchMirrorNotReady",
				Expr:  `satsearch_readyz_up == 0`,
				For:   "5m",
				Labels: map[string]string{
					"severity": "warning",
				},
				Annotations: map[string]string{
					"summary":     "Catalog mirror API is not ready",
					"description": "The mirror API readiness probe has failed for 5 minutes. The mirror database is likely unreachable.",
				},
			},
		},
	})
}
