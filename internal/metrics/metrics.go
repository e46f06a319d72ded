// Package metrics defines Prometheus metrics for the SatSearch SDK, the
// catalog mirror and its HTTP API.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "satsearch"

// HTTP server metrics.
var (
	HTTPRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "http_request_duration_seconds",
		Help:      "Duration of HTTP requests in seconds.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"method", "path", "status"})

	HTTPRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "http_requests_total",
		Help:      "Total number of HTTP requests.",
	}, []string{"method", "path", "status"})

	HealthzUp = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "healthz_up",
		Help:      "Whether the last liveness probe succeeded (1) or failed (0).",
	})

	ReadyzUp = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "readyz_up",
		Help:      "Whether the last readiness probe succeeded (1) or failed (0).",
	})
)

// API client metrics.
var (
	APIRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "api_requests_total",
		Help:      "Total number of SatSearch API requests by resource and outcome.",
	}, []string{"resource", "outcome"})

	APIRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "api_request_duration_seconds",
		Help:      "Duration of SatSearch API requests in seconds, including decoding.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"resource"})
)

// Cache metrics.
var (
	ClientCacheEntries = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "client_cache_entries",
		Help:      "Number of per-credential API clients built.",
	})

	EntityCacheHitsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "entity_cache_hits_total",
		Help:      "Total number of entity lookups served from cache.",
	})

	EntityCacheMissesTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "entity_cache_misses_total",
		Help:      "Total number of entity lookups that required a fetch.",
	})
)

// Mirror metrics.
var (
	MirrorSyncsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "mirror_syncs_total",
		Help:      "Total number of catalog mirror syncs by status.",
	}, []string{"status"})

	MirrorSyncDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "mirror_sync_duration_seconds",
		Help:      "Duration of catalog mirror syncs in seconds.",
		Buckets:   []float64{1, 5, 10, 30, 60, 120, 300, 600},
	})

	MirrorRecordsUpserted = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "mirror_records_upserted_total",
		Help:      "Total number of records written to the catalog mirror by kind.",
	}, []string{"kind"})

	MirrorLastSuccessTimestamp = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "mirror_last_success_timestamp_seconds",
		Help:      "Unix timestamp of the last successful catalog mirror sync.",
	})

	MirrorNextSyncTimestamp = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "mirror_next_sync_timestamp_seconds",
		Help:      "Unix timestamp of the next scheduled catalog mirror sync.",
	})
)

// Notification metrics.
var (
	NotificationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "notifications_total",
		Help:      "Total number of mirror sync notifications by event and outcome.",
	}, []string{"event", "outcome"})

	NotificationDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "notification_duration_seconds",
		Help:      "Duration of notification webhook calls in seconds.",
		Buckets:   prometheus.DefBuckets,
	})
)
