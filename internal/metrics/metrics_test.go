package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetricsRegistered(t *testing.T) {
	t.Parallel()

	// Verify all metrics are non-nil (registered via promauto on package init).
	assert.NotNil(t, APIRequestsTotal)
	assert.NotNil(t, APIRequestDuration)
	assert.NotNil(t, ClientCacheEntries)
	assert.NotNil(t, EntityCacheHitsTotal)
	assert.NotNil(t, EntityCacheMissesTotal)
	assert.NotNil(t, MirrorSyncsTotal)
	assert.NotNil(t, MirrorSyncDuration)
	assert.NotNil(t, MirrorRecordsUpserted)
	assert.NotNil(t, MirrorLastSuccessTimestamp)
	assert.NotNil(t, MirrorNextSyncTimestamp)
	assert.NotNil(t, HTTPRequestsTotal)
	assert.NotNil(t, HTTPRequestDuration)
	assert.NotNil(t, HealthzUp)
	assert.NotNil(t, ReadyzUp)
	assert.NotNil(t, NotificationsTotal)
	assert.NotNil(t, NotificationDuration)
}

func TestMetricsNamespaced(t *testing.T) {
	t.Parallel()

	// Counter vecs only appear once a label set is observed.
	APIRequestsTotal.WithLabelValues("supplier", "ok")
	MirrorSyncsTotal.WithLabelValues("succeeded")
	NotificationsTotal.WithLabelValues("sync_failed", "sent")

	families, err := prometheus.DefaultGatherer.Gather()
	require.NoError(t, err)

	names := make(map[string]bool, len(families))
	for _, f := range families {
		names[f.GetName()] = true
	}
	assert.True(t, names["satsearch_api_requests_total"])
	assert.True(t, names["satsearch_client_cache_entries"])
	assert.True(t, names["satsearch_entity_cache_hits_total"])
	assert.True(t, names["satsearch_mirror_syncs_total"])
	assert.True(t, names["satsearch_notifications_total"])
	assert.True(t, names["satsearch_readyz_up"])
}
