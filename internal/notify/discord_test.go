package notify

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	ptestutil "github.com/prometheus/client_golang/prometheus/testutil"
	dto "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/donaldgifford/satsearch-go/internal/metrics"
	"github.com/donaldgifford/satsearch-go/internal/ratelimit"
)

func testEvent(kind string) *SyncEvent {
	return &SyncEvent{
		Kind:           kind,
		SyncID:         "0f8fad5b-d9cb-469f-a165-70867728950e",
		StartedAt:      time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC),
		Duration:       1500 * time.Millisecond,
		Failures:       2,
		Suppliers:      3,
		Categories:     4,
		AttributeTypes: 2,
		Error:          "fetching suppliers: status 503",
	}
}

func fieldMap(embed discordEmbed) map[string]string {
	fields := make(map[string]string, len(embed.Fields))
	for _, f := range embed.Fields {
		fields[f.Name] = f.Value
	}
	return fields
}

func TestDiscordNotifier_Notify(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		event      *SyncEvent
		statusCode int
		wantErr    bool
		errMsg     string
		wantColor  int
		wantTitle  string
	}{
		{
			name:       "failure sends red embed",
			event:      testEvent(EventSyncFailed),
			statusCode: http.StatusNoContent,
			wantColor:  colorRed,
			wantTitle:  "Catalog mirror sync failed",
		},
		{
			name:       "recovery sends green embed",
			event:      testEvent(EventSyncRecovered),
			statusCode: http.StatusNoContent,
			wantColor:  colorGreen,
			wantTitle:  "Catalog mirror sync recovered",
		},
		{
			name:       "discord returns 429 rate limited",
			event:      testEvent(EventSyncFailed),
			statusCode: http.StatusTooManyRequests,
			wantErr:    true,
			errMsg:     "rate limited",
		},
		{
			name:       "discord returns 400 error",
			event:      testEvent(EventSyncFailed),
			statusCode: http.StatusBadRequest,
			wantErr:    true,
			errMsg:     "discord returned 400",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var received discordWebhookPayload

			srv := httptest.NewServer(
				http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
					assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
					assert.Equal(t, http.MethodPost, r.Method)

					err := json.NewDecoder(r.Body).Decode(&received)
					assert.NoError(t, err)

					w.WriteHeader(tt.statusCode)
				}),
			)
			defer srv.Close()

			d := NewDiscordNotifier(srv.URL)
			err := d.Notify(context.Background(), tt.event)

			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errMsg)
				return
			}

			require.NoError(t, err)
			require.Len(t, received.Embeds, 1)

			embed := received.Embeds[0]
			assert.Equal(t, tt.wantColor, embed.Color)
			assert.Equal(t, tt.wantTitle, embed.Title)
			assert.Equal(t, "2024-03-01T12:00:00Z", embed.Timestamp)

			fields := fieldMap(embed)
			assert.Equal(t, tt.event.SyncID, fields["Sync ID"])
			assert.Equal(t, "1.5s", fields["Duration"])
		})
	}
}

func TestBuildEmbed(t *testing.T) {
	t.Parallel()

	t.Run("failure carries the error and streak", func(t *testing.T) {
		t.Parallel()

		embed := buildEmbed(testEvent(EventSyncFailed))
		assert.Equal(t, "fetching suppliers: status 503", embed.Description)
		assert.Equal(t, "2", fieldMap(embed)["Failures In A Row"])
	})

	t.Run("recovery carries record counts", func(t *testing.T) {
		t.Parallel()

		embed := buildEmbed(testEvent(EventSyncRecovered))
		assert.Equal(t, "Sync succeeded after 2 failed syncs.", embed.Description)
		fields := fieldMap(embed)
		assert.Equal(t, "3", fields["Suppliers"])
		assert.Equal(t, "4", fields["Categories"])
		assert.Equal(t, "2", fields["Attribute Types"])
	})

	t.Run("single failure is singular", func(t *testing.T) {
		t.Parallel()

		event := testEvent(EventSyncRecovered)
		event.Failures = 1
		assert.Equal(t, "Sync succeeded after 1 failed sync.", buildEmbed(event).Description)
	})

	t.Run("long error is truncated", func(t *testing.T) {
		t.Parallel()

		event := testEvent(EventSyncFailed)
		event.Error = strings.Repeat("x", 5000)
		embed := buildEmbed(event)
		assert.Len(t, embed.Description, maxDescription)
		assert.True(t, strings.HasSuffix(embed.Description, "..."))
	})
}

func TestDiscordNotifier_NetworkError(t *testing.T) {
	t.Parallel()

	d := NewDiscordNotifier("http://127.0.0.1:1") // nothing listening
	err := d.Notify(context.Background(), testEvent(EventSyncFailed))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "sending discord webhook")
}

func TestDiscordNotifier_InvalidWebhookURL(t *testing.T) {
	t.Parallel()

	d := NewDiscordNotifier("://not-a-valid-url")
	err := d.Notify(context.Background(), testEvent(EventSyncFailed))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "creating discord request")
}

func TestWithHTTPClient(t *testing.T) {
	t.Parallel()

	custom := &http.Client{}
	d := NewDiscordNotifier("https://example.com", WithHTTPClient(custom))
	assert.Same(t, custom, d.client)
}

func TestDiscordNotifier_Throttled(t *testing.T) {
	t.Parallel()

	var posts int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		posts++
		w.WriteHeader(http.StatusNoContent)
	}))
	t.Cleanup(srv.Close)

	limiter := ratelimit.New(100, 1, 1)
	n := NewDiscordNotifier(srv.URL, WithHTTPClient(&http.Client{
		Transport: ratelimit.NewTransport(nil, limiter),
	}))

	require.NoError(t, n.Notify(context.Background(), testEvent(EventSyncFailed)))

	err := n.Notify(context.Background(), testEvent(EventSyncFailed))
	require.ErrorIs(t, err, ratelimit.ErrDailyLimitReached)
	assert.Equal(t, 1, posts)
}

func notificationSampleCount() uint64 {
	ch := make(chan prometheus.Metric, 1)
	metrics.NotificationDuration.Collect(ch)
	m := <-ch
	pb := &dto.Metric{}
	_ = m.Write(pb)
	return pb.GetHistogram().GetSampleCount()
}

func TestNotify_RecordsMetrics(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	sent := metrics.NotificationsTotal.WithLabelValues(EventSyncRecovered, "sent")
	before := ptestutil.ToFloat64(sent)
	beforeObs := notificationSampleCount()

	d := NewDiscordNotifier(srv.URL)
	require.NoError(t, d.Notify(context.Background(), testEvent(EventSyncRecovered)))

	assert.InDelta(t, before+1, ptestutil.ToFloat64(sent), 0.001)
	assert.Greater(t, notificationSampleCount(), beforeObs)
}
