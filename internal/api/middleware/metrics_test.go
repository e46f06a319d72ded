package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	ptestutil "github.com/prometheus/client_golang/prometheus/testutil"
	io_prometheus_client "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	mw "github.com/donaldgifford/satsearch-go/internal/api/middleware"
	"github.com/donaldgifford/satsearch-go/internal/metrics"
)

func TestMetricsMiddleware(t *testing.T) {
	tests := []struct {
		name       string
		method     string
		route      string
		target     string
		handler    echo.HandlerFunc
		wantStatus int
	}{
		{
			name:   "records 200 response",
			method: http.MethodGet,
			route:  "/api/v1/suppliers",
			target: "/api/v1/suppliers",
			handler: func(c echo.Context) error {
				return c.JSON(http.StatusOK, []string{})
			},
			wantStatus: http.StatusOK,
		},
		{
			name:   "labels by route template",
			method: http.MethodGet,
			route:  "/api/v1/suppliers/:id",
			target: "/api/v1/suppliers/6d706383-2b27-5942-9c55-385f4e425ff6",
			handler: func(c echo.Context) error {
				return c.NoContent(http.StatusNotFound)
			},
			wantStatus: http.StatusNotFound,
		},
		{
			name:   "records returned error status",
			method: http.MethodPost,
			route:  "/api/v1/sync",
			target: "/api/v1/sync",
			handler: func(_ echo.Context) error {
				return echo.NewHTTPError(http.StatusConflict, "sync already running")
			},
			wantStatus: http.StatusConflict,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := echo.New()
			e.Use(mw.Metrics())
			e.Add(tt.method, tt.route, tt.handler)

			req := httptest.NewRequest(tt.method, tt.target, http.NoBody)
			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)

			statusStr := strconv.Itoa(tt.wantStatus)

			counter, err := metrics.HTTPRequestsTotal.GetMetricWithLabelValues(
				tt.method, tt.route, statusStr,
			)
			require.NoError(t, err)

			m := &io_prometheus_client.Metric{}
			require.NoError(t, counter.Write(m))
			assert.Greater(t, m.GetCounter().GetValue(), float64(0))

			observer, err := metrics.HTTPRequestDuration.GetMetricWithLabelValues(
				tt.method, tt.route, statusStr,
			)
			require.NoError(t, err)

			hm := &io_prometheus_client.Metric{}
			require.NoError(t, observer.(prometheus.Metric).Write(hm))
			assert.Positive(t, hm.GetHistogram().GetSampleCount())
		})
	}
}

func TestMetricsMiddleware_UnmatchedRoute(t *testing.T) {
	e := echo.New()
	e.Use(mw.Metrics())

	before := ptestutil.ToFloat64(metrics.HTTPRequestsTotal.WithLabelValues(http.MethodGet, "unmatched", "404"))

	for _, p := range []string{"/nope", "/also/nope"} {
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, p, http.NoBody))
		assert.Equal(t, http.StatusNotFound, rec.Code)
	}

	after := ptestutil.ToFloat64(metrics.HTTPRequestsTotal.WithLabelValues(http.MethodGet, "unmatched", "404"))
	assert.InDelta(t, 2, after-before, 0)
}

func TestMetricsMiddleware_HealthGauges(t *testing.T) {
	ready := true

	e := echo.New()
	e.Use(mw.Metrics())
	e.GET("/readyz", func(c echo.Context) error {
		if ready {
			return c.NoContent(http.StatusOK)
		}
		return c.NoContent(http.StatusServiceUnavailable)
	})

	before := ptestutil.ToFloat64(metrics.HTTPRequestsTotal.WithLabelValues(http.MethodGet, "/readyz", "200"))

	e.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/readyz", http.NoBody))
	assert.InDelta(t, 1, ptestutil.ToFloat64(metrics.ReadyzUp), 0)

	ready = false
	e.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/readyz", http.NoBody))
	assert.InDelta(t, 0, ptestutil.ToFloat64(metrics.ReadyzUp), 0)

	after := ptestutil.ToFloat64(metrics.HTTPRequestsTotal.WithLabelValues(http.MethodGet, "/readyz", "200"))
	assert.InDelta(t, 0, after-before, 0, "probe requests must not be counted")
}
