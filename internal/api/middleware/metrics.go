package middleware

import (
	"errors"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/donaldgifford/satsearch-go/internal/metrics"
)

// healthGauges maps probe paths to their 0/1 gauge.
var healthGauges = map[string]prometheus.Gauge{
	"/healthz": metrics.HealthzUp,
	"/readyz":  metrics.ReadyzUp,
}

// Metrics returns Echo middleware that records request duration and status
// by route template. Probe paths skip the request metrics; health probes
// set their up gauge instead.
func Metrics() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			route := c.Path()
			if isProbe(route) {
				err := next(c)
				updateHealthGauge(route, c.Response().Status)
				return err
			}

			start := time.Now()
			err := next(c)
			if route == "" || errors.Is(err, echo.ErrNotFound) {
				route = unmatchedRoute
			}
			if err != nil {
				// Let echo write the error response so the status is final.
				c.Error(err)
			}

			status := strconv.Itoa(c.Response().Status)
			method := c.Request().Method

			metrics.HTTPRequestDuration.
				WithLabelValues(method, route, status).
				Observe(time.Since(start).Seconds())
			metrics.HTTPRequestsTotal.
				WithLabelValues(method, route, status).
				Inc()

			return nil
		}
	}
}

func updateHealthGauge(path string, status int) {
	gauge, ok := healthGauges[path]
	if !ok {
		return
	}
	if status >= 200 && status < 300 {
		gauge.Set(1)
	} else {
		gauge.Set(0)
	}
}
