package middleware

import (
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const (
	requestIDHeader = "X-Request-ID"
	requestIDKey    = "request_id"
)

// RequestLog returns Echo middleware that logs requests with structured fields.
// It generates a request ID if none is provided and propagates it through
// the response header and echo context.
//
// Probe paths log their first success and every failure; repeated successes
// are suppressed until the next failure. Responses with status >= 500 log at
// warn.
func RequestLog(log *slog.Logger) echo.MiddlewareFunc {
	var (
		mu      sync.Mutex
		probeOK = map[string]bool{}
	)

	// shouldLog reports whether a probe response needs logging and records
	// its outcome.
	shouldLog := func(path string, ok bool) bool {
		mu.Lock()
		defer mu.Unlock()
		wasOK := probeOK[path]
		probeOK[path] = ok
		return !ok || !wasOK
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()

			reqID := c.Request().Header.Get(requestIDHeader)
			if reqID == "" {
				reqID = uuid.NewString()
			}

			c.Set(requestIDKey, reqID)
			c.Response().Header().Set(requestIDHeader, reqID)

			err := next(c)

			path := c.Request().URL.Path
			status := c.Response().Status
			failed := status >= http.StatusBadRequest

			if isProbe(path) && !shouldLog(path, !failed) {
				return err
			}

			level := slog.LevelInfo
			if status >= http.StatusInternalServerError || (failed && isProbe(path)) {
				level = slog.LevelWarn
			}

			log.LogAttrs(c.Request().Context(), level, "request",
				slog.String("method", c.Request().Method),
				slog.String("path", path),
				slog.Int("status", status),
				slog.Int64("duration_ms", time.Since(start).Milliseconds()),
				slog.String("request_id", reqID),
			)

			return err
		}
	}
}

// RequestID returns the request ID set by RequestLog, or "".
func RequestID(c echo.Context) string {
	id, _ := c.Get(requestIDKey).(string)
	return id
}
