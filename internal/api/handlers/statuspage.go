package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/donaldgifford/satsearch-go/internal/api/views"
	"github.com/donaldgifford/satsearch-go/internal/mirror"
)

// StatusPageHandler serves the human-readable mirror status page.
type StatusPageHandler struct {
	store       mirror.Store
	version     string
	metricsPath string
	now         func() time.Time
}

// NewStatusPageHandler creates a new StatusPageHandler.
func NewStatusPageHandler(s mirror.Store, version, metricsPath string) *StatusPageHandler {
	return &StatusPageHandler{store: s, version: version, metricsPath: metricsPath, now: time.Now}
}

// StatusPage renders database readiness and the last sync as HTML. It
// answers 503 when the database is unreachable so it doubles as a probe.
func (h *StatusPageHandler) StatusPage(c echo.Context) error {
	ctx := c.Request().Context()

	data := views.StatusData{
		Version:     h.version,
		MetricsPath: h.metricsPath,
		Ready:       h.store.Ping(ctx) == nil,
		Now:         h.now(),
	}

	code := http.StatusOK
	if !data.Ready {
		code = http.StatusServiceUnavailable
	} else {
		last, err := h.store.LastSync(ctx)
		switch {
		case errors.Is(err, mirror.ErrNoSyncRuns):
		case err != nil:
			return echo.NewHTTPError(http.StatusInternalServerError, "loading last sync").SetInternal(err)
		default:
			data.LastSync = &views.SyncSummary{
				Status:         last.Status,
				StartedAt:      last.StartedAt,
				Duration:       last.FinishedAt.Sub(last.StartedAt),
				Suppliers:      last.Suppliers,
				Categories:     last.Categories,
				AttributeTypes: last.AttributeTypes,
				Error:          last.Error,
			}
		}
	}

	c.Response().Header().Set(echo.HeaderContentType, echo.MIMETextHTMLCharsetUTF8)
	c.Response().WriteHeader(code)
	return views.StatusPage(data).Render(ctx, c.Response())
}
