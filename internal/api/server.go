// Package api assembles the HTTP server of the catalog mirror: health
// probes, Prometheus metrics, the status page and the read-only mirror API.
package api

import (
	"log/slog"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humaecho"
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.opentelemetry.io/otel/trace"

	"github.com/donaldgifford/satsearch-go/api/openapi"
	"github.com/donaldgifford/satsearch-go/internal/api/handlers"
	"github.com/donaldgifford/satsearch-go/internal/api/middleware"
	"github.com/donaldgifford/satsearch-go/internal/mirror"
	"github.com/donaldgifford/satsearch-go/internal/telemetry"
)

// Title is the OpenAPI title of the mirror API.
const Title = "SatSearch Mirror API"

// Options configures NewServer.
type Options struct {
	Store mirror.Store
	// Trigger enables POST /api/v1/sync when non-nil.
	Trigger     handlers.SyncTrigger
	Logger      *slog.Logger
	MetricsPath string
	Version     string
	// TracerProvider defaults to the global provider.
	TracerProvider trace.TracerProvider
}

// NewServer returns an Echo instance with every mirror route registered.
// The caller starts and shuts it down.
func NewServer(opts Options) *echo.Echo {
	if opts.MetricsPath == "" {
		opts.MetricsPath = "/metrics"
	}
	if opts.Version == "" {
		opts.Version = "dev"
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	// Recovery sits innermost so a panic still reaches the log and metrics.
	e.Use(
		echo.WrapMiddleware(otelhttp.NewMiddleware(telemetry.ServiceName, otelOptions(opts)...)),
		middleware.SpanRoute(),
		middleware.RequestLog(opts.Logger),
		middleware.Metrics(),
		middleware.Recovery(opts.Logger),
	)

	health := handlers.NewHealthHandler(opts.Store)
	e.GET("/healthz", health.Healthz)
	e.GET("/readyz", health.Readyz)
	e.GET(opts.MetricsPath, echo.WrapHandler(promhttp.Handler()))
	e.GET("/status", handlers.NewStatusPageHandler(opts.Store, opts.Version, opts.MetricsPath).StatusPage)

	cfg := huma.DefaultConfig(Title, opts.Version)
	cfg.Info.Description = "Read-only access to the local SatSearch catalog mirror."
	humaAPI := humaecho.New(e, cfg)
	openapi.RegisterRoutes(e, Title, openapi.DefaultSpecURL)

	handlers.RegisterSupplierRoutes(humaAPI, handlers.NewSuppliersHandler(opts.Store))
	handlers.RegisterCatalogRoutes(humaAPI, handlers.NewCatalogHandler(opts.Store))
	handlers.RegisterSyncRoutes(humaAPI, handlers.NewSyncHandler(opts.Store, opts.Trigger))

	return e
}

func otelOptions(opts Options) []otelhttp.Option {
	o := []otelhttp.Option{
		// Probes and scrapes would drown out API traffic.
		otelhttp.WithFilter(func(r *http.Request) bool {
			switch r.URL.Path {
			case "/healthz", "/readyz", opts.MetricsPath:
				return false
			}
			return true
		}),
	}
	if opts.TracerProvider != nil {
		o = append(o, otelhttp.WithTracerProvider(opts.TracerProvider))
	}
	return o
}
