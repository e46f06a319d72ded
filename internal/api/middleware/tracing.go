package middleware

import (
	"github.com/labstack/echo/v4"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// SpanRoute renames the active request span after the matched route
// template, e.g. "GET /api/v1/suppliers/:id". The span is started before
// routing, so it only knows the raw path until this runs.
func SpanRoute() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			route := c.Path()
			if route == "" {
				route = unmatchedRoute
			}

			span := trace.SpanFromContext(c.Request().Context())
			span.SetName(c.Request().Method + " " + route)
			span.SetAttributes(attribute.String("http.route", route))

			return next(c)
		}
	}
}
