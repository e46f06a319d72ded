// Package openapi serves Swagger UI for the mirror API. The OpenAPI 3.1
// document itself is generated at runtime by huma.
package openapi

import (
	"html"
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"
)

// DefaultSpecURL is where huma publishes the OpenAPI document.
const DefaultSpecURL = "/openapi.json"

const swaggerUIHTML = `<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="UTF-8">
  <title>{{title}}</title>
  <link rel="stylesheet" href="https://unpkg.com/swagger-ui-dist@5/swagger-ui.css">
</head>
<body>
  <div id="swagger-ui"></div>
  <script src="https://unpkg.com/swagger-ui-dist@5/swagger-ui-bundle.js"></script>
  <script>
    SwaggerUIBundle({
      url: {{specURL}},
      dom_id: "#swagger-ui",
      presets: [SwaggerUIBundle.presets.apis, SwaggerUIBundle.SwaggerUIStandalonePreset],
      layout: "BaseLayout",
    });
  </script>
</body>
</html>`

// RegisterRoutes adds the Swagger UI routes to the Echo instance. The UI
// loads the document from specURL.
func RegisterRoutes(e *echo.Echo, title, specURL string) {
	if specURL == "" {
		specURL = DefaultSpecURL
	}
	e.GET("/swagger/index.html", serveUI(title, specURL))
	e.GET("/swagger", redirectToUI)
	e.GET("/swagger/", redirectToUI)
}

func serveUI(title, specURL string) echo.HandlerFunc {
	page := strings.NewReplacer(
		"{{title}}", html.EscapeString(title),
		"{{specURL}}", strconv.Quote(specURL),
	).Replace(swaggerUIHTML)

	return func(c echo.Context) error {
		return c.HTML(http.StatusOK, page)
	}
}

func redirectToUI(c echo.Context) error {
	return c.Redirect(http.StatusMovedPermanently, "/swagger/index.html")
}
