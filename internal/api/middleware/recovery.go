package middleware

import (
	"fmt"
	"log/slog"
	"net/http"
	"runtime"

	"github.com/labstack/echo/v4"
)

// problem mirrors the RFC 9457 body the API uses for every other error.
type problem struct {
	Title  string `json:"title"`
	Status int    `json:"status"`
	Detail string `json:"detail"`
}

// Recovery returns Echo middleware that recovers from panics, logs the stack
// trace with the request id, and answers 500 with a problem body.
func Recovery(log *slog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) (err error) {
			defer func() {
				r := recover()
				if r == nil {
					return
				}

				buf := make([]byte, 4096)
				n := runtime.Stack(buf, false)

				log.Error("panic recovered",
					"error", fmt.Sprint(r),
					"method", c.Request().Method,
					"path", c.Request().URL.Path,
					"request_id", RequestID(c),
					"stack", string(buf[:n]),
				)

				c.Response().Header().Set(echo.HeaderContentType, "application/problem+json")
				err = c.JSON(http.StatusInternalServerError, problem{
					Title:  http.StatusText(http.StatusInternalServerError),
					Status: http.StatusInternalServerError,
					Detail: "internal server error",
				})
			}()
			return next(c)
		}
	}
}
