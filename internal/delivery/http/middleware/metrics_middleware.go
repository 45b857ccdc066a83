package middleware

import (
	"strconv"
	"time"

	"roomie/internal/observability/metrics"

	"github.com/labstack/echo/v4"
)

// Metrics records request counts and latencies per route. The route template
// is used as the path label so IDs do not explode cardinality.
func Metrics() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			started := time.Now()
			err := next(c)

			path := c.Path()
			if path == "" {
				path = c.Request().URL.Path
			}
			metrics.ObserveHTTPRequest(
				c.Request().Method,
				path,
				strconv.Itoa(c.Response().Status),
				time.Since(started),
			)

			return err
		}
	}
}
