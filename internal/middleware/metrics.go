package middleware

import (
	"cmp"
	"errors"
	"time"

	"github.com/labstack/echo/v4"

	"shortlink/internal/metrics"
)

type HTTPRecorder interface {
	RecordHTTP(m metrics.HTTPMetric)
}

// Metrics records one HTTPMetric per request, keyed by route template so that
// /:shortcode is a single series.
func Metrics(recorder HTTPRecorder) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			err := next(c)

			m := metrics.HTTPMetric{
				Time:       start,
				Method:     c.Request().Method,
				Path:       cmp.Or(c.Path(), "/"),
				StatusCode: c.Response().Status,
				DurationMs: float64(time.Since(start).Microseconds()) / 1000.0,
				ClientIP:   c.RealIP(),
			}
			if err != nil {
				m.Error = err.Error()
				var he *echo.HTTPError
				if errors.As(err, &he) {
					m.StatusCode = he.Code
				}
			}
			recorder.RecordHTTP(m)

			return err
		}
	}
}
