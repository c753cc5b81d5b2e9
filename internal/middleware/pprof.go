package middleware

import (
	"crypto/subtle"
	"net/http"
	"net/http/pprof"

	"github.com/labstack/echo/v4"
)

const (
	PprofPrefix     = "/debug/pprof"
	pprofAuthHeader = "X-Pprof-Secret"
)

var errPprofUnauthorized = map[string]string{"error": "unauthorized"}

// PprofAuth admits requests carrying the shared secret. An empty secret admits everyone.
func PprofAuth(secret string) echo.MiddlewareFunc {
	want := []byte(secret)
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if len(want) == 0 {
				return next(c)
			}
			got := []byte(c.Request().Header.Get(pprofAuthHeader))
			if subtle.ConstantTimeCompare(got, want) != 1 {
				return c.JSON(http.StatusUnauthorized, errPprofUnauthorized)
			}
			return next(c)
		}
	}
}

// RegisterPprof mounts the runtime profiles under PprofPrefix behind PprofAuth.
func RegisterPprof(e *echo.Echo, secret string) {
	g := e.Group(PprofPrefix, PprofAuth(secret))

	routes := map[string]http.HandlerFunc{
		"/":        pprof.Index,
		"/cmdline": pprof.Cmdline,
		"/profile": pprof.Profile,
		"/symbol":  pprof.Symbol,
		"/trace":   pprof.Trace,
	}
	for path, h := range routes {
		g.GET(path, echo.WrapHandler(h))
	}
	g.POST("/symbol", echo.WrapHandler(http.HandlerFunc(pprof.Symbol)))

	for _, profile := range []string{"allocs", "block", "goroutine", "heap", "mutex", "threadcreate"} {
		g.GET("/"+profile, echo.WrapHandler(pprof.Handler(profile)))
	}
}
