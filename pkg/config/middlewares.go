package config

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"golang.org/x/time/rate"
)

// LoginRateLimiter limits login submissions per client IP.
func (c *Config) LoginRateLimiter() echo.MiddlewareFunc {
	perSecond := rate.Limit(float64(c.LoginRatePerMinute) / 60.0)
	if c.LoginRatePerMinute <= 0 {
		perSecond = rate.Inf
	}
	store := middleware.NewRateLimiterMemoryStoreWithConfig(middleware.RateLimiterMemoryStoreConfig{
		Rate:      perSecond,
		Burst:     c.LoginRateBurst,
		ExpiresIn: 3 * time.Minute,
	})
	return middleware.RateLimiterWithConfig(middleware.RateLimiterConfig{
		Skipper: func(c echo.Context) bool {
			return c.Request().Method != http.MethodPost
		},
		Store: store,
		IdentifierExtractor: func(ctx echo.Context) (string, error) {
			return ctx.RealIP(), nil
		},
		ErrorHandler: func(ctx echo.Context, err error) error {
			return echo.NewHTTPError(http.StatusForbidden, "Unable to identify client")
		},
		DenyHandler: func(ctx echo.Context, identifier string, err error) error {
			return echo.NewHTTPError(http.StatusTooManyRequests, "Too many login attempts. Please wait and try again.")
		},
	})
}

// CORSConfig allows same-site page scripts in development and nothing cross-origin in production.
func (c *Config) CORSConfig() middleware.CORSConfig {
	if c.IsProduction() {
		return middleware.CORSConfig{AllowOrigins: []string{}}
	}
	return middleware.DefaultCORSConfig
}
