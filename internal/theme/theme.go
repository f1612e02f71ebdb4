// Package theme loads the light/dark preference for each request from the
// theme cookie and carries it on the request context.
package theme

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
)

type Theme string

const (
	Light Theme = "light"
	Dark  Theme = "dark"

	CookieName = "theme"
	cookieTTL  = 365 * 24 * time.Hour
)

// Parse maps a stored value to a theme, defaulting to Light.
func Parse(v string) Theme {
	if Theme(v) == Dark {
		return Dark
	}
	return Light
}

func (t Theme) Toggle() Theme {
	if t == Dark {
		return Light
	}
	return Dark
}

func (t Theme) String() string {
	return string(t)
}

type ctxKey struct{}

func WithTheme(ctx context.Context, t Theme) context.Context {
	return context.WithValue(ctx, ctxKey{}, t)
}

// FromContext returns the theme loaded for this request, or Light.
func FromContext(ctx context.Context) Theme {
	if t, ok := ctx.Value(ctxKey{}).(Theme); ok {
		return t
	}
	return Light
}

// Provider initialises the preference from the cookie at the start of every
// request. The value lives and dies with the request context.
type Provider struct {
	Secure bool
}

func (p Provider) Middleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			t := Light
			if cookie, err := c.Cookie(CookieName); err == nil {
				t = Parse(cookie.Value)
			}
			req := c.Request()
			c.SetRequest(req.WithContext(WithTheme(req.Context(), t)))
			return next(c)
		}
	}
}

// Persist stores t in the theme cookie and on the current request.
func (p Provider) Persist(c echo.Context, t Theme) {
	c.SetCookie(&http.Cookie{
		Name:     CookieName,
		Value:    t.String(),
		Path:     "/",
		MaxAge:   int(cookieTTL.Seconds()),
		Secure:   p.Secure,
		SameSite: http.SameSiteLaxMode,
	})
	req := c.Request()
	c.SetRequest(req.WithContext(WithTheme(req.Context(), t)))
}
