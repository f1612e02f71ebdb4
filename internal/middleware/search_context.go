package middleware

import (
	"github.com/anonto42/localflow/internal/search"
	"github.com/labstack/echo/v4"
)

const searchFilterKey = "searchFilter"

// SearchContext decodes the signed navigation state cookie, if any, and
// exposes its filter to handlers and the navigation bar.
func SearchContext(codec *search.StateCodec) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			cookie, err := c.Cookie(search.StateCookieName)
			if err != nil || cookie.Value == "" {
				return next(c)
			}
			if f, err := codec.Decode(cookie.Value); err == nil {
				c.Set(searchFilterKey, f)
			}
			return next(c)
		}
	}
}

// SearchFilter returns the filter carried by the navigation state.
func SearchFilter(c echo.Context) (search.Filter, bool) {
	f, ok := c.Get(searchFilterKey).(search.Filter)
	return f, ok
}
