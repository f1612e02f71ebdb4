package middleware

import (
	"net/http"

	"github.com/anonto42/localflow/internal/identity"
	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
)

// ProfileIDKey is the echo context key holding the signed-in profile id.
const ProfileIDKey = "profileID"

// Session verifies the session cookie, when present, with the identity
// provider and stores the profile id on the context. Requests without a
// valid session continue anonymously.
func Session(provider identity.Provider, cookieName string, log *logrus.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			cookie, err := c.Cookie(cookieName)
			if err != nil || cookie.Value == "" {
				return next(c)
			}

			id, err := provider.VerifySession(c.Request().Context(), cookie.Value)
			if err != nil {
				log.WithError(err).Debug("session cookie rejected")
				return next(c)
			}

			c.Set(ProfileIDKey, id)
			return next(c)
		}
	}
}

// RequireSession rejects anonymous requests with 401.
func RequireSession(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if ProfileID(c) == "" {
			return echo.NewHTTPError(http.StatusUnauthorized, "Unauthorized")
		}
		return next(c)
	}
}

// ProfileID returns the signed-in profile id or "".
func ProfileID(c echo.Context) string {
	id, _ := c.Get(ProfileIDKey).(string)
	return id
}
