package handlers

import (
	"context"
	"net/http"
	"net/url"
	"strings"

	"github.com/anonto42/localflow/internal/middleware"
	"github.com/anonto42/localflow/internal/models"
	"github.com/anonto42/localflow/internal/theme"
	"github.com/anonto42/localflow/internal/views"
	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
)

// NavProfiles is the profile lookup the navigation bar needs.
type NavProfiles interface {
	GetProfileByID(ctx context.Context, id string) (*models.ProfileSummary, error)
}

// UnreadCounter reports whether the notification dot is shown.
type UnreadCounter interface {
	GetUnreadCount(ctx context.Context, targetID string) (int64, error)
}

// Shell builds the navigation shell every page is rendered inside.
type Shell struct {
	profiles      NavProfiles
	notifications UnreadCounter
	log           *logrus.Logger
}

func NewShell(profiles NavProfiles, notifications UnreadCounter, log *logrus.Logger) *Shell {
	return &Shell{profiles: profiles, notifications: notifications, log: log}
}

// Nav reads the signed-in profile and its unread count. Lookup failures
// degrade the bar instead of failing the page.
func (s *Shell) Nav(c echo.Context) views.Nav {
	ctx := c.Request().Context()
	nav := views.Nav{
		Theme: theme.FromContext(ctx).String(),
		Path:  c.Request().URL.Path,
	}

	id := middleware.ProfileID(c)
	if id == "" {
		return nav
	}
	nav.IsLoggedIn = true
	nav.ProfileID = id

	if summary, err := s.profiles.GetProfileByID(ctx, id); err != nil {
		s.log.WithError(err).WithField("profile_id", id).Warn("nav profile lookup failed")
	} else {
		nav.Username = summary.Username
		nav.Avatar = summary.Avatar
	}

	if unread, err := s.notifications.GetUnreadCount(ctx, id); err != nil {
		s.log.WithError(err).WithField("profile_id", id).Warn("nav unread count failed")
	} else {
		nav.HasNotifications = unread > 0
	}
	return nav
}

func (s *Shell) Page(c echo.Context, title string, data interface{}) views.Page {
	return views.Page{Title: title, Nav: s.Nav(c), Data: data}
}

// Render writes the named page inside the shell.
func (s *Shell) Render(c echo.Context, status int, name, title string, data interface{}) error {
	return c.Render(status, name, s.Page(c, title, data))
}

// wantsJSON reports a client that asked for JSON, such as a page script.
func wantsJSON(c echo.Context) bool {
	return strings.Contains(c.Request().Header.Get(echo.HeaderAccept), echo.MIMEApplicationJSON)
}

// wantsHTML reports a plain browser form post.
func wantsHTML(c echo.Context) bool {
	return strings.Contains(c.Request().Header.Get(echo.HeaderAccept), echo.MIMETextHTML)
}

// localPath keeps redirects on this site.
func localPath(target, fallback string) string {
	if !strings.HasPrefix(target, "/") || strings.HasPrefix(target, "//") || strings.HasPrefix(target, "/\\") {
		return fallback
	}
	return target
}

// refererPath returns the path and query of a same-site Referer, or "".
func refererPath(c echo.Context) string {
	ref := c.Request().Referer()
	if ref == "" {
		return ""
	}
	u, err := url.Parse(ref)
	if err != nil || (u.Host != "" && u.Host != c.Request().Host) {
		return ""
	}
	return u.RequestURI()
}

// SessionCookie describes the cookie carrying the provider session.
type SessionCookie struct {
	Name   string
	Secure bool
}

func (s SessionCookie) set(c echo.Context, value string, maxAge int) {
	c.SetCookie(&http.Cookie{
		Name:     s.Name,
		Value:    value,
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
		Secure:   s.Secure,
		SameSite: http.SameSiteLaxMode,
	})
}

func (s SessionCookie) clear(c echo.Context) {
	s.set(c, "", -1)
}
