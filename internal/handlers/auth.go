package handlers

import (
	"errors"
	"net/http"

	"github.com/anonto42/localflow/internal/auth"
	"github.com/anonto42/localflow/internal/middleware"
	"github.com/anonto42/localflow/internal/validators"
	"github.com/labstack/echo/v4"
)

type loginPage struct {
	Email  string
	Errors validators.FieldErrors
	Error  string
	Joined bool
	Modal  bool
}

// AuthHandler handles login and logout.
type AuthHandler struct {
	auth    *auth.Service
	shell   *Shell
	session SessionCookie
}

// NewAuthHandler creates a new AuthHandler
func NewAuthHandler(service *auth.Service, shell *Shell, session SessionCookie) *AuthHandler {
	return &AuthHandler{auth: service, shell: shell, session: session}
}

// RegisterAuthRoutes registers authentication-related routes. limiter guards
// the credential submission.
func (h *AuthHandler) RegisterAuthRoutes(g *echo.Group, limiter echo.MiddlewareFunc) {
	g.GET("/login", h.LoginPage)
	g.POST("/login", h.Login, limiter)
	g.GET("/logout", h.Logout)
	g.POST("/logout", h.Logout)
}

// LoginPage renders the login form, optionally as a modal fragment.
func (h *AuthHandler) LoginPage(c echo.Context) error {
	return h.shell.Render(c, http.StatusOK, "login", "Log in", loginPage{
		Joined: c.QueryParam("joined") == "1",
		Modal:  c.QueryParam("modal") == "1",
	})
}

// Login signs the user in and stores the provider session in a cookie.
func (h *AuthHandler) Login(c echo.Context) error {
	var req auth.LoginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}
	page := loginPage{Email: req.Email, Modal: c.QueryParam("modal") == "1"}

	session, fields, err := h.auth.Login(c.Request().Context(), req)
	switch {
	case fields != nil:
		page.Errors = fields
		return h.loginFailed(c, http.StatusBadRequest, page)
	case errors.Is(err, auth.ErrInvalidCredentials):
		page.Error = auth.InvalidCredentialsMessage
		return h.loginFailed(c, http.StatusUnauthorized, page)
	case err != nil:
		return err
	}

	h.session.set(c, session.Cookie, int(session.ExpiresIn.Seconds()))
	if wantsJSON(c) {
		return c.JSON(http.StatusOK, echo.Map{"success": true, "redirect": "/"})
	}
	return c.Redirect(http.StatusSeeOther, "/")
}

func (h *AuthHandler) loginFailed(c echo.Context, status int, page loginPage) error {
	if wantsJSON(c) {
		body := echo.Map{"success": false}
		if page.Errors != nil {
			body["errors"] = page.Errors
		}
		if page.Error != "" {
			body["error"] = page.Error
		}
		return c.JSON(status, body)
	}
	return h.shell.Render(c, status, "login", "Log in", page)
}

// Logout revokes the sessions of the signed-in identity and clears the cookie.
func (h *AuthHandler) Logout(c echo.Context) error {
	h.auth.Logout(c.Request().Context(), middleware.ProfileID(c))
	h.session.clear(c)
	return c.Redirect(http.StatusSeeOther, "/")
}
