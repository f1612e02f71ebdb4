package handlers

import (
	"net/http"

	"github.com/anonto42/localflow/internal/theme"
	"github.com/labstack/echo/v4"
)

// PageHandler serves the static pages and the theme toggle.
type PageHandler struct {
	shell  *Shell
	themes theme.Provider
}

func NewPageHandler(shell *Shell, themes theme.Provider) *PageHandler {
	return &PageHandler{shell: shell, themes: themes}
}

func (h *PageHandler) RegisterPageRoutes(e *echo.Echo, my *echo.Group) {
	e.GET("/", h.Home)
	e.POST("/theme/toggle", h.ToggleTheme)
	my.GET("/messages", h.Messages)
}

func (h *PageHandler) Home(c echo.Context) error {
	return h.shell.Render(c, http.StatusOK, "home", "", nil)
}

func (h *PageHandler) Messages(c echo.Context) error {
	return h.shell.Render(c, http.StatusOK, "messages", "Messages", nil)
}

// ToggleTheme flips the request's theme, persists it and returns to the page it came from.
func (h *PageHandler) ToggleTheme(c echo.Context) error {
	next := theme.FromContext(c.Request().Context()).Toggle()
	h.themes.Persist(c, next)
	if wantsJSON(c) {
		return c.JSON(http.StatusOK, echo.Map{"success": true, "theme": next})
	}
	return c.Redirect(http.StatusSeeOther, localPath(c.FormValue("return_to"), "/"))
}
