package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/anonto42/localflow/internal/join"
	"github.com/anonto42/localflow/internal/validators"
	"github.com/labstack/echo/v4"
)

const (
	codeSentNotice       = "A verification code has been sent."
	removeInterestPrefix = "remove_interest:"
)

type joinPage struct {
	Form          *join.Form
	Errors        validators.FieldErrors
	Alert         string
	Warning       string
	Error         string
	Notice        string
	InterestInput string
}

// JoinHandler drives the registration wizard. Every POST carries the whole
// form and names one action.
type JoinHandler struct {
	join  *join.Service
	shell *Shell
}

func NewJoinHandler(service *join.Service, shell *Shell) *JoinHandler {
	return &JoinHandler{join: service, shell: shell}
}

func (h *JoinHandler) RegisterJoinRoutes(g *echo.Group) {
	g.GET("/join", h.Start)
	g.POST("/join", h.Step)
}

// Start renders an empty wizard on step 1.
func (h *JoinHandler) Start(c echo.Context) error {
	return h.render(c, http.StatusOK, joinPage{Form: join.NewForm()})
}

// Step applies one wizard action to the posted form.
func (h *JoinHandler) Step(c echo.Context) error {
	form := join.NewForm()
	if err := c.Bind(form); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}
	form.Normalize()

	page := joinPage{Form: form}
	status := http.StatusOK
	action := c.FormValue("action")

	switch {
	case action == "next":
		out := form.Next()
		page.Alert, page.Errors, page.Warning = out.Alert, out.Errors, out.Warning
		if out.Blocked() {
			status = http.StatusBadRequest
		}
	case action == "back":
		form.Back()
	case action == "add_interest":
		ev := join.KeyEvent{Key: "Enter", Composing: c.FormValue("composing") == "true"}
		input := c.FormValue("interest_input")
		if !form.AddInterest(ev, input) {
			page.InterestInput = input
		}
	case strings.HasPrefix(action, removeInterestPrefix):
		form.RemoveInterest(strings.TrimPrefix(action, removeInterestPrefix))
	case action == "select_all":
		form.SelectAll(c.FormValue("select_all_value") == "true")
	case action == "request_code":
		if fields := h.join.RequestCode(c.Request().Context(), form); fields != nil {
			page.Errors = fields
			status = http.StatusBadRequest
		} else {
			page.Notice = codeSentNotice
		}
	case action == "submit" && form.Step == join.LastStep:
		_, fields, err := h.join.Submit(c.Request().Context(), form)
		switch {
		case fields != nil:
			page.Errors = fields
			status = http.StatusBadRequest
		case errors.Is(err, join.ErrAccountCreation):
			page.Error = join.AccountCreationMessage
			status = http.StatusBadGateway
		case err != nil:
			return err
		default:
			return c.Redirect(http.StatusSeeOther, "/auth/login?joined=1")
		}
	}

	if form.PasswordMismatch() && page.Warning == "" && form.Step == join.FirstStep {
		page.Warning = join.PasswordMismatch
	}
	return h.render(c, status, page)
}

func (h *JoinHandler) render(c echo.Context, status int, page joinPage) error {
	return h.shell.Render(c, status, "join", "Join", page)
}
