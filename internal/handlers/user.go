package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/anonto42/localflow/internal/middleware"
	"github.com/anonto42/localflow/internal/models"
	"github.com/anonto42/localflow/internal/profile"
	"github.com/anonto42/localflow/internal/validators"
	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

type profilePage struct {
	Profile       *models.Profile
	Display       profile.Display
	Edit          string
	Value         string
	Errors        validators.FieldErrors
	Error         string
	Notifications models.NotificationSettings
	Privacy       models.PrivacySettings
}

// UserHandler handles the signed-in user's profile page.
type UserHandler struct {
	profiles *profile.Service
	parser   *profile.Parser
	shell    *Shell
}

// NewUserHandler creates a new UserHandler
func NewUserHandler(profiles *profile.Service, parser *profile.Parser, shell *Shell) *UserHandler {
	return &UserHandler{profiles: profiles, parser: parser, shell: shell}
}

// RegisterProfileRoutes registers profile routes on a session-protected group.
func (h *UserHandler) RegisterProfileRoutes(g *echo.Group) {
	g.GET("/profile", h.GetProfile)
	g.POST("/profile", h.UpdateProfile)
}

// GetProfile renders the profile rows. ?edit=<field> opens that field's modal.
func (h *UserHandler) GetProfile(c echo.Context) error {
	p, err := h.profiles.Get(c.Request().Context(), middleware.ProfileID(c))
	if err != nil {
		return profileError(err)
	}
	edit := c.QueryParam("edit")
	page := newProfilePage(p, edit)
	page.Value = currentValue(p, edit)
	return h.shell.Render(c, http.StatusOK, "profile", "My profile", page)
}

// UpdateProfile applies exactly one field, or the settings group, and
// answers with the stored profile.
func (h *UserHandler) UpdateProfile(c echo.Context) error {
	form, err := c.FormParams()
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}
	id := middleware.ProfileID(c)
	ctx := c.Request().Context()

	update, err := h.parser.Parse(form)
	if err != nil {
		var fields validators.FieldErrors
		switch {
		case errors.As(err, &fields):
			return h.rejectUpdate(c, id, form.Get("field"), form.Get("value"), fields)
		case errors.Is(err, profile.ErrUnknownField):
			return echo.NewHTTPError(http.StatusBadRequest, "Unknown profile field")
		}
		return err
	}

	updated, err := h.profiles.Apply(ctx, id, update)
	if err != nil {
		return profileError(err)
	}
	if wantsHTML(c) {
		return c.Redirect(http.StatusSeeOther, "/my/profile")
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true, "profile": updated})
}

func (h *UserHandler) rejectUpdate(c echo.Context, id, field, value string, fields validators.FieldErrors) error {
	if !wantsHTML(c) {
		return c.JSON(http.StatusBadRequest, echo.Map{"success": false, "errors": fields})
	}
	p, err := h.profiles.Get(c.Request().Context(), id)
	if err != nil {
		return profileError(err)
	}
	page := newProfilePage(p, field)
	page.Value = value
	page.Errors = fields
	return h.shell.Render(c, http.StatusBadRequest, "profile", "My profile", page)
}

func newProfilePage(p *models.Profile, edit string) profilePage {
	return profilePage{
		Profile:       p,
		Display:       profile.NewDisplay(p),
		Edit:          edit,
		Notifications: p.NotificationSettings.Data(),
		Privacy:       p.PrivacySettings.Data(),
	}
}

// currentValue prefills the edit modal of field.
func currentValue(p *models.Profile, field string) string {
	switch field {
	case profile.FieldAvatar:
		return p.Avatar
	case profile.FieldPhone:
		return p.Phone
	case profile.FieldEmail:
		return p.Email
	case profile.FieldCountry:
		return p.Country
	case profile.FieldLanguage:
		return p.Language
	case profile.FieldInterests:
		return strings.Join(p.Interests, ", ")
	case profile.FieldBio:
		return p.Bio
	case profile.FieldCurrency:
		return profile.NewDisplay(p).Currency
	}
	return ""
}

func profileError(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return echo.NewHTTPError(http.StatusNotFound, "Profile not found")
	}
	return err
}
