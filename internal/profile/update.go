// Package profile turns profile edit submissions into typed partial updates
// and applies them.
package profile

import (
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/anonto42/localflow/internal/catalog"
	"github.com/anonto42/localflow/internal/models"
	"github.com/anonto42/localflow/internal/validators"
	"github.com/microcosm-cc/bluemonday"
	"gorm.io/datatypes"
)

var ErrUnknownField = errors.New("profile: unknown field")

// Field names as posted by the edit modals.
const (
	FieldAvatar    = "avatar"
	FieldPhone     = "phone"
	FieldEmail     = "email"
	FieldCountry   = "country"
	FieldLanguage  = "language"
	FieldInterests = "interests"
	FieldBio       = "bio"
	FieldCurrency  = "preferred_currency"
	FieldSettings  = "settings"
)

const maxBioLength = 500

// Update is one edit. The set of implementations is closed: each maps to
// exactly the columns it owns.
type Update interface {
	Field() string
	Columns() map[string]interface{}
	isUpdate()
}

type AvatarUpdate struct{ URL string }
type PhoneUpdate struct{ Digits string }
type EmailUpdate struct{ Email string }
type CountryUpdate struct{ Country string }
type LanguageUpdate struct{ Language string }
type InterestsUpdate struct{ Interests []string }
type BioUpdate struct{ Bio string }
type CurrencyUpdate struct{ Currency string }

type SettingsUpdate struct {
	Notifications models.NotificationSettings
	Privacy       models.PrivacySettings
}

func (AvatarUpdate) Field() string    { return FieldAvatar }
func (PhoneUpdate) Field() string     { return FieldPhone }
func (EmailUpdate) Field() string     { return FieldEmail }
func (CountryUpdate) Field() string   { return FieldCountry }
func (LanguageUpdate) Field() string  { return FieldLanguage }
func (InterestsUpdate) Field() string { return FieldInterests }
func (BioUpdate) Field() string       { return FieldBio }
func (CurrencyUpdate) Field() string  { return FieldCurrency }
func (SettingsUpdate) Field() string  { return FieldSettings }

func (u AvatarUpdate) Columns() map[string]interface{} {
	return map[string]interface{}{"avatar": u.URL}
}

func (u PhoneUpdate) Columns() map[string]interface{} {
	return map[string]interface{}{"phone": u.Digits}
}

func (u EmailUpdate) Columns() map[string]interface{} {
	return map[string]interface{}{"email": u.Email}
}

func (u CountryUpdate) Columns() map[string]interface{} {
	return map[string]interface{}{"country": u.Country}
}

func (u LanguageUpdate) Columns() map[string]interface{} {
	return map[string]interface{}{"language": u.Language}
}

func (u InterestsUpdate) Columns() map[string]interface{} {
	return map[string]interface{}{"interests": models.TextArray(u.Interests)}
}

func (u BioUpdate) Columns() map[string]interface{} {
	return map[string]interface{}{"bio": u.Bio}
}

func (u CurrencyUpdate) Columns() map[string]interface{} {
	return map[string]interface{}{"preferred_currency": u.Currency}
}

func (u SettingsUpdate) Columns() map[string]interface{} {
	return map[string]interface{}{
		"notification_settings": datatypes.NewJSONType(u.Notifications),
		"privacy_settings":      datatypes.NewJSONType(u.Privacy),
	}
}

func (AvatarUpdate) isUpdate()    {}
func (PhoneUpdate) isUpdate()     {}
func (EmailUpdate) isUpdate()     {}
func (CountryUpdate) isUpdate()   {}
func (LanguageUpdate) isUpdate()  {}
func (InterestsUpdate) isUpdate() {}
func (BioUpdate) isUpdate()       {}
func (CurrencyUpdate) isUpdate()  {}
func (SettingsUpdate) isUpdate()  {}

// Parser validates raw submissions before they become updates.
type Parser struct {
	validator *validators.CustomValidator
	sanitizer *bluemonday.Policy
}

func NewParser(v *validators.CustomValidator) *Parser {
	return &Parser{validator: v, sanitizer: bluemonday.StrictPolicy()}
}

// Parse reads the "field" key and the inputs that field's modal posts.
// An unrecognised field yields ErrUnknownField; bad input yields FieldErrors.
func (p *Parser) Parse(form url.Values) (Update, error) {
	field := strings.TrimSpace(form.Get("field"))
	value := strings.TrimSpace(form.Get("value"))

	switch field {
	case FieldAvatar:
		if err := p.check(value, "omitempty,url"); err != nil {
			return nil, err
		}
		return AvatarUpdate{URL: value}, nil
	case FieldPhone:
		digits := DigitsOnly(value)
		if err := p.check(digits, "omitempty,min=9,max=11"); err != nil {
			return nil, err
		}
		return PhoneUpdate{Digits: digits}, nil
	case FieldEmail:
		if err := p.check(value, "required,email"); err != nil {
			return nil, err
		}
		return EmailUpdate{Email: value}, nil
	case FieldCountry:
		if err := p.check(value, "max=100"); err != nil {
			return nil, err
		}
		return CountryUpdate{Country: value}, nil
	case FieldLanguage:
		if err := p.check(value, "max=100"); err != nil {
			return nil, err
		}
		return LanguageUpdate{Language: value}, nil
	case FieldInterests:
		return InterestsUpdate{Interests: SplitInterests(value)}, nil
	case FieldBio:
		bio := strings.TrimSpace(p.sanitizer.Sanitize(value))
		if err := p.check(bio, fmt.Sprintf("max=%d", maxBioLength)); err != nil {
			return nil, err
		}
		return BioUpdate{Bio: bio}, nil
	case FieldCurrency:
		if value == "" {
			value = catalog.DefaultCurrency
		}
		if !catalog.IsCurrency(value) {
			return nil, validators.FieldErrors{"value": "Please choose one of the listed options."}
		}
		return CurrencyUpdate{Currency: value}, nil
	case FieldSettings:
		return parseSettings(form)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownField, field)
	}
}

func (p *Parser) check(value, tag string) error {
	if fields := p.validator.Var("value", value, tag); fields != nil {
		return fields
	}
	return nil
}

func parseSettings(form url.Values) (Update, error) {
	visibility := models.ProfileVisibility(form.Get("profile_visibility"))
	switch visibility {
	case "":
		visibility = models.VisibilityPublic
	case models.VisibilityPublic, models.VisibilityPrivate, models.VisibilityFriends:
	default:
		return nil, validators.FieldErrors{"profile_visibility": "Please choose one of the listed options."}
	}
	return SettingsUpdate{
		Notifications: models.NotificationSettings{
			Email:     checked(form, "email_notification"),
			Push:      checked(form, "push_notification"),
			Marketing: checked(form, "marketing_notification"),
		},
		Privacy: models.PrivacySettings{
			ProfileVisibility: visibility,
			ShowEmail:         checked(form, "show_email"),
			ShowPhone:         checked(form, "show_phone"),
		},
	}, nil
}

func checked(form url.Values, key string) bool {
	switch form.Get(key) {
	case "on", "true", "1":
		return true
	}
	return false
}

// SplitInterests splits a comma separated list, trimming entries and
// dropping blanks. An empty string gives an empty, non-nil list.
func SplitInterests(value string) []string {
	interests := []string{}
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			interests = append(interests, part)
		}
	}
	return interests
}
