// Package join implements the four-step registration wizard. The wizard
// state travels with every request, so nothing is stored until Submit.
package join

import (
	"strings"

	"github.com/anonto42/localflow/internal/validators"
)

const (
	FirstStep    = 1
	LastStep     = 4
	MaxInterests = 10

	TermsRequiredAlert = "Please agree to the required terms."
	PasswordMismatch   = "Passwords do not match."
)

// Form is the whole wizard state.
type Form struct {
	Step              int      `form:"step"`
	Email             string   `form:"email" validate:"required,email"`
	Password          string   `form:"password" validate:"required,min=8"`
	ConfirmPassword   string   `form:"confirm_password"`
	PhoneOrEmail      string   `form:"phone_or_email"`
	VerificationCode  string   `form:"verification_code"`
	Username          string   `form:"username" validate:"required,max=50"`
	Country           string   `form:"country" validate:"required"`
	Language          string   `form:"language" validate:"required"`
	Interests         []string `form:"interests" validate:"max=10"`
	AgreedToTerms     bool     `form:"agreed_to_terms"`
	AgreedToPrivacy   bool     `form:"agreed_to_privacy"`
	AgreedToMarketing bool     `form:"agreed_to_marketing"`
}

// NewForm returns an empty wizard on the first step.
func NewForm() *Form {
	return &Form{Step: FirstStep, Interests: []string{}}
}

// Outcome is what a transition reports back to the page. Alert and Errors
// block the transition; Warning does not.
type Outcome struct {
	Alert   string
	Errors  validators.FieldErrors
	Warning string
}

func (o Outcome) Blocked() bool {
	return o.Alert != "" || len(o.Errors) > 0
}

// Normalize repairs state that arrived from the client: the step is clamped
// and the interest list is trimmed, de-duplicated and capped.
func (f *Form) Normalize() {
	if f.Step < FirstStep {
		f.Step = FirstStep
	}
	if f.Step > LastStep {
		f.Step = LastStep
	}
	tags := make([]string, 0, len(f.Interests))
	for _, tag := range f.Interests {
		tag = strings.TrimSpace(tag)
		if tag == "" || contains(tags, tag) {
			continue
		}
		if len(tags) == MaxInterests {
			break
		}
		tags = append(tags, tag)
	}
	f.Interests = tags
}

// Next advances one step when the current step's requirements hold.
// On the last step it does nothing.
func (f *Form) Next() Outcome {
	var out Outcome
	switch f.Step {
	case 1:
		out.Errors = required(map[string]string{
			"email":    f.Email,
			"password": f.Password,
		})
		if f.PasswordMismatch() {
			out.Warning = PasswordMismatch
		}
	case 2:
		if !f.AgreedToTerms || !f.AgreedToPrivacy {
			out.Alert = TermsRequiredAlert
		}
	case 3:
		out.Errors = required(map[string]string{
			"username": f.Username,
			"country":  f.Country,
			"language": f.Language,
		})
	default:
		return out
	}
	if !out.Blocked() {
		f.Step++
	}
	return out
}

// Back moves one step back; on the first step it does nothing.
func (f *Form) Back() {
	if f.Step > FirstStep {
		f.Step--
	}
}

// PasswordMismatch reports a confirmation that differs from the password.
// It is a hint only and never blocks the wizard.
func (f *Form) PasswordMismatch() bool {
	return f.ConfirmPassword != "" && f.ConfirmPassword != f.Password
}

// SelectAll sets every consent to on.
func (f *Form) SelectAll(on bool) {
	f.AgreedToTerms = on
	f.AgreedToPrivacy = on
	f.AgreedToMarketing = on
}

// AllAgreed drives the "agree to all" checkbox.
func (f *Form) AllAgreed() bool {
	return f.AgreedToTerms && f.AgreedToPrivacy && f.AgreedToMarketing
}

// KeyEvent is a key press in the interest input. Composing is set while an
// input method editor has an uncommitted composition.
type KeyEvent struct {
	Key       string
	Composing bool
}

// AddInterest handles a key press in the interest input and reports whether
// the input box should be cleared. Only a committed Enter with a non-blank
// value and room left counts; an exact duplicate is consumed but not stored.
func (f *Form) AddInterest(ev KeyEvent, input string) bool {
	if ev.Composing || ev.Key != "Enter" {
		return false
	}
	tag := strings.TrimSpace(input)
	if tag == "" || len(f.Interests) >= MaxInterests {
		return false
	}
	if !contains(f.Interests, tag) {
		f.Interests = append(f.Interests, tag)
	}
	return true
}

func (f *Form) RemoveInterest(tag string) {
	kept := f.Interests[:0]
	for _, t := range f.Interests {
		if t != tag {
			kept = append(kept, t)
		}
	}
	f.Interests = kept
}

func required(values map[string]string) validators.FieldErrors {
	var errs validators.FieldErrors
	for field, v := range values {
		if strings.TrimSpace(v) == "" {
			if errs == nil {
				errs = validators.FieldErrors{}
			}
			errs.Add(field, "This field is required.")
		}
	}
	return errs
}

func contains(values []string, v string) bool {
	for _, s := range values {
		if s == v {
			return true
		}
	}
	return false
}
