package join

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/anonto42/localflow/internal/identity"
	"github.com/anonto42/localflow/internal/models"
	"github.com/anonto42/localflow/internal/validators"
	"github.com/sirupsen/logrus"
	"gorm.io/datatypes"
)

// ErrAccountCreation wraps any provider or database refusal of a new account.
var ErrAccountCreation = errors.New("join: account creation failed")

const AccountCreationMessage = "Could not create your account. Please try again."

type ProfileCreator interface {
	CreateProfile(ctx context.Context, profile *models.Profile) error
}

type Service struct {
	provider   identity.Provider
	profiles   ProfileCreator
	dispatcher CodeDispatcher
	validator  *validators.CustomValidator
	log        *logrus.Logger
}

func NewService(provider identity.Provider, profiles ProfileCreator, dispatcher CodeDispatcher, v *validators.CustomValidator, log *logrus.Logger) *Service {
	return &Service{
		provider:   provider,
		profiles:   profiles,
		dispatcher: dispatcher,
		validator:  v,
		log:        log,
	}
}

// RequestCode asks the dispatcher to send a code to the step 2 destination.
func (s *Service) RequestCode(ctx context.Context, f *Form) validators.FieldErrors {
	dest := strings.TrimSpace(f.PhoneOrEmail)
	if dest == "" {
		return validators.FieldErrors{"phone_or_email": "This field is required."}
	}
	if err := s.dispatcher.SendCode(ctx, dest); err != nil {
		s.log.WithError(err).Warn("verification code dispatch failed")
		return validators.FieldErrors{"phone_or_email": "Could not send a code. Please try again."}
	}
	return nil
}

// Submit validates the complete form, creates the identity and then the
// profile keyed by the identity's id. It returns the new profile id.
func (s *Service) Submit(ctx context.Context, f *Form) (string, validators.FieldErrors, error) {
	f.Normalize()
	f.Email = strings.TrimSpace(f.Email)
	f.Username = strings.TrimSpace(f.Username)

	if err := s.validator.Validate(f); err != nil {
		var fields validators.FieldErrors
		if errors.As(err, &fields) {
			return "", fields, nil
		}
		return "", nil, err
	}
	if !f.AgreedToTerms || !f.AgreedToPrivacy {
		return "", validators.FieldErrors{"agreed_to_terms": TermsRequiredAlert}, nil
	}

	id, err := s.provider.CreateIdentity(ctx, f.Email, f.Password)
	if err != nil {
		if errors.Is(err, identity.ErrEmailExists) {
			return "", validators.FieldErrors{"email": "This email is already registered."}, nil
		}
		s.log.WithError(err).WithField("email", f.Email).Error("identity creation failed")
		return "", nil, fmt.Errorf("%w: %v", ErrAccountCreation, err)
	}

	profile := models.NewProfile(id, f.Email)
	profile.Username = f.Username
	profile.Country = f.Country
	profile.Language = f.Language
	profile.Interests = models.TextArray(f.Interests)
	profile.JoinPath = models.JoinPathEmail
	profile.NotificationSettings = datatypes.NewJSONType(models.NotificationSettings{
		Marketing: f.AgreedToMarketing,
	})

	if err := s.profiles.CreateProfile(ctx, profile); err != nil {
		s.log.WithError(err).WithField("profile_id", id).Error("profile creation failed")
		return "", nil, fmt.Errorf("%w: %v", ErrAccountCreation, err)
	}

	s.log.WithFields(logrus.Fields{"profile_id": id, "interests": len(f.Interests)}).Info("account created")
	return id, nil, nil
}
