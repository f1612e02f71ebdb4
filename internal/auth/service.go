// Package auth implements the email and password login flow on top of the
// external identity provider.
package auth

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/anonto42/localflow/internal/identity"
	"github.com/anonto42/localflow/internal/validators"
	"github.com/anonto42/localflow/pkg/metrics"
	"github.com/sirupsen/logrus"
)

// ErrInvalidCredentials is reported once, next to the form, never per field.
var ErrInvalidCredentials = errors.New("auth: invalid credentials")

// InvalidCredentialsMessage is what the login form shows on rejection.
const InvalidCredentialsMessage = "Invalid email or password."

type LoginRequest struct {
	Email    string `form:"email" json:"email" validate:"required,email"`
	Password string `form:"password" json:"password" validate:"required,min=8"`
}

// LastLoginRecorder is the slice of the profile store the login flow touches.
type LastLoginRecorder interface {
	TouchLastLogin(ctx context.Context, id string, at time.Time) error
}

type Service struct {
	provider  identity.Provider
	validator *validators.CustomValidator
	profiles  LastLoginRecorder
	metrics   metrics.Recorder
	log       *logrus.Logger
	now       func() time.Time
}

func NewService(provider identity.Provider, v *validators.CustomValidator, profiles LastLoginRecorder, rec metrics.Recorder, log *logrus.Logger) *Service {
	return &Service{
		provider:  provider,
		validator: v,
		profiles:  profiles,
		metrics:   rec,
		log:       log,
		now:       time.Now,
	}
}

// Login validates req and, only when it is well formed, makes exactly one
// sign-in call. Field problems come back as FieldErrors with a nil error.
func (s *Service) Login(ctx context.Context, req LoginRequest) (*identity.Session, validators.FieldErrors, error) {
	req.Email = strings.TrimSpace(req.Email)

	if err := s.validator.Validate(req); err != nil {
		var fields validators.FieldErrors
		if errors.As(err, &fields) {
			s.metrics.RecordLogin("invalid")
			return nil, fields, nil
		}
		return nil, nil, err
	}

	session, err := s.provider.SignInWithPassword(ctx, req.Email, req.Password)
	if err != nil {
		if errors.Is(err, identity.ErrInvalidCredentials) {
			s.metrics.RecordLogin("rejected")
			s.log.WithField("email", req.Email).Info("login rejected")
			return nil, nil, ErrInvalidCredentials
		}
		s.metrics.RecordLogin("error")
		return nil, nil, err
	}

	if s.profiles != nil {
		if err := s.profiles.TouchLastLogin(ctx, session.ProfileID, s.now().UTC()); err != nil {
			s.log.WithError(err).WithField("profile_id", session.ProfileID).Warn("could not record last login")
		}
	}
	s.metrics.RecordLogin("success")
	s.log.WithField("profile_id", session.ProfileID).Info("login succeeded")
	return session, nil, nil
}

// Logout revokes the identity's sessions. Failure is logged; the caller
// clears the cookie regardless.
func (s *Service) Logout(ctx context.Context, profileID string) {
	if profileID == "" {
		return
	}
	if err := s.provider.RevokeSessions(ctx, profileID); err != nil {
		s.log.WithError(err).WithField("profile_id", profileID).Warn("could not revoke sessions")
	}
}
