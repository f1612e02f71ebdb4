// Package identity describes the external identity provider that owns
// credentials and sessions. Profiles are keyed by the provider's user id.
package identity

import (
	"context"
	"errors"
	"time"
)

var (
	ErrInvalidCredentials = errors.New("identity: invalid email or password")
	ErrSessionInvalid     = errors.New("identity: session invalid or expired")
	ErrEmailExists        = errors.New("identity: email already registered")
)

// Session is a provider-issued session ready to be stored in a cookie.
type Session struct {
	Cookie    string
	ProfileID string
	ExpiresIn time.Duration
}

type Provider interface {
	// SignInWithPassword exchanges credentials for a session. A rejected
	// credential pair yields ErrInvalidCredentials.
	SignInWithPassword(ctx context.Context, email, password string) (*Session, error)
	// VerifySession returns the id of the identity owning cookie.
	VerifySession(ctx context.Context, cookie string) (string, error)
	CreateIdentity(ctx context.Context, email, password string) (string, error)
	RevokeSessions(ctx context.Context, id string) error
}
