package firebase

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"firebase.google.com/go/v4/auth"
	"github.com/anonto42/localflow/internal/identity"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/identitytoolkit/v3"
)

// Firebase rejects session cookies shorter than five minutes or longer than two weeks.
const (
	minSessionTTL = 5 * time.Minute
	maxSessionTTL = 14 * 24 * time.Hour
)

// Provider implements identity.Provider on Firebase Authentication.
type Provider struct {
	auth       *auth.Client
	toolkit    *identitytoolkit.Service
	sessionTTL time.Duration
}

var _ identity.Provider = (*Provider)(nil)

func NewProvider(app *App, sessionTTL time.Duration) *Provider {
	return &Provider{
		auth:       app.AuthClient,
		toolkit:    app.Toolkit,
		sessionTTL: clampTTL(sessionTTL),
	}
}

func (p *Provider) SignInWithPassword(ctx context.Context, email, password string) (*identity.Session, error) {
	resp, err := p.toolkit.Relyingparty.VerifyPassword(&identitytoolkit.IdentitytoolkitRelyingpartyVerifyPasswordRequest{
		Email:             email,
		Password:          password,
		ReturnSecureToken: true,
	}).Context(ctx).Do()
	if err != nil {
		return nil, signInError(err)
	}

	cookie, err := p.auth.SessionCookie(ctx, resp.IdToken, p.sessionTTL)
	if err != nil {
		return nil, fmt.Errorf("create session cookie: %w", err)
	}
	return &identity.Session{Cookie: cookie, ProfileID: resp.LocalId, ExpiresIn: p.sessionTTL}, nil
}

func (p *Provider) VerifySession(ctx context.Context, cookie string) (string, error) {
	token, err := p.auth.VerifySessionCookieAndCheckRevoked(ctx, cookie)
	if err != nil {
		return "", fmt.Errorf("%w: %v", identity.ErrSessionInvalid, err)
	}
	return token.UID, nil
}

func (p *Provider) CreateIdentity(ctx context.Context, email, password string) (string, error) {
	params := (&auth.UserToCreate{}).Email(email).Password(password)
	user, err := p.auth.CreateUser(ctx, params)
	if err != nil {
		if auth.IsEmailAlreadyExists(err) {
			return "", identity.ErrEmailExists
		}
		return "", fmt.Errorf("create firebase user: %w", err)
	}
	return user.UID, nil
}

func (p *Provider) RevokeSessions(ctx context.Context, id string) error {
	if err := p.auth.RevokeRefreshTokens(ctx, id); err != nil {
		return fmt.Errorf("revoke refresh tokens: %w", err)
	}
	return nil
}

// signInError maps an Identity Toolkit failure. Every 400 answer is a
// credential rejection (EMAIL_NOT_FOUND, INVALID_PASSWORD, USER_DISABLED...).
func signInError(err error) error {
	var apiErr *googleapi.Error
	if errors.As(err, &apiErr) && apiErr.Code == http.StatusBadRequest {
		return identity.ErrInvalidCredentials
	}
	return fmt.Errorf("verify password: %w", err)
}

func clampTTL(ttl time.Duration) time.Duration {
	switch {
	case ttl < minSessionTTL:
		return minSessionTTL
	case ttl > maxSessionTTL:
		return maxSessionTTL
	default:
		return ttl
	}
}
