package auth

import (
	"context"
	"errors"
	"io"
	"testing"
	"time"

	"github.com/anonto42/localflow/internal/identity"
	"github.com/anonto42/localflow/internal/validators"
	"github.com/anonto42/localflow/pkg/metrics"
	"github.com/sirupsen/logrus"
)

type fakeProvider struct {
	signInFn func(ctx context.Context, email, password string) (*identity.Session, error)
	revokeFn func(ctx context.Context, id string) error
	calls    int
}

func (f *fakeProvider) SignInWithPassword(ctx context.Context, email, password string) (*identity.Session, error) {
	f.calls++
	return f.signInFn(ctx, email, password)
}

func (f *fakeProvider) VerifySession(context.Context, string) (string, error) {
	return "", identity.ErrSessionInvalid
}

func (f *fakeProvider) CreateIdentity(context.Context, string, string) (string, error) {
	return "", errors.New("not used")
}

func (f *fakeProvider) RevokeSessions(ctx context.Context, id string) error {
	if f.revokeFn == nil {
		return nil
	}
	return f.revokeFn(ctx, id)
}

type fakeLastLogin struct {
	id string
	at time.Time
}

func (f *fakeLastLogin) TouchLastLogin(_ context.Context, id string, at time.Time) error {
	f.id, f.at = id, at
	return nil
}

func quietLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func newService(p identity.Provider, profiles LastLoginRecorder) *Service {
	return NewService(p, validators.NewValidator(), profiles, metrics.Nop{}, quietLogger())
}

func TestLogin_InvalidFormMakesNoProviderCall(t *testing.T) {
	p := &fakeProvider{signInFn: func(context.Context, string, string) (*identity.Session, error) {
		t.Fatal("provider must not be called for an invalid form")
		return nil, nil
	}}
	svc := newService(p, nil)

	tests := []struct {
		name  string
		req   LoginRequest
		field string
	}{
		{"bad email", LoginRequest{Email: "nope", Password: "longenough"}, "email"},
		{"short password", LoginRequest{Email: "a@b.co", Password: "short"}, "password"},
		{"empty", LoginRequest{}, "email"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			session, fields, err := svc.Login(context.Background(), tt.req)
			if err != nil || session != nil {
				t.Fatalf("got session=%v err=%v", session, err)
			}
			if !fields.Has(tt.field) {
				t.Errorf("expected error on %s, got %v", tt.field, fields)
			}
		})
	}
	if p.calls != 0 {
		t.Errorf("provider calls = %d", p.calls)
	}
}

func TestLogin_Rejected(t *testing.T) {
	p := &fakeProvider{signInFn: func(context.Context, string, string) (*identity.Session, error) {
		return nil, identity.ErrInvalidCredentials
	}}
	_, fields, err := newService(p, nil).Login(context.Background(), LoginRequest{Email: "a@b.co", Password: "longenough"})
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("err = %v, want ErrInvalidCredentials", err)
	}
	if fields != nil {
		t.Errorf("rejection must not produce field errors: %v", fields)
	}
	if p.calls != 1 {
		t.Errorf("provider calls = %d, want exactly 1", p.calls)
	}
}

func TestLogin_ProviderFailurePassesThrough(t *testing.T) {
	boom := errors.New("network down")
	p := &fakeProvider{signInFn: func(context.Context, string, string) (*identity.Session, error) {
		return nil, boom
	}}
	_, _, err := newService(p, nil).Login(context.Background(), LoginRequest{Email: "a@b.co", Password: "longenough"})
	if !errors.Is(err, boom) {
		t.Errorf("err = %v", err)
	}
}

func TestLogin_Success(t *testing.T) {
	p := &fakeProvider{signInFn: func(_ context.Context, email, password string) (*identity.Session, error) {
		if email != "a@b.co" || password != "longenough" {
			t.Errorf("unexpected credentials %s/%s", email, password)
		}
		return &identity.Session{Cookie: "cookie", ProfileID: "uid-1", ExpiresIn: time.Hour}, nil
	}}
	last := &fakeLastLogin{}
	svc := newService(p, last)
	fixed := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	svc.now = func() time.Time { return fixed }

	session, fields, err := svc.Login(context.Background(), LoginRequest{Email: "  a@b.co ", Password: "longenough"})
	if err != nil || fields != nil {
		t.Fatalf("unexpected failure: %v %v", fields, err)
	}
	if session.Cookie != "cookie" {
		t.Errorf("cookie = %q", session.Cookie)
	}
	if last.id != "uid-1" || !last.at.Equal(fixed) {
		t.Errorf("last login = %s at %v", last.id, last.at)
	}
}

func TestLogout_IgnoresRevokeFailure(t *testing.T) {
	revoked := ""
	p := &fakeProvider{revokeFn: func(_ context.Context, id string) error {
		revoked = id
		return errors.New("unavailable")
	}}
	newService(p, nil).Logout(context.Background(), "uid-1")
	if revoked != "uid-1" {
		t.Errorf("revoked = %q", revoked)
	}
}
