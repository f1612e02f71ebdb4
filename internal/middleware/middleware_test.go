package middleware

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/anonto42/localflow/internal/identity"
	"github.com/anonto42/localflow/internal/search"
	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
)

type fakeProvider struct {
	identity.Provider
	verifyFn func(ctx context.Context, cookie string) (string, error)
}

func (f *fakeProvider) VerifySession(ctx context.Context, cookie string) (string, error) {
	return f.verifyFn(ctx, cookie)
}

func discard() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func TestSession(t *testing.T) {
	p := &fakeProvider{verifyFn: func(_ context.Context, cookie string) (string, error) {
		if cookie == "good" {
			return "uid-1", nil
		}
		return "", identity.ErrSessionInvalid
	}}
	mw := Session(p, "sess", discard())

	tests := []struct {
		name   string
		cookie string
		want   string
	}{
		{"no cookie", "", ""},
		{"valid", "good", "uid-1"},
		{"invalid", "bad", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := echo.New()
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.cookie != "" {
				req.AddCookie(&http.Cookie{Name: "sess", Value: tt.cookie})
			}
			c := e.NewContext(req, httptest.NewRecorder())
			var got string
			err := mw(func(c echo.Context) error {
				got = ProfileID(c)
				return nil
			})(c)
			if err != nil {
				t.Fatal(err)
			}
			if got != tt.want {
				t.Errorf("profile id = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestRequireSession(t *testing.T) {
	e := echo.New()
	called := false
	h := RequireSession(func(c echo.Context) error {
		called = true
		return nil
	})

	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/my/profile", nil), httptest.NewRecorder())
	err := h(c)
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusUnauthorized {
		t.Fatalf("err = %v, want 401", err)
	}
	if called {
		t.Error("handler ran without a session")
	}

	c = e.NewContext(httptest.NewRequest(http.MethodGet, "/my/profile", nil), httptest.NewRecorder())
	c.Set(ProfileIDKey, "uid-1")
	if err := h(c); err != nil || !called {
		t.Errorf("err=%v called=%v", err, called)
	}
}

func TestSearchContext(t *testing.T) {
	codec := search.NewStateCodec("secret", time.Minute)
	token, err := codec.Encode(search.Filter{Region: "Asia", City: "Tokyo"})
	if err != nil {
		t.Fatal(err)
	}

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/board/search", nil)
	req.AddCookie(&http.Cookie{Name: search.StateCookieName, Value: token})
	c := e.NewContext(req, httptest.NewRecorder())

	var got search.Filter
	var ok bool
	if err := SearchContext(codec)(func(c echo.Context) error {
		got, ok = SearchFilter(c)
		return nil
	})(c); err != nil {
		t.Fatal(err)
	}
	if !ok || got.City != "Tokyo" {
		t.Errorf("filter = %+v ok=%v", got, ok)
	}

	req = httptest.NewRequest(http.MethodGet, "/board/search", nil)
	req.AddCookie(&http.Cookie{Name: search.StateCookieName, Value: "tampered"})
	c = e.NewContext(req, httptest.NewRecorder())
	_ = SearchContext(codec)(func(c echo.Context) error {
		_, ok = SearchFilter(c)
		return nil
	})(c)
	if ok {
		t.Error("tampered state must be ignored")
	}
}
