package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
)

func TestLocalPath(t *testing.T) {
	tests := []struct {
		target string
		want   string
	}{
		{"/select", "/select"},
		{"/board/search?region=Asia", "/board/search?region=Asia"},
		{"", "/"},
		{"https://evil.example.com/", "/"},
		{"//evil.example.com", "/"},
		{"/\\evil.example.com", "/"},
	}
	for _, tt := range tests {
		if got := localPath(tt.target, "/"); got != tt.want {
			t.Errorf("localPath(%q) = %q, want %q", tt.target, got, tt.want)
		}
	}
}

func TestRefererPath(t *testing.T) {
	e := echo.New()
	tests := []struct {
		name    string
		referer string
		want    string
	}{
		{"none", "", ""},
		{"same host", "http://example.com/board/search?page=2", "/board/search?page=2"},
		{"other host", "http://other.example.com/board/search", ""},
		{"relative", "/select", "/select"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/board/1/like", nil)
			if tt.referer != "" {
				req.Header.Set("Referer", tt.referer)
			}
			c := e.NewContext(req, httptest.NewRecorder())
			if got := refererPath(c); got != tt.want {
				t.Errorf("refererPath = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestWantsJSON(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/", nil)
	req.Header.Set(echo.HeaderAccept, "application/json, text/plain, */*")
	if !wantsJSON(e.NewContext(req, httptest.NewRecorder())) {
		t.Error("fetch Accept header should want JSON")
	}

	req = httptest.NewRequest(http.MethodPost, "/", nil)
	req.Header.Set(echo.HeaderAccept, "text/html,application/xhtml+xml")
	c := e.NewContext(req, httptest.NewRecorder())
	if wantsJSON(c) || !wantsHTML(c) {
		t.Error("browser Accept header should want HTML")
	}
}
