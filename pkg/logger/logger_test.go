package logger

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/sirupsen/logrus"
)

func TestNew(t *testing.T) {
	var buf bytes.Buffer
	log, err := New("debug", "json", &buf)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if log.GetLevel() != logrus.DebugLevel {
		t.Errorf("level = %v", log.GetLevel())
	}
	log.WithField("profile_id", "ana").Info("hello")

	var entry map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("json output: %v (%s)", err, buf.String())
	}
	if entry["msg"] != "hello" || entry["profile_id"] != "ana" {
		t.Errorf("entry = %v", entry)
	}

	if _, err := New("loud", "json", &buf); err == nil {
		t.Error("unknown level should fail")
	}

	buf.Reset()
	textLog, err := New("info", "text", &buf)
	if err != nil {
		t.Fatal(err)
	}
	textLog.Info("plain")
	if !strings.Contains(buf.String(), "msg=plain") {
		t.Errorf("text output = %q", buf.String())
	}
}

func TestRequestLogger(t *testing.T) {
	var buf bytes.Buffer
	log, err := New("info", "json", &buf)
	if err != nil {
		t.Fatal(err)
	}

	e := echo.New()
	e.Use(middleware.RequestID())
	e.Use(func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			c.Set("profileID", "ana")
			return next(c)
		}
	})
	e.Use(RequestLogger(log, "profileID"))
	e.GET("/missing", func(c echo.Context) error { return echo.NewHTTPError(http.StatusNotFound, "Not found") })

	e.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/missing", nil))

	var entry map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("json output: %v (%s)", err, buf.String())
	}
	if entry["status"] != float64(http.StatusNotFound) {
		t.Errorf("status = %v", entry["status"])
	}
	if entry["level"] != "warning" {
		t.Errorf("level = %v", entry["level"])
	}
	if entry["profile_id"] != "ana" || entry["uri"] != "/missing" {
		t.Errorf("entry = %v", entry)
	}
	if id, _ := entry["request_id"].(string); id == "" {
		t.Error("request id not logged")
	}
}
