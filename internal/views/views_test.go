package views

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/anonto42/localflow/internal/search"
)

func TestNewParsesEveryPage(t *testing.T) {
	r, err := New()
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	for _, name := range []string{"home", "messages", "select", "board_search", "join", "login", "profile", "notifications"} {
		if !r.Has(name) {
			t.Errorf("page %q not parsed", name)
		}
	}
	if r.Has("layout") {
		t.Error("layout must not be a page of its own")
	}
}

func TestRenderWrapsContentInLayout(t *testing.T) {
	r, err := New()
	if err != nil {
		t.Fatal(err)
	}
	var buf bytes.Buffer
	page := Page{Title: "Messages", Nav: Nav{IsLoggedIn: true, Username: "ana", Theme: "dark", HasNotifications: true}}
	if err := r.Render(&buf, "messages", page, nil); err != nil {
		t.Fatalf("Render: %v", err)
	}
	out := buf.String()
	for _, want := range []string{"<title>Messages | LocalFlow</title>", `data-theme="dark"`, "ana", `class="dot"`} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q", want)
		}
	}
	if err := r.Render(&buf, "missing", page, nil); err == nil {
		t.Error("unknown page should fail")
	}
}

func TestDateValue(t *testing.T) {
	dateValue := funcs["dateValue"].(func(search.DateRange, string) string)
	d := search.DateRange{Start: time.Date(2024, 7, 1, 0, 0, 0, 0, time.UTC)}
	if got := dateValue(d, "start"); got != "2024-07-01" {
		t.Errorf("start = %q", got)
	}
	if got := dateValue(d, "end"); got != "" {
		t.Errorf("unset end = %q", got)
	}
}
