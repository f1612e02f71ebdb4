package profile

import (
	"errors"
	"net/url"
	"reflect"
	"testing"

	"github.com/anonto42/localflow/internal/models"
	"github.com/anonto42/localflow/internal/validators"
)

func parse(t *testing.T, kv ...string) (Update, error) {
	t.Helper()
	form := url.Values{}
	for i := 0; i+1 < len(kv); i += 2 {
		form.Add(kv[i], kv[i+1])
	}
	return NewParser(validators.NewValidator()).Parse(form)
}

func TestParse_EachVariantOwnsItsColumns(t *testing.T) {
	tests := []struct {
		name    string
		kv      []string
		columns []string
	}{
		{"avatar", []string{"field", "avatar", "value", "https://img.example.com/me.png"}, []string{"avatar"}},
		{"phone", []string{"field", "phone", "value", "010-1234-5678"}, []string{"phone"}},
		{"email", []string{"field", "email", "value", "me@example.com"}, []string{"email"}},
		{"country", []string{"field", "country", "value", "Korea"}, []string{"country"}},
		{"language", []string{"field", "language", "value", "Korean"}, []string{"language"}},
		{"interests", []string{"field", "interests", "value", "food, hiking"}, []string{"interests"}},
		{"bio", []string{"field", "bio", "value", "hello"}, []string{"bio"}},
		{"currency", []string{"field", "preferred_currency", "value", "USD"}, []string{"preferred_currency"}},
		{"settings", []string{"field", "settings"}, []string{"notification_settings", "privacy_settings"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			u, err := parse(t, tt.kv...)
			if err != nil {
				t.Fatalf("Parse: %v", err)
			}
			cols := u.Columns()
			if len(cols) != len(tt.columns) {
				t.Fatalf("columns = %v, want %v", cols, tt.columns)
			}
			for _, c := range tt.columns {
				if _, ok := cols[c]; !ok {
					t.Errorf("missing column %s in %v", c, cols)
				}
			}
		})
	}
}

func TestParse_UnknownField(t *testing.T) {
	for _, field := range []string{"", "username", "role", "is_verified"} {
		if _, err := parse(t, "field", field, "value", "x"); !errors.Is(err, ErrUnknownField) {
			t.Errorf("field %q: err = %v", field, err)
		}
	}
}

func TestParse_PhoneKeepsDigits(t *testing.T) {
	u, err := parse(t, "field", "phone", "value", "010-1234-5678")
	if err != nil {
		t.Fatal(err)
	}
	if got := u.(PhoneUpdate).Digits; got != "01012345678" {
		t.Errorf("digits = %q", got)
	}

	_, err = parse(t, "field", "phone", "value", "12-34")
	var fields validators.FieldErrors
	if !errors.As(err, &fields) || !fields.Has("value") {
		t.Errorf("short phone err = %v", err)
	}
}

func TestParse_Interests(t *testing.T) {
	u, _ := parse(t, "field", "interests", "value", " food ,hiking,, museums ")
	if got := u.(InterestsUpdate).Interests; !reflect.DeepEqual(got, []string{"food", "hiking", "museums"}) {
		t.Errorf("interests = %v", got)
	}
	u, _ = parse(t, "field", "interests", "value", "")
	if got := u.(InterestsUpdate).Interests; got == nil || len(got) != 0 {
		t.Errorf("empty interests = %#v", got)
	}
}

func TestParse_BioIsSanitised(t *testing.T) {
	u, err := parse(t, "field", "bio", "value", `<script>alert(1)</script><b>Hi</b> there`)
	if err != nil {
		t.Fatal(err)
	}
	if got := u.(BioUpdate).Bio; got != "Hi there" {
		t.Errorf("bio = %q", got)
	}
}

func TestParse_Rejections(t *testing.T) {
	tests := []struct {
		name string
		kv   []string
	}{
		{"bad email", []string{"field", "email", "value", "nope"}},
		{"blank email", []string{"field", "email", "value", ""}},
		{"bad avatar", []string{"field", "avatar", "value", "not a url"}},
		{"unknown currency", []string{"field", "preferred_currency", "value", "BTC"}},
		{"bad visibility", []string{"field", "settings", "profile_visibility", "everyone"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := parse(t, tt.kv...)
			var fields validators.FieldErrors
			if !errors.As(err, &fields) {
				t.Errorf("err = %v, want FieldErrors", err)
			}
		})
	}
}

func TestParse_Settings(t *testing.T) {
	u, err := parse(t,
		"field", "settings",
		"email_notification", "on",
		"marketing_notification", "on",
		"profile_visibility", "friends",
		"show_phone", "on",
	)
	if err != nil {
		t.Fatal(err)
	}
	s := u.(SettingsUpdate)
	want := SettingsUpdate{
		Notifications: models.NotificationSettings{Email: true, Marketing: true},
		Privacy:       models.PrivacySettings{ProfileVisibility: models.VisibilityFriends, ShowPhone: true},
	}
	if s != want {
		t.Errorf("got %+v, want %+v", s, want)
	}
}

func TestParse_CurrencyDefaults(t *testing.T) {
	u, err := parse(t, "field", "preferred_currency", "value", "")
	if err != nil {
		t.Fatal(err)
	}
	if u.(CurrencyUpdate).Currency != "KRW" {
		t.Errorf("currency = %q", u.(CurrencyUpdate).Currency)
	}
}
