package profile

import "testing"

func TestFormatPhone(t *testing.T) {
	tests := map[string]string{
		"01012345678":     "010-1234-5678",
		"010-1234-5678":   "010-1234-5678",
		"010":             "010",
		"0101234":         "010-1234",
		"010123456":       "010-1234-56",
		"0101234567899":   "010-1234-5678",
		"":                "",
		"+82 10 1234 567": "821-0123-4567",
	}
	for in, want := range tests {
		if got := FormatPhone(in); got != want {
			t.Errorf("FormatPhone(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestDigitsOnly(t *testing.T) {
	if got := DigitsOnly("(010) 12-34 x5"); got != "01012345" {
		t.Errorf("got %q", got)
	}
}
