package profile

import "strings"

// DigitsOnly strips everything but ASCII digits.
func DigitsOnly(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// FormatPhone groups up to eleven digits as 3-4-4.
func FormatPhone(s string) string {
	d := DigitsOnly(s)
	switch {
	case len(d) <= 3:
		return d
	case len(d) <= 7:
		return d[:3] + "-" + d[3:]
	case len(d) > 11:
		d = d[:11]
	}
	return d[:3] + "-" + d[3:7] + "-" + d[7:]
}
