package search

import (
	"errors"
	"fmt"
	"time"
)

// DateLayout is the wire format of a single date in forms and query strings.
const DateLayout = "2006-01-02"

const displayLayout = "Jan 02, 2006"

var ErrEndBeforeStart = errors.New("search: end date is before start date")

// QuickSelectDays are the trip lengths offered next to the date picker.
var QuickSelectDays = []int{7, 14, 30}

type DateRange struct {
	Start time.Time `json:"start,omitempty"`
	End   time.Time `json:"end,omitempty"`
}

// Set parses a date field. A blank value clears it.
func (d *DateRange) Set(field, value string) error {
	var t time.Time
	if value != "" {
		parsed, err := time.Parse(DateLayout, value)
		if err != nil {
			return fmt.Errorf("search: invalid %s %q: %w", field, value, err)
		}
		t = parsed
	}
	switch field {
	case FieldStartDate:
		d.Start = t
	case FieldEndDate:
		d.End = t
	default:
		return fmt.Errorf("%w: %q", ErrUnknownField, field)
	}
	return nil
}

// QuickSelect sets End to days after Start. Without a start date it does nothing.
func (d *DateRange) QuickSelect(days int) {
	if d.Start.IsZero() {
		return
	}
	d.End = d.Start.AddDate(0, 0, days)
}

func (d DateRange) Complete() bool {
	return !d.Start.IsZero() && !d.End.IsZero()
}

func (d DateRange) Validate() error {
	if d.Complete() && d.End.Before(d.Start) {
		return ErrEndBeforeStart
	}
	return nil
}

// Format renders a complete range as "Jan 02, 2006 - Jan 09, 2006" and
// anything else as the empty string.
func (d DateRange) Format() string {
	if !d.Complete() {
		return ""
	}
	return d.Start.Format(displayLayout) + " - " + d.End.Format(displayLayout)
}
