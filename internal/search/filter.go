// Package search holds the travel filter that drives board search, the
// results page filter bar and the handoff of both between pages.
package search

import (
	"errors"
	"fmt"
	"net/url"
	"strconv"

	"github.com/anonto42/localflow/internal/catalog"
	"github.com/anonto42/localflow/internal/repositories"
)

const LocationRequiredAlert = "Region and City are required."

var (
	ErrLocationRequired = errors.New("search: region and city are required")
	ErrUnknownField     = errors.New("search: unknown filter field")
)

// Filter field keys, shared by forms and query strings.
const (
	FieldRegion       = "region"
	FieldCity         = "city"
	FieldTheme        = "theme"
	FieldSubTheme     = "sub_theme"
	FieldSeason       = "season"
	FieldGroupSize    = "group_size"
	FieldWalkingLevel = "walking_level"
	FieldStartDate    = "start_date"
	FieldEndDate      = "end_date"
	FieldPage         = "page"
)

// FilterBar is the narrowing part of a filter, shown above search results.
type FilterBar struct {
	Theme        string `json:"theme,omitempty"`
	SubTheme     string `json:"sub_theme,omitempty"`
	Season       string `json:"season,omitempty"`
	GroupSize    string `json:"group_size,omitempty"`
	WalkingLevel string `json:"walking_level,omitempty"`
}

// Set assigns one field. Changing the theme clears the sub-theme.
func (b *FilterBar) Set(field, value string) error {
	switch field {
	case FieldTheme:
		if value != b.Theme {
			b.SubTheme = ""
		}
		b.Theme = value
	case FieldSubTheme:
		b.SubTheme = value
	case FieldSeason:
		b.Season = value
	case FieldGroupSize:
		b.GroupSize = value
	case FieldWalkingLevel:
		b.WalkingLevel = value
	default:
		return fmt.Errorf("%w: %q", ErrUnknownField, field)
	}
	return nil
}

// SubThemeOptions lists the sub-themes offered for the current theme.
func (b FilterBar) SubThemeOptions() []string {
	return catalog.SubThemesFor(b.Theme)
}

type Filter struct {
	Region      string    `json:"region"`
	City        string    `json:"city"`
	TravelDates DateRange `json:"travel_dates"`
	FilterBar
}

// DefaultFilter is the selection page's starting point.
func DefaultFilter() Filter {
	return Filter{Region: "Asia", City: "Seoul"}
}

// Set assigns one field. Changing the region clears the city.
func (f *Filter) Set(field, value string) error {
	switch field {
	case FieldRegion:
		if value != f.Region {
			f.City = ""
		}
		f.Region = value
	case FieldCity:
		f.City = value
	case FieldStartDate, FieldEndDate:
		return f.TravelDates.Set(field, value)
	default:
		return f.FilterBar.Set(field, value)
	}
	return nil
}

func (f Filter) CityOptions() []string {
	return catalog.CitiesFor(f.Region)
}

// RequireLocation reports ErrLocationRequired unless both region and city are set.
func (f Filter) RequireLocation() error {
	if f.Region == "" || f.City == "" {
		return ErrLocationRequired
	}
	return nil
}

// Location is the read-only search text shown in the navigation bar.
func (f Filter) Location() string {
	if f.Region == "" && f.City == "" {
		return ""
	}
	return f.Region + ", " + f.City
}

// Query converts the filter to repository terms. Group size, walking level
// and dates describe the trip, not the boards, and do not narrow results.
func (f Filter) Query() repositories.BoardQuery {
	return repositories.BoardQuery{
		Region:   f.Region,
		City:     f.City,
		Theme:    f.Theme,
		SubTheme: f.SubTheme,
		Season:   f.Season,
	}
}

// Values encodes the filter as query parameters, omitting blanks.
func (f Filter) Values() url.Values {
	v := url.Values{}
	put := func(key, value string) {
		if value != "" {
			v.Set(key, value)
		}
	}
	put(FieldRegion, f.Region)
	put(FieldCity, f.City)
	put(FieldTheme, f.Theme)
	put(FieldSubTheme, f.SubTheme)
	put(FieldSeason, f.Season)
	put(FieldGroupSize, f.GroupSize)
	put(FieldWalkingLevel, f.WalkingLevel)
	if !f.TravelDates.Start.IsZero() {
		put(FieldStartDate, f.TravelDates.Start.Format(DateLayout))
	}
	if !f.TravelDates.End.IsZero() {
		put(FieldEndDate, f.TravelDates.End.Format(DateLayout))
	}
	return v
}

// FromValues decodes query parameters. Unparseable dates are dropped.
func FromValues(v url.Values) Filter {
	f := Filter{
		Region: v.Get(FieldRegion),
		City:   v.Get(FieldCity),
		FilterBar: FilterBar{
			Theme:        v.Get(FieldTheme),
			SubTheme:     v.Get(FieldSubTheme),
			Season:       v.Get(FieldSeason),
			GroupSize:    v.Get(FieldGroupSize),
			WalkingLevel: v.Get(FieldWalkingLevel),
		},
	}
	_ = f.TravelDates.Set(FieldStartDate, v.Get(FieldStartDate))
	_ = f.TravelDates.Set(FieldEndDate, v.Get(FieldEndDate))
	return f
}

// PageFrom reads the page query parameter; anything invalid is page 1.
func PageFrom(v url.Values) int {
	page, err := strconv.Atoi(v.Get(FieldPage))
	if err != nil || page < 1 {
		return 1
	}
	return page
}
