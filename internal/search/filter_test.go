package search

import (
	"errors"
	"testing"
	"time"
)

func TestFilterSet_RegionResetsCity(t *testing.T) {
	f := DefaultFilter()
	if err := f.Set(FieldCity, "Tokyo"); err != nil {
		t.Fatal(err)
	}
	if err := f.Set(FieldRegion, "Europe"); err != nil {
		t.Fatal(err)
	}
	if f.City != "" {
		t.Errorf("city = %q, want reset", f.City)
	}
	if err := f.Set(FieldCity, "Paris"); err != nil {
		t.Fatal(err)
	}
	if err := f.Set(FieldRegion, "Europe"); err != nil {
		t.Fatal(err)
	}
	if f.City != "Paris" {
		t.Errorf("re-selecting the same region cleared the city")
	}
	if len(f.CityOptions()) == 0 {
		t.Error("Europe should offer cities")
	}
}

func TestFilterSet_ThemeResetsSubTheme(t *testing.T) {
	var bar FilterBar
	_ = bar.Set(FieldTheme, "Relaxation")
	_ = bar.Set(FieldSubTheme, "Spas")
	_ = bar.Set(FieldSeason, "Winter")
	_ = bar.Set(FieldTheme, "Nightlife")
	if bar.SubTheme != "" {
		t.Errorf("sub-theme = %q, want reset", bar.SubTheme)
	}
	if bar.Season != "Winter" {
		t.Errorf("unrelated field changed: %+v", bar)
	}

	f := DefaultFilter()
	_ = f.Set(FieldTheme, "Shopping")
	_ = f.Set(FieldSubTheme, "Markets")
	_ = f.Set(FieldTheme, "Romantic")
	if f.SubTheme != "" || f.City != "Seoul" {
		t.Errorf("filter = %+v", f)
	}
}

func TestFilterSet_UnknownField(t *testing.T) {
	f := DefaultFilter()
	if err := f.Set("budget", "cheap"); !errors.Is(err, ErrUnknownField) {
		t.Errorf("err = %v", err)
	}
}

func TestRequireLocation(t *testing.T) {
	tests := []struct {
		region, city string
		ok           bool
	}{
		{"Asia", "Seoul", true},
		{"Asia", "", false},
		{"", "Seoul", false},
		{"", "", false},
	}
	for _, tt := range tests {
		err := Filter{Region: tt.region, City: tt.city}.RequireLocation()
		if (err == nil) != tt.ok {
			t.Errorf("%q/%q: err = %v", tt.region, tt.city, err)
		}
	}
}

func TestValuesRoundTrip(t *testing.T) {
	f := Filter{
		Region:      "Asia",
		City:        "Tokyo",
		TravelDates: DateRange{Start: time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC)},
		FilterBar:   FilterBar{Theme: "Food & Dining", SubTheme: "Street Food", WalkingLevel: "Easy"},
	}
	v := f.Values()
	if v.Get(FieldEndDate) != "" || v.Get(FieldSeason) != "" {
		t.Errorf("blank fields leaked into %v", v)
	}
	got := FromValues(v)
	if got != f {
		t.Errorf("got %+v, want %+v", got, f)
	}
	if got.Location() != "Asia, Tokyo" {
		t.Errorf("location = %q", got.Location())
	}
}

func TestQueryIgnoresTripOnlyFields(t *testing.T) {
	f := Filter{Region: "Asia", City: "Seoul", FilterBar: FilterBar{Season: "Fall", GroupSize: "Solo", WalkingLevel: "Any"}}
	q := f.Query()
	if q.Region != "Asia" || q.City != "Seoul" || q.Season != "Fall" {
		t.Errorf("query = %+v", q)
	}
}

func TestPageFrom(t *testing.T) {
	for in, want := range map[string]int{"": 1, "0": 1, "-2": 1, "abc": 1, "3": 3} {
		f := Filter{}.Values()
		f.Set(FieldPage, in)
		if got := PageFrom(f); got != want {
			t.Errorf("PageFrom(%q) = %d, want %d", in, got, want)
		}
	}
}
