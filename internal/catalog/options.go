// Package catalog holds the static travel option tables that feed the
// selection, filter and registration dropdowns.
package catalog

var Regions = []string{
	"Asia",
	"Europe",
	"North America",
	"South America",
	"Africa",
	"Oceania",
}

var Cities = map[string][]string{
	"Asia":          {"Seoul", "Tokyo", "Bangkok", "Singapore", "Hong Kong", "Bali"},
	"Europe":        {"Paris", "London", "Rome", "Barcelona", "Amsterdam", "Berlin"},
	"North America": {"New York", "Los Angeles", "Toronto", "Vancouver", "Mexico City"},
	"South America": {"Rio de Janeiro", "Buenos Aires", "Lima", "Santiago"},
	"Africa":        {"Cairo", "Cape Town", "Marrakech", "Nairobi"},
	"Oceania":       {"Sydney", "Melbourne", "Auckland", "Wellington"},
}

var Themes = []string{
	"Culture & History",
	"Nature & Adventure",
	"Food & Dining",
	"Shopping",
	"Relaxation",
	"Nightlife",
	"Family Friendly",
	"Romantic",
}

var SubThemes = map[string][]string{
	"Culture & History":  {"Museums", "Temples", "Historical Sites", "Art Galleries"},
	"Nature & Adventure": {"Hiking", "Beaches", "Mountains", "Water Sports"},
	"Food & Dining":      {"Local Cuisine", "Street Food", "Fine Dining", "Cafes"},
	"Shopping":           {"Markets", "Malls", "Boutiques", "Souvenirs"},
	"Relaxation":         {"Spas", "Hot Springs", "Beaches", "Yoga"},
	"Nightlife":          {"Bars", "Clubs", "Live Music", "Rooftops"},
	"Family Friendly":    {"Theme Parks", "Zoos", "Museums", "Parks"},
	"Romantic":           {"Sunset Spots", "Fine Dining", "Scenic Views", "Couples Activities"},
}

var Seasons = []string{"Spring", "Summer", "Fall", "Winter", "Any"}

var GroupSizes = []string{
	"Solo",
	"Couple (2)",
	"Small Group (3-5)",
	"Medium Group (6-10)",
	"Large Group (10+)",
}

var WalkingLevels = []string{"Easy", "Moderate", "Challenging", "Any"}

// Currencies offered in the preferred-currency picker; the first entry is the default.
var Currencies = []string{"KRW", "USD", "EUR", "JPY", "CNY", "GBP"}

const DefaultCurrency = "KRW"

// CitiesFor returns the cities of region, or nil for a blank or unknown region.
func CitiesFor(region string) []string {
	return Cities[region]
}

// SubThemesFor returns the sub-themes of theme, or nil for a blank or unknown theme.
func SubThemesFor(theme string) []string {
	return SubThemes[theme]
}

func IsRegion(region string) bool { return contains(Regions, region) }

func IsCity(region, city string) bool { return contains(Cities[region], city) }

func IsTheme(theme string) bool { return contains(Themes, theme) }

func IsSubTheme(theme, sub string) bool { return contains(SubThemes[theme], sub) }

func IsSeason(season string) bool { return contains(Seasons, season) }

func IsGroupSize(size string) bool { return contains(GroupSizes, size) }

func IsWalkingLevel(level string) bool { return contains(WalkingLevels, level) }

func IsCurrency(code string) bool { return contains(Currencies, code) }

func contains(values []string, v string) bool {
	for _, candidate := range values {
		if candidate == v {
			return true
		}
	}
	return false
}
