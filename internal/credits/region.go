package credits

import (
	"regexp"
	"strings"
	"sync"
)

// countryNames are the English country and region names recognized as
// artist suffixes. Matching is case-insensitive by name key.
var countryNames = []string{
	"Afghanistan", "Albania", "Algeria", "Argentina", "Armenia",
	"Australia", "Austria", "Azerbaijan", "Bahamas", "Bahrain",
	"Bangladesh", "Barbados", "Belarus", "Belgium", "Bolivia",
	"Bosnia", "Bosnia and Herzegovina", "Brazil", "Bulgaria",
	"Cambodia", "Cameroon", "Canada", "Chile", "China", "Colombia",
	"Congo", "Costa Rica", "Croatia", "Cuba", "Cyprus",
	"Czech Republic", "Czechia", "Denmark", "Dominican Republic",
	"Ecuador", "Egypt", "El Salvador", "England", "Estonia",
	"Ethiopia", "Finland", "France", "Georgia", "Germany", "Ghana",
	"Greece", "Guatemala", "Haiti", "Honduras", "Hong Kong",
	"Hungary", "Iceland", "India", "Indonesia", "Iran", "Iraq",
	"Ireland", "Israel", "Italy", "Jamaica", "Japan", "Jordan",
	"Kazakhstan", "Kenya", "Kosovo", "Kuwait", "Latvia", "Lebanon",
	"Lithuania", "Luxembourg", "Macedonia", "Malaysia", "Malta",
	"Mexico", "Moldova", "Monaco", "Mongolia", "Montenegro",
	"Morocco", "Netherlands", "New Zealand", "Nicaragua", "Nigeria",
	"North Macedonia", "Northern Ireland", "Norway", "Pakistan",
	"Panama", "Paraguay", "Peru", "Philippines", "Poland",
	"Portugal", "Puerto Rico", "Qatar", "Romania", "Russia",
	"Saudi Arabia", "Scotland", "Senegal", "Serbia", "Singapore",
	"Slovakia", "Slovenia", "South Africa", "South Korea", "Spain",
	"Sri Lanka", "Sweden", "Switzerland", "Syria", "Taiwan",
	"Tanzania", "Thailand", "Tunisia", "Turkey", "UK", "Ukraine",
	"United Arab Emirates", "United Kingdom", "United States",
	"Uruguay", "USA", "Uzbekistan", "Venezuela", "Vietnam", "Wales",
}

// regionCodes are the ISO 3166-1 alpha-2 codes, matched uppercase only
// (a lowercase two-letter suffix is far more likely to be part of the
// name).
var regionCodes = []string{
	"AD", "AE", "AF", "AG", "AL", "AM", "AO", "AR", "AT", "AU",
	"AZ", "BA", "BB", "BD", "BE", "BF", "BG", "BH", "BI", "BJ",
	"BN", "BO", "BR", "BS", "BT", "BW", "BY", "BZ", "CA", "CD",
	"CF", "CG", "CH", "CI", "CL", "CM", "CN", "CO", "CR", "CU",
	"CV", "CY", "CZ", "DE", "DJ", "DK", "DM", "DO", "DZ", "EC",
	"EE", "EG", "ER", "ES", "ET", "FI", "FJ", "FM", "FR", "GA",
	"GB", "GD", "GE", "GH", "GM", "GN", "GQ", "GR", "GT", "GW",
	"GY", "HN", "HR", "HT", "HU", "ID", "IE", "IL", "IN", "IQ",
	"IR", "IS", "IT", "JM", "JO", "JP", "KE", "KG", "KH", "KI",
	"KM", "KN", "KP", "KR", "KW", "KZ", "LA", "LB", "LC", "LI",
	"LK", "LR", "LS", "LT", "LU", "LV", "LY", "MA", "MC", "MD",
	"ME", "MG", "MH", "MK", "ML", "MM", "MN", "MR", "MT", "MU",
	"MV", "MW", "MX", "MY", "MZ", "NA", "NE", "NG", "NI", "NL",
	"NO", "NP", "NR", "NZ", "OM", "PA", "PE", "PG", "PH", "PK",
	"PL", "PS", "PT", "PW", "PY", "QA", "RO", "RS", "RU", "RW",
	"SA", "SB", "SC", "SD", "SE", "SG", "SI", "SK", "SL", "SM",
	"SN", "SO", "SR", "SS", "ST", "SV", "SY", "SZ", "TD", "TG",
	"TH", "TJ", "TL", "TM", "TN", "TO", "TR", "TT", "TV", "TW",
	"TZ", "UA", "UG", "US", "UY", "UZ", "VA", "VC", "VE", "VN",
	"VU", "WS", "YE", "ZA", "ZM", "ZW",
}

var (
	regionOnce    sync.Once
	countryKeySet map[string]bool
	regionCodeSet map[string]bool
)

func regionTables() (map[string]bool, map[string]bool) {
	regionOnce.Do(func() {
		countryKeySet = make(map[string]bool, len(countryNames))
		for _, name := range countryNames {
			countryKeySet[NameKey(name)] = true
		}
		regionCodeSet = make(map[string]bool, len(regionCodes))
		for _, code := range regionCodes {
			regionCodeSet[code] = true
		}
	})
	return countryKeySet, regionCodeSet
}

var (
	bracketSuffixRegexp = regexp.MustCompile(`\s*\(([^()]+)\)\s*$`)
	dashSuffixRegexp    = regexp.MustCompile(`\s+-\s+([^-]+)$`)
)

// StripRegionSuffix removes a trailing region marker from an artist
// name: "(Country)", a two-letter "(XX)" region code, or "- Country".
// Anything not in the embedded region catalog is left alone.
func StripRegionSuffix(artist string) string {
	countries, codes := regionTables()

	if m := bracketSuffixRegexp.FindStringSubmatchIndex(artist); m != nil {
		inner := strings.TrimSpace(artist[m[2]:m[3]])
		bare := strings.TrimSpace(artist[:m[0]])
		if bare != "" && (countries[NameKey(inner)] || codes[inner]) {
			return bare
		}
	}

	if m := dashSuffixRegexp.FindStringSubmatchIndex(artist); m != nil {
		inner := strings.TrimSpace(artist[m[2]:m[3]])
		bare := strings.TrimSpace(artist[:m[0]])
		if bare != "" && countries[NameKey(inner)] {
			return bare
		}
	}

	return artist
}
