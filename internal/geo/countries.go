package geo

import (
	"sort"
	"strings"
)

// euMembers is the EU-27.
var euMembers = map[string]bool{
	"AT": true, "BE": true, "BG": true, "HR": true, "CY": true,
	"CZ": true, "DK": true, "EE": true, "FI": true, "FR": true,
	"DE": true, "GR": true, "HU": true, "IE": true, "IT": true,
	"LV": true, "LT": true, "LU": true, "MT": true, "NL": true,
	"PL": true, "PT": true, "RO": true, "SK": true, "SI": true,
	"ES": true, "SE": true,
}

// schengen is the Schengen area: EU-27 minus Ireland and Cyprus, plus the
// four associated EFTA states.
var schengen = map[string]bool{
	"AT": true, "BE": true, "BG": true, "HR": true, "CZ": true,
	"DK": true, "EE": true, "FI": true, "FR": true, "DE": true,
	"GR": true, "HU": true, "IT": true, "LV": true, "LT": true,
	"LU": true, "MT": true, "NL": true, "PL": true, "PT": true,
	"RO": true, "SK": true, "SI": true, "ES": true, "SE": true,
	"IS": true, "LI": true, "NO": true, "CH": true,
}

// widerEurope is the allow-list for "short-haul" budget assumptions:
// EU plus EFTA, the UK, and the programme's neighbouring partner countries.
var widerEurope = map[string]bool{
	"AT": true, "BE": true, "BG": true, "HR": true, "CY": true,
	"CZ": true, "DK": true, "EE": true, "FI": true, "FR": true,
	"DE": true, "GR": true, "HU": true, "IE": true, "IT": true,
	"LV": true, "LT": true, "LU": true, "MT": true, "NL": true,
	"PL": true, "PT": true, "RO": true, "SK": true, "SI": true,
	"ES": true, "SE": true, "IS": true, "LI": true, "NO": true,
	"CH": true, "GB": true, "AL": true, "BA": true, "ME": true,
	"MK": true, "RS": true, "TR": true, "UA": true,
}

// countryNames maps a lowercase country name to its ISO code, for parsing
// free-text "City, Country" destinations.
var countryNames = map[string]string{
	"albania": "AL", "austria": "AT", "belgium": "BE",
	"bosnia and herzegovina": "BA", "bulgaria": "BG", "croatia": "HR",
	"cyprus": "CY", "czech republic": "CZ", "czechia": "CZ",
	"denmark": "DK", "estonia": "EE", "finland": "FI", "france": "FR",
	"germany": "DE", "greece": "GR", "hungary": "HU", "iceland": "IS",
	"ireland": "IE", "italy": "IT", "latvia": "LV", "liechtenstein": "LI",
	"lithuania": "LT", "luxembourg": "LU", "malta": "MT",
	"montenegro": "ME", "netherlands": "NL", "north macedonia": "MK",
	"norway": "NO", "poland": "PL", "portugal": "PT", "romania": "RO",
	"serbia": "RS", "slovakia": "SK", "slovenia": "SI", "spain": "ES",
	"sweden": "SE", "switzerland": "CH", "turkey": "TR", "türkiye": "TR",
	"ukraine": "UA", "united kingdom": "GB",
}

// IsEUMember reports whether the country code is an EU member state.
func IsEUMember(country string) bool {
	return euMembers[strings.ToUpper(country)]
}

// IsSchengen reports whether the country code is in the Schengen area.
func IsSchengen(country string) bool {
	return schengen[strings.ToUpper(country)]
}

// IsWiderEurope reports whether the country code is in the short-haul
// Europe allow-list.
func IsWiderEurope(country string) bool {
	return widerEurope[strings.ToUpper(country)]
}

// sortedCountryNames keeps substring matching deterministic when a
// destination happens to mention more than one country name.
var sortedCountryNames = func() []string {
	names := make([]string, 0, len(countryNames))
	for name := range countryNames {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}()

// ResolveCountry parses a free-text destination ("City, Country", a bare
// country name, or a trailing ISO code) into an ISO country code.
// Name matching is a case-insensitive substring check; failing that, any
// trailing 2-letter alphabetic token is treated as an ISO code, known or
// not, so out-of-programme destinations like "Tokyo, JP" keep their code.
//
// Callers own their fallback when ok is false, and different callers
// deliberately fall back differently.
func ResolveCountry(destination string) (code string, ok bool) {
	lower := strings.ToLower(destination)
	for _, name := range sortedCountryNames {
		if strings.Contains(lower, name) {
			return countryNames[name], true
		}
	}

	fields := strings.FieldsFunc(destination, func(r rune) bool {
		return r == ',' || r == ' ' || r == '(' || r == ')'
	})
	if len(fields) > 0 {
		last := strings.ToUpper(fields[len(fields)-1])
		if len(last) == 2 && isAlphaUpper(last) {
			return last, true
		}
	}
	return "", false
}

func isAlphaUpper(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < 'A' || s[i] > 'Z' {
			return false
		}
	}
	return true
}

// SplitDestination splits a free-text destination into its city part (the
// text before the first comma) and a resolved ISO country code. The country
// is empty when it cannot be resolved.
func SplitDestination(destination string) (city, country string) {
	city = strings.TrimSpace(destination)
	if i := strings.Index(destination, ","); i >= 0 {
		city = strings.TrimSpace(destination[:i])
	}
	if code, ok := ResolveCountry(destination); ok {
		country = code
	}
	return city, country
}
