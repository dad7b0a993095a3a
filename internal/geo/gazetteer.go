// Package geo is the static coordinate provider and country reference data
// for the budget engine: capital coordinates per country, coordinates for
// common exchange destinations, and the EU/Schengen classification sets.
//
// The engine itself never geocodes; this package plays the external
// coordinate-provider role and can be swapped for a real geocoder.
package geo

import (
	"errors"
	"fmt"
	"strings"

	"github.com/plusplan/plusplan/internal/grant"
)

// ErrUnknownPlace is returned when no coordinate is on record for a
// requested country or city.
var ErrUnknownPlace = errors.New("no coordinate on record")

// capitals maps an ISO country code to its capital, used as the travel
// origin for that country's participant group.
var capitals = map[string]grant.GeoPoint{
	"AL": {Lat: 41.3275, Lon: 19.8187},
	"AT": {Lat: 48.2082, Lon: 16.3738},
	"BA": {Lat: 43.8563, Lon: 18.4131},
	"BE": {Lat: 50.8503, Lon: 4.3517},
	"BG": {Lat: 42.6977, Lon: 23.3219},
	"CH": {Lat: 46.9480, Lon: 7.4474},
	"CY": {Lat: 35.1856, Lon: 33.3823},
	"CZ": {Lat: 50.0755, Lon: 14.4378},
	"DE": {Lat: 52.5200, Lon: 13.4050},
	"DK": {Lat: 55.6761, Lon: 12.5683},
	"EE": {Lat: 59.4370, Lon: 24.7536},
	"ES": {Lat: 40.4168, Lon: -3.7038},
	"FI": {Lat: 60.1699, Lon: 24.9384},
	"FR": {Lat: 48.8566, Lon: 2.3522},
	"GB": {Lat: 51.5074, Lon: -0.1278},
	"GR": {Lat: 37.9838, Lon: 23.7275},
	"HR": {Lat: 45.8150, Lon: 15.9819},
	"HU": {Lat: 47.4979, Lon: 19.0402},
	"IE": {Lat: 53.3498, Lon: -6.2603},
	"IS": {Lat: 64.1466, Lon: -21.9426},
	"IT": {Lat: 41.9028, Lon: 12.4964},
	"LI": {Lat: 47.1410, Lon: 9.5209},
	"LT": {Lat: 54.6872, Lon: 25.2797},
	"LU": {Lat: 49.6116, Lon: 6.1319},
	"LV": {Lat: 56.9496, Lon: 24.1052},
	"ME": {Lat: 42.4304, Lon: 19.2594},
	"MK": {Lat: 41.9973, Lon: 21.4280},
	"MT": {Lat: 35.8989, Lon: 14.5146},
	"NL": {Lat: 52.3676, Lon: 4.9041},
	"NO": {Lat: 59.9139, Lon: 10.7522},
	"PL": {Lat: 52.2297, Lon: 21.0122},
	"PT": {Lat: 38.7223, Lon: -9.1393},
	"RO": {Lat: 44.4268, Lon: 26.1025},
	"RS": {Lat: 44.7866, Lon: 20.4489},
	"SE": {Lat: 59.3293, Lon: 18.0686},
	"SI": {Lat: 46.0569, Lon: 14.5058},
	"SK": {Lat: 48.1486, Lon: 17.1077},
	"TR": {Lat: 39.9334, Lon: 32.8597},
	"UA": {Lat: 50.4501, Lon: 30.5234},
}

// cities maps a lowercase city name to its coordinate, covering common
// exchange destinations beyond the capitals.
var cities = map[string]grant.GeoPoint{
	"amsterdam":    {Lat: 52.3676, Lon: 4.9041},
	"athens":       {Lat: 37.9838, Lon: 23.7275},
	"barcelona":    {Lat: 41.3851, Lon: 2.1734},
	"berlin":       {Lat: 52.5200, Lon: 13.4050},
	"bratislava":   {Lat: 48.1486, Lon: 17.1077},
	"brussels":     {Lat: 50.8503, Lon: 4.3517},
	"bucharest":    {Lat: 44.4268, Lon: 26.1025},
	"budapest":     {Lat: 47.4979, Lon: 19.0402},
	"copenhagen":   {Lat: 55.6761, Lon: 12.5683},
	"dublin":       {Lat: 53.3498, Lon: -6.2603},
	"helsinki":     {Lat: 60.1699, Lon: 24.9384},
	"krakow":       {Lat: 50.0647, Lon: 19.9450},
	"lisbon":       {Lat: 38.7223, Lon: -9.1393},
	"ljubljana":    {Lat: 46.0569, Lon: 14.5058},
	"london":       {Lat: 51.5074, Lon: -0.1278},
	"madrid":       {Lat: 40.4168, Lon: -3.7038},
	"munich":       {Lat: 48.1351, Lon: 11.5820},
	"oslo":         {Lat: 59.9139, Lon: 10.7522},
	"paris":        {Lat: 48.8566, Lon: 2.3522},
	"porto":        {Lat: 41.1579, Lon: -8.6291},
	"prague":       {Lat: 50.0755, Lon: 14.4378},
	"riga":         {Lat: 56.9496, Lon: 24.1052},
	"rome":         {Lat: 41.9028, Lon: 12.4964},
	"stockholm":    {Lat: 59.3293, Lon: 18.0686},
	"tallinn":      {Lat: 59.4370, Lon: 24.7536},
	"thessaloniki": {Lat: 40.6401, Lon: 22.9444},
	"valencia":     {Lat: 39.4699, Lon: -0.3763},
	"vienna":       {Lat: 48.2082, Lon: 16.3738},
	"vilnius":      {Lat: 54.6872, Lon: 25.2797},
	"warsaw":       {Lat: 52.2297, Lon: 21.0122},
	"zagreb":       {Lat: 45.8150, Lon: 15.9819},
}

// Origin returns the travel origin coordinate for a participant country.
func Origin(country string) (grant.GeoPoint, error) {
	p, ok := capitals[strings.ToUpper(country)]
	if !ok {
		return grant.GeoPoint{}, fmt.Errorf("country %q: %w", country, ErrUnknownPlace)
	}
	return p, nil
}

// Origins returns origin coordinates for a set of participant countries,
// in the shape the calculator consumes.
func Origins(countries []string) (map[string]grant.GeoPoint, error) {
	origins := make(map[string]grant.GeoPoint, len(countries))
	for _, c := range countries {
		p, err := Origin(c)
		if err != nil {
			return nil, err
		}
		origins[c] = p
	}
	return origins, nil
}

// CityPoint returns the coordinate for a destination city. When the city is
// not on record it falls back to the capital of the given country, so any
// known country still yields a usable destination point.
func CityPoint(city, country string) (grant.GeoPoint, error) {
	if p, ok := cities[strings.ToLower(strings.TrimSpace(city))]; ok {
		return p, nil
	}
	if p, ok := capitals[strings.ToUpper(country)]; ok {
		return p, nil
	}
	return grant.GeoPoint{}, fmt.Errorf("city %q (%s): %w", city, country, ErrUnknownPlace)
}
