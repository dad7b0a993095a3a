// Package grant implements the Erasmus+ unit-cost budget calculator:
// great-circle distances, the distance-banded travel cost table, per-diem
// individual support, and tiered organizational support.
//
// All amounts are whole euro. The calculator fails loud: invalid input and
// data gaps surface as errors and are never papered over.
package grant

import "math"

// GeoPoint is a latitude/longitude pair in decimal degrees.
// Valid range is lat [-90,90], lon [-180,180]; the caller is responsible
// for range checks.
type GeoPoint struct {
	Lat float64
	Lon float64
}

const earthRadiusKm = 6371.0

// Distance returns the great-circle (haversine) distance between two points
// in whole kilometres. The result is rounded half-up: band placement depends
// on it, so the rounding direction must stay consistent.
func Distance(a, b GeoPoint) int {
	dLat := degToRad(b.Lat - a.Lat)
	dLon := degToRad(b.Lon - a.Lon)

	sinLat := math.Sin(dLat / 2)
	sinLon := math.Sin(dLon / 2)

	h := sinLat*sinLat +
		math.Cos(degToRad(a.Lat))*math.Cos(degToRad(b.Lat))*sinLon*sinLon
	c := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))

	return int(math.Floor(earthRadiusKm*c + 0.5))
}

func degToRad(deg float64) float64 {
	return deg * (math.Pi / 180.0)
}
