package grant

import "fmt"

// minFundableKm is the lower edge of the first travel band. Erasmus+ does
// not reimburse trips shorter than this.
const minFundableKm = 10

// TravelBand is one distance range of the unit-cost travel table.
// MaxKm == 0 marks the open-ended top band.
type TravelBand struct {
	Label      string
	MinKm      int
	MaxKm      int
	Amount     int
	GreenBonus int
}

// TravelCost is the cost of one band lookup. GreenBonus is zero unless
// green travel was requested and the band carries a bonus.
type TravelCost struct {
	Amount     int
	GreenBonus int
	Band       string
}

// TravelTable maps a distance to a flat per-person travel amount.
// Bands are ascending, non-overlapping, and cover [10, ∞) with no gaps.
type TravelTable struct {
	bands []TravelBand
}

// DefaultTravelTable returns the fixed Erasmus+ distance band table.
func DefaultTravelTable() TravelTable {
	return TravelTable{bands: []TravelBand{
		{Label: "10-99 km", MinKm: 10, MaxKm: 99, Amount: 23, GreenBonus: 30},
		{Label: "100-499 km", MinKm: 100, MaxKm: 499, Amount: 180, GreenBonus: 40},
		{Label: "500-1999 km", MinKm: 500, MaxKm: 1999, Amount: 275},
		{Label: "2000-2999 km", MinKm: 2000, MaxKm: 2999, Amount: 360},
		{Label: "3000-3999 km", MinKm: 3000, MaxKm: 3999, Amount: 530},
		{Label: "4000-7999 km", MinKm: 4000, MaxKm: 7999, Amount: 820},
		{Label: "8000+ km", MinKm: 8000, Amount: 1500},
	}}
}

// NewTravelTable builds a table from custom bands, for tests and
// table overrides. Bands must be ascending and gap-free.
func NewTravelTable(bands []TravelBand) TravelTable {
	return TravelTable{bands: bands}
}

// Lookup returns the cost for a distance. Fails with ErrInvalidDistance for
// distances below the first band. Every distance at or above the threshold
// matches exactly one band.
func (t TravelTable) Lookup(distanceKm int, useGreen bool) (TravelCost, error) {
	for _, b := range t.bands {
		if distanceKm < b.MinKm {
			break
		}
		if b.MaxKm != 0 && distanceKm > b.MaxKm {
			continue
		}
		cost := TravelCost{Amount: b.Amount, Band: b.Label}
		if useGreen {
			cost.GreenBonus = b.GreenBonus
		}
		return cost, nil
	}
	return TravelCost{}, fmt.Errorf("%d km: %w", distanceKm, ErrInvalidDistance)
}
