package grant

import "fmt"

// OrgTier is one step of the organizational-support lump sum.
// MaxParticipants == 0 marks the open-ended ceiling tier.
type OrgTier struct {
	MaxParticipants int
	Amount          int
}

// Rates holds the fixed unit-cost tables: per-diem EUR/day keyed by
// destination country (ISO 3166-1 alpha-2, uppercase) and the
// organizational-support tiers. Immutable once built; inject custom tables
// via NewRates for testing.
type Rates struct {
	perDiem  map[string]int
	orgTiers []OrgTier
}

// DefaultRates returns the built-in per-diem and organizational-support
// tables. Per-diem values reflect EU cost-of-living tiers (37–70 EUR/day).
func DefaultRates() Rates {
	return NewRates(map[string]int{
		"AL": 37, "AT": 45, "BA": 37, "BE": 42, "BG": 37,
		"CH": 70, "CY": 43, "CZ": 40, "DE": 45, "DK": 60,
		"EE": 38, "ES": 42, "FI": 57, "FR": 50, "GB": 58,
		"GR": 40, "HR": 39, "HU": 38, "IE": 55, "IS": 70,
		"IT": 48, "LI": 68, "LT": 37, "LU": 52, "LV": 37,
		"ME": 37, "MK": 37, "MT": 44, "NL": 50, "NO": 65,
		"PL": 38, "PT": 40, "RO": 37, "RS": 37, "SE": 58,
		"SI": 40, "SK": 39, "TR": 37, "UA": 37,
	}, []OrgTier{
		{MaxParticipants: 10, Amount: 500},
		{MaxParticipants: 30, Amount: 750},
		{MaxParticipants: 60, Amount: 1000},
		{Amount: 1000},
	})
}

// NewRates builds a Rates value from custom tables.
func NewRates(perDiem map[string]int, orgTiers []OrgTier) Rates {
	pd := make(map[string]int, len(perDiem))
	for k, v := range perDiem {
		pd[k] = v
	}
	tiers := make([]OrgTier, len(orgTiers))
	copy(tiers, orgTiers)
	return Rates{perDiem: pd, orgTiers: tiers}
}

// PerDiemRate returns the daily subsistence rate for a destination country.
func (r Rates) PerDiemRate(country string) (int, error) {
	rate, ok := r.perDiem[country]
	if !ok {
		return 0, fmt.Errorf("no per-diem rate for %q: %w", country, ErrUnknownCountry)
	}
	return rate, nil
}

// OrganizationalSupport returns the lump sum for a participant count.
// The top tier is a ceiling: counts above 60 stay at the 1000 EUR step,
// matching the funding scheme's lump-sum tiers.
func (r Rates) OrganizationalSupport(participants int) (int, error) {
	if participants <= 0 {
		return 0, fmt.Errorf("participant count must be positive, got %d: %w", participants, ErrInvalidInput)
	}
	for _, tier := range r.orgTiers {
		if tier.MaxParticipants == 0 || participants <= tier.MaxParticipants {
			return tier.Amount, nil
		}
	}
	return 0, fmt.Errorf("no organizational support tier for %d participants: %w", participants, ErrInvalidInput)
}
