package grant

import (
	"fmt"
	"sort"
)

// Input describes one budget computation request. Participants maps
// ISO 3166-1 alpha-2 country codes to positive counts.
type Input struct {
	Participants       map[string]int
	DestinationCity    string
	DestinationCountry string
	DurationDays       int
	GreenTravel        bool
}

// CountryTravel is the per-country travel cost breakdown.
type CountryTravel struct {
	Country      string
	Participants int
	DistanceKm   int
	Band         string
	GreenBonus   int
	PerPerson    int
	Total        int
}

// Breakdown carries the three grant components. Output.Total always equals
// their exact sum.
type Breakdown struct {
	Travel         int
	PerDiem        int
	Organizational int
}

// Output is the computed grant figure with its audit breakdown.
type Output struct {
	Travel       []CountryTravel
	PerDiemRate  int
	Participants int
	Breakdown    Breakdown
	Total        int
}

// Calculator computes Erasmus+ unit-cost budgets from participant groups,
// destination, and duration. It owns the travel band and rate tables.
type Calculator struct {
	table TravelTable
	rates Rates
}

// NewCalculator returns a calculator with the default Erasmus+ tables.
func NewCalculator() *Calculator {
	return NewCalculatorWith(DefaultTravelTable(), DefaultRates())
}

// NewCalculatorWith returns a calculator with custom tables.
func NewCalculatorWith(table TravelTable, rates Rates) *Calculator {
	return &Calculator{table: table, rates: rates}
}

// OrganizationalSupport exposes the lump-sum step function directly.
func (c *Calculator) OrganizationalSupport(participants int) (int, error) {
	return c.rates.OrganizationalSupport(participants)
}

// Calculate computes travel, individual support, and organizational support
// for one project. The destination coordinate and one origin coordinate per
// participant country are supplied by the caller; the calculator never
// geocodes.
//
// Validation runs before any travel or per-diem computation. Errors from the
// travel table propagate unchanged.
func (c *Calculator) Calculate(in Input, destination GeoPoint, origins map[string]GeoPoint) (*Output, error) {
	if in.DurationDays <= 0 {
		return nil, fmt.Errorf("duration must be at least 1 day, got %d: %w", in.DurationDays, ErrInvalidInput)
	}
	totalParticipants := 0
	for country, n := range in.Participants {
		if n <= 0 {
			return nil, fmt.Errorf("participant count for %s must be positive, got %d: %w", country, n, ErrInvalidInput)
		}
		totalParticipants += n
	}
	if totalParticipants == 0 {
		return nil, fmt.Errorf("participant group is empty: %w", ErrInvalidInput)
	}

	rate, err := c.rates.PerDiemRate(in.DestinationCountry)
	if err != nil {
		return nil, err
	}

	countries := make([]string, 0, len(in.Participants))
	for country := range in.Participants {
		countries = append(countries, country)
	}
	sort.Strings(countries)

	travel := make([]CountryTravel, 0, len(countries))
	travelTotal := 0
	for _, country := range countries {
		origin, ok := origins[country]
		if !ok {
			return nil, fmt.Errorf("no origin coordinate for %s: %w", country, ErrUnknownCountry)
		}
		km := Distance(origin, destination)
		cost, err := c.table.Lookup(km, in.GreenTravel)
		if err != nil {
			return nil, err
		}
		n := in.Participants[country]
		ct := CountryTravel{
			Country:      country,
			Participants: n,
			DistanceKm:   km,
			Band:         cost.Band,
			GreenBonus:   cost.GreenBonus,
			PerPerson:    cost.Amount + cost.GreenBonus,
		}
		ct.Total = ct.PerPerson * n
		travel = append(travel, ct)
		travelTotal += ct.Total
	}

	perDiemTotal := rate * in.DurationDays * totalParticipants
	org, err := c.rates.OrganizationalSupport(totalParticipants)
	if err != nil {
		return nil, err
	}

	out := &Output{
		Travel:       travel,
		PerDiemRate:  rate,
		Participants: totalParticipants,
		Breakdown: Breakdown{
			Travel:         travelTotal,
			PerDiem:        perDiemTotal,
			Organizational: org,
		},
	}
	out.Total = travelTotal + perDiemTotal + org
	return out, nil
}
