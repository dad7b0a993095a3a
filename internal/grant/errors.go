package grant

import "errors"

var (
	// ErrInvalidInput is returned for validation failures: non-positive
	// duration, an empty participant group, or a non-positive count.
	ErrInvalidInput = errors.New("invalid input")

	// ErrInvalidDistance is returned when a trip is below the 10 km funding
	// threshold. The travel table has no band for sub-threshold trips.
	ErrInvalidDistance = errors.New("distance below minimum fundable trip")

	// ErrUnknownCountry is returned when a country has no per-diem rate or
	// no origin coordinate. This is a data gap upstream, not a computation bug.
	ErrUnknownCountry = errors.New("unknown country")
)
