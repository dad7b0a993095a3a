package requirements

import "github.com/plusplan/plusplan/internal/geo"

// fallbackCountry is used when a destination cannot be resolved. The
// analyzer must always produce a country, since the visa determination
// depends on one. Spain hosts the plurality of youth exchanges, making it
// the least surprising default.
const fallbackCountry = "ES"

// destinationCountry resolves a free-text destination to an ISO country
// code, falling back to Spain when nothing matches. See geo.ResolveCountry
// for the matching rules.
func destinationCountry(destination string) string {
	if code, ok := geo.ResolveCountry(destination); ok {
		return code
	}
	return fallbackCountry
}
