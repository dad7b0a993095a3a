package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/pflag"
)

// anyChanged reports whether at least one of the named flags was set.
func anyChanged(flags *pflag.FlagSet, names ...string) bool {
	for _, name := range names {
		if flags.Changed(name) {
			return true
		}
	}
	return false
}

// resolveProjectID resolves user input to a project UUID. Input can be a
// short ID (case-insensitive), a full UUID, or a UUID prefix.
func resolveProjectID(ctx context.Context, app *App, input string) (string, error) {
	if input == "" {
		return "", fmt.Errorf("project ID is required")
	}

	projects, err := app.Projects.List(ctx, true)
	if err != nil {
		return "", err
	}

	for _, p := range projects {
		if strings.EqualFold(p.ShortID, input) {
			return p.ID, nil
		}
	}

	for _, p := range projects {
		if p.ID == input {
			return p.ID, nil
		}
	}

	var matches []string
	for _, p := range projects {
		if strings.HasPrefix(p.ID, input) {
			matches = append(matches, p.ID)
		}
	}

	switch len(matches) {
	case 0:
		return "", fmt.Errorf("project not found: %q", input)
	case 1:
		return matches[0], nil
	default:
		return "", fmt.Errorf("project ID prefix %q is ambiguous (%d matches)", input, len(matches))
	}
}

// parseParticipants parses "SE:15,DE:10" into a country->count map.
func parseParticipants(spec string) (map[string]int, error) {
	group := map[string]int{}
	for _, part := range strings.Split(spec, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		country, countStr, found := strings.Cut(part, ":")
		if !found {
			return nil, fmt.Errorf("invalid participant entry %q (expected COUNTRY:COUNT, e.g. SE:15)", part)
		}
		var count int
		if _, err := fmt.Sscanf(strings.TrimSpace(countStr), "%d", &count); err != nil || count < 1 {
			return nil, fmt.Errorf("invalid participant count in %q", part)
		}
		group[strings.ToUpper(strings.TrimSpace(country))] = count
	}
	if len(group) == 0 {
		return nil, fmt.Errorf("no participant groups given (expected e.g. SE:15,DE:10)")
	}
	return group, nil
}
