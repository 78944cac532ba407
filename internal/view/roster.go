package view

import (
	"regexp"
	"strings"

	"github.com/scorecheck/scorecheck/internal/feed"
)

// TeamLookup maps normalized team display names to stable team identifiers
// within one league. Keys are lower-cased and trimmed.
type TeamLookup map[string]string

// NewTeamLookup builds a lookup from a league's roster listing, skipping
// entries with an empty name or identifier.
func NewTeamLookup(teams []feed.TeamEntry) TeamLookup {
	lookup := make(TeamLookup, len(teams))
	for _, team := range teams {
		name := normalizeTeamName(team.Name)
		if name == "" || team.ID == "" {
			continue
		}
		lookup[name] = team.ID
	}
	return lookup
}

// Resolve returns the identifier for a team display name, used for routing.
// When the roster carries no entry for the name, a slug derived from the
// name stands in. The slug is deterministic and never empty for a non-empty
// name.
func (l TeamLookup) Resolve(name string) string {
	if id, ok := l[normalizeTeamName(name)]; ok {
		return id
	}
	return Slugify(name)
}

var nonAlphanumericRuns = regexp.MustCompile(`[^a-z0-9]+`)

// Slugify derives a routing identifier from a display name: lower-cased,
// runs of non-alphanumerics collapsed to single hyphens, outer hyphens
// trimmed.
func Slugify(name string) string {
	slug := nonAlphanumericRuns.ReplaceAllString(strings.ToLower(name), "-")
	return strings.Trim(slug, "-")
}

// displayAliases shorten well-known names for rendering only. They never
// affect lookup or routing.
var displayAliases = map[string]string{
	"oklahoma city thunder": "OKC Thunder",
	"oklahoma city":         "OKC",
}

// DisplayName returns the label to render for a team name.
func DisplayName(name string) string {
	if alias, ok := displayAliases[normalizeTeamName(name)]; ok {
		return alias
	}
	return strings.TrimSpace(name)
}

func normalizeTeamName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
