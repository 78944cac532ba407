package view

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/scorecheck/scorecheck/internal/feed"
)

// statKeyPreference orders well-known statistic keys ahead of any others the
// feed happens to carry. Keys span sports because a league's stat set is not
// known up front; absent keys are simply skipped.
var statKeyPreference = []string{
	"points",
	"rebounds",
	"goals",
	"assists",
	"home_runs",
	"rbi",
	"hits",
	"batting_avg",
	"appearances",
}

// StatColumns discovers the union of statistic keys present across a player
// collection and orders it for display: preference-listed keys first in
// their fixed order, remaining keys appended alphabetically. The result is
// deterministic for a fixed input set.
func StatColumns(players []feed.Player) []string {
	present := make(map[string]bool)
	for _, player := range players {
		for key := range player.Stats {
			present[key] = true
		}
	}

	columns := make([]string, 0, len(present))
	for _, key := range statKeyPreference {
		if present[key] {
			columns = append(columns, key)
			delete(present, key)
		}
	}

	rest := make([]string, 0, len(present))
	for key := range present {
		rest = append(rest, key)
	}
	sort.Strings(rest)

	return append(columns, rest...)
}

// PlayerRow is a flat display row for one player: a value per stat column.
type PlayerRow struct {
	Name     string   `json:"name"`
	Position string   `json:"position"`
	Values   []string `json:"values"`
}

// ProjectPlayers flattens player records (season aggregates or a single
// game's box score) into display rows over a shared column set. A missing
// value renders as a dash, never an error.
func ProjectPlayers(players []feed.Player) ([]string, []PlayerRow) {
	columns := StatColumns(players)

	rows := make([]PlayerRow, 0, len(players))
	for _, player := range players {
		values := make([]string, len(columns))
		for i, key := range columns {
			values[i] = formatStat(player.Stats[key])
		}
		rows = append(rows, PlayerRow{
			Name:     player.Name,
			Position: player.Position,
			Values:   values,
		})
	}
	return columns, rows
}

// formatStat renders a stat value. JSON numbers arrive as float64; integral
// values drop the decimal point.
func formatStat(value any) string {
	switch v := value.(type) {
	case nil:
		return "-"
	case string:
		if strings.TrimSpace(v) == "" {
			return "-"
		}
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case int:
		return strconv.Itoa(v)
	default:
		return fmt.Sprintf("%v", v)
	}
}
