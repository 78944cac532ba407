package view

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/scorecheck/scorecheck/internal/feed"
)

// AnnotatedGame is a played game carrying the team's record as of after it.
// RecordAfter stays empty for games whose score could not be parsed.
type AnnotatedGame struct {
	feed.TeamGame
	RecordAfter string `json:"record_after"`
}

// ReconstructRecord replays a team's completed games in chronological order
// to rebuild its running win-loss record. It returns the played games
// most-recent-first, each annotated with the record after that game, plus
// the team's current overall record.
//
// Unparseable dates rank earliest; an unparseable "H-A" score leaves the
// counters untouched and that game's annotation empty, and reconstruction of
// subsequent games continues. The record string is "W-L" until a tie has
// occurred, then "W-L-T". With no parseable played games the overall record
// is "0-0".
func ReconstructRecord(games []feed.TeamGame) ([]AnnotatedGame, string) {
	played := make([]AnnotatedGame, 0, len(games))
	for _, game := range games {
		if game.Status == "played" {
			played = append(played, AnnotatedGame{TeamGame: game})
		}
	}

	// Most recent first for table display.
	sort.SliceStable(played, func(i, j int) bool {
		return gameDate(played[i].Date).After(gameDate(played[j].Date))
	})

	// Walk back-to-front so counters accumulate oldest-first.
	wins, losses, ties := 0, 0, 0
	for i := len(played) - 1; i >= 0; i-- {
		home, away, ok := parseScorePair(played[i].Score)
		if !ok {
			continue
		}
		own, opponent := home, away
		if !played[i].Home {
			own, opponent = away, home
		}
		switch {
		case own > opponent:
			wins++
		case own < opponent:
			losses++
		default:
			ties++
		}
		played[i].RecordAfter = formatRecord(wins, losses, ties)
	}

	overall := "0-0"
	for _, game := range played {
		if game.RecordAfter != "" {
			overall = game.RecordAfter
			break
		}
	}
	return played, overall
}

var gameDateLayouts = []string{"2006-01-02", time.RFC3339}

// gameDate parses a history entry's date; failures return the zero time,
// which sorts earliest.
func gameDate(raw string) time.Time {
	raw = strings.TrimSpace(raw)
	for _, layout := range gameDateLayouts {
		if parsed, err := time.Parse(layout, raw); err == nil {
			return parsed
		}
	}
	return time.Time{}
}

// parseScorePair splits a "H-A" score string into home and away totals.
func parseScorePair(score string) (home, away int, ok bool) {
	parts := strings.SplitN(strings.TrimSpace(score), "-", 2)
	if len(parts) != 2 {
		return 0, 0, false
	}
	home, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return 0, 0, false
	}
	away, err = strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return 0, 0, false
	}
	return home, away, true
}

func formatRecord(wins, losses, ties int) string {
	if ties > 0 {
		return fmt.Sprintf("%d-%d-%d", wins, losses, ties)
	}
	return fmt.Sprintf("%d-%d", wins, losses)
}
