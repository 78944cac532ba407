// Package view holds the derivation and presentation-state logic: pure
// functions that turn raw game, team, and player records from the data
// source into classified, sorted, time-bucketed, and record-annotated view
// models. Nothing in this package performs I/O or keeps state between calls,
// and every function tolerates empty or partial input.
package view

import (
	"regexp"
	"strings"
)

// GameState classifies a game's raw status text. The iota order doubles as
// the display rank: live games surface before scheduled, scheduled before
// final.
type GameState int

const (
	StateLive GameState = iota
	StateScheduled
	StateFinal
)

// String returns the wire name of the state.
func (s GameState) String() string {
	switch s {
	case StateLive:
		return "live"
	case StateFinal:
		return "final"
	default:
		return "scheduled"
	}
}

// Status is the classification of a raw status string plus its display label.
type Status struct {
	State GameState
	Label string
}

var finalMarkers = []string{"final", "complete", "completed"}

var liveMarkers = []string{"in progress", "live", "qtr", "quarter", "period", "inning"}

// Classify maps free-text game status to a display classification. Matching
// is best-effort text search, not a verified state feed: the upstream status
// vocabulary varies by provider and sport, and absent or unrecognized text
// classifies as scheduled.
func Classify(raw string) Status {
	lowered := strings.ToLower(raw)

	for _, marker := range finalMarkers {
		if strings.Contains(lowered, marker) {
			return Status{State: StateFinal, Label: "Complete"}
		}
	}

	for _, marker := range liveMarkers {
		if strings.Contains(lowered, marker) {
			label := abbreviateLive(raw)
			if label == "" {
				label = "Live"
			}
			return Status{State: StateLive, Label: label}
		}
	}

	return Status{State: StateScheduled, Label: "Scheduled"}
}

var (
	numberedQuarter = regexp.MustCompile(`(?i)\b(\d+)(?:st|nd|rd|th)?\s+quarter\b`)
	bareQuarter     = regexp.MustCompile(`(?i)\bquarter\b`)
	whitespaceRuns  = regexp.MustCompile(`\s+`)
)

// abbreviateLive shortens quarter wording for the scoreboard, e.g.
// "End of 3rd Quarter" becomes "End of Q3".
func abbreviateLive(raw string) string {
	label := numberedQuarter.ReplaceAllString(raw, "Q$1")
	label = bareQuarter.ReplaceAllString(label, "Q")
	label = whitespaceRuns.ReplaceAllString(label, " ")
	return strings.TrimSpace(label)
}
