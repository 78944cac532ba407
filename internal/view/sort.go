package view

import (
	"sort"

	"github.com/scorecheck/scorecheck/internal/feed"
)

// SortForDisplay orders a league's games for presentation: live first, then
// scheduled, then final. The sort is stable and rank is the only key, so
// games sharing a classification keep their input order. The upstream
// ordering may itself encode scheduling precedence, and nothing here is
// allowed to disturb it.
func SortForDisplay(games []feed.Game) []feed.Game {
	type ranked struct {
		game feed.Game
		rank GameState
	}

	order := make([]ranked, 0, len(games))
	for _, game := range games {
		order = append(order, ranked{game: game, rank: Classify(game.Status).State})
	}

	sort.SliceStable(order, func(i, j int) bool {
		return order[i].rank < order[j].rank
	})

	sorted := make([]feed.Game, 0, len(order))
	for _, entry := range order {
		sorted = append(sorted, entry.game)
	}
	return sorted
}
