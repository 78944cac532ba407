package view

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scorecheck/scorecheck/internal/feed"
)

func TestBuildScheduleBoard_NilPayload(t *testing.T) {
	board := BuildScheduleBoard(nil, time.UTC)
	assert.Empty(t, board.Today)
	assert.Empty(t, board.Yesterday)
	assert.False(t, board.NoGamesToday)
}

func TestBuildScheduleBoard_LegacyTopLevelLeagues(t *testing.T) {
	payload := &feed.SchedulePayload{
		Leagues: []feed.LeagueGroup{
			{ID: "nba", Name: "NBA", Games: []feed.Game{{ID: "1", Status: "Final"}}},
		},
	}

	board := BuildScheduleBoard(payload, time.UTC)

	require.Len(t, board.Today, 1)
	assert.Equal(t, "nba", board.Today[0].ID)
	require.Len(t, board.Today[0].Games, 1)
	assert.False(t, board.NoGamesToday)
}

func TestBuildScheduleBoard_TodaySectionWinsOverLegacy(t *testing.T) {
	payload := &feed.SchedulePayload{
		Today: &feed.DaySchedule{
			Leagues: []feed.LeagueGroup{{ID: "nhl", Name: "NHL"}},
		},
		Leagues: []feed.LeagueGroup{{ID: "nba", Name: "NBA"}},
	}

	board := BuildScheduleBoard(payload, time.UTC)

	require.Len(t, board.Today, 1)
	assert.Equal(t, "nhl", board.Today[0].ID)
}

func TestBuildScheduleBoard_NoGamesTodayNotice(t *testing.T) {
	threeGames := []feed.Game{{Status: "Final"}, {Status: "Final"}, {Status: "Final"}}

	tests := []struct {
		name      string
		today     []feed.LeagueGroup
		yesterday []feed.LeagueGroup
		expected  bool
	}{
		{
			name:      "today empty yesterday populated",
			today:     []feed.LeagueGroup{{ID: "nba"}, {ID: "nhl"}},
			yesterday: []feed.LeagueGroup{{ID: "nba", Games: threeGames}},
			expected:  true,
		},
		{
			name:      "both empty",
			today:     []feed.LeagueGroup{{ID: "nba"}},
			yesterday: []feed.LeagueGroup{{ID: "nba"}},
			expected:  false,
		},
		{
			name:      "today has games",
			today:     []feed.LeagueGroup{{ID: "nba", Games: threeGames[:1]}},
			yesterday: []feed.LeagueGroup{{ID: "nba", Games: threeGames}},
			expected:  false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			payload := &feed.SchedulePayload{
				Today:     &feed.DaySchedule{Leagues: tt.today},
				Yesterday: &feed.DaySchedule{Leagues: tt.yesterday},
			}
			board := BuildScheduleBoard(payload, time.UTC)
			assert.Equal(t, tt.expected, board.NoGamesToday)
		})
	}
}

func TestBuildScheduleBoard_TimeAndDateLabels(t *testing.T) {
	payload := &feed.SchedulePayload{
		Today: &feed.DaySchedule{
			Leagues: []feed.LeagueGroup{{
				ID: "nba",
				Games: []feed.Game{
					{ID: "1", Status: "7:30 PM ET", StartTime: "2025-01-15T23:30:00Z"},
					{ID: "2", Status: "7:30 PM ET", StartTime: "2025-01-15T23:30Z"},
					{ID: "3", Status: "7:30 PM ET", StartTime: ""},
					{ID: "4", Status: "7:30 PM ET", StartTime: "not-a-timestamp"},
				},
			}},
		},
	}

	board := BuildScheduleBoard(payload, time.UTC)

	require.Len(t, board.Today, 1)
	games := board.Today[0].Games
	require.Len(t, games, 4)

	assert.Equal(t, "11:30 PM", games[0].TimeLabel)
	assert.Equal(t, "1/15", games[0].DateLabel)
	assert.Equal(t, "11:30 PM", games[1].TimeLabel, "short timestamp form must parse")
	assert.Equal(t, "TBD", games[2].TimeLabel)
	assert.Equal(t, "Date TBD", games[2].DateLabel)
	assert.Equal(t, "TBD", games[3].TimeLabel)
	assert.Equal(t, "Date TBD", games[3].DateLabel)
}

func TestBuildScheduleBoard_LocalTimeRendering(t *testing.T) {
	eastern := time.FixedZone("EST", -5*3600)
	payload := &feed.SchedulePayload{
		Leagues: []feed.LeagueGroup{{
			ID:    "nba",
			Games: []feed.Game{{Status: "7:30 PM ET", StartTime: "2025-01-16T00:30:00Z"}},
		}},
	}

	board := BuildScheduleBoard(payload, eastern)

	require.Len(t, board.Today, 1)
	require.Len(t, board.Today[0].Games, 1)
	assert.Equal(t, "7:30 PM", board.Today[0].Games[0].TimeLabel)
	assert.Equal(t, "1/15", board.Today[0].Games[0].DateLabel)
}

func TestBuildScheduleBoard_ScoreSuppression(t *testing.T) {
	payload := &feed.SchedulePayload{
		Leagues: []feed.LeagueGroup{{
			ID: "nhl",
			Games: []feed.Game{
				{ID: "live", Status: "2nd Period", HomeScore: "2", AwayScore: "1"},
				{ID: "upcoming", Status: "8:00 PM ET", HomeScore: "0", AwayScore: "0"},
				{ID: "done", Status: "Final", HomeScore: "4", AwayScore: "3"},
			},
		}},
	}

	board := BuildScheduleBoard(payload, time.UTC)

	require.Len(t, board.Today, 1)
	byID := map[string]GameView{}
	for _, g := range board.Today[0].Games {
		byID[g.ID] = g
	}

	assert.Equal(t, "2", byID["live"].HomeScoreLabel)
	assert.Equal(t, "1", byID["live"].AwayScoreLabel)
	assert.Empty(t, byID["upcoming"].HomeScoreLabel, "pre-game score is suppressed")
	assert.Empty(t, byID["upcoming"].AwayScoreLabel)
	assert.Equal(t, "4", byID["done"].HomeScoreLabel)
}

func TestBuildScheduleBoard_SortsEachLeague(t *testing.T) {
	payload := &feed.SchedulePayload{
		Leagues: []feed.LeagueGroup{{
			ID: "mlb",
			Games: []feed.Game{
				{ID: "f", Status: "Final"},
				{ID: "s", Status: "1:05 PM ET"},
				{ID: "l", Status: "Top 7th Inning"},
			},
		}},
	}

	board := BuildScheduleBoard(payload, time.UTC)

	require.Len(t, board.Today, 1)
	ids := make([]string, 0, 3)
	for _, g := range board.Today[0].Games {
		ids = append(ids, g.ID)
	}
	assert.Equal(t, []string{"l", "s", "f"}, ids)
}

func TestBuildScheduleBoard_StateAndStatusLabel(t *testing.T) {
	payload := &feed.SchedulePayload{
		Leagues: []feed.LeagueGroup{{
			ID: "nba",
			Games: []feed.Game{
				{ID: "1", Status: "End of 3rd Quarter"},
				{ID: "2", Status: "Final"},
			},
		}},
	}

	board := BuildScheduleBoard(payload, time.UTC)

	require.Len(t, board.Today, 1)
	require.Len(t, board.Today[0].Games, 2)
	live := board.Today[0].Games[0]
	assert.Equal(t, "live", live.State)
	assert.Equal(t, "End of Q3", live.StatusLabel)
	final := board.Today[0].Games[1]
	assert.Equal(t, "final", final.State)
	assert.Equal(t, "Complete", final.StatusLabel)
}
