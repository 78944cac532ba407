package service

import (
	"context"

	"github.com/scorecheck/scorecheck/internal/feed"
)

// Feed is the slice of the data-source client the services consume. Both
// feed.Client and feed.CachedClient satisfy it.
type Feed interface {
	Leagues(ctx context.Context) (*feed.LeaguesResponse, error)
	LeagueTeams(ctx context.Context, leagueID string) (*feed.LeagueTeams, error)
	TeamDetail(ctx context.Context, leagueID, teamID string) (*feed.TeamDetail, error)
	TodayGames(ctx context.Context) (*feed.SchedulePayload, error)
	GamePlayers(ctx context.Context, leagueID, teamID, gameID string) (*feed.GamePlayers, error)
}
