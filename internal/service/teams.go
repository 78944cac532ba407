package service

import (
	"context"
	"fmt"
	"log"

	"github.com/scorecheck/scorecheck/internal/feed"
	"github.com/scorecheck/scorecheck/internal/view"
)

// TeamService composes roster, record, and stat views for league and team
// pages.
type TeamService struct {
	feed Feed
}

// NewTeamService creates a new team service
func NewTeamService(feed Feed) *TeamService {
	return &TeamService{feed: feed}
}

// Leagues returns the league listing. A fetch failure is absorbed into an
// empty listing.
func (s *TeamService) Leagues(ctx context.Context) []feed.League {
	listing, err := s.feed.Leagues(ctx)
	if err != nil {
		log.Printf("[teams] fetching leagues: %v", err)
		return nil
	}
	if listing == nil {
		return nil
	}
	return listing.Leagues
}

// TeamRef is a team entry prepared for the schedule board and league pages:
// a routing identifier (resolved or slug-derived) plus a display label.
type TeamRef struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Label string `json:"label"`
	Logo  string `json:"logo,omitempty"`
}

// LeagueTeamsView is one league's team listing prepared for display.
type LeagueTeamsView struct {
	League string    `json:"league"`
	Teams  []TeamRef `json:"teams"`
}

// LeagueTeams returns a league's teams with resolved routing identifiers and
// display labels.
func (s *TeamService) LeagueTeams(ctx context.Context, leagueID string) (*LeagueTeamsView, error) {
	listing, err := s.feed.LeagueTeams(ctx, leagueID)
	if err != nil {
		return nil, fmt.Errorf("fetching teams for league %s: %w", leagueID, err)
	}

	lookup := view.NewTeamLookup(listing.Teams)
	teams := make([]TeamRef, 0, len(listing.Teams))
	for _, team := range listing.Teams {
		if team.Name == "" {
			continue
		}
		teams = append(teams, TeamRef{
			ID:    lookup.Resolve(team.Name),
			Name:  team.Name,
			Label: view.DisplayName(team.Name),
			Logo:  team.Logo,
		})
	}

	return &LeagueTeamsView{
		League: listing.League,
		Teams:  teams,
	}, nil
}

// TeamPage is the derived team detail view: season stat table plus
// record-annotated game history.
type TeamPage struct {
	ID          string               `json:"id"`
	Name        string               `json:"name"`
	Label       string               `json:"label"`
	League      string               `json:"league"`
	Logo        string               `json:"logo,omitempty"`
	Record      string               `json:"record"`
	StatColumns []string             `json:"stat_columns"`
	Players     []view.PlayerRow     `json:"players"`
	Games       []view.AnnotatedGame `json:"games"`
	Notice      string               `json:"notice,omitempty"`
}

// TeamPage builds the team detail view for one team.
func (s *TeamService) TeamPage(ctx context.Context, leagueID, teamID string) (*TeamPage, error) {
	detail, err := s.feed.TeamDetail(ctx, leagueID, teamID)
	if err != nil {
		return nil, fmt.Errorf("fetching team %s/%s: %w", leagueID, teamID, err)
	}

	columns, players := view.ProjectPlayers(detail.Players)
	games, record := view.ReconstructRecord(detail.Games)

	return &TeamPage{
		ID:          teamID,
		Name:        detail.Name,
		Label:       view.DisplayName(detail.Name),
		League:      detail.League,
		Logo:        detail.Logo,
		Record:      record,
		StatColumns: columns,
		Players:     players,
		Games:       games,
		Notice:      detail.Warning,
	}, nil
}

// gamePlayersNotice explains the season-stat fallback when a box score is
// unavailable. Degraded data, not an error.
const gamePlayersNotice = "Per-game stats are unavailable for this game; showing season statistics instead."

// GamePlayersView is the per-game stat table for one of a team's games.
type GamePlayersView struct {
	GameID      string           `json:"game_id"`
	StatColumns []string         `json:"stat_columns"`
	Players     []view.PlayerRow `json:"players"`
	Notice      string           `json:"notice,omitempty"`
}

// GamePlayers builds the stat table for a single game, falling back to the
// team's season-level player rows when the box score is unavailable (no game
// identifier, fetch failure, or an empty response from the data source).
func (s *TeamService) GamePlayers(ctx context.Context, leagueID, teamID, gameID string) (*GamePlayersView, error) {
	if gameID != "" {
		box, err := s.feed.GamePlayers(ctx, leagueID, teamID, gameID)
		if err != nil {
			log.Printf("[teams] fetching box score %s/%s/%s: %v", leagueID, teamID, gameID, err)
		} else if box != nil && box.Available && len(box.Players) > 0 {
			columns, players := view.ProjectPlayers(box.Players)
			return &GamePlayersView{
				GameID:      gameID,
				StatColumns: columns,
				Players:     players,
			}, nil
		}
	}

	detail, err := s.feed.TeamDetail(ctx, leagueID, teamID)
	if err != nil {
		return nil, fmt.Errorf("fetching season stats for %s/%s: %w", leagueID, teamID, err)
	}

	columns, players := view.ProjectPlayers(detail.Players)
	return &GamePlayersView{
		GameID:      gameID,
		StatColumns: columns,
		Players:     players,
		Notice:      gamePlayersNotice,
	}, nil
}
