package feed

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

// DefaultBaseURL points at a local data-source API instance.
const DefaultBaseURL = "http://localhost:8000"

const userAgent = "scorecheck/1.0"

// Client fetches league, team, game, and player records from the data-source
// API. Fetching, caching, and upstream provider selection all live behind
// that API; this client only speaks its JSON surface.
type Client struct {
	baseURL string
	http    *http.Client
}

// NewClient creates a data-source API client. An empty baseURL falls back to
// DefaultBaseURL; a zero timeout falls back to 10 seconds.
func NewClient(baseURL string, timeout time.Duration) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: timeout},
	}
}

// Leagues fetches the league listing.
func (c *Client) Leagues(ctx context.Context) (*LeaguesResponse, error) {
	var out LeaguesResponse
	if err := c.getJSON(ctx, "/api/leagues", &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// LeagueTeams fetches one league's roster listing.
func (c *Client) LeagueTeams(ctx context.Context, leagueID string) (*LeagueTeams, error) {
	path := fmt.Sprintf("/api/leagues/%s/teams", url.PathEscape(leagueID))
	var out LeagueTeams
	if err := c.getJSON(ctx, path, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// TeamDetail fetches a team's roster and game history.
func (c *Client) TeamDetail(ctx context.Context, leagueID, teamID string) (*TeamDetail, error) {
	path := fmt.Sprintf("/api/leagues/%s/teams/%s", url.PathEscape(leagueID), url.PathEscape(teamID))
	var out TeamDetail
	if err := c.getJSON(ctx, path, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// TodayGames fetches the today/yesterday scoreboard payload.
func (c *Client) TodayGames(ctx context.Context) (*SchedulePayload, error) {
	var out SchedulePayload
	if err := c.getJSON(ctx, "/api/games/today", &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GamePlayers fetches the per-game box score for one of a team's games.
func (c *Client) GamePlayers(ctx context.Context, leagueID, teamID, gameID string) (*GamePlayers, error) {
	path := fmt.Sprintf("/api/leagues/%s/teams/%s/games/%s/players",
		url.PathEscape(leagueID), url.PathEscape(teamID), url.PathEscape(gameID))
	var out GamePlayers
	if err := c.getJSON(ctx, path, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// getJSON performs a GET against the data-source API and decodes the body.
func (c *Client) getJSON(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("building request for %s: %w", path, err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", userAgent)

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("fetching %s: %w", path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return fmt.Errorf("data source returned %s for %s", resp.Status, path)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decoding %s response: %w", path, err)
	}
	return nil
}
