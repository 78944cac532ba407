package feed

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"
)

// Payload TTLs, matching how quickly each record kind goes stale upstream.
const (
	leaguesTTL     = 5 * time.Minute
	leagueTeamsTTL = time.Hour
	teamDetailTTL  = 5 * time.Minute
	gamePlayersTTL = 5 * time.Minute
	todayGamesTTL  = 30 * time.Second
)

// PayloadCache stores raw data-source payloads keyed by request. A miss is
// (nil, nil); implementations must never treat a miss as an error.
type PayloadCache interface {
	GetPayload(ctx context.Context, key string) ([]byte, error)
	SetPayload(ctx context.Context, key string, payload []byte, ttl time.Duration) error
}

// Upstream is the live data-source client the cache layers wrap.
type Upstream interface {
	Leagues(ctx context.Context) (*LeaguesResponse, error)
	LeagueTeams(ctx context.Context, leagueID string) (*LeagueTeams, error)
	TeamDetail(ctx context.Context, leagueID, teamID string) (*TeamDetail, error)
	TodayGames(ctx context.Context) (*SchedulePayload, error)
	GamePlayers(ctx context.Context, leagueID, teamID, gameID string) (*GamePlayers, error)
}

// CachedClient layers a hot cache (Redis) and a durable cache (Postgres)
// over the live client. Cache failures at any layer degrade silently to the
// next; only a live fetch miss surfaces as an error.
type CachedClient struct {
	upstream Upstream
	hot      PayloadCache
	durable  PayloadCache
}

// NewCachedClient wraps a live client with optional cache layers. Either
// layer may be nil.
func NewCachedClient(upstream Upstream, hot, durable PayloadCache) *CachedClient {
	return &CachedClient{
		upstream: upstream,
		hot:      hot,
		durable:  durable,
	}
}

// Leagues returns the league listing, cached.
func (c *CachedClient) Leagues(ctx context.Context) (*LeaguesResponse, error) {
	var cached LeaguesResponse
	if c.lookup(ctx, "leagues", &cached) {
		return &cached, nil
	}
	fresh, err := c.upstream.Leagues(ctx)
	if err != nil {
		return nil, err
	}
	c.store(ctx, "leagues", fresh, leaguesTTL)
	return fresh, nil
}

// LeagueTeams returns one league's roster listing, cached.
func (c *CachedClient) LeagueTeams(ctx context.Context, leagueID string) (*LeagueTeams, error) {
	key := "league_teams:" + leagueID
	var cached LeagueTeams
	if c.lookup(ctx, key, &cached) {
		return &cached, nil
	}
	fresh, err := c.upstream.LeagueTeams(ctx, leagueID)
	if err != nil {
		return nil, err
	}
	c.store(ctx, key, fresh, leagueTeamsTTL)
	return fresh, nil
}

// TeamDetail returns a team's roster and game history, cached.
func (c *CachedClient) TeamDetail(ctx context.Context, leagueID, teamID string) (*TeamDetail, error) {
	key := fmt.Sprintf("team_detail:%s:%s", leagueID, teamID)
	var cached TeamDetail
	if c.lookup(ctx, key, &cached) {
		return &cached, nil
	}
	fresh, err := c.upstream.TeamDetail(ctx, leagueID, teamID)
	if err != nil {
		return nil, err
	}
	c.store(ctx, key, fresh, teamDetailTTL)
	return fresh, nil
}

// TodayGames returns the today/yesterday scoreboard payload, cached.
func (c *CachedClient) TodayGames(ctx context.Context) (*SchedulePayload, error) {
	var cached SchedulePayload
	if c.lookup(ctx, "today_games", &cached) {
		return &cached, nil
	}
	return c.RefreshTodayGames(ctx)
}

// RefreshTodayGames bypasses the caches, fetches a fresh scoreboard payload,
// and re-primes both layers. The polling scheduler calls this on its tick.
func (c *CachedClient) RefreshTodayGames(ctx context.Context) (*SchedulePayload, error) {
	fresh, err := c.upstream.TodayGames(ctx)
	if err != nil {
		return nil, err
	}
	c.store(ctx, "today_games", fresh, todayGamesTTL)
	return fresh, nil
}

// RefreshLeagueTeams bypasses the caches and re-primes one league's roster
// listing.
func (c *CachedClient) RefreshLeagueTeams(ctx context.Context, leagueID string) (*LeagueTeams, error) {
	fresh, err := c.upstream.LeagueTeams(ctx, leagueID)
	if err != nil {
		return nil, err
	}
	c.store(ctx, "league_teams:"+leagueID, fresh, leagueTeamsTTL)
	return fresh, nil
}

// GamePlayers returns a per-game box score, cached.
func (c *CachedClient) GamePlayers(ctx context.Context, leagueID, teamID, gameID string) (*GamePlayers, error) {
	key := fmt.Sprintf("game_players:%s:%s:%s", leagueID, teamID, gameID)
	var cached GamePlayers
	if c.lookup(ctx, key, &cached) {
		return &cached, nil
	}
	fresh, err := c.upstream.GamePlayers(ctx, leagueID, teamID, gameID)
	if err != nil {
		return nil, err
	}
	c.store(ctx, key, fresh, gamePlayersTTL)
	return fresh, nil
}

// lookup checks the hot cache, then the durable cache. Layer errors count as
// misses.
func (c *CachedClient) lookup(ctx context.Context, key string, out any) bool {
	for _, layer := range []PayloadCache{c.hot, c.durable} {
		if layer == nil {
			continue
		}
		payload, err := layer.GetPayload(ctx, key)
		if err != nil {
			log.Printf("[feed-cache] get %s: %v", key, err)
			continue
		}
		if payload == nil {
			continue
		}
		if err := json.Unmarshal(payload, out); err != nil {
			log.Printf("[feed-cache] decode %s: %v", key, err)
			continue
		}
		return true
	}
	return false
}

// store writes a payload to every configured cache layer.
func (c *CachedClient) store(ctx context.Context, key string, value any, ttl time.Duration) {
	payload, err := json.Marshal(value)
	if err != nil {
		log.Printf("[feed-cache] encode %s: %v", key, err)
		return
	}
	for _, layer := range []PayloadCache{c.hot, c.durable} {
		if layer == nil {
			continue
		}
		if err := layer.SetPayload(ctx, key, payload, ttl); err != nil {
			log.Printf("[feed-cache] set %s: %v", key, err)
		}
	}
}
