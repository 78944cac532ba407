package feed

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memoryCache struct {
	entries map[string][]byte
	ttls    map[string]time.Duration
	getErr  error
	setErr  error
}

func newMemoryCache() *memoryCache {
	return &memoryCache{
		entries: make(map[string][]byte),
		ttls:    make(map[string]time.Duration),
	}
}

func (m *memoryCache) GetPayload(ctx context.Context, key string) ([]byte, error) {
	if m.getErr != nil {
		return nil, m.getErr
	}
	return m.entries[key], nil
}

func (m *memoryCache) SetPayload(ctx context.Context, key string, payload []byte, ttl time.Duration) error {
	if m.setErr != nil {
		return m.setErr
	}
	m.entries[key] = payload
	m.ttls[key] = ttl
	return nil
}

type countingUpstream struct {
	calls    int
	schedule *SchedulePayload
	teams    *LeagueTeams
	err      error
}

func (u *countingUpstream) Leagues(ctx context.Context) (*LeaguesResponse, error) {
	u.calls++
	return &LeaguesResponse{Leagues: []League{{ID: "nba", Name: "NBA"}}}, u.err
}

func (u *countingUpstream) LeagueTeams(ctx context.Context, leagueID string) (*LeagueTeams, error) {
	u.calls++
	return u.teams, u.err
}

func (u *countingUpstream) TeamDetail(ctx context.Context, leagueID, teamID string) (*TeamDetail, error) {
	u.calls++
	return &TeamDetail{Name: "Utah Jazz"}, u.err
}

func (u *countingUpstream) TodayGames(ctx context.Context) (*SchedulePayload, error) {
	u.calls++
	return u.schedule, u.err
}

func (u *countingUpstream) GamePlayers(ctx context.Context, leagueID, teamID, gameID string) (*GamePlayers, error) {
	u.calls++
	return &GamePlayers{GameID: gameID, Available: true}, u.err
}

func TestCachedClient_MissFetchesAndPrimes(t *testing.T) {
	hot := newMemoryCache()
	durable := newMemoryCache()
	upstream := &countingUpstream{}
	client := NewCachedClient(upstream, hot, durable)

	got, err := client.Leagues(context.Background())

	require.NoError(t, err)
	require.Len(t, got.Leagues, 1)
	assert.Equal(t, 1, upstream.calls)

	// Both layers are primed with the listing's TTL.
	assert.Contains(t, hot.entries, "leagues")
	assert.Contains(t, durable.entries, "leagues")
	assert.Equal(t, leaguesTTL, hot.ttls["leagues"])
}

func TestCachedClient_HitSkipsUpstream(t *testing.T) {
	hot := newMemoryCache()
	upstream := &countingUpstream{}
	client := NewCachedClient(upstream, hot, nil)

	_, err := client.Leagues(context.Background())
	require.NoError(t, err)
	require.Equal(t, 1, upstream.calls)

	got, err := client.Leagues(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, upstream.calls, "second call served from cache")
	assert.Equal(t, "nba", got.Leagues[0].ID)
}

func TestCachedClient_DurableServesWhenHotFails(t *testing.T) {
	hot := newMemoryCache()
	durable := newMemoryCache()
	upstream := &countingUpstream{}
	client := NewCachedClient(upstream, hot, durable)

	_, err := client.TeamDetail(context.Background(), "nba", "utah-jazz")
	require.NoError(t, err)
	require.Equal(t, 1, upstream.calls)

	hot.getErr = errors.New("redis down")

	got, err := client.TeamDetail(context.Background(), "nba", "utah-jazz")
	require.NoError(t, err)
	assert.Equal(t, 1, upstream.calls, "durable layer served the payload")
	assert.Equal(t, "Utah Jazz", got.Name)
}

func TestCachedClient_CacheWriteFailureIsNotFatal(t *testing.T) {
	hot := newMemoryCache()
	hot.setErr = errors.New("redis down")
	upstream := &countingUpstream{}
	client := NewCachedClient(upstream, hot, nil)

	got, err := client.Leagues(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "nba", got.Leagues[0].ID)
}

func TestCachedClient_RefreshTodayGamesBypassesCache(t *testing.T) {
	hot := newMemoryCache()
	upstream := &countingUpstream{schedule: &SchedulePayload{Date: "2025-01-01"}}
	client := NewCachedClient(upstream, hot, nil)

	_, err := client.TodayGames(context.Background())
	require.NoError(t, err)
	require.Equal(t, 1, upstream.calls)

	upstream.schedule = &SchedulePayload{Date: "2025-01-02"}

	fresh, err := client.RefreshTodayGames(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, upstream.calls)
	assert.Equal(t, "2025-01-02", fresh.Date)

	// The refresh re-primed the cache for subsequent reads.
	got, err := client.TodayGames(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, upstream.calls)
	assert.Equal(t, "2025-01-02", got.Date)
	assert.Equal(t, todayGamesTTL, hot.ttls["today_games"])
}

func TestCachedClient_RefreshLeagueTeams(t *testing.T) {
	hot := newMemoryCache()
	upstream := &countingUpstream{teams: &LeagueTeams{League: "NBA"}}
	client := NewCachedClient(upstream, hot, nil)

	_, err := client.RefreshLeagueTeams(context.Background(), "nba")

	require.NoError(t, err)
	assert.Contains(t, hot.entries, "league_teams:nba")
	assert.Equal(t, leagueTeamsTTL, hot.ttls["league_teams:nba"])
}

func TestCachedClient_UpstreamErrorSurfaces(t *testing.T) {
	upstream := &countingUpstream{err: errors.New("upstream down")}
	client := NewCachedClient(upstream, nil, nil)

	_, err := client.Leagues(context.Background())
	assert.Error(t, err)
}
