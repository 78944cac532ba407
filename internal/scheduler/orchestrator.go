package scheduler

import (
	"context"
	"log"
	"time"

	"github.com/scorecheck/scorecheck/internal/feed"
	"github.com/scorecheck/scorecheck/internal/store"
)

// Orchestrator manages the background refresh tasks that keep the cache warm:
// scoreboard polling, league roster refresh, and the nightly purge of expired
// durable cache rows.
type Orchestrator struct {
	feed   *feed.CachedClient
	db     *store.Database
	config *Config
	cancel context.CancelFunc
}

// Config holds scheduler configuration
type Config struct {
	SchedulePollInterval time.Duration // Default: 30s
	TeamRefreshInterval  time.Duration // Default: 1h
	PurgeHour            int           // Default: 4 (4 AM)
	EnableSchedulePoll   bool          // Default: true
	EnableTeamRefresh    bool          // Default: true
	EnableDailyPurge     bool          // Default: true
}

// DefaultConfig returns default scheduler configuration
func DefaultConfig() *Config {
	return &Config{
		SchedulePollInterval: 30 * time.Second,
		TeamRefreshInterval:  time.Hour,
		PurgeHour:            4,
		EnableSchedulePoll:   true,
		EnableTeamRefresh:    true,
		EnableDailyPurge:     true,
	}
}

// NewOrchestrator creates a new scheduler orchestrator. db may be nil when no
// durable cache is configured; the purge task is skipped in that case.
func NewOrchestrator(feedClient *feed.CachedClient, db *store.Database, config *Config) *Orchestrator {
	if config == nil {
		config = DefaultConfig()
	}
	return &Orchestrator{
		feed:   feedClient,
		db:     db,
		config: config,
	}
}

// Start begins all scheduled tasks and blocks until the context is cancelled.
func (o *Orchestrator) Start(ctx context.Context) {
	log.Println("╔════════════════════════════════════════╗")
	log.Println("║   Scorecheck Scheduler Orchestrator    ║")
	log.Println("╚════════════════════════════════════════╝")
	log.Printf("Schedule polling: %v (interval: %v)", o.config.EnableSchedulePoll, o.config.SchedulePollInterval)
	log.Printf("Team refresh: %v (interval: %v)", o.config.EnableTeamRefresh, o.config.TeamRefreshInterval)
	log.Printf("Daily purge: %v (at %02d:00)", o.config.EnableDailyPurge && o.db != nil, o.config.PurgeHour)
	log.Println()

	ctx, cancel := context.WithCancel(ctx)
	o.cancel = cancel

	if o.config.EnableSchedulePoll {
		go o.runSchedulePolling(ctx)
	}

	if o.config.EnableTeamRefresh {
		go o.runTeamRefresh(ctx)
	}

	if o.config.EnableDailyPurge && o.db != nil {
		go o.runDailyPurge(ctx)
	}

	<-ctx.Done()
	log.Println("Scheduler orchestrator stopping...")
}

// runSchedulePolling re-primes the scoreboard payload on a short interval so
// the board endpoint stays within one tick of the data source.
func (o *Orchestrator) runSchedulePolling(ctx context.Context) {
	log.Printf("→ Schedule polling started (interval: %v)", o.config.SchedulePollInterval)

	ticker := time.NewTicker(o.config.SchedulePollInterval)
	defer ticker.Stop()

	consecutiveErrors := 0
	maxConsecutiveErrors := 5

	// Run immediately on start
	o.pollSchedule(ctx, &consecutiveErrors, maxConsecutiveErrors)

	for {
		select {
		case <-ctx.Done():
			log.Println("→ Schedule polling stopped")
			return
		case <-ticker.C:
			o.pollSchedule(ctx, &consecutiveErrors, maxConsecutiveErrors)
		}
	}
}

// pollSchedule refreshes the scoreboard payload, slowing down when the data
// source is failing repeatedly.
func (o *Orchestrator) pollSchedule(ctx context.Context, consecutiveErrors *int, maxConsecutiveErrors int) {
	payload, err := o.feed.RefreshTodayGames(ctx)
	if err != nil {
		*consecutiveErrors++
		log.Printf("  ⚠️  Schedule poll failed: %v (consecutive errors: %d/%d)",
			err, *consecutiveErrors, maxConsecutiveErrors)

		if *consecutiveErrors >= maxConsecutiveErrors {
			log.Printf("  ⚠️  High error rate detected. Backing off before next poll...")
			select {
			case <-ctx.Done():
			case <-time.After(20 * time.Second):
			}
		}
		return
	}

	*consecutiveErrors = 0

	games := 0
	if payload.Today != nil {
		for _, group := range payload.Today.Leagues {
			games += len(group.Games)
		}
	}
	if games > 0 {
		log.Printf("  ✓ Scoreboard refreshed (%d games today)", games)
	}
}

// runTeamRefresh re-primes every league's roster listing on a long interval.
func (o *Orchestrator) runTeamRefresh(ctx context.Context) {
	log.Printf("→ Team refresh started (interval: %v)", o.config.TeamRefreshInterval)

	ticker := time.NewTicker(o.config.TeamRefreshInterval)
	defer ticker.Stop()

	// Run immediately on start
	o.refreshTeams(ctx)

	for {
		select {
		case <-ctx.Done():
			log.Println("→ Team refresh stopped")
			return
		case <-ticker.C:
			o.refreshTeams(ctx)
		}
	}
}

func (o *Orchestrator) refreshTeams(ctx context.Context) {
	listing, err := o.feed.Leagues(ctx)
	if err != nil {
		log.Printf("  ⚠️  Team refresh: fetching leagues failed: %v", err)
		return
	}

	refreshed := 0
	for _, league := range listing.Leagues {
		if _, err := o.feed.RefreshLeagueTeams(ctx, league.ID); err != nil {
			log.Printf("  ⚠️  Team refresh: league %s failed: %v", league.ID, err)
			continue
		}
		refreshed++
	}

	if refreshed > 0 {
		log.Printf("  ✓ Refreshed rosters for %d leagues", refreshed)
	}
}

// runDailyPurge deletes expired rows from the durable cache once a day.
func (o *Orchestrator) runDailyPurge(ctx context.Context) {
	log.Printf("→ Daily purge scheduler started (runs at %02d:00 daily)", o.config.PurgeHour)

	for {
		now := time.Now()
		nextRun := time.Date(now.Year(), now.Month(), now.Day(), o.config.PurgeHour, 0, 0, 0, now.Location())

		// If we've passed today's run time, schedule for tomorrow
		if now.After(nextRun) {
			nextRun = nextRun.Add(24 * time.Hour)
		}

		waitDuration := time.Until(nextRun)
		log.Printf("  Next purge: %s (in %v)", nextRun.Format("2006-01-02 15:04:05"), waitDuration.Round(time.Second))

		select {
		case <-ctx.Done():
			log.Println("→ Daily purge scheduler stopped")
			return
		case <-time.After(waitDuration):
			removed, err := o.db.PurgeExpired(ctx)
			if err != nil {
				log.Printf("  ❌ Purge failed: %v", err)
				continue
			}
			log.Printf("  ✓ Purged %d expired cache rows", removed)
		}
	}
}

// Stop gracefully stops the scheduler
func (o *Orchestrator) Stop() {
	log.Println("Stopping scheduler orchestrator...")

	if o.cancel != nil {
		o.cancel()
	}

	log.Println("✓ Scheduler orchestrator stopped")
}

// GetStatus returns current scheduler status
func (o *Orchestrator) GetStatus() map[string]interface{} {
	return map[string]interface{}{
		"schedule_poll_enabled":  o.config.EnableSchedulePoll,
		"schedule_poll_interval": o.config.SchedulePollInterval.String(),
		"team_refresh_enabled":   o.config.EnableTeamRefresh,
		"team_refresh_interval":  o.config.TeamRefreshInterval.String(),
		"daily_purge_enabled":    o.config.EnableDailyPurge && o.db != nil,
		"daily_purge_hour":       o.config.PurgeHour,
	}
}
