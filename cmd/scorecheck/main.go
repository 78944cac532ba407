package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/scorecheck/scorecheck/internal/api/rest"
	"github.com/scorecheck/scorecheck/internal/cache"
	"github.com/scorecheck/scorecheck/internal/feed"
	"github.com/scorecheck/scorecheck/internal/scheduler"
	"github.com/scorecheck/scorecheck/internal/service"
	"github.com/scorecheck/scorecheck/internal/store"
)

const (
	serviceName    = "scorecheck"
	serviceVersion = "1.0.0"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	log.Printf("Starting %s v%s - Sports Results Presentation Service", serviceName, serviceVersion)

	// Load configuration from environment
	config := loadConfig()

	// Initialize the durable cache if a DSN is configured
	var db *store.Database
	if config.DatabaseDSN != "" {
		var err error
		db, err = store.NewDatabase(config.DatabaseDSN)
		if err != nil {
			log.Fatalf("Failed to connect to database: %v", err)
		}
		defer db.Close()

		log.Println("✓ Connected to database")

		if err := db.RunMigrations(); err != nil {
			log.Fatalf("Failed to run database migrations: %v", err)
		}
		log.Println("✓ Database migrations applied")
	} else {
		log.Println("No DATABASE_DSN configured, durable cache disabled")
	}

	// Initialize Redis client with retry logic
	var redisCache *cache.RedisCache
	var err error
	maxRetries := 30
	retryDelay := 2 * time.Second

	log.Println("Connecting to Redis...")
	for i := 0; i < maxRetries; i++ {
		redisCache, err = cache.NewRedisCache(config.RedisURL)
		if err == nil {
			break
		}

		if i < maxRetries-1 {
			log.Printf("Redis connection attempt %d/%d failed: %v (retrying in %v)", i+1, maxRetries, err, retryDelay)
			time.Sleep(retryDelay)
		} else {
			log.Fatalf("Failed to connect to Redis after %d attempts: %v", maxRetries, err)
		}
	}
	defer redisCache.Close()

	log.Println("✓ Connected to Redis")

	// Build the feed client with both cache layers
	liveClient := feed.NewClient(config.FeedBaseURL, 10*time.Second)

	var durable feed.PayloadCache
	if db != nil {
		durable = db
	}
	cachedFeed := feed.NewCachedClient(liveClient, redisCache, durable)

	// Resolve the display timezone for schedule labels
	loc, err := time.LoadLocation(config.DisplayTZ)
	if err != nil {
		log.Printf("⚠️  Unknown timezone %q, falling back to UTC", config.DisplayTZ)
		loc = time.UTC
	}

	// Wire up services
	scheduleService := service.NewScheduleService(cachedFeed, loc)
	teamService := service.NewTeamService(cachedFeed)

	// Initialize scheduler/orchestrator with configuration
	schedulerConfig := &scheduler.Config{
		SchedulePollInterval: config.SchedulePollInterval,
		TeamRefreshInterval:  config.TeamRefreshInterval,
		PurgeHour:            4,
		EnableSchedulePoll:   getEnv("ENABLE_SCHEDULE_POLL", "true") == "true",
		EnableTeamRefresh:    getEnv("ENABLE_TEAM_REFRESH", "true") == "true",
		EnableDailyPurge:     getEnv("ENABLE_DAILY_PURGE", "true") == "true",
	}

	sched := scheduler.NewOrchestrator(cachedFeed, db, schedulerConfig)

	// Start scheduler in background
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go sched.Start(ctx)

	log.Println("✓ Scheduler started")

	// Initialize REST API server
	restServer := rest.NewServer(config.ListenPort, scheduleService, teamService)
	go func() {
		log.Printf("Starting REST API server on port %s", config.ListenPort)
		if err := restServer.Start(); err != nil {
			log.Printf("REST server error: %v", err)
		}
	}()

	log.Printf("✓ REST API server listening on :%s", config.ListenPort)
	log.Printf("✓ Scorecheck v%s started successfully", serviceVersion)
	log.Printf("  REST API: http://0.0.0.0:%s", config.ListenPort)
	log.Printf("  Data source: %s", config.FeedBaseURL)

	// Wait for interrupt signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	<-sigChan

	log.Println("Shutting down Scorecheck gracefully...")

	// Graceful shutdown
	cancel()
	sched.Stop()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := restServer.Shutdown(shutdownCtx); err != nil {
		log.Printf("REST API server shutdown error: %v", err)
	}

	log.Println("Scorecheck stopped")
}

type Config struct {
	ListenPort           string
	FeedBaseURL          string
	RedisURL             string
	DatabaseDSN          string
	DisplayTZ            string
	SchedulePollInterval time.Duration
	TeamRefreshInterval  time.Duration
}

func loadConfig() Config {
	return Config{
		ListenPort:           getEnv("LISTEN_PORT", "8080"),
		FeedBaseURL:          getEnv("FEED_BASE_URL", feed.DefaultBaseURL),
		RedisURL:             getEnv("REDIS_URL", "redis://localhost:6379"),
		DatabaseDSN:          getEnv("DATABASE_DSN", ""),
		DisplayTZ:            getEnv("DISPLAY_TZ", "America/New_York"),
		SchedulePollInterval: getDurationEnv("SCHEDULE_POLL_INTERVAL", 30*time.Second),
		TeamRefreshInterval:  getDurationEnv("TEAM_REFRESH_INTERVAL", time.Hour),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getDurationEnv(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if parsed, err := time.ParseDuration(value); err == nil {
			return parsed
		}
		log.Printf("⚠️  Invalid duration for %s: %q, using default %v", key, value, defaultValue)
	}
	return defaultValue
}
