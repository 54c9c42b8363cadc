package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/redTeamHero/discord/config"
	"github.com/redTeamHero/discord/internal/alerts"
	"github.com/redTeamHero/discord/internal/bot"
	"github.com/redTeamHero/discord/internal/catalog"
	"github.com/redTeamHero/discord/internal/checkout"
	"github.com/redTeamHero/discord/logger"
	"github.com/redTeamHero/discord/services/cache"
	"github.com/redTeamHero/discord/services/worker"
)

func main() {
	// Load environment variables
	godotenv.Load()

	// Initialize logger first
	logger.Init()
	log := logger.Default

	// Load and validate configuration
	cfg := config.LoadConfig()
	if err := cfg.Validate(); err != nil {
		log.Fatal().Err(err).Msg("Invalid configuration")
	}

	log.Info().
		Str("environment", cfg.Environment).
		Dur("refresh_interval", cfg.RefreshInterval).
		Dur("poll_interval", cfg.PollInterval).
		Msg("Starting application")

	// Set up context with cancellation
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Set up signal handling
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	// Backoff cache: shared memcache when configured, in-process otherwise
	var cacheSvc cache.CacheService
	if cfg.MemcacheAddr != "" {
		cacheSvc = cache.NewMemcacheService(cfg.MemcacheAddr)
		logger.Info("Using memcache backoff cache at %s", cfg.MemcacheAddr)
	} else {
		cacheSvc = cache.NewMemoryService()
	}

	// Catalog pipeline: fetcher -> parser -> snapshot store
	fetcher := catalog.NewFetcher(cfg.CatalogURL, cacheSvc)
	store := catalog.NewStore(fetcher.Fetch, logger.ForCatalog())

	// Checkout link generator
	generator := checkout.New(cfg.StripeAPIKey, cfg.CheckoutBaseURL)

	// Discord adapter
	discordBot, err := bot.New(cfg.DiscordToken, cfg.AlertChannelID, store, generator)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to create bot")
	}
	if err := discordBot.Start(ctx); err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to Discord")
	}
	defer discordBot.Close()

	// Alert poller forwards feed entries through the bot
	poller := alerts.NewPoller(cfg.FeedURL, discordBot, cfg.PollInterval, cfg.SummaryMaxChars)

	// Periodic tasks: catalog refresh and alert polling, independent
	w := worker.NewWorker(
		catalog.NewRefreshTask(store, cfg.RefreshInterval),
		poller,
	)

	workerDone := make(chan struct{})
	go func() {
		log.Info().Msg("Starting periodic tasks")
		w.Start(ctx)
		close(workerDone)
	}()

	// Wait for shutdown signal
	sig := <-sigChan
	log.Info().
		Str("signal", sig.String()).
		Msg("Received shutdown signal")
	cancel()
	<-workerDone

	// Graceful shutdown
	log.Info().Msg("Shutting down gracefully...")
}
