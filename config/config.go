package config

import (
	"os"
	"strconv"
	"time"

	apperrors "github.com/redTeamHero/discord/pkg/errors"
)

// Config represents the application configuration
type Config struct {
	// Discord configuration
	DiscordToken   string
	AlertChannelID string

	// Payment configuration
	StripeAPIKey    string
	CheckoutBaseURL string

	// Catalog configuration
	CatalogURL      string
	RefreshInterval time.Duration

	// Alert feed configuration
	FeedURL         string
	PollInterval    time.Duration
	SummaryMaxChars int

	// Optional shared cache for fetch backoff windows
	MemcacheAddr string

	// Environment
	Environment string
}

// LoadConfig loads the configuration from environment variables with defaults
func LoadConfig() *Config {
	refreshInterval, _ := strconv.Atoi(getEnv("REFRESH_INTERVAL_SECONDS", "1800"))
	pollInterval, _ := strconv.Atoi(getEnv("CHECK_INTERVAL_SECONDS", "120"))
	summaryMax, _ := strconv.Atoi(getEnv("SUMMARY_MAX_CHARS", "300"))

	return &Config{
		DiscordToken:    os.Getenv("DISCORD_BOT_TOKEN"),
		AlertChannelID:  getEnv("ALERT_CHANNEL_ID", ""),
		StripeAPIKey:    os.Getenv("STRIPE_API_KEY"),
		CheckoutBaseURL: getEnv("CHECKOUT_BASE_URL", "https://example.com"),
		CatalogURL:      getEnv("CATALOG_URL", "https://tradelinesupply.com/pricing/"),
		RefreshInterval: time.Duration(refreshInterval) * time.Second,
		FeedURL:         getEnv("RSS_FEED_URL", "https://hnrss.org/newest?points=100"),
		PollInterval:    time.Duration(pollInterval) * time.Second,
		SummaryMaxChars: summaryMax,
		MemcacheAddr:    getEnv("MEMCACHE_ADDR", ""),
		Environment:     getEnv("TRADELINE_ENVIRONMENT", "development"),
	}
}

// Validate checks that required credentials are present
func (c *Config) Validate() error {
	if c.DiscordToken == "" {
		return apperrors.NewConfiguration("DISCORD_BOT_TOKEN is required", nil)
	}
	if c.StripeAPIKey == "" {
		return apperrors.NewConfiguration("STRIPE_API_KEY is required", nil)
	}
	if c.RefreshInterval <= 0 {
		return apperrors.NewConfiguration("REFRESH_INTERVAL_SECONDS must be positive", nil)
	}
	if c.PollInterval <= 0 {
		return apperrors.NewConfiguration("CHECK_INTERVAL_SECONDS must be positive", nil)
	}
	return nil
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}
