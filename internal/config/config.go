package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"
	"github.com/mauv0809/fantasy-duels/internal/league"
)

// Load reads configuration from environment variables and .env file.
func Load() Config {
	err := godotenv.Load()
	if err != nil {
		log.Info("No .env file found, reading from environment variables")
	}

	// A helper function to get a required env var. It will fail if the env var is not set.
	getEnv := func(key string) string {
		if value, ok := os.LookupEnv(key); ok {
			return value
		}
		log.Fatalf("Error: Required environment variable %s is not set.", key)
		return "" // This line is never reached
	}

	leagueCfg, err := loadLeague(os.LookupEnv)
	if err != nil {
		log.Fatalf("Error: %v", err)
	}

	cfg := Config{
		DBName: getEnv("DB_NAME"),
		Port:   getEnv("PORT"),
		Slack: SlackConfig{
			Token:         os.Getenv("SLACK_BOT_TOKEN"),
			ChannelID:     os.Getenv("SLACK_CHANNEL_ID"),
			SigningSecret: os.Getenv("SLACK_SIGNING_SECRET"),
		},
		Turso: TursoConfig{
			PrimaryURL: os.Getenv("TURSO_PRIMARY_URL"),
			AuthToken:  os.Getenv("TURSO_AUTH_TOKEN"),
		},
		ProjectID:  os.Getenv("GCP_PROJECT"),
		AdminToken: os.Getenv("ADMIN_TOKEN"),
		League:     leagueCfg,
	}
	if cfg.AdminToken == "" {
		log.Warn("ADMIN_TOKEN is not set, admin endpoints are disabled")
	}
	return cfg
}

// loadLeague reads the analytics tuning knobs, falling back to the defaults.
func loadLeague(lookup func(string) (string, bool)) (LeagueConfig, error) {
	cfg := LeagueConfig{
		StreakRule:        league.DefaultStreakRule,
		ProjectionHorizon: league.DefaultHorizon,
	}

	positive := func(key string, dst *int) error {
		raw, ok := lookup(key)
		if !ok || raw == "" {
			return nil
		}
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			return fmt.Errorf("%s must be a positive integer, got %q", key, raw)
		}
		*dst = n
		return nil
	}
	if err := positive("PROJECTION_HORIZON", &cfg.ProjectionHorizon); err != nil {
		return cfg, err
	}
	if raw, ok := lookup("STREAK_RULE"); ok && raw != "" {
		rule, err := league.ParseStreakRule(raw)
		if err != nil {
			return cfg, fmt.Errorf("invalid STREAK_RULE: %w", err)
		}
		cfg.StreakRule = rule
	}
	return cfg, nil
}
