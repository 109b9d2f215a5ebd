package config

import "github.com/mauv0809/fantasy-duels/internal/league"

// Config holds all configuration for the application.
type Config struct {
	DBName     string
	Port       string
	Slack      SlackConfig
	Turso      TursoConfig
	ProjectID  string
	AdminToken string
	League     LeagueConfig
}

type SlackConfig struct {
	Token         string
	ChannelID     string
	SigningSecret string
}

type TursoConfig struct {
	PrimaryURL string
	AuthToken  string
}

// LeagueConfig tunes the analytics.
type LeagueConfig struct {
	StreakRule        league.StreakRule
	ProjectionHorizon int
}
