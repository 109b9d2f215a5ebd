package store

import "github.com/mauv0809/fantasy-duels/internal/league"

// LeagueStore defines the interface for interacting with the league's data.
type LeagueStore interface {
	AddTeam(name, owner, color string) (league.Team, error)
	GetTeams() ([]league.Team, error)
	GetTeam(id league.TeamID) (league.Team, error)
	UpsertScores(entries []league.ScoreEntry) error
	GetScores() ([]league.ScoreEntry, error)
	GetMatchups() ([]league.Matchup, error)
	GetMatchupsByGameweek(gameweek int) ([]league.Matchup, error)
	// DeleteMatchups and InsertMatchups are separate calls; generating a
	// gameweek is a delete followed by an insert with no atomicity across them.
	DeleteMatchups(gameweek int) error
	InsertMatchups(drafts []league.Matchup) ([]league.Matchup, error)
	SetMatchupWinner(matchupID string, winner *league.TeamID) error
	Snapshot() (Snapshot, error)
	Clear() error
}
