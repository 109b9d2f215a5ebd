package store

import (
	"database/sql"
	"errors"
	"sync"

	"github.com/mauv0809/fantasy-duels/internal/league"
)

var (
	// ErrTeamNotFound is returned when a team id has no row.
	ErrTeamNotFound = errors.New("team not found")
	// ErrMatchupNotFound is returned when a matchup id has no row.
	ErrMatchupNotFound = errors.New("matchup not found")
	// ErrNotParticipant is returned when a winner is not a side of the duel.
	ErrNotParticipant = errors.New("team is not a side of the matchup")
	// ErrNegativeScore is returned when an entry carries negative points.
	ErrNegativeScore = errors.New("negative score")
)

// store handles all database operations for the league.
type store struct {
	db *sql.DB
	mu sync.RWMutex
}

// Snapshot is a fully materialized view of the league used by the analytics.
type Snapshot struct {
	Teams    []league.Team    `json:"teams"`
	Rounds   []league.Round   `json:"rounds"`
	Matchups []league.Matchup `json:"matchups"`
}
