package store

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/mauv0809/fantasy-duels/internal/league"
)

// New creates a new LeagueStore.
func New(db *sql.DB) LeagueStore {
	return &store{
		db: db,
	}
}

// AddTeam inserts a team and returns it with its assigned id.
func (s *store) AddTeam(name, owner, color string) (league.Team, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	name = strings.TrimSpace(name)
	if name == "" {
		return league.Team{}, errors.New("team name is required")
	}
	res, err := s.db.Exec("INSERT INTO teams (name, owner, color) VALUES (?, ?, ?)", name, owner, color)
	if err != nil {
		return league.Team{}, fmt.Errorf("failed to add team %q: %w", name, err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return league.Team{}, fmt.Errorf("failed to read team id: %w", err)
	}
	log.Info("Added team", "id", id, "name", name)
	return league.Team{ID: league.TeamID(id), Name: name, Owner: owner, Color: color}, nil
}

// GetTeams returns all teams in id order.
func (s *store) GetTeams() ([]league.Team, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.getTeams()
}

func (s *store) getTeams() ([]league.Team, error) {
	rows, err := s.db.Query("SELECT id, name, owner, color FROM teams ORDER BY id")
	if err != nil {
		return nil, fmt.Errorf("failed to query teams: %w", err)
	}
	defer rows.Close()

	var teams []league.Team
	for rows.Next() {
		var t league.Team
		if err := rows.Scan(&t.ID, &t.Name, &t.Owner, &t.Color); err != nil {
			return nil, fmt.Errorf("failed to scan team: %w", err)
		}
		teams = append(teams, t)
	}
	return teams, rows.Err()
}

// GetTeam returns a single team or ErrTeamNotFound.
func (s *store) GetTeam(id league.TeamID) (league.Team, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var t league.Team
	err := s.db.QueryRow("SELECT id, name, owner, color FROM teams WHERE id = ?", id).
		Scan(&t.ID, &t.Name, &t.Owner, &t.Color)
	if errors.Is(err, sql.ErrNoRows) {
		return league.Team{}, fmt.Errorf("team %d: %w", id, ErrTeamNotFound)
	}
	if err != nil {
		return league.Team{}, fmt.Errorf("failed to get team %d: %w", id, err)
	}
	return t, nil
}

// UpsertScores writes the entries in one transaction. An existing
// (matchday, team) entry is overwritten, so the last write wins.
func (s *store) UpsertScores(entries []league.ScoreEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	stmt, err := tx.Prepare(`
		INSERT INTO scores (matchday, team_id, points, updated_at) VALUES (?, ?, ?, ?)
		ON CONFLICT(matchday, team_id) DO UPDATE SET
			points = excluded.points,
			updated_at = excluded.updated_at;
	`)
	if err != nil {
		tx.Rollback()
		return fmt.Errorf("failed to prepare score upsert: %w", err)
	}
	defer stmt.Close()

	now := time.Now().Unix()
	for _, e := range entries {
		if strings.TrimSpace(e.Matchday) == "" {
			tx.Rollback()
			return fmt.Errorf("score for team %d has no matchday", e.TeamID)
		}
		if e.Points < 0 {
			tx.Rollback()
			return fmt.Errorf("score %s/%d: %w", e.Matchday, e.TeamID, ErrNegativeScore)
		}
		if _, err := stmt.Exec(e.Matchday, e.TeamID, e.Points, now); err != nil {
			tx.Rollback()
			return fmt.Errorf("failed to upsert score %s/%d: %w", e.Matchday, e.TeamID, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit scores: %w", err)
	}
	log.Debug("Upserted scores", "count", len(entries))
	return nil
}

// GetScores returns every stored entry.
func (s *store) GetScores() ([]league.ScoreEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.getScores()
}

func (s *store) getScores() ([]league.ScoreEntry, error) {
	rows, err := s.db.Query("SELECT matchday, team_id, points FROM scores ORDER BY updated_at, rowid")
	if err != nil {
		return nil, fmt.Errorf("failed to query scores: %w", err)
	}
	defer rows.Close()

	var entries []league.ScoreEntry
	for rows.Next() {
		var e league.ScoreEntry
		if err := rows.Scan(&e.Matchday, &e.TeamID, &e.Points); err != nil {
			return nil, fmt.Errorf("failed to scan score: %w", err)
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

const matchupColumns = "id, gameweek, player1_id, player2_id, winner_id"

// GetMatchups returns all matchups ordered by gameweek.
func (s *store) GetMatchups() ([]league.Matchup, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.queryMatchups("SELECT " + matchupColumns + " FROM weekly_matchups ORDER BY gameweek, created_at, rowid")
}

// GetMatchupsByGameweek returns the matchups of one gameweek.
func (s *store) GetMatchupsByGameweek(gameweek int) ([]league.Matchup, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.queryMatchups("SELECT "+matchupColumns+" FROM weekly_matchups WHERE gameweek = ? ORDER BY created_at, rowid", gameweek)
}

func (s *store) queryMatchups(query string, args ...any) ([]league.Matchup, error) {
	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query matchups: %w", err)
	}
	defer rows.Close()

	var matchups []league.Matchup
	for rows.Next() {
		m, err := scanMatchup(rows)
		if err != nil {
			log.Error("Failed to scan matchup row", "error", err)
			continue
		}
		matchups = append(matchups, m)
	}
	return matchups, rows.Err()
}

func scanMatchup(scanner interface{ Scan(...any) error }) (league.Matchup, error) {
	var m league.Matchup
	var player2, winner sql.NullInt64
	if err := scanner.Scan(&m.ID, &m.Gameweek, &m.Player1, &player2, &winner); err != nil {
		return league.Matchup{}, err
	}
	if player2.Valid {
		id := league.TeamID(player2.Int64)
		m.Player2 = &id
	}
	if winner.Valid {
		id := league.TeamID(winner.Int64)
		m.Winner = &id
	}
	return m, nil
}

// DeleteMatchups removes every matchup of the gameweek.
func (s *store) DeleteMatchups(gameweek int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	res, err := s.db.Exec("DELETE FROM weekly_matchups WHERE gameweek = ?", gameweek)
	if err != nil {
		return fmt.Errorf("failed to delete matchups for gameweek %d: %w", gameweek, err)
	}
	n, _ := res.RowsAffected()
	log.Debug("Deleted matchups", "gameweek", gameweek, "count", n)
	return nil
}

// InsertMatchups persists drafts in a single transaction and returns them with ids.
func (s *store) InsertMatchups(drafts []league.Matchup) ([]league.Matchup, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	tx, err := s.db.Begin()
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	stmt, err := tx.Prepare("INSERT INTO weekly_matchups (" + matchupColumns + ", created_at) VALUES (?, ?, ?, ?, ?, ?)")
	if err != nil {
		tx.Rollback()
		return nil, fmt.Errorf("failed to prepare matchup insert: %w", err)
	}
	defer stmt.Close()

	now := time.Now().UnixNano()
	saved := make([]league.Matchup, 0, len(drafts))
	for i, m := range drafts {
		if m.ID == "" {
			m.ID = uuid.New().String()
		}
		if _, err := stmt.Exec(m.ID, m.Gameweek, m.Player1, nullableID(m.Player2), nullableID(m.Winner), now+int64(i)); err != nil {
			tx.Rollback()
			return nil, fmt.Errorf("failed to insert matchup for gameweek %d: %w", m.Gameweek, err)
		}
		saved = append(saved, m)
	}
	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit matchups: %w", err)
	}
	return saved, nil
}

// SetMatchupWinner records the winner of a duel. A nil winner clears it.
func (s *store) SetMatchupWinner(matchupID string, winner *league.TeamID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	row := s.db.QueryRow("SELECT "+matchupColumns+" FROM weekly_matchups WHERE id = ?", matchupID)
	m, err := scanMatchup(row)
	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("matchup %s: %w", matchupID, ErrMatchupNotFound)
	}
	if err != nil {
		return fmt.Errorf("failed to get matchup %s: %w", matchupID, err)
	}
	if winner != nil && (m.IsBye() || !m.Involves(*winner)) {
		return fmt.Errorf("team %d, matchup %s: %w", *winner, matchupID, ErrNotParticipant)
	}

	if _, err := s.db.Exec("UPDATE weekly_matchups SET winner_id = ? WHERE id = ?", nullableID(winner), matchupID); err != nil {
		return fmt.Errorf("failed to set winner of matchup %s: %w", matchupID, err)
	}
	return nil
}

// Snapshot loads teams, rounds and matchups under one read lock.
func (s *store) Snapshot() (Snapshot, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	teams, err := s.getTeams()
	if err != nil {
		return Snapshot{}, err
	}
	entries, err := s.getScores()
	if err != nil {
		return Snapshot{}, err
	}
	matchups, err := s.queryMatchups("SELECT " + matchupColumns + " FROM weekly_matchups ORDER BY gameweek, created_at, rowid")
	if err != nil {
		return Snapshot{}, err
	}
	return Snapshot{Teams: teams, Rounds: league.GroupScores(entries), Matchups: matchups}, nil
}

// Clear removes all league data.
func (s *store) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, table := range []string{"weekly_matchups", "scores", "teams"} {
		if _, err := s.db.Exec("DELETE FROM " + table); err != nil {
			return fmt.Errorf("failed to clear %s: %w", table, err)
		}
	}
	log.Info("Cleared league data")
	return nil
}

func nullableID(id *league.TeamID) sql.NullInt64 {
	if id == nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: int64(*id), Valid: true}
}
