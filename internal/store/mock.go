package store

import (
	"sync"

	"github.com/mauv0809/fantasy-duels/internal/league"
)

// MockStore is a mock implementation of the LeagueStore interface for testing.
// It is safe for concurrent use.
type MockStore struct {
	mu sync.Mutex

	// Spies for method calls
	AddTeamFunc               func(name, owner, color string) (league.Team, error)
	GetTeamsFunc              func() ([]league.Team, error)
	GetTeamFunc               func(id league.TeamID) (league.Team, error)
	UpsertScoresFunc          func(entries []league.ScoreEntry) error
	GetScoresFunc             func() ([]league.ScoreEntry, error)
	GetMatchupsFunc           func() ([]league.Matchup, error)
	GetMatchupsByGameweekFunc func(gameweek int) ([]league.Matchup, error)
	DeleteMatchupsFunc        func(gameweek int) error
	InsertMatchupsFunc        func(drafts []league.Matchup) ([]league.Matchup, error)
	SetMatchupWinnerFunc      func(matchupID string, winner *league.TeamID) error
	SnapshotFunc              func() (Snapshot, error)
	ClearFunc                 func() error

	// Call records
	AddTeamCalls          []league.Team
	UpsertScoresCalls     [][]league.ScoreEntry
	DeleteMatchupsCalls   []int
	InsertMatchupsCalls   [][]league.Matchup
	SetMatchupWinnerCalls []struct {
		MatchupID string
		Winner    *league.TeamID
	}
	ClearCalls int
}

// NewMock creates a new mock instance.
func NewMock() *MockStore {
	return &MockStore{}
}

// Reset clears all call records.
func (m *MockStore) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.AddTeamCalls = nil
	m.UpsertScoresCalls = nil
	m.DeleteMatchupsCalls = nil
	m.InsertMatchupsCalls = nil
	m.SetMatchupWinnerCalls = nil
	m.ClearCalls = 0
}

func (m *MockStore) AddTeam(name, owner, color string) (league.Team, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.AddTeamCalls = append(m.AddTeamCalls, league.Team{Name: name, Owner: owner, Color: color})
	if m.AddTeamFunc != nil {
		return m.AddTeamFunc(name, owner, color)
	}
	return league.Team{ID: league.TeamID(len(m.AddTeamCalls)), Name: name, Owner: owner, Color: color}, nil
}

func (m *MockStore) GetTeams() ([]league.Team, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.GetTeamsFunc != nil {
		return m.GetTeamsFunc()
	}
	return nil, nil
}

func (m *MockStore) GetTeam(id league.TeamID) (league.Team, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.GetTeamFunc != nil {
		return m.GetTeamFunc(id)
	}
	return league.Team{}, ErrTeamNotFound
}

func (m *MockStore) UpsertScores(entries []league.ScoreEntry) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.UpsertScoresCalls = append(m.UpsertScoresCalls, entries)
	if m.UpsertScoresFunc != nil {
		return m.UpsertScoresFunc(entries)
	}
	return nil
}

func (m *MockStore) GetScores() ([]league.ScoreEntry, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.GetScoresFunc != nil {
		return m.GetScoresFunc()
	}
	return nil, nil
}

func (m *MockStore) GetMatchups() ([]league.Matchup, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.GetMatchupsFunc != nil {
		return m.GetMatchupsFunc()
	}
	return nil, nil
}

func (m *MockStore) GetMatchupsByGameweek(gameweek int) ([]league.Matchup, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.GetMatchupsByGameweekFunc != nil {
		return m.GetMatchupsByGameweekFunc(gameweek)
	}
	return nil, nil
}

func (m *MockStore) DeleteMatchups(gameweek int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.DeleteMatchupsCalls = append(m.DeleteMatchupsCalls, gameweek)
	if m.DeleteMatchupsFunc != nil {
		return m.DeleteMatchupsFunc(gameweek)
	}
	return nil
}

func (m *MockStore) InsertMatchups(drafts []league.Matchup) ([]league.Matchup, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.InsertMatchupsCalls = append(m.InsertMatchupsCalls, drafts)
	if m.InsertMatchupsFunc != nil {
		return m.InsertMatchupsFunc(drafts)
	}
	return drafts, nil
}

func (m *MockStore) SetMatchupWinner(matchupID string, winner *league.TeamID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.SetMatchupWinnerCalls = append(m.SetMatchupWinnerCalls, struct {
		MatchupID string
		Winner    *league.TeamID
	}{matchupID, winner})
	if m.SetMatchupWinnerFunc != nil {
		return m.SetMatchupWinnerFunc(matchupID, winner)
	}
	return nil
}

func (m *MockStore) Snapshot() (Snapshot, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.SnapshotFunc != nil {
		return m.SnapshotFunc()
	}
	return Snapshot{}, nil
}

func (m *MockStore) Clear() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ClearCalls++
	if m.ClearFunc != nil {
		return m.ClearFunc()
	}
	return nil
}
