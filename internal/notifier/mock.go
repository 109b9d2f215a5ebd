package notifier

import (
	"sync"

	"github.com/mauv0809/fantasy-duels/internal/league"
)

var _ Notifier = (*Mock)(nil)

// CardsCall records a call that announced duel cards.
type CardsCall struct {
	Gameweek int
	Cards    []league.DuelCard
	DryRun   bool
}

// Mock is a mock implementation of the Notifier interface for testing.
// It is safe for concurrent use.
type Mock struct {
	mu sync.Mutex

	// Spies for send functions
	SendPairingsFunc    func(gameweek int, cards []league.DuelCard, dryRun bool) error
	SendDuelResultsFunc func(gameweek int, cards []league.DuelCard, dryRun bool) error
	SendStandingsFunc   func(rows []league.Standing, dryRun bool) error

	// Call records
	SendPairingsCalls    []CardsCall
	SendDuelResultsCalls []CardsCall
	SendStandingsCalls   [][]league.Standing

	// Last values passed to the format functions
	LastStandingsResponse     []league.Standing
	LastDuelsResponse         []league.DuelCard
	LastDuelStandingsResponse []league.DuelRecord
}

// NewMock creates a new mock instance.
func NewMock() *Mock {
	return &Mock{}
}

// Reset clears all call records.
func (m *Mock) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.SendPairingsCalls = nil
	m.SendDuelResultsCalls = nil
	m.SendStandingsCalls = nil
	m.LastStandingsResponse = nil
	m.LastDuelsResponse = nil
	m.LastDuelStandingsResponse = nil
}

func (m *Mock) SendPairings(gameweek int, cards []league.DuelCard, dryRun bool) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.SendPairingsCalls = append(m.SendPairingsCalls, CardsCall{gameweek, cards, dryRun})
	if m.SendPairingsFunc != nil {
		return m.SendPairingsFunc(gameweek, cards, dryRun)
	}
	return nil
}

func (m *Mock) SendDuelResults(gameweek int, cards []league.DuelCard, dryRun bool) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.SendDuelResultsCalls = append(m.SendDuelResultsCalls, CardsCall{gameweek, cards, dryRun})
	if m.SendDuelResultsFunc != nil {
		return m.SendDuelResultsFunc(gameweek, cards, dryRun)
	}
	return nil
}

func (m *Mock) SendStandings(rows []league.Standing, dryRun bool) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.SendStandingsCalls = append(m.SendStandingsCalls, rows)
	if m.SendStandingsFunc != nil {
		return m.SendStandingsFunc(rows, dryRun)
	}
	return nil
}

func (m *Mock) FormatStandingsResponse(rows []league.Standing) (any, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.LastStandingsResponse = rows
	return "formatted_standings", nil
}

func (m *Mock) FormatDuelsResponse(gameweek int, cards []league.DuelCard) (any, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.LastDuelsResponse = cards
	return "formatted_duels", nil
}

func (m *Mock) FormatDuelStandingsResponse(rows []league.DuelRecord) (any, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.LastDuelStandingsResponse = rows
	return "formatted_duel_standings", nil
}
