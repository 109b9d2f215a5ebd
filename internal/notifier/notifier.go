package notifier

import "github.com/mauv0809/fantasy-duels/internal/league"

// Notifier defines a high-level interface for sending notifications about league events.
// This decouples the rest of the application from the specific notification provider (e.g., Slack).
type Notifier interface {
	// For newly generated gameweeks
	SendPairings(gameweek int, cards []league.DuelCard, dryRun bool) error
	// For scored gameweeks
	SendDuelResults(gameweek int, cards []league.DuelCard, dryRun bool) error
	SendStandings(rows []league.Standing, dryRun bool) error

	// For formatting responses for slash commands
	FormatStandingsResponse(rows []league.Standing) (any, error)
	FormatDuelsResponse(gameweek int, cards []league.DuelCard) (any, error)
	FormatDuelStandingsResponse(rows []league.DuelRecord) (any, error)
}
