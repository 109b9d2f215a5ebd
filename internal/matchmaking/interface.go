package matchmaking

import (
	"context"

	"github.com/mauv0809/fantasy-duels/internal/league"
)

// DuelGenerator produces and persists the duels of a gameweek.
type DuelGenerator interface {
	GenerateDuels(ctx context.Context, gameweek int, dryRun bool) (*Result, error)
}

// Pairer is the pairing step used by the service.
type Pairer interface {
	Generate(candidates []league.TeamID, history []league.Matchup, gameweek int) ([]league.Matchup, error)
}
