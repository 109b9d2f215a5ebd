package pairing

import (
	"errors"

	"github.com/mauv0809/fantasy-duels/internal/league"
)

var (
	// ErrOddPool is returned when a single candidate is left after the bye step.
	ErrOddPool = errors.New("odd number of candidates left to pair")
	// ErrDuplicateCandidate is returned when a team appears twice in the pool.
	ErrDuplicateCandidate = errors.New("duplicate candidate")
	// ErrInvalidGameweek is returned for a gameweek below 1.
	ErrInvalidGameweek = errors.New("gameweek must be positive")
)

// MeetingWeight makes the number of prior meetings dominate recency in the penalty.
const MeetingWeight = 1_000_000

// Random is the source of randomness used for tie-breaking.
// *rand.Rand from math/rand/v2 satisfies it.
type Random interface {
	IntN(n int) int
	Shuffle(n int, swap func(i, j int))
}

// Meeting is the shared history of an unordered pair of teams.
type Meeting struct {
	Count        int
	LastGameweek int
}

type pairKey struct {
	low, high league.TeamID
}

func keyOf(a, b league.TeamID) pairKey {
	if a > b {
		a, b = b, a
	}
	return pairKey{low: a, high: b}
}
