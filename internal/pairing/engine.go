package pairing

import (
	"fmt"
	"math/rand/v2"
	"slices"

	"github.com/mauv0809/fantasy-duels/internal/league"
)

// Engine generates weekly duels.
type Engine struct {
	rng Random
}

// New creates an Engine. A nil source falls back to the global generator.
func New(rng Random) *Engine {
	if rng == nil {
		rng = globalSource{}
	}
	return &Engine{rng: rng}
}

// History is the pair-history matrix built from past non-bye matchups.
type History map[pairKey]Meeting

// BuildHistory records, for every pair that has met, how often and when they last met.
func BuildHistory(matchups []league.Matchup) History {
	h := make(History)
	for _, m := range matchups {
		if m.IsBye() {
			continue
		}
		k := keyOf(m.Player1, *m.Player2)
		prev := h[k]
		h[k] = Meeting{Count: prev.Count + 1, LastGameweek: max(prev.LastGameweek, m.Gameweek)}
	}
	return h
}

// Between returns the shared history of two teams.
func (h History) Between(a, b league.TeamID) Meeting {
	return h[keyOf(a, b)]
}

// Penalty scores a potential pairing: any prior meeting outweighs recency.
func (h History) Penalty(a, b league.TeamID) int {
	m := h.Between(a, b)
	return m.Count*MeetingWeight + m.LastGameweek
}

// ByeCounts returns how many byes each candidate has received.
func ByeCounts(candidates []league.TeamID, matchups []league.Matchup) map[league.TeamID]int {
	counts := make(map[league.TeamID]int, len(candidates))
	for _, id := range candidates {
		counts[id] = 0
	}
	for _, m := range matchups {
		if !m.IsBye() {
			continue
		}
		if _, ok := counts[m.Player1]; ok {
			counts[m.Player1]++
		}
	}
	return counts
}

// Generate produces the drafts for gameweek. With an odd pool one candidate
// among those with the fewest past byes sits out; the rest are paired greedily
// so that pairs who never met always come first and older rematches are
// preferred over recent ones. Winners are left unset.
func (e *Engine) Generate(candidates []league.TeamID, history []league.Matchup, gameweek int) ([]league.Matchup, error) {
	if gameweek <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidGameweek, gameweek)
	}
	seen := make(map[league.TeamID]struct{}, len(candidates))
	for _, id := range candidates {
		if _, dup := seen[id]; dup {
			return nil, fmt.Errorf("%w: team %d", ErrDuplicateCandidate, id)
		}
		seen[id] = struct{}{}
	}

	pool := slices.Clone(candidates)
	drafts := make([]league.Matchup, 0, len(pool)/2+1)

	if len(pool)%2 != 0 {
		bye := e.pickBye(pool, history)
		drafts = append(drafts, league.Matchup{Gameweek: gameweek, Player1: bye})
		pool = slices.DeleteFunc(pool, func(id league.TeamID) bool { return id == bye })
	}

	matrix := BuildHistory(history)
	e.rng.Shuffle(len(pool), func(i, j int) { pool[i], pool[j] = pool[j], pool[i] })

	for len(pool) > 0 {
		if len(pool) == 1 {
			return nil, fmt.Errorf("%w: team %d", ErrOddPool, pool[0])
		}
		p1 := pool[0]
		best, minPenalty := 1, matrix.Penalty(p1, pool[1])
		for i := 2; i < len(pool); i++ {
			if p := matrix.Penalty(p1, pool[i]); p < minPenalty {
				best, minPenalty = i, p
			}
		}
		p2 := pool[best]
		drafts = append(drafts, league.Matchup{Gameweek: gameweek, Player1: p1, Player2: &p2})
		pool = slices.Delete(pool, best, best+1)
		pool = pool[1:]
	}
	return drafts, nil
}

func (e *Engine) pickBye(pool []league.TeamID, history []league.Matchup) league.TeamID {
	counts := ByeCounts(pool, history)
	fewest := counts[pool[0]]
	for _, id := range pool {
		fewest = min(fewest, counts[id])
	}
	var eligible []league.TeamID
	for _, id := range pool {
		if counts[id] == fewest {
			eligible = append(eligible, id)
		}
	}
	return eligible[e.rng.IntN(len(eligible))]
}

type globalSource struct{}

func (globalSource) IntN(n int) int                     { return rand.IntN(n) }
func (globalSource) Shuffle(n int, swap func(i, j int)) { rand.Shuffle(n, swap) }
