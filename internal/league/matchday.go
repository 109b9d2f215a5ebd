package league

import (
	"sort"
	"strconv"
	"strings"
	"unicode"
)

// MatchdayNumber extracts the ordering key of a matchday label by
// concatenating its digits ("J12" -> 12). Labels without digits order as 0.
func MatchdayNumber(label string) int {
	var digits strings.Builder
	for _, r := range label {
		if unicode.IsDigit(r) && r < unicode.MaxASCII {
			digits.WriteRune(r)
		}
	}
	n, err := strconv.Atoi(digits.String())
	if err != nil {
		return 0
	}
	return n
}

// Chronological returns the rounds deduplicated by label and ordered by
// matchday number. Ties keep discovery order. Rounds sharing a label are
// merged into the first one seen. The input is not modified.
func Chronological(rounds []Round) []Round {
	out := make([]Round, 0, len(rounds))
	index := make(map[string]int, len(rounds))
	for _, r := range rounds {
		if i, ok := index[r.Label]; ok {
			for id, p := range r.Scores {
				out[i].Scores[id] = p
			}
			continue
		}
		scores := make(map[TeamID]int, len(r.Scores))
		for id, p := range r.Scores {
			scores[id] = p
		}
		index[r.Label] = len(out)
		out = append(out, Round{Label: r.Label, Scores: scores})
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Number() < out[j].Number()
	})
	return out
}

// SortedMatchdays returns the distinct matchday labels in chronological order.
func SortedMatchdays(rounds []Round) []string {
	ordered := Chronological(rounds)
	labels := make([]string, len(ordered))
	for i, r := range ordered {
		labels[i] = r.Label
	}
	return labels
}

// GroupScores regroups flat score entries into chronological rounds.
// A repeated (matchday, team) pair keeps the last entry.
func GroupScores(entries []ScoreEntry) []Round {
	var rounds []Round
	index := make(map[string]int)
	for _, e := range entries {
		i, ok := index[e.Matchday]
		if !ok {
			i = len(rounds)
			index[e.Matchday] = i
			rounds = append(rounds, Round{Label: e.Matchday, Scores: make(map[TeamID]int)})
		}
		rounds[i].Scores[e.TeamID] = e.Points
	}
	return Chronological(rounds)
}

// Before returns the chronological rounds whose number is strictly lower than gameweek.
func Before(rounds []Round, gameweek int) []Round {
	var out []Round
	for _, r := range Chronological(rounds) {
		if r.Number() < gameweek {
			out = append(out, r)
		}
	}
	return out
}

// lastRounds returns the trailing n rounds of an already ordered slice.
func lastRounds(ordered []Round, n int) []Round {
	if n <= 0 {
		return nil
	}
	if len(ordered) <= n {
		return ordered
	}
	return ordered[len(ordered)-n:]
}

// roundForGameweek finds the scored round whose number matches the gameweek.
func roundForGameweek(ordered []Round, gameweek int) (Round, bool) {
	for _, r := range ordered {
		if r.Number() == gameweek {
			return r, true
		}
	}
	return Round{}, false
}
