package league

import (
	"math"
	"sort"
)

// Standings computes total points and per-round average for every team,
// ordered by total points descending. Ties keep the input order of teams.
func Standings(teams []Team, rounds []Round) []Standing {
	ordered := Chronological(rounds)
	inactive := InactiveTeams(teams, ordered, InactivityWindow)

	rows := make([]Standing, 0, len(teams))
	for _, team := range teams {
		row := Standing{Team: team, IsInactive: inactive.Has(team.ID)}
		for _, r := range ordered {
			e := r.Entry(team.ID)
			if !e.Played {
				continue
			}
			row.TotalPoints += e.Points
			row.RoundsPlayed++
		}
		if row.RoundsPlayed > 0 {
			row.Average = round2(float64(row.TotalPoints) / float64(row.RoundsPlayed))
		}
		rows = append(rows, row)
	}

	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].TotalPoints > rows[j].TotalPoints
	})
	return rows
}

// PositionalStandings awards, in every round, N-1 points to the best score
// down to 0 for the N-th, where N is the number of teams in the league.
// Teams without an entry in a round earn nothing for it.
func PositionalStandings(teams []Team, rounds []Round) []PositionalStanding {
	n := len(teams)
	points := make(map[TeamID]int, n)

	for _, r := range Chronological(rounds) {
		for k, id := range roundOrder(teams, r) {
			points[id] += max(0, n-1-k)
		}
	}

	rows := make([]PositionalStanding, 0, n)
	for _, team := range teams {
		rows = append(rows, PositionalStanding{Team: team, PositionalPoints: points[team.ID]})
	}
	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].PositionalPoints > rows[j].PositionalPoints
	})
	return rows
}

// Cumulative returns the running total of every team after each round.
// A team without an entry keeps its previous total.
func Cumulative(teams []Team, rounds []Round) []CumulativePoint {
	ordered := Chronological(rounds)
	running := make(map[TeamID]int, len(teams))
	series := make([]CumulativePoint, 0, len(ordered))

	for _, r := range ordered {
		point := CumulativePoint{Label: r.Label, Totals: make(map[TeamID]int, len(teams))}
		for _, team := range teams {
			running[team.ID] += r.Entry(team.ID).Points
			point.Totals[team.ID] = running[team.ID]
		}
		series = append(series, point)
	}
	return series
}

// RankHistory returns each team's 1-based table position after every round.
func RankHistory(teams []Team, rounds []Round) []RankPoint {
	ordered := Chronological(rounds)
	running := make(map[TeamID]int, len(teams))
	history := make([]RankPoint, 0, len(ordered))

	for _, r := range ordered {
		for _, team := range teams {
			running[team.ID] += r.Entry(team.ID).Points
		}
		sorted := make([]Team, len(teams))
		copy(sorted, teams)
		sort.SliceStable(sorted, func(i, j int) bool {
			return running[sorted[i].ID] > running[sorted[j].ID]
		})

		point := RankPoint{Label: r.Label, Ranks: make(map[TeamID]int, len(teams))}
		for i, team := range sorted {
			point.Ranks[team.ID] = i + 1
		}
		history = append(history, point)
	}
	return history
}

// roundOrder returns the teams with an entry in the round, best score first.
// Equal scores keep the order of teams.
func roundOrder(teams []Team, r Round) []TeamID {
	ids := make([]TeamID, 0, len(teams))
	for _, team := range teams {
		if r.Entry(team.ID).Played {
			ids = append(ids, team.ID)
		}
	}
	sort.SliceStable(ids, func(i, j int) bool {
		return r.Scores[ids[i]] > r.Scores[ids[j]]
	})
	return ids
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
