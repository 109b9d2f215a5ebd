package league

import "fmt"

const (
	// ProjectionWindow is the number of recent rounds used for the scoring rate.
	ProjectionWindow = 3
	// DefaultHorizon is the number of synthetic rounds projected when unset.
	DefaultHorizon = 5
)

// Project returns the historical cumulative series followed by horizon
// synthetic rounds labelled P1..Pn. Each synthetic round adds the team's
// mean over its entries in the last ProjectionWindow rounds.
func Project(teams []Team, rounds []Round, horizon int) []ProjectionPoint {
	ordered := Chronological(rounds)
	if len(ordered) == 0 {
		return nil
	}
	horizon = max(horizon, 0)

	history := Cumulative(teams, ordered)
	series := make([]ProjectionPoint, 0, len(history)+horizon)
	for _, p := range history {
		totals := make(map[TeamID]float64, len(p.Totals))
		for id, v := range p.Totals {
			totals[id] = float64(v)
		}
		series = append(series, ProjectionPoint{Label: p.Label, Totals: totals})
	}

	rates := RecentRates(teams, ordered, ProjectionWindow)
	current := make(map[TeamID]float64, len(teams))
	for id, v := range series[len(series)-1].Totals {
		current[id] = v
	}

	for i := 1; i <= horizon; i++ {
		point := ProjectionPoint{
			Label:     fmt.Sprintf("P%d", i),
			Totals:    make(map[TeamID]float64, len(teams)),
			Projected: true,
		}
		for _, team := range teams {
			current[team.ID] += rates[team.ID]
			point.Totals[team.ID] = round2(current[team.ID])
		}
		series = append(series, point)
	}
	return series
}

// RecentRates returns each team's mean score over its entries in the last
// window rounds, or 0 without data.
func RecentRates(teams []Team, rounds []Round, window int) map[TeamID]float64 {
	recent := lastRounds(Chronological(rounds), window)
	rates := make(map[TeamID]float64, len(teams))
	for _, team := range teams {
		var sum, count int
		for _, r := range recent {
			e := r.Entry(team.ID)
			if !e.Played {
				continue
			}
			sum += e.Points
			count++
		}
		if count > 0 {
			rates[team.ID] = float64(sum) / float64(count)
		} else {
			rates[team.ID] = 0
		}
	}
	return rates
}
