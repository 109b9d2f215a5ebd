package league

import (
	"errors"
	"fmt"
	"maps"
	"math"
	"slices"
	"sort"
)

// UnknownTeamName is displayed for references to teams that do not exist.
const UnknownTeamName = "Unknown"

// ErrUnknownTeam is returned when a requested team is not part of the league.
var ErrUnknownTeam = errors.New("unknown team")

// Highlight is a single notable score.
type Highlight struct {
	TeamID   TeamID `json:"team_id"`
	Team     string `json:"team"`
	Points   int    `json:"points"`
	Matchday string `json:"matchday"`
}

// Summary holds league-wide superlatives and averages.
type Summary struct {
	MVP               *Highlight `json:"mvp"`
	LowestScorer      *Highlight `json:"lowest_scorer"`
	HistoricalAverage float64    `json:"historical_average"`
	RecentAverage     float64    `json:"recent_average"`
	InactiveTeams     []TeamID   `json:"inactive_teams"`
}

// Summarize computes the best single-round score, the lowest positive
// single-round score and the league averages. Inactive teams are not eligible
// for either superlative.
func Summarize(teams []Team, rounds []Round) Summary {
	ordered := Chronological(rounds)
	inactive := InactiveTeams(teams, ordered, InactivityWindow)
	names := teamNames(teams)

	var s Summary
	var total, entries int
	for _, r := range ordered {
		for _, id := range slices.Sorted(maps.Keys(r.Scores)) {
			points := r.Scores[id]
			total += points
			entries++
			if inactive.Has(id) {
				continue
			}
			if s.MVP == nil || points > s.MVP.Points {
				s.MVP = &Highlight{TeamID: id, Team: nameOf(names, id), Points: points, Matchday: r.Label}
			}
			if points > 0 && (s.LowestScorer == nil || points < s.LowestScorer.Points) {
				s.LowestScorer = &Highlight{TeamID: id, Team: nameOf(names, id), Points: points, Matchday: r.Label}
			}
		}
	}
	if entries > 0 {
		s.HistoricalAverage = round1(float64(total) / float64(entries))
	}

	var recentTotal, recentEntries int
	for _, r := range lastRounds(ordered, StreakWindow) {
		for _, p := range r.Scores {
			recentTotal += p
			recentEntries++
		}
	}
	if recentEntries > 0 {
		s.RecentAverage = round1(float64(recentTotal) / float64(recentEntries))
	}

	s.InactiveTeams = slices.Sorted(maps.Keys(inactive))
	return s
}

// RoundPerformance is one team's result in one round.
type RoundPerformance struct {
	Matchday string `json:"matchday"`
	Points   int    `json:"points"`
	Played   bool   `json:"played"`
	Position int    `json:"position"`
}

// Performance returns a team's points and its position within each round.
// Position is 1-based among the round's entries and 0 when the team did not play.
func Performance(team TeamID, rounds []Round) []RoundPerformance {
	ordered := Chronological(rounds)
	out := make([]RoundPerformance, 0, len(ordered))
	for _, r := range ordered {
		e := r.Entry(team)
		perf := RoundPerformance{Matchday: r.Label, Points: e.Points, Played: e.Played}
		if e.Played {
			ids := slices.Sorted(maps.Keys(r.Scores))
			sort.SliceStable(ids, func(i, j int) bool {
				return r.Scores[ids[i]] > r.Scores[ids[j]]
			})
			perf.Position = slices.Index(ids, team) + 1
		}
		out = append(out, perf)
	}
	return out
}

// ChaseResult describes the gap between two teams in the standings.
type ChaseResult struct {
	Team              Standing `json:"team"`
	Target            Standing `json:"target"`
	Gap               int      `json:"gap"`
	Matchdays         int      `json:"matchdays"`
	PointsPerMatchday float64  `json:"points_per_matchday"`
	Ahead             bool     `json:"ahead"`
}

// Chase computes how many extra points per matchday team needs over target
// to close the gap within the given number of matchdays.
func Chase(standings []Standing, team, target TeamID, matchdays int) (ChaseResult, error) {
	if matchdays <= 0 {
		return ChaseResult{}, fmt.Errorf("matchdays must be positive, got %d", matchdays)
	}
	me, ok := findStanding(standings, team)
	if !ok {
		return ChaseResult{}, fmt.Errorf("team %d: %w", team, ErrUnknownTeam)
	}
	them, ok := findStanding(standings, target)
	if !ok {
		return ChaseResult{}, fmt.Errorf("team %d: %w", target, ErrUnknownTeam)
	}

	res := ChaseResult{Team: me, Target: them, Gap: them.TotalPoints - me.TotalPoints, Matchdays: matchdays}
	if res.Gap > 0 {
		res.PointsPerMatchday = round1(float64(res.Gap) / float64(matchdays))
	} else {
		res.Ahead = true
	}
	return res, nil
}

func findStanding(standings []Standing, id TeamID) (Standing, bool) {
	for _, s := range standings {
		if s.Team.ID == id {
			return s, true
		}
	}
	return Standing{}, false
}

func teamNames(teams []Team) map[TeamID]string {
	names := make(map[TeamID]string, len(teams))
	for _, t := range teams {
		names[t.ID] = t.Name
	}
	return names
}

func nameOf(names map[TeamID]string, id TeamID) string {
	if n, ok := names[id]; ok {
		return n
	}
	return UnknownTeamName
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
