package league

import (
	"fmt"
	"strings"
)

// StreakRule selects how hot and cold form is detected.
type StreakRule string

const (
	// TrailingAverageRule compares each of the last StreakWindow scores
	// against one league threshold computed over that window.
	TrailingAverageRule StreakRule = "trailing"
	// PerRoundRule walks back from the latest round comparing every score
	// with that round's own average of positive scores.
	PerRoundRule StreakRule = "per-round"

	DefaultStreakRule = TrailingAverageRule
)

const (
	// StreakWindow is the number of rounds inspected by TrailingAverageRule.
	StreakWindow = 3
	// MinStreakLength is the shortest run reported by PerRoundRule.
	MinStreakLength = 3
)

// ParseStreakRule maps a configuration value to a rule.
func ParseStreakRule(s string) (StreakRule, error) {
	switch StreakRule(strings.ToLower(strings.TrimSpace(s))) {
	case "", TrailingAverageRule:
		return TrailingAverageRule, nil
	case PerRoundRule:
		return PerRoundRule, nil
	}
	return "", fmt.Errorf("unknown streak rule %q", s)
}

// Streaks classifies every team. Inactive teams are reported as such and are
// left out of both the averages and the hot/cold evaluation.
func Streaks(teams []Team, rounds []Round, rule StreakRule) map[TeamID]Streak {
	ordered := Chronological(rounds)
	inactive := InactiveTeams(teams, ordered, InactivityWindow)

	out := make(map[TeamID]Streak, len(teams))
	for _, team := range teams {
		if inactive.Has(team.ID) {
			run := zeroRun(ordered, team.ID)
			out[team.ID] = Streak{
				Kind:   StreakInactive,
				Length: run,
				Reason: fmt.Sprintf("no points in the last %d matchdays", run),
			}
			continue
		}
		out[team.ID] = Streak{Kind: StreakNone}
	}

	switch rule {
	case PerRoundRule:
		perRoundStreaks(teams, ordered, inactive, out)
	default:
		trailingStreaks(teams, ordered, inactive, out)
	}
	return out
}

func trailingStreaks(teams []Team, ordered []Round, inactive TeamSet, out map[TeamID]Streak) {
	if len(ordered) < StreakWindow {
		return
	}
	window := lastRounds(ordered, StreakWindow)

	var total, entries int
	for _, r := range window {
		for _, team := range teams {
			e := r.Entry(team.ID)
			if !e.Played || inactive.Has(team.ID) {
				continue
			}
			total += e.Points
			entries++
		}
	}
	var threshold float64
	if entries > 0 {
		threshold = float64(total) / float64(entries)
	}

	for _, team := range teams {
		if inactive.Has(team.ID) {
			continue
		}
		above, below := 0, 0
		for _, r := range window {
			e := r.Entry(team.ID)
			if !e.Played {
				break
			}
			switch p := float64(e.Points); {
			case p > threshold:
				above++
			case p < threshold:
				below++
			}
		}
		switch {
		case above == StreakWindow:
			out[team.ID] = Streak{
				Kind:   StreakHot,
				Length: StreakWindow,
				Reason: fmt.Sprintf("above the league average of %.2f in each of the last %d matchdays", threshold, StreakWindow),
			}
		case below == StreakWindow:
			out[team.ID] = Streak{
				Kind:   StreakCold,
				Length: StreakWindow,
				Reason: fmt.Sprintf("below the league average of %.2f in each of the last %d matchdays", threshold, StreakWindow),
			}
		}
	}
}

func perRoundStreaks(teams []Team, ordered []Round, inactive TeamSet, out map[TeamID]Streak) {
	averages := make([]float64, len(ordered))
	for i, r := range ordered {
		var total, entries int
		for _, team := range teams {
			e := r.Entry(team.ID)
			if e.State() != Scored || inactive.Has(team.ID) {
				continue
			}
			total += e.Points
			entries++
		}
		if entries > 0 {
			averages[i] = float64(total) / float64(entries)
		}
	}

	for _, team := range teams {
		if inactive.Has(team.ID) {
			continue
		}
		kind, length := StreakNone, 0
		for i := len(ordered) - 1; i >= 0; i-- {
			e := ordered[i].Entry(team.ID)
			if !e.Played {
				break
			}
			var k StreakKind
			switch p := float64(e.Points); {
			case p > averages[i]:
				k = StreakHot
			case p < averages[i]:
				k = StreakCold
			}
			if k == "" || (kind != StreakNone && k != kind) {
				break
			}
			kind = k
			length++
		}
		if length < MinStreakLength {
			continue
		}
		direction := "above"
		if kind == StreakCold {
			direction = "below"
		}
		out[team.ID] = Streak{
			Kind:   kind,
			Length: length,
			Reason: fmt.Sprintf("%s the matchday average in each of the last %d matchdays", direction, length),
		}
	}
}
