package league

// InactivityWindow is the number of trailing rounds inspected for inactivity.
const InactivityWindow = 3

// InactiveTeams returns the teams with an explicit zero in each of the last
// window rounds. A missing entry in any of those rounds keeps the team active.
// With fewer than window rounds of history the set is empty.
func InactiveTeams(teams []Team, rounds []Round, window int) TeamSet {
	inactive := make(TeamSet)
	if window <= 0 {
		return inactive
	}
	ordered := Chronological(rounds)
	if len(ordered) < window {
		return inactive
	}
	trailing := lastRounds(ordered, window)

	for _, team := range teams {
		allZero := true
		for _, r := range trailing {
			if r.Entry(team.ID).State() != ZeroEntry {
				allZero = false
				break
			}
		}
		if allZero {
			inactive[team.ID] = struct{}{}
		}
	}
	return inactive
}

// ActiveTeams returns the teams not classified inactive, in input order.
func ActiveTeams(teams []Team, rounds []Round, window int) []Team {
	inactive := InactiveTeams(teams, rounds, window)
	active := make([]Team, 0, len(teams))
	for _, t := range teams {
		if !inactive.Has(t.ID) {
			active = append(active, t)
		}
	}
	return active
}

// zeroRun counts the consecutive explicit zeros ending at the latest round.
func zeroRun(ordered []Round, id TeamID) int {
	n := 0
	for i := len(ordered) - 1; i >= 0; i-- {
		if ordered[i].Entry(id).State() != ZeroEntry {
			break
		}
		n++
	}
	return n
}
