package league

import (
	"slices"
	"sort"
)

// Points awarded in the duel league.
const (
	DuelWinPoints  = 3
	DuelDrawPoints = 1
)

// ResolveDuel determines the result of a matchup from the round whose number
// equals its gameweek. A recorded winner takes precedence; otherwise the
// higher score wins, a missing score counting as 0. Without a scored round
// the duel stays pending.
func ResolveDuel(m Matchup, rounds []Round) DuelResult {
	return resolve(m, Chronological(rounds))
}

func resolve(m Matchup, ordered []Round) DuelResult {
	res := DuelResult{Matchup: m, Outcome: OutcomePending}
	r, scored := roundForGameweek(ordered, m.Gameweek)
	if scored {
		res.Points1 = r.Entry(m.Player1).Points
	}
	if m.IsBye() {
		res.Outcome = OutcomeBye
		return res
	}
	if !scored {
		return res
	}

	p2 := *m.Player2
	res.Points2 = r.Entry(p2).Points
	res.Margin = res.Points1 - res.Points2
	if res.Margin < 0 {
		res.Margin = -res.Margin
	}

	switch {
	case m.Winner != nil && (*m.Winner == m.Player1 || *m.Winner == p2):
		w := *m.Winner
		res.WinnerID = &w
		res.Outcome = OutcomeWin
	case res.Points1 > res.Points2:
		w := m.Player1
		res.WinnerID = &w
		res.Outcome = OutcomeWin
	case res.Points2 > res.Points1:
		w := p2
		res.WinnerID = &w
		res.Outcome = OutcomeWin
	default:
		res.Outcome = OutcomeDraw
	}
	return res
}

// DuelStandings builds the duel league: 3 points per win, 1 per draw.
// Only duels whose round has been scored count; byes never count.
// LostLast is set when the team lost its most recent decided duel.
func DuelStandings(teams []Team, rounds []Round, matchups []Matchup) []DuelRecord {
	ordered := Chronological(rounds)
	records := make(map[TeamID]*DuelRecord, len(teams))
	for _, t := range teams {
		records[t.ID] = &DuelRecord{Team: t}
	}

	sorted := slices.Clone(matchups)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Gameweek < sorted[j].Gameweek
	})

	for _, m := range sorted {
		res := resolve(m, ordered)
		if !res.Played() {
			continue
		}
		for _, id := range []TeamID{m.Player1, *m.Player2} {
			rec, ok := records[id]
			if !ok {
				continue
			}
			rec.Played++
			switch {
			case res.Outcome == OutcomeDraw:
				rec.Draws++
				rec.Points += DuelDrawPoints
			case *res.WinnerID == id:
				rec.Wins++
				rec.Points += DuelWinPoints
				rec.LostLast = false
			default:
				rec.Losses++
				rec.LostLast = true
			}
		}
	}

	rows := make([]DuelRecord, 0, len(teams))
	for _, t := range teams {
		rows = append(rows, *records[t.ID])
	}
	sort.SliceStable(rows, func(i, j int) bool {
		if rows[i].Points != rows[j].Points {
			return rows[i].Points > rows[j].Points
		}
		return rows[i].Wins > rows[j].Wins
	})
	return rows
}

// DuelSide is one participant of a duel card.
type DuelSide struct {
	TeamID TeamID `json:"team_id"`
	Name   string `json:"name"`
	Color  string `json:"color"`
	Points int    `json:"points"`
}

// DuelCard is the display view of a matchup.
type DuelCard struct {
	ID       string      `json:"id,omitempty"`
	Gameweek int         `json:"gameweek"`
	Home     DuelSide    `json:"home"`
	Away     *DuelSide   `json:"away,omitempty"`
	Outcome  DuelOutcome `json:"outcome"`
	Margin   int         `json:"margin"`
	WinnerID *TeamID     `json:"winner_id,omitempty"`
}

// DuelCards returns the cards of one gameweek with their live scores.
func DuelCards(teams []Team, rounds []Round, matchups []Matchup, gameweek int) []DuelCard {
	ordered := Chronological(rounds)
	byID := make(map[TeamID]Team, len(teams))
	for _, t := range teams {
		byID[t.ID] = t
	}
	side := func(id TeamID, points int) DuelSide {
		t, ok := byID[id]
		if !ok {
			return DuelSide{TeamID: id, Name: UnknownTeamName, Points: points}
		}
		return DuelSide{TeamID: id, Name: t.Name, Color: t.Color, Points: points}
	}

	var cards []DuelCard
	for _, m := range matchups {
		if m.Gameweek != gameweek {
			continue
		}
		res := resolve(m, ordered)
		card := DuelCard{
			ID:       m.ID,
			Gameweek: m.Gameweek,
			Home:     side(m.Player1, res.Points1),
			Outcome:  res.Outcome,
			Margin:   res.Margin,
			WinnerID: res.WinnerID,
		}
		if !m.IsBye() {
			away := side(*m.Player2, res.Points2)
			card.Away = &away
		}
		cards = append(cards, card)
	}
	return cards
}

// Gameweeks returns the distinct gameweeks with matchups, most recent first.
func Gameweeks(matchups []Matchup) []int {
	seen := make(map[int]struct{})
	var out []int
	for _, m := range matchups {
		if _, ok := seen[m.Gameweek]; ok {
			continue
		}
		seen[m.Gameweek] = struct{}{}
		out = append(out, m.Gameweek)
	}
	sort.Sort(sort.Reverse(sort.IntSlice(out)))
	return out
}

// LatestGameweek returns the highest gameweek with matchups, or 0.
func LatestGameweek(matchups []Matchup) int {
	latest := 0
	for _, m := range matchups {
		latest = max(latest, m.Gameweek)
	}
	return latest
}
