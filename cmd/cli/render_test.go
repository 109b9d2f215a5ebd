package main

import (
	"bytes"
	"testing"

	"github.com/mauv0809/fantasy-duels/internal/http/handlers"
	"github.com/mauv0809/fantasy-duels/internal/league"
	"github.com/stretchr/testify/assert"
)

func TestPrintStandings(t *testing.T) {
	var buf bytes.Buffer
	printStandings(&buf, []league.Standing{
		{Team: league.Team{ID: 4, Name: "Team Delta"}, TotalPoints: 205, RoundsPlayed: 3, Average: 68.33},
		{Team: league.Team{ID: 3, Name: "Team Gamma"}, RoundsPlayed: 3, IsInactive: true},
	})

	out := buf.String()
	assert.Contains(t, out, "Team Delta")
	assert.Contains(t, out, "205")
	assert.Contains(t, out, "68.33")
	assert.Contains(t, out, "inactive")
}

func TestPrintDuels(t *testing.T) {
	winner := league.TeamID(2)
	var buf bytes.Buffer
	printDuels(&buf, 4, []league.DuelCard{
		{
			Home:     league.DuelSide{TeamID: 1, Name: "Team Alpha", Points: 40},
			Away:     &league.DuelSide{TeamID: 2, Name: "Team Beta", Points: 55},
			Outcome:  league.OutcomeWin,
			Margin:   15,
			WinnerID: &winner,
		},
		{Home: league.DuelSide{TeamID: 3, Name: "Team Gamma"}, Outcome: league.OutcomeBye},
	})

	out := buf.String()
	assert.Contains(t, out, "Gameweek J4")
	assert.Contains(t, out, "Team Beta by 15")
	assert.Contains(t, out, "bye")
}

func TestPrintDuelStandings(t *testing.T) {
	var buf bytes.Buffer
	printDuelStandings(&buf, []league.DuelRecord{
		{Team: league.Team{Name: "Team Delta"}, Played: 3, Wins: 2, Losses: 1, Points: 6, LostLast: true},
	})
	assert.Contains(t, buf.String(), "Team Delta")
	assert.Contains(t, buf.String(), "lost last")
}

func TestPrintStreaksAndProjection(t *testing.T) {
	var buf bytes.Buffer
	printStreaks(&buf, league.PerRoundRule, []handlers.TeamStreak{
		{TeamID: 4, Name: "Team Delta", Streak: league.Streak{Kind: league.StreakHot, Length: 3}},
	})
	assert.Contains(t, buf.String(), "per-round")
	assert.Contains(t, buf.String(), "hot")

	buf.Reset()
	printProjection(&buf, []league.Team{{ID: 4, Name: "Team Delta"}}, []league.ProjectionPoint{
		{Label: "P1", Totals: map[league.TeamID]float64{4: 273.33}, Projected: true},
	})
	assert.Contains(t, buf.String(), "Team Delta")
	assert.Contains(t, buf.String(), "273.33")
}
