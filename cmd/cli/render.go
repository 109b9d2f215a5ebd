package main

import (
	"fmt"
	"io"
	"strconv"

	"github.com/mauv0809/fantasy-duels/internal/http/handlers"
	"github.com/mauv0809/fantasy-duels/internal/league"
	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
)

func newTable(w io.Writer) *tablewriter.Table {
	return tablewriter.NewTable(w, tablewriter.WithConfig(tablewriter.Config{
		Row: tw.CellConfig{
			Alignment: tw.CellAlignment{Global: tw.AlignRight},
		},
		Header: tw.CellConfig{
			Alignment: tw.CellAlignment{Global: tw.AlignCenter},
		},
	}))
}

func printStandings(w io.Writer, rows []league.Standing) {
	table := newTable(w)
	table.Header("#", "TEAM", "PTS", "PLAYED", "AVG", "")
	for i, r := range rows {
		status := ""
		if r.IsInactive {
			status = "inactive"
		}
		table.Append(
			strconv.Itoa(i+1),
			r.Team.Name,
			strconv.Itoa(r.TotalPoints),
			strconv.Itoa(r.RoundsPlayed),
			fmt.Sprintf("%.2f", r.Average),
			status,
		)
	}
	table.Render()
}

func printDuels(w io.Writer, gameweek int, cards []league.DuelCard) {
	fmt.Fprintf(w, "\nGameweek J%d\n\n", gameweek)
	table := newTable(w)
	table.Header("HOME", "PTS", "PTS", "AWAY", "RESULT")
	for _, c := range cards {
		if c.Away == nil {
			table.Append(c.Home.Name, strconv.Itoa(c.Home.Points), "", "-", "bye")
			continue
		}
		result := string(c.Outcome)
		if c.Outcome == league.OutcomeWin && c.WinnerID != nil {
			winner := c.Home.Name
			if *c.WinnerID == c.Away.TeamID {
				winner = c.Away.Name
			}
			result = fmt.Sprintf("%s by %d", winner, c.Margin)
		}
		table.Append(c.Home.Name, strconv.Itoa(c.Home.Points), strconv.Itoa(c.Away.Points), c.Away.Name, result)
	}
	table.Render()
}

func printDuelStandings(w io.Writer, rows []league.DuelRecord) {
	table := newTable(w)
	table.Header("#", "TEAM", "PTS", "P", "W", "D", "L", "")
	for i, r := range rows {
		form := ""
		if r.LostLast {
			form = "lost last"
		}
		table.Append(
			strconv.Itoa(i+1),
			r.Team.Name,
			strconv.Itoa(r.Points),
			strconv.Itoa(r.Played),
			strconv.Itoa(r.Wins),
			strconv.Itoa(r.Draws),
			strconv.Itoa(r.Losses),
			form,
		)
	}
	table.Render()
}

func printStreaks(w io.Writer, rule league.StreakRule, rows []handlers.TeamStreak) {
	fmt.Fprintf(w, "\nRule: %s\n\n", rule)
	table := newTable(w)
	table.Header("TEAM", "FORM", "LENGTH", "REASON")
	for _, r := range rows {
		table.Append(r.Name, string(r.Kind), strconv.Itoa(r.Length), r.Reason)
	}
	table.Render()
}

func printProjection(w io.Writer, teams []league.Team, points []league.ProjectionPoint) {
	header := []any{"TEAM"}
	for _, p := range points {
		header = append(header, p.Label)
	}
	table := newTable(w)
	table.Header(header...)
	for _, t := range teams {
		row := []any{t.Name}
		for _, p := range points {
			row = append(row, fmt.Sprintf("%.2f", p.Totals[t.ID]))
		}
		table.Append(row...)
	}
	table.Render()
}
