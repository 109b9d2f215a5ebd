package handlers

import (
	"errors"
	"net/http"

	"github.com/charmbracelet/log"
	"github.com/mauv0809/fantasy-duels/internal/league"
	"github.com/mauv0809/fantasy-duels/internal/metrics"
)

func ListTeamsHandler(s Snapshotter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		snap, ok := loadSnapshot(w, s)
		if !ok {
			return
		}
		writeJSON(w, http.StatusOK, snap.Teams)
	}
}

func ListMatchdaysHandler(s Snapshotter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		snap, ok := loadSnapshot(w, s)
		if !ok {
			return
		}
		writeJSON(w, http.StatusOK, league.SortedMatchdays(snap.Rounds))
	}
}

func StandingsHandler(s Snapshotter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		snap, ok := loadSnapshot(w, s)
		if !ok {
			return
		}
		writeJSON(w, http.StatusOK, league.Standings(snap.Teams, snap.Rounds))
	}
}

func PositionalStandingsHandler(s Snapshotter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		snap, ok := loadSnapshot(w, s)
		if !ok {
			return
		}
		writeJSON(w, http.StatusOK, league.PositionalStandings(snap.Teams, snap.Rounds))
	}
}

func CumulativeHandler(s Snapshotter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		snap, ok := loadSnapshot(w, s)
		if !ok {
			return
		}
		writeJSON(w, http.StatusOK, league.Cumulative(snap.Teams, snap.Rounds))
	}
}

func RankHistoryHandler(s Snapshotter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		snap, ok := loadSnapshot(w, s)
		if !ok {
			return
		}
		writeJSON(w, http.StatusOK, league.RankHistory(snap.Teams, snap.Rounds))
	}
}

// TeamStreak is one row of the streaks response.
type TeamStreak struct {
	TeamID league.TeamID `json:"team_id"`
	Name   string        `json:"name"`
	league.Streak
}

// StreaksHandler classifies form with the configured rule unless ?rule= picks the other one.
func StreaksHandler(s Snapshotter, defaultRule league.StreakRule) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rule := defaultRule
		if raw := r.URL.Query().Get("rule"); raw != "" {
			parsed, err := league.ParseStreakRule(raw)
			if err != nil {
				http.Error(w, err.Error(), http.StatusBadRequest)
				return
			}
			rule = parsed
		}
		snap, ok := loadSnapshot(w, s)
		if !ok {
			return
		}

		streaks := league.Streaks(snap.Teams, snap.Rounds, rule)
		rows := make([]TeamStreak, 0, len(snap.Teams))
		for _, t := range snap.Teams {
			rows = append(rows, TeamStreak{TeamID: t.ID, Name: t.Name, Streak: streaks[t.ID]})
		}
		writeJSON(w, http.StatusOK, map[string]any{"rule": rule, "streaks": rows})
	}
}

func ProjectionHandler(s Snapshotter, defaultHorizon int) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		horizon, err := intParam(r, "horizon", defaultHorizon)
		if err != nil || horizon <= 0 {
			http.Error(w, "horizon must be a positive integer", http.StatusBadRequest)
			return
		}
		snap, ok := loadSnapshot(w, s)
		if !ok {
			return
		}
		writeJSON(w, http.StatusOK, league.Project(snap.Teams, snap.Rounds, horizon))
	}
}

func SummaryHandler(s Snapshotter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		snap, ok := loadSnapshot(w, s)
		if !ok {
			return
		}
		writeJSON(w, http.StatusOK, league.Summarize(snap.Teams, snap.Rounds))
	}
}

func PerformanceHandler(s Snapshotter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := intParam(r, "team", 0)
		if err != nil || id <= 0 {
			http.Error(w, "team is required", http.StatusBadRequest)
			return
		}
		snap, ok := loadSnapshot(w, s)
		if !ok {
			return
		}
		team, found := findTeam(snap.Teams, league.TeamID(id))
		if !found {
			http.Error(w, "Team not found", http.StatusNotFound)
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{
			"team":   team,
			"rounds": league.Performance(team.ID, snap.Rounds),
		})
	}
}

func ChaseHandler(s Snapshotter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		me, errMe := intParam(r, "me", 0)
		target, errTarget := intParam(r, "target", 0)
		matchdays, errMatchdays := intParam(r, "matchdays", 0)
		if err := errors.Join(errMe, errTarget, errMatchdays); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		snap, ok := loadSnapshot(w, s)
		if !ok {
			return
		}

		res, err := league.Chase(league.Standings(snap.Teams, snap.Rounds), league.TeamID(me), league.TeamID(target), matchdays)
		switch {
		case errors.Is(err, league.ErrUnknownTeam):
			http.Error(w, err.Error(), http.StatusNotFound)
			return
		case err != nil:
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		writeJSON(w, http.StatusOK, res)
	}
}

// DuelsResponse is one gameweek of duels plus the list of generated gameweeks.
type DuelsResponse struct {
	Gameweek  int               `json:"gameweek"`
	Gameweeks []int             `json:"gameweeks"`
	Duels     []league.DuelCard `json:"duels"`
}

// DuelsHandler shows the duels of ?gameweek=, defaulting to the latest generated one.
func DuelsHandler(s Snapshotter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		snap, ok := loadSnapshot(w, s)
		if !ok {
			return
		}
		gameweek, err := intParam(r, "gameweek", league.LatestGameweek(snap.Matchups))
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		writeJSON(w, http.StatusOK, DuelsResponse{
			Gameweek:  gameweek,
			Gameweeks: league.Gameweeks(snap.Matchups),
			Duels:     league.DuelCards(snap.Teams, snap.Rounds, snap.Matchups, gameweek),
		})
	}
}

func DuelStandingsHandler(s Snapshotter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		snap, ok := loadSnapshot(w, s)
		if !ok {
			return
		}
		writeJSON(w, http.StatusOK, league.DuelStandings(snap.Teams, snap.Rounds, snap.Matchups))
	}
}

// StatsHandler exposes the persisted operation counters.
func StatsHandler(counters metrics.MetricsStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		all, err := counters.GetAll()
		if err != nil {
			http.Error(w, "Failed to get stats", http.StatusInternalServerError)
			log.Error("Failed to get counters", "error", err)
			return
		}
		writeJSON(w, http.StatusOK, all)
	}
}

func findTeam(teams []league.Team, id league.TeamID) (league.Team, bool) {
	for _, t := range teams {
		if t.ID == id {
			return t, true
		}
	}
	return league.Team{}, false
}
