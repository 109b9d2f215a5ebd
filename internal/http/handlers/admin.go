package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/mauv0809/fantasy-duels/internal/league"
	"github.com/mauv0809/fantasy-duels/internal/matchmaking"
	"github.com/mauv0809/fantasy-duels/internal/pairing"
	"github.com/mauv0809/fantasy-duels/internal/processor"
	"github.com/mauv0809/fantasy-duels/internal/store"
)

// ScoreRecorder stores score entries.
type ScoreRecorder interface {
	RecordScores(ctx context.Context, entries []league.ScoreEntry, dryRun bool) ([]string, error)
}

type addTeamRequest struct {
	Name  string `json:"name"`
	Owner string `json:"owner"`
	Color string `json:"color"`
}

func AddTeamHandler(store store.LeagueStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !requireMethod(w, r, http.MethodPost) {
			return
		}
		var req addTeamRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "Invalid JSON", http.StatusBadRequest)
			return
		}
		if strings.TrimSpace(req.Name) == "" {
			http.Error(w, "name is required", http.StatusBadRequest)
			return
		}

		team, err := store.AddTeam(req.Name, req.Owner, req.Color)
		if err != nil {
			http.Error(w, "Failed to add team", http.StatusInternalServerError)
			log.Error("Failed to add team", "error", err, "name", req.Name)
			return
		}
		log.Info("Added team", "id", team.ID, "name", team.Name)
		writeJSON(w, http.StatusCreated, team)
	}
}

type scoresRequest struct {
	Matchday string `json:"matchday"`
	Scores   []struct {
		TeamID league.TeamID `json:"team_id"`
		Points int           `json:"points"`
	} `json:"scores"`
}

// RecordScoresHandler inserts one matchday of scores.
func RecordScoresHandler(recorder ScoreRecorder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !requireMethod(w, r, http.MethodPost) {
			return
		}
		var req scoresRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "Invalid JSON", http.StatusBadRequest)
			return
		}
		if strings.TrimSpace(req.Matchday) == "" || len(req.Scores) == 0 {
			http.Error(w, "matchday and scores are required", http.StatusBadRequest)
			return
		}

		entries := make([]league.ScoreEntry, 0, len(req.Scores))
		for _, s := range req.Scores {
			entries = append(entries, league.ScoreEntry{Matchday: req.Matchday, TeamID: s.TeamID, Points: s.Points})
		}
		isDryRun := IsDryRunFromContext(r)
		matchdays, err := recorder.RecordScores(r.Context(), entries, isDryRun)
		if errors.Is(err, processor.ErrInvalidScore) || errors.Is(err, store.ErrNegativeScore) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		if err != nil {
			http.Error(w, "Failed to record scores", http.StatusInternalServerError)
			log.Error("Failed to record scores", "error", err, "matchday", req.Matchday)
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{
			"matchdays": matchdays,
			"entries":   len(entries),
			"dry_run":   isDryRun,
		})
	}
}

// GenerateDuelsHandler replaces the duels of ?gameweek=.
func GenerateDuelsHandler(generator matchmaking.DuelGenerator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !requireMethod(w, r, http.MethodPost) {
			return
		}
		gameweek, err := intParam(r, "gameweek", 0)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		res, err := generator.GenerateDuels(r.Context(), gameweek, IsDryRunFromContext(r))
		switch {
		case errors.Is(err, pairing.ErrInvalidGameweek), errors.Is(err, pairing.ErrDuplicateCandidate):
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		case err != nil:
			http.Error(w, "Failed to generate duels: "+err.Error(), http.StatusInternalServerError)
			log.Error("Failed to generate duels", "error", err, "gameweek", gameweek)
			return
		}
		writeJSON(w, http.StatusOK, res)
	}
}

type winnerRequest struct {
	MatchupID string         `json:"matchup_id"`
	WinnerID  *league.TeamID `json:"winner_id"`
}

// SetWinnerHandler records or clears the winner of a duel.
func SetWinnerHandler(s store.LeagueStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !requireMethod(w, r, http.MethodPost) {
			return
		}
		var req winnerRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "Invalid JSON", http.StatusBadRequest)
			return
		}
		if req.MatchupID == "" {
			http.Error(w, "matchup_id is required", http.StatusBadRequest)
			return
		}
		if IsDryRunFromContext(r) {
			log.Info("[Dry Run] Would set duel winner", "matchup", req.MatchupID, "winner", req.WinnerID)
			w.WriteHeader(http.StatusNoContent)
			return
		}

		err := s.SetMatchupWinner(req.MatchupID, req.WinnerID)
		switch {
		case errors.Is(err, store.ErrMatchupNotFound):
			http.Error(w, err.Error(), http.StatusNotFound)
			return
		case errors.Is(err, store.ErrNotParticipant):
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		case err != nil:
			http.Error(w, "Failed to set winner", http.StatusInternalServerError)
			log.Error("Failed to set duel winner", "error", err, "matchup", req.MatchupID)
			return
		}
		log.Info("Set duel winner", "matchup", req.MatchupID, "winner", req.WinnerID)
		w.WriteHeader(http.StatusNoContent)
	}
}
