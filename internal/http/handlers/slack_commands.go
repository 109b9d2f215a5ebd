package handlers

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/mauv0809/fantasy-duels/internal/league"
	"github.com/mauv0809/fantasy-duels/internal/notifier"
	"github.com/slack-go/slack"
)

// respondWithSlackMsg is a helper to format and write a Slack message as an HTTP response.
func respondWithSlackMsg(w http.ResponseWriter, msg slack.Message) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(msg); err != nil {
		log.Error("Failed to encode slack message to JSON", "error", err)
	}
}

func respondFormatted(w http.ResponseWriter, msg any, err error) {
	if err != nil {
		http.Error(w, "Failed to format response", http.StatusInternalServerError)
		log.Error("Failed to format slack response", "error", err)
		return
	}
	slackMsg, ok := msg.(slack.Message)
	if !ok {
		http.Error(w, "Invalid message format for Slack", http.StatusInternalServerError)
		log.Error("Failed to cast message to slack.Message")
		return
	}
	respondWithSlackMsg(w, slackMsg)
}

func StandingsCommandHandler(s Snapshotter, notifier notifier.Notifier) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		snap, ok := loadSnapshot(w, s)
		if !ok {
			return
		}
		msg, err := notifier.FormatStandingsResponse(league.Standings(snap.Teams, snap.Rounds))
		respondFormatted(w, msg, err)
	}
}

// DuelsCommandHandler answers /duels. The text selects the view: empty for the
// latest gameweek, "table" for the duel league, otherwise a gameweek like "5" or "J5".
func DuelsCommandHandler(s Snapshotter, notifier notifier.Notifier) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		cmd, err := slack.SlashCommandParse(r)
		if err != nil {
			http.Error(w, "Error parsing form", http.StatusBadRequest)
			return
		}
		text := strings.ToLower(strings.TrimSpace(cmd.Text))
		log.Info("Received duels command", "text", text, "user", cmd.UserName)

		snap, ok := loadSnapshot(w, s)
		if !ok {
			return
		}
		if text == "table" {
			msg, err := notifier.FormatDuelStandingsResponse(league.DuelStandings(snap.Teams, snap.Rounds, snap.Matchups))
			respondFormatted(w, msg, err)
			return
		}

		gameweek := league.LatestGameweek(snap.Matchups)
		if text != "" {
			gameweek = league.MatchdayNumber(text)
			if gameweek <= 0 {
				http.Error(w, "Usage: /duels [gameweek|table]", http.StatusBadRequest)
				return
			}
		}
		msg, err := notifier.FormatDuelsResponse(gameweek, league.DuelCards(snap.Teams, snap.Rounds, snap.Matchups, gameweek))
		respondFormatted(w, msg, err)
	}
}
