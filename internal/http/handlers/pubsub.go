package handlers

import (
	"encoding/base64"
	"encoding/json"
	"io"
	"net/http"

	"github.com/charmbracelet/log"
	"github.com/mauv0809/fantasy-duels/internal/processor"
	"github.com/mauv0809/fantasy-duels/internal/pubsub"
)

// RoundProcessor reacts to a scored round.
type RoundProcessor interface {
	ProcessRoundScored(event pubsub.RoundScoredEvent) (*processor.RoundReport, error)
}

// RoundScoredHandler receives Pub/Sub push deliveries of round-scored events.
func RoundScoredHandler(processor RoundProcessor, pubsubClient pubsub.PubSubClient) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		bodyBytes, err := io.ReadAll(r.Body)
		if err != nil {
			log.Error("Failed to read request body", "error", err)
			http.Error(w, "Failed to read request body", http.StatusInternalServerError)
			return
		}
		log.Debug("Received round scored message", "body", string(bodyBytes))

		var pubsubMsg struct {
			Subscription string `json:"subscription"`
			Message      struct {
				Data string `json:"data"`
			} `json:"message"`
		}

		if err := json.Unmarshal(bodyBytes, &pubsubMsg); err != nil {
			log.Error("Failed to unmarshal wrapper JSON", "error", err)
			http.Error(w, "Invalid JSON", http.StatusBadRequest)
			return
		}

		rawData, err := base64.StdEncoding.DecodeString(pubsubMsg.Message.Data)
		if err != nil {
			log.Error("Failed to decode base64 data", "error", err)
			http.Error(w, "Invalid base64 data", http.StatusBadRequest)
			return
		}
		event := pubsub.RoundScoredEvent{}
		if err := pubsubClient.ProcessMessage(rawData, &event); err != nil {
			log.Error("Failed to decode round scored event", "error", err)
			http.Error(w, "Invalid message payload", http.StatusBadRequest)
			return
		}
		if IsDryRunFromContext(r) {
			event.DryRun = true
		}

		if _, err := processor.ProcessRoundScored(event); err != nil {
			log.Error("Failed to process scored round", "error", err, "matchday", event.Matchday)
			http.Error(w, "Failed to process scored round", http.StatusInternalServerError)
			return
		}
		w.Write([]byte("OK"))
	}
}
