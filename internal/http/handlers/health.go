package handlers

import (
	"fmt"
	"net/http"

	"github.com/charmbracelet/log"
	"github.com/mauv0809/fantasy-duels/internal/store"
)

func HealthCheckHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log.Debug("Received health check request")
		w.WriteHeader(http.StatusOK)
		fmt.Fprintf(w, "OK!")
	}
}

func ClearStoreHandler(store store.LeagueStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !requireMethod(w, r, http.MethodPost) {
			return
		}
		if IsDryRunFromContext(r) {
			log.Info("[Dry Run] Would clear the league")
			fmt.Fprint(w, "Dry run: store not cleared")
			return
		}
		log.Info("Received request to clear entire store")
		if err := store.Clear(); err != nil {
			http.Error(w, "Failed to clear store", http.StatusInternalServerError)
			log.Error("Failed to clear store", "error", err)
			return
		}
		w.WriteHeader(http.StatusOK)
		fmt.Fprint(w, "Store cleared!")
		log.Info("Store cleared successfully")
	}
}
