package main

import (
	"context"
	"math/rand/v2"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/charmbracelet/log"
	"github.com/mauv0809/fantasy-duels/internal/config"
	"github.com/mauv0809/fantasy-duels/internal/database"
	server "github.com/mauv0809/fantasy-duels/internal/http"
	"github.com/mauv0809/fantasy-duels/internal/matchmaking"
	"github.com/mauv0809/fantasy-duels/internal/metrics"
	"github.com/mauv0809/fantasy-duels/internal/notifier/slack"
	"github.com/mauv0809/fantasy-duels/internal/pairing"
	"github.com/mauv0809/fantasy-duels/internal/processor"
	"github.com/mauv0809/fantasy-duels/internal/pubsub"
	"github.com/mauv0809/fantasy-duels/internal/store"
)

func newPubSub(ctx context.Context, projectID string) pubsub.PubSubClient {
	if projectID == "" {
		log.Warn("GCP_PROJECT is not set, events will not be published")
		return pubsub.NewNoop()
	}
	client, err := pubsub.New(ctx, projectID)
	if err != nil {
		log.Fatalf("Failed to initialize pubsub: %s", err)
	}
	return client
}

func main() {
	// Start profiling timer
	startTime := time.Now()
	log.SetFormatter(log.JSONFormatter)
	cfg := config.Load()
	db, err := database.InitDB(cfg.DBName, cfg.Turso.PrimaryURL, cfg.Turso.AuthToken)
	if err != nil {
		log.Fatalf("Failed to initialize database: %s", err)
	}
	log.Info("Database initialization time recorded", "duration_ms", time.Since(startTime).Milliseconds())
	defer func() {
		log.Info("Closing database connection")
		db.Close()
	}()

	leagueStore := store.New(db)
	counters := metrics.New(db)
	metricsSvc := metrics.NewService()
	metricsHandler := metrics.NewMetricsHandler()
	notifier := slack.NewNotifier(cfg.Slack.Token, cfg.Slack.ChannelID, metricsSvc)
	pubsubClient := newPubSub(context.Background(), cfg.ProjectID)
	defer pubsubClient.Close()

	seed := uint64(time.Now().UnixNano())
	engine := pairing.New(rand.New(rand.NewPCG(seed, seed>>1)))
	generator := matchmaking.New(leagueStore, engine, notifier, metricsSvc, counters, pubsubClient)
	proc := processor.New(leagueStore, notifier, metricsSvc, counters, pubsubClient)

	s := server.NewServer(
		leagueStore,
		metricsSvc,
		metricsHandler,
		counters,
		cfg,
		notifier,
		proc,
		generator,
		pubsubClient,
	)

	// --- Record startup time ---
	startupDuration := time.Since(startTime)
	metricsSvc.SetStartupTime(startupDuration.Seconds())
	log.Info("Startup time recorded", "duration_ms", startupDuration.Milliseconds())

	// --- Graceful shutdown setup ---
	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: s,
	}

	// Channel to listen for errors coming from the server
	serverErrors := make(chan error, 1)

	go func() {
		log.Info("Server started", "port", cfg.Port)
		serverErrors <- srv.ListenAndServe()
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		if err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server error: %v", err)
		}
	case sig := <-shutdown:
		log.Info("Shutdown signal received", "signal", sig)

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if err := srv.Shutdown(ctx); err != nil {
			log.Error("Server shutdown failed", "error", err)
		} else {
			log.Info("Server gracefully stopped")
		}
	}

	log.Info("Server process shutting down")
}
