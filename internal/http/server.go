package http

import (
	"net/http"

	"github.com/mauv0809/fantasy-duels/internal/config"
	"github.com/mauv0809/fantasy-duels/internal/http/handlers"
	"github.com/mauv0809/fantasy-duels/internal/matchmaking"
	"github.com/mauv0809/fantasy-duels/internal/metrics"
	"github.com/mauv0809/fantasy-duels/internal/notifier"
	"github.com/mauv0809/fantasy-duels/internal/processor"
	"github.com/mauv0809/fantasy-duels/internal/pubsub"
	"github.com/mauv0809/fantasy-duels/internal/store"
)

func NewServer(store store.LeagueStore, metricsSvc metrics.Metrics, metricsHandler http.Handler, counters metrics.MetricsStore, cfg config.Config, notifier notifier.Notifier, processor *processor.Processor, generator matchmaking.DuelGenerator, pubsub pubsub.PubSubClient) *Server {
	server := &Server{
		Store:          store,
		Metrics:        metricsSvc,
		MetricsHandler: metricsHandler,
		Counters:       counters,
		Cfg:            cfg,
		Notifier:       notifier,
		Processor:      processor,
		Generator:      generator,
		Router:         http.NewServeMux(),
		pubsub:         pubsub,
	}

	server.routes()
	return server
}

func (s *Server) routes() {
	// All handlers are wrapped with middleware using the Chain helper.
	// e.g. Chain(s.MyHandler(), paramsMiddleware, authMiddleware)
	admin := adminMiddleware(s.Cfg.AdminToken)
	slackAuth := slackVerificationMiddleware(s.Cfg.Slack.SigningSecret)
	lc := s.Cfg.League

	s.Router.Handle("/metrics", s.MetricsHandler)
	s.Router.Handle("/health", Chain(handlers.HealthCheckHandler(), paramsMiddleware))
	s.Router.Handle("/stats", Chain(handlers.StatsHandler(s.Counters), paramsMiddleware))

	s.Router.Handle("GET /teams", Chain(handlers.ListTeamsHandler(s.Store), paramsMiddleware))
	s.Router.Handle("GET /matchdays", Chain(handlers.ListMatchdaysHandler(s.Store), paramsMiddleware))
	s.Router.Handle("GET /standings", Chain(handlers.StandingsHandler(s.Store), paramsMiddleware))
	s.Router.Handle("GET /standings/positional", Chain(handlers.PositionalStandingsHandler(s.Store), paramsMiddleware))
	s.Router.Handle("GET /cumulative", Chain(handlers.CumulativeHandler(s.Store), paramsMiddleware))
	s.Router.Handle("GET /rank-history", Chain(handlers.RankHistoryHandler(s.Store), paramsMiddleware))
	s.Router.Handle("GET /streaks", Chain(handlers.StreaksHandler(s.Store, lc.StreakRule), paramsMiddleware))
	s.Router.Handle("GET /projection", Chain(handlers.ProjectionHandler(s.Store, lc.ProjectionHorizon), paramsMiddleware))
	s.Router.Handle("GET /summary", Chain(handlers.SummaryHandler(s.Store), paramsMiddleware))
	s.Router.Handle("GET /performance", Chain(handlers.PerformanceHandler(s.Store), paramsMiddleware))
	s.Router.Handle("GET /chase", Chain(handlers.ChaseHandler(s.Store), paramsMiddleware))
	s.Router.Handle("GET /duels", Chain(handlers.DuelsHandler(s.Store), paramsMiddleware))
	s.Router.Handle("GET /duels/standings", Chain(handlers.DuelStandingsHandler(s.Store), paramsMiddleware))

	s.Router.Handle("/admin/teams", Chain(handlers.AddTeamHandler(s.Store), paramsMiddleware, admin))
	s.Router.Handle("/admin/scores", Chain(handlers.RecordScoresHandler(s.Processor), paramsMiddleware, admin))
	s.Router.Handle("/admin/duels/generate", Chain(handlers.GenerateDuelsHandler(s.Generator), paramsMiddleware, admin))
	s.Router.Handle("/admin/duels/winner", Chain(handlers.SetWinnerHandler(s.Store), paramsMiddleware, admin))
	s.Router.Handle("/admin/clear", Chain(handlers.ClearStoreHandler(s.Store), paramsMiddleware, admin))

	s.Router.Handle("/pubsub/round-scored", Chain(handlers.RoundScoredHandler(s.Processor, s.pubsub), paramsMiddleware))

	s.Router.Handle("/slack/command/standings", Chain(handlers.StandingsCommandHandler(s.Store, s.Notifier), paramsMiddleware, slackAuth))
	s.Router.Handle("/slack/command/duels", Chain(handlers.DuelsCommandHandler(s.Store, s.Notifier), paramsMiddleware, slackAuth))
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.Router.ServeHTTP(w, r)
}
