package http

import (
	"net/http"

	"github.com/mauv0809/fantasy-duels/internal/config"
	"github.com/mauv0809/fantasy-duels/internal/matchmaking"
	"github.com/mauv0809/fantasy-duels/internal/metrics"
	"github.com/mauv0809/fantasy-duels/internal/notifier"
	"github.com/mauv0809/fantasy-duels/internal/processor"
	"github.com/mauv0809/fantasy-duels/internal/pubsub"
	"github.com/mauv0809/fantasy-duels/internal/store"
)

type Server struct {
	Store          store.LeagueStore
	Metrics        metrics.Metrics
	MetricsHandler http.Handler
	Counters       metrics.MetricsStore
	Cfg            config.Config
	Notifier       notifier.Notifier
	Processor      *processor.Processor
	Generator      matchmaking.DuelGenerator
	Router         *http.ServeMux
	pubsub         pubsub.PubSubClient
}
