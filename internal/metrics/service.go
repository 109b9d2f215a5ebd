package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var _ Metrics = (*Service)(nil)

// NewMetricsHandler returns an http.Handler for the given Gatherer.
// If no gatherer is provided, it uses the default one.
func NewMetricsHandler(gatherer ...prometheus.Gatherer) http.Handler {
	gath := prometheus.DefaultGatherer
	if len(gatherer) > 0 {
		gath = gatherer[0]
	}
	return promhttp.HandlerFor(gath, promhttp.HandlerOpts{})
}

// NewService creates and registers the Prometheus metrics.
// If no registerer is provided, it uses the default Prometheus registerer.
func NewService(registerer ...prometheus.Registerer) *Service {
	reg := prometheus.DefaultRegisterer
	if len(registerer) > 0 {
		reg = registerer[0]
	}

	s := &Service{
		PairingsGenerated: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "duels_pairings_generated_total",
			Help: "The total number of duel pairings emitted by the pairing engine.",
		}),
		ByesAssigned: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "duels_byes_assigned_total",
			Help: "The total number of byes assigned.",
		}),
		GenerationDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "duels_generation_duration_seconds",
			Help:    "The duration of a gameweek generation, including persistence.",
			Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5},
		}),
		RoundsProcessed: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "duels_rounds_processed_total",
			Help: "The total number of scored rounds processed.",
		}),
		SlackNotifSent: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "duels_slack_notifications_sent_total",
			Help: "The total number of Slack notifications successfully sent.",
		}),
		SlackNotifFailed: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "duels_slack_notifications_failed_total",
			Help: "The total number of Slack notifications that failed to send.",
		}),
		StartupTimeSeconds: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "duels_startup_duration_seconds",
			Help: "The duration of the application startup in seconds.",
		}),
	}

	reg.MustRegister(
		s.PairingsGenerated,
		s.ByesAssigned,
		s.GenerationDuration,
		s.RoundsProcessed,
		s.SlackNotifSent,
		s.SlackNotifFailed,
		s.StartupTimeSeconds,
	)

	return s
}

func (s *Service) IncPairingsGenerated() {
	s.PairingsGenerated.Inc()
}

func (s *Service) IncByesAssigned() {
	s.ByesAssigned.Inc()
}

func (s *Service) ObserveGenerationDuration(duration float64) {
	s.GenerationDuration.Observe(duration)
}

func (s *Service) IncRoundsProcessed() {
	s.RoundsProcessed.Inc()
}

func (s *Service) IncSlackNotifSent() {
	s.SlackNotifSent.Inc()
}

func (s *Service) IncSlackNotifFailed() {
	s.SlackNotifFailed.Inc()
}

func (s *Service) SetStartupTime(duration float64) {
	s.StartupTimeSeconds.Set(duration)
}
