package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "dicegame"

// Metrics holds the application's Prometheus collectors.
// Each instance owns its registry so tests can create as many as they like.
type Metrics struct {
	registry *prometheus.Registry

	PlayersCreated      prometheus.Counter
	DiceRolls           prometheus.Counter
	GamerTagsGenerated  prometheus.Counter
	DiceScores          prometheus.Histogram
	InvalidNameRequests prometheus.Counter
	HTTPRequests        *prometheus.CounterVec
}

// New creates a Metrics with all collectors registered
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		PlayersCreated: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "players_created_total",
			Help:      "Number of players created.",
		}),
		DiceRolls: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "dice_rolls_total",
			Help:      "Number of dice rolls.",
		}),
		GamerTagsGenerated: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "gamer_tags_generated_total",
			Help:      "Number of gamer tags generated from player names.",
		}),
		DiceScores: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "dice_score",
			Help:      "Distribution of dice scores.",
			Buckets:   prometheus.LinearBuckets(2, 1, 11),
		}),
		InvalidNameRequests: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "invalid_names_total",
			Help:      "Number of full names rejected as malformed.",
		}),
		HTTPRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "Number of API requests by method and status code.",
		}, []string{"method", "code"}),
	}

	m.registry.MustRegister(
		m.PlayersCreated,
		m.DiceRolls,
		m.GamerTagsGenerated,
		m.DiceScores,
		m.InvalidNameRequests,
		m.HTTPRequests,
		collectors.NewGoCollector(),
	)
	return m
}

// Handler serves the registry in the Prometheus exposition format
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// Instrument counts requests served by next
func (m *Metrics) Instrument(next http.Handler) http.Handler {
	return promhttp.InstrumentHandlerCounter(m.HTTPRequests, next)
}
