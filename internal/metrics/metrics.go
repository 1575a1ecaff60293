// Package metrics collects Prometheus metrics for game sessions.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rocketscienceinc/tictactoe-bot/internal/entity"
)

const (
	MoveApplied = "applied"
	MoveIgnored = "ignored"
)

// Collector - Prometheus implementation used by the session manager and the bot.
type Collector struct {
	sessionsStarted  prometheus.Counter
	sessionsFinished *prometheus.CounterVec
	moves            *prometheus.CounterVec
	activeSessions   prometheus.Gauge
	messagingErrors  *prometheus.CounterVec
}

// NewCollector registers every metric on reg.
func NewCollector(reg prometheus.Registerer) *Collector {
	collector := &Collector{
		sessionsStarted: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "tictactoe_sessions_started_total",
			Help: "Number of sessions started.",
		}),
		sessionsFinished: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "tictactoe_sessions_finished_total",
			Help: "Number of sessions that reached a terminal status.",
		}, []string{"status"}),
		moves: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "tictactoe_moves_total",
			Help: "Move inputs by result.",
		}, []string{"result"}),
		activeSessions: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "tictactoe_active_sessions",
			Help: "Sessions currently in progress.",
		}),
		messagingErrors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "tictactoe_messaging_errors_total",
			Help: "Failed chat platform calls by operation.",
		}, []string{"op"}),
	}

	reg.MustRegister(
		collector.sessionsStarted,
		collector.sessionsFinished,
		collector.moves,
		collector.activeSessions,
		collector.messagingErrors,
	)

	return collector
}

func (that *Collector) SessionStarted() {
	that.sessionsStarted.Inc()
	that.activeSessions.Inc()
}

func (that *Collector) SessionFinished(status entity.Status) {
	that.sessionsFinished.WithLabelValues(string(status)).Inc()
	that.activeSessions.Dec()
}

func (that *Collector) Move(result string) {
	that.moves.WithLabelValues(result).Inc()
}

func (that *Collector) MessagingError(op string) {
	that.messagingErrors.WithLabelValues(op).Inc()
}

// Handler returns the scrape handler for gatherer.
func Handler(gatherer prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})
}
