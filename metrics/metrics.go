package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Realtime event metrics
var (
	// EventsReceivedTotal tracks realtime events handed to the dispatcher by type
	EventsReceivedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "todostar_events_received_total",
			Help: "Realtime events received by event type",
		},
		[]string{"event_type"},
	)

	// EventFailuresTotal tracks events whose handling returned an error or panicked
	EventFailuresTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "todostar_event_failures_total",
			Help: "Realtime events whose handling failed, by event type and reason (error/panic)",
		},
		[]string{"event_type", "reason"},
	)

	// EventHandlingDuration tracks how long handling a single event took
	EventHandlingDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "todostar_event_handling_duration_seconds",
			Help:    "Event handling duration in seconds",
			Buckets: []float64{.01, .05, .1, .25, .5, 1, 2.5, 5, 10},
		},
		[]string{"event_type"},
	)

	// RealtimeConnected is 1 while the realtime connection is up
	RealtimeConnected = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "todostar_realtime_connected",
			Help: "Whether the realtime connection to Slack is established (1) or not (0)",
		},
	)
)

// Slack Web API metrics
var (
	// SlackCallsTotal tracks Web API calls issued by action and status
	SlackCallsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "todostar_slack_calls_total",
			Help: "Slack Web API calls by action (add_reaction/add_star/remove_star/get_item) and status",
		},
		[]string{"action", "status"},
	)

	// RuleMatchesTotal tracks which dispatch rule fired per event type
	RuleMatchesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "todostar_rule_matches_total",
			Help: "Dispatch rules that matched, by event type and rule",
		},
		[]string{"event_type", "rule"},
	)
)

// RecordSlackCall counts one Web API call and its outcome
func RecordSlackCall(action string, err error) {
	status := "ok"
	if err != nil {
		status = "error"
	}
	SlackCallsTotal.WithLabelValues(action, status).Inc()
}
