// Package metrics holds the Prometheus collectors of the nanocl CLI.
//
// Collectors are registered on [Registry] rather than the global default
// registry so a run can be written to a node-exporter textfile without the
// Go runtime collectors.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Registry is the registry every nanocl collector is registered on.
var Registry = prometheus.NewRegistry()

var (
	// Daemon API metrics
	apiCallsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "nanocl",
			Subsystem: "api",
			Name:      "calls_total",
			Help:      "Total number of nanocl daemon API calls by operation and result",
		},
		[]string{"operation", "result"},
	)

	apiCallDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "nanocl",
			Subsystem: "api",
			Name:      "call_duration_seconds",
			Help:      "Latency of nanocl daemon API calls in seconds",
			Buckets:   prometheus.ExponentialBuckets(0.005, 2, 10), // 5ms to ~2.5s
		},
		[]string{"operation"},
	)

	// Apply metrics
	applyResourcesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "nanocl",
			Subsystem: "apply",
			Name:      "resources_total",
			Help:      "Reconciled resources by kind and action taken",
		},
		[]string{"kind", "action"},
	)

	applyPhaseDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "nanocl",
			Subsystem: "apply",
			Name:      "phase_duration_seconds",
			Help:      "Duration of apply phases in seconds",
			Buckets:   prometheus.ExponentialBuckets(0.01, 2, 12), // 10ms to ~20s
		},
		[]string{"phase", "result"},
	)
)

func init() {
	Registry.MustRegister(
		apiCallsTotal,
		apiCallDuration,
		applyResourcesTotal,
		applyPhaseDuration,
	)
}

// Result labels
const (
	ResultSuccess = "success"
	ResultError   = "error"
)

// Resource actions
const (
	ActionCreated = "created"
	ActionExists  = "exists"
	ActionLinked  = "linked"
	ActionJoined  = "joined"
	ActionStarted = "started"
	ActionSkipped = "skipped"
)

// RecordAPICall records one daemon API call.
func RecordAPICall(operation string, err error, duration time.Duration) {
	result := ResultSuccess
	if err != nil {
		result = ResultError
	}
	apiCallsTotal.WithLabelValues(operation, result).Inc()
	apiCallDuration.WithLabelValues(operation).Observe(duration.Seconds())
}

// RecordResource records the action taken for one reconciled resource.
func RecordResource(kind, action string) {
	applyResourcesTotal.WithLabelValues(kind, action).Inc()
}

// RecordPhase records the duration and outcome of an apply phase.
func RecordPhase(phase string, err error, duration time.Duration) {
	result := ResultSuccess
	if err != nil {
		result = ResultError
	}
	applyPhaseDuration.WithLabelValues(phase, result).Observe(duration.Seconds())
}

// WriteTextfile writes the registry in the Prometheus text format to path.
func WriteTextfile(path string) error {
	return prometheus.WriteToTextfile(path, Registry)
}
