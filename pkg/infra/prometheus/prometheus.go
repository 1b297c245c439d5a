package prometheus

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var registry = prometheus.NewRegistry()

var registerer = prometheus.WrapRegistererWith(nil, registry)

var (
	// Latency buckets in milliseconds
	latencyBuckets = []float64{
		25, 50, 100, // Fast classifications
		250, 500, 1000, // Normal classifications
		2500, 5000, 10000, // Slow/timeout
	}

	ModerationRequestsTotal = promauto.With(registerer).NewCounterVec(
		prometheus.CounterOpts{
			Name: "imageguard_requests_total",
			Help: "Total number of content items analyzed, by final outcome",
		},
		[]string{"outcome"},
	)

	CheckerDecisionsTotal = promauto.With(registerer).NewCounterVec(
		prometheus.CounterOpts{
			Name: "imageguard_checker_decisions_total",
			Help: "Decisions taken by each checker",
		},
		[]string{"checker", "outcome"},
	)

	RiskLevelsTotal = promauto.With(registerer).NewCounterVec(
		prometheus.CounterOpts{
			Name: "imageguard_risk_levels_total",
			Help: "Risk levels reported by the remote classifier",
		},
		[]string{"risk_level"},
	)

	FailOpenTotal = promauto.With(registerer).NewCounterVec(
		prometheus.CounterOpts{
			Name: "imageguard_fail_open_total",
			Help: "Content approved because the risk could not be determined, by failure category",
		},
		[]string{"category"},
	)

	ClassifierLatency = promauto.With(registerer).NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "imageguard_classifier_latency_ms",
			Help:    "Remote image classification latency in milliseconds",
			Buckets: latencyBuckets,
		},
		[]string{"result"}, // "ok" or "error"
	)
)

const (
	OutcomeApproved = "approved"
	OutcomeRejected = "rejected"
)

func OutcomeLabel(approved bool) string {
	if approved {
		return OutcomeApproved
	}
	return OutcomeRejected
}

var initOnce sync.Once

// Initialize registers the process collector and makes the moderation
// registry the default gatherer served on /metrics.
func Initialize() {
	initOnce.Do(func() {
		registry.MustRegister(
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
			collectors.NewGoCollector(),
		)
		prometheus.DefaultRegisterer = registry
		prometheus.DefaultGatherer = registry
	})
}
