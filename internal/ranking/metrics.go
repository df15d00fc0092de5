package ranking

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metric names as constants for consistency.
const (
	MetricRankCalls         = "rank_calls_total"
	MetricCandidatesScored  = "rank_candidates_scored_total"
	MetricCandidatesSkipped = "rank_candidates_skipped_total"
	MetricRankLatency       = "rank_latency_seconds"
)

// Metrics contains Prometheus metrics for the ranker.
// All operations are thread-safe.
type Metrics struct {
	rankCalls         prometheus.Counter
	candidatesScored  prometheus.Counter
	candidatesSkipped prometheus.Counter
	rankLatency       prometheus.Histogram
}

// NewMetrics creates and returns a new Metrics instance with all collectors
// initialized. The metrics are not registered; call Register to register them
// with a registry.
func NewMetrics() *Metrics {
	return &Metrics{
		rankCalls: prometheus.NewCounter(prometheus.CounterOpts{
			Name: MetricRankCalls,
			Help: "Total number of ranking calls",
		}),
		candidatesScored: prometheus.NewCounter(prometheus.CounterOpts{
			Name: MetricCandidatesScored,
			Help: "Total number of location candidates scored",
		}),
		candidatesSkipped: prometheus.NewCounter(prometheus.CounterOpts{
			Name: MetricCandidatesSkipped,
			Help: "Total number of malformed location candidates skipped",
		}),
		rankLatency: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    MetricRankLatency,
			Help:    "Histogram of ranking call latency in seconds",
			Buckets: prometheus.DefBuckets,
		}),
	}
}

// Register registers all metrics with the given registry.
// Returns an error if registration fails.
func (m *Metrics) Register(reg prometheus.Registerer) error {
	for _, c := range m.Collectors() {
		if err := reg.Register(c); err != nil {
			return err
		}
	}
	return nil
}

// IncRankCalls increments the ranking calls counter.
func (m *Metrics) IncRankCalls() {
	m.rankCalls.Inc()
}

// IncCandidatesScored increments the scored candidates counter.
func (m *Metrics) IncCandidatesScored() {
	m.candidatesScored.Inc()
}

// IncCandidatesSkipped increments the skipped candidates counter.
func (m *Metrics) IncCandidatesSkipped() {
	m.candidatesSkipped.Inc()
}

// ObserveRankLatency records a ranking call latency sample.
func (m *Metrics) ObserveRankLatency(seconds float64) {
	m.rankLatency.Observe(seconds)
}

// Collectors returns all Prometheus collectors for testing.
func (m *Metrics) Collectors() []prometheus.Collector {
	return []prometheus.Collector{
		m.rankCalls,
		m.candidatesScored,
		m.candidatesSkipped,
		m.rankLatency,
	}
}
