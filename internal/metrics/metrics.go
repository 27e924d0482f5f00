package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const (
	ResultSuccess = "success"
	ResultError   = "error"
)

// Metrics holds the Prometheus metrics for subgraph fetches.
type Metrics struct {
	fetchDuration *prometheus.HistogramVec
	fetchesTotal  *prometheus.CounterVec
	items         *prometheus.GaugeVec
	inFlight      prometheus.Gauge
}

// New creates and registers the dashboard metrics.
func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		fetchDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "dashboard_fetch_duration_seconds",
			Help:    "Time taken by one subgraph fetch.",
			Buckets: prometheus.DefBuckets,
		}, []string{"result"}),
		fetchesTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "dashboard_fetches_total",
			Help: "Total number of subgraph fetches, labeled by result.",
		}, []string{"result"}),
		items: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "dashboard_snapshot_items",
			Help: "Rows held in the current snapshot, labeled by table.",
		}, []string{"table"}),
		inFlight: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "dashboard_fetches_in_flight",
			Help: "Subgraph fetches currently running.",
		}),
	}
	reg.MustRegister(m.fetchDuration, m.fetchesTotal, m.items, m.inFlight)
	return m
}

// FetchStarted marks a fetch as running and returns a func that records
// its outcome.
func (m *Metrics) FetchStarted() func(err error) {
	if m == nil {
		return func(error) {}
	}
	start := time.Now()
	m.inFlight.Inc()
	return func(err error) {
		m.inFlight.Dec()
		result := ResultSuccess
		if err != nil {
			result = ResultError
		}
		m.fetchDuration.WithLabelValues(result).Observe(time.Since(start).Seconds())
		m.fetchesTotal.WithLabelValues(result).Inc()
	}
}

// SetItems records the row count of each table in the live snapshot.
func (m *Metrics) SetItems(pools, tokens, swaps int) {
	if m == nil {
		return
	}
	m.items.WithLabelValues("pools").Set(float64(pools))
	m.items.WithLabelValues("tokens").Set(float64(tokens))
	m.items.WithLabelValues("swaps").Set(float64(swaps))
}
