package httpapi

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics are the server's Prometheus collectors.
type Metrics struct {
	// Analyses counts completed analyses by verdict ("valid" or a reason code).
	Analyses *prometheus.CounterVec
	// Rejected counts requests that produced no verdict, by cause.
	Rejected *prometheus.CounterVec
	// Duration observes analysis latency.
	Duration prometheus.Histogram
}

// NewMetrics creates the collectors and registers them with reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		Analyses: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "circuitloop_analyses_total",
				Help: "Completed circuit analyses by verdict",
			},
			[]string{"verdict"},
		),
		Rejected: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "circuitloop_rejected_total",
				Help: "Analyze requests that ended without a verdict, by cause",
			},
			[]string{"cause"},
		),
		Duration: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "circuitloop_analysis_duration_seconds",
				Help:    "Time spent analyzing one schematic",
				Buckets: prometheus.ExponentialBuckets(0.0001, 4, 8),
			},
		),
	}
	reg.MustRegister(m.Analyses, m.Rejected, m.Duration)

	return m
}
