// Package metrics implements the per-technique step counters the spec's
// concurrency section calls for: "budget enforcement by the embedder."
// The graph driver depends only on the StepObserver interface; this package
// is the Prometheus-backed implementation of it, scraped via /metrics on
// the Gin server.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Observer implements graph.StepObserver with Prometheus instrumentation.
// It is registered once per process and shared across every solve request.
type Observer struct {
	stepsTotal       *prometheus.CounterVec
	falsifiedPerStep prometheus.Histogram
}

// NewObserver builds an Observer and registers its collectors with reg.
// Pass prometheus.DefaultRegisterer for the global registry.
func NewObserver(reg prometheus.Registerer) *Observer {
	o := &Observer{
		stepsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "sudoku_graph_technique_steps_total",
			Help: "Number of times each technique reported progress.",
		}, []string{"technique"}),
		falsifiedPerStep: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "sudoku_graph_event_deep_false",
			Help:    "Claims falsified per event tree root (deepFalse), across every solve step.",
			Buckets: prometheus.ExponentialBuckets(1, 2, 10),
		}),
	}
	reg.MustRegister(o.stepsTotal, o.falsifiedPerStep)
	return o
}

// ObserveStep satisfies graph.StepObserver: it is called once per
// progress-making Digest() call, with the technique's Name() and the
// event's DeepFalse() count.
func (o *Observer) ObserveStep(technique string, falsified int) {
	o.stepsTotal.WithLabelValues(technique).Inc()
	o.falsifiedPerStep.Observe(float64(falsified))
}
