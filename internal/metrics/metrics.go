// Package metrics exports tempo aggregation events to Prometheus.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/cwbudde/algo-mir/rhythm/tempocnn"
)

var _ tempocnn.Observer = (*Prometheus)(nil)

// Prometheus implements tempocnn.Observer with Prometheus collectors.
type Prometheus struct {
	aggregations *prometheus.CounterVec
	ties         prometheus.Counter
	segments     prometheus.Histogram
}

// NewPrometheus registers the tempo collectors on reg. A nil reg uses the
// default registry.
func NewPrometheus(reg prometheus.Registerer) *Prometheus {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	factory := promauto.With(reg)

	return &Prometheus{
		aggregations: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "tempocnn_aggregations_total",
				Help: "Number of global tempo aggregations by method.",
			},
			[]string{"method"},
		),
		ties: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "tempocnn_majority_ties_total",
				Help: "Number of majority votes in which the two best tempi tied.",
			},
		),
		segments: factory.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "tempocnn_segments",
				Help:    "Number of segments per aggregation.",
				Buckets: prometheus.ExponentialBuckets(1, 2, 12),
			},
		),
	}
}

// ObserveAggregation counts one aggregation over segments segments.
func (p *Prometheus) ObserveAggregation(method tempocnn.Method, segments int) {
	p.aggregations.WithLabelValues(method.String()).Inc()
	p.segments.Observe(float64(segments))
}

// ObserveTie counts one ambiguous majority vote.
func (p *Prometheus) ObserveTie(tempocnn.Tie) {
	p.ties.Inc()
}
