// Package metrics exports Prometheus metrics for piece computations.
package metrics

import (
	"context"
	"time"

	"github.com/birdayz/jigsaw/kpiece"
	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "jigsaw"

// Collector holds the metric vectors, labelled by piece name.
type Collector struct {
	computations *prometheus.CounterVec
	failures     *prometheus.CounterVec
	duration     *prometheus.HistogramVec
}

// NewCollector creates the metrics and registers them with reg.
func NewCollector(reg prometheus.Registerer) (*Collector, error) {
	c := &Collector{
		computations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "piece_computations_total",
			Help:      "Number of piece computations.",
		}, []string{"piece"}),
		failures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "piece_failures_total",
			Help:      "Number of piece computations that returned an error.",
		}, []string{"piece"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "piece_compute_duration_seconds",
			Help:      "Duration of piece computations.",
			Buckets:   prometheus.ExponentialBuckets(0.0001, 4, 10),
		}, []string{"piece"}),
	}

	for _, col := range []prometheus.Collector{c.computations, c.failures, c.duration} {
		if err := reg.Register(col); err != nil {
			return nil, err
		}
	}
	return c, nil
}

// MustNewCollector is like NewCollector but panics on error.
func MustNewCollector(reg prometheus.Registerer) *Collector {
	c, err := NewCollector(reg)
	if err != nil {
		panic(err)
	}
	return c
}

// Interceptor records every computation it wraps. Use it with
// jigsaw.WithInterceptors.
func Interceptor[V any](c *Collector) kpiece.Interceptor[V] {
	return func(ctx context.Context, p kpiece.Piece[V], in kpiece.Values[V], handler kpiece.Handler[V]) (kpiece.Values[V], error) {
		name := kpiece.NameOf(p)

		start := time.Now()
		out, err := handler(ctx, in)
		c.duration.WithLabelValues(name).Observe(time.Since(start).Seconds())

		c.computations.WithLabelValues(name).Inc()
		if err != nil {
			c.failures.WithLabelValues(name).Inc()
		}
		return out, err
	}
}
