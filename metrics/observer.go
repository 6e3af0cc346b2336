package metrics

import (
	"errors"
	"fmt"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/katalvlaran/ugraph/core"
)

// ErrRegistrationFailed wraps any error returned by the Registerer.
var ErrRegistrationFailed = errors.New("metrics: collector registration failed")

const namespace = "ugraph"

// Observer records core.TraversalStats as Prometheus series.
type Observer struct {
	traversals *prometheus.CounterVec
	frames     *prometheus.HistogramVec
	visited    *prometheus.HistogramVec
	duration   *prometheus.HistogramVec
}

var _ core.Observer = (*Observer)(nil)

// NewObserver builds the collectors and registers them on reg. A nil reg
// falls back to prometheus.DefaultRegisterer.
//
// Collectors already registered under the same descriptors (for example a
// second Observer on the default registry) are reused.
func NewObserver(reg prometheus.Registerer) (*Observer, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}

	o := &Observer{
		traversals: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "traversals_total",
			Help:      "Traversal and analysis calls by operation",
		}, []string{"op"}),
		frames: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "traversal_frames",
			Help:      "Stack or queue frames pushed per call",
			Buckets:   prometheus.ExponentialBuckets(1, 4, 12), // 1 to ~4M
		}, []string{"op"}),
		visited: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "traversal_visited",
			Help:      "Distinct vertices reached per call",
			Buckets:   prometheus.ExponentialBuckets(1, 4, 10),
		}, []string{"op"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "traversal_duration_seconds",
			Help:      "Traversal wall time in seconds",
			Buckets:   prometheus.ExponentialBuckets(0.00001, 4, 12), // 10µs to ~40s
		}, []string{"op"}),
	}

	var err error
	if o.traversals, err = register(reg, o.traversals); err != nil {
		return nil, err
	}
	if o.frames, err = register(reg, o.frames); err != nil {
		return nil, err
	}
	if o.visited, err = register(reg, o.visited); err != nil {
		return nil, err
	}
	if o.duration, err = register(reg, o.duration); err != nil {
		return nil, err
	}

	return o, nil
}

// register adds c to reg, returning the already registered collector when an
// identical one exists.
func register[C prometheus.Collector](reg prometheus.Registerer, c C) (C, error) {
	if err := reg.Register(c); err != nil {
		var already prometheus.AlreadyRegisteredError
		if errors.As(err, &already) {
			if existing, ok := already.ExistingCollector.(C); ok {
				return existing, nil
			}
		}
		return c, fmt.Errorf("%w: %w", ErrRegistrationFailed, err)
	}

	return c, nil
}

// ObserveTraversal implements core.Observer.
func (o *Observer) ObserveTraversal(s core.TraversalStats) {
	o.traversals.WithLabelValues(s.Op).Inc()
	o.frames.WithLabelValues(s.Op).Observe(float64(s.Frames))
	o.visited.WithLabelValues(s.Op).Observe(float64(s.Visited))
	o.duration.WithLabelValues(s.Op).Observe(s.Elapsed.Seconds())
}
