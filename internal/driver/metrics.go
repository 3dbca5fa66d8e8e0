package driver

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the Prometheus collectors a Runner updates.
type Metrics struct {
	Ticks        *prometheus.CounterVec
	Runs         *prometheus.CounterVec
	TickDuration prometheus.Histogram
}

// NewMetrics creates the collectors and registers them with reg. A nil reg
// leaves them unregistered.
func NewMetrics(reg prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		Ticks: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "behaviorkit",
				Name:      "ticks_total",
				Help:      "Root updates, by the status they returned.",
			},
			[]string{"status"},
		),
		Runs: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "behaviorkit",
				Name:      "runs_total",
				Help:      "Finished runs, by outcome (success, failure, cancelled, exhausted).",
			},
			[]string{"outcome"},
		),
		TickDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "behaviorkit",
			Name:      "tick_duration_seconds",
			Help:      "Wall time spent in a single root update.",
			Buckets:   prometheus.ExponentialBuckets(0.00001, 4, 10),
		}),
	}
	if reg != nil {
		for _, c := range []prometheus.Collector{m.Ticks, m.Runs, m.TickDuration} {
			if err := reg.Register(c); err != nil {
				return nil, fmt.Errorf("driver: register metrics: %w", err)
			}
		}
	}
	return m, nil
}
