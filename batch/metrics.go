// SPDX-License-Identifier: MIT

package batch

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
)

// Outcome label values of absorb_solves_total.
const (
	LabelOK          = "ok"
	LabelInvalid     = "invalid"
	LabelUnreachable = "unreachable"
	LabelCanceled    = "canceled"
	LabelError       = "error"
)

// Metrics groups the collectors a Runner updates.
type Metrics struct {
	Solves    *prometheus.CounterVec
	Duration  prometheus.Histogram
	CacheHits prometheus.Counter
}

// NewMetrics creates the collectors and registers them on reg.
func NewMetrics(reg prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		Solves: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "absorb_solves_total",
				Help: "Number of chain solves by outcome",
			},
			[]string{"outcome"},
		),
		Duration: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "absorb_solve_duration_seconds",
				Help:    "Duration of chain solves, cache hits included",
				Buckets: prometheus.ExponentialBuckets(0.0001, 4, 10),
			},
		),
		CacheHits: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "absorb_cache_hits_total",
				Help: "Number of solves answered from the result cache",
			},
		),
	}
	for _, c := range []prometheus.Collector{m.Solves, m.Duration, m.CacheHits} {
		if err := reg.Register(c); err != nil {
			return nil, fmt.Errorf("batch: register metrics: %w", err)
		}
	}

	return m, nil
}
