package action

import (
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics counts action outcomes and latencies.
type Metrics struct {
	total    *prometheus.CounterVec
	duration *prometheus.HistogramVec
}

// NewMetrics creates the action collectors and registers them on reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		total: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "boxdrop",
			Name:      "actions_total",
			Help:      "Number of form actions by outcome.",
		}, []string{"action", "outcome"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "boxdrop",
			Name:      "action_duration_seconds",
			Help:      "Form action latency.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"action"}),
	}
	reg.MustRegister(m.total, m.duration)
	return m
}

func (m *Metrics) observe(action, outcome string, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.total.WithLabelValues(action, strings.ToLower(outcome)).Inc()
	m.duration.WithLabelValues(action).Observe(elapsed.Seconds())
}
