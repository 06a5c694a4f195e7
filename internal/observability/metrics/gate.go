// Package metrics exposes Prometheus collectors for the gate and the HTTP server.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	domainauth "github.com/stayhub/stayhub-web/internal/domain/auth"
)

const namespace = "stayhub"

// Outcome labels.
const (
	OutcomeAllow = "allow"
	OutcomeDeny  = "deny"
)

// GateMetrics records one sample per authorization decision.
type GateMetrics struct {
	decisions *prometheus.CounterVec
	duration  *prometheus.HistogramVec
}

// NewGateMetrics registers the gate collectors on reg.
func NewGateMetrics(reg prometheus.Registerer) (*GateMetrics, error) {
	m := &GateMetrics{
		decisions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "gate",
			Name:      "decisions_total",
			Help:      "Authorization decisions by policy, outcome and internal reason.",
		}, []string{"policy", "outcome", "reason"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "gate",
			Name:      "duration_seconds",
			Help:      "Time spent in one authorization pass, including identity and role lookups.",
			Buckets:   []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5},
		}, []string{"policy"}),
	}
	for _, c := range []prometheus.Collector{m.decisions, m.duration} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	return m, nil
}

// ObserveDecision implements service.GateObserver.
func (m *GateMetrics) ObserveDecision(policy string, d domainauth.Decision, elapsed time.Duration) {
	outcome, reason := OutcomeAllow, ""
	if !d.Allowed {
		outcome, reason = OutcomeDeny, string(d.Reason)
	}
	m.decisions.WithLabelValues(policy, outcome, reason).Inc()
	m.duration.WithLabelValues(policy).Observe(elapsed.Seconds())
}
