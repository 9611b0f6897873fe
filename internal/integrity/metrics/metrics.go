package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the Prometheus metrics for integrity checks.
type Metrics struct {
	Verifications  *prometheus.CounterVec
	TamperDetected *prometheus.CounterVec
	Overrides      *prometheus.CounterVec
}

// New creates and registers the integrity metrics.
func New() *Metrics {
	return &Metrics{
		Verifications: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "esgledger_integrity_verifications_total",
			Help: "Total integrity verifications, by entity kind.",
		}, []string{"entity_kind"}),
		TamperDetected: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "esgledger_integrity_tamper_detected_total",
			Help: "Total hash mismatches detected, by entity kind.",
		}, []string{"entity_kind"}),
		Overrides: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "esgledger_integrity_overrides_total",
			Help: "Total admin overrides of integrity warnings, by entity kind.",
		}, []string{"entity_kind"}),
	}
}
