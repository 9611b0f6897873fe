package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the Prometheus metrics for the audit trail.
type Metrics struct {
	EntriesAppended *prometheus.CounterVec
	Queries         prometheus.Counter
	ArchiveFailures prometheus.Counter
	FeedFailures    prometheus.Counter
}

// New creates and registers the audit metrics.
func New() *Metrics {
	return &Metrics{
		EntriesAppended: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "esgledger_audit_entries_appended_total",
			Help: "Total audit entries appended to the ledger, by action and entity type.",
		}, []string{"action", "entity_type"}),
		Queries: promauto.NewCounter(prometheus.CounterOpts{
			Name: "esgledger_audit_queries_total",
			Help: "Total audit trail queries served.",
		}),
		ArchiveFailures: promauto.NewCounter(prometheus.CounterOpts{
			Name: "esgledger_audit_archive_failures_total",
			Help: "Total audit entries that could not be handed to the archiver.",
		}),
		FeedFailures: promauto.NewCounter(prometheus.CounterOpts{
			Name: "esgledger_audit_feed_failures_total",
			Help: "Total failures pushing entries to the recent-activity feed.",
		}),
	}
}
