package audit

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"esgledger/internal/audit/metrics"
)

// Sink receives appended entries for side channels (archiver, activity
// feed). Sinks are best-effort: a sink failure never fails the append.
type Sink interface {
	Submit(ctx context.Context, entry Entry)
}

// Trail wraps the append-only store with id and timestamp assignment,
// logging, metrics, and best-effort fan-out to sinks. Domain collaborators
// decide what is audit-worthy; Append never rejects an entry for content
// reasons.
type Trail struct {
	store   Store
	sinks   []Sink
	logger  *slog.Logger
	metrics *metrics.Metrics
}

func NewTrail(store Store, logger *slog.Logger, m *metrics.Metrics, sinks ...Sink) *Trail {
	return &Trail{store: store, sinks: sinks, logger: logger, metrics: m}
}

// Append assigns the entry a unique id and a timestamp (unless the caller
// pinned one) and inserts it at the end of the ledger. The stored entry is
// returned so callers and tests can reference its id.
func (t *Trail) Append(ctx context.Context, entry Entry) (Entry, error) {
	if entry.ID == uuid.Nil {
		entry.ID = uuid.New()
	}
	if entry.Timestamp.IsZero() {
		entry.Timestamp = time.Now().UTC()
	}

	if err := t.store.Append(ctx, entry); err != nil {
		return Entry{}, fmt.Errorf("append audit entry: %w", err)
	}

	if t.metrics != nil {
		t.metrics.EntriesAppended.WithLabelValues(string(entry.Action), entry.EntityType).Inc()
	}
	t.logger.DebugContext(ctx, "audit entry appended",
		"entry_id", entry.ID,
		"action", entry.Action,
		"entity_type", entry.EntityType,
		"entity_id", entry.EntityID,
		"changed_fields", len(entry.Changes),
	)

	for _, sink := range t.sinks {
		sink.Submit(ctx, entry)
	}

	return entry, nil
}

// Query returns entries matching the filter, newest-first.
func (t *Trail) Query(ctx context.Context, filter Filter) ([]Entry, error) {
	if t.metrics != nil {
		t.metrics.Queries.Inc()
	}
	entries, err := t.store.Query(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("query audit trail: %w", err)
	}
	return entries, nil
}

// History returns one entity's entries oldest-first, the order replay folds
// them in.
func (t *Trail) History(ctx context.Context, entityType, entityID string) ([]Entry, error) {
	entries, err := t.Query(ctx, Filter{EntityType: entityType, EntityID: entityID})
	if err != nil {
		return nil, err
	}
	for i, j := 0, len(entries)-1; i < j; i, j = i+1, j-1 {
		entries[i], entries[j] = entries[j], entries[i]
	}
	return entries, nil
}
