package audit

import (
	"context"
	"encoding/json"
	"log/slog"

	"esgledger/internal/audit/metrics"
	"esgledger/internal/platform/redis"
)

const feedKey = "audit:recent"

// Feed maintains a capped recent-activity list in Redis for the dashboard
// timeline. Like the archiver it is best-effort: a Redis outage never fails
// an append, the feed just goes stale until Redis recovers.
type Feed struct {
	client  *redis.Client
	max     int64
	logger  *slog.Logger
	metrics *metrics.Metrics
}

// NewFeed wraps the platform Redis client. Returns nil when Redis is not
// configured so main can wire sinks unconditionally.
func NewFeed(client *redis.Client, max int64, logger *slog.Logger, m *metrics.Metrics) *Feed {
	if client == nil {
		return nil
	}
	if max <= 0 {
		max = 100
	}
	return &Feed{client: client, max: max, logger: logger, metrics: m}
}

// Submit pushes the entry onto the feed and trims it to the cap.
func (f *Feed) Submit(ctx context.Context, entry Entry) {
	payload, err := json.Marshal(archivePayload(entry))
	if err != nil {
		f.logger.Error("marshal feed entry", "entry_id", entry.ID, "error", err)
		return
	}

	if err := f.client.PushCapped(ctx, feedKey, payload, f.max); err != nil {
		if f.metrics != nil {
			f.metrics.FeedFailures.Inc()
		}
		f.logger.Warn("push audit feed entry", "entry_id", entry.ID, "error", err)
	}
}

// Recent returns up to limit most recent entries, newest-first.
func (f *Feed) Recent(ctx context.Context, limit int64) ([]Entry, error) {
	if limit <= 0 || limit > f.max {
		limit = f.max
	}

	raw, err := f.client.RangeHead(ctx, feedKey, limit)
	if err != nil {
		return nil, err
	}

	entries := []Entry{}
	for _, item := range raw {
		var envelope archiveEnvelope
		if err := json.Unmarshal([]byte(item), &envelope); err != nil {
			f.logger.Warn("skip malformed feed entry", "error", err)
			continue
		}
		entries = append(entries, envelope.toEntry())
	}
	return entries, nil
}
