package audit

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/twmb/franz-go/pkg/kadm"
	"github.com/twmb/franz-go/pkg/kgo"

	"esgledger/internal/audit/metrics"
	"esgledger/internal/platform/config"
)

// Archiver mirrors appended entries to a Kafka topic so the external
// retention pipeline owns long-term storage and purging. It is a
// best-effort sink: the ledger append has already committed by the time an
// entry reaches the archiver, and a full inbox or broker outage only drops
// the mirror copy, never the ledger entry.
type Archiver struct {
	client  *kgo.Client
	topic   string
	inbox   chan Entry
	logger  *slog.Logger
	metrics *metrics.Metrics
}

// NewArchiver connects to the brokers and ensures the audit topic exists.
// Returns nil if no brokers are configured.
func NewArchiver(cfg config.KafkaConfig, logger *slog.Logger, m *metrics.Metrics) (*Archiver, error) {
	if len(cfg.Brokers) == 0 {
		return nil, nil
	}

	client, err := kgo.NewClient(
		kgo.SeedBrokers(cfg.Brokers...),
		kgo.DefaultProduceTopic(cfg.Topic),
	)
	if err != nil {
		return nil, fmt.Errorf("connect kafka: %w", err)
	}

	admin := kadm.NewClient(client)
	ctx := context.Background()
	if _, err := admin.CreateTopic(ctx, 1, 1, nil, cfg.Topic); err != nil {
		// Topic may already exist; anything else surfaces on produce.
		logger.Debug("create audit topic", "topic", cfg.Topic, "result", err)
	}

	return &Archiver{
		client:  client,
		topic:   cfg.Topic,
		inbox:   make(chan Entry, 256),
		logger:  logger,
		metrics: m,
	}, nil
}

// Submit hands an entry to the archiver without blocking the request path.
func (a *Archiver) Submit(_ context.Context, entry Entry) {
	select {
	case a.inbox <- entry:
	default:
		if a.metrics != nil {
			a.metrics.ArchiveFailures.Inc()
		}
		a.logger.Warn("archiver inbox full, dropping mirror copy", "entry_id", entry.ID)
	}
}

// Run consumes the inbox and produces entries to Kafka until the context is
// cancelled. Cancellation is the normal way to stop the archiver and is not
// an error.
func (a *Archiver) Run(ctx context.Context) error {
	defer a.client.Close()
	for {
		select {
		case <-ctx.Done():
			return nil
		case entry := <-a.inbox:
			payload, err := json.Marshal(archivePayload(entry))
			if err != nil {
				a.logger.Error("marshal archive payload", "entry_id", entry.ID, "error", err)
				continue
			}
			record := &kgo.Record{
				Topic: a.topic,
				Key:   []byte(entry.EntityType + "/" + entry.EntityID),
				Value: payload,
			}
			a.client.Produce(ctx, record, func(_ *kgo.Record, err error) {
				if err != nil {
					if a.metrics != nil {
						a.metrics.ArchiveFailures.Inc()
					}
					a.logger.Error("produce audit entry", "entry_id", entry.ID, "error", err)
				}
			})
		}
	}
}

type archiveEnvelope struct {
	ID         string        `json:"id"`
	Timestamp  string        `json:"timestamp"`
	Action     string        `json:"action"`
	EntityType string        `json:"entity_type"`
	EntityID   string        `json:"entity_id"`
	UserID     string        `json:"user_id,omitempty"`
	UserName   string        `json:"user_name,omitempty"`
	ChangeNote string        `json:"change_note,omitempty"`
	Changes    []FieldChange `json:"changes,omitempty"`
	SectionID  string        `json:"section_id,omitempty"`
	OwnerID    string        `json:"owner_id,omitempty"`
}

func (e archiveEnvelope) toEntry() Entry {
	entry := Entry{
		Action:     Action(e.Action),
		EntityType: e.EntityType,
		EntityID:   e.EntityID,
		UserID:     e.UserID,
		UserName:   e.UserName,
		ChangeNote: e.ChangeNote,
		Changes:    e.Changes,
		SectionID:  e.SectionID,
		OwnerID:    e.OwnerID,
	}
	if id, err := uuid.Parse(e.ID); err == nil {
		entry.ID = id
	}
	if ts, err := time.Parse(time.RFC3339Nano, e.Timestamp); err == nil {
		entry.Timestamp = ts
	}
	return entry
}

func archivePayload(entry Entry) archiveEnvelope {
	return archiveEnvelope{
		ID:         entry.ID.String(),
		Timestamp:  entry.Timestamp.UTC().Format(time.RFC3339Nano),
		Action:     string(entry.Action),
		EntityType: entry.EntityType,
		EntityID:   entry.EntityID,
		UserID:     entry.UserID,
		UserName:   entry.UserName,
		ChangeNote: entry.ChangeNote,
		Changes:    entry.Changes,
		SectionID:  entry.SectionID,
		OwnerID:    entry.OwnerID,
	}
}
