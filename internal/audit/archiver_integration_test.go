//go:build integration

package audit_test

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/twmb/franz-go/pkg/kgo"

	"esgledger/internal/audit"
	"esgledger/internal/platform/config"
	"esgledger/pkg/testutil/containers"
)

func TestArchiver_ProducesEntriesToTopic(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	broker := containers.NewRedpandaContainer(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	cfg := config.KafkaConfig{Brokers: []string{broker.Broker}, Topic: "audit-archive"}
	archiver, err := audit.NewArchiver(cfg, logger, nil)
	require.NoError(t, err)
	require.NotNil(t, archiver)

	runCtx, cancel := context.WithCancel(context.Background())
	runErr := make(chan error, 1)
	go func() {
		runErr <- archiver.Run(runCtx)
	}()
	defer func() {
		cancel()
		// Cancellation is a clean stop, never a shutdown error.
		require.NoError(t, <-runErr)
	}()

	old := "draft"
	entry := audit.Entry{
		ID:         uuid.New(),
		Timestamp:  time.Now().UTC(),
		Action:     audit.ActionUpdate,
		EntityType: "period",
		EntityID:   "per-1",
		UserID:     "user-1",
		ChangeNote: "published annual report",
		Changes: []audit.FieldChange{
			{Field: "Status", OldValue: &old, NewValue: "published"},
		},
	}
	archiver.Submit(context.Background(), entry)

	consumer, err := kgo.NewClient(
		kgo.SeedBrokers(broker.Broker),
		kgo.ConsumeTopics("audit-archive"),
		kgo.ConsumeResetOffset(kgo.NewOffset().AtStart()),
	)
	require.NoError(t, err)
	defer consumer.Close()

	pollCtx, pollCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer pollCancel()

	fetches := consumer.PollFetches(pollCtx)
	require.NoError(t, fetches.Err())

	records := fetches.Records()
	require.Len(t, records, 1)
	require.Equal(t, "period/per-1", string(records[0].Key))

	var payload struct {
		ID         string              `json:"id"`
		Action     string              `json:"action"`
		EntityType string              `json:"entity_type"`
		EntityID   string              `json:"entity_id"`
		ChangeNote string              `json:"change_note"`
		Changes    []audit.FieldChange `json:"changes"`
	}
	require.NoError(t, json.Unmarshal(records[0].Value, &payload))
	require.Equal(t, entry.ID.String(), payload.ID)
	require.Equal(t, "update", payload.Action)
	require.Equal(t, "period", payload.EntityType)
	require.Equal(t, "published annual report", payload.ChangeNote)
	require.Len(t, payload.Changes, 1)
	require.Equal(t, "Status", payload.Changes[0].Field)
	require.Equal(t, "published", payload.Changes[0].NewValue)
}
