package audit

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type captureSink struct {
	entries []Entry
}

func (c *captureSink) Submit(_ context.Context, entry Entry) {
	c.entries = append(c.entries, entry)
}

func newTestTrail(sinks ...Sink) *Trail {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewTrail(NewInMemoryStore(), logger, nil, sinks...)
}

func TestTrail_AppendAssignsIDAndTimestamp(t *testing.T) {
	trail := newTestTrail()

	stored, err := trail.Append(context.Background(), Entry{
		Action:     ActionCreate,
		EntityType: "period",
		EntityID:   "per-1",
	})
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, stored.ID)
	assert.False(t, stored.Timestamp.IsZero())
}

func TestTrail_AppendKeepsPinnedID(t *testing.T) {
	trail := newTestTrail()
	pinned := uuid.New()

	stored, err := trail.Append(context.Background(), Entry{
		ID:         pinned,
		Action:     ActionCreate,
		EntityType: "period",
		EntityID:   "per-1",
	})
	require.NoError(t, err)
	assert.Equal(t, pinned, stored.ID)
}

func TestTrail_AppendFansOutToSinks(t *testing.T) {
	first := &captureSink{}
	second := &captureSink{}
	trail := newTestTrail(first, second)

	stored, err := trail.Append(context.Background(), Entry{
		Action:     ActionUpdate,
		EntityType: "section",
		EntityID:   "sec-1",
	})
	require.NoError(t, err)

	require.Len(t, first.entries, 1)
	require.Len(t, second.entries, 1)
	assert.Equal(t, stored.ID, first.entries[0].ID)
}

func TestTrail_HistoryOldestFirst(t *testing.T) {
	trail := newTestTrail()
	ctx := context.Background()

	created, err := trail.Append(ctx, Entry{Action: ActionCreate, EntityType: "section", EntityID: "sec-1"})
	require.NoError(t, err)
	updated, err := trail.Append(ctx, Entry{Action: ActionUpdate, EntityType: "section", EntityID: "sec-1"})
	require.NoError(t, err)
	_, err = trail.Append(ctx, Entry{Action: ActionCreate, EntityType: "section", EntityID: "sec-2"})
	require.NoError(t, err)

	history, err := trail.History(ctx, "section", "sec-1")
	require.NoError(t, err)
	require.Len(t, history, 2)
	assert.Equal(t, created.ID, history[0].ID)
	assert.Equal(t, updated.ID, history[1].ID)
}

// A full history replay must land on the entity's live field values.
func TestTrail_ReplaySoundness(t *testing.T) {
	trail := newTestTrail()
	ctx := context.Background()

	live := map[string]string{}
	apply := func(field, value string) []FieldChange {
		change := FieldChange{Field: field, NewValue: value}
		if old, ok := live[field]; ok {
			change.OldValue = &old
		}
		live[field] = value
		return []FieldChange{change}
	}

	_, err := trail.Append(ctx, Entry{Action: ActionCreate, EntityType: "decision", EntityID: "dec-1", Changes: apply("Outcome", "approved")})
	require.NoError(t, err)
	_, err = trail.Append(ctx, Entry{Action: ActionUpdate, EntityType: "decision", EntityID: "dec-1", Changes: apply("Rationale", "meets threshold")})
	require.NoError(t, err)
	last, err := trail.Append(ctx, Entry{Action: ActionUpdate, EntityType: "decision", EntityID: "dec-1", Changes: apply("Outcome", "rejected")})
	require.NoError(t, err)

	history, err := trail.History(ctx, "decision", "dec-1")
	require.NoError(t, err)

	state, err := ReplayStateAt(history, last.ID)
	require.NoError(t, err)
	assert.Equal(t, live, state)
}
