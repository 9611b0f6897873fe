package integrity

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"esgledger/internal/audit"
	dErrors "esgledger/pkg/domain-errors"
)

// fakeLoader serves the fakeEntity fixtures from hasher_test.go.
type fakeLoader struct {
	entities map[string]*fakeEntity
	linked   map[string][]string
	saves    int
}

func (l *fakeLoader) Load(_ context.Context, entityID string) (Entity, error) {
	entity, ok := l.entities[entityID]
	if !ok {
		return nil, dErrors.New(dErrors.CodeNotFound, "record not found")
	}
	return entity, nil
}

func (l *fakeLoader) LinkedDecisions(_ context.Context, periodID string) ([]Entity, error) {
	var out []Entity
	for _, id := range l.linked[periodID] {
		out = append(out, l.entities[id])
	}
	return out, nil
}

func (l *fakeLoader) Save(_ context.Context, _ Entity) error {
	l.saves++
	return nil
}

func allowAll(context.Context, string) bool { return true }
func denyAll(context.Context, string) bool  { return false }

func newTestService(t *testing.T, loader *fakeLoader, isAdmin AdminPredicate) (*Service, *audit.Trail) {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	trail := audit.NewTrail(audit.NewInMemoryStore(), logger, nil)
	return NewService(loader, trail, isAdmin, logger, nil), trail
}

func stampedPeriod(id string, fields ...Field) *fakeEntity {
	entity := &fakeEntity{id: id, kind: "period", fields: fields}
	Stamp(entity)
	return entity
}

func stampedDecision(id string, fields ...Field) *fakeEntity {
	entity := &fakeEntity{id: id, kind: "decision", fields: fields}
	Stamp(entity)
	return entity
}

func TestVerify_Match(t *testing.T) {
	period := stampedPeriod("per-1", Field{Name: "Name", Value: "FY2026"})
	loader := &fakeLoader{entities: map[string]*fakeEntity{"per-1": period}}
	service, _ := newTestService(t, loader, allowAll)

	result, err := service.Verify(context.Background(), "per-1")
	require.NoError(t, err)
	assert.True(t, result.Valid)
	assert.Equal(t, StatusValid, result.Status)
	assert.Zero(t, loader.saves, "a clean verify writes nothing")
}

func TestVerify_IgnoresNonHashedState(t *testing.T) {
	period := stampedPeriod("per-1", Field{Name: "Name", Value: "FY2026"})
	// note is not part of the hashable content; changing it must not read
	// as tampering.
	period.note = "rescheduled board review"
	loader := &fakeLoader{entities: map[string]*fakeEntity{"per-1": period}}
	service, _ := newTestService(t, loader, allowAll)

	result, err := service.Verify(context.Background(), "per-1")
	require.NoError(t, err)
	assert.True(t, result.Valid)
	assert.Zero(t, loader.saves)
}

func TestVerify_MismatchSetsWarningForPeriod(t *testing.T) {
	period := stampedPeriod("per-1", Field{Name: "Name", Value: "FY2026"})
	// Out-of-band edit: content changes without a re-stamp.
	period.fields[0].Value = "FY2026 (revised)"
	loader := &fakeLoader{entities: map[string]*fakeEntity{"per-1": period}}
	service, _ := newTestService(t, loader, allowAll)

	result, err := service.Verify(context.Background(), "per-1")
	require.NoError(t, err)
	assert.False(t, result.Valid)
	assert.Equal(t, StatusWarning, result.Status)
	assert.NotEmpty(t, result.Details)
	assert.Equal(t, 1, loader.saves)
}

func TestVerify_MismatchSetsFailedForDecision(t *testing.T) {
	decision := stampedDecision("dec-1", Field{Name: "Outcome", Value: "approved"})
	decision.fields[0].Value = "rejected"
	loader := &fakeLoader{entities: map[string]*fakeEntity{"dec-1": decision}}
	service, _ := newTestService(t, loader, allowAll)

	result, err := service.Verify(context.Background(), "dec-1")
	require.NoError(t, err)
	assert.Equal(t, StatusFailed, result.Status)
}

func TestVerify_MismatchIsIdempotent(t *testing.T) {
	period := stampedPeriod("per-1", Field{Name: "Name", Value: "FY2026"})
	period.fields[0].Value = "tampered"
	loader := &fakeLoader{entities: map[string]*fakeEntity{"per-1": period}}
	service, _ := newTestService(t, loader, allowAll)
	ctx := context.Background()

	first, err := service.Verify(ctx, "per-1")
	require.NoError(t, err)
	second, err := service.Verify(ctx, "per-1")
	require.NoError(t, err)

	assert.Equal(t, first.Status, second.Status)
	assert.Equal(t, first.Details, second.Details)
	assert.Equal(t, 1, loader.saves, "repeated verifies must not rewrite the record")
}

func TestVerify_MatchDoesNotClearWarning(t *testing.T) {
	period := stampedPeriod("per-1", Field{Name: "Name", Value: "FY2026"})
	period.record.Status = StatusWarning
	period.record.WarningDetails = "earlier divergence"
	loader := &fakeLoader{entities: map[string]*fakeEntity{"per-1": period}}
	service, _ := newTestService(t, loader, allowAll)

	result, err := service.Verify(context.Background(), "per-1")
	require.NoError(t, err)
	assert.True(t, result.Valid)
	assert.Equal(t, StatusWarning, result.Status, "clearing a warning requires an override")
}

func TestCanPublish(t *testing.T) {
	period := stampedPeriod("per-1", Field{Name: "Name", Value: "FY2026"})
	clean := stampedDecision("dec-1", Field{Name: "Outcome", Value: "approved"})
	failed := stampedDecision("dec-2", Field{Name: "Outcome", Value: "approved"})
	failed.record.Status = StatusFailed

	loader := &fakeLoader{
		entities: map[string]*fakeEntity{"per-1": period, "dec-1": clean, "dec-2": failed},
		linked:   map[string][]string{"per-1": {"dec-1", "dec-2"}},
	}
	service, _ := newTestService(t, loader, allowAll)
	ctx := context.Background()

	result, err := service.CanPublish(ctx, "per-1")
	require.NoError(t, err)
	assert.False(t, result.CanPublish)
	assert.Equal(t, []string{"dec-2"}, result.FailingIDs)

	failed.record.Status = StatusValid
	result, err = service.CanPublish(ctx, "per-1")
	require.NoError(t, err)
	assert.True(t, result.CanPublish)
	assert.Empty(t, result.FailingIDs)
}

func TestOverride_RequiresAdmin(t *testing.T) {
	period := stampedPeriod("per-1", Field{Name: "Name", Value: "FY2026"})
	loader := &fakeLoader{entities: map[string]*fakeEntity{"per-1": period}}
	service, _ := newTestService(t, loader, denyAll)

	_, err := service.Override(context.Background(), "per-1", "user-1", "looks fine")
	assert.True(t, dErrors.Is(err, dErrors.CodeForbidden))
	assert.Zero(t, loader.saves)
}

func TestOverride_RequiresJustification(t *testing.T) {
	period := stampedPeriod("per-1", Field{Name: "Name", Value: "FY2026"})
	loader := &fakeLoader{entities: map[string]*fakeEntity{"per-1": period}}
	service, _ := newTestService(t, loader, allowAll)

	_, err := service.Override(context.Background(), "per-1", "admin-1", "   ")
	assert.True(t, dErrors.Is(err, dErrors.CodeValidation))
}

func TestOverride_ClearsWarningAndReattests(t *testing.T) {
	period := stampedPeriod("per-1", Field{Name: "Name", Value: "FY2026"})
	period.fields[0].Value = "FY2026 (restated)"
	loader := &fakeLoader{entities: map[string]*fakeEntity{"per-1": period}}
	service, _ := newTestService(t, loader, allowAll)
	ctx := context.Background()

	_, err := service.Verify(ctx, "per-1")
	require.NoError(t, err)
	require.Equal(t, StatusWarning, period.record.Status)

	result, err := service.Override(ctx, "per-1", "admin-1", "restatement approved by audit committee")
	require.NoError(t, err)
	assert.True(t, result.Valid)
	assert.Equal(t, StatusValid, period.record.Status)
	assert.Empty(t, period.record.WarningDetails)
	assert.Equal(t, "admin-1", period.record.OverrideBy)
	assert.Equal(t, "restatement approved by audit committee", period.record.OverrideJustification)

	// The hash now covers the current content, so the next verify passes.
	after, err := service.Verify(ctx, "per-1")
	require.NoError(t, err)
	assert.True(t, after.Valid)
	assert.Equal(t, StatusValid, after.Status)
}

func TestOverride_AppendsExactlyOneEntry(t *testing.T) {
	period := stampedPeriod("per-1", Field{Name: "Name", Value: "FY2026"})
	period.record.Status = StatusWarning
	loader := &fakeLoader{entities: map[string]*fakeEntity{"per-1": period}}
	service, trail := newTestService(t, loader, allowAll)
	ctx := context.Background()

	_, err := service.Override(ctx, "per-1", "admin-1", "reviewed and accepted")
	require.NoError(t, err)

	entries, err := trail.Query(ctx, audit.Filter{EntityType: "period", EntityID: "per-1"})
	require.NoError(t, err)
	require.Len(t, entries, 1)

	entry := entries[0]
	assert.Equal(t, audit.ActionOverride, entry.Action)
	assert.Equal(t, "admin-1", entry.UserID)
	assert.Equal(t, "reviewed and accepted", entry.ChangeNote)
	require.Len(t, entry.Changes, 1)
	assert.Equal(t, "IntegrityStatus", entry.Changes[0].Field)
	require.NotNil(t, entry.Changes[0].OldValue)
	assert.Equal(t, string(StatusWarning), *entry.Changes[0].OldValue)
	assert.Equal(t, string(StatusValid), entry.Changes[0].NewValue)
}
