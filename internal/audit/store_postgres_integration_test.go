//go:build integration

package audit_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"

	"esgledger/internal/audit"
	"esgledger/pkg/testutil/containers"
)

type PostgresStoreSuite struct {
	suite.Suite
	postgres *containers.PostgresContainer
	store    *audit.PostgresStore
}

func TestPostgresStoreSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	suite.Run(t, new(PostgresStoreSuite))
}

func (s *PostgresStoreSuite) SetupSuite() {
	s.postgres = containers.NewPostgresContainer(s.T())
	s.store = audit.NewPostgresStore(s.postgres.Pool)
}

func (s *PostgresStoreSuite) SetupTest() {
	s.Require().NoError(s.postgres.TruncateTables(context.Background(), "audit_entries"))
}

func (s *PostgresStoreSuite) newEntry(action audit.Action, entityType, entityID string) audit.Entry {
	old := "before"
	return audit.Entry{
		ID:         uuid.New(),
		Timestamp:  time.Now().UTC().Truncate(time.Microsecond),
		Action:     action,
		EntityType: entityType,
		EntityID:   entityID,
		UserID:     "user-1",
		Changes: []audit.FieldChange{
			{Field: "Narrative", OldValue: &old, NewValue: "after"},
		},
	}
}

func (s *PostgresStoreSuite) TestAppendAndQueryRoundTrip() {
	ctx := context.Background()
	entry := s.newEntry(audit.ActionUpdate, "section", "sec-1")
	s.Require().NoError(s.store.Append(ctx, entry))

	got, err := s.store.Query(ctx, audit.Filter{EntityType: "section", EntityID: "sec-1"})
	s.Require().NoError(err)
	s.Require().Len(got, 1)

	s.Equal(entry.ID, got[0].ID)
	s.Equal(entry.Action, got[0].Action)
	s.Equal(entry.UserID, got[0].UserID)
	s.Require().Len(got[0].Changes, 1)
	s.Require().NotNil(got[0].Changes[0].OldValue)
	s.Equal("before", *got[0].Changes[0].OldValue)
	s.Equal("after", got[0].Changes[0].NewValue)
}

func (s *PostgresStoreSuite) TestQueryNewestFirstBySequence() {
	ctx := context.Background()

	// Identical timestamps: ordering must come from append order, not time.
	ts := time.Now().UTC().Truncate(time.Microsecond)
	first := s.newEntry(audit.ActionCreate, "period", "per-1")
	first.Timestamp = ts
	second := s.newEntry(audit.ActionUpdate, "period", "per-1")
	second.Timestamp = ts

	s.Require().NoError(s.store.Append(ctx, first))
	s.Require().NoError(s.store.Append(ctx, second))

	got, err := s.store.Query(ctx, audit.Filter{EntityID: "per-1"})
	s.Require().NoError(err)
	s.Require().Len(got, 2)
	s.Equal(second.ID, got[0].ID)
	s.Equal(first.ID, got[1].ID)
}

func (s *PostgresStoreSuite) TestFilterConjunction() {
	ctx := context.Background()

	matching := s.newEntry(audit.ActionUpdate, "section", "sec-1")
	matching.SectionID = "sec-1"
	matching.OwnerID = "user-1"
	other := s.newEntry(audit.ActionUpdate, "section", "sec-2")
	other.SectionID = "sec-2"
	other.OwnerID = "user-2"

	s.Require().NoError(s.store.Append(ctx, matching))
	s.Require().NoError(s.store.Append(ctx, other))

	got, err := s.store.Query(ctx, audit.Filter{
		EntityType: "section",
		SectionID:  "sec-1",
		OwnerID:    "user-1",
		Action:     audit.ActionUpdate,
	})
	s.Require().NoError(err)
	s.Require().Len(got, 1)
	s.Equal(matching.ID, got[0].ID)
}
