//go:build integration

package audit_test

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"

	"esgledger/internal/audit"
	"esgledger/internal/platform/config"
	"esgledger/internal/platform/redis"
	"esgledger/pkg/testutil/containers"
)

type FeedSuite struct {
	suite.Suite
	redis  *containers.RedisContainer
	client *redis.Client
}

func TestFeedSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	suite.Run(t, new(FeedSuite))
}

func (s *FeedSuite) SetupSuite() {
	s.redis = containers.NewRedisContainer(s.T())

	client, err := redis.New(config.RedisConfig{URL: s.redis.URL})
	s.Require().NoError(err)
	s.Require().NotNil(client)
	s.client = client
}

func (s *FeedSuite) SetupTest() {
	s.Require().NoError(s.redis.FlushAll(context.Background()))
}

func (s *FeedSuite) newFeed(max int64) *audit.Feed {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return audit.NewFeed(s.client, max, logger, nil)
}

func (s *FeedSuite) submitEntry(feed *audit.Feed, entityID string) audit.Entry {
	entry := audit.Entry{
		ID:         uuid.New(),
		Timestamp:  time.Now().UTC().Truncate(time.Millisecond),
		Action:     audit.ActionUpdate,
		EntityType: "section",
		EntityID:   entityID,
		UserID:     "user-1",
		Changes: []audit.FieldChange{
			{Field: "Narrative", NewValue: "updated narrative"},
		},
	}
	feed.Submit(context.Background(), entry)
	return entry
}

func (s *FeedSuite) TestSubmitAndRecentRoundTrip() {
	feed := s.newFeed(100)
	entry := s.submitEntry(feed, "sec-1")

	got, err := feed.Recent(context.Background(), 10)
	s.Require().NoError(err)
	s.Require().Len(got, 1)

	s.Equal(entry.ID, got[0].ID)
	s.Equal(entry.Action, got[0].Action)
	s.Equal(entry.EntityID, got[0].EntityID)
	s.Require().Len(got[0].Changes, 1)
	s.Equal("updated narrative", got[0].Changes[0].NewValue)
	s.Nil(got[0].Changes[0].OldValue)
}

func (s *FeedSuite) TestRecentNewestFirst() {
	feed := s.newFeed(100)
	first := s.submitEntry(feed, "sec-1")
	second := s.submitEntry(feed, "sec-2")

	got, err := feed.Recent(context.Background(), 10)
	s.Require().NoError(err)
	s.Require().Len(got, 2)
	s.Equal(second.ID, got[0].ID)
	s.Equal(first.ID, got[1].ID)
}

func (s *FeedSuite) TestCapTrimsOldestEntries() {
	feed := s.newFeed(3)
	s.submitEntry(feed, "sec-1")
	s.submitEntry(feed, "sec-2")
	third := s.submitEntry(feed, "sec-3")
	fourth := s.submitEntry(feed, "sec-4")

	// Limit above the cap clamps to the cap.
	got, err := feed.Recent(context.Background(), 50)
	s.Require().NoError(err)
	s.Require().Len(got, 3)
	s.Equal(fourth.ID, got[0].ID)
	s.Equal(third.ID, got[1].ID)
	s.Equal("sec-2", got[2].EntityID)
}
