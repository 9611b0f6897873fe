package handler

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"esgledger/internal/audit"
	"esgledger/internal/audit/handler/mocks"
)

func newTestHandler(t *testing.T, feed ActivityFeed) (http.Handler, *mocks.MockLedger) {
	t.Helper()
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)
	mockLedger := mocks.NewMockLedger(ctrl)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	handler := New(mockLedger, feed, logger)
	r := chi.NewRouter()
	handler.Register(r)
	return r, mockLedger
}

func TestHandleQuery(t *testing.T) {
	router, mockLedger := newTestHandler(t, nil)

	mockLedger.EXPECT().Query(gomock.Any(), audit.Filter{
		EntityType: "section",
		EntityID:   "sec-1",
		Action:     audit.ActionUpdate,
	}).Return([]audit.Entry{
		{ID: uuid.New(), Action: audit.ActionUpdate, EntityType: "section", EntityID: "sec-1"},
	}, nil)

	req := httptest.NewRequest(http.MethodGet, "/audit?entity_type=section&entity_id=sec-1&action=update", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp EntriesResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 1, resp.Count)
	assert.Equal(t, "update", resp.Entries[0].Action)
}

func TestHandleRecent(t *testing.T) {
	t.Run("feed configured", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		t.Cleanup(ctrl.Finish)
		mockFeed := mocks.NewMockActivityFeed(ctrl)
		router, _ := newTestHandler(t, mockFeed)

		mockFeed.EXPECT().Recent(gomock.Any(), int64(5)).Return([]audit.Entry{
			{ID: uuid.New(), Action: audit.ActionCreate, EntityType: "period"},
		}, nil)

		req := httptest.NewRequest(http.MethodGet, "/audit/recent?limit=5", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("feed missing", func(t *testing.T) {
		router, _ := newTestHandler(t, nil)

		req := httptest.NewRequest(http.MethodGet, "/audit/recent", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("limit out of range", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		t.Cleanup(ctrl.Finish)
		router, _ := newTestHandler(t, mocks.NewMockActivityFeed(ctrl))

		req := httptest.NewRequest(http.MethodGet, "/audit/recent?limit=5000", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	})
}

func TestHandleCompareVersions(t *testing.T) {
	fromID := uuid.New()
	toID := uuid.New()
	history := []audit.Entry{
		{ID: fromID, Action: audit.ActionCreate, Changes: []audit.FieldChange{
			{Field: "Outcome", NewValue: "approved"},
		}},
		{ID: toID, Action: audit.ActionUpdate, Changes: []audit.FieldChange{
			{Field: "Outcome", NewValue: "rejected"},
		}},
	}

	t.Run("success", func(t *testing.T) {
		router, mockLedger := newTestHandler(t, nil)
		mockLedger.EXPECT().History(gomock.Any(), "decision", "dec-1").Return(history, nil)

		url := fmt.Sprintf("/audit/decision/dec-1/versions?from=%s&to=%s", fromID, toID)
		req := httptest.NewRequest(http.MethodGet, url, nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		var resp ComparisonResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		require.Len(t, resp.Fields, 1)
		assert.Equal(t, "Outcome", resp.Fields[0].Field)
		require.NotNil(t, resp.Fields[0].After)
		assert.Equal(t, "rejected", *resp.Fields[0].After)
	})

	t.Run("invalid entry id", func(t *testing.T) {
		router, _ := newTestHandler(t, nil)

		req := httptest.NewRequest(http.MethodGet, "/audit/decision/dec-1/versions?from=nope&to=also-nope", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	})

	t.Run("reversed order", func(t *testing.T) {
		router, mockLedger := newTestHandler(t, nil)
		mockLedger.EXPECT().History(gomock.Any(), "decision", "dec-1").Return(history, nil)

		url := fmt.Sprintf("/audit/decision/dec-1/versions?from=%s&to=%s", toID, fromID)
		req := httptest.NewRequest(http.MethodGet, url, nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	})
}
