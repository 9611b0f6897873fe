// Package handler exposes the audit ledger over HTTP: filtered queries,
// replay-based version comparison, and the recent-activity feed.
package handler

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"esgledger/internal/audit"
	dErrors "esgledger/pkg/domain-errors"
	"esgledger/pkg/platform/httputil"
)

//go:generate mockgen -source=handler.go -destination=mocks/audit-mocks.go -package=mocks Ledger,ActivityFeed

// Ledger defines the trail operations the handler needs.
type Ledger interface {
	Query(ctx context.Context, filter audit.Filter) ([]audit.Entry, error)
	History(ctx context.Context, entityType, entityID string) ([]audit.Entry, error)
}

// ActivityFeed returns the most recent entries from the side channel. May
// be nil when the feed is not configured.
type ActivityFeed interface {
	Recent(ctx context.Context, limit int64) ([]audit.Entry, error)
}

// Handler wires audit endpoints to the trail.
type Handler struct {
	ledger Ledger
	feed   ActivityFeed
	logger *slog.Logger
}

func New(ledger Ledger, feed ActivityFeed, logger *slog.Logger) *Handler {
	return &Handler{ledger: ledger, feed: feed, logger: logger}
}

// Register mounts audit endpoints on the router.
func (h *Handler) Register(r chi.Router) {
	r.Get("/audit", h.HandleQuery)
	r.Get("/audit/recent", h.HandleRecent)
	r.Get("/audit/{entityType}/{entityID}/history", h.HandleHistory)
	r.Get("/audit/{entityType}/{entityID}/versions", h.HandleCompareVersions)
}

// HandleQuery handles GET /audit requests. All filter parameters are
// optional and combine conjunctively; results come back newest-first.
func (h *Handler) HandleQuery(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	q := r.URL.Query()

	filter := audit.Filter{
		EntityType: q.Get("entity_type"),
		EntityID:   q.Get("entity_id"),
		SectionID:  q.Get("section_id"),
		OwnerID:    q.Get("owner_id"),
		Action:     audit.Action(q.Get("action")),
	}

	entries, err := h.ledger.Query(ctx, filter)
	if err != nil {
		h.logger.ErrorContext(ctx, "audit query failed", "error", err)
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, entriesResponse(entries))
}

// HandleRecent handles GET /audit/recent requests, served from the Redis
// activity feed.
func (h *Handler) HandleRecent(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	if h.feed == nil {
		httputil.WriteError(w, dErrors.New(dErrors.CodeNotFound, "activity feed is not configured"))
		return
	}

	limit := int64(20)
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || parsed < 1 || parsed > 100 {
			httputil.WriteError(w, dErrors.New(dErrors.CodeValidation, "limit must be between 1 and 100"))
			return
		}
		limit = parsed
	}

	entries, err := h.feed.Recent(ctx, limit)
	if err != nil {
		h.logger.ErrorContext(ctx, "activity feed read failed", "error", err)
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, entriesResponse(entries))
}

// HandleHistory handles GET /audit/{entityType}/{entityID}/history
// requests, returning one entity's entries oldest-first.
func (h *Handler) HandleHistory(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	entries, err := h.ledger.History(ctx, chi.URLParam(r, "entityType"), chi.URLParam(r, "entityID"))
	if err != nil {
		h.logger.ErrorContext(ctx, "audit history failed", "error", err)
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, entriesResponse(entries))
}

// HandleCompareVersions handles GET /audit/{entityType}/{entityID}/versions
// requests: replays the entity's history and diffs the states at the two
// given entry ids.
func (h *Handler) HandleCompareVersions(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	q := r.URL.Query()

	fromID, err := uuid.Parse(q.Get("from"))
	if err != nil {
		httputil.WriteError(w, dErrors.New(dErrors.CodeValidation, "from must be a valid entry id"))
		return
	}
	toID, err := uuid.Parse(q.Get("to"))
	if err != nil {
		httputil.WriteError(w, dErrors.New(dErrors.CodeValidation, "to must be a valid entry id"))
		return
	}

	history, err := h.ledger.History(ctx, chi.URLParam(r, "entityType"), chi.URLParam(r, "entityID"))
	if err != nil {
		h.logger.ErrorContext(ctx, "audit history failed", "error", err)
		httputil.WriteError(w, err)
		return
	}

	comparison, err := audit.ReplayCompare(history, fromID, toID)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, FromComparison(comparison))
}
