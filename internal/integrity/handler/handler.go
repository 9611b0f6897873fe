// Package handler exposes tamper-evidence operations over HTTP: on-demand
// verification, the publish gate, and the audited admin override.
package handler

import (
	"context"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"esgledger/internal/integrity"
	dErrors "esgledger/pkg/domain-errors"
	"esgledger/pkg/platform/httputil"
	"esgledger/pkg/requestcontext"
)

//go:generate mockgen -source=handler.go -destination=mocks/integrity-mocks.go -package=mocks Service

// Service defines the interface for integrity operations.
type Service interface {
	Verify(ctx context.Context, entityID string) (integrity.VerifyResult, error)
	CanPublish(ctx context.Context, periodID string) (integrity.GateResult, error)
	Override(ctx context.Context, entityID, actorID, justification string) (integrity.VerifyResult, error)
}

// Handler wires integrity endpoints to the integrity service.
type Handler struct {
	service Service
	logger  *slog.Logger
}

func New(service Service, logger *slog.Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

// Register mounts integrity endpoints on the router.
func (h *Handler) Register(r chi.Router) {
	r.Post("/integrity/{entityID}/verify", h.HandleVerify)
	r.Post("/integrity/{entityID}/override", h.HandleOverride)
	r.Get("/periods/{id}/publish-gate", h.HandlePublishGate)
}

// HandleVerify handles POST /integrity/{entityID}/verify requests.
func (h *Handler) HandleVerify(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	entityID := chi.URLParam(r, "entityID")

	result, err := h.service.Verify(ctx, entityID)
	if err != nil {
		h.logger.ErrorContext(ctx, "integrity verification failed",
			"entity_id", entityID,
			"error", err,
		)
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, FromVerifyResult(result))
}

// HandleOverride handles POST /integrity/{entityID}/override requests. The
// actor comes from the authenticated request context; the service enforces
// the admin check and records the override in the ledger.
func (h *Handler) HandleOverride(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	start := time.Now()
	entityID := chi.URLParam(r, "entityID")

	actorID := requestcontext.UserID(ctx)
	if actorID == "" {
		httputil.WriteError(w, dErrors.New(dErrors.CodeUnauthorized, "authentication required"))
		return
	}

	req, ok := httputil.Decode[OverrideRequest](w, r, h.logger)
	if !ok {
		return
	}
	if err := req.Validate(); err != nil {
		httputil.WriteError(w, err)
		return
	}

	result, err := h.service.Override(ctx, entityID, actorID, req.Justification)
	if err != nil {
		h.logger.ErrorContext(ctx, "integrity override failed",
			"entity_id", entityID,
			"actor_id", actorID,
			"error", err,
		)
		httputil.WriteError(w, err)
		return
	}

	h.logger.InfoContext(ctx, "integrity warning overridden",
		"entity_id", entityID,
		"actor_id", actorID,
		"duration_ms", time.Since(start).Milliseconds(),
	)
	httputil.WriteJSON(w, http.StatusOK, FromVerifyResult(result))
}

// HandlePublishGate handles GET /periods/{id}/publish-gate requests.
func (h *Handler) HandlePublishGate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	periodID := chi.URLParam(r, "id")

	result, err := h.service.CanPublish(ctx, periodID)
	if err != nil {
		h.logger.ErrorContext(ctx, "publish gate check failed",
			"period_id", periodID,
			"error", err,
		)
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, FromGateResult(result))
}

// OverrideRequest is the HTTP request body for POST /integrity/{entityID}/override.
type OverrideRequest struct {
	Justification string `json:"justification"`
}

// Validate checks the override request. The service repeats the blank
// check; validating here keeps garbage out of the logs.
func (r *OverrideRequest) Validate() error {
	if strings.TrimSpace(r.Justification) == "" {
		return dErrors.New(dErrors.CodeValidation, "justification is required")
	}
	return nil
}
