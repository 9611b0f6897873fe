// Package handler exposes the disclosure aggregates over HTTP. Every
// mutation flows through the service so change detection, integrity
// stamping, and the audit trail stay on the write path.
package handler

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"esgledger/internal/disclosure"
	"esgledger/internal/textdiff"
	"esgledger/pkg/platform/httputil"
	"esgledger/pkg/requestcontext"
)

//go:generate mockgen -source=handler.go -destination=mocks/disclosure-mocks.go -package=mocks Service

// Service defines the interface for disclosure operations.
type Service interface {
	CreatePeriod(ctx context.Context, input disclosure.PeriodInput) (*disclosure.Period, error)
	GetPeriod(ctx context.Context, id string) (*disclosure.Period, error)
	UpdatePeriod(ctx context.Context, id string, input disclosure.PeriodInput) (*disclosure.Period, error)
	RolloverPeriod(ctx context.Context, sourcePeriodID string, input disclosure.PeriodInput) (*disclosure.Period, error)

	CreateSection(ctx context.Context, input disclosure.SectionInput) (*disclosure.Section, error)
	GetSection(ctx context.Context, id string) (*disclosure.Section, error)
	UpdateSection(ctx context.Context, id string, input disclosure.SectionInput) (*disclosure.Section, error)
	SectionsByPeriod(ctx context.Context, periodID string) ([]*disclosure.Section, error)

	UpsertDataPoint(ctx context.Context, input disclosure.DataPointInput) (*disclosure.DataPoint, error)

	CreateDecision(ctx context.Context, input disclosure.DecisionInput) (*disclosure.Decision, error)
	GetDecision(ctx context.Context, id string) (*disclosure.Decision, error)
	UpdateDecision(ctx context.Context, id string, input disclosure.DecisionInput) (*disclosure.Decision, error)

	DraftStatus(ctx context.Context, sectionID string) (textdiff.DraftStatus, error)
	CompareNarrative(ctx context.Context, sectionID, priorPeriodID string) (*disclosure.NarrativeComparison, error)
}

// Handler wires disclosure endpoints to the disclosure service.
type Handler struct {
	service Service
	logger  *slog.Logger
}

// New constructs a disclosure handler with its dependencies.
func New(service Service, logger *slog.Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

// Register mounts disclosure endpoints on the router.
func (h *Handler) Register(r chi.Router) {
	r.Post("/periods", h.HandleCreatePeriod)
	r.Get("/periods/{id}", h.HandleGetPeriod)
	r.Put("/periods/{id}", h.HandleUpdatePeriod)
	r.Post("/periods/{id}/rollover", h.HandleRollover)
	r.Get("/periods/{id}/sections", h.HandleSectionsByPeriod)

	r.Post("/sections", h.HandleCreateSection)
	r.Get("/sections/{id}", h.HandleGetSection)
	r.Put("/sections/{id}", h.HandleUpdateSection)
	r.Get("/sections/{id}/draft-status", h.HandleDraftStatus)
	r.Get("/sections/{id}/narrative-diff", h.HandleNarrativeDiff)

	r.Put("/data-points", h.HandleUpsertDataPoint)

	r.Post("/decisions", h.HandleCreateDecision)
	r.Get("/decisions/{id}", h.HandleGetDecision)
	r.Put("/decisions/{id}", h.HandleUpdateDecision)
}

// HandleCreatePeriod handles POST /periods requests.
func (h *Handler) HandleCreatePeriod(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	req, ok := httputil.Decode[PeriodRequest](w, r, h.logger)
	if !ok {
		return
	}
	if err := req.Validate(); err != nil {
		httputil.WriteError(w, err)
		return
	}

	period, err := h.service.CreatePeriod(ctx, req.ToInput())
	if err != nil {
		h.logger.ErrorContext(ctx, "period creation failed", "error", err)
		httputil.WriteError(w, err)
		return
	}

	h.logger.InfoContext(ctx, "period created",
		"period_id", period.ID,
		"user_id", requestcontext.UserID(ctx),
	)
	httputil.WriteJSON(w, http.StatusCreated, FromPeriod(period))
}

// HandleGetPeriod handles GET /periods/{id} requests.
func (h *Handler) HandleGetPeriod(w http.ResponseWriter, r *http.Request) {
	period, err := h.service.GetPeriod(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, FromPeriod(period))
}

// HandleUpdatePeriod handles PUT /periods/{id} requests.
func (h *Handler) HandleUpdatePeriod(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	periodID := chi.URLParam(r, "id")

	req, ok := httputil.Decode[PeriodRequest](w, r, h.logger)
	if !ok {
		return
	}
	if err := req.Validate(); err != nil {
		httputil.WriteError(w, err)
		return
	}

	period, err := h.service.UpdatePeriod(ctx, periodID, req.ToInput())
	if err != nil {
		h.logger.ErrorContext(ctx, "period update failed",
			"period_id", periodID,
			"error", err,
		)
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, FromPeriod(period))
}

// HandleRollover handles POST /periods/{id}/rollover requests. The path id
// is the source period; the body describes the new one.
func (h *Handler) HandleRollover(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	start := time.Now()
	sourceID := chi.URLParam(r, "id")

	req, ok := httputil.Decode[PeriodRequest](w, r, h.logger)
	if !ok {
		return
	}
	if err := req.Validate(); err != nil {
		httputil.WriteError(w, err)
		return
	}

	period, err := h.service.RolloverPeriod(ctx, sourceID, req.ToInput())
	if err != nil {
		h.logger.ErrorContext(ctx, "period rollover failed",
			"source_period_id", sourceID,
			"error", err,
		)
		httputil.WriteError(w, err)
		return
	}

	h.logger.InfoContext(ctx, "period rollover completed",
		"source_period_id", sourceID,
		"period_id", period.ID,
		"duration_ms", time.Since(start).Milliseconds(),
	)
	httputil.WriteJSON(w, http.StatusCreated, FromPeriod(period))
}

// HandleSectionsByPeriod handles GET /periods/{id}/sections requests.
func (h *Handler) HandleSectionsByPeriod(w http.ResponseWriter, r *http.Request) {
	sections, err := h.service.SectionsByPeriod(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	out := SectionsResponse{Sections: make([]SectionResponse, 0, len(sections))}
	for _, section := range sections {
		out.Sections = append(out.Sections, FromSection(section))
	}
	out.Count = len(out.Sections)
	httputil.WriteJSON(w, http.StatusOK, out)
}

// HandleCreateSection handles POST /sections requests.
func (h *Handler) HandleCreateSection(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	req, ok := httputil.Decode[SectionRequest](w, r, h.logger)
	if !ok {
		return
	}
	if err := req.Validate(true); err != nil {
		httputil.WriteError(w, err)
		return
	}

	section, err := h.service.CreateSection(ctx, req.ToInput())
	if err != nil {
		h.logger.ErrorContext(ctx, "section creation failed",
			"period_id", req.PeriodID,
			"error", err,
		)
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusCreated, FromSection(section))
}

// HandleGetSection handles GET /sections/{id} requests.
func (h *Handler) HandleGetSection(w http.ResponseWriter, r *http.Request) {
	section, err := h.service.GetSection(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, FromSection(section))
}

// HandleUpdateSection handles PUT /sections/{id} requests.
func (h *Handler) HandleUpdateSection(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	sectionID := chi.URLParam(r, "id")

	req, ok := httputil.Decode[SectionRequest](w, r, h.logger)
	if !ok {
		return
	}
	if err := req.Validate(false); err != nil {
		httputil.WriteError(w, err)
		return
	}

	section, err := h.service.UpdateSection(ctx, sectionID, req.ToInput())
	if err != nil {
		h.logger.ErrorContext(ctx, "section update failed",
			"section_id", sectionID,
			"error", err,
		)
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, FromSection(section))
}

// HandleDraftStatus handles GET /sections/{id}/draft-status requests.
func (h *Handler) HandleDraftStatus(w http.ResponseWriter, r *http.Request) {
	status, err := h.service.DraftStatus(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, status)
}

// HandleNarrativeDiff handles GET /sections/{id}/narrative-diff requests.
// The optional prior_period_id query parameter overrides the rollover
// lineage and matches the prior section by title.
func (h *Handler) HandleNarrativeDiff(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	sectionID := chi.URLParam(r, "id")

	comparison, err := h.service.CompareNarrative(ctx, sectionID, r.URL.Query().Get("prior_period_id"))
	if err != nil {
		h.logger.ErrorContext(ctx, "narrative comparison failed",
			"section_id", sectionID,
			"error", err,
		)
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, comparison)
}

// HandleUpsertDataPoint handles PUT /data-points requests.
func (h *Handler) HandleUpsertDataPoint(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	req, ok := httputil.Decode[DataPointRequest](w, r, h.logger)
	if !ok {
		return
	}
	if err := req.Validate(); err != nil {
		httputil.WriteError(w, err)
		return
	}

	dataPoint, err := h.service.UpsertDataPoint(ctx, req.ToInput())
	if err != nil {
		h.logger.ErrorContext(ctx, "data point upsert failed",
			"section_id", req.SectionID,
			"metric", req.Metric,
			"error", err,
		)
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, FromDataPoint(dataPoint))
}

// HandleCreateDecision handles POST /decisions requests.
func (h *Handler) HandleCreateDecision(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	req, ok := httputil.Decode[DecisionRequest](w, r, h.logger)
	if !ok {
		return
	}
	if err := req.Validate(true); err != nil {
		httputil.WriteError(w, err)
		return
	}

	decision, err := h.service.CreateDecision(ctx, req.ToInput())
	if err != nil {
		h.logger.ErrorContext(ctx, "decision creation failed",
			"section_id", req.SectionID,
			"error", err,
		)
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusCreated, FromDecision(decision))
}

// HandleGetDecision handles GET /decisions/{id} requests.
func (h *Handler) HandleGetDecision(w http.ResponseWriter, r *http.Request) {
	decision, err := h.service.GetDecision(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, FromDecision(decision))
}

// HandleUpdateDecision handles PUT /decisions/{id} requests.
func (h *Handler) HandleUpdateDecision(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	decisionID := chi.URLParam(r, "id")

	req, ok := httputil.Decode[DecisionRequest](w, r, h.logger)
	if !ok {
		return
	}
	if err := req.Validate(false); err != nil {
		httputil.WriteError(w, err)
		return
	}

	decision, err := h.service.UpdateDecision(ctx, decisionID, req.ToInput())
	if err != nil {
		h.logger.ErrorContext(ctx, "decision update failed",
			"decision_id", decisionID,
			"error", err,
		)
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, FromDecision(decision))
}
