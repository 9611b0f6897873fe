package integrity

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"esgledger/internal/audit"
	"esgledger/internal/integrity/metrics"
	dErrors "esgledger/pkg/domain-errors"
)

// mismatchStatus maps an entity kind to the status a hash mismatch sets.
// Periods degrade to a recoverable warning; decisions fail terminally.
var mismatchStatus = map[string]Status{
	"period":   StatusWarning,
	"decision": StatusFailed,
}

// VerifyResult reports one verification outcome.
type VerifyResult struct {
	EntityID string `json:"entity_id"`
	Valid    bool   `json:"valid"`
	Status   Status `json:"status"`
	Details  string `json:"details,omitempty"`
}

// GateResult reports the publish gate decision with the failing entity ids
// so a blocked publish can be diagnosed.
type GateResult struct {
	CanPublish bool     `json:"can_publish"`
	FailingIDs []string `json:"failing_entity_ids,omitempty"`
}

// Service owns verify, the publish gate, and the admin override. It reads
// and writes only the integrity metadata of hash-bearing entities, never
// their business fields.
type Service struct {
	loader  Loader
	trail   *audit.Trail
	isAdmin AdminPredicate
	logger  *slog.Logger
	metrics *metrics.Metrics
}

func NewService(loader Loader, trail *audit.Trail, isAdmin AdminPredicate, logger *slog.Logger, m *metrics.Metrics) *Service {
	return &Service{loader: loader, trail: trail, isAdmin: isAdmin, logger: logger, metrics: m}
}

// Verify recomputes the entity's hash from its current content fields and
// compares it to the stored hash. A match reports valid but does not clear
// a pre-existing warning; clearing requires Override. A mismatch sets the
// kind's divergence status with human-readable details and is idempotent on
// repeated calls. The stored hash is never rewritten here.
func (s *Service) Verify(ctx context.Context, entityID string) (VerifyResult, error) {
	entity, err := s.loader.Load(ctx, entityID)
	if err != nil {
		return VerifyResult{}, err
	}

	record := entity.Integrity()
	computed := ComputeHash(entity.HashableContent())
	if s.metrics != nil {
		s.metrics.Verifications.WithLabelValues(entity.EntityKind()).Inc()
	}

	if computed == record.Hash {
		return VerifyResult{
			EntityID: entityID,
			Valid:    true,
			Status:   record.Status,
			Details:  record.WarningDetails,
		}, nil
	}

	if record.Status == StatusValid {
		status, ok := mismatchStatus[entity.EntityKind()]
		if !ok {
			status = StatusWarning
		}
		record.Status = status
		record.WarningDetails = fmt.Sprintf(
			"content no longer matches the hash recorded at the last write (stored %s…, computed %s…)",
			shortHash(record.Hash), shortHash(computed),
		)
		if err := s.loader.Save(ctx, entity); err != nil {
			return VerifyResult{}, fmt.Errorf("save integrity status: %w", err)
		}
		if s.metrics != nil {
			s.metrics.TamperDetected.WithLabelValues(entity.EntityKind()).Inc()
		}
		s.logger.WarnContext(ctx, "integrity mismatch detected",
			"entity_id", entityID,
			"entity_kind", entity.EntityKind(),
			"status", record.Status,
		)
	}

	return VerifyResult{
		EntityID: entityID,
		Valid:    false,
		Status:   record.Status,
		Details:  record.WarningDetails,
	}, nil
}

// CanPublish gates publishing of a period: false if the period itself, or
// any decision linked to one of its sections, carries a warning or failed
// status.
func (s *Service) CanPublish(ctx context.Context, periodID string) (GateResult, error) {
	period, err := s.loader.Load(ctx, periodID)
	if err != nil {
		return GateResult{}, err
	}

	var failing []string
	if period.Integrity().Status != StatusValid {
		failing = append(failing, period.EntityID())
	}

	decisions, err := s.loader.LinkedDecisions(ctx, periodID)
	if err != nil {
		return GateResult{}, fmt.Errorf("load linked decisions: %w", err)
	}
	for _, decision := range decisions {
		if decision.Integrity().Status != StatusValid {
			failing = append(failing, decision.EntityID())
		}
	}

	return GateResult{CanPublish: len(failing) == 0, FailingIDs: failing}, nil
}

// Override clears a warning or failed status. Only admins may call it, a
// justification is mandatory, and exactly one audit entry records the
// override - so the fact that a warning ever occurred stays permanently
// visible even after it is cleared.
func (s *Service) Override(ctx context.Context, entityID, actorID, justification string) (VerifyResult, error) {
	if !s.isAdmin(ctx, actorID) {
		return VerifyResult{}, dErrors.New(dErrors.CodeForbidden, "integrity override requires an administrator")
	}
	if strings.TrimSpace(justification) == "" {
		return VerifyResult{}, dErrors.New(dErrors.CodeValidation, "override justification must not be empty")
	}

	entity, err := s.loader.Load(ctx, entityID)
	if err != nil {
		return VerifyResult{}, err
	}

	record := entity.Integrity()
	previousStatus := record.Status

	record.Status = StatusValid
	record.WarningDetails = ""
	record.OverrideBy = actorID
	record.OverrideJustification = justification
	// Re-attest the current content so the next Verify passes.
	record.Hash = ComputeHash(entity.HashableContent())

	if err := s.loader.Save(ctx, entity); err != nil {
		return VerifyResult{}, fmt.Errorf("save integrity override: %w", err)
	}

	previous := string(previousStatus)
	if _, err := s.trail.Append(ctx, audit.Entry{
		Action:     audit.ActionOverride,
		EntityType: entity.EntityKind(),
		EntityID:   entityID,
		UserID:     actorID,
		ChangeNote: justification,
		Changes: []audit.FieldChange{{
			Field:    "IntegrityStatus",
			OldValue: &previous,
			NewValue: string(StatusValid),
		}},
	}); err != nil {
		return VerifyResult{}, fmt.Errorf("append override audit entry: %w", err)
	}

	if s.metrics != nil {
		s.metrics.Overrides.WithLabelValues(entity.EntityKind()).Inc()
	}
	s.logger.InfoContext(ctx, "integrity warning overridden",
		"entity_id", entityID,
		"actor_id", actorID,
		"previous_status", previousStatus,
	)

	return VerifyResult{EntityID: entityID, Valid: true, Status: StatusValid}, nil
}

func shortHash(hash string) string {
	if len(hash) > 12 {
		return hash[:12]
	}
	return hash
}
