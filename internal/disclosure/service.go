package disclosure

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"esgledger/internal/audit"
	"esgledger/internal/integrity"
	"esgledger/internal/textdiff"
	dErrors "esgledger/pkg/domain-errors"
	"esgledger/pkg/requestcontext"
)

// Service orchestrates disclosure mutations. Every write follows the same
// discipline: snapshot before, apply, snapshot after, detect changes, stamp
// the integrity hash (hash-bearing kinds), persist, then append to the
// trail if the policy table says the action is recorded. An update that
// changes nothing skips both persistence and the ledger.
type Service struct {
	store  Store
	trail  *audit.Trail
	logger *slog.Logger
}

func NewService(store Store, trail *audit.Trail, logger *slog.Logger) *Service {
	return &Service{store: store, trail: trail, logger: logger}
}

// PeriodInput carries the caller-editable period fields.
type PeriodInput struct {
	Name       string
	StartDate  time.Time
	EndDate    time.Time
	Status     string
	ChangeNote string
}

// SectionInput carries the caller-editable section fields.
type SectionInput struct {
	PeriodID   string
	Title      string
	Narrative  string
	OwnerID    string
	ChangeNote string
}

// DataPointInput carries the caller-editable data point fields. ID may be
// empty on first write; UpsertDataPoint assigns one.
type DataPointInput struct {
	ID         string
	SectionID  string
	Metric     string
	Value      string
	Unit       string
	ChangeNote string
}

// DecisionInput carries the caller-editable decision fields.
type DecisionInput struct {
	SectionID  string
	Title      string
	Rationale  string
	Outcome    string
	ChangeNote string
}

// NarrativeComparison is a section narrative diffed against its prior-period
// source.
type NarrativeComparison struct {
	SectionID      string             `json:"section_id"`
	SourceID       string             `json:"source_section_id"`
	SourcePeriodID string             `json:"source_period_id"`
	Segments       []textdiff.Segment `json:"segments"`
	Summary        textdiff.Summary   `json:"summary"`
}

func (s *Service) GetPeriod(ctx context.Context, id string) (*Period, error) {
	return s.store.GetPeriod(ctx, id)
}

func (s *Service) CreatePeriod(ctx context.Context, input PeriodInput) (*Period, error) {
	if strings.TrimSpace(input.Name) == "" {
		return nil, dErrors.New(dErrors.CodeValidation, "period name is required")
	}

	period := &Period{
		ID:        uuid.NewString(),
		Name:      input.Name,
		StartDate: input.StartDate,
		EndDate:   input.EndDate,
		Status:    input.Status,
	}
	integrity.Stamp(period)

	if err := s.store.SavePeriod(ctx, period); err != nil {
		return nil, fmt.Errorf("create period: %w", err)
	}

	changes := audit.DetectChanges(nil, period.ToAuditSnapshot())
	if err := s.record(ctx, KindPeriod, audit.ActionCreate, period.ID, "", "", input.ChangeNote, changes); err != nil {
		return nil, err
	}
	return period, nil
}

func (s *Service) UpdatePeriod(ctx context.Context, id string, input PeriodInput) (*Period, error) {
	period, err := s.store.GetPeriod(ctx, id)
	if err != nil {
		return nil, err
	}

	before := period.ToAuditSnapshot()
	period.Name = input.Name
	period.StartDate = input.StartDate
	period.EndDate = input.EndDate
	period.Status = input.Status

	changes := audit.DetectChanges(before, period.ToAuditSnapshot())
	if len(changes) == 0 {
		return period, nil
	}

	integrity.Stamp(period)
	if err := s.store.SavePeriod(ctx, period); err != nil {
		return nil, fmt.Errorf("update period: %w", err)
	}
	if err := s.record(ctx, KindPeriod, audit.ActionUpdate, period.ID, "", "", input.ChangeNote, changes); err != nil {
		return nil, err
	}
	return period, nil
}

func (s *Service) GetSection(ctx context.Context, id string) (*Section, error) {
	return s.store.GetSection(ctx, id)
}

func (s *Service) SectionsByPeriod(ctx context.Context, periodID string) ([]*Section, error) {
	return s.store.SectionsByPeriod(ctx, periodID)
}

func (s *Service) CreateSection(ctx context.Context, input SectionInput) (*Section, error) {
	if strings.TrimSpace(input.Title) == "" {
		return nil, dErrors.New(dErrors.CodeValidation, "section title is required")
	}
	if _, err := s.store.GetPeriod(ctx, input.PeriodID); err != nil {
		return nil, err
	}

	section := &Section{
		ID:        uuid.NewString(),
		PeriodID:  input.PeriodID,
		Title:     input.Title,
		Narrative: input.Narrative,
		OwnerID:   input.OwnerID,
	}
	if err := s.store.SaveSection(ctx, section); err != nil {
		return nil, fmt.Errorf("create section: %w", err)
	}

	changes := audit.DetectChanges(nil, section.ToAuditSnapshot())
	if err := s.record(ctx, KindSection, audit.ActionCreate, section.ID, section.ID, section.OwnerID, input.ChangeNote, changes); err != nil {
		return nil, err
	}
	return section, nil
}

func (s *Service) UpdateSection(ctx context.Context, id string, input SectionInput) (*Section, error) {
	section, err := s.store.GetSection(ctx, id)
	if err != nil {
		return nil, err
	}

	before := section.ToAuditSnapshot()
	section.Title = input.Title
	section.Narrative = input.Narrative
	section.OwnerID = input.OwnerID

	changes := audit.DetectChanges(before, section.ToAuditSnapshot())
	if len(changes) == 0 {
		return section, nil
	}

	if err := s.store.SaveSection(ctx, section); err != nil {
		return nil, fmt.Errorf("update section: %w", err)
	}
	if err := s.record(ctx, KindSection, audit.ActionUpdate, section.ID, section.ID, section.OwnerID, input.ChangeNote, changes); err != nil {
		return nil, err
	}
	return section, nil
}

// UpsertDataPoint creates the data point when the id is empty or unknown
// and diff-updates it otherwise.
func (s *Service) UpsertDataPoint(ctx context.Context, input DataPointInput) (*DataPoint, error) {
	if strings.TrimSpace(input.Metric) == "" {
		return nil, dErrors.New(dErrors.CodeValidation, "data point metric is required")
	}
	if _, err := s.store.GetSection(ctx, input.SectionID); err != nil {
		return nil, err
	}

	var existing *DataPoint
	if input.ID != "" {
		found, err := s.store.GetDataPoint(ctx, input.ID)
		if err != nil && !errors.Is(err, ErrNotFound) {
			return nil, err
		}
		existing = found
	}

	if existing == nil {
		dataPoint := &DataPoint{
			ID:        input.ID,
			SectionID: input.SectionID,
			Metric:    input.Metric,
			Value:     input.Value,
			Unit:      input.Unit,
		}
		if dataPoint.ID == "" {
			dataPoint.ID = uuid.NewString()
		}
		if err := s.store.SaveDataPoint(ctx, dataPoint); err != nil {
			return nil, fmt.Errorf("create data point: %w", err)
		}
		changes := audit.DetectChanges(nil, dataPoint.ToAuditSnapshot())
		if err := s.record(ctx, KindDataPoint, audit.ActionCreate, dataPoint.ID, dataPoint.SectionID, "", input.ChangeNote, changes); err != nil {
			return nil, err
		}
		return dataPoint, nil
	}

	before := existing.ToAuditSnapshot()
	existing.Metric = input.Metric
	existing.Value = input.Value
	existing.Unit = input.Unit

	changes := audit.DetectChanges(before, existing.ToAuditSnapshot())
	if len(changes) == 0 {
		return existing, nil
	}

	if err := s.store.SaveDataPoint(ctx, existing); err != nil {
		return nil, fmt.Errorf("update data point: %w", err)
	}
	if err := s.record(ctx, KindDataPoint, audit.ActionUpdate, existing.ID, existing.SectionID, "", input.ChangeNote, changes); err != nil {
		return nil, err
	}
	return existing, nil
}

func (s *Service) GetDecision(ctx context.Context, id string) (*Decision, error) {
	return s.store.GetDecision(ctx, id)
}

func (s *Service) CreateDecision(ctx context.Context, input DecisionInput) (*Decision, error) {
	if strings.TrimSpace(input.Title) == "" {
		return nil, dErrors.New(dErrors.CodeValidation, "decision title is required")
	}
	section, err := s.store.GetSection(ctx, input.SectionID)
	if err != nil {
		return nil, err
	}

	decision := &Decision{
		ID:        uuid.NewString(),
		SectionID: input.SectionID,
		Title:     input.Title,
		Rationale: input.Rationale,
		Outcome:   input.Outcome,
		Version:   1,
	}
	integrity.Stamp(decision)

	if err := s.store.SaveDecision(ctx, decision); err != nil {
		return nil, fmt.Errorf("create decision: %w", err)
	}

	changes := audit.DetectChanges(nil, decision.ToAuditSnapshot())
	if err := s.record(ctx, KindDecision, audit.ActionCreate, decision.ID, section.ID, section.OwnerID, input.ChangeNote, changes); err != nil {
		return nil, err
	}
	return decision, nil
}

// UpdateDecision freezes the current version into the snapshot list before
// applying the edit, then advances the version and re-stamps the hash. The
// frozen snapshot keeps the pre-edit hash so earlier versions stay
// independently verifiable.
func (s *Service) UpdateDecision(ctx context.Context, id string, input DecisionInput) (*Decision, error) {
	decision, err := s.store.GetDecision(ctx, id)
	if err != nil {
		return nil, err
	}

	before := decision.ToAuditSnapshot()
	frozen := VersionSnapshot{
		Version: decision.Version,
		Hash:    decision.IntegrityRecord.Hash,
		Fields:  decision.HashableContent(),
	}

	decision.Title = input.Title
	decision.Rationale = input.Rationale
	decision.Outcome = input.Outcome

	changes := audit.DetectChanges(before, decision.ToAuditSnapshot())
	if len(changes) == 0 {
		return decision, nil
	}

	decision.Snapshots = append(decision.Snapshots, frozen)
	decision.Version++
	integrity.Stamp(decision)

	if err := s.store.SaveDecision(ctx, decision); err != nil {
		return nil, fmt.Errorf("update decision: %w", err)
	}
	if err := s.record(ctx, KindDecision, audit.ActionUpdate, decision.ID, decision.SectionID, "", input.ChangeNote, changes); err != nil {
		return nil, err
	}
	return decision, nil
}

// RolloverPeriod opens a new period and copies every section of the source
// period forward as a draft. Copied sections carry lineage pointers back to
// their source so draft detection and prior-period comparison can find the
// original narrative. Data points and decisions are not copied; they belong
// to the period they were recorded in.
func (s *Service) RolloverPeriod(ctx context.Context, sourcePeriodID string, input PeriodInput) (*Period, error) {
	if strings.TrimSpace(input.Name) == "" {
		return nil, dErrors.New(dErrors.CodeValidation, "period name is required")
	}
	source, err := s.store.GetPeriod(ctx, sourcePeriodID)
	if err != nil {
		return nil, err
	}
	sections, err := s.store.SectionsByPeriod(ctx, source.ID)
	if err != nil {
		return nil, err
	}

	period := &Period{
		ID:        uuid.NewString(),
		Name:      input.Name,
		StartDate: input.StartDate,
		EndDate:   input.EndDate,
		Status:    input.Status,
	}
	integrity.Stamp(period)
	if err := s.store.SavePeriod(ctx, period); err != nil {
		return nil, fmt.Errorf("rollover period: %w", err)
	}

	changes := audit.DetectChanges(nil, period.ToAuditSnapshot())
	note := input.ChangeNote
	if note == "" {
		note = fmt.Sprintf("rolled over from %s", source.Name)
	}
	if err := s.record(ctx, KindPeriod, audit.ActionRollover, period.ID, "", "", note, changes); err != nil {
		return nil, err
	}

	for _, src := range sections {
		copied := &Section{
			ID:              uuid.NewString(),
			PeriodID:        period.ID,
			Title:           src.Title,
			Narrative:       src.Narrative,
			OwnerID:         src.OwnerID,
			SourceSectionID: src.ID,
			SourcePeriodID:  src.PeriodID,
		}
		if err := s.store.SaveSection(ctx, copied); err != nil {
			return nil, fmt.Errorf("rollover section %s: %w", src.ID, err)
		}
		sectionChanges := audit.DetectChanges(nil, copied.ToAuditSnapshot())
		if err := s.record(ctx, KindSection, audit.ActionRollover, copied.ID, copied.ID, copied.OwnerID, note, sectionChanges); err != nil {
			return nil, err
		}
	}

	s.logger.InfoContext(ctx, "period rolled over",
		"source_period_id", source.ID,
		"period_id", period.ID,
		"sections_copied", len(sections),
	)
	return period, nil
}

// DraftStatus reports whether the section is an unedited rollover copy. A
// section without lineage is original work and always counts as edited.
func (s *Service) DraftStatus(ctx context.Context, sectionID string) (textdiff.DraftStatus, error) {
	section, err := s.store.GetSection(ctx, sectionID)
	if err != nil {
		return textdiff.DraftStatus{}, err
	}
	if section.SourceSectionID == "" {
		return textdiff.AnalyzeDraft("", section.Narrative, false), nil
	}

	source, err := s.store.GetSection(ctx, section.SourceSectionID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			// Source deleted out from under the lineage; treat as original.
			return textdiff.AnalyzeDraft("", section.Narrative, false), nil
		}
		return textdiff.DraftStatus{}, err
	}
	return textdiff.AnalyzeDraft(source.Narrative, section.Narrative, true), nil
}

// CompareNarrative diffs a section's narrative against its prior-period
// counterpart. An explicit priorPeriodID matches by title in that period
// and takes precedence over the rollover lineage.
func (s *Service) CompareNarrative(ctx context.Context, sectionID, priorPeriodID string) (*NarrativeComparison, error) {
	section, err := s.store.GetSection(ctx, sectionID)
	if err != nil {
		return nil, err
	}

	var source *Section
	switch {
	case priorPeriodID != "":
		source, err = s.store.FindSectionByTitle(ctx, priorPeriodID, section.Title)
		if err != nil {
			return nil, err
		}
	case section.SourceSectionID != "":
		source, err = s.store.GetSection(ctx, section.SourceSectionID)
		if err != nil {
			return nil, err
		}
	default:
		return nil, dErrors.New(dErrors.CodeValidation, "section has no prior-period source to compare against")
	}

	segments := textdiff.Words(source.Narrative, section.Narrative)
	return &NarrativeComparison{
		SectionID:      section.ID,
		SourceID:       source.ID,
		SourcePeriodID: source.PeriodID,
		Segments:       segments,
		Summary:        textdiff.Summarize(source.Narrative, section.Narrative),
	}, nil
}

func (s *Service) record(ctx context.Context, kind string, action audit.Action, entityID, sectionID, ownerID, note string, changes []audit.FieldChange) error {
	if !auditWorthy(kind, action) || len(changes) == 0 {
		return nil
	}

	_, err := s.trail.Append(ctx, audit.Entry{
		Action:     action,
		EntityType: kind,
		EntityID:   entityID,
		UserID:     requestcontext.UserID(ctx),
		UserName:   requestcontext.UserName(ctx),
		ChangeNote: note,
		Changes:    changes,
		SectionID:  sectionID,
		OwnerID:    ownerID,
	})
	return err
}
