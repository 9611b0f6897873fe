package disclosure

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"esgledger/internal/integrity"
)

// PostgresStore persists disclosure aggregates. Decision version snapshots
// are stored as JSONB alongside the live row; the integrity record maps to
// dedicated columns.
type PostgresStore struct {
	pool *pgxpool.Pool
}

func NewPostgresStore(pool *pgxpool.Pool) *PostgresStore {
	return &PostgresStore{pool: pool}
}

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

func (s *PostgresStore) GetPeriod(ctx context.Context, id string) (*Period, error) {
	query, args, err := psql.
		Select("id", "name", "start_date", "end_date", "status",
			"integrity_hash", "integrity_status", "warning_details", "override_by", "override_justification").
		From("periods").
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build period query: %w", err)
	}

	var period Period
	var status string
	err = s.pool.QueryRow(ctx, query, args...).Scan(
		&period.ID, &period.Name, &period.StartDate, &period.EndDate, &period.Status,
		&period.IntegrityRecord.Hash, &status, &period.IntegrityRecord.WarningDetails,
		&period.IntegrityRecord.OverrideBy, &period.IntegrityRecord.OverrideJustification,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get period: %w", err)
	}
	period.IntegrityRecord.Status = integrity.Status(status)
	return &period, nil
}

func (s *PostgresStore) SavePeriod(ctx context.Context, period *Period) error {
	query, args, err := psql.
		Insert("periods").
		Columns("id", "name", "start_date", "end_date", "status",
			"integrity_hash", "integrity_status", "warning_details", "override_by", "override_justification").
		Values(period.ID, period.Name, period.StartDate, period.EndDate, period.Status,
			period.IntegrityRecord.Hash, string(period.IntegrityRecord.Status),
			period.IntegrityRecord.WarningDetails, period.IntegrityRecord.OverrideBy,
			period.IntegrityRecord.OverrideJustification).
		Suffix(`ON CONFLICT (id) DO UPDATE SET
			name = EXCLUDED.name, start_date = EXCLUDED.start_date,
			end_date = EXCLUDED.end_date, status = EXCLUDED.status,
			integrity_hash = EXCLUDED.integrity_hash,
			integrity_status = EXCLUDED.integrity_status,
			warning_details = EXCLUDED.warning_details,
			override_by = EXCLUDED.override_by,
			override_justification = EXCLUDED.override_justification`).
		ToSql()
	if err != nil {
		return fmt.Errorf("build period upsert: %w", err)
	}

	if _, err := s.pool.Exec(ctx, query, args...); err != nil {
		return fmt.Errorf("save period: %w", err)
	}
	return nil
}

func (s *PostgresStore) GetSection(ctx context.Context, id string) (*Section, error) {
	return s.scanSection(ctx, sq.Eq{"id": id})
}

func (s *PostgresStore) FindSectionByTitle(ctx context.Context, periodID, title string) (*Section, error) {
	return s.scanSection(ctx, sq.Eq{"period_id": periodID, "title": title})
}

func (s *PostgresStore) scanSection(ctx context.Context, where sq.Eq) (*Section, error) {
	query, args, err := psql.
		Select("id", "period_id", "title", "narrative", "owner_id", "source_section_id", "source_period_id").
		From("sections").
		Where(where).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build section query: %w", err)
	}

	var section Section
	err = s.pool.QueryRow(ctx, query, args...).Scan(
		&section.ID, &section.PeriodID, &section.Title, &section.Narrative,
		&section.OwnerID, &section.SourceSectionID, &section.SourcePeriodID,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get section: %w", err)
	}
	return &section, nil
}

func (s *PostgresStore) SaveSection(ctx context.Context, section *Section) error {
	query, args, err := psql.
		Insert("sections").
		Columns("id", "period_id", "title", "narrative", "owner_id", "source_section_id", "source_period_id").
		Values(section.ID, section.PeriodID, section.Title, section.Narrative,
			section.OwnerID, section.SourceSectionID, section.SourcePeriodID).
		Suffix(`ON CONFLICT (id) DO UPDATE SET
			title = EXCLUDED.title, narrative = EXCLUDED.narrative,
			owner_id = EXCLUDED.owner_id,
			source_section_id = EXCLUDED.source_section_id,
			source_period_id = EXCLUDED.source_period_id`).
		ToSql()
	if err != nil {
		return fmt.Errorf("build section upsert: %w", err)
	}

	if _, err := s.pool.Exec(ctx, query, args...); err != nil {
		return fmt.Errorf("save section: %w", err)
	}
	return nil
}

func (s *PostgresStore) SectionsByPeriod(ctx context.Context, periodID string) ([]*Section, error) {
	query, args, err := psql.
		Select("id", "period_id", "title", "narrative", "owner_id", "source_section_id", "source_period_id").
		From("sections").
		Where(sq.Eq{"period_id": periodID}).
		OrderBy("title").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build sections query: %w", err)
	}

	rows, err := s.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query sections: %w", err)
	}
	defer rows.Close()

	sections := []*Section{}
	for rows.Next() {
		var section Section
		err := rows.Scan(&section.ID, &section.PeriodID, &section.Title, &section.Narrative,
			&section.OwnerID, &section.SourceSectionID, &section.SourcePeriodID)
		if err != nil {
			return nil, fmt.Errorf("scan section: %w", err)
		}
		sections = append(sections, &section)
	}
	return sections, rows.Err()
}

func (s *PostgresStore) GetDataPoint(ctx context.Context, id string) (*DataPoint, error) {
	query, args, err := psql.
		Select("id", "section_id", "metric", "value", "unit").
		From("data_points").
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build data point query: %w", err)
	}

	var dataPoint DataPoint
	err = s.pool.QueryRow(ctx, query, args...).Scan(
		&dataPoint.ID, &dataPoint.SectionID, &dataPoint.Metric, &dataPoint.Value, &dataPoint.Unit,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get data point: %w", err)
	}
	return &dataPoint, nil
}

func (s *PostgresStore) SaveDataPoint(ctx context.Context, dataPoint *DataPoint) error {
	query, args, err := psql.
		Insert("data_points").
		Columns("id", "section_id", "metric", "value", "unit").
		Values(dataPoint.ID, dataPoint.SectionID, dataPoint.Metric, dataPoint.Value, dataPoint.Unit).
		Suffix(`ON CONFLICT (id) DO UPDATE SET
			metric = EXCLUDED.metric, value = EXCLUDED.value, unit = EXCLUDED.unit`).
		ToSql()
	if err != nil {
		return fmt.Errorf("build data point upsert: %w", err)
	}

	if _, err := s.pool.Exec(ctx, query, args...); err != nil {
		return fmt.Errorf("save data point: %w", err)
	}
	return nil
}

func (s *PostgresStore) GetDecision(ctx context.Context, id string) (*Decision, error) {
	query, args, err := psql.
		Select("id", "section_id", "title", "rationale", "outcome", "version", "snapshots",
			"integrity_hash", "integrity_status", "warning_details", "override_by", "override_justification").
		From("decisions").
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build decision query: %w", err)
	}

	row := s.pool.QueryRow(ctx, query, args...)
	decision, err := scanDecision(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get decision: %w", err)
	}
	return decision, nil
}

func (s *PostgresStore) SaveDecision(ctx context.Context, decision *Decision) error {
	snapshots, err := json.Marshal(decision.Snapshots)
	if err != nil {
		return fmt.Errorf("marshal snapshots: %w", err)
	}

	query, args, err := psql.
		Insert("decisions").
		Columns("id", "section_id", "title", "rationale", "outcome", "version", "snapshots",
			"integrity_hash", "integrity_status", "warning_details", "override_by", "override_justification").
		Values(decision.ID, decision.SectionID, decision.Title, decision.Rationale,
			decision.Outcome, decision.Version, snapshots,
			decision.IntegrityRecord.Hash, string(decision.IntegrityRecord.Status),
			decision.IntegrityRecord.WarningDetails, decision.IntegrityRecord.OverrideBy,
			decision.IntegrityRecord.OverrideJustification).
		Suffix(`ON CONFLICT (id) DO UPDATE SET
			title = EXCLUDED.title, rationale = EXCLUDED.rationale,
			outcome = EXCLUDED.outcome, version = EXCLUDED.version,
			snapshots = EXCLUDED.snapshots,
			integrity_hash = EXCLUDED.integrity_hash,
			integrity_status = EXCLUDED.integrity_status,
			warning_details = EXCLUDED.warning_details,
			override_by = EXCLUDED.override_by,
			override_justification = EXCLUDED.override_justification`).
		ToSql()
	if err != nil {
		return fmt.Errorf("build decision upsert: %w", err)
	}

	if _, err := s.pool.Exec(ctx, query, args...); err != nil {
		return fmt.Errorf("save decision: %w", err)
	}
	return nil
}

func (s *PostgresStore) DecisionsByPeriod(ctx context.Context, periodID string) ([]*Decision, error) {
	query, args, err := psql.
		Select("d.id", "d.section_id", "d.title", "d.rationale", "d.outcome", "d.version", "d.snapshots",
			"d.integrity_hash", "d.integrity_status", "d.warning_details", "d.override_by", "d.override_justification").
		From("decisions d").
		Join("sections s ON s.id = d.section_id").
		Where(sq.Eq{"s.period_id": periodID}).
		OrderBy("d.id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build decisions query: %w", err)
	}

	rows, err := s.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query decisions: %w", err)
	}
	defer rows.Close()

	decisions := []*Decision{}
	for rows.Next() {
		decision, err := scanDecision(rows)
		if err != nil {
			return nil, fmt.Errorf("scan decision: %w", err)
		}
		decisions = append(decisions, decision)
	}
	return decisions, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanDecision(row rowScanner) (*Decision, error) {
	var decision Decision
	var status string
	var rawSnapshots []byte
	err := row.Scan(
		&decision.ID, &decision.SectionID, &decision.Title, &decision.Rationale,
		&decision.Outcome, &decision.Version, &rawSnapshots,
		&decision.IntegrityRecord.Hash, &status, &decision.IntegrityRecord.WarningDetails,
		&decision.IntegrityRecord.OverrideBy, &decision.IntegrityRecord.OverrideJustification,
	)
	if err != nil {
		return nil, err
	}
	decision.IntegrityRecord.Status = integrity.Status(status)
	if len(rawSnapshots) > 0 {
		if err := json.Unmarshal(rawSnapshots, &decision.Snapshots); err != nil {
			return nil, fmt.Errorf("unmarshal snapshots: %w", err)
		}
	}
	return &decision, nil
}
