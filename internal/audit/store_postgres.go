package audit

import (
	"context"
	"encoding/json"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PostgresStore persists the ledger in the audit_entries table. A bigserial
// seq column materializes append order so queries sort by it rather than by
// timestamp, which can collide under concurrent appends.
type PostgresStore struct {
	pool *pgxpool.Pool
}

func NewPostgresStore(pool *pgxpool.Pool) *PostgresStore {
	return &PostgresStore{pool: pool}
}

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

func (s *PostgresStore) Append(ctx context.Context, entry Entry) error {
	changes, err := json.Marshal(entry.Changes)
	if err != nil {
		return fmt.Errorf("marshal changes: %w", err)
	}

	query, args, err := psql.
		Insert("audit_entries").
		Columns("id", "timestamp", "action", "entity_type", "entity_id",
			"user_id", "user_name", "change_note", "changes", "section_id", "owner_id").
		Values(entry.ID, entry.Timestamp, string(entry.Action), entry.EntityType, entry.EntityID,
			entry.UserID, entry.UserName, entry.ChangeNote, changes, entry.SectionID, entry.OwnerID).
		ToSql()
	if err != nil {
		return fmt.Errorf("build insert: %w", err)
	}

	if _, err := s.pool.Exec(ctx, query, args...); err != nil {
		return fmt.Errorf("insert audit entry: %w", err)
	}
	return nil
}

func (s *PostgresStore) Query(ctx context.Context, filter Filter) ([]Entry, error) {
	builder := psql.
		Select("id", "timestamp", "action", "entity_type", "entity_id",
			"user_id", "user_name", "change_note", "changes", "section_id", "owner_id").
		From("audit_entries").
		OrderBy("seq DESC")

	if filter.EntityType != "" {
		builder = builder.Where(sq.Eq{"entity_type": filter.EntityType})
	}
	if filter.EntityID != "" {
		builder = builder.Where(sq.Eq{"entity_id": filter.EntityID})
	}
	if filter.SectionID != "" {
		builder = builder.Where(sq.Eq{"section_id": filter.SectionID})
	}
	if filter.OwnerID != "" {
		builder = builder.Where(sq.Eq{"owner_id": filter.OwnerID})
	}
	if filter.Action != "" {
		builder = builder.Where(sq.Eq{"action": string(filter.Action)})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	rows, err := s.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query audit entries: %w", err)
	}
	defer rows.Close()

	entries := []Entry{}
	for rows.Next() {
		var (
			entry      Entry
			action     string
			rawChanges []byte
		)
		err := rows.Scan(&entry.ID, &entry.Timestamp, &action, &entry.EntityType, &entry.EntityID,
			&entry.UserID, &entry.UserName, &entry.ChangeNote, &rawChanges, &entry.SectionID, &entry.OwnerID)
		if err != nil {
			return nil, fmt.Errorf("scan audit entry: %w", err)
		}
		entry.Action = Action(action)
		if len(rawChanges) > 0 {
			if err := json.Unmarshal(rawChanges, &entry.Changes); err != nil {
				return nil, fmt.Errorf("unmarshal changes: %w", err)
			}
		}
		entries = append(entries, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate audit entries: %w", err)
	}

	return entries, nil
}
