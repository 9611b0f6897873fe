package disclosure

import (
	"context"

	dErrors "esgledger/pkg/domain-errors"
)

// ErrNotFound keeps store-level 404s consistent across the in-memory and
// PostgreSQL implementations.
var ErrNotFound = dErrors.New(dErrors.CodeNotFound, "record not found")

// Store persists the disclosure aggregates. Save is an upsert; the service
// layer owns ids and invariants.
type Store interface {
	GetPeriod(ctx context.Context, id string) (*Period, error)
	SavePeriod(ctx context.Context, period *Period) error

	GetSection(ctx context.Context, id string) (*Section, error)
	SaveSection(ctx context.Context, section *Section) error
	SectionsByPeriod(ctx context.Context, periodID string) ([]*Section, error)
	FindSectionByTitle(ctx context.Context, periodID, title string) (*Section, error)

	GetDataPoint(ctx context.Context, id string) (*DataPoint, error)
	SaveDataPoint(ctx context.Context, dataPoint *DataPoint) error

	GetDecision(ctx context.Context, id string) (*Decision, error)
	SaveDecision(ctx context.Context, decision *Decision) error
	DecisionsByPeriod(ctx context.Context, periodID string) ([]*Decision, error)
}
