package disclosure

import (
	"context"
	"errors"
	"fmt"

	"esgledger/internal/integrity"
)

// IntegrityLoader adapts the disclosure store to the integrity service's
// Loader contract. Only the hash-bearing aggregates resolve here: an id is
// tried as a period first, then as a decision.
type IntegrityLoader struct {
	store Store
}

func NewIntegrityLoader(store Store) *IntegrityLoader {
	return &IntegrityLoader{store: store}
}

func (l *IntegrityLoader) Load(ctx context.Context, entityID string) (integrity.Entity, error) {
	period, err := l.store.GetPeriod(ctx, entityID)
	if err == nil {
		return period, nil
	}
	if !errors.Is(err, ErrNotFound) {
		return nil, err
	}

	decision, err := l.store.GetDecision(ctx, entityID)
	if err != nil {
		return nil, err
	}
	return decision, nil
}

func (l *IntegrityLoader) LinkedDecisions(ctx context.Context, periodID string) ([]integrity.Entity, error) {
	decisions, err := l.store.DecisionsByPeriod(ctx, periodID)
	if err != nil {
		return nil, err
	}

	entities := make([]integrity.Entity, 0, len(decisions))
	for _, decision := range decisions {
		entities = append(entities, decision)
	}
	return entities, nil
}

func (l *IntegrityLoader) Save(ctx context.Context, entity integrity.Entity) error {
	switch e := entity.(type) {
	case *Period:
		return l.store.SavePeriod(ctx, e)
	case *Decision:
		return l.store.SaveDecision(ctx, e)
	default:
		return fmt.Errorf("unsupported integrity entity kind %q", entity.EntityKind())
	}
}
