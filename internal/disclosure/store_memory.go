package disclosure

import (
	"context"
	"sync"
)

// InMemoryStore backs tests and local development.
type InMemoryStore struct {
	mu         sync.RWMutex
	periods    map[string]*Period
	sections   map[string]*Section
	dataPoints map[string]*DataPoint
	decisions  map[string]*Decision
}

func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{
		periods:    make(map[string]*Period),
		sections:   make(map[string]*Section),
		dataPoints: make(map[string]*DataPoint),
		decisions:  make(map[string]*Decision),
	}
}

func (s *InMemoryStore) GetPeriod(_ context.Context, id string) (*Period, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	period, ok := s.periods[id]
	if !ok {
		return nil, ErrNotFound
	}
	return period.clone(), nil
}

func (s *InMemoryStore) SavePeriod(_ context.Context, period *Period) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.periods[period.ID] = period.clone()
	return nil
}

func (s *InMemoryStore) GetSection(_ context.Context, id string) (*Section, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	section, ok := s.sections[id]
	if !ok {
		return nil, ErrNotFound
	}
	return section.clone(), nil
}

func (s *InMemoryStore) SaveSection(_ context.Context, section *Section) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sections[section.ID] = section.clone()
	return nil
}

func (s *InMemoryStore) SectionsByPeriod(_ context.Context, periodID string) ([]*Section, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	sections := []*Section{}
	for _, section := range s.sections {
		if section.PeriodID == periodID {
			sections = append(sections, section.clone())
		}
	}
	return sections, nil
}

func (s *InMemoryStore) FindSectionByTitle(_ context.Context, periodID, title string) (*Section, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, section := range s.sections {
		if section.PeriodID == periodID && section.Title == title {
			return section.clone(), nil
		}
	}
	return nil, ErrNotFound
}

func (s *InMemoryStore) GetDataPoint(_ context.Context, id string) (*DataPoint, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	dataPoint, ok := s.dataPoints[id]
	if !ok {
		return nil, ErrNotFound
	}
	return dataPoint.clone(), nil
}

func (s *InMemoryStore) SaveDataPoint(_ context.Context, dataPoint *DataPoint) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.dataPoints[dataPoint.ID] = dataPoint.clone()
	return nil
}

func (s *InMemoryStore) GetDecision(_ context.Context, id string) (*Decision, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	decision, ok := s.decisions[id]
	if !ok {
		return nil, ErrNotFound
	}
	return decision.clone(), nil
}

func (s *InMemoryStore) SaveDecision(_ context.Context, decision *Decision) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.decisions[decision.ID] = decision.clone()
	return nil
}

func (s *InMemoryStore) DecisionsByPeriod(ctx context.Context, periodID string) ([]*Decision, error) {
	sections, err := s.SectionsByPeriod(ctx, periodID)
	if err != nil {
		return nil, err
	}
	sectionIDs := map[string]bool{}
	for _, section := range sections {
		sectionIDs[section.ID] = true
	}

	s.mu.RLock()
	defer s.mu.RUnlock()
	decisions := []*Decision{}
	for _, decision := range s.decisions {
		if sectionIDs[decision.SectionID] {
			decisions = append(decisions, decision.clone())
		}
	}
	return decisions, nil
}
