package audit

// Snapshot is an ordered field-name → canonical-string mapping. Callers
// normalize typed values into stable strings before building one: booleans
// as fixed literals, times in RFC 3339 UTC, collections as a stable join.
// Field order is the caller's and is preserved through detection.
type Snapshot struct {
	names  []string
	values map[string]string
}

// NewSnapshot returns an empty snapshot.
func NewSnapshot() *Snapshot {
	return &Snapshot{values: make(map[string]string)}
}

// Set records a field value, keeping first-set order. Setting an existing
// field overwrites its value without reordering.
func (s *Snapshot) Set(name, value string) *Snapshot {
	if _, ok := s.values[name]; !ok {
		s.names = append(s.names, name)
	}
	s.values[name] = value
	return s
}

// Get returns the field value and whether the field is present.
func (s *Snapshot) Get(name string) (string, bool) {
	v, ok := s.values[name]
	return v, ok
}

// Fields returns the field names in insertion order.
func (s *Snapshot) Fields() []string {
	return append([]string(nil), s.names...)
}

// DetectChanges compares two canonical snapshots and returns one FieldChange
// per differing field, in the new snapshot's field order. A nil oldSnapshot
// models entity creation: every non-empty new field is reported with a nil
// OldValue. Non-empty fields present only in the old snapshot are reported
// last, in the old snapshot's order, with an empty NewValue.
//
// The function is total and deterministic: identical inputs always yield
// identical, identically-ordered output. It never re-sorts and never
// inspects types - only the already-canonicalized strings supplied to it.
func DetectChanges(oldSnapshot, newSnapshot *Snapshot) []FieldChange {
	changes := []FieldChange{}
	if newSnapshot == nil {
		newSnapshot = NewSnapshot()
	}

	if oldSnapshot == nil {
		for _, name := range newSnapshot.names {
			value := newSnapshot.values[name]
			if value == "" {
				continue
			}
			changes = append(changes, FieldChange{Field: name, NewValue: value})
		}
		return changes
	}

	for _, name := range newSnapshot.names {
		newValue := newSnapshot.values[name]
		oldValue, existed := oldSnapshot.Get(name)
		if !existed {
			if newValue == "" {
				continue
			}
			changes = append(changes, FieldChange{Field: name, NewValue: newValue})
			continue
		}
		if oldValue != newValue {
			old := oldValue
			changes = append(changes, FieldChange{Field: name, OldValue: &old, NewValue: newValue})
		}
	}

	for _, name := range oldSnapshot.names {
		if _, stillPresent := newSnapshot.Get(name); stillPresent {
			continue
		}
		old := oldSnapshot.values[name]
		if old == "" {
			continue
		}
		changes = append(changes, FieldChange{Field: name, OldValue: &old, NewValue: ""})
	}

	return changes
}
