package audit

import "context"

// Filter narrows a trail query. Zero-valued fields match everything; set
// fields are combined as a conjunction.
type Filter struct {
	EntityType string
	EntityID   string
	SectionID  string
	OwnerID    string
	Action     Action
}

func (f Filter) matches(e Entry) bool {
	if f.EntityType != "" && e.EntityType != f.EntityType {
		return false
	}
	if f.EntityID != "" && e.EntityID != f.EntityID {
		return false
	}
	if f.SectionID != "" && e.SectionID != f.SectionID {
		return false
	}
	if f.OwnerID != "" && e.OwnerID != f.OwnerID {
		return false
	}
	if f.Action != "" && e.Action != f.Action {
		return false
	}
	return true
}

// Store is the append-only ledger. Append inserts at the end; Query returns
// matching entries newest-first. No implementation exposes update or delete.
type Store interface {
	Append(ctx context.Context, entry Entry) error
	Query(ctx context.Context, filter Filter) ([]Entry, error)
}
