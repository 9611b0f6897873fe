// Package audit implements the provenance ledger: field-level change
// detection, an append-only trail of audit entries, and version replay.
//
// The package carries no domain knowledge. Collaborators build canonical
// snapshots of their entities, run DetectChanges around every mutation, and
// append the result with actor and action metadata. Entries are immutable
// once appended; there is no update or delete anywhere in the interface.
package audit

import (
	"time"

	"github.com/google/uuid"
)

// Action labels what happened to an entity.
type Action string

const (
	ActionCreate   Action = "create"
	ActionUpdate   Action = "update"
	ActionDelete   Action = "delete"
	ActionRollover Action = "rollover"

	// ActionOverride records an admin clearing an integrity warning.
	ActionOverride Action = "override"

	// ActionAccessDenied records a rejected sensitive operation. Entries for
	// denial events may carry no field changes.
	ActionAccessDenied Action = "access_denied"
)

// FieldChange records one field whose canonical value differs between two
// snapshots. OldValue is nil when the entity was created.
// Invariant: OldValue and NewValue never canonically match.
type FieldChange struct {
	Field    string  `json:"field"`
	OldValue *string `json:"old_value"`
	NewValue string  `json:"new_value"`
}

// Entry is one immutable record in the audit trail.
type Entry struct {
	ID         uuid.UUID
	Timestamp  time.Time
	Action     Action
	EntityType string
	EntityID   string
	UserID     string
	UserName   string

	// ChangeNote carries a free-text justification (override reasons,
	// reviewer comments). Optional.
	ChangeNote string

	// Changes is non-empty for real mutations and may be empty for pure
	// access or denial events.
	Changes []FieldChange

	// SectionID and OwnerID are optional correlation ids for filtering.
	SectionID string
	OwnerID   string
}

// clone returns a deep copy so ledger internals never alias caller slices.
func (e Entry) clone() Entry {
	out := e
	if e.Changes != nil {
		out.Changes = make([]FieldChange, len(e.Changes))
		copy(out.Changes, e.Changes)
	}
	return out
}

// Snapshotter is the capability contract for audit-loggable entity types.
// Each domain type builds its own ordered canonical snapshot; the detector
// and the ledger never inspect domain types directly.
type Snapshotter interface {
	ToAuditSnapshot() *Snapshot
}
