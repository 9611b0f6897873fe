// Package integrity gives hash-bearing aggregates tamper evidence: a
// deterministic content hash stored on the record, verify-on-demand, a
// publish gate, and an audited admin override.
package integrity

import "context"

// Status is the tamper-evidence state of one hash-bearing entity.
type Status string

const (
	StatusValid Status = "valid"

	// StatusWarning flags a non-fatal divergence (reporting periods). The
	// record stays editable; publishing is blocked until an admin override.
	StatusWarning Status = "warning"

	// StatusFailed flags a terminal divergence (decisions).
	StatusFailed Status = "failed"
)

// Record is the integrity metadata embedded in a hash-bearing aggregate.
// Hash always reflects content at last in-band write; Verify may change
// Status and WarningDetails but never the hash itself.
type Record struct {
	Hash           string `json:"integrity_hash"`
	Status         Status `json:"status"`
	WarningDetails string `json:"warning_details,omitempty"`

	// OverrideBy and OverrideJustification stay populated after an override
	// so the fact that a warning occurred remains permanently visible.
	OverrideBy            string `json:"override_by,omitempty"`
	OverrideJustification string `json:"override_justification,omitempty"`
}

// Field is one name/value pair of an entity's canonical hashable content.
type Field struct {
	Name  string
	Value string
}

// Entity is the capability contract hash-bearing aggregate types implement.
// HashableContent returns content fields only, in a fixed order; it must
// exclude the integrity record itself so the hash never covers the hash.
type Entity interface {
	EntityID() string
	EntityKind() string
	HashableContent() []Field
	Integrity() *Record
}

// Loader resolves hash-bearing entities by id and persists integrity
// metadata changes. Entity storage stays with the owning collaborator; an
// unknown id surfaces as that collaborator's not-found error.
type Loader interface {
	Load(ctx context.Context, entityID string) (Entity, error)

	// LinkedDecisions returns the decision entities attached to any section
	// of the given period, for the publish gate.
	LinkedDecisions(ctx context.Context, periodID string) ([]Entity, error)

	Save(ctx context.Context, entity Entity) error
}

// AdminPredicate reports whether the actor may override integrity warnings.
// Supplied by an external collaborator (the HTTP layer checks token roles).
type AdminPredicate func(ctx context.Context, actorID string) bool
