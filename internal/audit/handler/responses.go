package handler

import (
	"time"

	"esgledger/internal/audit"
)

// EntryResponse is the HTTP shape of one audit entry.
type EntryResponse struct {
	ID         string              `json:"id"`
	Timestamp  time.Time           `json:"timestamp"`
	Action     string              `json:"action"`
	EntityType string              `json:"entity_type"`
	EntityID   string              `json:"entity_id"`
	UserID     string              `json:"user_id"`
	UserName   string              `json:"user_name,omitempty"`
	ChangeNote string              `json:"change_note,omitempty"`
	Changes    []audit.FieldChange `json:"changes"`
	SectionID  string              `json:"section_id,omitempty"`
	OwnerID    string              `json:"owner_id,omitempty"`
}

// EntriesResponse wraps a list of entries.
type EntriesResponse struct {
	Entries []EntryResponse `json:"entries"`
	Count   int             `json:"count"`
}

func entriesResponse(entries []audit.Entry) EntriesResponse {
	out := EntriesResponse{Entries: make([]EntryResponse, 0, len(entries))}
	for _, entry := range entries {
		out.Entries = append(out.Entries, FromEntry(entry))
	}
	out.Count = len(out.Entries)
	return out
}

// FromEntry converts a ledger entry to its HTTP shape.
func FromEntry(entry audit.Entry) EntryResponse {
	return EntryResponse{
		ID:         entry.ID.String(),
		Timestamp:  entry.Timestamp,
		Action:     string(entry.Action),
		EntityType: entry.EntityType,
		EntityID:   entry.EntityID,
		UserID:     entry.UserID,
		UserName:   entry.UserName,
		ChangeNote: entry.ChangeNote,
		Changes:    entry.Changes,
		SectionID:  entry.SectionID,
		OwnerID:    entry.OwnerID,
	}
}

// ComparisonResponse is the HTTP shape of a replay comparison.
type ComparisonResponse struct {
	From   string                  `json:"from"`
	To     string                  `json:"to"`
	Fields []audit.FieldComparison `json:"fields"`
}

// FromComparison converts a replay comparison to its HTTP shape.
func FromComparison(comparison *audit.Comparison) ComparisonResponse {
	return ComparisonResponse{
		From:   comparison.From.String(),
		To:     comparison.To.String(),
		Fields: comparison.Fields,
	}
}
