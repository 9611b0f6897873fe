package disclosure

import (
	"time"

	"esgledger/internal/audit"
	"esgledger/internal/integrity"
)

// Snapshot adapters. Each entity type canonicalizes its own fields into an
// ordered name → stable-string map: times in RFC 3339 UTC, everything else
// as-is. The detector and hasher never see domain types, only these maps.

func canonicalTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(time.RFC3339)
}

func (p *Period) ToAuditSnapshot() *audit.Snapshot {
	return audit.NewSnapshot().
		Set("Name", p.Name).
		Set("StartDate", canonicalTime(p.StartDate)).
		Set("EndDate", canonicalTime(p.EndDate)).
		Set("Status", p.Status)
}

func (s *Section) ToAuditSnapshot() *audit.Snapshot {
	return audit.NewSnapshot().
		Set("Title", s.Title).
		Set("Narrative", s.Narrative).
		Set("OwnerID", s.OwnerID).
		Set("SourceSectionID", s.SourceSectionID).
		Set("SourcePeriodID", s.SourcePeriodID)
}

func (d *DataPoint) ToAuditSnapshot() *audit.Snapshot {
	return audit.NewSnapshot().
		Set("Metric", d.Metric).
		Set("Value", d.Value).
		Set("Unit", d.Unit)
}

func (d *Decision) ToAuditSnapshot() *audit.Snapshot {
	return audit.NewSnapshot().
		Set("Title", d.Title).
		Set("Rationale", d.Rationale).
		Set("Outcome", d.Outcome)
}

// Integrity capability. HashableContent covers content fields only - never
// the integrity record, version snapshots, or audit metadata, so the hash
// can never cover itself.

func (p *Period) EntityID() string   { return p.ID }
func (p *Period) EntityKind() string { return KindPeriod }

func (p *Period) HashableContent() []integrity.Field {
	return []integrity.Field{
		{Name: "Name", Value: p.Name},
		{Name: "StartDate", Value: canonicalTime(p.StartDate)},
		{Name: "EndDate", Value: canonicalTime(p.EndDate)},
		{Name: "Status", Value: p.Status},
	}
}

func (p *Period) Integrity() *integrity.Record { return &p.IntegrityRecord }

func (d *Decision) EntityID() string   { return d.ID }
func (d *Decision) EntityKind() string { return KindDecision }

func (d *Decision) HashableContent() []integrity.Field {
	return []integrity.Field{
		{Name: "SectionID", Value: d.SectionID},
		{Name: "Title", Value: d.Title},
		{Name: "Rationale", Value: d.Rationale},
		{Name: "Outcome", Value: d.Outcome},
	}
}

func (d *Decision) Integrity() *integrity.Record { return &d.IntegrityRecord }
