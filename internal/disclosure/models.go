// Package disclosure holds the reporting-domain collaborators that exercise
// the provenance engine: reporting periods, narrative sections, data points,
// and review decisions. Every mutation here builds canonical snapshots, runs
// change detection, and appends to the audit trail; the hash-bearing kinds
// (periods, decisions) additionally carry integrity records.
package disclosure

import (
	"time"

	"esgledger/internal/integrity"
)

// Entity kind labels used for audit entries and integrity lookups.
const (
	KindPeriod    = "period"
	KindSection   = "section"
	KindDataPoint = "data_point"
	KindDecision  = "decision"
)

// Period is one reporting period (hash-bearing).
type Period struct {
	ID        string
	Name      string
	StartDate time.Time
	EndDate   time.Time
	Status    string

	IntegrityRecord integrity.Record
}

// Section is one disclosure narrative within a period. SourceSectionID and
// SourcePeriodID are the rollover lineage: set when the section was copied
// forward from a prior period, empty otherwise.
type Section struct {
	ID        string
	PeriodID  string
	Title     string
	Narrative string
	OwnerID   string

	SourceSectionID string
	SourcePeriodID  string
}

// DataPoint is one quantitative metric attached to a section.
type DataPoint struct {
	ID        string
	SectionID string
	Metric    string
	Value     string
	Unit      string
}

// VersionSnapshot freezes a decision's state before an update advances its
// version. Snapshots are owned by the decision and never mutated.
type VersionSnapshot struct {
	Version int               `json:"version"`
	Hash    string            `json:"integrity_hash"`
	Fields  []integrity.Field `json:"fields"`
}

// Decision is a review decision on a section (hash-bearing, append-only
// versioned). Version starts at 1 and each update freezes the prior state
// into Snapshots before advancing.
type Decision struct {
	ID        string
	SectionID string
	Title     string
	Rationale string
	Outcome   string
	Version   int

	IntegrityRecord integrity.Record
	Snapshots       []VersionSnapshot
}

func (p *Period) clone() *Period {
	out := *p
	return &out
}

func (s *Section) clone() *Section {
	out := *s
	return &out
}

func (d *DataPoint) clone() *DataPoint {
	out := *d
	return &out
}

func (d *Decision) clone() *Decision {
	out := *d
	if d.Snapshots != nil {
		out.Snapshots = make([]VersionSnapshot, len(d.Snapshots))
		copy(out.Snapshots, d.Snapshots)
	}
	return &out
}
