package handler

import (
	"time"

	"esgledger/internal/disclosure"
	"esgledger/internal/integrity"
)

// IntegrityResponse is the integrity metadata portion of hash-bearing
// responses.
type IntegrityResponse struct {
	Hash                  string `json:"integrity_hash"`
	Status                string `json:"status"`
	WarningDetails        string `json:"warning_details,omitempty"`
	OverrideBy            string `json:"override_by,omitempty"`
	OverrideJustification string `json:"override_justification,omitempty"`
}

func fromIntegrity(record integrity.Record) IntegrityResponse {
	return IntegrityResponse{
		Hash:                  record.Hash,
		Status:                string(record.Status),
		WarningDetails:        record.WarningDetails,
		OverrideBy:            record.OverrideBy,
		OverrideJustification: record.OverrideJustification,
	}
}

func formatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(dateLayout)
}

// PeriodResponse is the HTTP shape of a reporting period.
type PeriodResponse struct {
	ID        string            `json:"id"`
	Name      string            `json:"name"`
	StartDate string            `json:"start_date,omitempty"`
	EndDate   string            `json:"end_date,omitempty"`
	Status    string            `json:"status,omitempty"`
	Integrity IntegrityResponse `json:"integrity"`
}

// FromPeriod converts a domain period to its HTTP shape.
func FromPeriod(period *disclosure.Period) PeriodResponse {
	return PeriodResponse{
		ID:        period.ID,
		Name:      period.Name,
		StartDate: formatDate(period.StartDate),
		EndDate:   formatDate(period.EndDate),
		Status:    period.Status,
		Integrity: fromIntegrity(period.IntegrityRecord),
	}
}

// SectionResponse is the HTTP shape of a disclosure section.
type SectionResponse struct {
	ID              string `json:"id"`
	PeriodID        string `json:"period_id"`
	Title           string `json:"title"`
	Narrative       string `json:"narrative"`
	OwnerID         string `json:"owner_id,omitempty"`
	SourceSectionID string `json:"source_section_id,omitempty"`
	SourcePeriodID  string `json:"source_period_id,omitempty"`
}

// FromSection converts a domain section to its HTTP shape.
func FromSection(section *disclosure.Section) SectionResponse {
	return SectionResponse{
		ID:              section.ID,
		PeriodID:        section.PeriodID,
		Title:           section.Title,
		Narrative:       section.Narrative,
		OwnerID:         section.OwnerID,
		SourceSectionID: section.SourceSectionID,
		SourcePeriodID:  section.SourcePeriodID,
	}
}

// DataPointResponse is the HTTP shape of a data point.
type DataPointResponse struct {
	ID        string `json:"id"`
	SectionID string `json:"section_id"`
	Metric    string `json:"metric"`
	Value     string `json:"value"`
	Unit      string `json:"unit,omitempty"`
}

// FromDataPoint converts a domain data point to its HTTP shape.
func FromDataPoint(dataPoint *disclosure.DataPoint) DataPointResponse {
	return DataPointResponse{
		ID:        dataPoint.ID,
		SectionID: dataPoint.SectionID,
		Metric:    dataPoint.Metric,
		Value:     dataPoint.Value,
		Unit:      dataPoint.Unit,
	}
}

// SnapshotResponse is one frozen decision version.
type SnapshotResponse struct {
	Version int               `json:"version"`
	Hash    string            `json:"integrity_hash"`
	Fields  []integrity.Field `json:"fields"`
}

// DecisionResponse is the HTTP shape of a review decision.
type DecisionResponse struct {
	ID        string             `json:"id"`
	SectionID string             `json:"section_id"`
	Title     string             `json:"title"`
	Rationale string             `json:"rationale"`
	Outcome   string             `json:"outcome"`
	Version   int                `json:"version"`
	Integrity IntegrityResponse  `json:"integrity"`
	Snapshots []SnapshotResponse `json:"snapshots,omitempty"`
}

// FromDecision converts a domain decision to its HTTP shape.
func FromDecision(decision *disclosure.Decision) DecisionResponse {
	out := DecisionResponse{
		ID:        decision.ID,
		SectionID: decision.SectionID,
		Title:     decision.Title,
		Rationale: decision.Rationale,
		Outcome:   decision.Outcome,
		Version:   decision.Version,
		Integrity: fromIntegrity(decision.IntegrityRecord),
	}
	for _, snapshot := range decision.Snapshots {
		out.Snapshots = append(out.Snapshots, SnapshotResponse{
			Version: snapshot.Version,
			Hash:    snapshot.Hash,
			Fields:  snapshot.Fields,
		})
	}
	return out
}

// SectionsResponse wraps a list of sections.
type SectionsResponse struct {
	Sections []SectionResponse `json:"sections"`
	Count    int               `json:"count"`
}
