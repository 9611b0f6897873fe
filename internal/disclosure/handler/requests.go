package handler

import (
	"strings"
	"time"

	"esgledger/internal/disclosure"
	dErrors "esgledger/pkg/domain-errors"
)

const dateLayout = "2006-01-02"

// PeriodRequest is the HTTP request body for POST /periods, PUT
// /periods/{id}, and POST /periods/{id}/rollover. Dates are calendar days.
type PeriodRequest struct {
	Name       string `json:"name"`
	StartDate  string `json:"start_date"`
	EndDate    string `json:"end_date"`
	Status     string `json:"status"`
	ChangeNote string `json:"change_note"`

	parsedStart time.Time
	parsedEnd   time.Time
}

// Validate validates and parses the period request.
func (r *PeriodRequest) Validate() error {
	r.Name = strings.TrimSpace(r.Name)
	if r.Name == "" {
		return dErrors.New(dErrors.CodeValidation, "name is required")
	}

	var err error
	if r.StartDate != "" {
		if r.parsedStart, err = time.Parse(dateLayout, r.StartDate); err != nil {
			return dErrors.New(dErrors.CodeValidation, "start_date must be formatted YYYY-MM-DD")
		}
	}
	if r.EndDate != "" {
		if r.parsedEnd, err = time.Parse(dateLayout, r.EndDate); err != nil {
			return dErrors.New(dErrors.CodeValidation, "end_date must be formatted YYYY-MM-DD")
		}
	}
	if !r.parsedStart.IsZero() && !r.parsedEnd.IsZero() && r.parsedEnd.Before(r.parsedStart) {
		return dErrors.New(dErrors.CodeValidation, "end_date must not precede start_date")
	}
	return nil
}

// ToInput converts the validated request to a service input.
func (r *PeriodRequest) ToInput() disclosure.PeriodInput {
	return disclosure.PeriodInput{
		Name:       r.Name,
		StartDate:  r.parsedStart,
		EndDate:    r.parsedEnd,
		Status:     r.Status,
		ChangeNote: r.ChangeNote,
	}
}

// SectionRequest is the HTTP request body for POST /sections and PUT
// /sections/{id}. PeriodID is ignored on update.
type SectionRequest struct {
	PeriodID   string `json:"period_id"`
	Title      string `json:"title"`
	Narrative  string `json:"narrative"`
	OwnerID    string `json:"owner_id"`
	ChangeNote string `json:"change_note"`
}

// Validate validates the section request. requirePeriod is set on create.
func (r *SectionRequest) Validate(requirePeriod bool) error {
	r.Title = strings.TrimSpace(r.Title)
	if r.Title == "" {
		return dErrors.New(dErrors.CodeValidation, "title is required")
	}
	if requirePeriod && strings.TrimSpace(r.PeriodID) == "" {
		return dErrors.New(dErrors.CodeValidation, "period_id is required")
	}
	return nil
}

// ToInput converts the validated request to a service input.
func (r *SectionRequest) ToInput() disclosure.SectionInput {
	return disclosure.SectionInput{
		PeriodID:   r.PeriodID,
		Title:      r.Title,
		Narrative:  r.Narrative,
		OwnerID:    r.OwnerID,
		ChangeNote: r.ChangeNote,
	}
}

// DataPointRequest is the HTTP request body for PUT /data-points.
type DataPointRequest struct {
	ID         string `json:"id"`
	SectionID  string `json:"section_id"`
	Metric     string `json:"metric"`
	Value      string `json:"value"`
	Unit       string `json:"unit"`
	ChangeNote string `json:"change_note"`
}

// Validate validates the data point request.
func (r *DataPointRequest) Validate() error {
	r.Metric = strings.TrimSpace(r.Metric)
	if r.Metric == "" {
		return dErrors.New(dErrors.CodeValidation, "metric is required")
	}
	if strings.TrimSpace(r.SectionID) == "" {
		return dErrors.New(dErrors.CodeValidation, "section_id is required")
	}
	return nil
}

// ToInput converts the validated request to a service input.
func (r *DataPointRequest) ToInput() disclosure.DataPointInput {
	return disclosure.DataPointInput{
		ID:         r.ID,
		SectionID:  r.SectionID,
		Metric:     r.Metric,
		Value:      r.Value,
		Unit:       r.Unit,
		ChangeNote: r.ChangeNote,
	}
}

// DecisionRequest is the HTTP request body for POST /decisions and PUT
// /decisions/{id}. SectionID is ignored on update.
type DecisionRequest struct {
	SectionID  string `json:"section_id"`
	Title      string `json:"title"`
	Rationale  string `json:"rationale"`
	Outcome    string `json:"outcome"`
	ChangeNote string `json:"change_note"`
}

// Validate validates the decision request. requireSection is set on create.
func (r *DecisionRequest) Validate(requireSection bool) error {
	r.Title = strings.TrimSpace(r.Title)
	if r.Title == "" {
		return dErrors.New(dErrors.CodeValidation, "title is required")
	}
	if requireSection && strings.TrimSpace(r.SectionID) == "" {
		return dErrors.New(dErrors.CodeValidation, "section_id is required")
	}
	return nil
}

// ToInput converts the validated request to a service input.
func (r *DecisionRequest) ToInput() disclosure.DecisionInput {
	return disclosure.DecisionInput{
		SectionID:  r.SectionID,
		Title:      r.Title,
		Rationale:  r.Rationale,
		Outcome:    r.Outcome,
		ChangeNote: r.ChangeNote,
	}
}
