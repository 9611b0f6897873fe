package handler

import "esgledger/internal/integrity"

// VerifyResponse is the HTTP shape of a verification or override outcome.
type VerifyResponse struct {
	EntityID string `json:"entity_id"`
	Valid    bool   `json:"valid"`
	Status   string `json:"status"`
	Details  string `json:"details,omitempty"`
}

// FromVerifyResult converts a domain VerifyResult to an HTTP response.
func FromVerifyResult(result integrity.VerifyResult) VerifyResponse {
	return VerifyResponse{
		EntityID: result.EntityID,
		Valid:    result.Valid,
		Status:   string(result.Status),
		Details:  result.Details,
	}
}

// GateResponse is the HTTP shape of the publish gate decision.
type GateResponse struct {
	CanPublish bool     `json:"can_publish"`
	FailingIDs []string `json:"failing_entity_ids,omitempty"`
}

// FromGateResult converts a domain GateResult to an HTTP response.
func FromGateResult(result integrity.GateResult) GateResponse {
	return GateResponse{
		CanPublish: result.CanPublish,
		FailingIDs: result.FailingIDs,
	}
}
