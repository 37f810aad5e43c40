package domain

import "time"

// EvaluationRecord is one persisted history entry. It is created once by the
// evaluation service and never modified afterwards.
type EvaluationRecord struct {
	ID                   string     `json:"id"`
	CaseID               string     `json:"caseId,omitempty"`
	DueDateDisplay       string     `json:"dueDateDisplay"`
	DeliveredDateDisplay string     `json:"deliveredDateDisplay"`
	Outcome              SlaOutcome `json:"outcome"`
	VarianceDays         int        `json:"varianceDays"`
	CreatedAt            time.Time  `json:"createdAt"`
}

// Evaluation is the computed part of a record: what the due and delivered
// dates say about the SLA.
type Evaluation struct {
	Outcome      SlaOutcome
	VarianceDays int
	Detail       string
}
