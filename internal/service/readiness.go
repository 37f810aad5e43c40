package service

import (
	"github.com/alexanderramin/slacalc/internal/domain"
	"github.com/alexanderramin/slacalc/internal/sla"
)

// Readiness projects the current field values onto the entry state machine.
// It holds no memory: editing an earlier field moves the state back.
func Readiness(in EvaluationInput) domain.FormState {
	if !domain.IsValidCaseID(domain.NormalizeCaseID(in.CaseID)) {
		return domain.FormEmpty
	}
	if _, ok := sla.ParseDisplay(in.DueDate); !ok {
		return domain.FormCaseEntered
	}
	if _, ok := sla.ParseDisplay(in.DeliveredDate); !ok {
		return domain.FormDueDateEntered
	}
	return domain.FormReady
}
