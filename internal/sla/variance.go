package sla

import (
	"fmt"
	"math"

	"github.com/alexanderramin/slacalc/internal/domain"
)

const secondsPerDay = 24 * 60 * 60

// Variance returns delivered minus due in whole days. Both dates are taken at
// midnight UTC and the difference is rounded, not truncated.
func Variance(due, delivered domain.CalendarDate) int {
	diff := delivered.Midnight().Unix() - due.Midnight().Unix()
	return int(math.Round(float64(diff) / secondsPerDay))
}

// Classify maps a signed variance onto an outcome.
func Classify(varianceDays int) domain.SlaOutcome {
	switch {
	case varianceDays < 0:
		return domain.OutcomeEarly
	case varianceDays == 0:
		return domain.OutcomeOnTime
	default:
		return domain.OutcomeLate
	}
}

// Describe returns the human-readable detail for a variance.
func Describe(varianceDays int) string {
	switch {
	case varianceDays < 0:
		return fmt.Sprintf("%d dia(s) antes do prazo", -varianceDays)
	case varianceDays == 0:
		return "Entregue no prazo (no dia previsto)"
	default:
		return fmt.Sprintf("%d dia(s) de atraso", varianceDays)
	}
}

// Evaluate computes variance, outcome and detail in one step.
func Evaluate(due, delivered domain.CalendarDate) domain.Evaluation {
	v := Variance(due, delivered)
	return domain.Evaluation{
		Outcome:      Classify(v),
		VarianceDays: v,
		Detail:       Describe(v),
	}
}

// ClampedDelay is the simplified two-way policy: early deliveries count as
// zero days late.
func ClampedDelay(varianceDays int) int {
	if varianceDays < 0 {
		return 0
	}
	return varianceDays
}

// LegacyStatus is the two-way status of the simplified policy.
func LegacyStatus(varianceDays int) string {
	if ClampedDelay(varianceDays) > 0 {
		return domain.OutcomeLate.Label()
	}
	return domain.OutcomeOnTime.Label()
}
