package domain

import (
	"encoding/json"
	"strings"
)

type SlaOutcome string

const (
	OutcomeEarly  SlaOutcome = "early"
	OutcomeOnTime SlaOutcome = "on_time"
	OutcomeLate   SlaOutcome = "late"
)

// Label returns the pt-BR display label used in tables and CSV exports.
func (o SlaOutcome) Label() string {
	switch o {
	case OutcomeEarly:
		return "Antecipado"
	case OutcomeOnTime:
		return "No prazo"
	case OutcomeLate:
		return "Atrasado"
	default:
		return ""
	}
}

// Valid reports whether o is one of the three known outcomes.
func (o SlaOutcome) Valid() bool {
	switch o {
	case OutcomeEarly, OutcomeOnTime, OutcomeLate:
		return true
	}
	return false
}

// outcomeAliases maps stored spellings, including the labels written by older
// versions of the tool, onto canonical outcomes.
var outcomeAliases = map[string]SlaOutcome{
	"early":      OutcomeEarly,
	"antecipado": OutcomeEarly,
	"on_time":    OutcomeOnTime,
	"ontime":     OutcomeOnTime,
	"no prazo":   OutcomeOnTime,
	"late":       OutcomeLate,
	"atrasado":   OutcomeLate,
}

// ParseOutcome resolves a stored outcome string. The second result is false
// when the text is not recognized.
func ParseOutcome(s string) (SlaOutcome, bool) {
	o, ok := outcomeAliases[strings.ToLower(strings.TrimSpace(s))]
	return o, ok
}

// UnmarshalJSON accepts any alias known to ParseOutcome. Unknown text decodes
// to the empty outcome so the caller can re-derive it from the variance.
func (o *SlaOutcome) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		*o = ""
		return nil
	}
	parsed, _ := ParseOutcome(s)
	*o = parsed
	return nil
}

// Field names an input of the pending evaluation entry.
type Field string

const (
	FieldCaseID        Field = "case_id"
	FieldDueDate       Field = "due_date"
	FieldDeliveredDate Field = "delivered_date"
)

// FormState is the readiness of the pending entry, re-derived from the field
// values on every edit.
type FormState int

const (
	FormEmpty FormState = iota
	FormCaseEntered
	FormDueDateEntered
	FormReady
	FormSubmitted
)

func (s FormState) String() string {
	switch s {
	case FormEmpty:
		return "empty"
	case FormCaseEntered:
		return "case_entered"
	case FormDueDateEntered:
		return "due_date_entered"
	case FormReady:
		return "ready"
	case FormSubmitted:
		return "submitted"
	default:
		return "unknown"
	}
}
