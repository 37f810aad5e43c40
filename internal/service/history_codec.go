package service

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/slacalc/internal/domain"
	"github.com/alexanderramin/slacalc/internal/sla"
	"github.com/google/uuid"
)

// errNotASequence is returned when stored history is valid JSON but not an array.
var errNotASequence = errors.New("history is not a JSON array")

// storedRecord accepts both the current field names and the ones written by
// the original browser tool (nf, prevista, entrega, situacao, ...).
type storedRecord struct {
	ID string `json:"id"`

	CaseID string `json:"caseId"`
	NF     string `json:"nf"`

	DueDateDisplay string `json:"dueDateDisplay"`
	Prevista       string `json:"prevista"`

	DeliveredDateDisplay string `json:"deliveredDateDisplay"`
	Entrega              string `json:"entrega"`

	Outcome  domain.SlaOutcome `json:"outcome"`
	Situacao domain.SlaOutcome `json:"situacao"`
	Status   domain.SlaOutcome `json:"status"`

	VarianceDays *int `json:"varianceDays"`
	Variacao     *int `json:"variacao"`
	AtrasoDias   *int `json:"atrasoDias"`

	CreatedAt string `json:"createdAt"`
	CriadoEm  string `json:"criadoEm"`
}

// decodeHistory parses a stored history blob. Elements that are not
// well-formed objects are skipped and counted; a blob that is not a JSON array
// is an error.
func decodeHistory(data []byte) (records []domain.EvaluationRecord, skipped int, err error) {
	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) {
			return nil, 0, errNotASequence
		}
		return nil, 0, fmt.Errorf("decoding history: %w", err)
	}
	if raw == nil {
		// JSON null
		return nil, 0, errNotASequence
	}

	records = make([]domain.EvaluationRecord, 0, len(raw))
	seen := make(map[string]bool, len(raw))
	for _, elem := range raw {
		if bytes.Equal(bytes.TrimSpace(elem), []byte("null")) {
			skipped++
			continue
		}
		var s storedRecord
		if err := json.Unmarshal(elem, &s); err != nil {
			skipped++
			continue
		}
		rec := s.normalize()
		if seen[rec.ID] {
			skipped++
			continue
		}
		seen[rec.ID] = true
		records = append(records, rec)
	}
	return records, skipped, nil
}

func (s storedRecord) normalize() domain.EvaluationRecord {
	rec := domain.EvaluationRecord{
		ID:                   strings.TrimSpace(s.ID),
		CaseID:               domain.CoalesceStr(s.CaseID, s.NF),
		DueDateDisplay:       domain.CoalesceStr(s.DueDateDisplay, s.Prevista),
		DeliveredDateDisplay: domain.CoalesceStr(s.DeliveredDateDisplay, s.Entrega),
	}
	if rec.ID == "" {
		rec.ID = uuid.New().String()
	}

	computed := 0
	due, dueOK := sla.ParseDisplay(rec.DueDateDisplay)
	delivered, deliveredOK := sla.ParseDisplay(rec.DeliveredDateDisplay)
	if dueOK && deliveredOK {
		computed = sla.Variance(due, delivered)
	}
	rec.VarianceDays = domain.IntFromPtrWithDefault(computed, s.VarianceDays, s.Variacao, s.AtrasoDias)

	rec.Outcome = domain.SlaOutcome(domain.CoalesceStr(string(s.Outcome), string(s.Situacao), string(s.Status)))
	if !rec.Outcome.Valid() {
		rec.Outcome = sla.Classify(rec.VarianceDays)
	}

	if t, err := time.Parse(time.RFC3339Nano, domain.CoalesceStr(s.CreatedAt, s.CriadoEm)); err == nil {
		rec.CreatedAt = t
	}
	return rec
}

func encodeHistory(records []domain.EvaluationRecord) (string, error) {
	if records == nil {
		records = []domain.EvaluationRecord{}
	}
	data, err := json.Marshal(records)
	if err != nil {
		return "", fmt.Errorf("encoding history: %w", err)
	}
	return string(data), nil
}
