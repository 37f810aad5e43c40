package testutil

import (
	"fmt"
	"sync/atomic"
	"time"

	"github.com/alexanderramin/slacalc/internal/domain"
	"github.com/google/uuid"
)

var testCaseCounter atomic.Int64

// RecordOption customizes a fixture record.
type RecordOption func(*domain.EvaluationRecord)

func WithRecordID(id string) RecordOption {
	return func(r *domain.EvaluationRecord) {
		r.ID = id
	}
}

func WithCaseID(id string) RecordOption {
	return func(r *domain.EvaluationRecord) {
		r.CaseID = id
	}
}

// WithDates sets both display dates; outcome and variance are left alone.
func WithDates(due, delivered string) RecordOption {
	return func(r *domain.EvaluationRecord) {
		r.DueDateDisplay = due
		r.DeliveredDateDisplay = delivered
	}
}

// WithVariance sets the variance and the outcome it implies.
func WithVariance(days int) RecordOption {
	return func(r *domain.EvaluationRecord) {
		r.VarianceDays = days
		switch {
		case days < 0:
			r.Outcome = domain.OutcomeEarly
		case days == 0:
			r.Outcome = domain.OutcomeOnTime
		default:
			r.Outcome = domain.OutcomeLate
		}
	}
}

func WithCreatedAt(t time.Time) RecordOption {
	return func(r *domain.EvaluationRecord) {
		r.CreatedAt = t
	}
}

// NewTestRecord returns an on-time record with a unique case id.
func NewTestRecord(opts ...RecordOption) domain.EvaluationRecord {
	n := testCaseCounter.Add(1)
	r := domain.EvaluationRecord{
		ID:                   uuid.New().String(),
		CaseID:               fmt.Sprintf("%06d", n%1000000),
		DueDateDisplay:       "10/01/2024",
		DeliveredDateDisplay: "10/01/2024",
		Outcome:              domain.OutcomeOnTime,
		VarianceDays:         0,
		CreatedAt:            time.Date(2024, time.January, 10, 15, 0, 0, 0, time.UTC),
	}
	for _, opt := range opts {
		opt(&r)
	}
	return r
}
