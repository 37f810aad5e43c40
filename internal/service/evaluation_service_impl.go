package service

import (
	"context"
	"time"

	"github.com/alexanderramin/slacalc/internal/domain"
	"github.com/alexanderramin/slacalc/internal/sla"
	"github.com/google/uuid"
)

type evaluationService struct {
	history  HistoryService
	now      func() time.Time
	newID    func() string
	observer UseCaseObserver
}

// EvaluationOption configures the evaluation service.
type EvaluationOption func(*evaluationService)

// WithClock overrides the clock that stamps createdAt.
func WithClock(now func() time.Time) EvaluationOption {
	return func(s *evaluationService) {
		s.now = now
	}
}

// WithIDGenerator overrides record id generation.
func WithIDGenerator(newID func() string) EvaluationOption {
	return func(s *evaluationService) {
		s.newID = newID
	}
}

// WithObserver attaches a use-case observer.
func WithObserver(obs UseCaseObserver) EvaluationOption {
	return func(s *evaluationService) {
		if obs != nil {
			s.observer = obs
		}
	}
}

func NewEvaluationService(history HistoryService, opts ...EvaluationOption) EvaluationService {
	s := &evaluationService{
		history:  history,
		now:      time.Now,
		newID:    func() string { return uuid.New().String() },
		observer: NoopUseCaseObserver{},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Evaluate validates in field by field, in the order case id, due date,
// delivered date, and reports the first failure.
func (s *evaluationService) Evaluate(ctx context.Context, in EvaluationInput) (domain.EvaluationRecord, error) {
	caseID := domain.NormalizeCaseID(in.CaseID)
	if caseID == "" {
		return domain.EvaluationRecord{}, domain.ErrCaseIDRequired
	}
	if !domain.IsValidCaseID(caseID) {
		return domain.EvaluationRecord{}, domain.ErrCaseIDLength
	}
	due, ok := sla.ParseDisplay(in.DueDate)
	if !ok {
		return domain.EvaluationRecord{}, domain.ErrInvalidDueDate
	}
	delivered, ok := sla.ParseDisplay(in.DeliveredDate)
	if !ok {
		return domain.EvaluationRecord{}, domain.ErrInvalidDeliveredDate
	}

	eval := sla.Evaluate(due, delivered)
	return domain.EvaluationRecord{
		ID:                   s.newID(),
		CaseID:               caseID,
		DueDateDisplay:       in.DueDate,
		DeliveredDateDisplay: in.DeliveredDate,
		Outcome:              eval.Outcome,
		VarianceDays:         eval.VarianceDays,
		CreatedAt:            s.now().UTC(),
	}, nil
}

func (s *evaluationService) Submit(ctx context.Context, in EvaluationInput) (rec domain.EvaluationRecord, err error) {
	fields := map[string]any{}
	defer observe(ctx, s.observer, "evaluation.submit", time.Now().UTC(), &err, fields)

	rec, err = s.Evaluate(ctx, in)
	if err != nil {
		return domain.EvaluationRecord{}, err
	}
	fields["id"] = rec.ID
	fields["outcome"] = string(rec.Outcome)
	fields["variance_days"] = rec.VarianceDays

	if _, err = s.history.Append(ctx, rec); err != nil {
		return domain.EvaluationRecord{}, err
	}
	return rec, nil
}

func (s *evaluationService) Preview(due, delivered string) (domain.Evaluation, bool) {
	d, ok := sla.ParseDisplay(due)
	if !ok {
		return domain.Evaluation{}, false
	}
	e, ok := sla.ParseDisplay(delivered)
	if !ok {
		return domain.Evaluation{}, false
	}
	return sla.Evaluate(d, e), true
}
