package service

import (
	"context"

	"github.com/alexanderramin/slacalc/internal/csvexport"
	"github.com/alexanderramin/slacalc/internal/domain"
)

// EvaluationInput is the pending entry as typed by the user.
type EvaluationInput struct {
	CaseID        string
	DueDate       string
	DeliveredDate string
}

type EvaluationService interface {
	// Evaluate validates the input and builds a new record without saving it.
	Evaluate(ctx context.Context, in EvaluationInput) (domain.EvaluationRecord, error)
	// Submit evaluates the input and prepends the record to the history.
	Submit(ctx context.Context, in EvaluationInput) (domain.EvaluationRecord, error)
	// Preview evaluates the two dates alone; false when either does not parse.
	Preview(due, delivered string) (domain.Evaluation, bool)
}

type HistoryService interface {
	Records() []domain.EvaluationRecord
	Len() int
	Get(id string) (domain.EvaluationRecord, bool)
	Reload(ctx context.Context) []domain.EvaluationRecord
	Append(ctx context.Context, rec domain.EvaluationRecord) ([]domain.EvaluationRecord, error)
	PrependAll(ctx context.Context, recs []domain.EvaluationRecord) ([]domain.EvaluationRecord, error)
	Remove(ctx context.Context, id string) ([]domain.EvaluationRecord, error)
	Clear(ctx context.Context, confirm Confirmer) ([]domain.EvaluationRecord, error)
}

// Confirmer asks the user a yes/no question.
type Confirmer interface {
	Confirm(prompt string) bool
}

// ConfirmFunc adapts a function to Confirmer.
type ConfirmFunc func(prompt string) bool

func (f ConfirmFunc) Confirm(prompt string) bool { return f(prompt) }

type ExportRequest struct {
	Layout csvexport.Layout
	// Dir overrides the configured export directory when set.
	Dir string
}

type ExportService interface {
	Export(ctx context.Context, req ExportRequest) (*csvexport.Result, error)
}

// ImportResult summarizes an import.
type ImportResult struct {
	Imported   int
	Duplicates int
	Skipped    int
}

type ImportService interface {
	ImportFile(ctx context.Context, path string) (*ImportResult, error)
}
