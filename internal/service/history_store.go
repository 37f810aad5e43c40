package service

import (
	"context"
	"errors"
	"slices"
	"time"

	"github.com/alexanderramin/slacalc/internal/domain"
	"github.com/alexanderramin/slacalc/internal/repository"
)

// HistoryKey is the key-value entry holding the whole history.
const HistoryKey = "sla_historico"

// ClearHistoryPrompt is the question asked before the history is wiped.
const ClearHistoryPrompt = "Tem certeza que deseja limpar todo o histórico?"

// ErrClearNotConfirmed is returned when the user declines to clear the history.
var ErrClearNotConfirmed = errors.New("clear history not confirmed")

// HistoryStore owns the newest-first list of evaluation records. Every
// mutation writes the full list to the key-value store before the in-memory
// copy changes; a failed write leaves both untouched.
type HistoryStore struct {
	kv       repository.KVRepo
	records  []domain.EvaluationRecord
	observer UseCaseObserver
}

// NewHistoryStore creates a store and loads the current history.
func NewHistoryStore(ctx context.Context, kv repository.KVRepo, observers ...UseCaseObserver) *HistoryStore {
	s := &HistoryStore{kv: kv, observer: useCaseObserverOrNoop(observers)}
	s.Reload(ctx)
	return s
}

// Reload re-reads the history. Absent, unreadable or malformed data yields an
// empty history; the problem is only reported to the observer.
func (s *HistoryStore) Reload(ctx context.Context) []domain.EvaluationRecord {
	startedAt := time.Now().UTC()
	fields := map[string]any{"key": HistoryKey}

	records, recovered := s.read(ctx, fields)
	fields["count"] = len(records)
	fields["recovered"] = recovered
	observe(ctx, s.observer, "history.load", startedAt, nil, fields)

	s.records = records
	return s.Records()
}

func (s *HistoryStore) read(ctx context.Context, fields map[string]any) ([]domain.EvaluationRecord, bool) {
	raw, err := s.kv.Get(ctx, HistoryKey)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, false
		}
		fields["read_error"] = err.Error()
		return nil, true
	}

	records, skipped, err := decodeHistory([]byte(raw))
	if err != nil {
		fields["read_error"] = err.Error()
		return nil, true
	}
	if skipped > 0 {
		fields["skipped"] = skipped
	}
	return records, skipped > 0
}

// Records returns a copy of the history, newest first.
func (s *HistoryStore) Records() []domain.EvaluationRecord {
	return slices.Clone(s.records)
}

func (s *HistoryStore) Len() int {
	return len(s.records)
}

func (s *HistoryStore) Get(id string) (domain.EvaluationRecord, bool) {
	for _, r := range s.records {
		if r.ID == id {
			return r, true
		}
	}
	return domain.EvaluationRecord{}, false
}

// Append inserts rec at the front.
func (s *HistoryStore) Append(ctx context.Context, rec domain.EvaluationRecord) ([]domain.EvaluationRecord, error) {
	return s.PrependAll(ctx, []domain.EvaluationRecord{rec})
}

// PrependAll inserts recs at the front, keeping their relative order.
func (s *HistoryStore) PrependAll(ctx context.Context, recs []domain.EvaluationRecord) (_ []domain.EvaluationRecord, err error) {
	defer observe(ctx, s.observer, "history.append", time.Now().UTC(), &err, map[string]any{"count": len(recs)})

	next := make([]domain.EvaluationRecord, 0, len(recs)+len(s.records))
	next = append(next, recs...)
	next = append(next, s.records...)
	if err = s.commit(ctx, next); err != nil {
		return s.Records(), err
	}
	return s.Records(), nil
}

// Remove deletes the record with id. A missing id is not an error.
func (s *HistoryStore) Remove(ctx context.Context, id string) (_ []domain.EvaluationRecord, err error) {
	fields := map[string]any{"id": id}
	defer observe(ctx, s.observer, "history.remove", time.Now().UTC(), &err, fields)

	idx := slices.IndexFunc(s.records, func(r domain.EvaluationRecord) bool { return r.ID == id })
	fields["found"] = idx >= 0
	if idx < 0 {
		return s.Records(), nil
	}

	next := slices.Delete(slices.Clone(s.records), idx, idx+1)
	if err = s.commit(ctx, next); err != nil {
		return s.Records(), err
	}
	return s.Records(), nil
}

// Clear empties the history once confirm agrees. A nil confirm or a "no"
// returns ErrClearNotConfirmed and changes nothing.
func (s *HistoryStore) Clear(ctx context.Context, confirm Confirmer) (_ []domain.EvaluationRecord, err error) {
	fields := map[string]any{"count": len(s.records)}
	defer observe(ctx, s.observer, "history.clear", time.Now().UTC(), &err, fields)

	if confirm == nil || !confirm.Confirm(ClearHistoryPrompt) {
		fields["declined"] = true
		return s.Records(), ErrClearNotConfirmed
	}
	if err = s.commit(ctx, nil); err != nil {
		return s.Records(), err
	}
	return s.Records(), nil
}

func (s *HistoryStore) commit(ctx context.Context, next []domain.EvaluationRecord) error {
	encoded, err := encodeHistory(next)
	if err != nil {
		return err
	}
	if err := s.kv.Put(ctx, HistoryKey, encoded); err != nil {
		return err
	}
	s.records = next
	return nil
}

var _ HistoryService = (*HistoryStore)(nil)
