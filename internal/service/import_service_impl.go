package service

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/alexanderramin/slacalc/internal/domain"
)

type importService struct {
	history  HistoryService
	observer UseCaseObserver
}

func NewImportService(history HistoryService, observers ...UseCaseObserver) ImportService {
	return &importService{history: history, observer: useCaseObserverOrNoop(observers)}
}

// ImportFile reads a JSON array of records, in the current or the legacy
// schema, and prepends the ones whose id is not already in the history.
func (s *importService) ImportFile(ctx context.Context, path string) (res *ImportResult, err error) {
	fields := map[string]any{"path": path}
	defer observe(ctx, s.observer, "history.import", time.Now().UTC(), &err, fields)

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading import file: %w", err)
	}

	records, skipped, err := decodeHistory(data)
	if err != nil {
		return nil, fmt.Errorf("import file %s: %w", path, err)
	}

	res = &ImportResult{Skipped: skipped}
	fresh := make([]domain.EvaluationRecord, 0, len(records))
	for _, r := range records {
		if _, exists := s.history.Get(r.ID); exists {
			res.Duplicates++
			continue
		}
		fresh = append(fresh, r)
	}

	if len(fresh) > 0 {
		if _, err = s.history.PrependAll(ctx, fresh); err != nil {
			return nil, err
		}
	}
	res.Imported = len(fresh)
	fields["imported"] = res.Imported
	fields["duplicates"] = res.Duplicates
	return res, nil
}
