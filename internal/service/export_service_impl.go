package service

import (
	"context"
	"time"

	"github.com/alexanderramin/slacalc/internal/csvexport"
)

type exportService struct {
	history  HistoryService
	exporter *csvexport.Exporter
	observer UseCaseObserver
}

func NewExportService(history HistoryService, exporter *csvexport.Exporter, observers ...UseCaseObserver) ExportService {
	return &exportService{
		history:  history,
		exporter: exporter,
		observer: useCaseObserverOrNoop(observers),
	}
}

// Export writes a snapshot of the history taken at call time.
func (s *exportService) Export(ctx context.Context, req ExportRequest) (res *csvexport.Result, err error) {
	fields := map[string]any{"layout": int(req.Layout)}
	defer observe(ctx, s.observer, "history.export", time.Now().UTC(), &err, fields)

	snapshot := s.history.Records()
	fields["count"] = len(snapshot)

	exporter := s.exporter
	if req.Dir != "" {
		exporter = exporter.WithSaver(csvexport.DirSaver{Dir: req.Dir})
		fields["dir"] = req.Dir
	}

	res, err = exporter.Export(snapshot, req.Layout)
	if err != nil {
		return nil, err
	}
	fields["path"] = res.Path
	return res, nil
}
