package csvexport

import (
	"errors"
	"fmt"
	"time"

	"github.com/alexanderramin/slacalc/internal/domain"
	"github.com/alexanderramin/slacalc/internal/sla"
)

// ErrEmptyHistory is returned when an export is requested with no records.
var ErrEmptyHistory = errors.New("no records to export")

// EmptyHistoryNotice is shown to the user instead of writing an empty file.
const EmptyHistoryNotice = "Não há registros para exportar."

const filenamePrefix = "sla-historico-"

var (
	HistoryHeader = []string{"nf", "prevista", "entrega", "situacao", "variacao_dias", "status_texto", "consultado_em"}
	LegacyHeader  = []string{"prevista", "entrega", "status", "atraso_dias", "criado_em"}
)

// Layout selects the column set of an export.
type Layout int

const (
	// LayoutFull is the seven-column, three-way outcome layout.
	LayoutFull Layout = iota
	// LayoutLegacy is the five-column layout of the simplified policy, where
	// early deliveries count as zero days late.
	LayoutLegacy
)

// FileSaver persists exported content under filename and reports where it went.
type FileSaver interface {
	Save(filename string, content []byte) (string, error)
}

// Notifier shows a short message to the user.
type Notifier interface {
	Notify(message string)
}

// NotifierFunc adapts a function to Notifier.
type NotifierFunc func(message string)

func (f NotifierFunc) Notify(message string) { f(message) }

// Result describes a written export.
type Result struct {
	Path     string
	Filename string
	Rows     int
}

// Exporter builds CSV from a snapshot of records and saves it.
type Exporter struct {
	saver    FileSaver
	notifier Notifier
	now      func() time.Time
}

// ExporterOption configures an Exporter.
type ExporterOption func(*Exporter)

// WithClock overrides the clock used for the filename date.
func WithClock(now func() time.Time) ExporterOption {
	return func(e *Exporter) {
		e.now = now
	}
}

func NewExporter(saver FileSaver, notifier Notifier, opts ...ExporterOption) *Exporter {
	e := &Exporter{saver: saver, notifier: notifier, now: time.Now}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// WithSaver returns a copy of e that saves through saver.
func (e *Exporter) WithSaver(saver FileSaver) *Exporter {
	c := *e
	c.saver = saver
	return &c
}

// Export writes records in the given layout. An empty snapshot produces no
// file: the notifier is told and ErrEmptyHistory is returned.
func (e *Exporter) Export(records []domain.EvaluationRecord, layout Layout) (*Result, error) {
	if len(records) == 0 {
		if e.notifier != nil {
			e.notifier.Notify(EmptyHistoryNotice)
		}
		return nil, ErrEmptyHistory
	}

	header, rows := HistoryHeader, HistoryRows(records)
	if layout == LayoutLegacy {
		header, rows = LegacyHeader, LegacyRows(records)
	}

	name := Filename(e.now())
	path, err := e.saver.Save(name, []byte(ToCSV(header, rows)))
	if err != nil {
		return nil, fmt.Errorf("saving %s: %w", name, err)
	}
	return &Result{Path: path, Filename: name, Rows: len(rows)}, nil
}

// HistoryRows maps records onto the LayoutFull columns.
func HistoryRows(records []domain.EvaluationRecord) [][]any {
	rows := make([][]any, 0, len(records))
	for _, r := range records {
		rows = append(rows, []any{
			r.CaseID,
			r.DueDateDisplay,
			r.DeliveredDateDisplay,
			r.Outcome.Label(),
			r.VarianceDays,
			sla.Describe(r.VarianceDays),
			sla.FormatTimestamp(r.CreatedAt),
		})
	}
	return rows
}

// LegacyRows maps records onto the LayoutLegacy columns.
func LegacyRows(records []domain.EvaluationRecord) [][]any {
	rows := make([][]any, 0, len(records))
	for _, r := range records {
		rows = append(rows, []any{
			r.DueDateDisplay,
			r.DeliveredDateDisplay,
			sla.LegacyStatus(r.VarianceDays),
			sla.ClampedDelay(r.VarianceDays),
			sla.FormatTimestamp(r.CreatedAt),
		})
	}
	return rows
}

// Filename returns sla-historico-<YYYY-MM-DD>.csv for the calendar date of
// now in the display zone.
func Filename(now time.Time) string {
	return filenamePrefix + sla.Today(now).String() + ".csv"
}
