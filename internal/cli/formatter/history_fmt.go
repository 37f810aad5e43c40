package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/slacalc/internal/domain"
	"github.com/alexanderramin/slacalc/internal/sla"
)

// EmptyHistoryText is shown in place of an empty history table.
const EmptyHistoryText = "Nenhuma avaliação registrada."

// HistoryColumns are the headers of the history listing.
var HistoryColumns = []string{"ID", "NF", "Prevista", "Entrega", "Situação", "Variação", "Consultado em"}

// HistoryRow maps a record onto HistoryColumns without styling.
func HistoryRow(rec domain.EvaluationRecord) []string {
	return []string{
		ShortID(rec.ID),
		OrDash(rec.CaseID),
		rec.DueDateDisplay,
		rec.DeliveredDateDisplay,
		OrDash(rec.Outcome.Label()),
		SignedDays(rec.VarianceDays),
		OrDash(sla.FormatTimestamp(rec.CreatedAt)),
	}
}

// FormatHistory renders the history newest first, with a summary line.
func FormatHistory(records []domain.EvaluationRecord) string {
	if len(records) == 0 {
		return Dim(EmptyHistoryText) + "\n"
	}

	rows := make([][]string, 0, len(records))
	counts := map[domain.SlaOutcome]int{}
	for _, rec := range records {
		row := HistoryRow(rec)
		row[0] = TruncID(rec.ID)
		row[4] = OutcomeBadge(rec.Outcome)
		rows = append(rows, row)
		counts[rec.Outcome]++
	}

	var b strings.Builder
	b.WriteString(Header("Histórico"))
	b.WriteString("\n\n")
	b.WriteString(RenderTable(HistoryColumns, rows))
	b.WriteString("\n")
	b.WriteString(Dim(fmt.Sprintf("%d registro(s): %d antecipado(s), %d no prazo, %d atrasado(s)",
		len(records), counts[domain.OutcomeEarly], counts[domain.OutcomeOnTime], counts[domain.OutcomeLate])))
	b.WriteString("\n")
	return b.String()
}

// FormatExported confirms a written export.
func FormatExported(path string, rows int) string {
	return fmt.Sprintf("%s %d registro(s) exportado(s) para %s\n", StyleGreen.Render("✔"), rows, Bold(path))
}

// FormatImported summarizes an import.
func FormatImported(imported, duplicates, skipped int) string {
	msg := fmt.Sprintf("%s %d registro(s) importado(s)", StyleGreen.Render("✔"), imported)
	if duplicates > 0 {
		msg += Dim(fmt.Sprintf(", %d já existente(s)", duplicates))
	}
	if skipped > 0 {
		msg += Dim(fmt.Sprintf(", %d ignorado(s)", skipped))
	}
	return msg + "\n"
}
