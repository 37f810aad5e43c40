package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/slacalc/internal/domain"
	"github.com/alexanderramin/slacalc/internal/sla"
)

// FormatEvaluation renders a stored evaluation as a result box.
func FormatEvaluation(rec domain.EvaluationRecord) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s  %s\n", Dim("NF"), Bold(OrDash(rec.CaseID)))
	fmt.Fprintf(&b, "%s  %s\n", Dim("Prevista"), rec.DueDateDisplay)
	fmt.Fprintf(&b, "%s  %s\n\n", Dim("Entrega "), rec.DeliveredDateDisplay)
	fmt.Fprintf(&b, "%s  %s\n", OutcomeBadge(rec.Outcome), OutcomeStyle(rec.Outcome).Render(sla.Describe(rec.VarianceDays)))
	fmt.Fprintf(&b, "%s", Dim("Consultado em "+OrDash(sla.FormatTimestamp(rec.CreatedAt))))
	return RenderBox("Resultado", b.String())
}

// FormatPreview renders the one-line live result shown while typing.
func FormatPreview(ev domain.Evaluation) string {
	return fmt.Sprintf("%s  %s  %s",
		OutcomeBadge(ev.Outcome),
		OutcomeStyle(ev.Outcome).Render(ev.Detail),
		Dim("("+SignedDays(ev.VarianceDays)+" dias)"))
}
