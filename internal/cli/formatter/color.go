package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/slacalc/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

// Gruvbox-inspired color palette.
var (
	ColorGreen  = lipgloss.Color("#8ec07c")
	ColorYellow = lipgloss.Color("#fabd2f")
	ColorRed    = lipgloss.Color("#fb4934")
	ColorBlue   = lipgloss.Color("#83a598")
	ColorDim    = lipgloss.Color("#928374")
	ColorFg     = lipgloss.Color("#ebdbb2")
	ColorHeader = lipgloss.Color("#fe8019")
)

var (
	StyleGreen  = lipgloss.NewStyle().Foreground(ColorGreen)
	StyleYellow = lipgloss.NewStyle().Foreground(ColorYellow)
	StyleRed    = lipgloss.NewStyle().Foreground(ColorRed)
	StyleBlue   = lipgloss.NewStyle().Foreground(ColorBlue)
	StyleDim    = lipgloss.NewStyle().Foreground(ColorDim)
	StyleFg     = lipgloss.NewStyle().Foreground(ColorFg)
	StyleHeader = lipgloss.NewStyle().Foreground(ColorHeader).Bold(true)
	StyleBold   = lipgloss.NewStyle().Foreground(ColorFg).Bold(true)
)

// OutcomeStyle returns the style an outcome is rendered with: early deliveries
// in blue, on-time in green, late in red.
func OutcomeStyle(o domain.SlaOutcome) lipgloss.Style {
	switch o {
	case domain.OutcomeEarly:
		return StyleBlue
	case domain.OutcomeOnTime:
		return StyleGreen
	case domain.OutcomeLate:
		return StyleRed
	default:
		return StyleDim
	}
}

// OutcomeBadge returns a colored outcome indicator such as "● Atrasado".
func OutcomeBadge(o domain.SlaOutcome) string {
	label := o.Label()
	if label == "" {
		return StyleDim.Render("● --")
	}
	return OutcomeStyle(o).Render("● " + label)
}

// ReadinessPill renders the entry state shown next to the form.
func ReadinessPill(s domain.FormState) string {
	switch s {
	case domain.FormReady:
		return StyleGreen.Render("● Pronto para calcular")
	case domain.FormSubmitted:
		return StyleBlue.Render("✔ Registrado")
	case domain.FormDueDateEntered:
		return StyleYellow.Render("○ Falta a data de entrega")
	case domain.FormCaseEntered:
		return StyleYellow.Render("○ Falta a data prevista")
	default:
		return StyleDim.Render("○ Informe a NF")
	}
}

// Header renders a section header with the orange header style and an underline.
func Header(text string) string {
	upper := strings.ToUpper(text)
	line := strings.Repeat("─", lipgloss.Width(upper))
	return fmt.Sprintf("%s\n%s", StyleHeader.Render(upper), StyleDim.Render(line))
}

func Dim(text string) string {
	return StyleDim.Render(text)
}

func Bold(text string) string {
	return StyleBold.Render(text)
}
