package cli

import (
	"strconv"

	"github.com/alexanderramin/slacalc/internal/cli/formatter"
	"github.com/alexanderramin/slacalc/internal/service"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

func slacalcHuhTheme() *huh.Theme {
	t := huh.ThemeBase()

	// Focused state: orange accent
	t.Focused.Title = lipgloss.NewStyle().Foreground(formatter.ColorHeader).Bold(true)
	t.Focused.FocusedButton = lipgloss.NewStyle().Foreground(formatter.ColorFg).Background(formatter.ColorHeader).Padding(0, 1)
	t.Focused.BlurredButton = lipgloss.NewStyle().Foreground(formatter.ColorDim).Padding(0, 1)
	t.Focused.Description = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	// Blurred state: dimmed
	t.Blurred.Title = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	return t
}

// clearHistoryForm asks before wiping the history. The answer lands in result.
func clearHistoryForm(count int, result *bool) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title(service.ClearHistoryPrompt).
				Description(formatter.Dim(clearHistoryDetail(count))).
				Affirmative("Sim").
				Negative("Não").
				Value(result),
		),
	).WithTheme(slacalcHuhTheme()).WithShowHelp(false)
}

func clearHistoryDetail(n int) string {
	if n == 1 {
		return "1 registro será apagado."
	}
	return strconv.Itoa(n) + " registros serão apagados."
}
