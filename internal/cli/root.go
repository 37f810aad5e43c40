package cli

import (
	"io"
	"os"

	"github.com/alexanderramin/slacalc/internal/service"
	"github.com/spf13/cobra"
)

// App holds references to all service interfaces used by CLI commands.
type App struct {
	Evaluations service.EvaluationService
	History     service.HistoryService
	Export      service.ExportService
	Import      service.ImportService

	// Notices is the exporter's notifier; commands point it at their output.
	Notices *Notices

	// IsInteractive reports whether stdin is a terminal. Nil means never.
	IsInteractive func() bool

	// In feeds yes/no prompts. Nil means os.Stdin.
	In io.Reader
}

func (a *App) input() io.Reader {
	if a.In != nil {
		return a.In
	}
	return os.Stdin
}

// NewRootCmd creates the top-level "slacalc" command and registers all
// subcommands against the provided App. Without a subcommand it opens the
// interactive screen when stdin is a terminal.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:           "slacalc",
		Short:         "Delivery SLA evaluation with local history",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.IsInteractive != nil && app.IsInteractive() {
				return runTUI(cmd.Context(), app)
			}
			return cmd.Help()
		},
	}

	root.AddCommand(
		newEvalCmd(app),
		newHistoryCmd(app),
		newExportCmd(app),
		newImportCmd(app),
	)

	return root
}
