package cli

import (
	"fmt"

	"github.com/alexanderramin/slacalc/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newImportCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "import FILE",
		Short: "Add evaluations from a JSON history file",
		Long: `Read a JSON array of evaluations, in the current format or the one
written by the browser version of the calculator, and add the ones whose
ID is not already recorded.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := app.Import.ImportFile(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatImported(res.Imported, res.Duplicates, res.Skipped))
			return nil
		},
	}
}
