package cli

import (
	"fmt"

	"github.com/alexanderramin/slacalc/internal/cli/formatter"
	"github.com/alexanderramin/slacalc/internal/service"
	"github.com/spf13/cobra"
)

func newEvalCmd(app *App) *cobra.Command {
	var caseID string
	var due, delivered dateFlag
	var dryRun bool

	cmd := &cobra.Command{
		Use:   "eval",
		Short: "Evaluate a delivery against its due date and record it",
		Example: `  slacalc eval --nf 123456 --due 10/01/2024 --delivered 12/01/2024
  slacalc eval --nf 123456 --due 10012024 --delivered 09012024 --dry-run`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			in := service.EvaluationInput{
				CaseID:        caseID,
				DueDate:       due.String(),
				DeliveredDate: delivered.String(),
			}
			out := cmd.OutOrStdout()

			if dryRun {
				rec, err := app.Evaluations.Evaluate(cmd.Context(), in)
				if err != nil {
					return err
				}
				fmt.Fprintln(out, formatter.FormatEvaluation(rec))
				fmt.Fprintln(out, formatter.Dim("Simulação: nada foi registrado."))
				return nil
			}

			rec, err := app.Evaluations.Submit(cmd.Context(), in)
			if err != nil {
				return err
			}
			fmt.Fprintln(out, formatter.FormatEvaluation(rec))
			fmt.Fprintf(out, "Registrado %s\n", formatter.TruncID(rec.ID))
			return nil
		},
	}

	cmd.Flags().StringVar(&caseID, "nf", "", "Case number (6 digits)")
	cmd.Flags().Var(&due, "due", "Due date (DD/MM/YYYY or DDMMYYYY)")
	cmd.Flags().Var(&delivered, "delivered", "Delivery date (DD/MM/YYYY or DDMMYYYY)")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Evaluate without recording")

	return cmd
}
