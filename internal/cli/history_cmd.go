package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/alexanderramin/slacalc/internal/cli/formatter"
	"github.com/alexanderramin/slacalc/internal/service"
	"github.com/spf13/cobra"
)

// resolveRecordID matches input against record ids, first exactly and then
// as a unique prefix, so the short ids shown by "history list" work.
func resolveRecordID(app *App, input string) (string, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return "", fmt.Errorf("record ID is required")
	}
	if _, ok := app.History.Get(input); ok {
		return input, nil
	}

	var matches []string
	for _, r := range app.History.Records() {
		if strings.HasPrefix(r.ID, input) {
			matches = append(matches, r.ID)
		}
	}

	switch len(matches) {
	case 0:
		return "", fmt.Errorf("record not found: %q", input)
	case 1:
		return matches[0], nil
	default:
		return "", fmt.Errorf("record ID prefix %q is ambiguous (%d matches)", input, len(matches))
	}
}

func newHistoryCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "history",
		Aliases: []string{"hist"},
		Short:   "Inspect and manage recorded evaluations",
	}

	cmd.AddCommand(
		newHistoryListCmd(app),
		newHistoryRemoveCmd(app),
		newHistoryClearCmd(app),
	)

	return cmd
}

func newHistoryListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List evaluations, newest first",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatHistory(app.History.Records()))
			return nil
		},
	}
}

func newHistoryRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:     "remove ID",
		Aliases: []string{"rm"},
		Short:   "Remove one evaluation by ID or ID prefix",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := resolveRecordID(app, args[0])
			if err != nil {
				return err
			}
			if _, err := app.History.Remove(cmd.Context(), id); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Removido %s\n", formatter.TruncID(id))
			return nil
		},
	}
}

func newHistoryClearCmd(app *App) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "clear",
		Short: "Remove every evaluation",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			var confirm service.Confirmer = promptConfirmer{in: app.input(), out: out}
			if yes {
				confirm = service.ConfirmFunc(func(string) bool { return true })
			}

			_, err := app.History.Clear(cmd.Context(), confirm)
			if errors.Is(err, service.ErrClearNotConfirmed) {
				fmt.Fprintln(out, formatter.Dim("Cancelado."))
				return nil
			}
			if err != nil {
				return err
			}
			fmt.Fprintln(out, "Histórico limpo.")
			return nil
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Skip the confirmation prompt")

	return cmd
}
