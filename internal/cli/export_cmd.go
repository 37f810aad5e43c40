package cli

import (
	"errors"
	"fmt"

	"github.com/alexanderramin/slacalc/internal/cli/formatter"
	"github.com/alexanderramin/slacalc/internal/csvexport"
	"github.com/alexanderramin/slacalc/internal/service"
	"github.com/spf13/cobra"
)

func newExportCmd(app *App) *cobra.Command {
	var dir string
	var legacy bool

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the history to sla-historico-<date>.csv",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			if app.Notices != nil {
				app.Notices.SetOutput(out)
			}

			req := service.ExportRequest{Layout: csvexport.LayoutFull, Dir: dir}
			if legacy {
				req.Layout = csvexport.LayoutLegacy
			}

			res, err := app.Export.Export(cmd.Context(), req)
			if errors.Is(err, csvexport.ErrEmptyHistory) {
				if app.Notices == nil {
					fmt.Fprintln(out, csvexport.EmptyHistoryNotice)
				}
				return nil
			}
			if err != nil {
				return err
			}
			fmt.Fprint(out, formatter.FormatExported(res.Path, res.Rows))
			return nil
		},
	}

	cmd.Flags().StringVar(&dir, "dir", "", "Directory to write into (default from config)")
	cmd.Flags().BoolVar(&legacy, "legacy", false, "Five-column layout where early deliveries count as zero days late")

	return cmd
}
