package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/jhoicas/parser-config-api/internal/application/usecase"
	"github.com/jhoicas/parser-config-api/internal/infrastructure/postgres"
)

func tablesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tables",
		Short: "Muestra la allow-list del explorador y cuántas columnas tiene cada tabla",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			pool, err := openPool(ctx)
			if err != nil {
				return err
			}
			defer pool.Close()

			uc := usecase.NewTableUseCase(postgres.NewTableBrowserRepository(pool), cfg.Browser.AllowedTables)
			summaries, err := uc.Summaries(ctx)
			if err != nil {
				return err
			}
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "TABLE\tCOLUMNS\tEXISTS")
			for _, s := range summaries {
				fmt.Fprintf(w, "%s\t%d\t%t\n", s.Name, s.Columns, s.Exists)
			}
			return w.Flush()
		},
	}
}
