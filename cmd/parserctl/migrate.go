package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jhoicas/parser-config-api/internal/infrastructure/postgres"
)

func migrateCmd() *cobra.Command {
	var dryRun bool

	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Aplica las migraciones SQL embebidas que falten",
		RunE: func(cmd *cobra.Command, args []string) error {
			migrations, err := postgres.Migrations()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if dryRun {
				for _, m := range migrations {
					fmt.Fprintln(out, m.Version)
				}
				return nil
			}

			ctx := cmd.Context()
			pool, err := openPool(ctx)
			if err != nil {
				return err
			}
			defer pool.Close()

			applied, err := postgres.Migrate(ctx, pool, migrations)
			for _, v := range applied {
				fmt.Fprintf(out, "aplicada %s\n", v)
			}
			if err != nil {
				return err
			}
			if len(applied) == 0 {
				fmt.Fprintln(out, "sin migraciones pendientes")
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Solo lista las migraciones embebidas")
	return cmd
}
