// Command parserctl tareas de operación: migraciones, emisión de tokens y revisión de la allow-list.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/spf13/cobra"

	"github.com/jhoicas/parser-config-api/internal/infrastructure/postgres"
	"github.com/jhoicas/parser-config-api/pkg/config"
	"github.com/jhoicas/parser-config-api/pkg/logger"
)

var (
	cfg *config.Config
	log *logger.Logger
)

func main() {
	if err := rootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "parserctl",
		Short:         "Herramientas de operación de parser-config-api",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var err error
			cfg, err = config.Load()
			if err != nil {
				return fmt.Errorf("cargar configuración: %w", err)
			}
			log = logger.NewWithWriter(cmd.ErrOrStderr(), cfg.Log.Level)
			return nil
		},
	}
	root.AddCommand(migrateCmd(), tokenCmd(), tablesCmd())
	return root
}

func openPool(ctx context.Context) (*pgxpool.Pool, error) {
	return postgres.NewPool(ctx, cfg.DB, log)
}
