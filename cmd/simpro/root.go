package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jhoicas/simpro-reconcile/internal/application/reconcile"
	"github.com/jhoicas/simpro-reconcile/internal/infrastructure/csvfile"
	"github.com/jhoicas/simpro-reconcile/pkg/config"
	"github.com/jhoicas/simpro-reconcile/pkg/logger"
)

// env dependencias compartidas por los subcomandos.
type env struct {
	cfg *config.Config
	log *logger.Logger
}

func newRootCmd() *cobra.Command {
	e := &env{}
	var logLevel string

	root := &cobra.Command{
		Use:           "simpro",
		Short:         "Concilia clientes y contratos exportados de SimPro",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("cargar configuración: %w", err)
			}
			if logLevel != "" {
				cfg.App.LogLevel = logLevel
			}
			e.cfg = cfg
			e.log = logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.App.LogLevel})
			return nil
		},
	}
	root.PersistentFlags().StringVar(&logLevel, "log-level", "", "nivel de log (trace, debug, info, warn, error); por defecto LOG_LEVEL")

	root.AddCommand(
		newRunCmd(e),
		newBatchesCmd(e),
		newServeCmd(e),
		newTokenCmd(e),
	)
	return root
}

// reconcile ejecuta la conciliación sobre los CSV configurados.
func (e *env) reconcile(ctx context.Context) (*reconcile.Result, error) {
	e.log.Info().
		Str("clientes", e.cfg.Sources.CustomersCSV).
		Str("contratos", e.cfg.Sources.ContractsCSV).
		Msg("iniciando conciliación")
	uc := reconcile.NewReconcileUseCase(csvfile.NewReader(e.cfg.Sources), e.log)
	return uc.Run(ctx)
}
