package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jhoicas/simpro-reconcile/internal/application/reconcile"
	"github.com/jhoicas/simpro-reconcile/internal/domain/repository"
	"github.com/jhoicas/simpro-reconcile/internal/infrastructure/csvfile"
	"github.com/jhoicas/simpro-reconcile/internal/infrastructure/postgres"
	"github.com/jhoicas/simpro-reconcile/internal/infrastructure/sqlgen"
	"github.com/jhoicas/simpro-reconcile/internal/infrastructure/sqlite"
	"github.com/jhoicas/simpro-reconcile/pkg/config"
)

type runOptions struct {
	sql      bool
	store    bool
	noExport bool
}

func newRunCmd(e *env) *cobra.Command {
	var opts runOptions
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Concilia y exporta CSV limpios, resumen JSON y (opcional) SQL de carga",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runReconcile(cmd.Context(), e, opts)
		},
	}
	cmd.Flags().BoolVar(&opts.sql, "sql", true, "generar el script complete_simpro_data_*.sql")
	cmd.Flags().BoolVar(&opts.store, "store", false, "cargar el resultado en STORE_DRIVER (postgres o sqlite)")
	cmd.Flags().BoolVar(&opts.noExport, "no-export", false, "no escribir cleaned_*.csv ni data_summary.json")
	return cmd
}

func runReconcile(ctx context.Context, e *env, opts runOptions) error {
	res, err := e.reconcile(ctx)
	if err != nil {
		return err
	}

	if !opts.noExport {
		paths, err := csvfile.NewWriter(e.cfg.Output.CleanedDir).WriteCleaned(res)
		if err != nil {
			return err
		}
		for _, p := range paths {
			e.log.Info().Str("archivo", p).Msg("exportado")
		}
	}

	if opts.sql {
		script := sqlgen.NewGenerator().Migration(res.Customers, res.Contracts, res.GeneratedAt)
		path, err := sqlgen.WriteFile(e.cfg.Output.SQLDir, sqlgen.MigrationPrefix, script, res.GeneratedAt)
		if err != nil {
			return err
		}
		e.log.Info().Str("archivo", path).Msg("script SQL generado")
	}

	if opts.store {
		if err := loadStore(ctx, e, res); err != nil {
			return err
		}
	}

	s := res.Summary()
	e.log.Info().
		Int("clientes", s.TotalCustomers).
		Int("con_contratos", s.CustomersWithContracts).
		Int("contratos_activos", s.ActiveContracts).
		Str("valor_total", s.TotalContractValue.StringFixed(2)).
		Msg("conciliación finalizada")
	return nil
}

// loadStore carga el resultado en el almacenamiento configurado.
func loadStore(ctx context.Context, e *env, res *reconcile.Result) error {
	var (
		repo    repository.ReconciliationRepository
		closeFn func()
	)
	switch e.cfg.Store.Driver {
	case config.StorePostgres:
		pool, err := postgres.NewPool(ctx, e.cfg.DB, postgres.DefaultPoolOptions())
		if err != nil {
			return fmt.Errorf("conexión a PostgreSQL: %w", err)
		}
		closeFn = pool.Close
		pg := postgres.NewReconciliationRepository(pool, postgres.NewTxRunner(pool))
		if err := pg.EnsureSchema(ctx); err != nil {
			pool.Close()
			return err
		}
		repo = pg
	case config.StoreSQLite:
		st, err := sqlite.NewReconciliationStore(e.cfg.Store.SQLitePath)
		if err != nil {
			return err
		}
		closeFn = func() { _ = st.Close() }
		repo = st
	default:
		return fmt.Errorf("--store requiere STORE_DRIVER=postgres o sqlite (actual %q)", e.cfg.Store.Driver)
	}
	defer closeFn()

	counts, err := repo.ReplaceAll(ctx, res.Customers, res.Contracts)
	if err != nil {
		return fmt.Errorf("cargar %s: %w", e.cfg.Store.Driver, err)
	}
	e.log.Info().
		Str("driver", e.cfg.Store.Driver).
		Int("clientes", counts.Customers).
		Int("contratos", counts.Contracts).
		Msg("carga verificada")
	return nil
}
