package main

import (
	"github.com/spf13/cobra"

	"github.com/jhoicas/simpro-reconcile/internal/infrastructure/sqlgen"
)

func newBatchesCmd(e *env) *cobra.Command {
	var dir string
	cmd := &cobra.Command{
		Use:   "batches",
		Short: "Genera lotes de upsert sobre customers (legacy_customer_id > BATCH_MIN_LEGACY_ID)",
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := e.reconcile(cmd.Context())
			if err != nil {
				return err
			}
			batches := sqlgen.NewGenerator().CustomerBatches(res.Customers, e.cfg.Batch.Size, e.cfg.Batch.MinLegacyID)
			paths, err := sqlgen.WriteBatches(dir, batches)
			if err != nil {
				return err
			}
			e.log.Info().
				Int("lotes", len(paths)).
				Int("tamano", e.cfg.Batch.Size).
				Int("id_minimo", e.cfg.Batch.MinLegacyID).
				Str("directorio", dir).
				Msg("lotes generados")
			return nil
		},
	}
	cmd.Flags().StringVar(&dir, "dir", "sql_batches", "directorio de salida de los lotes")
	return cmd
}
