package reconcile

import (
	"context"

	"github.com/jhoicas/simpro-reconcile/pkg/simpro"
)

// SourceReader puerto de entrada: entrega las filas crudas de ambas fuentes de SimPro.
// Un error significa que la fuente no pudo leerse; es el único caso fatal de la corrida.
type SourceReader interface {
	ReadCustomers(ctx context.Context) ([]simpro.Row, error)
	ReadContracts(ctx context.Context) ([]simpro.Row, error)
}
