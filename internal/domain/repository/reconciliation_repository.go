package repository

import (
	"context"

	"github.com/jhoicas/simpro-reconcile/internal/domain/entity"
)

// LoadCounts filas presentes en las tablas simpro_* tras una carga.
type LoadCounts struct {
	Customers int `json:"customers"`
	Contracts int `json:"contracts"`
}

// ReconciliationRepository define el puerto de persistencia del resultado de conciliación.
// ReplaceAll borra el contenido previo e inserta los clientes con al menos un contrato vinculado
// junto con sus contratos, en una sola transacción. Devuelve los conteos verificados tras la carga.
type ReconciliationRepository interface {
	ReplaceAll(ctx context.Context, customers []*entity.Customer, contracts []*entity.Contract) (LoadCounts, error)
	CountAll(ctx context.Context) (LoadCounts, error)
}
