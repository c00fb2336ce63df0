package entity

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/simpro-reconcile/internal/domain"
)

// Estados de contrato normalizados.
const (
	ContractStatusActive  = "active"
	ContractStatusExpired = "expired"
)

// MatchMethod regla que vinculó el contrato con su cliente.
type MatchMethod string

const (
	MatchNone        MatchMethod = ""
	MatchExact       MatchMethod = "exact"
	MatchContainment MatchMethod = "containment"
	MatchSuffix      MatchMethod = "suffix"
)

// Contract representa una fila del reporte de contratos de SimPro.
type Contract struct {
	ID                     string // UUID generado en la carga
	CustomerNameInContract string // nombre del cliente tal como aparece en el reporte
	ContractName           string
	ContractNumber         string
	Value                  decimal.Decimal
	Status                 string     // ver constantes ContractStatus*
	StartDate              *time.Time // nil = ausente o no interpretable
	EndDate                *time.Time
	Email                  string
	Notes                  string

	MatchedCustomerID *string // nil = sin vincular
	MatchMethod       MatchMethod
}

// IsActive indica si el contrato cuenta para los agregados del cliente.
func (c *Contract) IsActive() bool {
	return c.Status == ContractStatusActive
}

// StatusLabel estado con la capitalización de las tablas simpro_customer_contracts (Active | Expired).
func (c *Contract) StatusLabel() string {
	if c.IsActive() {
		return "Active"
	}
	return "Expired"
}

// IsMatched indica si el contrato quedó vinculado a un cliente.
func (c *Contract) IsMatched() bool {
	return c.MatchedCustomerID != nil
}

// LinkTo fija la referencia al cliente. Solo puede hacerse una vez.
func (c *Contract) LinkTo(customerID string, method MatchMethod) error {
	if c.MatchedCustomerID != nil {
		return domain.ErrAlreadyMatched
	}
	id := customerID
	c.MatchedCustomerID = &id
	c.MatchMethod = method
	return nil
}

// CustomerID devuelve el ID del cliente vinculado o "" si no hay vínculo.
func (c *Contract) CustomerID() string {
	if c.MatchedCustomerID == nil {
		return ""
	}
	return *c.MatchedCustomerID
}
