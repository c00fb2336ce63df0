package reconcile

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/simpro-reconcile/internal/application/dto"
	"github.com/jhoicas/simpro-reconcile/internal/domain/entity"
)

// Result salida finalizada de una corrida. No se modifica después de Run.
type Result struct {
	Customers []*entity.Customer // orden de carga (primera aparición del ID)
	Contracts []*entity.Contract // orden del reporte; incluye los no vinculados
	Unmatched []*entity.Contract

	NameCollisions      int
	SkippedCustomerRows int
	SkippedContractRows int
	GeneratedAt         time.Time

	byID map[string]*entity.Customer
}

// Customer busca un cliente por su ID de SimPro.
func (r *Result) Customer(id string) (*entity.Customer, bool) {
	c, ok := r.byID[id]
	return c, ok
}

// CustomersWithContracts clientes con al menos un contrato vinculado, en orden de carga.
func (r *Result) CustomersWithContracts() []*entity.Customer {
	var out []*entity.Customer
	for _, c := range r.Customers {
		if c.HasContracts() {
			out = append(out, c)
		}
	}
	return out
}

// MatchedContracts contratos vinculados, en orden del reporte.
func (r *Result) MatchedContracts() []*entity.Contract {
	out := make([]*entity.Contract, 0, len(r.Contracts)-len(r.Unmatched))
	for _, c := range r.Contracts {
		if c.IsMatched() {
			out = append(out, c)
		}
	}
	return out
}

// Summary calcula las estadísticas de la corrida.
func (r *Result) Summary() dto.SummaryDTO {
	s := dto.SummaryDTO{
		TotalCustomers:     len(r.Customers),
		TotalContracts:     len(r.Contracts),
		UnmatchedContracts: len(r.Unmatched),
		MatchedContracts:   len(r.Contracts) - len(r.Unmatched),
		TotalContractValue: decimal.Zero,
		ServiceTiers:       make(map[string]int, 3),
		MatchMethods:       make(map[string]int, 3),
		NameCollisions:     r.NameCollisions,
	}
	for _, t := range entity.Tiers() {
		s.ServiceTiers[string(t)] = 0
	}
	for _, c := range r.Customers {
		if c.HasContracts() {
			s.CustomersWithContracts++
		}
		s.TotalContractValue = s.TotalContractValue.Add(c.TotalContractValue)
		s.ServiceTiers[string(c.ServiceTier())]++
	}
	for _, c := range r.Contracts {
		if c.IsActive() {
			s.ActiveContracts++
		}
		if c.IsMatched() {
			s.MatchMethods[string(c.MatchMethod)]++
		}
	}
	return s
}
