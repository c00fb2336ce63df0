package reconcile

import (
	"fmt"

	"github.com/jhoicas/simpro-reconcile/internal/application/dto"
	"github.com/jhoicas/simpro-reconcile/internal/domain"
	"github.com/jhoicas/simpro-reconcile/internal/domain/entity"
)

// QueryUseCase consultas de solo lectura sobre el resultado de una corrida (API de revisión).
type QueryUseCase struct {
	result *Result
}

// NewQueryUseCase construye el caso de uso sobre un resultado finalizado.
func NewQueryUseCase(result *Result) *QueryUseCase {
	return &QueryUseCase{result: result}
}

// ListCustomers lista clientes filtrando por nivel y por tener contratos.
func (uc *QueryUseCase) ListCustomers(f dto.CustomerFilter) (*dto.CustomerListResponse, error) {
	f.DefaultPage()
	var tier entity.ServiceTier
	if f.Tier != "" {
		t, ok := entity.ParseServiceTier(f.Tier)
		if !ok {
			return nil, fmt.Errorf("%w: nivel de servicio %q", domain.ErrInvalidInput, f.Tier)
		}
		tier = t
	}

	var filtered []*entity.Customer
	for _, c := range uc.result.Customers {
		if tier != "" && c.ServiceTier() != tier {
			continue
		}
		if f.WithContracts && !c.HasContracts() {
			continue
		}
		filtered = append(filtered, c)
	}

	page := paginate(len(filtered), f.PageRequest)
	items := make([]dto.CustomerResponse, 0, page.end-page.start)
	for _, c := range filtered[page.start:page.end] {
		items = append(items, ToCustomerResponse(c))
	}
	return &dto.CustomerListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: f.Limit, Offset: f.Offset, Total: len(filtered)},
	}, nil
}

// GetCustomer devuelve el cliente con sus contratos vinculados.
func (uc *QueryUseCase) GetCustomer(id string) (*dto.CustomerDetailResponse, error) {
	c, ok := uc.result.Customer(id)
	if !ok {
		return nil, domain.ErrNotFound
	}
	out := &dto.CustomerDetailResponse{
		CustomerResponse: ToCustomerResponse(c),
		Contracts:        make([]dto.ContractResponse, 0, len(c.Contracts)),
	}
	for _, k := range c.Contracts {
		out.Contracts = append(out.Contracts, ToContractResponse(k))
	}
	return out, nil
}

// ListContracts lista contratos, opcionalmente solo vinculados o solo sin vincular.
func (uc *QueryUseCase) ListContracts(f dto.ContractFilter) *dto.ContractListResponse {
	f.DefaultPage()
	var filtered []*entity.Contract
	for _, c := range uc.result.Contracts {
		if f.Matched != nil && c.IsMatched() != *f.Matched {
			continue
		}
		filtered = append(filtered, c)
	}

	page := paginate(len(filtered), f.PageRequest)
	items := make([]dto.ContractResponse, 0, page.end-page.start)
	for _, c := range filtered[page.start:page.end] {
		items = append(items, ToContractResponse(c))
	}
	return &dto.ContractListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: f.Limit, Offset: f.Offset, Total: len(filtered)},
	}
}

// Summary estadísticas de la corrida.
func (uc *QueryUseCase) Summary() dto.SummaryDTO {
	return uc.result.Summary()
}

type bounds struct{ start, end int }

func paginate(total int, p dto.PageRequest) bounds {
	start := min(p.Offset, total)
	end := min(start+p.Limit, total)
	return bounds{start: start, end: end}
}
