package reconcile

import (
	"github.com/jhoicas/simpro-reconcile/internal/application/dto"
	"github.com/jhoicas/simpro-reconcile/internal/domain/entity"
	"github.com/jhoicas/simpro-reconcile/pkg/simpro"
)

// ToCustomerResponse convierte el cliente conciliado en DTO.
func ToCustomerResponse(c *entity.Customer) dto.CustomerResponse {
	return dto.CustomerResponse{
		SimproCustomerID:    c.SimproID,
		CompanyName:         c.CompanyName,
		NormalizedName:      c.NormalizedName,
		Email:               c.Email,
		MailingAddress:      c.MailingAddress,
		MailingCity:         c.MailingCity,
		MailingState:        c.MailingState,
		MailingZIP:          c.MailingZIP,
		IsContractCustomer:  c.IsContractCustomer,
		HasActiveContracts:  c.HasActiveContracts,
		ActiveContractCount: c.ActiveContractCount,
		TotalContractValue:  c.TotalContractValue,
		ServiceTier:         string(c.ServiceTier()),
		LatestContractEmail: c.LatestContractEmail,
		ContractCount:       len(c.Contracts),
	}
}

// ToContractResponse convierte el contrato en DTO.
func ToContractResponse(c *entity.Contract) dto.ContractResponse {
	return dto.ContractResponse{
		ID:                     c.ID,
		MatchedCustomerID:      c.MatchedCustomerID,
		MatchMethod:            string(c.MatchMethod),
		CustomerNameInContract: c.CustomerNameInContract,
		ContractName:           c.ContractName,
		ContractNumber:         c.ContractNumber,
		ContractValue:          c.Value,
		ContractStatus:         c.Status,
		StartDate:              simpro.FormatDate(c.StartDate),
		EndDate:                simpro.FormatDate(c.EndDate),
		ContractEmail:          c.Email,
		ContractNotes:          c.Notes,
	}
}
