package entity

import "github.com/shopspring/decimal"

// Customer representa un cliente del registro de SimPro con los agregados de sus contratos.
// Los agregados solo se modifican vía AttachContract; ServiceTier se deriva de TotalContractValue.
type Customer struct {
	SimproID           string // "Customer ID" del sistema legado
	CompanyName        string // nombre tal como aparece en el registro
	NormalizedName     string
	Email              string
	MailingAddress     string
	MailingCity        string
	MailingState       string
	MailingZIP         string
	LaborTaxCode       string
	PartTaxCode        string
	IsContractCustomer bool

	TotalContractValue  decimal.Decimal // suma de Value de los contratos activos vinculados
	ActiveContractCount int
	HasActiveContracts  bool
	LatestContractEmail string // último email de contrato activo en orden de proceso

	Contracts []*Contract
}

// AttachContract agrega el contrato a la colección del cliente y actualiza los agregados
// si el contrato está activo.
func (c *Customer) AttachContract(contract *Contract) {
	c.Contracts = append(c.Contracts, contract)
	if contract.Status != ContractStatusActive {
		return
	}
	c.HasActiveContracts = true
	c.ActiveContractCount++
	c.TotalContractValue = c.TotalContractValue.Add(contract.Value)
	if contract.Email != "" {
		c.LatestContractEmail = contract.Email
	}
}

// ServiceTier nivel de servicio calculado a partir del total agregado.
func (c *Customer) ServiceTier() ServiceTier {
	return TierFor(c.TotalContractValue)
}

// HasContracts indica si el cliente tiene al menos un contrato vinculado (activo o no).
func (c *Customer) HasContracts() bool {
	return len(c.Contracts) > 0
}
