package dto

import "github.com/shopspring/decimal"

// SummaryDTO estadísticas de una corrida de conciliación (data_summary.json y GET /api/summary).
type SummaryDTO struct {
	TotalCustomers         int             `json:"total_customers"`
	CustomersWithContracts int             `json:"customers_with_contracts"`
	TotalContracts         int             `json:"total_contracts"`
	ActiveContracts        int             `json:"active_contracts"` // incluye contratos sin vincular
	MatchedContracts       int             `json:"matched_contracts"`
	UnmatchedContracts     int             `json:"unmatched_contracts"`
	TotalContractValue     decimal.Decimal `json:"total_contract_value"` // suma de agregados por cliente
	ServiceTiers           map[string]int  `json:"service_tiers"`
	MatchMethods           map[string]int  `json:"match_methods,omitempty"`
	NameCollisions         int             `json:"name_collisions"` // llaves normalizadas reasignadas
}

// CustomerResponse cliente conciliado en respuestas.
type CustomerResponse struct {
	SimproCustomerID    string          `json:"simpro_customer_id"`
	CompanyName         string          `json:"company_name"`
	NormalizedName      string          `json:"normalized_name"`
	Email               string          `json:"email,omitempty"`
	MailingAddress      string          `json:"mailing_address,omitempty"`
	MailingCity         string          `json:"mailing_city,omitempty"`
	MailingState        string          `json:"mailing_state,omitempty"`
	MailingZIP          string          `json:"mailing_zip,omitempty"`
	IsContractCustomer  bool            `json:"is_contract_customer"`
	HasActiveContracts  bool            `json:"has_active_contracts"`
	ActiveContractCount int             `json:"active_contract_count"`
	TotalContractValue  decimal.Decimal `json:"total_contract_value"`
	ServiceTier         string          `json:"service_tier"`
	LatestContractEmail string          `json:"latest_contract_email,omitempty"`
	ContractCount       int             `json:"contract_count"`
}

// CustomerDetailResponse cliente con sus contratos vinculados (GET /api/customers/:id).
type CustomerDetailResponse struct {
	CustomerResponse
	Contracts []ContractResponse `json:"contracts"`
}

// ContractResponse contrato en respuestas.
type ContractResponse struct {
	ID                     string          `json:"id"`
	MatchedCustomerID      *string         `json:"matched_customer_id"` // null = sin vincular
	MatchMethod            string          `json:"match_method,omitempty"`
	CustomerNameInContract string          `json:"customer_name_in_contract"`
	ContractName           string          `json:"contract_name"`
	ContractNumber         string          `json:"contract_number,omitempty"`
	ContractValue          decimal.Decimal `json:"contract_value"`
	ContractStatus         string          `json:"contract_status"`
	StartDate              string          `json:"start_date,omitempty"` // YYYY-MM-DD
	EndDate                string          `json:"end_date,omitempty"`
	ContractEmail          string          `json:"contract_email,omitempty"`
	ContractNotes          string          `json:"contract_notes,omitempty"`
}

// CustomerFilter filtros para GET /api/customers.
type CustomerFilter struct {
	Tier          string // CORE | ASSURE | GUARDIAN; vacío = todos
	WithContracts bool   // solo clientes con al menos un contrato vinculado
	PageRequest
}

// ContractFilter filtros para GET /api/contracts.
type ContractFilter struct {
	Matched *bool // nil = todos
	PageRequest
}

// CustomerListResponse página de clientes.
type CustomerListResponse struct {
	Items []CustomerResponse `json:"items"`
	Page  PageResponse       `json:"page"`
}

// ContractListResponse página de contratos.
type ContractListResponse struct {
	Items []ContractResponse `json:"items"`
	Page  PageResponse       `json:"page"`
}
