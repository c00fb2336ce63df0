package reconcile

import (
	"strings"

	"github.com/jhoicas/simpro-reconcile/internal/domain/entity"
	"github.com/jhoicas/simpro-reconcile/internal/domain/matching"
	"github.com/jhoicas/simpro-reconcile/pkg/simpro"
)

// customerFromRow construye el cliente. false si falta el ID o el nombre.
func customerFromRow(row simpro.Row) (*entity.Customer, bool) {
	id := row.Get(simpro.ColCustomerID)
	name := row.Get(simpro.ColCustomer)
	if id == "" || name == "" {
		return nil, false
	}
	return &entity.Customer{
		SimproID:           id,
		CompanyName:        name,
		NormalizedName:     matching.NormalizeName(name),
		Email:              strings.ToLower(row.Get(simpro.ColEmail)),
		MailingAddress:     row.Get(simpro.ColMailingAddress),
		MailingCity:        row.Get(simpro.ColMailingCity),
		MailingState:       row.Get(simpro.ColMailingState),
		MailingZIP:         row.Get(simpro.ColMailingZIP),
		LaborTaxCode:       row.Get(simpro.ColLaborTaxCode),
		PartTaxCode:        row.Get(simpro.ColPartTaxCode),
		IsContractCustomer: row.Flag(simpro.ColContractCustomer),
	}, true
}

// contractFromRow construye el contrato sin vincular. false si la fila no es un contrato de cliente:
// falta el cliente o el nombre del contrato, o el valor de cliente es un literal del reporte.
func contractFromRow(row simpro.Row, id string) (*entity.Contract, bool) {
	customerName := row.Get(simpro.ColCustomer)
	contractName := row.Get(simpro.ColContractName)
	if customerName == "" || contractName == "" {
		return nil, false
	}
	if matching.IsNonCustomerName(customerName) {
		return nil, false
	}

	status := entity.ContractStatusExpired
	if strings.EqualFold(row.Get(simpro.ColStatus), entity.ContractStatusActive) {
		status = entity.ContractStatusActive
	}
	return &entity.Contract{
		ID:                     id,
		CustomerNameInContract: customerName,
		ContractName:           contractName,
		ContractNumber:         row.Get(simpro.ColContractNumber),
		Value:                  simpro.ParseMoney(row.Get(simpro.ColValue)),
		Status:                 status,
		StartDate:              simpro.ParseDate(row.Get(simpro.ColStartDate)),
		EndDate:                simpro.ParseDate(row.Get(simpro.ColEndDate)),
		Email:                  strings.ToLower(row.Get(simpro.ColEmail)),
		Notes:                  row.Get(simpro.ColNotes),
	}, true
}
