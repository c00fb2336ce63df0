package simpro

import "strings"

// Columnas del exporte de clientes (customers.csv).
const (
	ColCustomerID       = "Customer ID"
	ColCustomer         = "Customer"
	ColEmail            = "Email"
	ColMailingAddress   = "Mailing Address"
	ColMailingCity      = "Mailing City"
	ColMailingState     = "Mailing State"
	ColMailingZIP       = "Mailing ZIP Code"
	ColLaborTaxCode     = "Labor Tax Code"
	ColPartTaxCode      = "Part Tax Code"
	ColContractCustomer = "Contract Customer"
)

// Columnas del reporte de contratos (Customer_Contracts_Report_reportTable.csv).
// "Customer" y "Email" se comparten con el exporte de clientes.
const (
	ColContractName   = "Contract Name"
	ColContractNumber = "Contract No."
	ColValue          = "Value"
	ColStatus         = "Status"
	ColStartDate      = "Start Date"
	ColEndDate        = "End Date"
	ColNotes          = "Notes"
)

// Row fila de un CSV indexada por encabezado.
type Row map[string]string

// Get devuelve el valor de la columna sin espacios; "" si no existe.
func (r Row) Get(col string) string {
	return strings.TrimSpace(r[col])
}

// Flag interpreta columnas Yes/No.
func (r Row) Flag(col string) bool {
	return strings.EqualFold(r.Get(col), "yes")
}
