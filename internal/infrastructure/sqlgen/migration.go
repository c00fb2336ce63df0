package sqlgen

import (
	"fmt"
	"strings"
	"time"

	"github.com/jhoicas/simpro-reconcile/internal/domain/entity"
	"github.com/jhoicas/simpro-reconcile/internal/domain/repository"
)

// MigrationPrefix prefijo del archivo de carga completa.
const MigrationPrefix = "complete_simpro_data"

// Migration genera el script que reemplaza el contenido de simpro_customers y
// simpro_customer_contracts. Solo se incluyen clientes con al menos un contrato vinculado
// y los contratos vinculados a ellos. Las secciones vacías se omiten.
func (g *Generator) Migration(customers []*entity.Customer, contracts []*entity.Contract, now time.Time) string {
	set := repository.SelectLoadable(customers, contracts)

	rowIDs := make(map[string]string, len(set.Customers))
	custValues := make([]string, 0, len(set.Customers))
	for _, c := range set.Customers {
		id := g.newID()
		rowIDs[c.SimproID] = id
		custValues = append(custValues, fmt.Sprintf("  (%s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %d, %s, %s)",
			quoted(id), text(c.SimproID), text(c.CompanyName), text(c.Email),
			text(c.MailingAddress), text(c.MailingCity), text(c.MailingState), text(c.MailingZIP),
			boolean(c.IsContractCustomer), boolean(c.HasActiveContracts),
			c.ActiveContractCount, number(c.TotalContractValue), quoted(string(c.ServiceTier())),
		))
	}

	contValues := make([]string, 0, len(set.Contracts))
	for _, k := range set.Contracts {
		contValues = append(contValues, fmt.Sprintf("  (%s, %s, %s, %s, %s, '%s', %s, %s, %s, %s)",
			quoted(g.newID()), quoted(rowIDs[k.CustomerID()]), text(k.ContractName), text(k.ContractNumber),
			number(k.Value), k.StatusLabel(), date(k.StartDate), date(k.EndDate),
			text(k.Email), text(k.Notes),
		))
	}

	var b strings.Builder
	b.WriteString("-- Complete SimPro Data Load\n")
	fmt.Fprintf(&b, "-- Generated: %s\n", now.Format(time.RFC3339))
	b.WriteString("-- Carga todos los clientes y contratos de SimPro conciliados\n\n")

	b.WriteString("-- Clear existing data\n")
	b.WriteString("DELETE FROM simpro_customer_contracts;\n")
	b.WriteString("DELETE FROM simpro_customers;\n\n")

	if len(custValues) > 0 {
		fmt.Fprintf(&b, "-- Insert %d customers with contracts\n", len(custValues))
		b.WriteString("INSERT INTO simpro_customers (\n")
		b.WriteString("  id, simpro_customer_id, company_name, email,\n")
		b.WriteString("  mailing_address, mailing_city, mailing_state, mailing_zip,\n")
		b.WriteString("  is_contract_customer, has_active_contracts,\n")
		b.WriteString("  active_contract_count, total_contract_value, service_tier\n")
		b.WriteString(") VALUES\n")
		b.WriteString(strings.Join(custValues, ",\n"))
		b.WriteString(";\n\n")
	}

	if len(contValues) > 0 {
		fmt.Fprintf(&b, "-- Insert %d contracts\n", len(contValues))
		b.WriteString("INSERT INTO simpro_customer_contracts (\n")
		b.WriteString("  id, customer_id, contract_name, contract_number,\n")
		b.WriteString("  contract_value, contract_status, start_date, end_date,\n")
		b.WriteString("  contract_email, contract_notes\n")
		b.WriteString(") VALUES\n")
		b.WriteString(strings.Join(contValues, ",\n"))
		b.WriteString(";\n\n")
	}

	b.WriteString("-- Verify data load\n")
	b.WriteString("DO $$\n")
	b.WriteString("DECLARE\n")
	b.WriteString("  cust_count INTEGER;\n")
	b.WriteString("  cont_count INTEGER;\n")
	b.WriteString("BEGIN\n")
	b.WriteString("  SELECT COUNT(*) INTO cust_count FROM simpro_customers;\n")
	b.WriteString("  SELECT COUNT(*) INTO cont_count FROM simpro_customer_contracts;\n")
	b.WriteString("  RAISE NOTICE 'Loaded % customers and % contracts', cust_count, cont_count;\n")
	b.WriteString("END $$;\n")
	return b.String()
}
