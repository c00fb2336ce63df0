package sqlgen

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/jhoicas/simpro-reconcile/internal/domain/entity"
)

const upsertHeader = `INSERT INTO customers (
  legacy_customer_id,
  company_name,
  mailing_address,
  mailing_city,
  mailing_state,
  mailing_zip,
  primary_contact_email,
  service_tier,
  has_active_contracts,
  total_contract_value,
  site_nickname,
  contract_number,
  contract_status,
  latest_contract_email,
  created_at,
  updated_at
) VALUES
`

const upsertConflict = `
ON CONFLICT (legacy_customer_id) DO UPDATE SET
  company_name = EXCLUDED.company_name,
  mailing_address = EXCLUDED.mailing_address,
  mailing_city = EXCLUDED.mailing_city,
  mailing_state = EXCLUDED.mailing_state,
  mailing_zip = EXCLUDED.mailing_zip,
  primary_contact_email = EXCLUDED.primary_contact_email,
  service_tier = EXCLUDED.service_tier,
  has_active_contracts = EXCLUDED.has_active_contracts,
  total_contract_value = EXCLUDED.total_contract_value,
  contract_number = EXCLUDED.contract_number,
  contract_status = EXCLUDED.contract_status,
  latest_contract_email = EXCLUDED.latest_contract_email,
  updated_at = NOW();
`

// CustomerBatches genera sentencias de upsert sobre la tabla customers, en lotes de batchSize.
// Solo entran clientes cuyo ID de SimPro es numérico y mayor que minLegacyID.
func (g *Generator) CustomerBatches(customers []*entity.Customer, batchSize, minLegacyID int) []string {
	if batchSize <= 0 {
		batchSize = 50
	}
	var values []string
	for _, c := range customers {
		legacyID, err := strconv.Atoi(c.SimproID)
		if err != nil || legacyID <= minLegacyID {
			continue
		}
		values = append(values, upsertValues(legacyID, c))
	}

	var out []string
	for start := 0; start < len(values); start += batchSize {
		end := min(start+batchSize, len(values))
		var b strings.Builder
		b.WriteString(upsertHeader)
		b.WriteString(strings.Join(values[start:end], ",\n"))
		b.WriteString(upsertConflict)
		out = append(out, b.String())
	}
	return out
}

func upsertValues(legacyID int, c *entity.Customer) string {
	email := c.Email
	if email == "" {
		email = c.LatestContractEmail
	}
	var contractNo, status string
	if k := latestContract(c); k != nil {
		contractNo, status = k.ContractNumber, k.Status
	}
	return fmt.Sprintf("(%d, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s, NOW(), NOW())",
		legacyID, quoted(c.CompanyName), quoted(c.MailingAddress), quoted(c.MailingCity),
		quoted(c.MailingState), quoted(c.MailingZIP), quoted(email), quoted(string(c.ServiceTier())),
		boolean(c.HasActiveContracts), number(c.TotalContractValue), quoted(c.CompanyName),
		quoted(contractNo), quoted(status), quoted(c.LatestContractEmail),
	)
}

// latestContract último contrato activo vinculado; si no hay activos, el último vinculado.
func latestContract(c *entity.Customer) *entity.Contract {
	var last *entity.Contract
	for _, k := range c.Contracts {
		if k.IsActive() {
			last = k
		}
	}
	if last == nil && len(c.Contracts) > 0 {
		last = c.Contracts[len(c.Contracts)-1]
	}
	return last
}

// WriteBatches escribe cada lote como customer_batch_NN.sql (numerado desde 01) y devuelve las rutas.
func WriteBatches(dir string, batches []string) ([]string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("crear directorio de lotes: %w", err)
	}
	paths := make([]string, 0, len(batches))
	for i, sql := range batches {
		path := filepath.Join(dir, fmt.Sprintf("customer_batch_%02d.sql", i+1))
		if err := os.WriteFile(path, []byte(sql), 0o644); err != nil {
			return nil, fmt.Errorf("escribir %s: %w", path, err)
		}
		paths = append(paths, path)
	}
	return paths, nil
}
