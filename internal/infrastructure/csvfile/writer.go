package csvfile

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/jhoicas/simpro-reconcile/internal/application/reconcile"
	"github.com/jhoicas/simpro-reconcile/internal/domain/entity"
	"github.com/jhoicas/simpro-reconcile/pkg/simpro"
)

// Nombres de los archivos generados en el directorio de salida.
const (
	CustomersFile = "cleaned_customers.csv"
	ContractsFile = "cleaned_contracts.csv"
	SummaryFile   = "data_summary.json"
)

var customerHeader = []string{
	"simpro_customer_id", "company_name", "email",
	"mailing_address", "mailing_city", "mailing_state", "mailing_zip",
	"labor_tax_code", "part_tax_code", "is_contract_customer",
	"has_active_contracts", "active_contract_count", "total_contract_value",
	"service_tier", "latest_contract_email",
}

var contractHeader = []string{
	"matched_customer_id", "customer_name_in_contract", "contract_name",
	"contract_number", "contract_value", "contract_status",
	"start_date", "end_date", "contract_email", "contract_notes",
}

// Writer exporta el resultado conciliado como CSV limpios y un resumen JSON.
type Writer struct {
	dir string
}

// NewWriter construye el exportador sobre el directorio dado (se crea si no existe).
func NewWriter(dir string) *Writer {
	return &Writer{dir: dir}
}

// WriteCleaned escribe cleaned_customers.csv, cleaned_contracts.csv y data_summary.json.
// Devuelve las rutas escritas.
func (w *Writer) WriteCleaned(res *reconcile.Result) ([]string, error) {
	if err := os.MkdirAll(w.dir, 0o755); err != nil {
		return nil, fmt.Errorf("crear directorio de salida: %w", err)
	}

	customers := make([][]string, 0, len(res.Customers))
	for _, c := range res.Customers {
		customers = append(customers, customerRecord(c))
	}
	contracts := make([][]string, 0, len(res.Contracts))
	for _, k := range res.Contracts {
		contracts = append(contracts, contractRecord(k))
	}

	paths := []string{
		filepath.Join(w.dir, CustomersFile),
		filepath.Join(w.dir, ContractsFile),
		filepath.Join(w.dir, SummaryFile),
	}
	if err := writeCSV(paths[0], customerHeader, customers); err != nil {
		return nil, err
	}
	if err := writeCSV(paths[1], contractHeader, contracts); err != nil {
		return nil, err
	}

	summary, err := json.MarshalIndent(res.Summary(), "", "  ")
	if err != nil {
		return nil, fmt.Errorf("serializar resumen: %w", err)
	}
	if err := os.WriteFile(paths[2], append(summary, '\n'), 0o644); err != nil {
		return nil, fmt.Errorf("escribir %s: %w", paths[2], err)
	}
	return paths, nil
}

func customerRecord(c *entity.Customer) []string {
	return []string{
		c.SimproID, c.CompanyName, c.Email,
		c.MailingAddress, c.MailingCity, c.MailingState, c.MailingZIP,
		c.LaborTaxCode, c.PartTaxCode, strconv.FormatBool(c.IsContractCustomer),
		strconv.FormatBool(c.HasActiveContracts), strconv.Itoa(c.ActiveContractCount),
		c.TotalContractValue.StringFixed(2),
		string(c.ServiceTier()), c.LatestContractEmail,
	}
}

func contractRecord(k *entity.Contract) []string {
	return []string{
		k.CustomerID(), k.CustomerNameInContract, k.ContractName,
		k.ContractNumber, k.Value.StringFixed(2), k.Status,
		simpro.FormatDate(k.StartDate), simpro.FormatDate(k.EndDate), k.Email, k.Notes,
	}
}

func writeCSV(path string, header []string, records [][]string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("crear %s: %w", path, err)
	}
	defer f.Close()

	cw := csv.NewWriter(f)
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("escribir %s: %w", path, err)
	}
	if err := cw.WriteAll(records); err != nil {
		return fmt.Errorf("escribir %s: %w", path, err)
	}
	return f.Close()
}
