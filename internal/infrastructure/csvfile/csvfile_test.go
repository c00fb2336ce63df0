package csvfile_test

import (
	"context"
	"encoding/csv"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/simpro-reconcile/internal/application/reconcile"
	"github.com/jhoicas/simpro-reconcile/internal/infrastructure/csvfile"
	"github.com/jhoicas/simpro-reconcile/pkg/config"
	"github.com/jhoicas/simpro-reconcile/pkg/logger"
	"github.com/jhoicas/simpro-reconcile/pkg/simpro"
)

const customersCSV = "\ufeffCustomer ID,Customer,Email,Mailing City,Contract Customer\n" +
	"C1,Acme Corp.,OPS@ACME.COM,Denver,Yes\n" +
	"C2,O'Brien Plumbing LLC,,\"Austin, TX\",No\n" +
	"C3,Initech\n"

const contractsCSV = "Selected Criteria: Status = Any\n" +
	"Customer,Contract Name,Contract No.,Value,Status,Start Date,End Date,Email,Notes\n" +
	"Acme Corporation,Gold,A-1,\"$120,000.00\",Active,1/15/2024,2024-12-31,billing@acme.com,\"multi\nline\"\n" +
	"O'Brien Plumbing Inc,Basic,B-1,$500,Expired,,,,\n" +
	"Umbrella,Lost,U-1,$1,Active,,,,\n"

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	p := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(p, []byte(content), 0o644))
	return p
}

func newReader(t *testing.T, dir string) *csvfile.Reader {
	t.Helper()
	return csvfile.NewReader(config.SourcesConfig{
		CustomersCSV:       writeFile(t, dir, "customers.csv", customersCSV),
		ContractsCSV:       writeFile(t, dir, "contracts.csv", contractsCSV),
		Encoding:           "utf-8",
		ContractsSkipLines: 1,
	})
}

func readAll(t *testing.T, path string) [][]string {
	t.Helper()
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	recs, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	return recs
}

// ─── Reader ──────────────────────────────────────────────────────────────────

func TestReader_ClientesConBOMYFilasCortas(t *testing.T) {
	r := newReader(t, t.TempDir())

	rows, err := r.ReadCustomers(context.Background())
	require.NoError(t, err)
	require.Len(t, rows, 3)

	assert.Equal(t, "C1", rows[0].Get(simpro.ColCustomerID), "el BOM no debe quedar en el encabezado")
	assert.True(t, rows[0].Flag(simpro.ColContractCustomer))
	assert.Equal(t, "Austin, TX", rows[1].Get(simpro.ColMailingCity))
	assert.Equal(t, "", rows[2].Get(simpro.ColEmail))
}

func TestReader_ContratosSaltaCriterios(t *testing.T) {
	r := newReader(t, t.TempDir())

	rows, err := r.ReadContracts(context.Background())
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, "Acme Corporation", rows[0].Get(simpro.ColCustomer))
	assert.Equal(t, "$120,000.00", rows[0].Get(simpro.ColValue))
	assert.Equal(t, "multi\nline", rows[0].Get(simpro.ColNotes))
}

func TestReader_Windows1252(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "customers.csv")
	require.NoError(t, os.WriteFile(path, []byte("Customer ID,Customer\nC1,Caf\xe9 Central\n"), 0o644))

	r := csvfile.NewReader(config.SourcesConfig{CustomersCSV: path, Encoding: "windows-1252"})
	rows, err := r.ReadCustomers(context.Background())
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "Café Central", rows[0].Get(simpro.ColCustomer))
}

func TestReader_ArchivoInexistente(t *testing.T) {
	r := csvfile.NewReader(config.SourcesConfig{CustomersCSV: filepath.Join(t.TempDir(), "missing.csv")})
	_, err := r.ReadCustomers(context.Background())
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestReadRows_Vacio(t *testing.T) {
	rows, err := csvfile.ReadRows(context.Background(), strings.NewReader("criterios\n"), 3)
	require.NoError(t, err)
	assert.Empty(t, rows)
}

// ─── Writer ──────────────────────────────────────────────────────────────────

func TestWriter_ExportaResultado(t *testing.T) {
	dir := t.TempDir()
	uc := reconcile.NewReconcileUseCase(newReader(t, dir), logger.Nop())
	res, err := uc.Run(context.Background())
	require.NoError(t, err)

	out := filepath.Join(dir, "cleaned")
	paths, err := csvfile.NewWriter(out).WriteCleaned(res)
	require.NoError(t, err)
	require.Len(t, paths, 3)

	customers := readAll(t, filepath.Join(out, csvfile.CustomersFile))
	require.Len(t, customers, 4)
	assert.Equal(t, "simpro_customer_id", customers[0][0])
	assert.Equal(t, []string{
		"C1", "Acme Corp.", "ops@acme.com", "", "Denver", "", "", "", "", "true",
		"true", "1", "120000.00", "ASSURE", "billing@acme.com",
	}, customers[1])
	assert.Equal(t, "CORE", customers[2][13])

	contracts := readAll(t, filepath.Join(out, csvfile.ContractsFile))
	require.Len(t, contracts, 4)
	assert.Equal(t, "C1", contracts[1][0])
	assert.Equal(t, "2024-01-15", contracts[1][6])
	assert.Equal(t, "2024-12-31", contracts[1][7])
	assert.Equal(t, "C2", contracts[2][0])
	assert.Equal(t, "expired", contracts[2][5])
	assert.Equal(t, "", contracts[3][0], "los contratos sin vincular se exportan sin cliente")

	raw, err := os.ReadFile(filepath.Join(out, csvfile.SummaryFile))
	require.NoError(t, err)
	var summary map[string]any
	require.NoError(t, json.Unmarshal(raw, &summary))
	assert.EqualValues(t, 3, summary["total_customers"])
	assert.EqualValues(t, 2, summary["customers_with_contracts"])
	assert.EqualValues(t, 1, summary["unmatched_contracts"])
	tiers := summary["service_tiers"].(map[string]any)
	assert.EqualValues(t, 1, tiers["ASSURE"])
	assert.EqualValues(t, 2, tiers["CORE"])
}
