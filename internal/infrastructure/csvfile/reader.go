package csvfile

import (
	"bufio"
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"

	"github.com/jhoicas/simpro-reconcile/internal/application/reconcile"
	"github.com/jhoicas/simpro-reconcile/pkg/config"
	"github.com/jhoicas/simpro-reconcile/pkg/simpro"
)

var _ reconcile.SourceReader = (*Reader)(nil)

// Reader lee los exportes CSV de SimPro desde disco.
type Reader struct {
	customersPath string
	contractsPath string
	skipLines     int
	enc           encoding.Encoding
}

// NewReader construye el lector a partir de la configuración de fuentes.
func NewReader(cfg config.SourcesConfig) *Reader {
	return &Reader{
		customersPath: cfg.CustomersCSV,
		contractsPath: cfg.ContractsCSV,
		skipLines:     cfg.ContractsSkipLines,
		enc:           encodingFor(cfg.Encoding),
	}
}

// encodingFor resuelve la codificación del archivo. UTF-8 tolera (y descarta) el BOM.
func encodingFor(name string) encoding.Encoding {
	switch strings.ToLower(name) {
	case "windows-1252", "cp1252":
		return charmap.Windows1252
	default:
		return unicode.UTF8BOM
	}
}

// ReadCustomers lee el exporte de clientes.
func (r *Reader) ReadCustomers(ctx context.Context) ([]simpro.Row, error) {
	return r.readFile(ctx, r.customersPath, 0)
}

// ReadContracts lee el reporte de contratos, saltando las líneas de criterios previas al encabezado.
func (r *Reader) ReadContracts(ctx context.Context) ([]simpro.Row, error) {
	return r.readFile(ctx, r.contractsPath, r.skipLines)
}

func (r *Reader) readFile(ctx context.Context, path string, skip int) ([]simpro.Row, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("abrir %s: %w", path, err)
	}
	defer f.Close()

	rows, err := ReadRows(ctx, transform.NewReader(f, r.enc.NewDecoder()), skip)
	if err != nil {
		return nil, fmt.Errorf("leer %s: %w", path, err)
	}
	return rows, nil
}

// ReadRows interpreta un CSV con encabezado. Las primeras skip líneas físicas se descartan.
// Las filas más cortas que el encabezado completan con ""; las columnas sobrantes se ignoran.
func ReadRows(ctx context.Context, in io.Reader, skip int) ([]simpro.Row, error) {
	br := bufio.NewReader(in)
	for i := 0; i < skip; i++ {
		if _, err := br.ReadString('\n'); err != nil {
			if errors.Is(err, io.EOF) {
				return nil, nil
			}
			return nil, err
		}
	}

	cr := csv.NewReader(br)
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("encabezado: %w", err)
	}
	for i, h := range header {
		header[i] = strings.TrimSpace(strings.TrimPrefix(h, "\ufeff"))
	}

	var rows []simpro.Row
	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}
		row := make(simpro.Row, len(header))
		for i, col := range header {
			if i < len(rec) {
				row[col] = rec[i]
			} else {
				row[col] = ""
			}
		}
		rows = append(rows, row)
	}
	return rows, nil
}
