package matching

import (
	"strings"
	"unicode"
)

// Literales del reporte de contratos que no son clientes (periodicidades, etiquetas de plan).
var nonCustomerTokens = map[string]struct{}{
	"SMA Included": {},
	"UNL RS":       {},
	"Monthly":      {},
	"Quarterly":    {},
	"Weekly":       {},
}

// reportMetadataMarker aparece en las líneas de criterios que el reporte antepone a los datos.
const reportMetadataMarker = "Selected Criteria"

// IsNonCustomerName indica si el valor de la columna cliente claramente no es un cliente
// y la fila debe descartarse antes de emparejar.
func IsNonCustomerName(name string) bool {
	name = strings.TrimSpace(name)
	if _, ok := nonCustomerTokens[name]; ok {
		return true
	}
	if strings.Contains(name, reportMetadataMarker) {
		return true
	}
	return isAllDigits(name)
}

func isAllDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}
