// Package simpro contiene utilidades para interpretar los exportes CSV del sistema SimPro:
// nombres de columnas, montos y fechas. Las funciones nunca fallan: un valor no interpretable
// se degrada a cero o a fecha ausente.
package simpro

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/shopspring/decimal"
)

// plainAmount solo acepta montos en notación decimal simple; la notación científica queda fuera.
var plainAmount = regexp.MustCompile(`^(\d+(\.\d*)?|\.\d+)$`)

// ParseMoney interpreta un monto como "$1,234.50". Quita símbolos de moneda, separadores de
// miles y espacios. Vacío, mal formado, negativo o en notación científica devuelve cero.
func ParseMoney(s string) decimal.Decimal {
	cleaned := strings.Map(func(r rune) rune {
		if r == ',' || unicode.Is(unicode.Sc, r) || unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)
	if !plainAmount.MatchString(cleaned) {
		return decimal.Zero
	}
	d, err := decimal.NewFromString(cleaned)
	if err != nil {
		return decimal.Zero
	}
	return d
}
