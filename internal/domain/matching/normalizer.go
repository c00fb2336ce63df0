// Package matching contiene la normalización de razones sociales y el motor que vincula
// contratos con clientes cuando no existe una llave común entre ambas fuentes.
package matching

import (
	"regexp"
	"strings"
)

var (
	parenthetical = regexp.MustCompile(`\([^)]*\)`)

	// Abreviaturas de forma legal, en el orden en que se aplican.
	// El punto final se consume solo si no va pegado a otra palabra ("CORP." == "CORP", "CO.INC" no se une).
	legalAbbreviations = []struct {
		re   *regexp.Regexp
		repl string
	}{
		{regexp.MustCompile(`\bCORP\b(?:\.+\B)?`), "CORPORATION"},
		{regexp.MustCompile(`\bINC\b(?:\.+\B)?`), "INC"},
		{regexp.MustCompile(`\bLLC\b(?:\.+\B)?`), "LLC"},
		{regexp.MustCompile(`\bCO\b(?:\.+\B)?`), "COMPANY"},
	}

	legalSuffixes = regexp.MustCompile(`\b(LLC|INC|CORPORATION|COMPANY|CORP)\b`)
)

// NormalizeName devuelve la llave comparable de una razón social:
// mayúsculas, sin paréntesis, sufijos legales canónicos y espacios colapsados.
// Es pura e idempotente; "" normaliza a "".
func NormalizeName(raw string) string {
	name := strings.ToUpper(strings.TrimSpace(raw))
	if name == "" {
		return ""
	}
	name = parenthetical.ReplaceAllString(name, "")
	for _, abbr := range legalAbbreviations {
		name = abbr.re.ReplaceAllString(name, abbr.repl)
	}
	return strings.Join(strings.Fields(name), " ")
}

// StripLegalSuffixes elimina los sufijos legales (palabra completa) de un nombre ya normalizado.
// Los espacios internos no se colapsan.
func StripLegalSuffixes(normalized string) string {
	return strings.TrimSpace(legalSuffixes.ReplaceAllString(normalized, ""))
}
