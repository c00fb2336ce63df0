package matching

import (
	"strings"
	"unicode/utf8"

	"github.com/jhoicas/simpro-reconcile/internal/domain/entity"
)

// minContainmentLen longitud (en caracteres) que ambos nombres deben superar para aceptar contención.
const minContainmentLen = 10

// Match resultado de buscar un cliente para un nombre de contrato.
type Match struct {
	CustomerID string
	Method     entity.MatchMethod // MatchNone si no hubo coincidencia
}

// Found indica si hubo coincidencia.
func (m Match) Found() bool { return m.Method != entity.MatchNone }

// Matcher resuelve nombres de contrato contra un NameIndex ya construido.
// El índice no se modifica durante el emparejamiento.
type Matcher struct {
	index *NameIndex
}

// NewMatcher construye el matcher sobre un índice finalizado.
func NewMatcher(index *NameIndex) *Matcher {
	return &Matcher{index: index}
}

// Match aplica, en orden: coincidencia exacta de la llave normalizada; luego un único recorrido
// del índice en orden de inserción evaluando por candidato contención (ambos > 10 caracteres)
// e igualdad sin sufijos legales. Gana el primer candidato que cumpla.
//
// El recorrido es O(clientes) por contrato sin coincidencia exacta.
func (m *Matcher) Match(rawName string) Match {
	name := NormalizeName(rawName)
	if name == "" {
		return Match{}
	}
	if id, ok := m.index.Lookup(name); ok {
		return Match{CustomerID: id, Method: entity.MatchExact}
	}

	nameLong := utf8.RuneCountInString(name) > minContainmentLen
	stripped := StripLegalSuffixes(name)

	var found Match
	m.index.Each(func(key, id string) bool {
		if nameLong && utf8.RuneCountInString(key) > minContainmentLen &&
			(strings.Contains(key, name) || strings.Contains(name, key)) {
			found = Match{CustomerID: id, Method: entity.MatchContainment}
			return false
		}
		if stripped != "" {
			if keyStripped := StripLegalSuffixes(key); keyStripped != "" && keyStripped == stripped {
				found = Match{CustomerID: id, Method: entity.MatchSuffix}
				return false
			}
		}
		return true
	})
	return found
}
