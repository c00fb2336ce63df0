package matching_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/simpro-reconcile/internal/domain/matching"
)

func TestNormalizeName_Casos(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"vacío", "", ""},
		{"solo espacios", "   \t ", ""},
		{"mayúsculas y trim", "  acme widgets ", "ACME WIDGETS"},
		{"paréntesis", "ACME (FORMERLY X CORP)", "ACME"},
		{"paréntesis en medio", "Acme (USA) Inc", "ACME INC"},
		{"corp", "Acme Corp", "ACME CORPORATION"},
		{"corp con punto", "Acme Corp.", "ACME CORPORATION"},
		{"co con punto", "Smith & Co.", "SMITH & COMPANY"},
		{"inc con punto", "Widget Inc.", "WIDGET INC"},
		{"llc con punto", "Widget LLC.", "WIDGET LLC"},
		{"palabra contenida no se reescribe", "Costco Corporate", "COSTCO CORPORATE"},
		{"co dentro de palabra", "Cobalt Coal Co", "COBALT COAL COMPANY"},
		{"espacios colapsados", "Big    Bear\t\tHoldings", "BIG BEAR HOLDINGS"},
		{"punto pegado a palabra", "Acme Co.Inc", "ACME COMPANY.INC"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, matching.NormalizeName(tc.in))
		})
	}
}

// La normalización aplicada dos veces no cambia el resultado.
func TestNormalizeName_Idempotente(t *testing.T) {
	inputs := []string{
		"", "Acme Corp", "Acme Corp.", "ACME CORPORATION", "Smith & Co.", "Smith Co",
		"A(B(C)D)", "Widget Inc. (West)", "  x  ", "CORP.. CO.. INC..", "Acme Co.Inc",
		"123 Holdings LLC", "(SOLO PARÉNTESIS)", "Sociedad Ñandú Co",
	}
	for _, in := range inputs {
		once := matching.NormalizeName(in)
		assert.Equal(t, once, matching.NormalizeName(once), "entrada %q", in)
	}
}

func TestNormalizeName_ParentesisEquivalente(t *testing.T) {
	assert.Equal(t, matching.NormalizeName("Acme Inc"), matching.NormalizeName("Acme (USA) Inc"))
}

func TestStripLegalSuffixes(t *testing.T) {
	assert.Equal(t, "ACME", matching.StripLegalSuffixes("ACME CORPORATION"))
	assert.Equal(t, "ACME HOLDINGS", matching.StripLegalSuffixes("ACME HOLDINGS LLC"))
	assert.Equal(t, "", matching.StripLegalSuffixes("INC"))
	assert.Equal(t, "INCORPORATED WIDGETS", matching.StripLegalSuffixes("INCORPORATED WIDGETS"))
}
