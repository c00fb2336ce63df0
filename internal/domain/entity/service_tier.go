package entity

import (
	"strings"

	"github.com/shopspring/decimal"
)

// ServiceTier nivel de servicio derivado del valor total de contratos activos.
type ServiceTier string

// Niveles de servicio (CORE < ASSURE < GUARDIAN).
const (
	TierCore     ServiceTier = "CORE"
	TierAssure   ServiceTier = "ASSURE"
	TierGuardian ServiceTier = "GUARDIAN"
)

var (
	guardianThreshold = decimal.NewFromInt(250_000)
	assureThreshold   = decimal.NewFromInt(100_000)
)

// Tiers devuelve los niveles en orden ascendente.
func Tiers() []ServiceTier {
	return []ServiceTier{TierCore, TierAssure, TierGuardian}
}

// TierFor clasifica un valor total de contratos activos.
func TierFor(total decimal.Decimal) ServiceTier {
	switch {
	case total.GreaterThanOrEqual(guardianThreshold):
		return TierGuardian
	case total.GreaterThanOrEqual(assureThreshold):
		return TierAssure
	default:
		return TierCore
	}
}

// ParseServiceTier convierte un texto (sin importar mayúsculas) en ServiceTier.
func ParseServiceTier(s string) (ServiceTier, bool) {
	s = strings.ToUpper(strings.TrimSpace(s))
	for _, t := range Tiers() {
		if string(t) == s {
			return t, true
		}
	}
	return "", false
}
