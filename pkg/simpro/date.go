package simpro

import (
	"strings"
	"time"
)

// ISODate formato de salida para fechas de calendario.
const ISODate = "2006-01-02"

// Formatos aceptados en los exportes: M/D/YYYY y YYYY-M-D (con o sin ceros a la izquierda).
var dateLayouts = []string{"1/2/2006", "2006-1-2"}

// ParseDate interpreta una fecha de SimPro. Devuelve nil si está vacía o no es interpretable.
func ParseDate(s string) *time.Time {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return &t
		}
	}
	return nil
}

// FormatDate devuelve la fecha en formato ISO o "" si es nil.
func FormatDate(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format(ISODate)
}
