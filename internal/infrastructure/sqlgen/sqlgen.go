// Package sqlgen genera scripts SQL de carga a partir del resultado conciliado.
package sqlgen

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/simpro-reconcile/pkg/simpro"
)

// Generator arma los scripts. Los IDs de fila se generan en cada llamada.
type Generator struct {
	newID func() string
}

// Option personaliza el generador.
type Option func(*Generator)

// WithIDGenerator reemplaza el generador de UUID (tests).
func WithIDGenerator(fn func() string) Option {
	return func(g *Generator) { g.newID = fn }
}

// NewGenerator construye el generador.
func NewGenerator(opts ...Option) *Generator {
	g := &Generator{newID: func() string { return uuid.New().String() }}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

func escapeSQL(s string) string {
	return strings.ReplaceAll(s, "'", "''")
}

// text literal SQL; "" se escribe como NULL.
func text(s string) string {
	if s == "" {
		return "NULL"
	}
	return "'" + escapeSQL(s) + "'"
}

// quoted literal SQL que nunca es NULL.
func quoted(s string) string {
	return "'" + escapeSQL(s) + "'"
}

func boolean(b bool) string {
	if b {
		return "true"
	}
	return "false"
}

func number(d decimal.Decimal) string {
	return d.String()
}

func date(t *time.Time) string {
	if t == nil {
		return "NULL"
	}
	return "'" + simpro.FormatDate(t) + "'"
}

// WriteFile escribe content en dir/<prefix>_YYYYMMDD_HHMMSS.sql y devuelve la ruta.
func WriteFile(dir, prefix, content string, now time.Time) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("crear directorio sql: %w", err)
	}
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.sql", prefix, now.Format("20060102_150405")))
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return "", fmt.Errorf("escribir %s: %w", path, err)
	}
	return path, nil
}
