// Package sqlite guarda el resultado de conciliación en un archivo SQLite local (driver pure-Go).
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // pure go sqlite driver

	"github.com/jhoicas/simpro-reconcile/internal/domain/entity"
	"github.com/jhoicas/simpro-reconcile/internal/domain/repository"
	"github.com/jhoicas/simpro-reconcile/pkg/simpro"
)

var _ repository.ReconciliationRepository = (*ReconciliationStore)(nil)

const schema = `
CREATE TABLE IF NOT EXISTS simpro_customers (
	id TEXT PRIMARY KEY,
	simpro_customer_id TEXT NOT NULL UNIQUE,
	company_name TEXT NOT NULL,
	email TEXT,
	mailing_address TEXT,
	mailing_city TEXT,
	mailing_state TEXT,
	mailing_zip TEXT,
	is_contract_customer INTEGER NOT NULL DEFAULT 0,
	has_active_contracts INTEGER NOT NULL DEFAULT 0,
	active_contract_count INTEGER NOT NULL DEFAULT 0,
	total_contract_value TEXT NOT NULL DEFAULT '0',
	service_tier TEXT NOT NULL CHECK (service_tier IN ('CORE', 'ASSURE', 'GUARDIAN'))
);
CREATE TABLE IF NOT EXISTS simpro_customer_contracts (
	id TEXT PRIMARY KEY,
	customer_id TEXT NOT NULL REFERENCES simpro_customers (id) ON DELETE CASCADE,
	contract_name TEXT NOT NULL,
	contract_number TEXT,
	contract_value TEXT NOT NULL DEFAULT '0',
	contract_status TEXT NOT NULL CHECK (contract_status IN ('Active', 'Expired')),
	start_date TEXT,
	end_date TEXT,
	contract_email TEXT,
	contract_notes TEXT
);`

// ReconciliationStore implementación de ReconciliationRepository sobre SQLite.
// Los montos se guardan como TEXT para no perder precisión.
type ReconciliationStore struct {
	db *sql.DB
}

// NewReconciliationStore abre (o crea) la base en path y asegura el esquema.
// ":memory:" sirve para tests.
func NewReconciliationStore(path string) (*ReconciliationStore, error) {
	if path == "" {
		path = "simpro.db"
	}
	if path != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil && !errors.Is(err, os.ErrExist) {
			return nil, fmt.Errorf("create dirs: %w", err)
		}
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	// una sola conexión: cada conexión a ":memory:" abre una base distinta
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(`PRAGMA foreign_keys = ON`); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("enable foreign keys: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("create simpro tables: %w", err)
	}
	return &ReconciliationStore{db: db}, nil
}

// Close libera la base.
func (s *ReconciliationStore) Close() error {
	return s.db.Close()
}

// ReplaceAll borra y recarga ambas tablas en una transacción.
func (s *ReconciliationStore) ReplaceAll(ctx context.Context, customers []*entity.Customer, contracts []*entity.Contract) (counts repository.LoadCounts, retErr error) {
	set := repository.SelectLoadable(customers, contracts)

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return counts, fmt.Errorf("begin transaction: %w", err)
	}
	defer func() {
		if retErr != nil {
			_ = tx.Rollback()
		}
	}()

	if _, err := tx.ExecContext(ctx, `DELETE FROM simpro_customer_contracts`); err != nil {
		return counts, fmt.Errorf("delete contracts: %w", err)
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM simpro_customers`); err != nil {
		return counts, fmt.Errorf("delete customers: %w", err)
	}

	rowIDs := make(map[string]string, len(set.Customers))
	for _, c := range set.Customers {
		id := uuid.NewString()
		rowIDs[c.SimproID] = id
		_, err := tx.ExecContext(ctx, `
			INSERT INTO simpro_customers (
				id, simpro_customer_id, company_name, email,
				mailing_address, mailing_city, mailing_state, mailing_zip,
				is_contract_customer, has_active_contracts,
				active_contract_count, total_contract_value, service_tier)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			id, c.SimproID, c.CompanyName, nullString(c.Email),
			nullString(c.MailingAddress), nullString(c.MailingCity), nullString(c.MailingState), nullString(c.MailingZIP),
			c.IsContractCustomer, c.HasActiveContracts,
			c.ActiveContractCount, c.TotalContractValue.String(), string(c.ServiceTier()),
		)
		if err != nil {
			return counts, fmt.Errorf("insert simpro customer %s: %w", c.SimproID, err)
		}
	}
	for _, k := range set.Contracts {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO simpro_customer_contracts (
				id, customer_id, contract_name, contract_number,
				contract_value, contract_status, start_date, end_date,
				contract_email, contract_notes)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			uuid.NewString(), rowIDs[k.CustomerID()], k.ContractName, nullString(k.ContractNumber),
			k.Value.String(), k.StatusLabel(),
			nullString(simpro.FormatDate(k.StartDate)), nullString(simpro.FormatDate(k.EndDate)),
			nullString(k.Email), nullString(k.Notes),
		)
		if err != nil {
			return counts, fmt.Errorf("insert simpro contract %s: %w", k.ContractName, err)
		}
	}

	if counts, err = countAll(ctx, tx); err != nil {
		return counts, err
	}
	if err := tx.Commit(); err != nil {
		return repository.LoadCounts{}, fmt.Errorf("commit transaction: %w", err)
	}
	return counts, nil
}

// CountAll devuelve las filas actuales de ambas tablas.
func (s *ReconciliationStore) CountAll(ctx context.Context) (repository.LoadCounts, error) {
	return countAll(ctx, s.db)
}

type rowQuerier interface {
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

func countAll(ctx context.Context, q rowQuerier) (repository.LoadCounts, error) {
	var c repository.LoadCounts
	err := q.QueryRowContext(ctx, `
		SELECT (SELECT COUNT(*) FROM simpro_customers), (SELECT COUNT(*) FROM simpro_customer_contracts)`,
	).Scan(&c.Customers, &c.Contracts)
	if err != nil {
		return repository.LoadCounts{}, fmt.Errorf("count simpro tables: %w", err)
	}
	return c, nil
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
