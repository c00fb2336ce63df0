package postgres

import (
	"context"
	_ "embed"
	"fmt"

	"github.com/google/uuid"

	"github.com/jhoicas/simpro-reconcile/internal/domain"
	"github.com/jhoicas/simpro-reconcile/internal/domain/entity"
	"github.com/jhoicas/simpro-reconcile/internal/domain/repository"
)

//go:embed migrations/001_simpro_tables.sql
var schemaSQL string

var _ repository.ReconciliationRepository = (*ReconciliationRepo)(nil)

// ReconciliationRepo implementación de ReconciliationRepository sobre PostgreSQL.
type ReconciliationRepo struct {
	q  Querier
	tx *TxRunner
}

// NewReconciliationRepository construye el adaptador. q se usa para lecturas; las cargas van por tx.
func NewReconciliationRepository(q Querier, tx *TxRunner) *ReconciliationRepo {
	return &ReconciliationRepo{q: q, tx: tx}
}

// EnsureSchema crea las tablas simpro_* si no existen.
func (r *ReconciliationRepo) EnsureSchema(ctx context.Context) error {
	if _, err := r.q.Exec(ctx, schemaSQL); err != nil {
		return fmt.Errorf("crear esquema simpro: %w", err)
	}
	return nil
}

// ReplaceAll borra y recarga ambas tablas en una transacción.
func (r *ReconciliationRepo) ReplaceAll(ctx context.Context, customers []*entity.Customer, contracts []*entity.Contract) (repository.LoadCounts, error) {
	set := repository.SelectLoadable(customers, contracts)
	var counts repository.LoadCounts

	err := r.tx.Run(ctx, func(q Querier) error {
		if _, err := q.Exec(ctx, `DELETE FROM simpro_customer_contracts`); err != nil {
			return fmt.Errorf("delete contracts: %w", err)
		}
		if _, err := q.Exec(ctx, `DELETE FROM simpro_customers`); err != nil {
			return fmt.Errorf("delete customers: %w", err)
		}

		rowIDs := make(map[string]uuid.UUID, len(set.Customers))
		for _, c := range set.Customers {
			id := uuid.New()
			rowIDs[c.SimproID] = id
			if err := insertCustomer(ctx, q, id, c); err != nil {
				return err
			}
		}
		for _, k := range set.Contracts {
			if err := insertContract(ctx, q, rowIDs[k.CustomerID()], k); err != nil {
				return err
			}
		}

		var err error
		counts, err = countAll(ctx, q)
		return err
	})
	if err != nil {
		return repository.LoadCounts{}, err
	}
	return counts, nil
}

// CountAll devuelve las filas actuales de ambas tablas.
func (r *ReconciliationRepo) CountAll(ctx context.Context) (repository.LoadCounts, error) {
	return countAll(ctx, r.q)
}

func insertCustomer(ctx context.Context, q Querier, id uuid.UUID, c *entity.Customer) error {
	query := `
		INSERT INTO simpro_customers (
			id, simpro_customer_id, company_name, email,
			mailing_address, mailing_city, mailing_state, mailing_zip,
			is_contract_customer, has_active_contracts,
			active_contract_count, total_contract_value, service_tier)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`
	_, err := q.Exec(ctx, query,
		id, c.SimproID, c.CompanyName, nullIfEmpty(c.Email),
		nullIfEmpty(c.MailingAddress), nullIfEmpty(c.MailingCity), nullIfEmpty(c.MailingState), nullIfEmpty(c.MailingZIP),
		c.IsContractCustomer, c.HasActiveContracts,
		c.ActiveContractCount, c.TotalContractValue, string(c.ServiceTier()),
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: cliente %s repetido", domain.ErrInvalidInput, c.SimproID)
		}
		return fmt.Errorf("insert simpro customer %s: %w", c.SimproID, err)
	}
	return nil
}

func insertContract(ctx context.Context, q Querier, customerRowID uuid.UUID, k *entity.Contract) error {
	query := `
		INSERT INTO simpro_customer_contracts (
			id, customer_id, contract_name, contract_number,
			contract_value, contract_status, start_date, end_date,
			contract_email, contract_notes)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := q.Exec(ctx, query,
		uuid.New(), customerRowID, k.ContractName, nullIfEmpty(k.ContractNumber),
		k.Value, k.StatusLabel(), k.StartDate, k.EndDate,
		nullIfEmpty(k.Email), nullIfEmpty(k.Notes),
	)
	if err != nil {
		return fmt.Errorf("insert simpro contract %s: %w", k.ContractName, err)
	}
	return nil
}

func countAll(ctx context.Context, q Querier) (repository.LoadCounts, error) {
	var c repository.LoadCounts
	err := q.QueryRow(ctx, `
		SELECT (SELECT COUNT(*) FROM simpro_customers), (SELECT COUNT(*) FROM simpro_customer_contracts)`,
	).Scan(&c.Customers, &c.Contracts)
	if err != nil {
		return repository.LoadCounts{}, fmt.Errorf("count simpro tables: %w", err)
	}
	return c, nil
}
