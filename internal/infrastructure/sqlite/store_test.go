package sqlite_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/simpro-reconcile/internal/domain/entity"
	"github.com/jhoicas/simpro-reconcile/internal/domain/repository"
	"github.com/jhoicas/simpro-reconcile/internal/infrastructure/sqlite"
	"github.com/jhoicas/simpro-reconcile/pkg/simpro"
)

func newStore(t *testing.T) *sqlite.ReconciliationStore {
	t.Helper()
	s, err := sqlite.NewReconciliationStore(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func linked(t *testing.T, c *entity.Customer, value, status string) *entity.Contract {
	t.Helper()
	k := &entity.Contract{
		ContractName: c.CompanyName + " plan",
		Value:        decimal.RequireFromString(value),
		Status:       status,
		StartDate:    simpro.ParseDate("2024-01-01"),
	}
	require.NoError(t, k.LinkTo(c.SimproID, entity.MatchExact))
	c.AttachContract(k)
	return k
}

func TestStore_ReplaceAllCargaSoloVinculados(t *testing.T) {
	s := newStore(t)
	ctx := context.Background()

	acme := &entity.Customer{SimproID: "C1", CompanyName: "Acme"}
	globex := &entity.Customer{SimproID: "C2", CompanyName: "Globex"}
	idle := &entity.Customer{SimproID: "C3", CompanyName: "Idle"}
	k1 := linked(t, acme, "260000.10", entity.ContractStatusActive)
	k2 := linked(t, acme, "5", entity.ContractStatusExpired)
	k3 := linked(t, globex, "10", entity.ContractStatusActive)
	orphan := &entity.Contract{ContractName: "Lost", Status: entity.ContractStatusActive}

	counts, err := s.ReplaceAll(ctx, []*entity.Customer{acme, globex, idle}, []*entity.Contract{k1, orphan, k2, k3})
	require.NoError(t, err)
	assert.Equal(t, repository.LoadCounts{Customers: 2, Contracts: 3}, counts)

	again, err := s.CountAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, counts, again)
}

func TestStore_ReplaceAllReemplaza(t *testing.T) {
	s := newStore(t)
	ctx := context.Background()

	a := &entity.Customer{SimproID: "C1", CompanyName: "Acme"}
	k := linked(t, a, "1", entity.ContractStatusActive)
	_, err := s.ReplaceAll(ctx, []*entity.Customer{a}, []*entity.Contract{k})
	require.NoError(t, err)

	counts, err := s.ReplaceAll(ctx, nil, nil)
	require.NoError(t, err)
	assert.Equal(t, repository.LoadCounts{}, counts)
}

func TestStore_ArchivoEnDisco(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data", "simpro.db")
	s, err := sqlite.NewReconciliationStore(path)
	require.NoError(t, err)

	a := &entity.Customer{SimproID: "C1", CompanyName: "Acme"}
	k := linked(t, a, "1", entity.ContractStatusActive)
	_, err = s.ReplaceAll(context.Background(), []*entity.Customer{a}, []*entity.Contract{k})
	require.NoError(t, err)
	require.NoError(t, s.Close())

	reopened, err := sqlite.NewReconciliationStore(path)
	require.NoError(t, err)
	defer reopened.Close()
	counts, err := reopened.CountAll(context.Background())
	require.NoError(t, err)
	assert.Equal(t, repository.LoadCounts{Customers: 1, Contracts: 1}, counts)
}
