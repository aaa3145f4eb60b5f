package repository

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"transport-console/internal/domain"
	"transport-console/internal/store"
)

func newTestStore(t *testing.T) *store.Store {
	t.Helper()

	st, err := store.OpenInMemory("test", zap.NewNop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })

	return st
}

func customerRepo(t *testing.T, st *store.Store) *Repository[domain.Customer] {
	t.Helper()
	return New[domain.Customer](st, zap.NewNop(), Config{Key: "customers"}, nil)
}

func TestCreateAppendsInInsertionOrder(t *testing.T) {
	repo := customerRepo(t, newTestStore(t))

	repo.Create(domain.Customer{ID: "cus-1", Name: "First"})
	repo.Create(domain.Customer{ID: "cus-2", Name: "Second"})

	listed := repo.List()
	require.Len(t, listed, 2)
	assert.Equal(t, "cus-1", listed[0].ID)
	assert.Equal(t, "cus-2", listed[1].ID)
}

func TestInsertAtHeadListsNewestFirst(t *testing.T) {
	st := newTestStore(t)
	repo := New[domain.Shipment](st, zap.NewNop(), Config{Key: "shipments", InsertAtHead: true}, nil)

	repo.Create(domain.Shipment{ID: "shp-1"})
	repo.Create(domain.Shipment{ID: "shp-2"})

	listed := repo.List()
	require.Len(t, listed, 2)
	assert.Equal(t, "shp-2", listed[0].ID)
}

func TestGet(t *testing.T) {
	repo := customerRepo(t, newTestStore(t))
	repo.Create(domain.Customer{ID: "cus-1"})

	found, err := repo.Get("cus-1")
	require.NoError(t, err)
	assert.Equal(t, "cus-1", found.ID)

	_, err = repo.Get("cus-404")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestUpdateMergesAndPersists(t *testing.T) {
	st := newTestStore(t)
	repo := customerRepo(t, st)
	repo.Create(domain.Customer{ID: "cus-1", Name: "Before"})

	updated, err := repo.Update("cus-1", func(c *domain.Customer) error {
		c.Name = "After"
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, "After", updated.Name)

	// A fresh repository over the same store sees the persisted state.
	reloaded := customerRepo(t, st)
	found, err := reloaded.Get("cus-1")
	require.NoError(t, err)
	assert.Equal(t, "After", found.Name)
}

func TestUpdateNotFoundLeavesCollectionUnchanged(t *testing.T) {
	repo := customerRepo(t, newTestStore(t))
	repo.Create(domain.Customer{ID: "cus-1", Name: "Original"})

	_, err := repo.Update("cus-404", func(c *domain.Customer) error {
		c.Name = "Changed"
		return nil
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)

	listed := repo.List()
	require.Len(t, listed, 1)
	assert.Equal(t, "Original", listed[0].Name)
}

func TestUpdateApplyFailureRollsBack(t *testing.T) {
	repo := customerRepo(t, newTestStore(t))
	repo.Create(domain.Customer{ID: "cus-1", Name: "Original"})

	boom := errors.New("boom")
	_, err := repo.Update("cus-1", func(c *domain.Customer) error {
		c.Name = "Changed"
		return boom
	})
	assert.ErrorIs(t, err, boom)

	found, err := repo.Get("cus-1")
	require.NoError(t, err)
	assert.Equal(t, "Original", found.Name)
}

func TestDelete(t *testing.T) {
	repo := customerRepo(t, newTestStore(t))
	repo.Create(domain.Customer{ID: "cus-1"})

	require.NoError(t, repo.Delete("cus-1"))
	assert.Zero(t, repo.Count())

	assert.ErrorIs(t, repo.Delete("cus-1"), domain.ErrNotFound)
}

func TestDefaultsSeedEmptyStore(t *testing.T) {
	st := newTestStore(t)

	defaults := func() []domain.Customer {
		return []domain.Customer{{ID: "cus-seed", Name: "Seeded", CreatedAt: time.Now()}}
	}

	repo := New(st, zap.NewNop(), Config{Key: "customers"}, defaults)
	assert.Equal(t, 1, repo.Count())

	// The seeded dataset is persisted immediately, so a second repository
	// loads it from the store instead of reseeding.
	again := New(st, zap.NewNop(), Config{Key: "customers"}, func() []domain.Customer {
		t.Fatal("defaults must not be invoked when stored data exists")
		return nil
	})
	assert.Equal(t, 1, again.Count())
}

func TestReplaceAll(t *testing.T) {
	st := newTestStore(t)
	repo := customerRepo(t, st)
	repo.Create(domain.Customer{ID: "cus-1"})

	repo.ReplaceAll([]domain.Customer{{ID: "cus-9"}, {ID: "cus-10"}})

	assert.Equal(t, 2, repo.Count())
	reloaded := customerRepo(t, st)
	assert.Equal(t, 2, reloaded.Count())
}
