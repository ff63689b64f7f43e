package repository_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kasirpos/kasirpos/internal/model"
	"github.com/kasirpos/kasirpos/internal/repository"
	"github.com/kasirpos/kasirpos/internal/storage/kv"
)

func TestCatalogRepository(t *testing.T) {
	ctx := context.Background()

	t.Run("Should read an empty catalog as an empty slice", func(t *testing.T) {
		repo := repository.NewCatalogRepository(kv.NewMemory())

		products, err := repo.ListProducts(ctx)
		require.NoError(t, err)
		assert.Empty(t, products)
	})

	t.Run("Should round trip product collections of any size", func(t *testing.T) {
		for _, size := range []int{0, 1, 100} {
			t.Run(fmt.Sprintf("size %d", size), func(t *testing.T) {
				repo := repository.NewCatalogRepository(kv.NewMemory())

				products := make([]model.Product, 0, size)
				for i := range size {
					products = append(products, model.Product{
						ID:        uuid.New(),
						Name:      fmt.Sprintf("Produk %d", i),
						Price:     float64(i) * 1000,
						Stock:     i,
						Category:  "Minuman",
						CreatedAt: time.Now().UTC().Truncate(time.Second),
						UpdatedAt: time.Now().UTC().Truncate(time.Second),
					})
				}

				require.NoError(t, repo.SaveProducts(ctx, products))

				got, err := repo.ListProducts(ctx)
				require.NoError(t, err)
				assert.Len(t, got, size)
				if size > 0 {
					assert.Equal(t, products[0].ID, got[0].ID)
					assert.Equal(t, products[size-1].Name, got[size-1].Name)
				}
			})
		}
	})

	t.Run("Should read a corrupt payload as an empty collection", func(t *testing.T) {
		store := kv.NewMemory()
		require.NoError(t, store.Put(ctx, "pos_products", []byte("{not json")))

		repo := repository.NewCatalogRepository(store)

		products, err := repo.ListProducts(ctx)
		require.NoError(t, err)
		assert.Empty(t, products)
	})

	t.Run("Should round trip categories", func(t *testing.T) {
		repo := repository.NewCatalogRepository(kv.NewMemory())

		categories := []model.Category{
			{ID: uuid.New(), Name: "Makanan", CreatedAt: time.Now().UTC().Truncate(time.Second)},
			{ID: uuid.New(), Name: "Minuman", CreatedAt: time.Now().UTC().Truncate(time.Second)},
		}
		require.NoError(t, repo.SaveCategories(ctx, categories))

		got, err := repo.ListCategories(ctx)
		require.NoError(t, err)
		require.Len(t, got, 2)
		assert.Equal(t, "Makanan", got[0].Name)
	})
}

func TestLedgerRepository(t *testing.T) {
	ctx := context.Background()

	t.Run("Should append transactions in order", func(t *testing.T) {
		repo := repository.NewLedgerRepository(kv.NewMemory())

		first := model.Transaction{ID: uuid.New(), Total: 11000, PaymentMethod: model.PaymentMethodCash, CashierName: "kasir"}
		second := model.Transaction{ID: uuid.New(), Total: 22000, PaymentMethod: model.PaymentMethodCard, CashierName: "kasir"}

		require.NoError(t, repo.AppendTransaction(ctx, first))
		require.NoError(t, repo.AppendTransaction(ctx, second))

		got, err := repo.ListTransactions(ctx)
		require.NoError(t, err)
		require.Len(t, got, 2)
		assert.Equal(t, first.ID, got[0].ID)
		assert.Equal(t, second.ID, got[1].ID)
	})

	t.Run("Should read an empty ledger as an empty slice", func(t *testing.T) {
		repo := repository.NewLedgerRepository(kv.NewMemory())

		got, err := repo.ListTransactions(ctx)
		require.NoError(t, err)
		assert.Empty(t, got)
	})
}

func TestSessionRepository(t *testing.T) {
	ctx := context.Background()

	t.Run("Should read a missing session as the zero session", func(t *testing.T) {
		repo := repository.NewSessionRepository(kv.NewMemory())

		session, err := repo.Get(ctx)
		require.NoError(t, err)
		assert.False(t, session.IsLoggedIn)
	})

	t.Run("Should round trip a session", func(t *testing.T) {
		repo := repository.NewSessionRepository(kv.NewMemory())

		require.NoError(t, repo.Save(ctx, model.Session{IsLoggedIn: true, Role: model.RoleAdmin}))

		session, err := repo.Get(ctx)
		require.NoError(t, err)
		assert.True(t, session.IsLoggedIn)
		assert.Equal(t, model.RoleAdmin, session.Role)
	})

	t.Run("Should clear a session back to the zero value", func(t *testing.T) {
		repo := repository.NewSessionRepository(kv.NewMemory())

		require.NoError(t, repo.Save(ctx, model.Session{IsLoggedIn: true, Role: model.RoleKasir}))
		require.NoError(t, repo.Clear(ctx))

		session, err := repo.Get(ctx)
		require.NoError(t, err)
		assert.False(t, session.IsLoggedIn)
	})
}
