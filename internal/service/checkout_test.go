package service_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kasirpos/kasirpos/internal/apperr"
	"github.com/kasirpos/kasirpos/internal/model"
	"github.com/kasirpos/kasirpos/internal/repository"
	"github.com/kasirpos/kasirpos/internal/service"
	"github.com/kasirpos/kasirpos/internal/storage/kv"
	"github.com/kasirpos/kasirpos/pkg/ptr"
)

type checkoutFixture struct {
	store       kv.Store
	catalogSvc  service.CatalogService
	checkoutSvc service.CheckoutService
	reportSvc   service.ReportService
}

func newCheckoutFixture() checkoutFixture {
	store := kv.NewMemory()
	catalogRepo := repository.NewCatalogRepository(store)
	ledgerRepo := repository.NewLedgerRepository(store)

	return checkoutFixture{
		store:       store,
		catalogSvc:  service.NewCatalogService(store, catalogRepo),
		checkoutSvc: service.NewCheckoutService(store, catalogRepo, ledgerRepo),
		reportSvc:   service.NewReportService(catalogRepo, ledgerRepo),
	}
}

func (f checkoutFixture) createProduct(t *testing.T, name string, price float64, stock int) model.Product {
	t.Helper()

	product, err := f.catalogSvc.CreateProduct(context.Background(), service.CreateProductParams{
		Name:     name,
		Price:    price,
		Stock:    stock,
		Category: "Minuman",
	})
	require.NoError(t, err)
	return product
}

func TestCheckout(t *testing.T) {
	ctx := context.Background()

	t.Run("Should compute totals and decrement stock", func(t *testing.T) {
		f := newCheckoutFixture()
		product := f.createProduct(t, "Es Teh", 10000, 5)

		txn, err := f.checkoutSvc.Checkout(ctx, service.CheckoutParams{
			Cart:          []service.CartLine{{ProductID: product.ID, Quantity: 3}},
			PaymentMethod: model.PaymentMethodCash,
			CustomerName:  ptr.New("Budi"),
			CashierName:   "kasir",
		})
		require.NoError(t, err)

		assert.Equal(t, 30000.0, txn.Subtotal)
		assert.Equal(t, 3000.0, txn.Tax)
		assert.Equal(t, 33000.0, txn.Total)
		require.Len(t, txn.Items, 1)
		assert.Equal(t, "Es Teh", txn.Items[0].ProductName)
		assert.Equal(t, 10000.0, txn.Items[0].Price)
		assert.Equal(t, 3, txn.Items[0].Quantity)

		products, err := f.catalogSvc.ListProducts(ctx)
		require.NoError(t, err)
		assert.Equal(t, 2, products[0].Stock)

		transactions, err := f.reportSvc.ListTransactions(ctx)
		require.NoError(t, err)
		require.Len(t, transactions, 1)
		assert.Equal(t, txn.ID, transactions[0].ID)
	})

	t.Run("Should fail with typed details when stock is short", func(t *testing.T) {
		f := newCheckoutFixture()
		product := f.createProduct(t, "Es Teh", 10000, 5)

		_, err := f.checkoutSvc.Checkout(ctx, service.CheckoutParams{
			Cart:          []service.CartLine{{ProductID: product.ID, Quantity: 10}},
			PaymentMethod: model.PaymentMethodCash,
			CashierName:   "kasir",
		})

		var stockErr *apperr.InsufficientStockError
		require.ErrorAs(t, err, &stockErr)
		assert.Equal(t, product.ID, stockErr.ProductID)
		assert.Equal(t, 5, stockErr.Available)
		assert.Equal(t, 10, stockErr.Requested)
	})

	t.Run("Should persist nothing when any line fails", func(t *testing.T) {
		f := newCheckoutFixture()
		ok := f.createProduct(t, "Kopi Hitam", 12000, 10)
		short := f.createProduct(t, "Croissant", 15000, 1)

		_, err := f.checkoutSvc.Checkout(ctx, service.CheckoutParams{
			Cart: []service.CartLine{
				{ProductID: ok.ID, Quantity: 2},
				{ProductID: short.ID, Quantity: 3},
			},
			PaymentMethod: model.PaymentMethodCard,
			CashierName:   "kasir",
		})
		require.Error(t, err)

		products, err := f.catalogSvc.ListProducts(ctx)
		require.NoError(t, err)
		assert.Equal(t, 10, products[0].Stock)
		assert.Equal(t, 1, products[1].Stock)

		transactions, err := f.reportSvc.ListTransactions(ctx)
		require.NoError(t, err)
		assert.Empty(t, transactions)
	})

	t.Run("Should reject an empty cart", func(t *testing.T) {
		f := newCheckoutFixture()

		_, err := f.checkoutSvc.Checkout(ctx, service.CheckoutParams{
			Cart:          nil,
			PaymentMethod: model.PaymentMethodCash,
			CashierName:   "kasir",
		})
		assertCode(t, err, apperr.EmptyCartCode)
	})

	t.Run("Should reject a non positive quantity", func(t *testing.T) {
		f := newCheckoutFixture()
		product := f.createProduct(t, "Es Teh", 10000, 5)

		_, err := f.checkoutSvc.Checkout(ctx, service.CheckoutParams{
			Cart:          []service.CartLine{{ProductID: product.ID, Quantity: 0}},
			PaymentMethod: model.PaymentMethodCash,
			CashierName:   "kasir",
		})
		assertCode(t, err, apperr.ValidationErrorCode)
	})

	t.Run("Should reject an unknown payment method", func(t *testing.T) {
		f := newCheckoutFixture()
		product := f.createProduct(t, "Es Teh", 10000, 5)

		_, err := f.checkoutSvc.Checkout(ctx, service.CheckoutParams{
			Cart:          []service.CartLine{{ProductID: product.ID, Quantity: 1}},
			PaymentMethod: model.PaymentMethod("barter"),
			CashierName:   "kasir",
		})
		assertCode(t, err, apperr.ValidationErrorCode)
	})

	t.Run("Should report an unknown product", func(t *testing.T) {
		f := newCheckoutFixture()
		f.createProduct(t, "Es Teh", 10000, 5)

		_, err := f.checkoutSvc.Checkout(ctx, service.CheckoutParams{
			Cart:          []service.CartLine{{ProductID: uuid.New(), Quantity: 1}},
			PaymentMethod: model.PaymentMethodCash,
			CashierName:   "kasir",
		})
		assertCode(t, err, apperr.ProductNotFoundCode)
	})

	t.Run("Should keep recorded items when the product changes later", func(t *testing.T) {
		f := newCheckoutFixture()
		product := f.createProduct(t, "Es Teh", 10000, 5)

		txn, err := f.checkoutSvc.Checkout(ctx, service.CheckoutParams{
			Cart:          []service.CartLine{{ProductID: product.ID, Quantity: 1}},
			PaymentMethod: model.PaymentMethodCash,
			CashierName:   "kasir",
		})
		require.NoError(t, err)

		_, err = f.catalogSvc.UpdateProduct(ctx, product.ID, service.UpdateProductParams{
			Name:  ptr.New("Es Teh Jumbo"),
			Price: ptr.New(99000.0),
		})
		require.NoError(t, err)

		deleted, err := f.catalogSvc.DeleteProduct(ctx, product.ID)
		require.NoError(t, err)
		assert.True(t, deleted)

		got, err := f.reportSvc.GetTransaction(ctx, txn.ID)
		require.NoError(t, err)
		assert.Equal(t, "Es Teh", got.Items[0].ProductName)
		assert.Equal(t, 10000.0, got.Items[0].Price)
		assert.Equal(t, 11000.0, got.Total)
	})
}
