package report_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kasirpos/kasirpos/internal/model"
	"github.com/kasirpos/kasirpos/internal/report"
)

func txnAt(day time.Time, total float64, method model.PaymentMethod, items ...model.TransactionItem) model.Transaction {
	return model.Transaction{
		ID:            uuid.New(),
		Items:         items,
		Total:         total,
		PaymentMethod: method,
		CashierName:   "kasir",
		CreatedAt:     day,
	}
}

func TestFilterByDateRange(t *testing.T) {
	start := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, 8, 3, 0, 0, 0, 0, time.UTC)

	transactions := []model.Transaction{
		txnAt(time.Date(2026, 7, 31, 23, 59, 59, 0, time.UTC), 1, model.PaymentMethodCash),
		txnAt(time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC), 2, model.PaymentMethodCash),
		txnAt(time.Date(2026, 8, 3, 23, 59, 59, 0, time.UTC), 3, model.PaymentMethodCash),
		txnAt(time.Date(2026, 8, 4, 0, 0, 0, 0, time.UTC), 4, model.PaymentMethodCash),
	}

	filtered := report.FilterByDateRange(transactions, start, end)

	require.Len(t, filtered, 2)
	assert.Equal(t, 2.0, filtered[0].Total)
	assert.Equal(t, 3.0, filtered[1].Total)
}

func TestSummarize(t *testing.T) {
	t.Run("Should total revenue, counts and the average", func(t *testing.T) {
		day := time.Date(2026, 8, 10, 12, 0, 0, 0, time.UTC)
		transactions := []model.Transaction{
			txnAt(day, 11000, model.PaymentMethodCash,
				model.TransactionItem{Quantity: 2}, model.TransactionItem{Quantity: 1}),
			txnAt(day, 22000, model.PaymentMethodCard,
				model.TransactionItem{Quantity: 4}),
		}

		totals := report.Summarize(transactions)

		assert.Equal(t, 33000.0, totals.Revenue)
		assert.Equal(t, 2, totals.Count)
		assert.Equal(t, 7, totals.ItemCount)
		assert.Equal(t, 16500.0, totals.Average)
	})

	t.Run("Should keep the average at zero for an empty ledger", func(t *testing.T) {
		totals := report.Summarize(nil)
		assert.Zero(t, totals.Average)
		assert.Zero(t, totals.Revenue)
	})
}

func TestDailySeries(t *testing.T) {
	transactions := []model.Transaction{
		txnAt(time.Date(2026, 8, 10, 9, 0, 0, 0, time.UTC), 10000, model.PaymentMethodCash),
		txnAt(time.Date(2026, 8, 10, 18, 30, 0, 0, time.UTC), 5000, model.PaymentMethodCash),
		txnAt(time.Date(2026, 8, 11, 8, 0, 0, 0, time.UTC), 7000, model.PaymentMethodCash),
	}

	series := report.DailySeries(transactions)

	assert.Equal(t, map[string]float64{
		"2026-08-10": 15000,
		"2026-08-11": 7000,
	}, series)
}

func TestByPaymentMethod(t *testing.T) {
	day := time.Date(2026, 8, 10, 12, 0, 0, 0, time.UTC)
	transactions := []model.Transaction{
		txnAt(day, 10000, model.PaymentMethodCash),
		txnAt(day, 5000, model.PaymentMethodCash),
		txnAt(day, 7000, model.PaymentMethodDigital),
	}

	breakdown := report.ByPaymentMethod(transactions)

	assert.Equal(t, map[model.PaymentMethod]float64{
		model.PaymentMethodCash:    15000,
		model.PaymentMethodDigital: 7000,
	}, breakdown)
}

func TestTopProducts(t *testing.T) {
	day := time.Date(2026, 8, 10, 12, 0, 0, 0, time.UTC)
	p1 := uuid.New()
	p2 := uuid.New()

	transactions := []model.Transaction{
		txnAt(day, 0, model.PaymentMethodCash,
			model.TransactionItem{ProductID: p1, ProductName: "Kopi", Quantity: 2, Total: 20000},
			model.TransactionItem{ProductID: p2, ProductName: "Teh", Quantity: 5, Total: 25000},
		),
		txnAt(day, 0, model.PaymentMethodCash,
			model.TransactionItem{ProductID: p1, ProductName: "Kopi", Quantity: 1, Total: 10000},
		),
	}

	t.Run("Should aggregate across transactions and order by revenue", func(t *testing.T) {
		top := report.TopProducts(transactions, 10)

		require.Len(t, top, 2)
		assert.Equal(t, "Kopi", top[0].Name)
		assert.Equal(t, 3, top[0].Quantity)
		assert.Equal(t, 30000.0, top[0].Revenue)
		assert.Equal(t, "Teh", top[1].Name)
	})

	t.Run("Should truncate to n", func(t *testing.T) {
		top := report.TopProducts(transactions, 1)

		require.Len(t, top, 1)
		assert.Equal(t, p1, top[0].ProductID)
	})

	t.Run("Should return everything for a large n", func(t *testing.T) {
		top := report.TopProducts(transactions, 100)
		assert.Len(t, top, 2)
	})
}

func TestLowStock(t *testing.T) {
	products := []model.Product{
		{Name: "A", Stock: 50},
		{Name: "B", Stock: 10},
		{Name: "C", Stock: 0},
		{Name: "D", Stock: 11},
	}

	low := report.LowStock(products, report.DefaultLowStockThreshold)

	require.Len(t, low, 2)
	assert.Equal(t, "B", low[0].Name)
	assert.Equal(t, "C", low[1].Name)
}
