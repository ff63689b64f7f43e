package export_test

import (
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kasirpos/kasirpos/internal/config"
	"github.com/kasirpos/kasirpos/internal/export"
	"github.com/kasirpos/kasirpos/internal/model"
	"github.com/kasirpos/kasirpos/internal/report"
	"github.com/kasirpos/kasirpos/pkg/ptr"
)

func TestFormatRupiah(t *testing.T) {
	cases := []struct {
		amount float64
		want   string
	}{
		{0, "Rp 0,00"},
		{25000, "Rp 25.000,00"},
		{1234.5, "Rp 1.234,50"},
		{1234567.89, "Rp 1.234.567,89"},
		{-5000, "-Rp 5.000,00"},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, export.FormatRupiah(tc.amount))
	}
}

func sampleTransaction() model.Transaction {
	id := uuid.MustParse("0198c1a2-7f4e-7bbd-9c3a-1f2e3d4c5b6a")
	return model.Transaction{
		ID: id,
		Items: []model.TransactionItem{
			{ProductID: uuid.New(), ProductName: "Kopi Arabica Premium", Price: 25000, Quantity: 2, Total: 50000},
			{ProductID: uuid.New(), ProductName: "Croissant Butter", Price: 12000, Quantity: 1, Total: 12000},
		},
		Subtotal:      62000,
		Tax:           6200,
		Total:         68200,
		PaymentMethod: model.PaymentMethodCash,
		CustomerName:  ptr.New("Budi"),
		CashierName:   "kasir",
		CreatedAt:     time.Date(2026, 8, 10, 14, 30, 0, 0, time.UTC),
	}
}

func TestReceipt(t *testing.T) {
	store := config.Store{
		Name:    "Toko Serbaguna",
		Address: "Jl. Merdeka No. 123",
		Phone:   "0821-1234-5678",
	}

	receipt := export.Receipt(sampleTransaction(), store)

	t.Run("Should never exceed the printer width", func(t *testing.T) {
		for _, line := range strings.Split(receipt, "\n") {
			assert.LessOrEqual(t, len(line), 32, "line too wide: %q", line)
		}
	})

	t.Run("Should carry the header and footer", func(t *testing.T) {
		assert.Contains(t, receipt, "TOKO SERBAGUNA")
		assert.Contains(t, receipt, "Telp: 0821-1234-5678")
		assert.Contains(t, receipt, "Terima kasih atas")
		assert.Contains(t, receipt, "kunjungan Anda!")
		assert.Contains(t, receipt, "*** STRUK PEMBAYARAN ***")
	})

	t.Run("Should carry the transaction details", func(t *testing.T) {
		assert.Contains(t, receipt, "No. Transaksi:")
		assert.Contains(t, receipt, "3D4C5B6A")
		assert.Contains(t, receipt, "10/08/2026 14:30:00")
		assert.Contains(t, receipt, "Kasir:")
		assert.Contains(t, receipt, "Pelanggan:")
		assert.Contains(t, receipt, "Budi")
	})

	t.Run("Should carry the line items and totals", func(t *testing.T) {
		assert.Contains(t, receipt, "Kopi Arabica Premium")
		assert.Contains(t, receipt, "2 x Rp 25.000,00")
		assert.Contains(t, receipt, "Subtotal:")
		assert.Contains(t, receipt, "Pajak (10%):")
		assert.Contains(t, receipt, "Rp 6.200,00")
		assert.Contains(t, receipt, "TOTAL:")
		assert.Contains(t, receipt, "Rp 68.200,00")
		assert.Contains(t, receipt, "Tunai")
	})

	t.Run("Should skip the customer line when absent", func(t *testing.T) {
		txn := sampleTransaction()
		txn.CustomerName = nil

		anonymous := export.Receipt(txn, store)
		assert.NotContains(t, anonymous, "Pelanggan:")
	})
}

func TestSalesCSV(t *testing.T) {
	txn := sampleTransaction()
	anonymous := sampleTransaction()
	anonymous.CustomerName = nil

	out, err := export.SalesCSV([]model.Transaction{txn, anonymous})
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(string(out)), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "transaction_id,date,cashier,customer,subtotal,tax,total,payment_method,item_count", lines[0])
	assert.Contains(t, lines[1], txn.ID.String())
	assert.Contains(t, lines[1], "2026-08-10")
	assert.Contains(t, lines[1], "Budi")
	assert.Contains(t, lines[2], ",-,")
}

func TestProductsCSV(t *testing.T) {
	out, err := export.ProductsCSV([]report.ProductSales{
		{ProductID: uuid.New(), Name: "Kopi", Quantity: 3, Revenue: 75000},
	})
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(string(out)), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "name,quantity_sold,revenue", lines[0])
	assert.Contains(t, lines[1], "Kopi")
	assert.Contains(t, lines[1], "75000")
}
