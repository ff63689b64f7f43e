// Package export renders reporting output into download formats: CSV for the
// report tabs and a fixed-width text receipt for printing. Formatting only;
// no store access.
package export

import (
	"fmt"
	"time"

	"github.com/gocarina/gocsv"

	"github.com/kasirpos/kasirpos/internal/model"
	"github.com/kasirpos/kasirpos/internal/report"
)

type salesRow struct {
	TransactionID string  `csv:"transaction_id"`
	Date          string  `csv:"date"`
	Cashier       string  `csv:"cashier"`
	Customer      string  `csv:"customer"`
	Subtotal      float64 `csv:"subtotal"`
	Tax           float64 `csv:"tax"`
	Total         float64 `csv:"total"`
	PaymentMethod string  `csv:"payment_method"`
	ItemCount     int     `csv:"item_count"`
}

// SalesCSV renders one row per transaction.
func SalesCSV(transactions []model.Transaction) ([]byte, error) {
	rows := make([]salesRow, 0, len(transactions))
	for _, txn := range transactions {
		customer := "-"
		if txn.CustomerName != nil && *txn.CustomerName != "" {
			customer = *txn.CustomerName
		}

		rows = append(rows, salesRow{
			TransactionID: txn.ID.String(),
			Date:          txn.CreatedAt.Format(time.DateOnly),
			Cashier:       txn.CashierName,
			Customer:      customer,
			Subtotal:      txn.Subtotal,
			Tax:           txn.Tax,
			Total:         txn.Total,
			PaymentMethod: string(txn.PaymentMethod),
			ItemCount:     txn.ItemCount(),
		})
	}

	out, err := gocsv.MarshalBytes(&rows)
	if err != nil {
		return nil, fmt.Errorf("marshal sales csv: %w", err)
	}
	return out, nil
}

type productRow struct {
	Name         string  `csv:"name"`
	QuantitySold int     `csv:"quantity_sold"`
	Revenue      float64 `csv:"revenue"`
}

// ProductsCSV renders one row per aggregated product.
func ProductsCSV(sales []report.ProductSales) ([]byte, error) {
	rows := make([]productRow, 0, len(sales))
	for _, s := range sales {
		rows = append(rows, productRow{
			Name:         s.Name,
			QuantitySold: s.Quantity,
			Revenue:      s.Revenue,
		})
	}

	out, err := gocsv.MarshalBytes(&rows)
	if err != nil {
		return nil, fmt.Errorf("marshal products csv: %w", err)
	}
	return out, nil
}
