// Package report folds the ledger into read-only aggregates. Every function
// is pure: no store access, no side effects.
package report

import (
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/kasirpos/kasirpos/internal/model"
)

// DefaultLowStockThreshold matches the stock badge cutoff of the sales screen.
const DefaultLowStockThreshold = 10

// FilterByDateRange keeps transactions created within [start, end], with end
// treated as end-of-day.
func FilterByDateRange(transactions []model.Transaction, start, end time.Time) []model.Transaction {
	endOfDay := time.Date(end.Year(), end.Month(), end.Day(), 23, 59, 59, int(time.Second-time.Nanosecond), end.Location())

	filtered := make([]model.Transaction, 0, len(transactions))
	for _, txn := range transactions {
		if txn.CreatedAt.Before(start) || txn.CreatedAt.After(endOfDay) {
			continue
		}
		filtered = append(filtered, txn)
	}

	return filtered
}

// Totals summarizes revenue over a set of transactions.
type Totals struct {
	Revenue   float64 `json:"revenue"`
	Count     int     `json:"count"`
	ItemCount int     `json:"itemCount"`
	Average   float64 `json:"average"`
}

func Summarize(transactions []model.Transaction) Totals {
	totals := Totals{}
	for _, txn := range transactions {
		totals.Revenue += txn.Total
		totals.Count++
		totals.ItemCount += txn.ItemCount()
	}

	if totals.Count > 0 {
		totals.Average = totals.Revenue / float64(totals.Count)
	}

	return totals
}

// DailySeries maps ISO dates (YYYY-MM-DD) to the summed total of that day.
func DailySeries(transactions []model.Transaction) map[string]float64 {
	series := make(map[string]float64)
	for _, txn := range transactions {
		day := txn.CreatedAt.Format(time.DateOnly)
		series[day] += txn.Total
	}
	return series
}

// ByPaymentMethod maps each payment method to its summed total.
func ByPaymentMethod(transactions []model.Transaction) map[model.PaymentMethod]float64 {
	breakdown := make(map[model.PaymentMethod]float64)
	for _, txn := range transactions {
		breakdown[txn.PaymentMethod] += txn.Total
	}
	return breakdown
}

// ProductSales aggregates one product's sold quantity and revenue.
type ProductSales struct {
	ProductID uuid.UUID `json:"productId"`
	Name      string    `json:"name"`
	Quantity  int       `json:"quantity"`
	Revenue   float64   `json:"revenue"`
}

// TopProducts returns up to n products ordered by revenue descending.
// Ties keep the order products were first encountered in the ledger.
func TopProducts(transactions []model.Transaction, n int) []ProductSales {
	index := make(map[uuid.UUID]int)
	sales := make([]ProductSales, 0)

	for _, txn := range transactions {
		for _, item := range txn.Items {
			i, ok := index[item.ProductID]
			if !ok {
				i = len(sales)
				index[item.ProductID] = i
				sales = append(sales, ProductSales{
					ProductID: item.ProductID,
					Name:      item.ProductName,
				})
			}
			sales[i].Quantity += item.Quantity
			sales[i].Revenue += item.Total
		}
	}

	// stable keeps encounter order for equal revenue
	sort.SliceStable(sales, func(i, j int) bool {
		return sales[i].Revenue > sales[j].Revenue
	})

	if n >= 0 && n < len(sales) {
		sales = sales[:n]
	}

	return sales
}

// LowStock returns the products with stock at or below the threshold, in the
// original collection order.
func LowStock(products []model.Product, threshold int) []model.Product {
	low := make([]model.Product, 0)
	for _, p := range products {
		if p.Stock <= threshold {
			low = append(low, p)
		}
	}
	return low
}
