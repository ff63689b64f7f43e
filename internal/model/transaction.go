package model

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// TaxRate is the single fixed tax rate applied to every sale.
const TaxRate = 0.10

// PaymentMethod represents how a sale was paid.
type PaymentMethod string

const (
	PaymentMethodCash    PaymentMethod = "cash"
	PaymentMethodCard    PaymentMethod = "card"
	PaymentMethodDigital PaymentMethod = "digital"
)

// Validate implements the enum contract used by the request validator.
func (m PaymentMethod) Validate() error {
	switch m {
	case PaymentMethodCash, PaymentMethodCard, PaymentMethodDigital:
		return nil
	default:
		return fmt.Errorf("unknown payment method: %s", m)
	}
}

// TransactionItem is a line-item snapshot. ProductName and Price are copied
// from the catalog at sale time and never recomputed, so receipts stay
// accurate after the product is edited or deleted.
type TransactionItem struct {
	ProductID   uuid.UUID `json:"productId"`
	ProductName string    `json:"productName"`
	Price       float64   `json:"price"`
	Quantity    int       `json:"quantity"`
	Total       float64   `json:"total"`
}

// Transaction is immutable once persisted. Invariants:
// subtotal = sum of item totals, tax = subtotal * TaxRate,
// total = subtotal + tax.
type Transaction struct {
	ID            uuid.UUID         `json:"id"`
	Items         []TransactionItem `json:"items"`
	Subtotal      float64           `json:"subtotal"`
	Tax           float64           `json:"tax"`
	Total         float64           `json:"total"`
	PaymentMethod PaymentMethod     `json:"paymentMethod"`
	CustomerName  *string           `json:"customerName,omitempty"`
	CashierName   string            `json:"cashierName"`
	CreatedAt     time.Time         `json:"createdAt"`
}

// ItemCount returns the summed quantity across all line items.
func (t Transaction) ItemCount() int {
	count := 0
	for _, item := range t.Items {
		count += item.Quantity
	}
	return count
}
