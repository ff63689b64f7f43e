package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/kasirpos/kasirpos/internal/apperr"
	"github.com/kasirpos/kasirpos/internal/model"
	"github.com/kasirpos/kasirpos/internal/repository"
	"github.com/kasirpos/kasirpos/internal/storage/kv"
)

// CartLine is one requested product/quantity pair. Callers merge duplicate
// product ids before checkout; lines are processed independently and
// duplicates decrement stock once per line.
type CartLine struct {
	ProductID uuid.UUID
	Quantity  int
}

type CheckoutParams struct {
	Cart          []CartLine
	PaymentMethod model.PaymentMethod
	CustomerName  *string
	CashierName   string
}

// CheckoutService converts a cart into a persisted transaction while keeping
// stock and ledger consistent.
type CheckoutService interface {
	Checkout(ctx context.Context, params CheckoutParams) (model.Transaction, error)
}

type checkoutService struct {
	store       kv.Store
	catalogRepo repository.CatalogRepository
	ledgerRepo  repository.LedgerRepository
}

func NewCheckoutService(
	store kv.Store,
	catalogRepo repository.CatalogRepository,
	ledgerRepo repository.LedgerRepository,
) CheckoutService {
	return &checkoutService{
		store:       store,
		catalogRepo: catalogRepo,
		ledgerRepo:  ledgerRepo,
	}
}

// Checkout validates the cart against a catalog snapshot, computes totals,
// appends the transaction and decrements stock. The ledger append and the
// stock write happen inside one store transaction: a failing checkout
// persists nothing.
func (s *checkoutService) Checkout(ctx context.Context, params CheckoutParams) (model.Transaction, error) {
	if len(params.Cart) == 0 {
		return model.Transaction{}, apperr.EmptyCartErr
	}
	for _, line := range params.Cart {
		if line.Quantity < 1 {
			return model.Transaction{}, apperr.ValidationErr.WithMsg("quantity must be at least 1")
		}
	}
	if err := params.PaymentMethod.Validate(); err != nil {
		return model.Transaction{}, apperr.ValidationErr.WithMsg(err.Error())
	}

	id, err := uuid.NewV7()
	if err != nil {
		return model.Transaction{}, fmt.Errorf("generate uuid v7: %w", err)
	}

	var txn model.Transaction

	if err := s.store.WithTx(ctx, func(tx kv.Store) error {
		catalogRepo := s.catalogRepo.WithStore(tx)

		products, err := catalogRepo.ListProducts(ctx)
		if err != nil {
			return fmt.Errorf("list products: %w", err)
		}

		byID := make(map[uuid.UUID]int, len(products))
		for i, p := range products {
			byID[p.ID] = i
		}

		// Validate every line against the snapshot before mutating anything.
		items := make([]model.TransactionItem, 0, len(params.Cart))
		for _, line := range params.Cart {
			i, ok := byID[line.ProductID]
			if !ok {
				return apperr.ProductNotFoundErr.WithMsg(
					fmt.Sprintf("product %s not found", line.ProductID))
			}

			product := products[i]
			if line.Quantity > product.Stock {
				return apperr.NewInsufficientStock(product.ID, product.Stock, line.Quantity)
			}

			items = append(items, model.TransactionItem{
				ProductID:   product.ID,
				ProductName: product.Name,
				Price:       product.Price,
				Quantity:    line.Quantity,
				Total:       model.RoundCurrency(product.Price * float64(line.Quantity)),
			})
		}

		subtotal := 0.0
		for _, item := range items {
			subtotal += item.Total
		}
		subtotal = model.RoundCurrency(subtotal)
		tax := model.RoundCurrency(subtotal * model.TaxRate)

		txn = model.Transaction{
			ID:            id,
			Items:         items,
			Subtotal:      subtotal,
			Tax:           tax,
			Total:         model.RoundCurrency(subtotal + tax),
			PaymentMethod: params.PaymentMethod,
			CustomerName:  params.CustomerName,
			CashierName:   params.CashierName,
			CreatedAt:     time.Now().UTC(),
		}

		if err := s.ledgerRepo.WithStore(tx).AppendTransaction(ctx, txn); err != nil {
			return fmt.Errorf("append transaction: %w", err)
		}

		for _, line := range params.Cart {
			products[byID[line.ProductID]].Stock -= line.Quantity
		}
		if err := catalogRepo.SaveProducts(ctx, products); err != nil {
			return fmt.Errorf("save products: %w", err)
		}

		return nil
	}); err != nil {
		return model.Transaction{}, err
	}

	return txn, nil
}
