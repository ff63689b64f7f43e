package repository

import (
	"context"
	"fmt"

	"github.com/kasirpos/kasirpos/internal/model"
	"github.com/kasirpos/kasirpos/internal/storage/kv"
)

// LedgerRepository appends and reads transaction records. It never touches
// the catalog and never recomputes totals; the checkout service hands it
// fully formed transactions.
type LedgerRepository interface {
	WithStore(store kv.Store) LedgerRepository
	ListTransactions(ctx context.Context) ([]model.Transaction, error)
	AppendTransaction(ctx context.Context, txn model.Transaction) error
}

type ledgerRepository struct {
	store kv.Store
}

func NewLedgerRepository(store kv.Store) LedgerRepository {
	return &ledgerRepository{store: store}
}

func (r ledgerRepository) WithStore(store kv.Store) LedgerRepository {
	return &ledgerRepository{store: store}
}

// ListTransactions returns the ledger in insertion order.
func (r ledgerRepository) ListTransactions(ctx context.Context) ([]model.Transaction, error) {
	transactions, err := readCollection[model.Transaction](ctx, r.store, transactionsKey)
	if err != nil {
		return nil, fmt.Errorf("read transactions: %w", err)
	}
	return transactions, nil
}

func (r ledgerRepository) AppendTransaction(ctx context.Context, txn model.Transaction) error {
	transactions, err := readCollection[model.Transaction](ctx, r.store, transactionsKey)
	if err != nil {
		return fmt.Errorf("read transactions: %w", err)
	}

	transactions = append(transactions, txn)
	if err := writeCollection(ctx, r.store, transactionsKey, transactions); err != nil {
		return fmt.Errorf("write transactions: %w", err)
	}

	return nil
}
