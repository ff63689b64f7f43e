// Package repository persists the POS collections. Every collection is read
// and written as a whole; there are no partial or indexed updates.
package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/kasirpos/kasirpos/internal/apperr"
	"github.com/kasirpos/kasirpos/internal/storage/kv"
)

// Storage keys, one JSON document per collection.
const (
	productsKey     = "pos_products"
	categoriesKey   = "pos_categories"
	transactionsKey = "pos_transactions"
	sessionKey      = "pos_session"
)

// readCollection loads a whole collection. A missing key or a payload that no
// longer decodes degrades to the empty collection so corrupt data reads as
// "no data" instead of blocking every caller.
func readCollection[T any](ctx context.Context, store kv.Store, key string) ([]T, error) {
	raw, err := store.Get(ctx, key)
	if errors.Is(err, kv.ErrKeyNotFound) {
		return []T{}, nil
	}
	if err != nil {
		return nil, apperr.PersistenceErr.WrapParent(fmt.Errorf("get %s: %w", key, err))
	}

	var items []T
	if err := json.Unmarshal(raw, &items); err != nil {
		return []T{}, nil
	}

	return items, nil
}

func writeCollection[T any](ctx context.Context, store kv.Store, key string, items []T) error {
	raw, err := json.Marshal(items)
	if err != nil {
		return apperr.PersistenceErr.WrapParent(fmt.Errorf("marshal %s: %w", key, err))
	}

	if err := store.Put(ctx, key, raw); err != nil {
		return apperr.PersistenceErr.WrapParent(fmt.Errorf("put %s: %w", key, err))
	}

	return nil
}
