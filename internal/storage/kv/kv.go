// Package kv is the persistence boundary of the POS. Each collection is one
// serialized JSON array stored as a value under its own key; reads and writes
// are always whole-collection. WithTx serializes mutating callers so the
// checkout path can update the ledger and the catalog as one logical write.
package kv

import (
	"context"
	"errors"
	"fmt"

	"github.com/kasirpos/kasirpos/internal/config"
)

// ErrKeyNotFound is returned by Get when the key has never been written.
var ErrKeyNotFound = errors.New("kv: key not found")

type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Put(ctx context.Context, key string, value []byte) error

	// WithTx executes a function atomically against a tx-scoped store.
	// Either every Put inside the function is persisted or none is.
	WithTx(ctx context.Context, txFunc func(Store) error) error
}

type HealthChecker interface {
	IsHealthy(ctx context.Context) (bool, error)
}

// CloseFunc releases the resources held by an open store.
type CloseFunc func() error

// Open creates the store selected by the configuration.
func Open(ctx context.Context, cfg config.Storage, pgCfg config.Postgres) (Store, CloseFunc, error) {
	switch cfg.Driver {
	case config.StorageDriverMemory:
		return NewMemory(), func() error { return nil }, nil

	case config.StorageDriverBolt:
		store, err := OpenBolt(cfg.BoltPath)
		if err != nil {
			return nil, nil, fmt.Errorf("open bolt store: %w", err)
		}
		return store, store.Close, nil

	case config.StorageDriverPostgres:
		pool, err := NewPgxPool(ctx, pgCfg)
		if err != nil {
			return nil, nil, fmt.Errorf("create pgx pool: %w", err)
		}
		store := NewPostgres(pool)
		return store, func() error {
			pool.Close()
			return nil
		}, nil

	default:
		return nil, nil, fmt.Errorf("unknown storage driver: %s", cfg.Driver)
	}
}
