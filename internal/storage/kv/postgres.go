package kv

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

var (
	_ Store         = (*Postgres)(nil)
	_ HealthChecker = (*Postgres)(nil)
)

// Postgres stores each collection blob as one row of the pos_kv table.
// WithTx maps to a database transaction, so the checkout write path commits
// the ledger append and the stock decrement together.
type Postgres struct {
	pool *pgxpool.Pool
}

func NewPostgres(pool *pgxpool.Pool) *Postgres {
	return &Postgres{pool: pool}
}

func (p *Postgres) Get(ctx context.Context, key string) ([]byte, error) {
	return pgGet(ctx, p.pool, key)
}

func (p *Postgres) Put(ctx context.Context, key string, value []byte) error {
	return pgPut(ctx, p.pool, key, value)
}

func (p *Postgres) WithTx(ctx context.Context, txFunc func(Store) error) (err error) {
	tx, err := p.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() {
		if err != nil {
			rbErr := tx.Rollback(ctx)
			if !errors.Is(rbErr, pgx.ErrTxClosed) {
				err = errors.Join(err, rbErr)
			}
		}
	}()

	if err = txFunc(&postgresTx{tx: tx}); err != nil {
		return err
	}

	if err = tx.Commit(ctx); err != nil {
		err = fmt.Errorf("commit transaction: %w", err)
	}

	return err
}

func (p *Postgres) IsHealthy(ctx context.Context) (bool, error) {
	if err := p.pool.Ping(ctx); err != nil {
		return false, fmt.Errorf("ping database: %w", err)
	}
	return true, nil
}

type postgresTx struct {
	tx pgx.Tx
}

func (t *postgresTx) Get(ctx context.Context, key string) ([]byte, error) {
	return pgGet(ctx, t.tx, key)
}

func (t *postgresTx) Put(ctx context.Context, key string, value []byte) error {
	return pgPut(ctx, t.tx, key, value)
}

func (t *postgresTx) WithTx(_ context.Context, txFunc func(Store) error) error {
	return txFunc(t)
}

// querier is the subset of pgx.Tx and *pgxpool.Pool the helpers need.
type querier interface {
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

func pgGet(ctx context.Context, q querier, key string) ([]byte, error) {
	var value []byte
	err := q.QueryRow(ctx, `SELECT value FROM pos_kv WHERE key = $1`, key).Scan(&value)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrKeyNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("select value: %w", err)
	}
	return value, nil
}

func pgPut(ctx context.Context, q querier, key string, value []byte) error {
	_, err := q.Exec(ctx, `
		INSERT INTO pos_kv (key, value)
		VALUES ($1, $2)
		ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value
	`, key, value)
	if err != nil {
		return fmt.Errorf("upsert value: %w", err)
	}
	return nil
}
