package kv

import (
	"context"
	"fmt"
	"time"

	"go.etcd.io/bbolt"
)

// boltBucket holds every POS collection. A single bucket keeps all keys
// inside one bbolt write transaction domain.
var boltBucket = []byte("kasirpos")

var (
	_ Store         = (*Bolt)(nil)
	_ HealthChecker = (*Bolt)(nil)
)

// Bolt is the file-backed store. bbolt serializes write transactions, so
// WithTx callers are queued behind one writer and commits are atomic.
type Bolt struct {
	db *bbolt.DB
}

func OpenBolt(path string) (*Bolt, error) {
	db, err := bbolt.Open(path, 0o600, &bbolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, fmt.Errorf("open bolt file: %w", err)
	}

	if err := db.Update(func(tx *bbolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(boltBucket)
		return err
	}); err != nil {
		return nil, fmt.Errorf("create bucket: %w", err)
	}

	return &Bolt{db: db}, nil
}

func (b *Bolt) Close() error {
	return b.db.Close()
}

func (b *Bolt) Get(_ context.Context, key string) ([]byte, error) {
	var value []byte
	err := b.db.View(func(tx *bbolt.Tx) error {
		v := tx.Bucket(boltBucket).Get([]byte(key))
		if v == nil {
			return ErrKeyNotFound
		}
		// v is only valid inside the transaction
		value = make([]byte, len(v))
		copy(value, v)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return value, nil
}

func (b *Bolt) Put(_ context.Context, key string, value []byte) error {
	if err := b.db.Update(func(tx *bbolt.Tx) error {
		return tx.Bucket(boltBucket).Put([]byte(key), value)
	}); err != nil {
		return fmt.Errorf("bolt put: %w", err)
	}
	return nil
}

func (b *Bolt) WithTx(_ context.Context, txFunc func(Store) error) error {
	return b.db.Update(func(tx *bbolt.Tx) error {
		return txFunc(&boltTx{bucket: tx.Bucket(boltBucket)})
	})
}

func (b *Bolt) IsHealthy(_ context.Context) (bool, error) {
	if b.db.Path() == "" {
		return false, fmt.Errorf("bolt database is closed")
	}
	return true, nil
}

type boltTx struct {
	bucket *bbolt.Bucket
}

func (t *boltTx) Get(_ context.Context, key string) ([]byte, error) {
	v := t.bucket.Get([]byte(key))
	if v == nil {
		return nil, ErrKeyNotFound
	}

	value := make([]byte, len(v))
	copy(value, v)
	return value, nil
}

func (t *boltTx) Put(_ context.Context, key string, value []byte) error {
	return t.bucket.Put([]byte(key), value)
}

func (t *boltTx) WithTx(_ context.Context, txFunc func(Store) error) error {
	return txFunc(t)
}
