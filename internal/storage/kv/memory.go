package kv

import (
	"context"
	"maps"
	"sync"
)

var (
	_ Store         = (*Memory)(nil)
	_ HealthChecker = (*Memory)(nil)
)

// Memory is an in-process store. It doubles as the test fixture and backs the
// MEMORY driver for throwaway deployments.
type Memory struct {
	mu   sync.Mutex
	data map[string][]byte
}

func NewMemory() *Memory {
	return &Memory{data: make(map[string][]byte)}
}

func (m *Memory) Get(_ context.Context, key string) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	value, ok := m.data[key]
	if !ok {
		return nil, ErrKeyNotFound
	}

	cp := make([]byte, len(value))
	copy(cp, value)
	return cp, nil
}

func (m *Memory) Put(_ context.Context, key string, value []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	cp := make([]byte, len(value))
	copy(cp, value)
	m.data[key] = cp
	return nil
}

// WithTx stages writes in an overlay and applies them only when txFunc
// succeeds. The mutex is held for the whole transaction, which gives the
// single-writer discipline whole-collection updates need.
func (m *Memory) WithTx(_ context.Context, txFunc func(Store) error) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	tx := &memoryTx{
		base:   m.data,
		staged: make(map[string][]byte),
	}
	if err := txFunc(tx); err != nil {
		return err
	}

	maps.Copy(m.data, tx.staged)
	return nil
}

func (m *Memory) IsHealthy(_ context.Context) (bool, error) {
	return true, nil
}

type memoryTx struct {
	base   map[string][]byte
	staged map[string][]byte
}

func (t *memoryTx) Get(_ context.Context, key string) ([]byte, error) {
	value, ok := t.staged[key]
	if !ok {
		value, ok = t.base[key]
	}
	if !ok {
		return nil, ErrKeyNotFound
	}

	cp := make([]byte, len(value))
	copy(cp, value)
	return cp, nil
}

func (t *memoryTx) Put(_ context.Context, key string, value []byte) error {
	cp := make([]byte, len(value))
	copy(cp, value)
	t.staged[key] = cp
	return nil
}

func (t *memoryTx) WithTx(_ context.Context, txFunc func(Store) error) error {
	return txFunc(t)
}
