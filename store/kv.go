package store

import (
	"errors"
	"fmt"
)

// ErrQuotaExceeded is returned by quota-bounded stores when a write would
// exceed the configured byte budget. Callers treat it as a warning: the
// in-memory state stays authoritative.
var ErrQuotaExceeded = errors.New("store: persistence quota exceeded")

// KV is a minimal key/value byte store. Get reports presence explicitly;
// a missing key is not an error.
type KV interface {
	Get(key string) ([]byte, bool, error)
	Put(key string, value []byte) error
	Delete(key string) error
	Close() error
}

// --- In-memory store ---------------------------------------------------

// MemKV is an in-memory KV, used by headless sessions and tests.
type MemKV struct {
	data map[string][]byte
}

// NewMemKV returns an empty in-memory store.
func NewMemKV() *MemKV {
	return &MemKV{data: make(map[string][]byte)}
}

func (m *MemKV) Get(key string) ([]byte, bool, error) {
	v, ok := m.data[key]
	return v, ok, nil
}

func (m *MemKV) Put(key string, value []byte) error {
	v := make([]byte, len(value))
	copy(v, value)
	m.data[key] = v
	return nil
}

func (m *MemKV) Delete(key string) error {
	delete(m.data, key)
	return nil
}

func (m *MemKV) Close() error {
	m.data = nil
	return nil
}

// Keys enumerates all stored keys, unordered.
func (m *MemKV) Keys() []string {
	keys := make([]string, 0, len(m.data))
	for k := range m.data {
		keys = append(keys, k)
	}
	return keys
}

// --- Quota enforcement -------------------------------------------------

// QuotaKV bounds the total byte size of values in an underlying store.
// Writes beyond the budget fail with ErrQuotaExceeded; the underlying
// store is left unchanged.
type QuotaKV struct {
	kv     KV
	budget int
	used   map[string]int
}

// NewQuotaKV wraps a store with a byte budget.
func NewQuotaKV(kv KV, budget int) *QuotaKV {
	return &QuotaKV{kv: kv, budget: budget, used: make(map[string]int)}
}

func (q *QuotaKV) Get(key string) ([]byte, bool, error) {
	return q.kv.Get(key)
}

func (q *QuotaKV) Put(key string, value []byte) error {
	total := len(value)
	for k, n := range q.used {
		if k != key {
			total += n
		}
	}
	if total > q.budget {
		return fmt.Errorf("%w: %d of %d bytes", ErrQuotaExceeded, total, q.budget)
	}
	if err := q.kv.Put(key, value); err != nil {
		return err
	}
	q.used[key] = len(value)
	return nil
}

func (q *QuotaKV) Delete(key string) error {
	if err := q.kv.Delete(key); err != nil {
		return err
	}
	delete(q.used, key)
	return nil
}

func (q *QuotaKV) Close() error {
	return q.kv.Close()
}

// Keys delegates enumeration to the underlying store, if it supports it.
func (q *QuotaKV) Keys() []string {
	if lister, ok := q.kv.(interface{ Keys() []string }); ok {
		return lister.Keys()
	}
	return nil
}

var _ KV = &MemKV{}
var _ KV = &QuotaKV{}
