// Package collection provides the three in-memory collection shapes shared by
// the croft demo managers: a keyed repository with uniqueness enforcement, an
// ordered linear repository with first-match semantics, and a derived grouping
// index.
//
// Collections are exclusively owned by a single manager instance and are not
// safe for concurrent use. Every operation runs to completion synchronously.
package collection

import (
	"fmt"

	"github.com/aretw0/croft/pkg/core"
)

// Keyed stores records under their unique key. No two stored records ever
// share a key; a colliding Add is rejected without side effects.
//
// List returns records in insertion order. That is a documented commitment,
// not an accident of the backing map, so demo output stays deterministic.
type Keyed[K comparable, V core.Keyer[K]] struct {
	items map[K]V
	order []K
}

// NewKeyed creates an empty keyed collection.
func NewKeyed[K comparable, V core.Keyer[K]]() *Keyed[K, V] {
	return &Keyed[K, V]{
		items: make(map[K]V),
	}
}

// Add inserts a record under its own key.
// It fails with core.ErrDuplicateKey if the key is already taken.
func (r *Keyed[K, V]) Add(value V) error {
	key := value.Key()
	if _, exists := r.items[key]; exists {
		return fmt.Errorf("key %v: %w", key, core.ErrDuplicateKey)
	}

	r.items[key] = value
	r.order = append(r.order, key)
	return nil
}

// Get returns the stored record for key, or core.ErrNotFound.
// The record is returned by handle: mutating its fields is visible to
// subsequent reads through the collection.
func (r *Keyed[K, V]) Get(key K) (V, error) {
	value, exists := r.items[key]
	if !exists {
		var zero V
		return zero, fmt.Errorf("key %v: %w", key, core.ErrNotFound)
	}
	return value, nil
}

// Remove deletes the record stored under key, or fails with core.ErrNotFound.
func (r *Keyed[K, V]) Remove(key K) error {
	if _, exists := r.items[key]; !exists {
		return fmt.Errorf("key %v: %w", key, core.ErrNotFound)
	}

	delete(r.items, key)
	for i, k := range r.order {
		if k == key {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return nil
}

// Update looks up the record for key and applies the mutation in place.
// Lookup failures take the same path as Get, so callers observe one
// consistent core.ErrNotFound. Candidate validation belongs to the caller
// and must happen before Update so a rejected value never reaches the
// stored record.
func (r *Keyed[K, V]) Update(key K, mutate func(V)) error {
	value, err := r.Get(key)
	if err != nil {
		return err
	}

	mutate(value)
	return nil
}

// List returns a snapshot of all records in insertion order. The slice is
// the caller's to keep; the records themselves are shared handles.
func (r *Keyed[K, V]) List() []V {
	out := make([]V, 0, len(r.order))
	for _, key := range r.order {
		out = append(out, r.items[key])
	}
	return out
}

// Len reports the number of stored records.
func (r *Keyed[K, V]) Len() int {
	return len(r.items)
}
