// Package store keeps portal records in memory.
package store

import (
	"errors"
	"fmt"
	"sync"

	"github.com/google/uuid"
)

// ErrNotFound is returned when no record has the requested identifier.
var ErrNotFound = errors.New("record not found")

// NewID returns a fresh synthetic identifier.
func NewID() string {
	return uuid.NewString()
}

// Collection is an ordered, concurrency-safe set of records of type T.
// Records are copied in and out so callers never share memory with the
// collection.
type Collection[T any] struct {
	mu    sync.RWMutex
	items []T
	id    func(*T) *string
}

// NewCollection returns an empty collection. id returns a pointer to the
// identifier field of a record.
func NewCollection[T any](id func(*T) *string) *Collection[T] {
	return &Collection[T]{id: id}
}

// Insert appends item, assigning an identifier when it has none, and
// returns the stored record.
func (c *Collection[T]) Insert(item T) T {
	c.mu.Lock()
	defer c.mu.Unlock()
	if idp := c.id(&item); *idp == "" {
		*idp = NewID()
	}
	c.items = append(c.items, item)
	return item
}

// Get returns the record with identifier id.
func (c *Collection[T]) Get(id string) (T, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if i := c.indexOf(id); i >= 0 {
		return c.items[i], nil
	}
	var zero T
	return zero, fmt.Errorf("%w: %s", ErrNotFound, id)
}

// Find returns the first record for which match is true.
func (c *Collection[T]) Find(match func(T) bool) (T, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	for _, item := range c.items {
		if match(item) {
			return item, true
		}
	}
	var zero T
	return zero, false
}

// Upsert replaces the first record for which match is true with item,
// keeping the existing identifier, or inserts item when nothing matches.
// replaced reports which happened.
func (c *Collection[T]) Upsert(match func(T) bool, item T) (stored T, replaced bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i, existing := range c.items {
		if match(existing) {
			*c.id(&item) = *c.id(&existing)
			c.items[i] = item
			return item, true
		}
	}
	if idp := c.id(&item); *idp == "" {
		*idp = NewID()
	}
	c.items = append(c.items, item)
	return item, false
}

// Update applies mutate to the record with identifier id and returns the
// result. The identifier cannot be changed by mutate.
func (c *Collection[T]) Update(id string, mutate func(*T) error) (T, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	i := c.indexOf(id)
	if i < 0 {
		var zero T
		return zero, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	updated := c.items[i]
	if err := mutate(&updated); err != nil {
		var zero T
		return zero, err
	}
	*c.id(&updated) = id
	c.items[i] = updated
	return updated, nil
}

// Delete removes the record with identifier id.
func (c *Collection[T]) Delete(id string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	i := c.indexOf(id)
	if i < 0 {
		return fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	c.items = append(c.items[:i], c.items[i+1:]...)
	return nil
}

// All returns a copy of every record in insertion order.
func (c *Collection[T]) All() []T {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]T, len(c.items))
	copy(out, c.items)
	return out
}

// Len returns the number of records.
func (c *Collection[T]) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.items)
}

// indexOf must be called with the lock held.
func (c *Collection[T]) indexOf(id string) int {
	for i := range c.items {
		if *c.id(&c.items[i]) == id {
			return i
		}
	}
	return -1
}
