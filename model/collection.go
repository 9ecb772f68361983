package model

import "fmt"

// Identifiable is implemented by every entity stored in a Collection.
type Identifiable interface {
	ID() string
}

// DuplicateIDError reports an insert that collides with an entity already
// stored under the same identifier.
type DuplicateIDError struct {
	ID string
}

func (e *DuplicateIDError) Error() string {
	return fmt.Sprintf("identifier %q already exists in the collection", e.ID)
}

// Collection stores entities keyed by their own identifier. Identifiers are
// unique within a collection, lookups are O(1) and iteration follows
// insertion order.
type Collection[T Identifiable] struct {
	values []T
	index  map[string]int
}

// NewCollection returns an empty collection.
func NewCollection[T Identifiable]() *Collection[T] {
	return &Collection[T]{index: make(map[string]int)}
}

// Add stores v under its identifier. Adding an identifier that is already
// present fails with DuplicateIDError.
func (c *Collection[T]) Add(v T) error {
	if c.index == nil {
		c.index = make(map[string]int)
	}
	id := v.ID()
	if _, ok := c.index[id]; ok {
		return &DuplicateIDError{ID: id}
	}
	c.index[id] = len(c.values)
	c.values = append(c.values, v)
	return nil
}

// Get returns the entity stored under id, or false when no such entity
// exists.
func (c *Collection[T]) Get(id string) (T, bool) {
	i, ok := c.index[id]
	if !ok {
		var zero T
		return zero, false
	}
	return c.values[i], true
}

// Len returns the number of stored entities.
func (c *Collection[T]) Len() int { return len(c.values) }

// Values returns the stored entities in insertion order. The returned slice
// is shared with the collection and must not be modified.
func (c *Collection[T]) Values() []T { return c.values }

// Merge adds every entity of other to c, in other's insertion order. The
// first identifier collision fails the merge with DuplicateIDError;
// entities added before the collision stay in place, since a merge failure
// is terminal for an import run rather than a recoverable condition.
func (c *Collection[T]) Merge(other *Collection[T]) error {
	for _, v := range other.Values() {
		if err := c.Add(v); err != nil {
			return fmt.Errorf("merging collections: %w", err)
		}
	}
	return nil
}
