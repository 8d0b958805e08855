// Package collection provides Collection, an insertion ordered container that
// only ever holds elements of one declared kind.
//
// Elements are checked when they are inserted, never when they are read, so
// a consumer ranging over a collection can rely on every element conforming.
package collection

import (
	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"

	"github.com/denismitr/collections/kind"
	"github.com/denismitr/collections/utils"
)

// Collection is an insertion ordered sequence of T. Duplicates are allowed.
//
// A Collection only grows: Add, Push, AddAll and PushAll are its only
// mutators and none of them touch existing elements.
//
// Collection is not safe for concurrent use. Mutating a collection while
// ranging over it is undefined behavior: the range may or may not observe
// the new elements. Use Synchronize for concurrent access, or range over a
// Clone.
type Collection[T any] struct {
	checker Checker[T]
	items   []T
}

// New creates an empty collection of kind T.
func New[T any](options ...Option) *Collection[T] {
	checker := NewChecker[T](options...)
	return &Collection[T]{
		checker: checker,
		items:   make([]T, 0, checker.cfg.capacity),
	}
}

// From creates a collection holding items in order. Nothing is added if a
// validator rejects any of them.
func From[T any](items []T, options ...Option) (*Collection[T], error) {
	c := New[T](options...)
	if err := c.PushAll(items...); err != nil {
		return nil, err
	}
	return c, nil
}

// Kind returns the element kind the collection was created with.
func (c *Collection[T]) Kind() kind.Kind {
	return c.checker.Kind()
}

func (c *Collection[T]) Len() int {
	return len(c.items)
}

func (c *Collection[T]) IsEmpty() bool {
	return len(c.items) == 0
}

// Add appends item if it conforms to the collection kind and passes every
// validator. Otherwise it returns an *InvalidElementTypeError and the
// collection is left unchanged.
func (c *Collection[T]) Add(item any) error {
	v, err := c.checker.Check(item)
	if err != nil {
		return err
	}

	c.items = append(c.items, v)
	return nil
}

// Push appends a statically typed item. The compiler has already checked
// its kind, so only validators, or a nil value for an interface kind, can
// reject it.
func (c *Collection[T]) Push(item T) error {
	if _, err := c.checker.Check(item); err != nil {
		return err
	}

	c.items = append(c.items, item)
	return nil
}

// AddAll appends every item or none of them. The returned error lists every
// rejected item with its position in the batch.
func (c *Collection[T]) AddAll(items ...any) error {
	accepted := make([]T, 0, len(items))
	var result *multierror.Error
	for i, item := range items {
		v, err := c.checker.Check(item)
		if err != nil {
			result = multierror.Append(result, errors.Wrapf(err, "item %d", i))
			continue
		}
		accepted = append(accepted, v)
	}

	if err := result.ErrorOrNil(); err != nil {
		return err
	}

	c.items = append(c.items, accepted...)
	return nil
}

// PushAll is the statically typed counterpart of AddAll.
func (c *Collection[T]) PushAll(items ...T) error {
	var result *multierror.Error
	for i, item := range items {
		if _, err := c.checker.Check(item); err != nil {
			result = multierror.Append(result, errors.Wrapf(err, "item %d", i))
		}
	}

	if err := result.ErrorOrNil(); err != nil {
		return err
	}

	c.items = append(c.items, items...)
	return nil
}

// At returns the element at position i.
func (c *Collection[T]) At(i int) (T, bool) {
	if i < 0 || i >= len(c.items) {
		return utils.GetZero[T](), false
	}
	return c.items[i], true
}

func (c *Collection[T]) First() (T, bool) {
	return c.At(0)
}

func (c *Collection[T]) Last() (T, bool) {
	return c.At(len(c.items) - 1)
}

// Items returns a copy of the elements in insertion order.
func (c *Collection[T]) Items() []T {
	items := make([]T, len(c.items))
	copy(items, c.items)
	return items
}

// Clone returns an independent collection with the same kind, validators
// and elements.
func (c *Collection[T]) Clone() *Collection[T] {
	return &Collection[T]{
		checker: c.checker,
		items:   c.Items(),
	}
}
