package collection

import (
	"cmp"
	"slices"

	"golang.org/x/exp/constraints"

	"github.com/denismitr/collections/utils"
)

type (
	FilterFn[T any] func(item T, order int) bool
	LessFn[T any]   func(a, b T) (less bool)
)

// Filter returns a new collection with the elements f keeps.
func (c *Collection[T]) Filter(f FilterFn[T]) *Collection[T] {
	result := &Collection[T]{checker: c.checker}
	for order, item := range c.items {
		if preserve := f(item, order); preserve {
			result.items = append(result.items, item)
		}
	}

	return result
}

// SortBy returns a sorted copy. The sort is stable and the source keeps its order.
func (c *Collection[T]) SortBy(lessFn LessFn[T]) *Collection[T] {
	clone := c.Clone()
	slices.SortStableFunc(clone.items, func(a, b T) int {
		switch {
		case lessFn(a, b):
			return -1
		case lessFn(b, a):
			return 1
		default:
			return 0
		}
	})
	return clone
}

// SortByKey returns a copy of c stably sorted by key in the given order.
func SortByKey[T any, K constraints.Ordered](c *Collection[T], key func(item T) K, order utils.Order) *Collection[T] {
	clone := c.Clone()
	slices.SortStableFunc(clone.items, func(a, b T) int {
		if order == utils.DescOrder {
			return cmp.Compare(key(b), key(a))
		}
		return cmp.Compare(key(a), key(b))
	})
	return clone
}

// Map builds a collection of R from c. The result shares the logger of c
// but none of its validators.
func Map[T, R any](c *Collection[T], f func(item T, order int) R) *Collection[R] {
	result := &Collection[R]{
		checker: NewChecker[R](WithLogger(c.checker.cfg.logger)),
		items:   make([]R, 0, len(c.items)),
	}

	for order, item := range c.items {
		result.items = append(result.items, f(item, order))
	}

	return result
}

// Reduce folds the elements of c in insertion order.
func Reduce[T, R any](c *Collection[T], initial R, r func(carry R, item T, order int) R) R {
	acc := initial
	for order, item := range c.items {
		acc = r(acc, item, order)
	}
	return acc
}
