package collection

import (
	"context"
	"iter"
)

type (
	ForEachFn[T any]      func(item T, order int)
	ForEachUntilFn[T any] func(item T, order int) (canGoOn bool)
)

// All ranges over positions and elements in insertion order.
// Each range starts from the first element. Elements are yielded by value,
// so the loop variables never alias the collection storage.
func (c *Collection[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := 0; i < len(c.items); i++ {
			if !yield(i, c.items[i]) {
				return
			}
		}
	}
}

// Values ranges over elements in insertion order.
func (c *Collection[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := 0; i < len(c.items); i++ {
			if !yield(c.items[i]) {
				return
			}
		}
	}
}

// Backward ranges over positions and elements from the last to the first.
func (c *Collection[T]) Backward() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := len(c.items) - 1; i >= 0; i-- {
			if !yield(i, c.items[i]) {
				return
			}
		}
	}
}

// Stream sends the elements present at call time over the returned channel.
// The channel is closed after the last element or once ctx is done.
// A caller that stops reading before the channel is closed must cancel ctx,
// otherwise the sending goroutine stays blocked forever.
func (c *Collection[T]) Stream(ctx context.Context) <-chan T {
	items := c.items[:len(c.items):len(c.items)]
	resultCh := make(chan T)

	go func() {
		defer close(resultCh)
		for _, item := range items {
			select {
			case <-ctx.Done():
				return
			case resultCh <- item:
			}
		}
	}()

	return resultCh
}

func (c *Collection[T]) ForEach(f ForEachFn[T]) {
	for order, item := range c.items {
		f(item, order)
	}
}

// ForEachUntil stops as soon as f returns false.
func (c *Collection[T]) ForEachUntil(f ForEachUntilFn[T]) *Collection[T] {
	for order, item := range c.items {
		if canGoOn := f(item, order); !canGoOn {
			break
		}
	}

	return c
}
