package collection

import (
	"iter"
	"sync"

	"github.com/denismitr/collections/kind"
)

// Synchronized guards a Collection with a read-write mutex.
// Ranging over it works on a snapshot taken under the read lock, so
// concurrent adds never affect a range in progress.
type Synchronized[T any] struct {
	mux sync.RWMutex
	c   *Collection[T]
}

// Synchronize takes ownership of c. The caller must not use c directly afterwards.
func Synchronize[T any](c *Collection[T]) *Synchronized[T] {
	return &Synchronized[T]{c: c}
}

func (s *Synchronized[T]) Kind() kind.Kind {
	return s.c.Kind()
}

func (s *Synchronized[T]) Len() int {
	s.mux.RLock()
	defer s.mux.RUnlock()
	return s.c.Len()
}

func (s *Synchronized[T]) Add(item any) error {
	s.mux.Lock()
	defer s.mux.Unlock()
	return s.c.Add(item)
}

func (s *Synchronized[T]) Push(item T) error {
	s.mux.Lock()
	defer s.mux.Unlock()
	return s.c.Push(item)
}

func (s *Synchronized[T]) AddAll(items ...any) error {
	s.mux.Lock()
	defer s.mux.Unlock()
	return s.c.AddAll(items...)
}

// Snapshot returns an independent copy of the current contents.
func (s *Synchronized[T]) Snapshot() *Collection[T] {
	s.mux.RLock()
	defer s.mux.RUnlock()
	return s.c.Clone()
}

func (s *Synchronized[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i, item := range s.Snapshot().All() {
			if !yield(i, item) {
				return
			}
		}
	}
}

func (s *Synchronized[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for item := range s.Snapshot().Values() {
			if !yield(item) {
				return
			}
		}
	}
}
