package set

import (
	"iter"

	"github.com/denismitr/dll"

	"github.com/denismitr/collections/collection"
	"github.com/denismitr/collections/kind"
)

// OrderedSet keeps the first insertion order of its items and ignores
// duplicates. Items are checked against the set kind, and against any
// validators, exactly like collection.Collection does.
//
// OrderedSet is not safe for concurrent use.
type OrderedSet[T comparable] struct {
	m       map[T]*dll.Element[T]
	list    *dll.DoublyLinkedList[T]
	checker collection.Checker[T]
}

var _ Set[int] = (*OrderedSet[int])(nil)

func NewOrderedSet[T comparable](options ...collection.Option) *OrderedSet[T] {
	return &OrderedSet[T]{
		m:       make(map[T]*dll.Element[T]),
		list:    dll.New[T](),
		checker: collection.NewChecker[T](options...),
	}
}

func (s *OrderedSet[T]) Kind() kind.Kind {
	return s.checker.Kind()
}

// Insert adds item unless it is already present. A non-conforming item is
// rejected with collection.ErrInvalidElementType and the set is unchanged.
func (s *OrderedSet[T]) Insert(item any) (modified bool, err error) {
	v, err := s.checker.Check(item)
	if err != nil {
		return false, err
	}

	if !kind.Hashable(item) {
		return false, &collection.InvalidElementTypeError{
			Expected: s.checker.Kind(),
			Actual:   kind.From(item),
			Reason:   "value is not comparable",
		}
	}

	if _, found := s.m[v]; !found {
		newEl := dll.NewElement(v)
		s.m[v] = newEl
		s.list.PushTail(newEl)
		modified = true
	}

	return modified, nil
}

func (s *OrderedSet[T]) Clear() {
	s.m = make(map[T]*dll.Element[T])
	s.list = dll.New[T]()
}

func (s *OrderedSet[T]) Remove(item T) bool {
	if !kind.Hashable(item) {
		return false
	}
	if el, found := s.m[item]; found {
		delete(s.m, el.Value())
		s.list.Remove(el)
		return true
	}

	return false
}

func (s *OrderedSet[T]) Items() []T {
	items := make([]T, 0, len(s.m))
	for item := range s.All() {
		items = append(items, item)
	}
	return items
}

// All ranges over the items in first insertion order.
// Removing items while ranging is undefined behavior.
func (s *OrderedSet[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		curr := s.list.Head()
		for curr != nil {
			if !yield(curr.Value()) {
				return
			}
			curr = curr.Next()
		}
	}
}

func (s *OrderedSet[T]) Has(item T) bool {
	if !kind.Hashable(item) {
		return false
	}
	_, ok := s.m[item]
	return ok
}

func (s *OrderedSet[T]) Len() int {
	return len(s.m)
}

// InsertSet inserts every item of sourceSet. It stops at the first rejected item.
func (s *OrderedSet[T]) InsertSet(sourceSet Set[T]) (modified bool, err error) {
	for item := range sourceSet.All() {
		inserted, err := s.Insert(item)
		if err != nil {
			return modified, err
		}
		if inserted {
			modified = true
		}
	}

	return modified, nil
}

// InsertSlice inserts items in order. It stops at the first rejected item.
func (s *OrderedSet[T]) InsertSlice(sourceSlice []T) (modified bool, err error) {
	for _, item := range sourceSlice {
		inserted, err := s.Insert(item)
		if err != nil {
			return modified, err
		}
		if inserted {
			modified = true
		}
	}

	return modified, nil
}

// ToCollection copies the set, in order, into a new collection of the same kind.
func (s *OrderedSet[T]) ToCollection(options ...collection.Option) (*collection.Collection[T], error) {
	return collection.From(s.Items(), options...)
}
