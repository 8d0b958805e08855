// Package set provides typed sets that check the kind of every inserted item.
package set

import (
	"iter"

	"github.com/denismitr/collections/kind"
)

type Set[T comparable] interface {
	Kind() kind.Kind
	Insert(item any) (modified bool, err error)
	Remove(item T) bool
	Clear()
	Has(item T) bool
	Items() []T
	All() iter.Seq[T]
	Len() int
	InsertSet(sourceSet Set[T]) (modified bool, err error)
}
