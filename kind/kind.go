// Package kind describes the element type a typed container accepts.
//
// A Kind is built once, from a type parameter or a sample value, and never
// changes afterwards. Conformance is nominal for concrete types and
// structural for interface types.
package kind

import (
	"reflect"
)

// Kind is an immutable element descriptor.
type Kind struct {
	t reflect.Type
}

// Nil is the kind of an untyped nil value.
var Nil = Kind{}

// Of returns the kind of T.
func Of[T any]() Kind {
	return Kind{t: reflect.TypeFor[T]()}
}

// From returns the dynamic kind of v. An untyped nil yields Nil.
func From(v any) Kind {
	if v == nil {
		return Nil
	}
	return Kind{t: reflect.TypeOf(v)}
}

// Type exposes the underlying reflect type, nil for the Nil kind.
func (k Kind) Type() reflect.Type {
	return k.t
}

func (k Kind) IsZero() bool {
	return k.t == nil
}

func (k Kind) IsInterface() bool {
	return k.t != nil && k.t.Kind() == reflect.Interface
}

func (k Kind) Equal(other Kind) bool {
	return k.t == other.t
}

// Accepts reports whether v conforms to k.
// Concrete kinds require the identical dynamic type, interface kinds
// require the dynamic type to implement the interface. Nil never conforms.
func (k Kind) Accepts(v any) bool {
	if k.t == nil || v == nil {
		return false
	}

	vt := reflect.TypeOf(v)
	if k.IsInterface() {
		return vt.Implements(k.t)
	}

	return vt == k.t
}

// Hashable reports whether v can be used as a map key without panicking.
// Unlike reflect.Type.Comparable it looks at the value, so an interface
// field holding a slice makes its struct unhashable.
func Hashable(v any) bool {
	if v == nil {
		return true
	}
	return reflect.ValueOf(v).Comparable()
}

func (k Kind) String() string {
	if k.t == nil {
		return "<nil>"
	}
	return k.t.String()
}
