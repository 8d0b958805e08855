package collection

import (
	"github.com/pkg/errors"

	"github.com/denismitr/collections/kind"
	"github.com/denismitr/collections/utils"
)

// Checker applies the conformance rules of a collection, its kind and its
// validators, without storing anything. Containers other than Collection
// use it to reject items the same way.
type Checker[T any] struct {
	kind kind.Kind
	cfg  config
}

func NewChecker[T any](options ...Option) Checker[T] {
	return Checker[T]{
		kind: kind.Of[T](),
		cfg:  newConfig(options),
	}
}

func (ch Checker[T]) Kind() kind.Kind {
	return ch.kind
}

// Check returns item as a T when it conforms, or an *InvalidElementTypeError.
// Conformance is decided by kind.Kind.Accepts.
func (ch Checker[T]) Check(item any) (T, error) {
	v, ok := item.(T)
	if !ch.kind.Accepts(item) || !ok {
		err := newInvalidElementTypeError(ch.kind, item)
		ch.reject(err)
		return utils.GetZero[T](), err
	}

	for _, nv := range ch.cfg.validators {
		if vErr := nv.fn(v); vErr != nil {
			err := newInvalidElementTypeError(ch.kind, v)
			err.Reason = errors.Wrap(vErr, nv.name).Error()
			ch.reject(err)
			return utils.GetZero[T](), err
		}
	}

	return v, nil
}

func (ch Checker[T]) reject(err *InvalidElementTypeError) {
	ch.cfg.logger.Debug().
		Stringer("expected", err.Expected).
		Stringer("actual", err.Actual).
		Str("reason", err.Reason).
		Msg("element rejected")
}
