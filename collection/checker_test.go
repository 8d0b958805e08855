package collection_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/denismitr/collections/collection"
	"github.com/denismitr/collections/internal/member"
)

func TestChecker_AgreesWithKind(t *testing.T) {
	values := []any{
		member.New("Barry"),
		&member.Member{Name: "Robin"},
		"Maurice",
		42,
		int64(42),
		[]int{1},
		nil,
	}

	t.Run("concrete kind", func(t *testing.T) {
		ch := collection.NewChecker[member.Member]()
		for _, v := range values {
			_, err := ch.Check(v)
			assert.Equal(t, ch.Kind().Accepts(v), err == nil, "value %#v", v)
		}
	})

	t.Run("interface kind", func(t *testing.T) {
		ch := collection.NewChecker[fmt.Stringer]()
		for _, v := range values {
			_, err := ch.Check(v)
			assert.Equal(t, ch.Kind().Accepts(v), err == nil, "value %#v", v)
		}
	})

	t.Run("rejection is an invalid element type", func(t *testing.T) {
		ch := collection.NewChecker[int]()
		v, err := ch.Check("42")
		assert.ErrorIs(t, err, collection.ErrInvalidElementType)
		assert.Equal(t, 0, v)
	})
}
