package member_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/denismitr/collections/internal/member"
)

func TestDecodeRoster(t *testing.T) {
	t.Run("mappings become members and scalars stay as they are", func(t *testing.T) {
		in := `
- name: Barry
- name: Robin
- Maurice
- 42
`
		entries, err := member.DecodeRoster(strings.NewReader(in))
		require.NoError(t, err)
		require.Len(t, entries, 4)

		assert.Equal(t, member.New("Barry"), entries[0])
		assert.Equal(t, member.New("Robin"), entries[1])
		assert.Equal(t, "Maurice", entries[2])
		assert.Equal(t, 42, entries[3])
	})

	t.Run("empty document yields no entries", func(t *testing.T) {
		entries, err := member.DecodeRoster(strings.NewReader(""))
		require.NoError(t, err)
		assert.Empty(t, entries)
	})

	t.Run("a roster that is not a sequence is an error", func(t *testing.T) {
		_, err := member.DecodeRoster(strings.NewReader("name: Barry\n"))
		assert.Error(t, err)
	})
}

func TestValidateName(t *testing.T) {
	assert.NoError(t, member.ValidateName(member.New("Barry")))
	assert.ErrorIs(t, member.ValidateName(member.New("  ")), member.ErrEmptyName)
	assert.NoError(t, member.ValidateName("not a member"))
}
