package collection_test

import (
	"context"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/denismitr/collections/collection"
	"github.com/denismitr/collections/internal/member"
)

func TestCollection_All(t *testing.T) {
	t.Run("empty collection yields nothing", func(t *testing.T) {
		c := collection.New[member.Member]()
		count := 0
		for range c.All() {
			count++
		}
		assert.Equal(t, 0, count)
		assert.Equal(t, 0, c.Len())
	})

	t.Run("yields positions and elements in insertion order", func(t *testing.T) {
		c, err := collection.From([]string{"foo", "bar", "baz"})
		require.NoError(t, err)

		var orders []int
		var items []string
		for i, item := range c.All() {
			orders = append(orders, i)
			items = append(items, item)
		}

		assert.Equal(t, []int{0, 1, 2}, orders)
		assert.Equal(t, []string{"foo", "bar", "baz"}, items)
	})

	t.Run("two ranges over the same collection are identical", func(t *testing.T) {
		c := collection.New[member.Member]()
		require.NoError(t, c.AddAll(member.New("Barry"), member.New("Robin"), member.New("Maurice")))

		collect := func() []member.Member {
			var result []member.Member
			for m := range c.Values() {
				result = append(result, m)
			}
			return result
		}

		first := collect()
		second := collect()
		if diff := cmp.Diff(first, second); diff != "" {
			t.Fatalf("ranges differ (-first +second):\n%s", diff)
		}
		assert.Len(t, first, 3)
	})

	t.Run("breaking out of a range restarts from the first element next time", func(t *testing.T) {
		c, err := collection.From([]int{1, 2, 3, 4})
		require.NoError(t, err)

		for item := range c.Values() {
			if item == 2 {
				break
			}
		}

		var items []int
		for item := range c.Values() {
			items = append(items, item)
		}
		assert.Equal(t, []int{1, 2, 3, 4}, items)
	})

	t.Run("loop variables do not alias storage", func(t *testing.T) {
		c := collection.New[member.Member]()
		require.NoError(t, c.AddAll(member.New("Barry"), member.New("Robin")))

		for _, m := range c.All() {
			m.Name = "changed"
			_ = m
		}

		var last member.Member
		for _, m := range c.All() {
			last = m
		}
		last.Name = "Maurice"
		_ = last

		assert.Equal(t, []member.Member{member.New("Barry"), member.New("Robin")}, c.Items())
	})
}

func TestCollection_Backward(t *testing.T) {
	c, err := collection.From([]int{1, 2, 3})
	require.NoError(t, err)

	var orders, items []int
	for i, item := range c.Backward() {
		orders = append(orders, i)
		items = append(items, item)
	}

	assert.Equal(t, []int{2, 1, 0}, orders)
	assert.Equal(t, []int{3, 2, 1}, items)
}

func TestCollection_Stream(t *testing.T) {
	t.Run("streams every element in order", func(t *testing.T) {
		c, err := collection.From([]string{"foo", "bar", "baz"})
		require.NoError(t, err)

		var items []string
		for item := range c.Stream(context.Background()) {
			items = append(items, item)
		}
		assert.Equal(t, []string{"foo", "bar", "baz"}, items)
	})

	t.Run("stream does not see elements added after it started", func(t *testing.T) {
		c, err := collection.From([]int{1, 2})
		require.NoError(t, err)

		ch := c.Stream(context.Background())
		require.NoError(t, c.Add(3))

		var items []int
		for item := range ch {
			items = append(items, item)
		}
		assert.Equal(t, []int{1, 2}, items)
	})

	t.Run("cancelled context stops the stream", func(t *testing.T) {
		const n = 1_000
		c := collection.New[int](collection.WithCapacity(n))
		for i := 0; i < n; i++ {
			require.NoError(t, c.Push(i))
		}

		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()
		ch := c.Stream(ctx)

		received := 0
		for range ch {
			received++
			if received == 10 {
				cancel()
				break
			}
		}

		// drain whatever was in flight; the channel must close
		for range ch {
			received++
		}
		assert.Less(t, received, n)
	})
}

func TestCollection_ForEach(t *testing.T) {
	t.Run("visits every element with its order", func(t *testing.T) {
		c, err := collection.From([]string{"foo", "bar"})
		require.NoError(t, err)

		visited := map[int]string{}
		c.ForEach(func(item string, order int) {
			visited[order] = item
		})
		assert.Equal(t, map[int]string{0: "foo", 1: "bar"}, visited)
	})

	t.Run("until stops early", func(t *testing.T) {
		c, err := collection.From([]int{1, 2, 3, 4, 5})
		require.NoError(t, err)

		var seen []int
		result := c.ForEachUntil(func(item int, order int) bool {
			seen = append(seen, item)
			return item < 3
		})

		assert.Equal(t, []int{1, 2, 3}, seen)
		assert.Same(t, c, result)
	})
}
