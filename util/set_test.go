package util_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wkalt/prioq/util"
)

func TestSet(t *testing.T) {
	t.Run("duplicates collapse", func(t *testing.T) {
		s := util.NewSet('a', 'b', 'a', 'c', 'b')
		assert.Equal(t, 3, s.Len())
		assert.ElementsMatch(t, []rune{'a', 'b', 'c'}, s.Items())
	})
	t.Run("add reports novelty", func(t *testing.T) {
		s := util.NewSet[string]()
		assert.True(t, s.Add("x"))
		assert.False(t, s.Add("x"))
		assert.True(t, s.Contains("x"))
		assert.False(t, s.Contains("y"))
	})
	t.Run("items lists each member once", func(t *testing.T) {
		s := util.NewSet(3, 1, 3, 2, 1, 3)
		items := s.Items()
		require.Len(t, items, 3)
		assert.ElementsMatch(t, []int{1, 2, 3}, items)
		items[0] = 99
		assert.False(t, s.Contains(99))
	})
	t.Run("empty set", func(t *testing.T) {
		s := util.NewSet[int]()
		assert.Equal(t, 0, s.Len())
		assert.Empty(t, s.Items())
	})
	t.Run("dedupe then bulk build", func(t *testing.T) {
		s := util.NewSet([]rune("EDUCATION SHOULD")...)
		pq := util.NewPriorityQueueFrom(s.Items(), util.Natural[rune])
		assert.Equal(t, " ACDEHILNOSTU", string(util.Drain(pq)))
	})
}
