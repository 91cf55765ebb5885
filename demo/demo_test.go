package demo_test

import (
	"context"
	"slices"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wkalt/prioq/demo"
	"github.com/wkalt/prioq/util"
	"github.com/wkalt/prioq/util/testutils"
)

func itoa(xs []int) []string {
	result := make([]string, len(xs))
	for i, x := range xs {
		result[i] = strconv.Itoa(x)
	}
	return result
}

func TestSections(t *testing.T) {
	ctx := context.Background()
	sections := demo.Sections(ctx, demo.DefaultSeed, demo.DefaultFact, demo.DefaultInts)
	require.Len(t, sections, 5)

	names := []string{}
	for _, s := range sections {
		names = append(names, s.Name)
	}
	assert.Equal(t, []string{"random", "fixed", "reversed", "strings", "chars"}, names)

	t.Run("random", func(t *testing.T) {
		random := sections[0].Values
		require.Len(t, random, 10)
		expected := demo.RandomInts(demo.DefaultSeed, 10, 10)
		slices.Sort(expected)
		assert.Equal(t, itoa(expected), random)
	})
	t.Run("fixed", func(t *testing.T) {
		assert.Equal(t,
			itoa([]int{1, 1, 2, 3, 3, 4, 9, 9, 14, 15, 18, 18, 20, 21, 22, 23, 25, 25}),
			sections[1].Values,
		)
	})
	t.Run("reversed", func(t *testing.T) {
		assert.Equal(t,
			itoa([]int{25, 25, 23, 22, 21, 20, 18, 18, 15, 14, 9, 9, 4, 3, 3, 2, 1, 1}),
			sections[2].Values,
		)
	})
	t.Run("strings", func(t *testing.T) {
		expected := testutils.Runes(demo.DefaultFact)
		slices.Sort(expected)
		slices.Reverse(expected)
		assert.Equal(t, expected, sections[3].Values)
		assert.Equal(t, "W", sections[3].Values[0])
		assert.Equal(t, " ", sections[3].Values[len(sections[3].Values)-1])
	})
	t.Run("chars", func(t *testing.T) {
		assert.Equal(t, testutils.Runes(" ABCDEFHILNOSTUW"), sections[4].Values)
	})
}

func TestSectionsDeterministic(t *testing.T) {
	ctx := context.Background()
	a := demo.Sections(ctx, 7, "abc", []int{3, 1, 2})
	b := demo.Sections(ctx, 7, "abc", []int{3, 1, 2})
	assert.Equal(t, a, b)
}

func TestSectionsEmptyInputs(t *testing.T) {
	sections := demo.Sections(context.Background(), 1, "", nil)
	for _, s := range sections[1:] {
		assert.Empty(t, s.Values, s.Name)
	}
}

func TestRandomInts(t *testing.T) {
	values := demo.RandomInts(demo.DefaultSeed, 100, 10)
	require.Len(t, values, 100)
	for i, v := range values {
		assert.GreaterOrEqual(t, v, 0)
		assert.Less(t, v, i+10)
	}
	assert.Equal(t, values, demo.RandomInts(demo.DefaultSeed, 100, 10))
	assert.Empty(t, demo.RandomInts(1, 0, 10))
}

func TestNewSection(t *testing.T) {
	pq := util.NewPriorityQueueFrom([]rune("cab"), util.Natural[rune])
	section := demo.NewSection("letters", pq, demo.FormatRune)
	assert.Equal(t, demo.Section{Name: "letters", Values: []string{"a", "b", "c"}}, section)
	assert.True(t, pq.Empty())
}
