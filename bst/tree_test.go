package bst

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTreeScenario(t *testing.T) {
	tree := New(fixedKeys...)
	require.Equal(t, "6 -> 7 -> 8 -> 9 -> 10 -> 12 -> 14 -> 15 -> ", tree.String())
	require.Equal(t, 8, tree.Len())

	assert.True(t, tree.Delete(10))
	assert.Equal(t, "6 -> 7 -> 8 -> 9 -> 12 -> 14 -> 15 -> ", tree.String())
	assert.Equal(t, 12, tree.Root().Key)

	assert.True(t, tree.Delete(6))
	assert.Equal(t, "7 -> 8 -> 9 -> 12 -> 14 -> 15 -> ", tree.String())

	assert.False(t, tree.Delete(99))
	assert.Equal(t, "7 -> 8 -> 9 -> 12 -> 14 -> 15 -> ", tree.String())
	assert.Equal(t, 6, tree.Len())
}

func TestTreeEmpty(t *testing.T) {
	tree := New()
	assert.Equal(t, 0, tree.Len())
	assert.Equal(t, 0, tree.Height())
	assert.Nil(t, tree.Root())
	assert.Equal(t, "", tree.String())
	assert.False(t, tree.Delete(1))
	assert.False(t, tree.Contains(1))

	_, ok := tree.Min()
	assert.False(t, ok)
}

func TestTreeLenCountsDuplicates(t *testing.T) {
	tree := New(3, 3, 1)
	assert.Equal(t, 3, tree.Len())
	assert.True(t, tree.Delete(3))
	assert.Equal(t, 2, tree.Len())
	assert.True(t, tree.Contains(3))
	assert.True(t, tree.Delete(3))
	assert.False(t, tree.Contains(3))
	assert.Equal(t, Size(tree.Root()), tree.Len())
}

func TestTreeMin(t *testing.T) {
	tree := New(fixedKeys...)
	for _, want := range []int{6, 7, 8, 9, 10, 12, 14, 15} {
		got, ok := tree.Min()
		require.True(t, ok)
		assert.Equal(t, want, got)
		tree.Delete(got)
	}
	_, ok := tree.Min()
	assert.False(t, ok)
	assert.Equal(t, 0, tree.Len())
}

func TestTreeTraversals(t *testing.T) {
	tree := New(fixedKeys...)
	assert.Equal(t, Keys(tree.Root()), slices.Collect(tree.InOrder()))
	assert.Equal(t, []int{10, 8, 6, 7, 9, 15, 12, 14}, slices.Collect(tree.PreOrder()))
	assert.Equal(t, []int{7, 6, 9, 8, 14, 12, 15, 10}, slices.Collect(tree.PostOrder()))
	assert.Equal(t, 4, tree.Height())
}
