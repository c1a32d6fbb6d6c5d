package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCloneSlice(t *testing.T) {
	assert := assert.New(t)

	t.Run("Empty", func(t *testing.T) {
		clone := CloneSlice([]int(nil), 0)
		assert.NotNil(clone)
		assert.Empty(clone)
	})

	t.Run("Independent Backing Array", func(t *testing.T) {
		src := []int{1, 2, 3}
		clone := CloneSlice(src, 1)

		assert.Equal(src, clone)
		assert.Equal(4, cap(clone))

		// appending to the clone must not leak into src-derived slices
		grown := append(clone, 4)
		assert.Equal([]int{1, 2, 3}, src)
		assert.Equal([]int{1, 2, 3, 4}, grown)

		clone[0] = 99
		assert.Equal(1, src[0])
	})
}

func TestReverseSlice(t *testing.T) {
	assert := assert.New(t)

	t.Run("Empty", func(t *testing.T) {
		assert.Empty(ReverseSlice([]string(nil)))
	})

	t.Run("Reverses Without Mutation", func(t *testing.T) {
		src := []int{1, 2, 3, 4}
		assert.Equal([]int{4, 3, 2, 1}, ReverseSlice(src))
		assert.Equal([]int{1, 2, 3, 4}, src)
	})

	t.Run("Single Element", func(t *testing.T) {
		assert.Equal([]int{7}, ReverseSlice([]int{7}))
	})
}
