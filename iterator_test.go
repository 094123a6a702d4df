// Copyright (c) 2025-2026 complex (complex@ft.hn)
// See LICENSE for licensing information

package utilities

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestArrayIteratorTraversal(t *testing.T) {
	it := NewArrayIterator([]string{"a", "b", "c"})

	for _, want := range []string{"a", "b", "c"} {
		require.True(t, it.HasNext())
		got, err := it.Next()
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}

	assert.False(t, it.HasNext())
	_, err := it.Next()
	assert.ErrorIs(t, err, StatusErrExhausted)
}

func TestArrayIteratorEmpty(t *testing.T) {
	it := NewArrayIterator[int](nil)
	assert.False(t, it.HasNext())

	_, err := it.Next()
	assert.ErrorIs(t, err, StatusErrExhausted)
}

func TestArrayIteratorRemove(t *testing.T) {
	it := NewArrayIterator([]string{"a", "b", "c"})

	err := it.Remove()
	assert.ErrorIs(t, err, StatusErrState, "remove before next")

	_, err = it.Next()
	require.NoError(t, err)
	require.NoError(t, it.Remove())

	err = it.Remove()
	assert.ErrorIs(t, err, StatusErrState, "second remove")

	got, err := it.Next()
	require.NoError(t, err)
	assert.Equal(t, "b", got)
	require.NoError(t, it.Remove(), "remove is allowed again after next")

	assert.Equal(t, []string{"", "", "c"}, it.Elements())
}

func TestArrayIteratorDefensiveCopy(t *testing.T) {
	src := []int{1, 2, 3}
	it := NewArrayIterator(src)

	src[0] = 100
	got, err := it.Next()
	require.NoError(t, err)
	assert.Equal(t, 1, got)

	require.NoError(t, it.Remove())
	assert.Equal(t, []int{100, 2, 3}, src, "remove must not touch the source slice")
}

func TestArrayIteratorAll(t *testing.T) {
	it := NewArrayIterator([]int{1, 2, 3, 4})

	var seen []int
	for v := range it.All() {
		seen = append(seen, v)
		if v%2 == 0 {
			require.NoError(t, it.Remove())
		}
	}

	assert.Equal(t, []int{1, 2, 3, 4}, seen)
	assert.Equal(t, []int{1, 0, 3, 0}, it.Elements())
	assert.False(t, it.HasNext())
}

func TestArrayIteratorAllStopsEarly(t *testing.T) {
	it := NewArrayIterator([]int{1, 2, 3})
	for v := range it.All() {
		if v == 2 {
			break
		}
	}

	got, err := it.Next()
	require.NoError(t, err)
	assert.Equal(t, 3, got)
}

func TestStatusError(t *testing.T) {
	_, err := NewArrayIterator([]int{}).Next()
	var status Status
	require.True(t, errors.As(err, &status))
	assert.Equal(t, StatusErrExhausted, status)
	assert.Contains(t, err.Error(), "no more elements")
}
