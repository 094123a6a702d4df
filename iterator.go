// Copyright (c) 2025-2026 complex (complex@ft.hn)
// See LICENSE for licensing information

package utilities

import (
	"fmt"
	"iter"
	"slices"
)

// ArrayIterator walks a private copy of a slice and allows the element most
// recently returned by Next to be removed.
type ArrayIterator[T any] struct {
	array       []T
	index       int
	lastRemoved bool
}

// NewArrayIterator creates an iterator over a copy of array. Later changes to
// array are not seen by the iterator.
func NewArrayIterator[T any](array []T) *ArrayIterator[T] {
	return &ArrayIterator[T]{
		array: slices.Clone(array),
	}
}

// HasNext reports whether Next has another element to return
func (it *ArrayIterator[T]) HasNext() bool {
	return it.index < len(it.array)
}

// Next returns the next element, or StatusErrExhausted once all elements
// have been returned
func (it *ArrayIterator[T]) Next() (T, error) {
	if it.index >= len(it.array) {
		var zero T
		return zero, fmt.Errorf("%w: array index %d", StatusErrExhausted, it.index)
	}
	elem := it.array[it.index]
	it.index++
	it.lastRemoved = false
	return elem, nil
}

// Remove clears the slot of the element last returned by Next, setting it to
// the zero value of T. It may be called once per call to Next.
func (it *ArrayIterator[T]) Remove() error {
	if it.index == 0 {
		return fmt.Errorf("%w: next has not been called", StatusErrState)
	}
	if it.lastRemoved {
		return fmt.Errorf("%w: element at index %d already removed", StatusErrState, it.index-1)
	}
	var zero T
	it.array[it.index-1] = zero
	it.lastRemoved = true
	return nil
}

// All returns the remaining elements as a sequence. Ranging over it advances
// the iterator, so Remove may be called from inside the loop body.
func (it *ArrayIterator[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for it.HasNext() {
			elem, _ := it.Next()
			if !yield(elem) {
				return
			}
		}
	}
}

// Elements returns a copy of the iterator's backing slice, including any
// zeroed slots left by Remove
func (it *ArrayIterator[T]) Elements() []T {
	return slices.Clone(it.array)
}
