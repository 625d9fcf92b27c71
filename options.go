// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package heap

type options[T any] struct {
	capacity int
	data     []T
}

// Option represents the options that can be passed to the heap
// constructors.
type Option[T any] func(*options[T])

// WithCapacity sets the initial capacity of the backing storage; the
// heap can hold that many elements without reallocating.
func WithCapacity[T any](n int) Option[T] {
	return func(o *options[T]) {
		o.capacity = n
	}
}

// WithData seeds the heap with the supplied elements, establishing the
// heap property in O(n), which is cheaper than pushing the elements one
// by one. A plain Heap takes over the slice and reorders it in place; an
// Indexed heap copies the elements.
func WithData[T any](items []T) Option[T] {
	return func(o *options[T]) {
		o.data = items
	}
}
