// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package heap provides binary heaps over a contiguous backing slice in
// two flavours: Heap, a plain heap analogous to the standard library's
// container/heap over a slice, and Indexed, which additionally hands out
// a stable opaque handle (Idx) per element so callers can read, mutate
// and remove elements directly after arbitrary reordering.
//
// The ordering of elements is pluggable via Ordering values constructed
// with Max, Min, MaxFunc, MinFunc, MaxByKey and MinByKey, so one heap
// implementation serves max-heaps, min-heaps and priority queues keyed
// on part of an element.
//
// Internally all sift operations relocate elements through a single
// moving hole rather than pairwise swaps, halving the data movement.
// Heaps are not safe for concurrent use.
package heap

import (
	"cmp"
	"slices"
)

// Heap is a binary heap stored in a plain slice.
//
// The zero value is not usable; construct heaps with NewMax, NewMin or
// New. Push is amortized O(1) (worst case O(n) when the backing slice
// grows), Pop is O(log n), Peek is O(1).
type Heap[T any] struct {
	data  []T
	ord   Ordering[T]
	guard bool
}

// NewMax returns an empty heap that pops the largest element first,
// using the natural ordering of T.
func NewMax[T cmp.Ordered](opts ...Option[T]) *Heap[T] {
	return New(Max[T](), opts...)
}

// NewMin returns an empty heap that pops the smallest element first,
// using the natural ordering of T.
func NewMin[T cmp.Ordered](opts ...Option[T]) *Heap[T] {
	return New(Min[T](), opts...)
}

// New returns a heap using the supplied ordering.
func New[T any](ord Ordering[T], opts ...Option[T]) *Heap[T] {
	var o options[T]
	for _, fn := range opts {
		fn(&o)
	}
	h := &Heap[T]{ord: ord}
	if o.data != nil {
		h.data = o.data
		rebuild[T, T](h.storage(), h.ord)
		return h
	}
	h.data = make([]T, 0, o.capacity)
	return h
}

func (h *Heap[T]) storage() sliceStorage[T] {
	return sliceStorage[T]{&h.data}
}

// checkReleased panics if a PeekMut obtained from this heap has not been
// released; operating on the heap mid-mutation would observe a possibly
// incoherent ordering.
func (h *Heap[T]) checkReleased() {
	if h.guard {
		panic("heap: PeekMut has not been released")
	}
}

// Len returns the number of elements in the heap.
func (h *Heap[T]) Len() int {
	return len(h.data)
}

// Cap returns the capacity of the backing storage.
func (h *Heap[T]) Cap() int {
	return cap(h.data)
}

// IsEmpty reports whether the heap contains no elements.
func (h *Heap[T]) IsEmpty() bool {
	return len(h.data) == 0
}

// Peek returns the top element without removing it, or false if the
// heap is empty.
func (h *Heap[T]) Peek() (T, bool) {
	if len(h.data) == 0 {
		var zero T
		return zero, false
	}
	return h.data[0], true
}

// PeekMut returns a mutation guard over the top element, or false if
// the heap is empty. The guard must be released before any other
// operation on the heap; releasing it restores the heap property if the
// element was changed. Typical usage:
//
//	if m, ok := h.PeekMut(); ok {
//		defer m.Release()
//		m.Set(m.Value() + 1)
//	}
func (h *Heap[T]) PeekMut() (*PeekMut[T], bool) {
	h.checkReleased()
	if len(h.data) == 0 {
		return nil, false
	}
	h.guard = true
	return &PeekMut[T]{h: h}, true
}

// Push adds item to the heap. The worst case cost of a single call is
// O(n) when the backing slice needs to grow; pushes are otherwise
// amortized O(1), degrading to O(log n) when elements arrive in
// priority order.
func (h *Heap[T]) Push(item T) {
	h.checkReleased()
	pos := len(h.data)
	h.data = append(h.data, item)
	siftUp[T, T](h.storage(), pos, h.ord)
}

// Pop removes and returns the top element, or false if the heap is
// empty. O(log n).
func (h *Heap[T]) Pop() (T, bool) {
	h.checkReleased()
	n := len(h.data)
	if n == 0 {
		var zero T
		return zero, false
	}
	last := h.data[n-1]
	h.data = h.data[:n-1]
	return popSwap[T, T](h.storage(), last, h.ord), true
}

// Reserve grows the backing storage so that at least additional more
// elements can be pushed without reallocating. It may reserve more space
// to avoid frequent allocations.
func (h *Heap[T]) Reserve(additional int) {
	h.checkReleased()
	h.data = slices.Grow(h.data, additional)
}

// ReserveExact is like Reserve but does not over-allocate.
func (h *Heap[T]) ReserveExact(additional int) {
	h.checkReleased()
	if cap(h.data)-len(h.data) >= additional {
		return
	}
	data := make([]T, len(h.data), len(h.data)+additional)
	copy(data, h.data)
	h.data = data
}

// Compact reduces the backing storage to the minimum necessary to hold
// the heap's current contents, releasing the excess for the GC.
func (h *Heap[T]) Compact() {
	h.checkReleased()
	if cap(h.data) == len(h.data) {
		return
	}
	data := make([]T, len(h.data))
	copy(data, h.data)
	h.data = data
}

// CompactTo is like Compact but keeps the capacity at least
// minCapacity. It is a no-op if the capacity is already below the
// bound.
func (h *Heap[T]) CompactTo(minCapacity int) {
	h.checkReleased()
	if cap(h.data) <= minCapacity {
		return
	}
	data := make([]T, len(h.data), max(len(h.data), minCapacity))
	copy(data, h.data)
	h.data = data
}

// Append moves all elements of other into h, leaving other empty. Both
// heaps must use the same ordering. The smaller of the two heaps is
// merged into the larger to minimize the rebuild cost, so the backing
// storages may be exchanged. O(n) amortized.
func (h *Heap[T]) Append(other *Heap[T]) {
	h.checkReleased()
	if h == other {
		panic("heap: cannot append a heap to itself")
	}
	other.checkReleased()
	if len(h.data) < len(other.data) {
		h.data, other.data = other.data, h.data
		h.ord, other.ord = other.ord, h.ord
	}
	start := len(h.data)
	h.data = append(h.data, other.data...)
	clear(other.data)
	other.data = other.data[:0]
	rebuildTail[T, T](h.storage(), start, h.ord)
}

// PeekMut is a scoped mutation guard over the top element of a Heap,
// created by Heap.PeekMut. Release must be called on every path once the
// guard is no longer needed, typically via defer.
type PeekMut[T any] struct {
	h        *Heap[T]
	sift     bool
	released bool
}

func (p *PeekMut[T]) check() {
	if p.released {
		panic("heap: use of a released PeekMut")
	}
}

// Value returns the top element.
func (p *PeekMut[T]) Value() T {
	p.check()
	return p.h.data[0]
}

// Set replaces the top element. The heap is reordered, if necessary,
// when the guard is released.
func (p *PeekMut[T]) Set(item T) {
	p.check()
	p.h.data[0] = item
	// A lone root can never be out of place.
	if len(p.h.data) > 1 {
		p.sift = true
	}
}

// Pop removes and returns the top element, consuming the guard.
func (p *PeekMut[T]) Pop() T {
	p.check()
	// Whatever was written through the guard leaves the heap with the
	// element, so no restoration is needed.
	p.sift = false
	p.release()
	item, _ := p.h.Pop()
	return item
}

// Release restores the heap property if the element was changed and
// ends the guard's exclusive access. Releasing an already released
// guard is a no-op.
func (p *PeekMut[T]) Release() {
	if p.released {
		return
	}
	sift := p.sift
	p.sift = false
	p.release()
	if sift {
		siftDown[T, T](p.h.storage(), 0, p.h.ord)
	}
}

func (p *PeekMut[T]) release() {
	p.released = true
	p.h.guard = false
}
