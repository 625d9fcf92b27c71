// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package heap

import "cmp"

// Indexed is a binary heap that tracks where its elements move and
// allows access to them by a stable handle. Push returns an Idx which
// remains valid, at O(1) lookup cost, however the heap is reordered by
// later operations, until the element itself leaves the heap.
//
// Freed handles are recycled: after an element is removed a later Push
// may return the same Idx for an unrelated element. A side table
// entry per element is the only cost over a plain Heap.
//
// Construct heaps with NewIndexedMax, NewIndexedMin or NewIndexed; the
// zero value is not usable.
type Indexed[T any] struct {
	data  indexedVec[T]
	ord   Ordering[T]
	guard bool
}

// NewIndexedMax returns an empty indexable heap that pops the largest
// element first, using the natural ordering of T.
func NewIndexedMax[T cmp.Ordered](opts ...Option[T]) *Indexed[T] {
	return NewIndexed(Max[T](), opts...)
}

// NewIndexedMin returns an empty indexable heap that pops the smallest
// element first, using the natural ordering of T.
func NewIndexedMin[T cmp.Ordered](opts ...Option[T]) *Indexed[T] {
	return NewIndexed(Min[T](), opts...)
}

// NewIndexed returns an indexable heap using the supplied ordering.
func NewIndexed[T any](ord Ordering[T], opts ...Option[T]) *Indexed[T] {
	var o options[T]
	for _, fn := range opts {
		fn(&o)
	}
	h := &Indexed[T]{ord: ord}
	if o.data != nil {
		h.data.reserveExact(len(o.data))
		for _, item := range o.data {
			h.data.push(item)
		}
		rebuild[T, entry[T]](&h.data, h.ord)
		return h
	}
	if o.capacity > 0 {
		h.data.reserveExact(o.capacity)
	}
	return h
}

func (h *Indexed[T]) checkReleased() {
	if h.guard {
		panic("heap: EntryMut has not been released")
	}
}

// Len returns the number of elements in the heap.
func (h *Indexed[T]) Len() int {
	return h.data.len()
}

// Cap returns the capacity of the backing storage.
func (h *Indexed[T]) Cap() int {
	return h.data.capacity()
}

// IsEmpty reports whether the heap contains no elements.
func (h *Indexed[T]) IsEmpty() bool {
	return h.data.len() == 0
}

// Peek returns the top element without removing it, or false if the
// heap is empty.
func (h *Indexed[T]) Peek() (T, bool) {
	if h.data.len() == 0 {
		var zero T
		return zero, false
	}
	return h.data.get(0), true
}

// PeekMut returns a mutation guard over the top element, or false if
// the heap is empty. It is equivalent to ByIndexMut on the top
// element's handle.
func (h *Indexed[T]) PeekMut() (*EntryMut[T], bool) {
	h.checkReleased()
	if h.data.len() == 0 {
		return nil, false
	}
	h.guard = true
	return &EntryMut[T]{h: h, pos: 0}, true
}

// ByIndex returns the element that index refers to. O(1).
//
// Accessing the heap through the handle of a removed element is a
// contract violation: it panics if the handle is not currently live, but
// a handle that has been recycled by a later Push silently resolves to
// the unrelated element that inherited it.
func (h *Indexed[T]) ByIndex(index Idx) T {
	return h.data.get(h.data.indexToPos(index))
}

// ByIndexMut returns a mutation guard over the element that index refers
// to. The guard must be released before any other operation on the heap;
// releasing it restores the heap property if the element was changed.
// See ByIndex for the liveness contract on index.
//
//	m := h.ByIndexMut(idx)
//	m.Set(newPriority)
//	m.Release()
func (h *Indexed[T]) ByIndexMut(index Idx) *EntryMut[T] {
	h.checkReleased()
	pos := h.data.indexToPos(index)
	h.guard = true
	return &EntryMut[T]{h: h, pos: pos}
}

// Push adds item to the heap and returns a handle to it. Amortized
// O(1); the worst case for a single call is O(n) when the backing
// storage grows.
func (h *Indexed[T]) Push(item T) Idx {
	h.checkReleased()
	pos := h.data.len()
	index := h.data.push(item)
	siftUp[T, entry[T]](&h.data, pos, h.ord)
	return index
}

// Pop removes and returns the top element, or false if the heap is
// empty. O(log n). The handle of the element occupying the physical
// tail slot is released and the top element's handle is inherited by
// the element swapped into its place.
func (h *Indexed[T]) Pop() (T, bool) {
	h.checkReleased()
	item, ok := h.data.pop()
	if !ok {
		var zero T
		return zero, false
	}
	return popSwap[T, entry[T]](&h.data, item, h.ord), true
}

// Reserve grows the backing storage so that at least additional more
// elements can be pushed without reallocating. It may reserve more
// space to avoid frequent allocations.
func (h *Indexed[T]) Reserve(additional int) {
	h.checkReleased()
	h.data.reserve(additional)
}

// ReserveExact is like Reserve but does not over-allocate.
func (h *Indexed[T]) ReserveExact(additional int) {
	h.checkReleased()
	h.data.reserveExact(additional)
}

// Compact reduces the backing storage to the minimum necessary to hold
// the heap's current contents, releasing the excess for the GC. The
// handle side table retains entries for freed handles that precede live
// ones; those are reused by later pushes.
func (h *Indexed[T]) Compact() {
	h.checkReleased()
	h.data.compact()
}

// CompactTo is like Compact but keeps the capacity at least
// minCapacity. It is a no-op if the capacity is already below the
// bound.
func (h *Indexed[T]) CompactTo(minCapacity int) {
	h.checkReleased()
	h.data.compactTo(minCapacity)
}

// EntryMut is a scoped mutation guard over one element of an Indexed
// heap, created by Indexed.ByIndexMut or Indexed.PeekMut. Release must
// be called on every path once the guard is no longer needed, unless
// the guard is consumed by Remove.
type EntryMut[T any] struct {
	h        *Indexed[T]
	pos      int
	sift     bool
	released bool
}

func (e *EntryMut[T]) check() {
	if e.released {
		panic("heap: use of a released EntryMut")
	}
}

// Index returns the handle of the guarded element.
func (e *EntryMut[T]) Index() Idx {
	e.check()
	return e.h.data.posToIndex(e.pos)
}

// Value returns the guarded element.
func (e *EntryMut[T]) Value() T {
	e.check()
	return e.h.data.get(e.pos)
}

// Set replaces the guarded element. The heap is reordered, if
// necessary, when the guard is released.
func (e *EntryMut[T]) Set(item T) {
	e.check()
	e.h.data.set(e.pos, item)
	// A lone root can never be out of place.
	if e.pos != 0 || e.h.data.len() > 1 {
		e.sift = true
	}
}

// Remove removes the guarded element from the heap and returns it,
// consuming the guard. The element's handle is released; the element
// from the physical tail slot inherits its position and is sifted to
// where it belongs. O(log n).
func (e *EntryMut[T]) Remove() T {
	e.check()
	e.sift = false
	e.release()
	pos := e.pos
	item := e.h.data.swapRemove(pos)
	// If the removed element occupied the tail slot nothing moved.
	if pos < e.h.data.len() {
		fixupSiftToBottom[T, entry[T]](&e.h.data, pos, e.h.ord)
	}
	return item
}

// Release restores the heap property if the element was changed and
// ends the guard's exclusive access. Releasing an already released
// guard is a no-op.
func (e *EntryMut[T]) Release() {
	if e.released {
		return
	}
	sift := e.sift
	e.sift = false
	e.release()
	if sift {
		fixupSift[T, entry[T]](&e.h.data, e.pos, e.h.ord)
	}
}

func (e *EntryMut[T]) release() {
	e.released = true
	e.h.guard = false
}
