// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package heap

import (
	"fmt"
	"slices"
)

// Idx is an opaque handle to an element of an Indexed heap, returned by
// Push. It identifies the element independently of its current position,
// so it stays usable after the heap has been reordered by other
// operations.
//
// When the element leaves the heap its handle becomes invalid and is
// eligible for reuse by a later Push; accessing the heap through a stale
// handle is a contract violation and panics when it can be detected, but
// a reused handle will silently resolve to the unrelated element that
// inherited it.
type Idx struct {
	raw int
}

func (i Idx) String() string {
	return fmt.Sprintf("Idx(%d)", i.raw)
}

// entry pairs an element with its handle; the pair moves through the
// heap as a unit.
type entry[T any] struct {
	item T
	idx  Idx
}

// indexedVec is the index-recycling store: the backing sequence of
// element/handle pairs plus the skipList side table that maps raw handle
// values to positions. The mapping is bijective between live handles and
// occupied positions whenever no hole is open.
type indexedVec[T any] struct {
	data     []entry[T]
	position skipList
}

func (v *indexedVec[T]) len() int {
	return len(v.data)
}

func (v *indexedVec[T]) capacity() int {
	return cap(v.data)
}

func (v *indexedVec[T]) get(pos int) T {
	return v.data[pos].item
}

func (v *indexedVec[T]) set(pos int, item T) {
	v.data[pos].item = item
}

// push appends item, allocating a handle for it, and returns the handle.
func (v *indexedVec[T]) push(item T) Idx {
	pos := len(v.data)
	index := Idx{v.position.add(pos)}
	v.data = append(v.data, entry[T]{item: item, idx: index})
	return index
}

// pop removes the tail pair and releases its handle, returning the
// element, or false if the store is empty.
func (v *indexedVec[T]) pop() (T, bool) {
	n := len(v.data)
	if n == 0 {
		var zero T
		return zero, false
	}
	e := v.data[n-1]
	v.data = v.data[:n-1]
	v.checkIndex(n-1, e.idx)
	v.position.remove(e.idx.raw)
	return e.item, true
}

// swapRemove removes the pair at pos by moving the tail pair into its
// place, releasing the removed handle. The moved pair's side-table entry
// is left stale; the caller's follow-up sift restores it when the hole
// is filled.
func (v *indexedVec[T]) swapRemove(pos int) T {
	n := len(v.data)
	e := v.data[pos]
	if pos != n-1 {
		v.data[pos] = v.data[n-1]
	}
	v.data = v.data[:n-1]
	v.checkIndex(pos, e.idx)
	v.position.remove(e.idx.raw)
	return e.item
}

// recordPosition points the side table at pos for whatever handle is
// stored there.
func (v *indexedVec[T]) recordPosition(pos int) {
	index := v.posToIndex(pos)
	v.position.set(index.raw, pos)
}

// indexToPos resolves a handle to the current position of its element.
func (v *indexedVec[T]) indexToPos(index Idx) int {
	if !v.position.isValid(index.raw) {
		panic(fmt.Sprintf("heap: %v does not refer to a live element", index))
	}
	pos := v.position.get(index.raw)
	if pos >= len(v.data) {
		panic(fmt.Sprintf("heap: %v resolved to invalid position %d; length is %d", index, pos, len(v.data)))
	}
	return pos
}

// posToIndex returns the handle of the element at pos.
func (v *indexedVec[T]) posToIndex(pos int) Idx {
	index := v.data[pos].idx
	v.checkIndex(pos, index)
	return index
}

func (v *indexedVec[T]) checkIndex(pos int, index Idx) {
	if !v.position.isValid(index.raw) {
		panic(fmt.Sprintf("heap: position %d contains invalid %v", pos, index))
	}
}

func (v *indexedVec[T]) reserve(additional int) {
	v.data = slices.Grow(v.data, additional)
	v.position.reserve(additional)
}

func (v *indexedVec[T]) reserveExact(additional int) {
	if cap(v.data)-len(v.data) < additional {
		data := make([]entry[T], len(v.data), len(v.data)+additional)
		copy(data, v.data)
		v.data = data
	}
	v.position.reserveExact(additional)
}

func (v *indexedVec[T]) compact() {
	if cap(v.data) != len(v.data) {
		data := make([]entry[T], len(v.data))
		copy(data, v.data)
		v.data = data
	}
	v.position.compact()
}

func (v *indexedVec[T]) compactTo(minCapacity int) {
	if cap(v.data) > minCapacity {
		data := make([]entry[T], len(v.data), max(len(v.data), minCapacity))
		copy(data, v.data)
		v.data = data
	}
	v.position.compactTo(minCapacity)
}

// storage implementation: Store and MoveElement retarget the side table
// so the handle/position mapping is correct again by the time a hole is
// filled.

func (v *indexedVec[T]) Len() int {
	return len(v.data)
}

func (v *indexedVec[T]) Key(pos int) T {
	return v.data[pos].item
}

func (v *indexedVec[T]) Item(pos int) T {
	return v.data[pos].item
}

func (v *indexedVec[T]) SetItem(pos int, item T) {
	v.data[pos].item = item
}

func (v *indexedVec[T]) Load(pos int) entry[T] {
	return v.data[pos]
}

func (v *indexedVec[T]) Store(pos int, slot entry[T]) {
	v.data[pos] = slot
	v.recordPosition(pos)
}

func (v *indexedVec[T]) MoveElement(src, dst int) {
	v.data[dst] = v.data[src]
	v.recordPosition(dst)
}

func (v *indexedVec[T]) SlotKey(slot entry[T]) T {
	return slot.item
}
