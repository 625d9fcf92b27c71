// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package heap

// storage is the contract between the sift algorithms and a backing
// sequence. T is the element as seen by an Ordering; W is the slot as
// moved around by a hole, which may carry more than the element (the
// indexable storage moves the element together with its handle).
//
// Load, Store and MoveElement are only called while a hole is open:
// Load lifts the slot out of pos leaving a hole there, Store consumes
// the hole at pos, and MoveElement fills the hole at dst from src,
// leaving a new hole at src. src and dst always differ. Key and Item
// must never be called on a position that currently holds a hole.
type storage[T, W any] interface {
	Len() int
	Key(pos int) T
	Item(pos int) T
	SetItem(pos int, v T)
	Load(pos int) W
	Store(pos int, slot W)
	MoveElement(src, dst int)
	SlotKey(slot W) T
}

// sliceStorage adapts a plain slice to the storage contract. The slot is
// the element itself and holes are purely notional: a holed position
// still contains the stale value, the contract just forbids reading it.
type sliceStorage[T any] struct {
	data *[]T
}

func (s sliceStorage[T]) Len() int {
	return len(*s.data)
}

func (s sliceStorage[T]) Key(pos int) T {
	return (*s.data)[pos]
}

func (s sliceStorage[T]) Item(pos int) T {
	return (*s.data)[pos]
}

func (s sliceStorage[T]) SetItem(pos int, v T) {
	(*s.data)[pos] = v
}

func (s sliceStorage[T]) Load(pos int) T {
	return (*s.data)[pos]
}

func (s sliceStorage[T]) Store(pos int, slot T) {
	(*s.data)[pos] = slot
}

func (s sliceStorage[T]) MoveElement(src, dst int) {
	(*s.data)[dst] = (*s.data)[src]
}

func (s sliceStorage[T]) SlotKey(slot T) T {
	return slot
}
