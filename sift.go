// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package heap

// The sift implementations move an element out of the sequence (leaving
// behind a hole), shift the others along, and move the removed element
// back into the sequence at the final location of the hole. The hole
// type is used to represent this and the deferred fill makes sure the
// hole is filled back at the end of each function, even on panic.

// siftUp takes the element at pos and moves it up the heap, returning
// its new position. It terminates at the root or when the parent is not
// preferred.
func siftUp[T, W any, S storage[T, W]](data S, pos int, ord Ordering[T]) int {
	h := openHole[T, W](data, pos)
	defer h.fill()

	for h.moveUp(ord) {
	}
	return h.intoPos()
}

// siftDown takes the element at pos and moves it down the heap while its
// children are preferred, returning its new position.
func siftDown[T, W any, S storage[T, W]](data S, pos int, ord Ordering[T]) int {
	h := openHole[T, W](data, pos)
	defer h.fill()

	for {
		child, ok := h.upperChildWhole(ord)
		if !ok {
			break
		}
		if !h.moveDown(child, ord) {
			return h.intoPos()
		}
	}
	if child, ok := h.upperChildPartial(ord); ok {
		h.moveDown(child, ord)
	}
	return h.intoPos()
}

// siftDownToBottom takes the element at pos and moves it all the way
// down the heap, ignoring its own key, returning its new position. It is
// faster than siftDown when the element is known to belong near the
// bottom.
func siftDownToBottom[T, W any, S storage[T, W]](data S, pos int, ord Ordering[T]) int {
	h := openHole[T, W](data, pos)
	defer h.fill()

	for {
		child, ok := h.upperChildWhole(ord)
		if !ok {
			break
		}
		h.moveTo(child)
	}
	if child, ok := h.upperChildPartial(ord); ok {
		h.moveTo(child)
	}
	return h.intoPos()
}

// fixupSift restores the heap property around a single out-of-place
// element at pos, returning its new position. An element that rose can
// never also need to fall in a heap that was valid everywhere else, so
// sift-down runs only when sift-up did not move.
func fixupSift[T, W any, S storage[T, W]](data S, pos int, ord Ordering[T]) int {
	if newPos := siftUp[T, W](data, pos, ord); newPos != pos {
		return newPos
	}
	return siftDown[T, W](data, pos, ord)
}

// fixupSiftToBottom is a variant of fixupSift that is faster when the
// element at pos is expected to belong near the bottom of the heap, eg.
// after swapping the tail element into a vacated slot.
func fixupSiftToBottom[T, W any, S storage[T, W]](data S, pos int, ord Ordering[T]) int {
	pos = siftDownToBottom[T, W](data, pos, ord)
	return siftUp[T, W](data, pos, ord)
}
