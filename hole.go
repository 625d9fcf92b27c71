// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package heap

// hole represents a single position in a storage without a valid element:
// the element has been lifted out and is held in slot while the hole is
// relocated through the tree. Exactly one fill restores the element into
// the hole's final position; the sift functions arrange for fill to run
// on every exit path, including a panic out of an Ordering callback.
//
// Moving a hole costs one slot copy per level, which is half the data
// movement of a pairwise-swap sift.
type hole[T, W any, S storage[T, W]] struct {
	data   S
	slot   W
	pos    int
	filled bool
}

// openHole lifts the element at pos out of data. data must not already
// have a hole.
func openHole[T, W any, S storage[T, W]](data S, pos int) *hole[T, W, S] {
	return &hole[T, W, S]{
		data: data,
		slot: data.Load(pos),
		pos:  pos,
	}
}

// fill writes the retained slot back into the hole's current position.
// Calling it again is a no-op.
func (h *hole[T, W, S]) fill() {
	if h.filled {
		return
	}
	h.filled = true
	h.data.Store(h.pos, h.slot)
}

// intoPos fills the hole and returns its final position.
func (h *hole[T, W, S]) intoPos() int {
	h.fill()
	return h.pos
}

// key returns the ordering key of the retained element.
func (h *hole[T, W, S]) key() T {
	return h.data.SlotKey(h.slot)
}

// moveDown relocates the hole to child if the ordering says the retained
// element belongs below it, reporting whether it moved. child must
// differ from the hole's position.
func (h *hole[T, W, S]) moveDown(child int, ord Ordering[T]) bool {
	if !ord.SiftsDown(h.key(), h.data.Key(child)) {
		return false
	}
	h.moveTo(child)
	return true
}

// moveUp relocates the hole to its parent if the ordering says the
// retained element belongs above it, reporting whether it moved. At the
// root it does nothing.
func (h *hole[T, W, S]) moveUp(ord Ordering[T]) bool {
	parent, ok := parentOf(h.pos)
	if !ok {
		return false
	}
	if !ord.SiftsUp(h.key(), h.data.Key(parent)) {
		return false
	}
	h.moveTo(parent)
	return true
}

// upperChildWhole returns the higher-priority child of the hole's
// position when it has both children. Equal siblings resolve to the
// earlier one.
func (h *hole[T, W, S]) upperChildWhole(ord Ordering[T]) (int, bool) {
	n := h.data.Len()
	if !isWholeNode(n, h.pos) {
		return 0, false
	}
	first, _ := childOf(n, h.pos, 0)
	second, _ := childOf(n, h.pos, 1)
	if selectUpper(ord, h.data.Key(first), h.data.Key(second)) {
		return second, true
	}
	return first, true
}

// upperChildPartial returns the higher-priority of the position's
// present children (0, 1 or 2 of them).
func (h *hole[T, W, S]) upperChildPartial(ord Ordering[T]) (int, bool) {
	n := h.data.Len()
	nc := numChildren(n, h.pos)
	if nc == 0 {
		return 0, false
	}
	max, _ := childOf(n, h.pos, 0)
	for i := 1; i < nc; i++ {
		child, _ := childOf(n, h.pos, i)
		if selectUpper(ord, h.data.Key(max), h.data.Key(child)) {
			max = child
		}
	}
	return max, true
}

// moveTo unconditionally relocates the hole to index, which must differ
// from the hole's current position.
func (h *hole[T, W, S]) moveTo(index int) {
	if index == h.pos {
		panic("heap: hole moved onto itself")
	}
	h.data.MoveElement(index, h.pos)
	h.pos = index
}
