// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package heap

// The heap algorithm layer: operations on an already heap-ordered
// storage, composed from the sift primitives. The facades add the
// element bookkeeping (appending, removing the physical tail) around
// these.

// popSwap swaps the root element with last and restores the heap
// property, returning whichever element ends up displaced. On an empty
// storage it returns last unchanged. Callers remove the physical tail
// slot first, so the sequence has already shrunk by the time the sift
// runs.
func popSwap[T, W any, S storage[T, W]](data S, last T, ord Ordering[T]) T {
	if data.Len() == 0 {
		return last
	}
	root := data.Item(0)
	data.SetItem(0, last)
	fixupSiftToBottom[T, W](data, 0, ord)
	return root
}

// rebuild establishes the heap property over the whole storage in O(n)
// by sifting down every position that can have children, bottom up.
func rebuild[T, W any, S storage[T, W]](data S, ord Ordering[T]) {
	for i := rebuildLimit(data.Len()) - 1; i >= 0; i-- {
		siftDown[T, W](data, i, ord)
	}
}

// rebuildTail restores the heap property after elements have been
// appended from start onwards, choosing between a full rebuild and
// sifting up each appended element.
func rebuildTail[T, W any, S storage[T, W]](data S, start int, ord Ordering[T]) {
	n := data.Len()
	if start == n {
		return
	}
	if betterToRebuild(n, start) {
		rebuild[T, W](data, ord)
		return
	}
	for i := start; i < n; i++ {
		siftUp[T, W](data, i, ord)
	}
}
