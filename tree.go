// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package heap

import "math/bits"

// The functions below implement the implicit binary tree layout over a
// contiguous sequence of length n: the children of position p are at
// 2p+1 and 2p+2, its parent at (p-1)/2. They are the only place that
// knows this arithmetic.

// parentOf returns the parent of pos, or false for the root. The parent
// is always strictly smaller than pos.
func parentOf(pos int) (int, bool) {
	if pos == 0 {
		return 0, false
	}
	return (pos - 1) / 2, true
}

// childOf returns the index'th child (0 or 1) of pos, or false if it lies
// beyond n. The child is always strictly greater than pos.
func childOf(n, pos, index int) (int, bool) {
	child := 2*pos + 1 + index
	if child >= n || child < 0 { // child < 0 after int overflow
		return 0, false
	}
	return child, true
}

// isWholeNode reports whether pos has both children.
func isWholeNode(n, pos int) bool {
	_, ok := childOf(n, pos, 1)
	return ok
}

// numChildren returns how many children (0, 1 or 2) pos has.
func numChildren(n, pos int) int {
	first := 2*pos + 1
	if first >= n || first < 0 {
		return 0
	}
	if c := n - first; c < 2 {
		return c
	}
	return 2
}

// rebuildLimit returns the exclusive upper bound of the positions that
// can have children; a bottom-up rebuild sifts down every position below
// it.
func rebuildLimit(n int) int {
	return n / 2
}

// betterToRebuild reports whether, with elements appended from start
// onwards, a full bottom-up rebuild is expected to be cheaper than
// sifting up each appended element individually.
//
// rebuild takes O(n) operations and about 2n comparisons in the worst
// case, while repeated sift-up takes O(tail*log(start)) operations and
// about tail*log2(start) comparisons in the worst case, assuming
// start >= tail. For larger heaps the crossover no longer follows this
// reasoning and was determined empirically.
func betterToRebuild(n, start int) bool {
	tail := n - start
	switch {
	case start < tail:
		return true
	case n <= 2048:
		return 2*n < tail*log2(start)
	default:
		return 2*n < tail*11
	}
}

func log2(x int) int {
	return bits.Len(uint(x)) - 1
}
