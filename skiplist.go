// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package heap

import (
	"fmt"
	"math/bits"
	"slices"
)

// skipList is the side table mapping raw handle values to heap
// positions. Live handles index data entries holding a position; freed
// handles become skip entries threaded into a singly linked free chain
// starting at firstSkip, ready for reuse by the next add. The chain
// visits exactly the entries not assigned to a live handle.
type skipList struct {
	entries   []skipEntry
	firstSkip nextSkip
}

// skipEntry packs either a position or a link to the next free entry
// into one machine word; the top bit distinguishes the two.
type skipEntry uint

// nextSkip is an optional entry index: zero is none, i+1 is entry i.
type nextSkip uint

const skipBit = skipEntry(1) << (bits.UintSize - 1)

func dataEntry(pos int) skipEntry {
	e := skipEntry(pos)
	if e&skipBit != 0 {
		panic(fmt.Sprintf("heap: position %d overflows a skip entry", pos))
	}
	return e
}

func skipEntryTo(next nextSkip) skipEntry {
	return skipEntry(next) | skipBit
}

func (e skipEntry) isData() bool {
	return e&skipBit == 0
}

func (e skipEntry) position() int {
	if !e.isData() {
		panic("heap: entry holds a free-chain link, expected a position")
	}
	return int(e)
}

func (e skipEntry) next() nextSkip {
	if e.isData() {
		panic("heap: entry holds a position, expected a free-chain link")
	}
	return nextSkip(e &^ skipBit)
}

func (s nextSkip) get() (int, bool) {
	if s == 0 {
		return 0, false
	}
	return int(s) - 1, true
}

func someSkip(index int) nextSkip {
	return nextSkip(index + 1)
}

// add records pos under a handle, reusing the head of the free chain
// when one is available and minting a fresh entry otherwise. It returns
// the raw handle value.
func (s *skipList) add(pos int) int {
	index, ok := s.firstSkip.get()
	if !ok {
		s.entries = append(s.entries, dataEntry(pos))
		return len(s.entries) - 1
	}
	if index >= len(s.entries) {
		panic(fmt.Sprintf("heap: free chain entry %d is out of bounds", index))
	}
	entry := s.entries[index]
	s.entries[index] = dataEntry(pos)
	s.firstSkip = entry.next()
	return index
}

// isValid reports whether index refers to a live handle.
func (s *skipList) isValid(index int) bool {
	return index >= 0 && index < len(s.entries) && s.entries[index].isData()
}

func (s *skipList) get(index int) int {
	return s.entries[index].position()
}

func (s *skipList) set(index int, pos int) {
	s.entries[index].position() // must already be a data entry
	s.entries[index] = dataEntry(pos)
}

// remove releases the handle at index, returning the position it held.
// The last entry is simply dropped; the free chain cannot point at it
// since it held data. Interior entries become the new chain head.
func (s *skipList) remove(index int) int {
	if index == len(s.entries)-1 {
		pos := s.entries[index].position()
		s.entries = s.entries[:index]
		return pos
	}
	pos := s.entries[index].position()
	s.entries[index] = skipEntryTo(s.firstSkip)
	s.firstSkip = someSkip(index)
	return pos
}

func (s *skipList) reserve(additional int) {
	s.entries = slices.Grow(s.entries, additional)
}

func (s *skipList) reserveExact(additional int) {
	if cap(s.entries)-len(s.entries) >= additional {
		return
	}
	entries := make([]skipEntry, len(s.entries), len(s.entries)+additional)
	copy(entries, s.entries)
	s.entries = entries
}

func (s *skipList) compact() {
	if cap(s.entries) == len(s.entries) {
		return
	}
	entries := make([]skipEntry, len(s.entries))
	copy(entries, s.entries)
	s.entries = entries
}

func (s *skipList) compactTo(minCapacity int) {
	if cap(s.entries) <= minCapacity {
		return
	}
	target := max(len(s.entries), minCapacity)
	entries := make([]skipEntry, len(s.entries), target)
	copy(entries, s.entries)
	s.entries = entries
}
