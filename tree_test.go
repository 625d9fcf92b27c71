// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package heap

import "testing"

func TestTreeNavigation(t *testing.T) {
	if _, ok := parentOf(0); ok {
		t.Errorf("the root has no parent")
	}
	for _, tc := range []struct {
		pos, parent int
	}{
		{1, 0}, {2, 0}, {3, 1}, {4, 1}, {5, 2}, {6, 2}, {13, 6},
	} {
		p, ok := parentOf(tc.pos)
		if !ok || p != tc.parent {
			t.Errorf("parentOf(%v): got %v, %v, want %v", tc.pos, p, ok, tc.parent)
		}
	}

	if c, ok := childOf(3, 0, 0); !ok || c != 1 {
		t.Errorf("got %v, %v, want 1", c, ok)
	}
	if c, ok := childOf(3, 0, 1); !ok || c != 2 {
		t.Errorf("got %v, %v, want 2", c, ok)
	}
	if _, ok := childOf(3, 1, 0); ok {
		t.Errorf("position 1 of 3 has no children")
	}
}

func TestNumChildren(t *testing.T) {
	for _, tc := range []struct {
		n, pos, want int
	}{
		{3, 0, 2},
		{3, 1, 0},
		{4, 1, 1},
		{5, 1, 2},
		{6, 1, 2},
		{0, 0, 0},
		{1, 0, 0},
		{2, 0, 1},
	} {
		if got := numChildren(tc.n, tc.pos); got != tc.want {
			t.Errorf("numChildren(%v, %v): got %v, want %v", tc.n, tc.pos, got, tc.want)
		}
	}
}

func TestBetterToRebuild(t *testing.T) {
	for _, tc := range []struct {
		n, start int
		want     bool
	}{
		// The tail dominates: always rebuild.
		{10, 0, true},
		{10, 4, true},
		// Small heaps compare 2n against tail*floor(log2(start)).
		{130, 128, false},  // 260 < 2*7 is false
		{192, 128, true},   // 384 < 64*7 is true
		{2048, 1024, true}, // 4096 < 1024*10 is true
		// Large heaps use the empirical constant 11.
		{4096, 4000, false}, // 8192 < 96*11 is false
		{4096, 3000, true},  // 8192 < 1096*11 is true
	} {
		if got := betterToRebuild(tc.n, tc.start); got != tc.want {
			t.Errorf("betterToRebuild(%v, %v): got %v, want %v", tc.n, tc.start, got, tc.want)
		}
	}
}

func TestLog2(t *testing.T) {
	for _, tc := range []struct {
		x, want int
	}{
		{1, 0}, {2, 1}, {3, 1}, {4, 2}, {1023, 9}, {1024, 10},
	} {
		if got := log2(tc.x); got != tc.want {
			t.Errorf("log2(%v): got %v, want %v", tc.x, got, tc.want)
		}
	}
}
