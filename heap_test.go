// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package heap_test

import (
	"fmt"
	"math/rand"
	"reflect"
	"sort"
	"testing"

	"cloudeng.io/heap"
)

func ExampleNewMin() {
	h := heap.NewMin[int]()
	for _, v := range []int{3, 15, 1, 42, 7, 6, 5, 64} {
		h.Push(v)
	}
	for !h.IsEmpty() {
		v, _ := h.Pop()
		fmt.Printf("%v ", v)
	}
	fmt.Println()
	// Output:
	// 1 3 5 6 7 15 42 64
}

func drain(t *testing.T, h *heap.Heap[int]) []int {
	t.Helper()
	out := make([]int, 0, h.Len())
	for {
		v, ok := h.Pop()
		if !ok {
			break
		}
		h.Verify(t)
		out = append(out, v)
	}
	return out
}

func TestMinHeap(t *testing.T) {
	h := heap.NewMin[int]()
	for _, v := range []int{3, 15, 1, 42, 7, 6, 5, 64} {
		h.Push(v)
		h.Verify(t)
	}
	if got, want := drain(t, h), []int{1, 3, 5, 6, 7, 15, 42, 64}; !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestMaxHeap(t *testing.T) {
	h := heap.NewMax[int]()
	for _, v := range []int{3, 15, 1, 42, 7, 6, 5, 64} {
		h.Push(v)
		h.Verify(t)
	}
	if got, want := drain(t, h), []int{64, 42, 15, 7, 6, 5, 3, 1}; !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestEmptyHeap(t *testing.T) {
	h := heap.NewMax[int]()
	if got, want := h.Len(), 0; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if !h.IsEmpty() {
		t.Errorf("expected an empty heap")
	}
	if _, ok := h.Pop(); ok {
		t.Errorf("Pop on an empty heap succeeded")
	}
	if _, ok := h.Peek(); ok {
		t.Errorf("Peek on an empty heap succeeded")
	}
	if _, ok := h.PeekMut(); ok {
		t.Errorf("PeekMut on an empty heap succeeded")
	}
}

func TestSortEquivalence(t *testing.T) {
	rnd := rand.New(rand.NewSource(0x1745)) // #nosec: G404
	for round := 0; round < 10; round++ {
		n := rnd.Intn(500)
		values := make([]int, n)
		for i := range values {
			values[i] = rnd.Intn(100)
		}
		h := heap.NewMin[int]()
		for _, v := range values {
			h.Push(v)
		}
		got := drain(t, h)
		want := append([]int{}, values...)
		sort.Ints(want)
		if len(got) != len(want) {
			t.Fatalf("round %v: got %v values, want %v", round, len(got), len(want))
		}
		for i := range want {
			if got[i] != want[i] {
				t.Errorf("round %v: value %v is %v, want %v", round, i, got[i], want[i])
			}
		}
	}
}

func TestWithData(t *testing.T) {
	h := heap.NewMin(heap.WithData([]int{9, 1, 8, 2, 7, 3, 6, 4, 5}))
	h.Verify(t)
	if got, want := drain(t, h), []int{1, 2, 3, 4, 5, 6, 7, 8, 9}; !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestOrderingFuncs(t *testing.T) {
	// Compare by absolute value.
	abs := func(v int) int {
		if v < 0 {
			return -v
		}
		return v
	}
	h := heap.New(heap.MaxFunc(func(a, b int) int { return abs(a) - abs(b) }))
	for _, v := range []int{3, 1, -5} {
		h.Push(v)
	}
	if v, _ := h.Pop(); v != -5 {
		t.Errorf("got %v, want -5", v)
	}
	if v, _ := h.Pop(); v != 3 {
		t.Errorf("got %v, want 3", v)
	}

	type task struct {
		name string
		prio int
	}
	byPrio := heap.New(heap.MaxByKey(func(t task) int { return t.prio }))
	byPrio.Push(task{"low", 1})
	byPrio.Push(task{"high", 10})
	byPrio.Push(task{"medium", 5})
	for _, want := range []string{"high", "medium", "low"} {
		v, ok := byPrio.Pop()
		if !ok || v.name != want {
			t.Errorf("got %v, %v, want %v", v.name, ok, want)
		}
	}
}

func TestPeekMut(t *testing.T) {
	h := heap.NewMax[int]()
	for _, v := range []int{3, 1, 5} {
		h.Push(v)
	}
	m, ok := h.PeekMut()
	if !ok {
		t.Fatalf("expected a non-empty heap")
	}
	if got, want := m.Value(), 5; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	m.Set(0)
	m.Release()
	h.Verify(t)
	if v, _ := h.Peek(); v != 3 {
		t.Errorf("got %v, want 3", v)
	}
	if got, want := drain(t, h), []int{3, 1, 0}; !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestPeekMutUntouched(t *testing.T) {
	h := heap.NewMin[int]()
	for _, v := range []int{4, 2, 6, 8} {
		h.Push(v)
	}
	m, _ := h.PeekMut()
	_ = m.Value()
	m.Release()
	m.Release() // releasing again is a no-op
	h.Verify(t)
	if got, want := drain(t, h), []int{2, 4, 6, 8}; !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestPeekMutLoneRoot(t *testing.T) {
	h := heap.NewMin[int]()
	h.Push(7)
	m, _ := h.PeekMut()
	m.Set(3)
	m.Release()
	if got, want := drain(t, h), []int{3}; !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestPeekMutPop(t *testing.T) {
	h := heap.NewMax[int]()
	for _, v := range []int{3, 1, 5} {
		h.Push(v)
	}
	m, _ := h.PeekMut()
	if got, want := m.Pop(), 5; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := h.Len(), 2; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	h.Verify(t)
}

func TestUnreleasedGuardPanics(t *testing.T) {
	h := heap.NewMax[int]()
	h.Push(1)
	m, _ := h.PeekMut()
	defer func() {
		if recover() == nil {
			t.Errorf("expected a panic")
		}
		m.Release()
	}()
	h.Push(2)
}

func TestAppend(t *testing.T) {
	a := heap.NewMin[int]()
	for _, v := range []int{1, 2, 3} {
		a.Push(v)
	}
	b := heap.NewMin[int]()
	for _, v := range []int{4, 5} {
		b.Push(v)
	}
	a.Append(b)
	if got, want := a.Len(), 5; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if !b.IsEmpty() {
		t.Errorf("appended heap should be empty")
	}
	a.Verify(t)
	if got, want := drain(t, a), []int{1, 2, 3, 4, 5}; !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestAppendSmallerReceiver(t *testing.T) {
	// The callee is larger, so the storages are exchanged internally;
	// the observable result is the same.
	a := heap.NewMax[int]()
	a.Push(10)
	b := heap.NewMax[int]()
	for v := 0; v < 64; v++ {
		b.Push(v)
	}
	a.Append(b)
	a.Verify(t)
	if got, want := a.Len(), 65; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if !b.IsEmpty() {
		t.Errorf("appended heap should be empty")
	}
	v, _ := a.Pop()
	if got, want := v, 63; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestAppendLargeTail(t *testing.T) {
	// A tail comparable in size to the established heap takes the full
	// rebuild path.
	a := heap.NewMin[int]()
	b := heap.NewMin[int]()
	for v := 0; v < 40; v++ {
		a.Push(40 - v)
		b.Push(100 - v)
	}
	a.Append(b)
	a.Verify(t)
	if got, want := a.Len(), 80; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	v, _ := a.Peek()
	if got, want := v, 1; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestAppendToItselfPanics(t *testing.T) {
	h := heap.NewMin[int]()
	defer func() {
		if recover() == nil {
			t.Errorf("expected a panic")
		}
	}()
	h.Append(h)
}

func TestCapacityManagement(t *testing.T) {
	h := heap.NewMax[int](heap.WithCapacity[int](100))
	if got := h.Cap(); got < 100 {
		t.Errorf("got %v, want at least 100", got)
	}
	h.Push(4)
	h.Compact()
	if got, want := h.Cap(), 1; got != want {
		t.Errorf("got %v, want %v", got, want)
	}

	h.Reserve(50)
	if got := h.Cap() - h.Len(); got < 50 {
		t.Errorf("got %v spare, want at least 50", got)
	}

	h.Compact()
	h.ReserveExact(10)
	if got, want := h.Cap(), 11; got != want {
		t.Errorf("got %v, want %v", got, want)
	}

	h.CompactTo(5)
	if got := h.Cap(); got < 5 || got > 11 {
		t.Errorf("got %v, want within [5, 11]", got)
	}
	h.CompactTo(200) // no-op, capacity already below the bound
	if got := h.Cap(); got > 11 {
		t.Errorf("got %v, want at most 11", got)
	}
}

func TestDuplicates(t *testing.T) {
	h := heap.NewMin(heap.WithData([]int{5, 3, 7, 2, 8, 1, 6, 4, 5, 3}))
	h.Push(3)
	h.Verify(t)
	want := []int{1, 2, 3, 3, 3, 4, 5, 5, 6, 7, 8}
	if got := drain(t, h); !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}
