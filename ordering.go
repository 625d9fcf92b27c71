// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package heap

import "cmp"

// Ordering determines the relative priority of two heap elements. It is
// consulted by every sift operation: SiftsUp reports whether elt belongs
// above its parent, SiftsDown whether elt belongs below a child. A max
// ordering keeps the largest element at the root, a min ordering the
// smallest.
//
// Use Max, Min, MaxFunc, MinFunc, MaxByKey or MinByKey to obtain an
// Ordering rather than implementing the interface directly.
type Ordering[T any] interface {
	SiftsUp(elt, parent T) bool
	SiftsDown(elt, child T) bool
}

// selectUpper reports whether b, rather than a, should be the upper of
// the two when merging subtrees. Siblings that compare equal resolve to
// false, ie. the earlier child wins.
func selectUpper[T any](ord Ordering[T], a, b T) bool {
	return ord.SiftsUp(b, a)
}

type maxOrdering[T any] struct {
	cmp func(a, b T) int
}

func (o maxOrdering[T]) SiftsUp(elt, parent T) bool {
	return o.cmp(elt, parent) > 0
}

func (o maxOrdering[T]) SiftsDown(elt, child T) bool {
	return o.cmp(elt, child) < 0
}

type minOrdering[T any] struct {
	cmp func(a, b T) int
}

func (o minOrdering[T]) SiftsUp(elt, parent T) bool {
	return o.cmp(elt, parent) < 0
}

func (o minOrdering[T]) SiftsDown(elt, child T) bool {
	return o.cmp(elt, child) > 0
}

// Max returns an Ordering that keeps the largest element at the root,
// using the natural ordering of T.
func Max[T cmp.Ordered]() Ordering[T] {
	return maxOrdering[T]{cmp.Compare[T]}
}

// Min returns an Ordering that keeps the smallest element at the root,
// using the natural ordering of T.
func Min[T cmp.Ordered]() Ordering[T] {
	return minOrdering[T]{cmp.Compare[T]}
}

// MaxFunc returns a max Ordering using the supplied three-way comparison,
// which must return a negative number when a < b, zero when a == b and a
// positive number when a > b.
func MaxFunc[T any](cmp func(a, b T) int) Ordering[T] {
	return maxOrdering[T]{cmp}
}

// MinFunc is like MaxFunc but keeps the smallest element at the root.
func MinFunc[T any](cmp func(a, b T) int) Ordering[T] {
	return minOrdering[T]{cmp}
}

// MaxByKey returns a max Ordering that compares elements by the supplied
// key projection. Elements whose keys compare equal are interchangeable.
func MaxByKey[T any, K cmp.Ordered](key func(T) K) Ordering[T] {
	return maxOrdering[T]{func(a, b T) int {
		return cmp.Compare(key(a), key(b))
	}}
}

// MinByKey is like MaxByKey but keeps the smallest key at the root.
func MinByKey[T any, K cmp.Ordered](key func(T) K) Ordering[T] {
	return minOrdering[T]{func(a, b T) int {
		return cmp.Compare(key(a), key(b))
	}}
}
