// SPDX-License-Identifier: MIT

// Package narray: the Shape type and broadcasting arithmetic.
// Broadcasting follows the usual right-aligned rule: two shapes are
// compatible when, scanning dimensions from the right, each pair of
// sizes is equal or one of them is 1. The broadcast result takes the
// larger size at every position and the longer rank overall.

package narray

import (
	"fmt"
	"strings"
)

// Shape is an ordered sequence of dimension sizes, left-to-right.
// The empty Shape{} denotes a scalar (rank 0, one element).
type Shape []int

// Size returns the total number of elements an array of this shape
// holds: the product of all dimension sizes (1 for a scalar).
// Complexity: O(rank).
func (s Shape) Size() int {
	n := 1
	for _, d := range s {
		n *= d
	}
	return n
}

// Rank returns the number of dimensions.
func (s Shape) Rank() int { return len(s) }

// Equal reports whether s and t have identical rank and sizes.
func (s Shape) Equal(t Shape) bool {
	if len(s) != len(t) {
		return false
	}
	for i := range s {
		if s[i] != t[i] {
			return false
		}
	}
	return true
}

// Clone returns an independent copy of s.
func (s Shape) Clone() Shape {
	if s == nil {
		return nil
	}
	out := make(Shape, len(s))
	copy(out, s)
	return out
}

// String renders the shape as "(d0, d1, …)".
func (s Shape) String() string {
	parts := make([]string, len(s))
	for i, d := range s {
		parts[i] = fmt.Sprintf("%d", d)
	}
	return "(" + strings.Join(parts, ", ") + ")"
}

// validate reports ErrBadShape for negative dimension sizes.
func (s Shape) validate() error {
	for _, d := range s {
		if d < 0 {
			return fmt.Errorf("%w: %v", ErrBadShape, s)
		}
	}
	return nil
}

// BroadcastShapes computes the broadcast result of two shapes.
// Returns ErrBroadcast when a right-aligned dimension pair disagrees
// and neither side is 1.
// Complexity: O(max rank).
func BroadcastShapes(a, b Shape) (Shape, error) {
	rank := len(a)
	if len(b) > rank {
		rank = len(b)
	}
	out := make(Shape, rank)
	for i := 1; i <= rank; i++ {
		da, db := 1, 1
		if i <= len(a) {
			da = a[len(a)-i]
		}
		if i <= len(b) {
			db = b[len(b)-i]
		}
		switch {
		case da == db, db == 1:
			out[rank-i] = da
		case da == 1:
			out[rank-i] = db
		default:
			return nil, fmt.Errorf("%w: %v vs %v", ErrBroadcast, a, b)
		}
	}
	return out, nil
}

// BroadcastAll folds BroadcastShapes over any number of shapes.
func BroadcastAll(shapes ...Shape) (Shape, error) {
	out := Shape{}
	var err error
	for _, s := range shapes {
		if out, err = BroadcastShapes(out, s); err != nil {
			return nil, err
		}
	}
	return out, nil
}

// expandable reports whether src can be broadcast into dst, i.e. dst
// has at least src's rank and every right-aligned pair is equal or the
// src side is 1. This is the one-directional check used by BroadcastTo:
// the target never shrinks.
func expandable(src, dst Shape) bool {
	if len(dst) < len(src) {
		return false
	}
	for i := 1; i <= len(src); i++ {
		ds, dd := src[len(src)-i], dst[len(dst)-i]
		if ds != dd && ds != 1 {
			return false
		}
	}
	return true
}

// strides returns the row-major stride vector of s.
func strides(s Shape) []int {
	st := make([]int, len(s))
	acc := 1
	for i := len(s) - 1; i >= 0; i-- {
		st[i] = acc
		acc *= s[i]
	}
	return st
}
