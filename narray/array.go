// SPDX-License-Identifier: MIT

// Package narray: the Array value type — flat float64 storage plus a
// Shape. Arrays are immutable by convention: constructors copy their
// inputs and every operation allocates its result.

package narray

import (
	"fmt"
	"math"
)

// Array is a dense N-dimensional float64 array in row-major order.
type Array struct {
	shape Shape
	data  []float64
}

// New builds an Array of the given shape from data (copied).
// Returns ErrBadShape for negative dimensions and ErrLength when
// len(data) != shape.Size().
// Complexity: O(len(data)).
func New(shape Shape, data []float64) (*Array, error) {
	if err := shape.validate(); err != nil {
		return nil, err
	}
	if len(data) != shape.Size() {
		return nil, fmt.Errorf("%w: shape %v wants %d values, got %d",
			ErrLength, shape, shape.Size(), len(data))
	}
	d := make([]float64, len(data))
	copy(d, data)
	return &Array{shape: shape.Clone(), data: d}, nil
}

// Scalar builds a rank-0 Array holding a single value.
func Scalar(v float64) *Array {
	return &Array{shape: Shape{}, data: []float64{v}}
}

// FromSlice builds a rank-1 Array from v (copied).
func FromSlice(v []float64) *Array {
	d := make([]float64, len(v))
	copy(d, v)
	return &Array{shape: Shape{len(v)}, data: d}
}

// Full builds an Array of the given shape with every element set to v.
func Full(shape Shape, v float64) (*Array, error) {
	if err := shape.validate(); err != nil {
		return nil, err
	}
	d := make([]float64, shape.Size())
	for i := range d {
		d[i] = v
	}
	return &Array{shape: shape.Clone(), data: d}, nil
}

// Arange builds the rank-1 Array [0, 1, …, n-1].
func Arange(n int) *Array {
	d := make([]float64, n)
	for i := range d {
		d[i] = float64(i)
	}
	return &Array{shape: Shape{n}, data: d}
}

// Shape returns a copy of the array's shape.
func (a *Array) Shape() Shape { return a.shape.Clone() }

// Rank returns the number of dimensions.
func (a *Array) Rank() int { return len(a.shape) }

// Size returns the total element count.
func (a *Array) Size() int { return len(a.data) }

// Data returns a copy of the flat row-major contents.
func (a *Array) Data() []float64 {
	d := make([]float64, len(a.data))
	copy(d, a.data)
	return d
}

// Clone returns an independent deep copy.
func (a *Array) Clone() *Array {
	return &Array{shape: a.shape.Clone(), data: a.Data()}
}

// FlatAt returns the element at flat row-major position i without
// copying. It panics when i is out of range, mirroring slice indexing —
// a programmer error, since flat positions come from Size().
func (a *Array) FlatAt(i int) float64 { return a.data[i] }

// At returns the element at the given multi-index. A scalar takes no
// indices. Returns ErrIndex on wrong arity or out-of-bounds positions.
// Complexity: O(rank).
func (a *Array) At(idx ...int) (float64, error) {
	if len(idx) != len(a.shape) {
		return 0, fmt.Errorf("%w: got %d indices for rank %d",
			ErrIndex, len(idx), len(a.shape))
	}
	flat := 0
	st := strides(a.shape)
	for i, j := range idx {
		if j < 0 || j >= a.shape[i] {
			return 0, fmt.Errorf("%w: index %d at axis %d, size %d",
				ErrIndex, j, i, a.shape[i])
		}
		flat += j * st[i]
	}
	return a.data[flat], nil
}

// Item returns the sole element of a single-element array. It panics
// if the array holds more than one element — a programmer error, since
// callers reach for Item only on scalars they constructed themselves.
func (a *Array) Item() float64 {
	if len(a.data) != 1 {
		panic(fmt.Sprintf("narray: Item on array of size %d", len(a.data)))
	}
	return a.data[0]
}

// BroadcastTo materializes a into the target shape. The target must be
// a valid broadcast superset: at least a's rank, and every
// right-aligned dimension pair equal or 1 on a's side.
// Returns ErrBroadcast otherwise.
// Complexity: O(target size).
func (a *Array) BroadcastTo(target Shape) (*Array, error) {
	if err := target.validate(); err != nil {
		return nil, err
	}
	if a.shape.Equal(target) {
		return a.Clone(), nil
	}
	if !expandable(a.shape, target) {
		return nil, fmt.Errorf("%w: cannot expand %v to %v",
			ErrBroadcast, a.shape, target)
	}
	out := make([]float64, target.Size())
	srcSt := broadcastStrides(a.shape, target)
	dstSt := strides(target)
	for flat := range out {
		src := 0
		rem := flat
		for i := range target {
			j := rem / dstSt[i]
			rem %= dstSt[i]
			src += j * srcSt[i]
		}
		out[flat] = a.data[src]
	}
	return &Array{shape: target.Clone(), data: out}, nil
}

// broadcastStrides maps target-shape indices onto src's flat storage:
// stride 0 on every dimension src lacks or holds with size 1.
func broadcastStrides(src, target Shape) []int {
	srcSt := strides(src)
	out := make([]int, len(target))
	off := len(target) - len(src)
	for i := range target {
		if i < off || src[i-off] == 1 {
			out[i] = 0
		} else {
			out[i] = srcSt[i-off]
		}
	}
	return out
}

// Reshape returns a new Array with the same elements and the given
// shape. Returns ErrLength when the target holds a different element
// count, ErrBadShape for negative dimensions.
// Complexity: O(size).
func (a *Array) Reshape(shape Shape) (*Array, error) {
	if err := shape.validate(); err != nil {
		return nil, err
	}
	if shape.Size() != len(a.data) {
		return nil, fmt.Errorf("%w: reshape %v to %v",
			ErrLength, a.shape, shape)
	}
	return &Array{shape: shape.Clone(), data: a.Data()}, nil
}

// Min returns the smallest element. NaN-poisoning follows math.Min
// semantics. Panics on an empty array (not constructible via New).
func (a *Array) Min() float64 {
	m := a.data[0]
	for _, v := range a.data[1:] {
		m = math.Min(m, v)
	}
	return m
}

// Max returns the largest element.
func (a *Array) Max() float64 {
	m := a.data[0]
	for _, v := range a.data[1:] {
		m = math.Max(m, v)
	}
	return m
}

// AllPositive reports whether every element is strictly positive and
// finite.
func (a *Array) AllPositive() bool {
	for _, v := range a.data {
		if !(v > 0) || math.IsInf(v, 1) {
			return false
		}
	}
	return true
}

// AllInteger reports whether every element is a whole number.
func (a *Array) AllInteger() bool {
	for _, v := range a.data {
		if v != math.Trunc(v) || math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

// AllNonNegativeInt reports whether every element is a whole number ≥ 0.
func (a *Array) AllNonNegativeInt() bool {
	return a.AllInteger() && a.Min() >= 0
}

// InRange reports whether every element lies in [lo, hi].
func (a *Array) InRange(lo, hi float64) bool {
	for _, v := range a.data {
		if v < lo || v > hi || math.IsNaN(v) {
			return false
		}
	}
	return true
}
