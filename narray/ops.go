// SPDX-License-Identifier: MIT

// Package narray: elementwise operations. Zip aligns its operands by
// broadcasting both to the common shape and applying f pairwise; Map
// applies f to every element. Convenience wrappers cover the arithmetic
// the distribution code uses on its hot paths.

package narray

import "math"

// Map applies f to every element of a, returning a new Array of the
// same shape.
// Complexity: O(size).
func Map(a *Array, f func(float64) float64) *Array {
	out := make([]float64, len(a.data))
	for i, v := range a.data {
		out[i] = f(v)
	}
	return &Array{shape: a.shape.Clone(), data: out}
}

// Zip applies f pairwise over a and b after broadcasting both to their
// common shape. Returns ErrBroadcast when the shapes cannot align.
// Complexity: O(result size).
func Zip(a, b *Array, f func(x, y float64) float64) (*Array, error) {
	shape, err := BroadcastShapes(a.shape, b.shape)
	if err != nil {
		return nil, err
	}
	// Index both operands through broadcast strides; neither is
	// materialized, only the result allocates.
	sa := broadcastStrides(a.shape, shape)
	sb := broadcastStrides(b.shape, shape)
	st := strides(shape)
	out := make([]float64, shape.Size())
	for flat := range out {
		ia, ib := 0, 0
		rem := flat
		for i := range shape {
			j := rem / st[i]
			rem %= st[i]
			ia += j * sa[i]
			ib += j * sb[i]
		}
		out[flat] = f(a.data[ia], b.data[ib])
	}
	return &Array{shape: shape, data: out}, nil
}

// ZipN generalizes Zip to any arity: all arrays are aligned to their
// common broadcast shape and f receives each aligned element tuple.
// The vals slice is reused between calls; f must not retain it.
// Complexity: O(result size · arity).
func ZipN(f func(vals []float64) float64, arrays ...*Array) (*Array, error) {
	shape := Shape{}
	var err error
	for _, a := range arrays {
		if shape, err = BroadcastShapes(shape, a.shape); err != nil {
			return nil, err
		}
	}
	bst := make([][]int, len(arrays))
	for i, a := range arrays {
		bst[i] = broadcastStrides(a.shape, shape)
	}
	st := strides(shape)
	out := make([]float64, shape.Size())
	vals := make([]float64, len(arrays))
	idx := make([]int, len(arrays))
	for flat := range out {
		for k := range idx {
			idx[k] = 0
		}
		rem := flat
		for i := range shape {
			j := rem / st[i]
			rem %= st[i]
			for k := range arrays {
				idx[k] += j * bst[k][i]
			}
		}
		for k, a := range arrays {
			vals[k] = a.data[idx[k]]
		}
		out[flat] = f(vals)
	}
	return &Array{shape: shape, data: out}, nil
}

// Add returns a + b elementwise with broadcasting.
func Add(a, b *Array) (*Array, error) {
	return Zip(a, b, func(x, y float64) float64 { return x + y })
}

// Sub returns a − b elementwise with broadcasting.
func Sub(a, b *Array) (*Array, error) {
	return Zip(a, b, func(x, y float64) float64 { return x - y })
}

// Mul returns a · b elementwise with broadcasting.
func Mul(a, b *Array) (*Array, error) {
	return Zip(a, b, func(x, y float64) float64 { return x * y })
}

// Div returns a / b elementwise with broadcasting. Division by zero
// follows IEEE-754 (±Inf, NaN); no error is raised.
func Div(a, b *Array) (*Array, error) {
	return Zip(a, b, func(x, y float64) float64 { return x / y })
}

// Scale returns c · a.
func Scale(a *Array, c float64) *Array {
	return Map(a, func(v float64) float64 { return c * v })
}

// Shift returns a + c.
func Shift(a *Array, c float64) *Array {
	return Map(a, func(v float64) float64 { return v + c })
}

// Log returns ln(a) elementwise. Non-positive inputs yield −Inf/NaN
// per math.Log.
func Log(a *Array) *Array { return Map(a, math.Log) }

// Log1p returns ln(1+a) elementwise, stable for small a.
func Log1p(a *Array) *Array { return Map(a, math.Log1p) }

// Exp returns e^a elementwise.
func Exp(a *Array) *Array { return Map(a, math.Exp) }
