// SPDX-License-Identifier: MIT

// Package narray: reductions over leading dimensions. Collapsing the
// leftmost axes is how a batch of repeated independent observations is
// folded onto a parameter batch: the trailing dimensions stay aligned
// with the parameters, the leading ones are summed away.

package narray

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
)

// SumLeading sums over the leading n dimensions of a, returning an
// Array of shape a.Shape()[n:]. SumLeading(0) is a copy; summing all
// dimensions of a rank-r array yields a scalar. Returns ErrAxis when
// n is negative or exceeds the rank.
// Complexity: O(size).
func (a *Array) SumLeading(n int) (*Array, error) {
	if n < 0 || n > len(a.shape) {
		return nil, fmt.Errorf("%w: %d leading dims of rank %d",
			ErrAxis, n, len(a.shape))
	}
	if n == 0 {
		return a.Clone(), nil
	}
	rest := a.shape[n:].Clone()
	restSize := rest.Size()
	if restSize == a.Size() {
		// Leading dims are all size 1; the values are untouched.
		return &Array{shape: rest, data: a.Data()}, nil
	}
	out := make([]float64, restSize)
	for block := 0; block < a.Size(); block += restSize {
		floats.Add(out, a.data[block:block+restSize])
	}
	return &Array{shape: rest, data: out}, nil
}

// Sum returns the sum of all elements.
func (a *Array) Sum() float64 { return floats.Sum(a.data) }
