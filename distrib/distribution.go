// SPDX-License-Identifier: MIT

// Package distrib: the Distribution capability set and the private
// batched-evaluation helpers shared by the concrete types.

package distrib

import (
	"fmt"

	"golang.org/x/exp/rand"

	"github.com/katalvlaran/conjugate/narray"
)

// Distribution is the capability set every batched distribution in
// this module exposes. One level of interface, no deeper hierarchy:
// concrete types add their own parameter accessors and, where
// meaningful, Expand and support enumeration.
type Distribution interface {
	// BatchShape returns the broadcast result of all parameters: how
	// many independent distribution instances this value describes.
	BatchShape() narray.Shape

	// Sample draws sampleShape + batchShape values using src
	// (nil src falls back to the global source).
	Sample(src rand.Source, sampleShape narray.Shape) (*narray.Array, error)

	// LogProb returns elementwise log-densities of value broadcast
	// against the batch shape.
	LogProb(value *narray.Array) (*narray.Array, error)

	// Mean returns the batch-shaped analytic mean.
	Mean() *narray.Array

	// Variance returns the batch-shaped analytic variance.
	Variance() *narray.Array
}

// Conformance pins: every concrete type satisfies the capability set.
var (
	_ Distribution = (*Beta)(nil)
	_ Distribution = (*Gamma)(nil)
	_ Distribution = (*Binomial)(nil)
	_ Distribution = (*Poisson)(nil)
)

// sampleBatched draws one value per element of sampleShape+batchShape.
// gen receives the flat batch index of the element, so parameter
// lookups stay aligned while leading sample dimensions tile over the
// batch.
func sampleBatched(sampleShape, batchShape narray.Shape, gen func(batchIdx int) float64) (*narray.Array, error) {
	out := append(sampleShape.Clone(), batchShape...)
	batchSize := batchShape.Size()
	data := make([]float64, out.Size())
	for i := range data {
		data[i] = gen(i % batchSize)
	}
	a, err := narray.New(out, data)
	if err != nil {
		return nil, fmt.Errorf("distrib: sample shape: %w", err)
	}
	return a, nil
}

// broadcastParams aligns parameter arrays to their common batch shape
// at construction time, materializing each.
func broadcastParams(params ...*narray.Array) ([]*narray.Array, narray.Shape, error) {
	shape := narray.Shape{}
	var err error
	for _, p := range params {
		if p == nil {
			return nil, nil, ErrNilParam
		}
		if shape, err = narray.BroadcastShapes(shape, p.Shape()); err != nil {
			return nil, nil, err
		}
	}
	out := make([]*narray.Array, len(params))
	for i, p := range params {
		if out[i], err = p.BroadcastTo(shape); err != nil {
			return nil, nil, err
		}
	}
	return out, shape, nil
}
