// SPDX-License-Identifier: MIT

// Package compound: the Compound capability set and the shared
// observation-reduction helper behind the conjugate updates.

package compound

import (
	"fmt"

	"golang.org/x/exp/rand"

	"github.com/katalvlaran/conjugate/narray"
)

// Compound is the capability set both compound distributions expose.
// One level of interface over the concrete types; they additionally
// offer Expand, PosteriorLatent, and their parameter accessors, whose
// return types are concrete and therefore live off-interface.
type Compound interface {
	// BatchShape returns how many independent distribution instances
	// this value describes.
	BatchShape() narray.Shape

	// Sample draws sampleShape + batchShape counts by two-stage
	// ancestral sampling: a prior draw, then an observation draw.
	Sample(src rand.Source, sampleShape narray.Shape) (*narray.Array, error)

	// LogProb returns the closed-form marginal log-probability of
	// value broadcast against the batch shape.
	LogProb(value *narray.Array) (*narray.Array, error)

	// Prob returns exp(LogProb).
	Prob(value *narray.Array) (*narray.Array, error)

	// Mean returns the batch-shaped compound mean.
	Mean() *narray.Array

	// Variance returns the batch-shaped compound variance.
	Variance() *narray.Array
}

// Conformance pins: both compounds satisfy the capability set.
var (
	_ Compound = (*BetaBinomial)(nil)
	_ Compound = (*GammaPoisson)(nil)
)

// reduceObs collapses the leading (repeated-observation) dimensions of
// obs onto the unexpanded parameter batch shape: the trailing
// dimensions of obs must equal paramShape exactly, the leading ones
// are counted (their product, 1 when absent) and summed away.
// Returns (numObs, summedObs).
func reduceObs(obs *narray.Array, paramShape narray.Shape) (float64, *narray.Array, error) {
	if obs == nil {
		return 0, nil, ErrNilParam
	}
	obsShape := obs.Shape()
	lead := len(obsShape) - len(paramShape)
	if lead < 0 || !obsShape[lead:].Equal(paramShape) {
		return 0, nil, fmt.Errorf("%w: obs %v vs params %v",
			ErrObsShape, obsShape, paramShape)
	}
	numObs := float64(obsShape[:lead].Size())
	summed, err := obs.SumLeading(lead)
	if err != nil {
		return 0, nil, err
	}
	return numObs, summed, nil
}
