// SPDX-License-Identifier: MIT

// Package distrib: the batched Beta distribution. Serves as the
// conjugate prior over a Binomial success probability; the compound
// package builds Beta posteriors out of these values.

package distrib

import (
	"fmt"
	"math"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/mathext"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/katalvlaran/conjugate/narray"
)

// Beta is a batch of Beta(concentration1, concentration0)
// distributions on the open interval (0, 1).
type Beta struct {
	concentration1 *narray.Array
	concentration0 *narray.Array
	validate       bool
}

// NewBeta broadcasts the two concentration arrays to a common batch
// shape and returns the batched distribution. Under WithValidation,
// non-positive concentrations fail with ErrParam.
func NewBeta(concentration1, concentration0 *narray.Array, opts ...Option) (*Beta, error) {
	o := gatherOptions(opts...)
	params, _, err := broadcastParams(concentration1, concentration0)
	if err != nil {
		return nil, fmt.Errorf("beta: %w", err)
	}
	if o.validate {
		if !params[0].AllPositive() {
			return nil, fmt.Errorf("beta: concentration1: %w", ErrParam)
		}
		if !params[1].AllPositive() {
			return nil, fmt.Errorf("beta: concentration0: %w", ErrParam)
		}
	}
	return &Beta{concentration1: params[0], concentration0: params[1], validate: o.validate}, nil
}

// Concentration1 returns the first (alpha) concentration, batch-shaped.
// The returned array is shared and must be treated as read-only.
func (b *Beta) Concentration1() *narray.Array { return b.concentration1 }

// Concentration0 returns the second (beta) concentration, batch-shaped.
func (b *Beta) Concentration0() *narray.Array { return b.concentration0 }

// BatchShape returns the broadcast parameter shape.
func (b *Beta) BatchShape() narray.Shape { return b.concentration1.Shape() }

// Validates reports whether support checks are enabled.
func (b *Beta) Validates() bool { return b.validate }

// Expand returns a new Beta whose parameters are broadcast to the
// target batch shape. Fails with narray.ErrBroadcast when the target
// is not a superset of the current batch shape.
func (b *Beta) Expand(shape narray.Shape) (*Beta, error) {
	c1, err := b.concentration1.BroadcastTo(shape)
	if err != nil {
		return nil, fmt.Errorf("beta: expand: %w", err)
	}
	c0, err := b.concentration0.BroadcastTo(shape)
	if err != nil {
		return nil, fmt.Errorf("beta: expand: %w", err)
	}
	return &Beta{concentration1: c1, concentration0: c0, validate: b.validate}, nil
}

// Sample draws sampleShape + batchShape values, one distuv.Beta draw
// per element.
func (b *Beta) Sample(src rand.Source, sampleShape narray.Shape) (*narray.Array, error) {
	return sampleBatched(sampleShape, b.BatchShape(), func(i int) float64 {
		d := distuv.Beta{Alpha: b.concentration1.FlatAt(i), Beta: b.concentration0.FlatAt(i), Src: src}
		return d.Rand()
	})
}

// LogProb returns elementwise log-densities:
//
//	(α−1)·ln v + (β−1)·ln(1−v) − lnB(α, β)
//
// Under WithValidation, values outside (0, 1) fail with ErrSupport;
// otherwise they propagate −Inf/NaN.
func (b *Beta) LogProb(value *narray.Array) (*narray.Array, error) {
	if value == nil {
		return nil, fmt.Errorf("beta: log prob: %w", ErrNilParam)
	}
	if b.validate && !openUnitInterval(value) {
		return nil, fmt.Errorf("beta: log prob: %w", ErrSupport)
	}
	return narray.ZipN(func(v []float64) float64 {
		x, a, c := v[0], v[1], v[2]
		return (a-1)*math.Log(x) + (c-1)*math.Log1p(-x) - mathext.Lbeta(a, c)
	}, value, b.concentration1, b.concentration0)
}

// Mean returns α/(α+β), batch-shaped.
func (b *Beta) Mean() *narray.Array {
	out, _ := narray.ZipN(func(v []float64) float64 {
		return v[0] / (v[0] + v[1])
	}, b.concentration1, b.concentration0)
	return out
}

// Variance returns αβ / ((α+β)²(α+β+1)), batch-shaped.
func (b *Beta) Variance() *narray.Array {
	out, _ := narray.ZipN(func(v []float64) float64 {
		s := v[0] + v[1]
		return v[0] * v[1] / (s * s * (s + 1))
	}, b.concentration1, b.concentration0)
	return out
}

// openUnitInterval reports whether every element lies strictly inside
// (0, 1).
func openUnitInterval(a *narray.Array) bool {
	for i, n := 0, a.Size(); i < n; i++ {
		v := a.FlatAt(i)
		if !(v > 0 && v < 1) {
			return false
		}
	}
	return true
}
