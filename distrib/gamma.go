// SPDX-License-Identifier: MIT

// Package distrib: the batched Gamma distribution, the conjugate prior
// over a Poisson event rate.

package distrib

import (
	"fmt"
	"math"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/katalvlaran/conjugate/narray"
)

// Gamma is a batch of Gamma(concentration, rate) distributions on
// (0, ∞), in the shape/rate parameterization.
type Gamma struct {
	concentration *narray.Array
	rate          *narray.Array
	validate      bool
}

// NewGamma broadcasts concentration and rate to a common batch shape.
// Under WithValidation, non-positive parameters fail with ErrParam.
func NewGamma(concentration, rate *narray.Array, opts ...Option) (*Gamma, error) {
	o := gatherOptions(opts...)
	params, _, err := broadcastParams(concentration, rate)
	if err != nil {
		return nil, fmt.Errorf("gamma: %w", err)
	}
	if o.validate {
		if !params[0].AllPositive() {
			return nil, fmt.Errorf("gamma: concentration: %w", ErrParam)
		}
		if !params[1].AllPositive() {
			return nil, fmt.Errorf("gamma: rate: %w", ErrParam)
		}
	}
	return &Gamma{concentration: params[0], rate: params[1], validate: o.validate}, nil
}

// Concentration returns the shape parameter, batch-shaped. Shared,
// read-only.
func (g *Gamma) Concentration() *narray.Array { return g.concentration }

// Rate returns the rate parameter, batch-shaped.
func (g *Gamma) Rate() *narray.Array { return g.rate }

// BatchShape returns the broadcast parameter shape.
func (g *Gamma) BatchShape() narray.Shape { return g.concentration.Shape() }

// Validates reports whether support checks are enabled.
func (g *Gamma) Validates() bool { return g.validate }

// Expand returns a new Gamma with parameters broadcast to the target
// batch shape.
func (g *Gamma) Expand(shape narray.Shape) (*Gamma, error) {
	c, err := g.concentration.BroadcastTo(shape)
	if err != nil {
		return nil, fmt.Errorf("gamma: expand: %w", err)
	}
	r, err := g.rate.BroadcastTo(shape)
	if err != nil {
		return nil, fmt.Errorf("gamma: expand: %w", err)
	}
	return &Gamma{concentration: c, rate: r, validate: g.validate}, nil
}

// Sample draws sampleShape + batchShape values, one distuv.Gamma draw
// per element. distuv's Beta field is the rate.
func (g *Gamma) Sample(src rand.Source, sampleShape narray.Shape) (*narray.Array, error) {
	return sampleBatched(sampleShape, g.BatchShape(), func(i int) float64 {
		d := distuv.Gamma{Alpha: g.concentration.FlatAt(i), Beta: g.rate.FlatAt(i), Src: src}
		return d.Rand()
	})
}

// LogProb returns elementwise log-densities:
//
//	α·ln β + (α−1)·ln v − β·v − lnΓ(α)
//
// Under WithValidation, non-positive values fail with ErrSupport.
func (g *Gamma) LogProb(value *narray.Array) (*narray.Array, error) {
	if value == nil {
		return nil, fmt.Errorf("gamma: log prob: %w", ErrNilParam)
	}
	if g.validate && !value.AllPositive() {
		return nil, fmt.Errorf("gamma: log prob: %w", ErrSupport)
	}
	return narray.ZipN(func(v []float64) float64 {
		x, a, r := v[0], v[1], v[2]
		lg, _ := math.Lgamma(a)
		return a*math.Log(r) + (a-1)*math.Log(x) - r*x - lg
	}, value, g.concentration, g.rate)
}

// Mean returns α/β, batch-shaped.
func (g *Gamma) Mean() *narray.Array {
	out, _ := narray.Div(g.concentration, g.rate)
	return out
}

// Variance returns α/β², batch-shaped.
func (g *Gamma) Variance() *narray.Array {
	out, _ := narray.ZipN(func(v []float64) float64 {
		return v[0] / (v[1] * v[1])
	}, g.concentration, g.rate)
	return out
}
