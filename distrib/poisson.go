// SPDX-License-Identifier: MIT

// Package distrib: the batched Poisson distribution, the observation
// model underneath GammaPoisson.

package distrib

import (
	"fmt"
	"math"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/katalvlaran/conjugate/narray"
)

// Poisson is a batch of Poisson(rate) distributions on the
// non-negative integers.
type Poisson struct {
	rate     *narray.Array
	validate bool
}

// NewPoisson wraps the rate array as a batched Poisson. Under
// WithValidation, non-positive rates fail with ErrParam.
func NewPoisson(rate *narray.Array, opts ...Option) (*Poisson, error) {
	o := gatherOptions(opts...)
	if rate == nil {
		return nil, fmt.Errorf("poisson: %w", ErrNilParam)
	}
	if o.validate && !rate.AllPositive() {
		return nil, fmt.Errorf("poisson: rate: %w", ErrParam)
	}
	return &Poisson{rate: rate.Clone(), validate: o.validate}, nil
}

// Rate returns the event rates, batch-shaped. Shared, read-only.
func (p *Poisson) Rate() *narray.Array { return p.rate }

// BatchShape returns the parameter shape.
func (p *Poisson) BatchShape() narray.Shape { return p.rate.Shape() }

// Sample draws sampleShape + batchShape counts, one distuv.Poisson
// draw per element.
func (p *Poisson) Sample(src rand.Source, sampleShape narray.Shape) (*narray.Array, error) {
	return sampleBatched(sampleShape, p.BatchShape(), func(i int) float64 {
		d := distuv.Poisson{Lambda: p.rate.FlatAt(i), Src: src}
		return d.Rand()
	})
}

// LogProb returns elementwise log-probabilities:
//
//	k·ln λ − λ − lnΓ(k+1)
//
// Under WithValidation, fractional or negative values fail with
// ErrSupport.
func (p *Poisson) LogProb(value *narray.Array) (*narray.Array, error) {
	if value == nil {
		return nil, fmt.Errorf("poisson: log prob: %w", ErrNilParam)
	}
	if p.validate && !value.AllNonNegativeInt() {
		return nil, fmt.Errorf("poisson: log prob: %w", ErrSupport)
	}
	return narray.ZipN(func(v []float64) float64 {
		k, l := v[0], v[1]
		lk, _ := math.Lgamma(k + 1)
		return k*math.Log(l) - l - lk
	}, value, p.rate)
}

// Mean returns λ, batch-shaped.
func (p *Poisson) Mean() *narray.Array { return p.rate.Clone() }

// Variance returns λ, batch-shaped.
func (p *Poisson) Variance() *narray.Array { return p.rate.Clone() }
