// SPDX-License-Identifier: MIT

// Package distrib: the batched Binomial distribution, the observation
// model underneath BetaBinomial.

package distrib

import (
	"fmt"
	"math"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/katalvlaran/conjugate/narray"
)

// Binomial is a batch of Binomial(totalCount, probs) distributions on
// the integers {0, …, totalCount}.
type Binomial struct {
	totalCount *narray.Array
	probs      *narray.Array
	validate   bool
}

// NewBinomial broadcasts totalCount and probs to a common batch shape.
// Under WithValidation, a fractional or negative total count and a
// probability outside [0, 1] fail with ErrParam.
func NewBinomial(totalCount, probs *narray.Array, opts ...Option) (*Binomial, error) {
	o := gatherOptions(opts...)
	params, _, err := broadcastParams(totalCount, probs)
	if err != nil {
		return nil, fmt.Errorf("binomial: %w", err)
	}
	if o.validate {
		if !params[0].AllNonNegativeInt() {
			return nil, fmt.Errorf("binomial: total count: %w", ErrParam)
		}
		if !params[1].InRange(0, 1) {
			return nil, fmt.Errorf("binomial: probs: %w", ErrParam)
		}
	}
	return &Binomial{totalCount: params[0], probs: params[1], validate: o.validate}, nil
}

// TotalCount returns the trial counts, batch-shaped. Shared, read-only.
func (b *Binomial) TotalCount() *narray.Array { return b.totalCount }

// Probs returns the success probabilities, batch-shaped.
func (b *Binomial) Probs() *narray.Array { return b.probs }

// BatchShape returns the broadcast parameter shape.
func (b *Binomial) BatchShape() narray.Shape { return b.totalCount.Shape() }

// Sample draws sampleShape + batchShape counts, one distuv.Binomial
// draw per element.
func (b *Binomial) Sample(src rand.Source, sampleShape narray.Shape) (*narray.Array, error) {
	return sampleBatched(sampleShape, b.BatchShape(), func(i int) float64 {
		d := distuv.Binomial{N: b.totalCount.FlatAt(i), P: b.probs.FlatAt(i), Src: src}
		return d.Rand()
	})
}

// LogProb returns elementwise log-probabilities:
//
//	ln C(n, k) + k·ln p + (n−k)·ln(1−p)
//
// with ln C(n, k) computed through log-gamma. Under WithValidation,
// fractional, negative, or above-count values fail with ErrSupport.
func (b *Binomial) LogProb(value *narray.Array) (*narray.Array, error) {
	if value == nil {
		return nil, fmt.Errorf("binomial: log prob: %w", ErrNilParam)
	}
	if b.validate {
		if !value.AllNonNegativeInt() {
			return nil, fmt.Errorf("binomial: log prob: %w", ErrSupport)
		}
		over, err := narray.Zip(value, b.totalCount, func(k, n float64) float64 {
			if k > n {
				return 1
			}
			return 0
		})
		if err != nil {
			return nil, fmt.Errorf("binomial: log prob: %w", err)
		}
		if over.Max() > 0 {
			return nil, fmt.Errorf("binomial: log prob: value exceeds total count: %w", ErrSupport)
		}
	}
	return narray.ZipN(func(v []float64) float64 {
		k, n, p := v[0], v[1], v[2]
		return logChoose(n, k) + k*math.Log(p) + (n-k)*math.Log1p(-p)
	}, value, b.totalCount, b.probs)
}

// Mean returns n·p, batch-shaped.
func (b *Binomial) Mean() *narray.Array {
	out, _ := narray.Mul(b.totalCount, b.probs)
	return out
}

// Variance returns n·p·(1−p), batch-shaped.
func (b *Binomial) Variance() *narray.Array {
	out, _ := narray.ZipN(func(v []float64) float64 {
		return v[0] * v[1] * (1 - v[1])
	}, b.totalCount, b.probs)
	return out
}

// logChoose computes ln C(n, k) = lnΓ(n+1) − lnΓ(k+1) − lnΓ(n−k+1).
// Out-of-range k yields NaN/Inf per math.Lgamma, never a panic.
func logChoose(n, k float64) float64 {
	ln, _ := math.Lgamma(n + 1)
	lk, _ := math.Lgamma(k + 1)
	lnk, _ := math.Lgamma(n - k + 1)
	return ln - lk - lnk
}
