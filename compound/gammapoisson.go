// SPDX-License-Identifier: MIT

// Package compound: GammaPoisson — Poisson counts whose event rate is
// Gamma-distributed. Equivalently a Negative Binomial with
// totalCount = concentration and probs = rate/(1+rate).
//
// Closed-form marginal, for k = value, α = concentration, r = rate:
//
//	−ln B(α, k+1) − ln(α+k) + α·ln r − (α+k)·ln(1+r)
//
// Conjugate posterior after m independent observation batches summing
// to Σk:
//
//	Gamma(α + Σk, r + m)

package compound

import (
	"fmt"
	"math"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/mathext"

	"github.com/katalvlaran/conjugate/distrib"
	"github.com/katalvlaran/conjugate/narray"
)

// gammaPoissonParams is the pre-expand parameter snapshot, shared by
// reference across Expand-derived copies and never mutated.
type gammaPoissonParams struct {
	concentration *narray.Array
	rate          *narray.Array
}

// GammaPoisson is a batch of Gamma-Poisson compound distributions on
// the non-negative integers. Unlike BetaBinomial there is no extra
// tracked parameter: the Gamma prior carries everything.
type GammaPoisson struct {
	prior      *distrib.Gamma
	unexpanded *gammaPoissonParams
	validate   bool
}

// NewGammaPoisson broadcasts the two parameters to a common batch
// shape, builds the owned Gamma prior, and snapshots the pre-expand
// parameters. Incompatible shapes fail with narray.ErrBroadcast; under
// WithValidation, non-positive parameters fail with distrib.ErrParam.
func NewGammaPoisson(concentration, rate *narray.Array, opts ...Option) (*GammaPoisson, error) {
	o := gatherOptions(opts...)
	if concentration == nil || rate == nil {
		return nil, fmt.Errorf("gammapoisson: %w", ErrNilParam)
	}
	prior, err := distrib.NewGamma(concentration, rate, distribOpts(o.validate)...)
	if err != nil {
		return nil, fmt.Errorf("gammapoisson: %w", err)
	}
	return &GammaPoisson{
		prior: prior,
		unexpanded: &gammaPoissonParams{
			concentration: prior.Concentration(),
			rate:          prior.Rate(),
		},
		validate: o.validate,
	}, nil
}

// Concentration proxies the shape parameter from the owned Gamma prior.
func (d *GammaPoisson) Concentration() *narray.Array { return d.prior.Concentration() }

// Rate proxies the rate parameter from the owned prior.
func (d *GammaPoisson) Rate() *narray.Array { return d.prior.Rate() }

// Prior returns the owned Gamma prior. Shared, read-only.
func (d *GammaPoisson) Prior() *distrib.Gamma { return d.prior }

// BatchShape returns the prior's batch shape.
func (d *GammaPoisson) BatchShape() narray.Shape { return d.prior.BatchShape() }

// Expand returns a new instance with an independently expanded prior;
// the unexpanded snapshot is carried over by reference. The expand
// contract is delegated to the prior.
func (d *GammaPoisson) Expand(shape narray.Shape) (*GammaPoisson, error) {
	prior, err := d.prior.Expand(shape)
	if err != nil {
		return nil, fmt.Errorf("gammapoisson: %w", err)
	}
	return &GammaPoisson{prior: prior, unexpanded: d.unexpanded, validate: d.validate}, nil
}

// Sample draws sampleShape + batchShape counts by ancestral sampling:
// rates from the Gamma prior, then Poisson counts at those rates.
func (d *GammaPoisson) Sample(src rand.Source, sampleShape narray.Shape) (*narray.Array, error) {
	rate, err := d.prior.Sample(src, sampleShape)
	if err != nil {
		return nil, fmt.Errorf("gammapoisson: sample: %w", err)
	}
	obs, err := distrib.NewPoisson(rate)
	if err != nil {
		return nil, fmt.Errorf("gammapoisson: sample: %w", err)
	}
	return obs.Sample(src, narray.Shape{})
}

// LogProb returns the closed-form marginal log-probability of value
// broadcast against the batch shape. Under WithValidation, fractional
// or negative values fail with ErrSupport; with validation off they
// propagate NaN/Inf unchanged.
func (d *GammaPoisson) LogProb(value *narray.Array) (*narray.Array, error) {
	if value == nil {
		return nil, fmt.Errorf("gammapoisson: log prob: %w", ErrNilParam)
	}
	if d.validate && !value.AllNonNegativeInt() {
		return nil, fmt.Errorf("gammapoisson: log prob: %w", ErrSupport)
	}
	return narray.ZipN(func(v []float64) float64 {
		k, a, r := v[0], v[1], v[2]
		return -mathext.Lbeta(a, k+1) - math.Log(a+k) +
			a*math.Log(r) - (a+k)*math.Log1p(r)
	}, value, d.prior.Concentration(), d.prior.Rate())
}

// Prob returns exp(LogProb).
func (d *GammaPoisson) Prob(value *narray.Array) (*narray.Array, error) {
	lp, err := d.LogProb(value)
	if err != nil {
		return nil, err
	}
	return narray.Exp(lp), nil
}

// Mean returns α/r, batch-shaped.
func (d *GammaPoisson) Mean() *narray.Array { return d.prior.Mean() }

// Variance returns α/r² · (1+r), batch-shaped.
func (d *GammaPoisson) Variance() *narray.Array {
	out, _ := narray.ZipN(func(v []float64) float64 {
		a, r := v[0], v[1]
		return a / (r * r) * (1 + r)
	}, d.prior.Concentration(), d.prior.Rate())
	return out
}

// PosteriorLatent computes the conjugate Gamma posterior over the
// latent rate given observed counts, against the unexpanded snapshot:
//
//	Gamma(α + Σobs, rate + m)
//
// with m the product of obs's collapsed leading dimensions.
func (d *GammaPoisson) PosteriorLatent(obs *narray.Array) (*distrib.Gamma, error) {
	u := d.unexpanded
	numObs, summed, err := reduceObs(obs, u.concentration.Shape())
	if err != nil {
		return nil, fmt.Errorf("gammapoisson: posterior: %w", err)
	}
	c, err := narray.Add(u.concentration, summed)
	if err != nil {
		return nil, fmt.Errorf("gammapoisson: posterior: %w", err)
	}
	r := narray.Shift(u.rate, numObs)
	post, err := distrib.NewGamma(c, r, distribOpts(d.validate)...)
	if err != nil {
		return nil, fmt.Errorf("gammapoisson: posterior: %w", err)
	}
	return post, nil
}

// String renders scalar batches with their parameter values and
// non-scalar batches with the batch shape.
func (d *GammaPoisson) String() string {
	if len(d.BatchShape()) == 0 {
		return fmt.Sprintf("GammaPoisson(concentration=%g, rate=%g)",
			d.Concentration().Item(), d.Rate().Item())
	}
	return fmt.Sprintf("GammaPoisson(batch=%v)", d.BatchShape())
}
