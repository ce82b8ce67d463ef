// SPDX-License-Identifier: MIT

// Package compound: BetaBinomial — Binomial counts whose success
// probability is Beta-distributed.
//
// Closed-form marginal (the Beta-Binomial pmf), for n = totalCount,
// k = value, α = concentration1, β = concentration0:
//
//	ln C(n, k) + ln B(k+α, n−k+β) − ln B(β, α)
//
// Conjugate posterior after
// m independent observation batches summing to Σk:
//
//	Beta(α + Σk, m·n + β − Σk)

package compound

import (
	"fmt"
	"math"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/mathext"

	"github.com/katalvlaran/conjugate/distrib"
	"github.com/katalvlaran/conjugate/narray"
)

// DefaultTotalCount is the trial count assumed when the constructor
// receives a nil totalCount: a single Bernoulli trial.
const DefaultTotalCount = 1

// betaBinomialParams is the pre-expand parameter snapshot. One
// instance is allocated at construction and shared by reference across
// every Expand-derived copy; it is never mutated afterwards, so
// concurrent reads need no locking.
type betaBinomialParams struct {
	concentration1 *narray.Array
	concentration0 *narray.Array
	totalCount     *narray.Array
}

// BetaBinomial is a batch of Beta-Binomial compound distributions on
// the integers {0, …, totalCount}.
type BetaBinomial struct {
	prior      *distrib.Beta
	totalCount *narray.Array
	unexpanded *betaBinomialParams
	validate   bool
}

// NewBetaBinomial broadcasts the three parameters to a common batch
// shape, builds the owned Beta prior, and snapshots the pre-expand
// parameters for later conjugate updates. A nil totalCount defaults to
// DefaultTotalCount. Incompatible shapes fail with
// narray.ErrBroadcast; under WithValidation, non-positive
// concentrations and a fractional or negative total count fail with
// distrib.ErrParam.
func NewBetaBinomial(concentration1, concentration0, totalCount *narray.Array, opts ...Option) (*BetaBinomial, error) {
	o := gatherOptions(opts...)
	if concentration1 == nil || concentration0 == nil {
		return nil, fmt.Errorf("betabinomial: %w", ErrNilParam)
	}
	if totalCount == nil {
		totalCount = narray.Scalar(DefaultTotalCount)
	}
	shape, err := narray.BroadcastAll(
		concentration1.Shape(), concentration0.Shape(), totalCount.Shape())
	if err != nil {
		return nil, fmt.Errorf("betabinomial: %w", err)
	}
	c1, err := concentration1.BroadcastTo(shape)
	if err != nil {
		return nil, fmt.Errorf("betabinomial: %w", err)
	}
	c0, err := concentration0.BroadcastTo(shape)
	if err != nil {
		return nil, fmt.Errorf("betabinomial: %w", err)
	}
	n, err := totalCount.BroadcastTo(shape)
	if err != nil {
		return nil, fmt.Errorf("betabinomial: %w", err)
	}
	if o.validate && !n.AllNonNegativeInt() {
		return nil, fmt.Errorf("betabinomial: total count: %w", distrib.ErrParam)
	}
	prior, err := distrib.NewBeta(c1, c0, distribOpts(o.validate)...)
	if err != nil {
		return nil, fmt.Errorf("betabinomial: %w", err)
	}
	return &BetaBinomial{
		prior:      prior,
		totalCount: n,
		unexpanded: &betaBinomialParams{concentration1: c1, concentration0: c0, totalCount: n},
		validate:   o.validate,
	}, nil
}

// Concentration1 proxies the first concentration from the owned Beta
// prior; there is no independent storage to drift.
func (d *BetaBinomial) Concentration1() *narray.Array { return d.prior.Concentration1() }

// Concentration0 proxies the second concentration from the owned prior.
func (d *BetaBinomial) Concentration0() *narray.Array { return d.prior.Concentration0() }

// TotalCount returns the trial counts, batch-shaped. Shared, read-only.
func (d *BetaBinomial) TotalCount() *narray.Array { return d.totalCount }

// Prior returns the owned Beta prior. Shared, read-only.
func (d *BetaBinomial) Prior() *distrib.Beta { return d.prior }

// BatchShape returns the prior's batch shape.
func (d *BetaBinomial) BatchShape() narray.Shape { return d.prior.BatchShape() }

// Expand returns a new instance whose prior is expanded to the target
// batch shape and whose totalCount is re-broadcast to match. The
// unexpanded parameter snapshot is carried over by reference, so
// posterior updates on the expanded instance still count observations
// against the original shapes. The expand contract (target must be a
// broadcast superset) is delegated to the prior.
func (d *BetaBinomial) Expand(shape narray.Shape) (*BetaBinomial, error) {
	prior, err := d.prior.Expand(shape)
	if err != nil {
		return nil, fmt.Errorf("betabinomial: %w", err)
	}
	n, err := d.totalCount.BroadcastTo(prior.BatchShape())
	if err != nil {
		return nil, fmt.Errorf("betabinomial: expand: %w", err)
	}
	return &BetaBinomial{
		prior:      prior,
		totalCount: n,
		unexpanded: d.unexpanded,
		validate:   d.validate,
	}, nil
}

// Sample draws sampleShape + batchShape counts by ancestral sampling:
// success probabilities from the Beta prior, then Binomial counts at
// those probabilities. No randomness is shared between the two stages
// beyond the drawn probabilities themselves.
func (d *BetaBinomial) Sample(src rand.Source, sampleShape narray.Shape) (*narray.Array, error) {
	probs, err := d.prior.Sample(src, sampleShape)
	if err != nil {
		return nil, fmt.Errorf("betabinomial: sample: %w", err)
	}
	obs, err := distrib.NewBinomial(d.totalCount, probs)
	if err != nil {
		return nil, fmt.Errorf("betabinomial: sample: %w", err)
	}
	return obs.Sample(src, narray.Shape{})
}

// LogProb returns the closed-form marginal log-probability of value
// broadcast against the batch shape. Under WithValidation, fractional,
// negative, or above-count values fail with ErrSupport; with
// validation off they propagate NaN/Inf through log-gamma unchanged.
func (d *BetaBinomial) LogProb(value *narray.Array) (*narray.Array, error) {
	if value == nil {
		return nil, fmt.Errorf("betabinomial: log prob: %w", ErrNilParam)
	}
	if d.validate {
		if err := d.validateSupport(value); err != nil {
			return nil, err
		}
	}
	return narray.ZipN(func(v []float64) float64 {
		k, n, a, b := v[0], v[1], v[2], v[3]
		return logChoose(n, k) + mathext.Lbeta(k+a, n-k+b) - mathext.Lbeta(b, a)
	}, value, d.totalCount, d.prior.Concentration1(), d.prior.Concentration0())
}

// Prob returns exp(LogProb).
func (d *BetaBinomial) Prob(value *narray.Array) (*narray.Array, error) {
	lp, err := d.LogProb(value)
	if err != nil {
		return nil, err
	}
	return narray.Exp(lp), nil
}

// Mean returns totalCount · α/(α+β), batch-shaped.
func (d *BetaBinomial) Mean() *narray.Array {
	out, _ := narray.Mul(d.prior.Mean(), d.totalCount)
	return out
}

// Variance returns betaVariance · n · (α + β + n), batch-shaped.
func (d *BetaBinomial) Variance() *narray.Array {
	out, _ := narray.ZipN(func(v []float64) float64 {
		bv, n, a, b := v[0], v[1], v[2], v[3]
		return bv * n * (a + b + n)
	}, d.prior.Variance(), d.totalCount, d.prior.Concentration1(), d.prior.Concentration0())
	return out
}

// PosteriorLatent computes the conjugate Beta posterior over the
// latent success probability given observed counts. The trailing
// dimensions of obs must equal the unexpanded parameter batch shape
// (ErrObsShape otherwise); leading dimensions are treated as m
// repeated independent observations and collapsed:
//
//	Beta(α + Σobs, m·totalCount + β − Σobs)
//
// The update reads the unexpanded snapshot, so expanding the
// distribution first changes nothing about the result.
func (d *BetaBinomial) PosteriorLatent(obs *narray.Array) (*distrib.Beta, error) {
	u := d.unexpanded
	numObs, summed, err := reduceObs(obs, u.concentration1.Shape())
	if err != nil {
		return nil, fmt.Errorf("betabinomial: posterior: %w", err)
	}
	c1, err := narray.Add(u.concentration1, summed)
	if err != nil {
		return nil, fmt.Errorf("betabinomial: posterior: %w", err)
	}
	c0, err := narray.ZipN(func(v []float64) float64 {
		n, b, s := v[0], v[1], v[2]
		return numObs*n + b - s
	}, u.totalCount, u.concentration0, summed)
	if err != nil {
		return nil, fmt.Errorf("betabinomial: posterior: %w", err)
	}
	post, err := distrib.NewBeta(c1, c0, distribOpts(d.validate)...)
	if err != nil {
		return nil, fmt.Errorf("betabinomial: posterior: %w", err)
	}
	return post, nil
}

// EnumerateSupport returns the distribution's finite support
// {0, …, totalCount} as an ascending array with a new leading
// dimension of size totalCount+1. With expand set, the result is
// broadcast across the batch shape as trailing dimensions. All batch
// entries must carry the same total count; ErrInhomogeneous otherwise.
func (d *BetaBinomial) EnumerateSupport(expand bool) (*narray.Array, error) {
	n := d.totalCount.Max()
	if d.totalCount.Min() != n {
		return nil, fmt.Errorf("betabinomial: %w", ErrInhomogeneous)
	}
	batch := d.BatchShape()
	values := narray.Arange(int(n) + 1)
	shape := append(narray.Shape{int(n) + 1}, ones(len(batch))...)
	values, err := values.Reshape(shape)
	if err != nil {
		return nil, fmt.Errorf("betabinomial: enumerate support: %w", err)
	}
	if expand {
		target := append(narray.Shape{int(n) + 1}, batch...)
		if values, err = values.BroadcastTo(target); err != nil {
			return nil, fmt.Errorf("betabinomial: enumerate support: %w", err)
		}
	}
	return values, nil
}

// String renders scalar batches with their parameter values and
// non-scalar batches with the batch shape.
func (d *BetaBinomial) String() string {
	if len(d.BatchShape()) == 0 {
		return fmt.Sprintf("BetaBinomial(concentration1=%g, concentration0=%g, totalCount=%g)",
			d.Concentration1().Item(), d.Concentration0().Item(), d.totalCount.Item())
	}
	return fmt.Sprintf("BetaBinomial(batch=%v)", d.BatchShape())
}

// validateSupport checks value against {0..totalCount} elementwise.
func (d *BetaBinomial) validateSupport(value *narray.Array) error {
	if !value.AllNonNegativeInt() {
		return fmt.Errorf("betabinomial: log prob: %w", ErrSupport)
	}
	over, err := narray.Zip(value, d.totalCount, func(k, n float64) float64 {
		if k > n {
			return 1
		}
		return 0
	})
	if err != nil {
		return fmt.Errorf("betabinomial: log prob: %w", err)
	}
	if over.Max() > 0 {
		return fmt.Errorf("betabinomial: log prob: value exceeds total count: %w", ErrSupport)
	}
	return nil
}

// logChoose computes ln C(n, k) through log-gamma.
func logChoose(n, k float64) float64 {
	ln, _ := math.Lgamma(n + 1)
	lk, _ := math.Lgamma(k + 1)
	lnk, _ := math.Lgamma(n - k + 1)
	return ln - lk - lnk
}

// ones returns a shape of n size-1 dimensions.
func ones(n int) narray.Shape {
	s := make(narray.Shape, n)
	for i := range s {
		s[i] = 1
	}
	return s
}
