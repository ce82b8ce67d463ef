// SPDX-License-Identifier: MIT

// Package distrib provides batched primitive probability distributions
// over narray arrays: Beta, Gamma, Binomial, and Poisson.
//
// 🚀 What is distrib?
//
//	Each distribution is a small value type holding its parameters as
//	broadcast-aligned arrays, one logical distribution per batch
//	element:
//	  • Beta     — Beta(concentration1, concentration0) on (0, 1)
//	  • Gamma    — Gamma(concentration, rate) on (0, ∞)
//	  • Binomial — Binomial(totalCount, probs) on {0..n}
//	  • Poisson  — Poisson(rate) on {0, 1, 2, …}
//
// ✨ Batch semantics:
//   - Construction broadcasts all parameters to a common batch shape;
//     incompatible parameter shapes fail with narray.ErrBroadcast.
//   - Sample(src, sampleShape) returns sampleShape + batchShape draws;
//     per-element sampling delegates to gonum's distuv with the given
//     rand source (nil means distuv's global source).
//   - LogProb(value) broadcasts value against the batch shape and
//     returns log-densities of the broadcast shape, computed in closed
//     form (log-gamma/log-beta identities, never raw factorials).
//   - Mean/Variance return batch-shaped arrays of analytic moments.
//   - Expand(shape) yields a new instance with parameters broadcast to
//     a larger batch shape; the original is untouched.
//
// ⚙️ Usage:
//
//	import (
//		"golang.org/x/exp/rand"
//
//		"github.com/katalvlaran/conjugate/distrib"
//		"github.com/katalvlaran/conjugate/narray"
//	)
//
//	beta, err := distrib.NewBeta(narray.Scalar(2), narray.Scalar(3))
//	draw, err := beta.Sample(rand.NewSource(1), narray.Shape{1000})
//
// Validation is opt-in (WithValidation): when enabled, constructors
// reject out-of-domain parameters and LogProb rejects out-of-support
// values; when disabled, bad inputs propagate NaN/Inf through the
// underlying special functions instead of erroring.
package distrib
