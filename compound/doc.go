// SPDX-License-Identifier: MIT

// Package compound implements the two classic conjugate compound
// distributions for count data: BetaBinomial and GammaPoisson.
//
// 🚀 What is a compound distribution?
//
//	A distribution over an observable count whose generating parameter
//	is itself uncertain and drawn from a conjugate prior:
//	  • BetaBinomial — success probability ~ Beta(α, β), then
//	    count ~ Binomial(totalCount, probability)
//	  • GammaPoisson — event rate ~ Gamma(α, rate), then
//	    count ~ Poisson(event rate)
//	Because the priors are conjugate, the latent parameter integrates
//	out in closed form (log-beta/log-gamma identities) and the
//	posterior over the latent stays in the prior's family.
//
// ✨ What you get:
//   - LogProb — the exact marginal log-probability, numerically stable
//     through log-gamma (never raw factorials)
//   - Sample — two-stage ancestral draws (prior, then observation)
//   - Mean / Variance — analytic compound moments, batch-shaped
//   - PosteriorLatent — the closed-form conjugate update:
//     Beta(α+Σk, m·n+β−Σk) and Gamma(α+Σk, rate+m)
//   - EnumerateSupport — the finite {0..n} support (BetaBinomial only)
//   - Expand — broadcast a distribution into a larger batch while the
//     posterior update keeps counting observations against the
//     original, pre-expand parameter shapes
//
// ⚙️ Usage:
//
//	import (
//		"github.com/katalvlaran/conjugate/compound"
//		"github.com/katalvlaran/conjugate/narray"
//	)
//
//	bb, err := compound.NewBetaBinomial(
//		narray.Scalar(2), narray.Scalar(3), narray.Scalar(10))
//	lp, err := bb.LogProb(narray.Scalar(3))
//	post, err := bb.PosteriorLatent(narray.Scalar(3)) // Beta(5, 10)
//
// Expand semantics: Expand returns a new instance with an
// independently expanded prior, while the unexpanded parameter
// snapshot is shared by reference across all derived instances and is
// never mutated after construction. Concurrent reads are safe; there
// is nothing to lock.
//
// Validation is opt-in (WithValidation). When disabled, out-of-support
// values passed to LogProb propagate NaN/Inf through the underlying
// special functions instead of erroring — intentional, so dense
// inference loops never pay for checks they have already done.
package compound
