// SPDX-License-Identifier: MIT

// Package conjugate is a batched, broadcasting-aware toolkit for
// conjugate Bayesian count models: compound distributions whose latent
// parameter integrates out in closed form.
//
// 🚀 What is conjugate?
//
//	A small, numerically careful library that brings together:
//		• narray  — N-dimensional float64 arrays with NumPy-style
//		  broadcasting and leading-dimension reductions
//		• distrib — batched Beta, Gamma, Binomial, and Poisson
//		  primitives over narray, sampling through gonum's distuv
//		• compound — BetaBinomial and GammaPoisson: exact marginal
//		  log-probabilities, analytic moments, ancestral sampling,
//		  closed-form conjugate posteriors, and finite-support
//		  enumeration
//
// ✨ Why choose conjugate?
//
//   - Exact math — marginals via log-beta/log-gamma identities, never
//     factorials or numeric integration
//   - Batch-native — every parameter may be a scalar or an array;
//     shapes align by broadcasting once at construction
//   - Expand-safe — posterior updates keep counting observations
//     against original parameter shapes even after batch expansion
//   - Pure values — no global state; instances are safe for
//     concurrent reads
//
// Quick example:
//
//	bb, _ := compound.NewBetaBinomial(
//		narray.Scalar(2), narray.Scalar(3), narray.Scalar(10))
//	post, _ := bb.PosteriorLatent(narray.Scalar(3))
//	// post is Beta(5, 10): the exact conjugate update.
//
// See each package's doc.go for the full contract.
package conjugate
