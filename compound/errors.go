// SPDX-License-Identifier: MIT

// Package compound: sentinel error set. Shape failures propagate
// narray.ErrBroadcast and parameter-domain failures propagate
// distrib.ErrParam, both wrapped with context; the sentinels below
// cover the conditions this package detects itself.

package compound

import "errors"

var (
	// ErrNilParam is returned when a required parameter or value array
	// is nil.
	ErrNilParam = errors.New("compound: nil parameter array")

	// ErrSupport is returned by LogProb under validation when a value
	// lies outside the distribution's support (fractional, negative,
	// or beyond the total count).
	ErrSupport = errors.New("compound: value outside support")

	// ErrObsShape is returned by PosteriorLatent when the observation
	// array's trailing dimensions do not equal the unexpanded
	// parameter batch shape.
	ErrObsShape = errors.New("compound: observation shape does not align with unexpanded parameters")

	// ErrInhomogeneous is returned by EnumerateSupport when the batch
	// carries unequal total counts: the finite support is then not
	// well defined.
	ErrInhomogeneous = errors.New("compound: inhomogeneous total count not supported by enumerate support")
)
