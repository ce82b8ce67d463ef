// SPDX-License-Identifier: MIT

// Package distrib: sentinel error set. Shape failures are reported with
// narray.ErrBroadcast wrapped for context, so callers can match either
// the narray sentinel or inspect the message.

package distrib

import "errors"

var (
	// ErrNilParam is returned when a required parameter array is nil.
	ErrNilParam = errors.New("distrib: nil parameter array")

	// ErrParam is returned under validation when a parameter violates
	// its domain (non-positive concentration or rate, negative or
	// fractional total count, probability outside [0, 1]).
	ErrParam = errors.New("distrib: parameter out of domain")

	// ErrSupport is returned by LogProb under validation when a value
	// lies outside the distribution's support.
	ErrSupport = errors.New("distrib: value outside support")
)
