// SPDX-License-Identifier: MIT

// Package narray: sentinel error set. All public operations return these
// sentinels (optionally wrapped with fmt.Errorf("...: %w", ErrX) for
// context) and tests match them via errors.Is.

package narray

import "errors"

var (
	// ErrBadShape is returned when a requested shape is invalid
	// (a negative dimension size).
	ErrBadShape = errors.New("narray: invalid shape")

	// ErrLength is returned by New when the data length does not equal
	// the product of the shape's dimensions.
	ErrLength = errors.New("narray: data length does not match shape")

	// ErrBroadcast indicates two shapes cannot be reconciled under
	// right-aligned size-1 broadcasting, or that a BroadcastTo target
	// is not a valid superset of the source shape.
	ErrBroadcast = errors.New("narray: shapes are not broadcast-compatible")

	// ErrIndex indicates an At index of the wrong arity or out of bounds.
	ErrIndex = errors.New("narray: index out of range")

	// ErrAxis indicates a reduction over more leading dimensions than
	// the array has.
	ErrAxis = errors.New("narray: axis count out of range")
)
