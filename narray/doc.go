// SPDX-License-Identifier: MIT

// Package narray provides batched N-dimensional float64 arrays with
// NumPy-style broadcasting, the shape substrate for the batched
// distributions in distrib and compound.
//
// 🚀 What is narray?
//
//	A small, dependency-light dense array layer purpose-built for
//	batched probability computations:
//	  • Shape — ordered dimension sizes, left-to-right
//	  • Array — flat float64 storage plus a Shape
//	  • Broadcasting — right-aligned size-1 dimension expansion
//	  • Elementwise Map/Zip with implicit broadcast
//	  • Leading-dimension reductions (SumLeading) for collapsing
//	    repeated independent observations onto a parameter batch
//
// ✨ Design rules:
//   - Arrays are immutable by convention: every operation returns a
//     fresh Array; no method mutates a receiver's data.
//   - A scalar is an Array with the empty Shape{} and exactly one
//     element; it broadcasts against anything.
//   - Broadcasting is materialized (the expanded data is copied), so
//     results never alias their inputs.
//   - All user-triggered failures return sentinel errors (errors.go);
//     panics are reserved for programmer errors in private helpers.
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/conjugate/narray"
//
//	alpha := narray.FromSlice([]float64{2, 3, 4}) // shape (3,)
//	n := narray.Scalar(10)                        // shape ()
//	sum, err := narray.Add(alpha, n)              // shape (3,)
//
// Complexity: every elementwise operation and reduction is O(result
// size); shape arithmetic is O(number of dimensions).
package narray
