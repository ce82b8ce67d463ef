// SPDX-License-Identifier: MIT

// Package compound: the shared log-beta primitive. Every closed-form
// marginal in this package routes through lnB; stability comes from
// log-gamma, never from evaluating beta or factorials directly.

package compound

import (
	"fmt"

	"gonum.org/v1/gonum/mathext"

	"github.com/katalvlaran/conjugate/narray"
)

// LogBeta computes ln B(x, y) = lnΓ(x) + lnΓ(y) − lnΓ(x+y)
// elementwise with broadcasting. The domain is x > 0, y > 0;
// non-positive inputs yield whatever the underlying log-gamma yields
// (±Inf or NaN), with no error raised.
// Complexity: O(result size).
func LogBeta(x, y *narray.Array) (*narray.Array, error) {
	if x == nil || y == nil {
		return nil, fmt.Errorf("log beta: %w", ErrNilParam)
	}
	return narray.Zip(x, y, mathext.Lbeta)
}
